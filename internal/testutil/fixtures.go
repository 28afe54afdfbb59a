package testutil

import "github.com/ntnucsie/launchdeck/internal/catalog"

// SmallCatalog returns a short, distinct catalog that is easy to assert against
func SmallCatalog() catalog.Catalog {
	return catalog.Catalog{
		Tasks: []string{"Alpha", "Bravo", "Charlie"},
		Logs: []catalog.LogEntry{
			{Message: "boot ok", Severity: catalog.SeverityInfo},
			{Message: "fuel low", Severity: catalog.SeverityWarning},
			{Message: "valve stuck", Severity: catalog.SeverityError},
			{Message: "core breach", Severity: catalog.SeverityCritical},
		},
		Packets: []catalog.Packet{
			{Label: "AAA", Count: 1},
			{Label: "BBB", Count: 5},
			{Label: "CCC", Count: 10},
		},
		Launchers: []catalog.Launcher{
			{Name: "North", Location: "OSL", Lat: 59.91, Lon: 10.75, Status: catalog.StatusUp},
			{Name: "South", Location: "SYD", Lat: -33.87, Lon: 151.21, Status: catalog.StatusDown},
		},
	}
}
