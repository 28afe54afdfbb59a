package catalog

// Default returns the built-in demo catalog. Each call returns fresh slices.
func Default() Catalog {
	return Catalog{
		Tasks:     append([]string(nil), defaultTasks...),
		Logs:      append([]LogEntry(nil), defaultLogs...),
		Packets:   append([]Packet(nil), defaultPackets...),
		Launchers: append([]Launcher(nil), defaultLaunchers...),
	}
}

var defaultTasks = []string{"Item1", "Item2", "Item3", "Item4"}

var defaultLogs = []LogEntry{
	{Message: "TPE launch system is ready and stable", Severity: SeverityInfo},
	{Message: "LAX launch system is ready and stable", Severity: SeverityInfo},
	{Message: "JFK launch system is ready and stable", Severity: SeverityInfo},
	{Message: "Unknown connection detected from 140.122.64.120 (Taiwan)", Severity: SeverityWarning},
	{Message: "SFO launch system is ready and stable", Severity: SeverityInfo},
	{Message: "ORD launch system is ready and stable", Severity: SeverityInfo},
	{Message: "DFW launch system is ready and stable", Severity: SeverityInfo},
	{Message: "Lost connection from LAX launch system due to internal errors", Severity: SeverityError},
	{Message: "DEFCON alert has been raised to level 3", Severity: SeverityCritical},
	{Message: "MIA launch system is ready and stable", Severity: SeverityInfo},
	{Message: "SEA launch system is ready and stable", Severity: SeverityInfo},
	{Message: "Connection established with ISS (International Space Station)", Severity: SeverityInfo},
	{Message: "Received telemetry data from TPE launch system", Severity: SeverityInfo},
	{Message: "Error reading sensor data from JFK launch system", Severity: SeverityError},
	{Message: "Power outage detected at LAX launch system", Severity: SeverityWarning},
	{Message: "Authentication failure from 192.168.0.1 (internal network)", Severity: SeverityWarning},
	{Message: "Launch countdown initiated for ORD launch system", Severity: SeverityInfo},
	{Message: "Critical system update installed on DFW launch system", Severity: SeverityInfo},
	{Message: "Network congestion observed on SFO launch system", Severity: SeverityWarning},
	{Message: "Data corruption detected in MIA launch system logs", Severity: SeverityError},
	{Message: "Launch sequence aborted for SEA launch system", Severity: SeverityCritical},
	{Message: "System overload on TPE launch system", Severity: SeverityWarning},
	{Message: "Launch system reconfigured successfully at JFK", Severity: SeverityInfo},
	{Message: "Unauthorized access attempt detected on ORD launch system", Severity: SeverityWarning},
	{Message: "Emergency shutdown triggered on LAX launch system", Severity: SeverityCritical},
	{Message: "Connection established with weather satellite", Severity: SeverityInfo},
	{Message: "Error writing log file on DFW launch system", Severity: SeverityError},
	{Message: "Unexpected response received from SFO launch system", Severity: SeverityWarning},
	{Message: "Insufficient fuel detected in MIA launch system", Severity: SeverityError},
	{Message: "Launch system rebooted successfully at SEA", Severity: SeverityInfo},
	{Message: "Unauthorized login attempt from 192.168.0.10 (internal network)", Severity: SeverityWarning},
	{Message: "Critical hardware failure reported by LAX launch system", Severity: SeverityCritical},
	{Message: "Security breach detected on SFO launch system", Severity: SeverityCritical},
	{Message: "Power supply failure on DFW launch system", Severity: SeverityError},
	{Message: "Communication error with satellite at MIA launch system", Severity: SeverityError},
	{Message: "Launch aborted due to inclement weather at SEA launch system", Severity: SeverityCritical},
	{Message: "Unauthorized access attempt from external IP 203.120.45.78", Severity: SeverityWarning},
	{Message: "Critical software bug discovered on TPE launch system", Severity: SeverityCritical},
	{Message: "Sensor malfunction detected on JFK launch system", Severity: SeverityError},
	{Message: "Network outage affecting ORD launch system", Severity: SeverityWarning},
	{Message: "Launch system initialization completed at LAX", Severity: SeverityInfo},
	{Message: "Unauthorized login detected on DFW launch system", Severity: SeverityWarning},
	{Message: "Satellite signal loss experienced on SFO launch system", Severity: SeverityWarning},
	{Message: "Fuel leak detected in MIA launch system", Severity: SeverityError},
	{Message: "Launch system update deployed successfully at SEA", Severity: SeverityInfo},
	{Message: "Unauthorized network scan detected on TPE launch system", Severity: SeverityWarning},
	{Message: "Critical failure in propulsion system on JFK launch system", Severity: SeverityCritical},
	{Message: "Error in communication protocol with ISS on ORD launch system", Severity: SeverityError},
}

var defaultPackets = []Packet{
	{Label: "TPE", Count: 9},
	{Label: "LAX", Count: 5},
	{Label: "JFK", Count: 8},
	{Label: "SFO", Count: 3},
	{Label: "ORD", Count: 4},
	{Label: "DFW", Count: 7},
	{Label: "MIA", Count: 2},
	{Label: "SEA", Count: 1},
	{Label: "CLT", Count: 10},
	{Label: "LAS", Count: 7},
	{Label: "PHX", Count: 6},
	{Label: "MCO", Count: 3},
	{Label: "IAH", Count: 5},
	{Label: "EWR", Count: 8},
	{Label: "ATL", Count: 9},
	{Label: "LGA", Count: 4},
	{Label: "DEN", Count: 2},
	{Label: "BOS", Count: 1},
	{Label: "SFO", Count: 3},
	{Label: "PHX", Count: 6},
	{Label: "MCO", Count: 3},
	{Label: "IAH", Count: 5},
	{Label: "EWR", Count: 8},
	{Label: "ATL", Count: 5},
	{Label: "LGA", Count: 4},
	{Label: "DEN", Count: 2},
	{Label: "BOS", Count: 1},
	{Label: "SFO", Count: 3},
	{Label: "PHX", Count: 6},
	{Label: "MCO", Count: 3},
	{Label: "IAH", Count: 5},
	{Label: "EWR", Count: 8},
	{Label: "ATL", Count: 10},
	{Label: "LGA", Count: 4},
	{Label: "DEN", Count: 2},
	{Label: "BOS", Count: 1},
	{Label: "SFO", Count: 3},
	{Label: "PHX", Count: 6},
	{Label: "MCO", Count: 3},
	{Label: "IAH", Count: 5},
	{Label: "EWR", Count: 8},
	{Label: "ATL", Count: 7},
	{Label: "LGA", Count: 4},
	{Label: "DEN", Count: 2},
	{Label: "BOS", Count: 1},
	{Label: "SFO", Count: 3},
	{Label: "PHX", Count: 6},
	{Label: "MCO", Count: 3},
}

var defaultLaunchers = []Launcher{
	{Name: "Asia-1", Location: "TPE", Lat: 25.0094715, Lon: 121.5370432, Status: StatusUp},
	{Name: "USA-1", Location: "LAX", Lat: 34.052235, Lon: -118.243683, Status: StatusUp},
	{Name: "USA-2", Location: "JFK", Lat: 40.6413111, Lon: -73.7781391, Status: StatusDown},
	{Name: "USA-3", Location: "SFO", Lat: 37.7749, Lon: -122.4194, Status: StatusUp},
	{Name: "USA-4", Location: "ORD", Lat: 41.9742, Lon: -87.9073, Status: StatusDown},
	{Name: "USA-5", Location: "DFW", Lat: 32.8998, Lon: -97.0403, Status: StatusUp},
	{Name: "USA-6", Location: "MIA", Lat: 25.7617, Lon: -80.1918, Status: StatusDown},
	{Name: "USA-7", Location: "SEA", Lat: 47.6062, Lon: -122.3321, Status: StatusUp},
	{Name: "USA-8", Location: "CLT", Lat: 35.2271, Lon: -80.8431, Status: StatusDown},
	{Name: "USA-9", Location: "LAS", Lat: 36.1699, Lon: -115.1398, Status: StatusUp},
	{Name: "Europe-1", Location: "LHR", Lat: 51.5074, Lon: -0.1278, Status: StatusUp},
	{Name: "Europe-2", Location: "CDG", Lat: 48.8566, Lon: 2.3522, Status: StatusDown},
	{Name: "Asia-2", Location: "HND", Lat: 35.6895, Lon: 139.6917, Status: StatusUp},
	{Name: "Asia-3", Location: "ICN", Lat: 37.5665, Lon: 126.9780, Status: StatusDown},
	{Name: "Africa-1", Location: "JNB", Lat: -26.2041, Lon: 28.0473, Status: StatusUp},
	{Name: "Africa-2", Location: "CAI", Lat: 30.0444, Lon: 31.2357, Status: StatusDown},
	{Name: "Australia-1", Location: "SYD", Lat: -33.8688, Lon: 151.2093, Status: StatusUp},
	{Name: "SouthAmerica-1", Location: "GRU", Lat: -23.5505, Lon: -46.6333, Status: StatusUp},
	{Name: "Europe-3", Location: "FRA", Lat: 50.1109, Lon: 8.6821, Status: StatusUp},
	{Name: "Europe-4", Location: "MAD", Lat: 40.4168, Lon: -3.7038, Status: StatusUp},
	{Name: "Asia-4", Location: "PVG", Lat: 31.2304, Lon: 121.4737, Status: StatusUp},
	{Name: "Asia-5", Location: "BOM", Lat: 19.0760, Lon: 72.8777, Status: StatusDown},
	{Name: "Africa-3", Location: "LOS", Lat: 6.5244, Lon: 3.3792, Status: StatusUp},
	{Name: "Africa-4", Location: "NBO", Lat: -1.2864, Lon: 36.8172, Status: StatusDown},
	{Name: "Australia-2", Location: "MEL", Lat: -37.8136, Lon: 144.9631, Status: StatusDown},
	{Name: "SouthAmerica-2", Location: "EZE", Lat: -34.6037, Lon: -58.3816, Status: StatusDown},
	{Name: "Europe-5", Location: "AMS", Lat: 52.3676, Lon: 4.9041, Status: StatusUp},
	{Name: "Europe-6", Location: "FCO", Lat: 41.9028, Lon: 12.4964, Status: StatusDown},
	{Name: "Asia-6", Location: "SIN", Lat: 1.3521, Lon: 103.8198, Status: StatusUp},
	{Name: "Asia-7", Location: "BKK", Lat: 13.7563, Lon: 100.5018, Status: StatusDown},
	{Name: "Africa-5", Location: "CPT", Lat: -33.9249, Lon: 18.4241, Status: StatusUp},
	{Name: "Africa-6", Location: "ALG", Lat: 36.7372, Lon: 3.0865, Status: StatusUp},
	{Name: "Australia-3", Location: "BNE", Lat: -27.4698, Lon: 153.0251, Status: StatusUp},
	{Name: "SouthAmerica-3", Location: "LIM", Lat: -12.0464, Lon: -77.0428, Status: StatusDown},
}
