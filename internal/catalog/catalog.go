// Package catalog holds the static seed data shown by the dashboard:
// tasks, log lines, packet counters and launcher sites.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Severity is the level attached to a log line
type Severity string

// Known severities, ordered from least to most severe
const (
	SeverityInfo     Severity = "INFO"
	SeverityWarning  Severity = "WARNING"
	SeverityError    Severity = "ERROR"
	SeverityCritical Severity = "CRITICAL"
)

// Valid reports whether s is a known severity
func (s Severity) Valid() bool {
	switch s {
	case SeverityInfo, SeverityWarning, SeverityError, SeverityCritical:
		return true
	}
	return false
}

// String implements fmt.Stringer
func (s Severity) String() string {
	return string(s)
}

// ParseSeverity accepts a severity name in any case
func ParseSeverity(name string) (Severity, error) {
	s := Severity(strings.ToUpper(strings.TrimSpace(name)))
	if !s.Valid() {
		return "", fmt.Errorf("%q: %w", name, ErrUnknownSeverity)
	}
	return s, nil
}

// Status is the operational state of a launcher
type Status string

// Launcher states
const (
	StatusUp   Status = "Up"
	StatusDown Status = "Down"
)

// Valid reports whether s is a known status
func (s Status) Valid() bool {
	return s == StatusUp || s == StatusDown
}

// LogEntry is a single line in the system message feed
type LogEntry struct {
	Message  string   `toml:"message" yaml:"message"`
	Severity Severity `toml:"severity" yaml:"severity"`
}

// Packet is a labelled packet counter
type Packet struct {
	Label string `toml:"label" yaml:"label"`
	Count uint64 `toml:"count" yaml:"count"`
}

// Launcher is a launch site shown in the launcher table and on the map
type Launcher struct {
	Name     string  `toml:"name" yaml:"name"`
	Location string  `toml:"location" yaml:"location"`
	Lat      float64 `toml:"lat" yaml:"lat"`
	Lon      float64 `toml:"lon" yaml:"lon"`
	Status   Status  `toml:"status" yaml:"status"`
}

// IsUp reports whether the launcher is operational
func (l Launcher) IsUp() bool {
	return l.Status == StatusUp
}

// Catalog is the full seed data set
type Catalog struct {
	Tasks     []string   `toml:"tasks" yaml:"tasks"`
	Logs      []LogEntry `toml:"logs" yaml:"logs"`
	Packets   []Packet   `toml:"packets" yaml:"packets"`
	Launchers []Launcher `toml:"launchers" yaml:"launchers"`
}

// Validation errors
var (
	ErrUnknownSeverity = errors.New("unknown severity")
	ErrUnknownStatus   = errors.New("unknown launcher status")
	ErrBadCoordinates  = errors.New("coordinates out of range")
)

// Validate checks every entry of the catalog
func (c Catalog) Validate() error {
	for i, l := range c.Logs {
		if !l.Severity.Valid() {
			return fmt.Errorf("logs[%d] %q: %w", i, l.Severity, ErrUnknownSeverity)
		}
	}
	for i, l := range c.Launchers {
		if !l.Status.Valid() {
			return fmt.Errorf("launchers[%d] %s: %q: %w", i, l.Name, l.Status, ErrUnknownStatus)
		}
		if l.Lat < -90 || l.Lat > 90 || l.Lon < -180 || l.Lon > 180 {
			return fmt.Errorf("launchers[%d] %s: (%g, %g): %w", i, l.Name, l.Lat, l.Lon, ErrBadCoordinates)
		}
	}
	return nil
}

// Clone returns a deep copy so feed rotation never touches the caller's slices
func (c Catalog) Clone() Catalog {
	return Catalog{
		Tasks:     append([]string(nil), c.Tasks...),
		Logs:      append([]LogEntry(nil), c.Logs...),
		Packets:   append([]Packet(nil), c.Packets...),
		Launchers: append([]Launcher(nil), c.Launchers...),
	}
}

// Merge fills empty sections of c from fallback
func (c Catalog) Merge(fallback Catalog) Catalog {
	if len(c.Tasks) == 0 {
		c.Tasks = fallback.Tasks
	}
	if len(c.Logs) == 0 {
		c.Logs = fallback.Logs
	}
	if len(c.Packets) == 0 {
		c.Packets = fallback.Packets
	}
	if len(c.Launchers) == 0 {
		c.Launchers = fallback.Launchers
	}
	return c
}
