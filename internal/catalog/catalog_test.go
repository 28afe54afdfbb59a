package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Default Catalog Tests
// =============================================================================

func TestDefault_Sizes(t *testing.T) {
	c := Default()

	assert.Len(t, c.Tasks, 4)
	assert.Len(t, c.Logs, 48)
	assert.Len(t, c.Packets, 48)
	assert.Len(t, c.Launchers, 34)
}

func TestDefault_Valid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestDefault_ReturnsFreshSlices(t *testing.T) {
	a := Default()
	a.Logs[0].Message = "changed"
	a.Packets[0].Count = 999

	b := Default()
	assert.NotEqual(t, "changed", b.Logs[0].Message)
	assert.NotEqual(t, uint64(999), b.Packets[0].Count)
}

func TestDefault_FirstLauncher(t *testing.T) {
	l := Default().Launchers[0]
	assert.Equal(t, "Asia-1", l.Name)
	assert.Equal(t, "TPE", l.Location)
	assert.True(t, l.IsUp())
	assert.InDelta(t, 25.0094715, l.Lat, 1e-9)
	assert.InDelta(t, 121.5370432, l.Lon, 1e-9)
}

func TestClone_Independent(t *testing.T) {
	a := Default()
	b := a.Clone()
	b.Tasks[0] = "other"
	assert.Equal(t, "Item1", a.Tasks[0])
}

// =============================================================================
// Validation Tests
// =============================================================================

func TestValidate_Errors(t *testing.T) {
	testCases := []struct {
		name string
		c    Catalog
		err  error
	}{
		{
			name: "bad severity",
			c:    Catalog{Logs: []LogEntry{{Message: "x", Severity: "DEBUG"}}},
			err:  ErrUnknownSeverity,
		},
		{
			name: "bad status",
			c:    Catalog{Launchers: []Launcher{{Name: "a", Status: "Maybe"}}},
			err:  ErrUnknownStatus,
		},
		{
			name: "bad latitude",
			c:    Catalog{Launchers: []Launcher{{Name: "a", Lat: 91, Status: StatusUp}}},
			err:  ErrBadCoordinates,
		},
		{
			name: "bad longitude",
			c:    Catalog{Launchers: []Launcher{{Name: "a", Lon: -181, Status: StatusDown}}},
			err:  ErrBadCoordinates,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.c.Validate(), tc.err)
		})
	}
}

func TestSeverity_Valid(t *testing.T) {
	for _, s := range []Severity{SeverityInfo, SeverityWarning, SeverityError, SeverityCritical} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, Severity("info").Valid())
}

// =============================================================================
// Decode Tests
// =============================================================================

const tomlCatalog = `
tasks = ["Fuel", "Arm"]

[[logs]]
message = "Launch pad clear"
severity = "INFO"

[[logs]]
message = "Fuel leak"
severity = "ERROR"

[[launchers]]
name = "Test-1"
location = "TST"
lat = 10.5
lon = -20.25
status = "Down"
`

const yamlCatalog = `
tasks: [Fuel, Arm]
packets:
  - label: TPE
    count: 3
  - label: LAX
    count: 7
`

func TestDecode_TOML(t *testing.T) {
	c, err := Decode(strings.NewReader(tomlCatalog), FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, []string{"Fuel", "Arm"}, c.Tasks)
	require.Len(t, c.Logs, 2)
	assert.Equal(t, SeverityError, c.Logs[1].Severity)
	require.Len(t, c.Launchers, 1)
	assert.Equal(t, StatusDown, c.Launchers[0].Status)
	assert.InDelta(t, -20.25, c.Launchers[0].Lon, 1e-9)

	// Packets were not in the file
	assert.Len(t, c.Packets, 48)
}

func TestDecode_YAML(t *testing.T) {
	c, err := Decode(strings.NewReader(yamlCatalog), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, []string{"Fuel", "Arm"}, c.Tasks)
	require.Len(t, c.Packets, 2)
	assert.Equal(t, Packet{Label: "LAX", Count: 7}, c.Packets[1])
	assert.Len(t, c.Logs, 48)
}

func TestDecode_EmptyYAMLFallsBackToDefault(t *testing.T) {
	c, err := Decode(strings.NewReader(""), FormatYAML)
	require.NoError(t, err)
	assert.Len(t, c.Launchers, 34)
}

func TestDecode_InvalidSeverity(t *testing.T) {
	input := "[[logs]]\nmessage = \"x\"\nseverity = \"LOUD\"\n"
	_, err := Decode(strings.NewReader(input), FormatTOML)
	assert.ErrorIs(t, err, ErrUnknownSeverity)
}

func TestDecode_SeverityAnyCase(t *testing.T) {
	input := "[[logs]]\nmessage = \"x\"\nseverity = \" warning \"\n"
	c, err := Decode(strings.NewReader(input), FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, SeverityWarning, c.Logs[0].Severity)
}

func TestParseSeverity(t *testing.T) {
	for in, want := range map[string]Severity{
		"info":     SeverityInfo,
		"Warning":  SeverityWarning,
		"ERROR":    SeverityError,
		"critical": SeverityCritical,
	} {
		got, err := ParseSeverity(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
		assert.Equal(t, string(want), got.String())
	}

	_, err := ParseSeverity("loud")
	assert.ErrorIs(t, err, ErrUnknownSeverity)
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode(strings.NewReader("tasks = ["), FormatTOML)
	assert.Error(t, err)
}

func TestDecode_UnknownFormat(t *testing.T) {
	_, err := Decode(strings.NewReader(""), Format("json"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

// =============================================================================
// Load Tests
// =============================================================================

func TestFormatFromPath(t *testing.T) {
	testCases := []struct {
		path string
		want Format
		ok   bool
	}{
		{"seed.toml", FormatTOML, true},
		{"seed.TOML", FormatTOML, true},
		{"seed.yaml", FormatYAML, true},
		{"dir/seed.yml", FormatYAML, true},
		{"seed.json", "", false},
		{"seed", "", false},
	}

	for _, tc := range testCases {
		got, err := FormatFromPath(tc.path)
		if tc.ok {
			assert.NoError(t, err, tc.path)
			assert.Equal(t, tc.want, got, tc.path)
		} else {
			assert.ErrorIs(t, err, ErrUnsupportedFormat, tc.path)
		}
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.toml")
	require.NoError(t, os.WriteFile(path, []byte(tomlCatalog), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Test-1", c.Launchers[0].Name)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
