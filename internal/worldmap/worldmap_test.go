package worldmap

import (
	"strings"
	"testing"

	"github.com/ntnucsie/launchdeck/internal/catalog"
	"github.com/ntnucsie/launchdeck/internal/testutil"
	"github.com/ntnucsie/launchdeck/internal/theme"
)

func TestNew_Size(t *testing.T) {
	m := New(theme.Get("classic"), 60, 20)
	w, h := m.Size()
	if w != 60 || h != 20 {
		t.Errorf("Size() = %dx%d, want 60x20", w, h)
	}

	tiny := New(theme.Get("classic"), 0, -3)
	w, h = tiny.Size()
	if w != 1 || h != 1 {
		t.Errorf("degenerate size should clamp to 1x1, got %dx%d", w, h)
	}
}

func TestProject(t *testing.T) {
	m := New(theme.Get("classic"), 61, 31)

	tests := []struct {
		name     string
		lat, lon float64
		x, y     int
		ok       bool
	}{
		{"north-west corner", 90, -180, 0, 0, true},
		{"south-east corner", -90, 180, 60, 30, true},
		{"origin", 0, 0, 30, 15, true},
		{"tpe", 25.0094715, 121.5370432, 50, 11, true},
		{"bad lat", 91, 0, 0, 0, false},
		{"bad lon", 0, -181, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := m.Project(tt.lat, tt.lon)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && (x != tt.x || y != tt.y) {
				t.Errorf("Project(%v, %v) = (%d, %d), want (%d, %d)", tt.lat, tt.lon, x, y, tt.x, tt.y)
			}
		})
	}
}

func TestIsLand(t *testing.T) {
	land := [][2]float64{
		{45, 10},    // Europe
		{40, -100},  // North America
		{-10, -55},  // South America
		{-25, 135},  // Australia
		{-85, 0},    // Antarctica
	}
	for _, p := range land {
		if !IsLand(p[0], p[1]) {
			t.Errorf("IsLand(%v, %v) = false, want true", p[0], p[1])
		}
	}

	sea := [][2]float64{
		{0, -150},  // Pacific
		{30, -40},  // Atlantic
		{-30, 80},  // Indian Ocean
		{100, 0},   // off the globe
	}
	for _, p := range sea {
		if IsLand(p[0], p[1]) {
			t.Errorf("IsLand(%v, %v) = true, want false", p[0], p[1])
		}
	}

	if !IsLand(-90, 180) {
		t.Error("south-east corner should clamp into the grid")
	}
}

func TestDrawLand(t *testing.T) {
	m := New(theme.Get("classic"), 72, 18)
	m.DrawLand()

	lines := m.Render()
	if len(lines) != 18 {
		t.Fatalf("expected 18 rows, got %d", len(lines))
	}
	// Bottom row is Antarctica, entirely land
	if got := testutil.StripANSI(lines[17]); got != strings.Repeat(string(LandRune), 72) {
		t.Errorf("bottom row = %q", got)
	}
	total := 0
	for _, l := range lines {
		total += strings.Count(testutil.StripANSI(l), string(LandRune))
	}
	if total == 0 || total == 72*18 {
		t.Errorf("unexpected land cell count %d", total)
	}
}

func TestDrawLaunchers(t *testing.T) {
	m := New(theme.Get("classic"), 61, 31)
	m.DrawLaunchers([]catalog.Launcher{
		{Name: "Origin", Lat: 0, Lon: 0, Status: catalog.StatusUp},
		{Name: "Corner", Lat: 90, Lon: -180, Status: catalog.StatusDown},
		{Name: "Nowhere", Lat: 200, Lon: 0, Status: catalog.StatusUp},
	})

	if m.At(30, 15) != LauncherRune {
		t.Errorf("expected launcher at origin, got %q", m.At(30, 15))
	}
	if m.At(0, 0) != LauncherRune {
		t.Errorf("expected launcher at corner, got %q", m.At(0, 0))
	}

	count := 0
	for _, l := range m.Render() {
		count += strings.Count(testutil.StripANSI(l), string(LauncherRune))
	}
	if count != 2 {
		t.Errorf("expected 2 launcher markers, got %d", count)
	}
}

func TestDrawSatellite(t *testing.T) {
	m := New(theme.Get("classic"), 73, 37)
	m.DrawSatellite()

	sx, sy, _ := m.Project(SatelliteAt[0], SatelliteAt[1])
	if m.At(sx, sy) != SatelliteRune {
		t.Errorf("expected satellite at (%d,%d), got %q", sx, sy, m.At(sx, sy))
	}

	left, top, _ := m.Project(FootprintNE[0], FootprintSW[1])
	if m.At(left, top) != '┌' {
		t.Errorf("expected footprint corner at (%d,%d), got %q", left, top, m.At(left, top))
	}

	x0, y0, _ := m.Project(TrackFrom[0], TrackFrom[1])
	x1, y1, _ := m.Project(TrackTo[0], TrackTo[1])
	if m.At(x0, y0) != TrackRune || m.At(x1, y1) != TrackRune {
		t.Error("track should reach both map edges")
	}
}

func TestDraw_SatelliteOnlyBeforeLaunch(t *testing.T) {
	th := theme.Get("classic")
	launchers := catalog.Default().Launchers

	pending := strings.Join(Draw(th, 80, 24, launchers, false), "\n")
	launched := strings.Join(Draw(th, 80, 24, launchers, true), "\n")

	if !strings.ContainsRune(testutil.StripANSI(pending), SatelliteRune) {
		t.Error("satellite should be drawn before launch")
	}
	if strings.ContainsRune(testutil.StripANSI(launched), SatelliteRune) {
		t.Error("satellite should be hidden after launch")
	}
	if !strings.ContainsRune(testutil.StripANSI(launched), LauncherRune) {
		t.Error("launchers should be drawn after launch")
	}
}

func TestAt_OutOfRange(t *testing.T) {
	m := New(theme.Get("classic"), 10, 5)
	if m.At(-1, 0) != 0 || m.At(10, 0) != 0 || m.At(0, 5) != 0 {
		t.Error("At outside the canvas should return 0")
	}
}
