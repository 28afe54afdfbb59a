// Package state is the tick-driven model behind the dashboard. It owns the
// signal windows, the rotating feeds, the selection cursors and the
// launch-code input mode. Rendering code only reads from it.
package state

import (
	"fmt"
	"math/rand/v2"

	"github.com/ntnucsie/launchdeck/internal/catalog"
	"github.com/ntnucsie/launchdeck/internal/selection"
	"github.com/ntnucsie/launchdeck/internal/signal"
)

// Tab indexes
const (
	TabSystemMonitor = iota
	TabLaunch
)

// TabTitles are the dashboard views, in order
var TabTitles = []string{"System Monitor", "Launch Missile"}

// CycleLength is the number of ticks in one progress cycle
const CycleLength = 1000

// Power walk bounds
const (
	PowerMin  = 0.0
	PowerMax  = 100.0
	PowerStep = 25.0
)

// Mode is the input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeEnteringCode
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeEnteringCode:
		return "entering-code"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// State is the application state. It is not safe for concurrent use; the
// driving loop owns it exclusively.
type State struct {
	title string
	tabs  *selection.Tabs

	// Progress counter, 0..CycleLength-1
	cycle int
	ticks uint64

	signalStrength *signal.Window[uint64]
	waveA          *signal.Window[signal.Point]
	waveB          *signal.Window[signal.Point]
	timeAxis       [2]float64

	tasks     *selection.List[string]
	logs      *selection.List[catalog.LogEntry]
	packets   []catalog.Packet
	launchers []catalog.Launcher

	power float64

	pendingCode     string
	requiredCode    string
	mode            Mode
	launchConfirmed bool
	quitRequested   bool

	rng     *rand.Rand
	periods Periods
}

// New builds the state from a title, the code that confirms a launch, and the seed catalog.
// The catalog is copied.
func New(title, requiredCode string, seed catalog.Catalog, opts ...Option) (*State, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Rand == nil {
		o.Rand = signal.NewRand(0)
	}
	if err := o.Periods.validate(); err != nil {
		return nil, err
	}

	strength, err := signal.NewWindow[uint64](
		signal.NewBoundedRandom(o.Rand, o.SignalStrength.Lower, o.SignalStrength.Upper),
		o.SignalStrength.Capacity, o.SignalStrength.Rate,
	)
	if err != nil {
		return nil, fmt.Errorf("signal strength: %w", err)
	}
	waveA, err := newWave(o.Rand, o.WaveA)
	if err != nil {
		return nil, fmt.Errorf("wave a: %w", err)
	}
	waveB, err := newWave(o.Rand, o.WaveB)
	if err != nil {
		return nil, fmt.Errorf("wave b: %w", err)
	}

	seed = seed.Clone()
	return &State{
		title:          title,
		tabs:           selection.NewTabs(TabTitles...),
		signalStrength: strength,
		waveA:          waveA,
		waveB:          waveB,
		timeAxis:       o.TimeAxis,
		tasks:          selection.NewList(seed.Tasks),
		logs:           selection.NewList(seed.Logs),
		packets:        seed.Packets,
		launchers:      seed.Launchers,
		power:          clamp(o.InitialPower, PowerMin, PowerMax),
		requiredCode:   requiredCode,
		mode:           ModeNormal,
		rng:            o.Rand,
		periods:        o.Periods,
	}, nil
}

// Tick advances simulated time by one step
func (s *State) Tick() {
	s.ticks++
	s.cycle = (s.cycle + 1) % CycleLength

	s.signalStrength.Tick()
	s.waveA.Tick()
	s.waveB.Tick()
	s.timeAxis[0]++
	s.timeAxis[1]++

	if s.cycle%s.periods.LogRotate == 0 {
		s.logs.RotateLastToFront()
	}
	if s.cycle%s.periods.PacketRotate == 0 {
		selection.RotateLastToFront(s.packets)
	}
	if s.cycle%s.periods.PowerWalk == 0 {
		s.power = clamp(s.power+s.rng.Float64()*2*PowerStep-PowerStep, PowerMin, PowerMax)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
