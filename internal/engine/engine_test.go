package engine

import (
	"testing"

	"github.com/peter-bloomfield/arduino-christmas-lights/internal/led"
	"github.com/peter-bloomfield/arduino-christmas-lights/internal/twinkle"
)

func newTestEngine(t *testing.T, n int) (*Engine, *led.Sim) {
	t.Helper()
	st := twinkle.NewRunState(5.0, twinkle.SchemeXmas)
	gen := twinkle.NewGeneratorSeeded(twinkle.Band{Low: 0.5, High: 1.0}, 1)
	drv := led.NewSim()
	e, err := New(drv, st, gen, n, 30, 1.0)
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	return e, drv
}

func TestNewRejectsZeroLights(t *testing.T) {
	st := twinkle.NewRunState(5.0, twinkle.SchemeRed)
	gen := twinkle.NewGeneratorSeeded(twinkle.Band{Low: 0.5, High: 1.0}, 1)
	if _, err := New(led.NewSim(), st, gen, 0, 30, 1.0); err == nil {
		t.Fatal("expected error for zero lights")
	}
}

func TestFrameBufferShape(t *testing.T) {
	e, drv := newTestEngine(t, 17)
	if err := e.Frame(0); err != nil {
		t.Fatalf("frame: %v", err)
	}
	if len(drv.Last) != 17*3 {
		t.Fatalf("frame buffer is %d bytes, want %d", len(drv.Last), 17*3)
	}
	if drv.Frames != 1 || e.FrameID() != 1 {
		t.Fatalf("frame accounting off: %d / %d", drv.Frames, e.FrameID())
	}
}

// At most one queued command is consumed per frame.
func TestOneCommandPerFrame(t *testing.T) {
	e, _ := newTestEngine(t, 4)
	e.Enqueue('3')
	e.Enqueue('7')
	if err := e.Frame(0); err != nil {
		t.Fatalf("frame: %v", err)
	}
	if got := e.State().CycleSeconds(); got != 3.0 {
		t.Fatalf("after one frame cycle = %v, want 3.0", got)
	}
	if err := e.Frame(0.033); err != nil {
		t.Fatalf("frame: %v", err)
	}
	if got := e.State().CycleSeconds(); got != 7.0 {
		t.Fatalf("after two frames cycle = %v, want 7.0", got)
	}
}

func TestFrameNoCommandIsNoop(t *testing.T) {
	e, _ := newTestEngine(t, 4)
	if err := e.Frame(0); err != nil {
		t.Fatalf("frame: %v", err)
	}
	cycle, scheme := e.State().Snapshot()
	if cycle != 5.0 || scheme != twinkle.SchemeXmas {
		t.Fatalf("state drifted without commands: %v %v", cycle, scheme)
	}
}

// With a known pattern, the xmas scheme lights even indexes red and odd
// indexes green at each light's peak.
func TestFrameXmasParity(t *testing.T) {
	e, drv := newTestEngine(t, 4)
	e.SetPattern([]twinkle.Oscillator{
		{MaxBrightness: 1, Phase: 0},
		{MaxBrightness: 1, Phase: 0},
		{MaxBrightness: 1, Phase: 0},
		{MaxBrightness: 1, Phase: 0},
	})
	// quarter cycle: sin peaks at 1 for every light
	if err := e.Frame(5.0 / 4); err != nil {
		t.Fatalf("frame: %v", err)
	}
	want := []byte{
		255, 0, 0,
		0, 255, 0,
		255, 0, 0,
		0, 255, 0,
	}
	for i, b := range want {
		if drv.Last[i] != b {
			t.Fatalf("byte %d = %d, want %d (frame %v)", i, drv.Last[i], b, drv.Last)
		}
	}
}

func TestOnFrameHook(t *testing.T) {
	e, _ := newTestEngine(t, 4)
	var gotID uint64
	var gotLen int
	e.OnFrame(func(id uint64, rgb []byte) {
		gotID = id
		gotLen = len(rgb)
	})
	if err := e.Frame(0); err != nil {
		t.Fatalf("frame: %v", err)
	}
	if gotID != 1 || gotLen != 12 {
		t.Fatalf("hook got id=%d len=%d", gotID, gotLen)
	}
}

func TestEnqueueDropsWhenFull(t *testing.T) {
	e, _ := newTestEngine(t, 4)
	// must not block even well past queue capacity
	for i := 0; i < 1000; i++ {
		e.Enqueue('5')
	}
}
