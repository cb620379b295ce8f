package engine

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/peter-bloomfield/arduino-christmas-lights/internal/led"
	"github.com/peter-bloomfield/arduino-christmas-lights/internal/twinkle"
)

// Heartbeat is pulsed once per rendered frame.
type Heartbeat interface {
	Pulse()
}

// Engine is the per-frame orchestrator. Each frame it polls at most one
// pending command byte, computes every light's brightness and colour, and
// commits the frame to the pixel driver in one write. The oscillator
// slice and run state are mutated only on the loop goroutine; command
// sources (serial reader, websocket, cron) inject bytes via Enqueue.
type Engine struct {
	drv    led.Driver
	st     *twinkle.RunState
	gen    *twinkle.Generator
	lights []twinkle.Oscillator

	cmds chan byte
	rgb  []byte

	fps        int
	brightness float64
	t0         time.Time
	frameID    atomic.Uint64

	hb      Heartbeat
	onFrame func(id uint64, rgb []byte)
}

// New allocates the oscillator set, draws the initial pattern and wires
// the driver. brightness is a global scale in (0,1] applied on top of each
// light's own envelope.
func New(drv led.Driver, st *twinkle.RunState, gen *twinkle.Generator, lights, fps int, brightness float64) (*Engine, error) {
	if lights <= 0 {
		return nil, errors.New("invalid light count")
	}
	if fps <= 0 {
		fps = 30
	}
	if brightness <= 0 || brightness > 1 {
		brightness = 1
	}
	e := &Engine{
		drv:        drv,
		st:         st,
		gen:        gen,
		lights:     make([]twinkle.Oscillator, lights),
		cmds:       make(chan byte, 64),
		rgb:        make([]byte, lights*3),
		fps:        fps,
		brightness: brightness,
		t0:         time.Now(),
	}
	gen.Randomize(e.lights)
	return e, nil
}

// SetHeartbeat installs the per-frame indicator. Call before Run.
func (e *Engine) SetHeartbeat(hb Heartbeat) { e.hb = hb }

// OnFrame installs a hook invoked on the loop goroutine after each commit.
// The rgb slice is reused between frames; copy it if it must outlive the
// call. Call before Run.
func (e *Engine) OnFrame(f func(id uint64, rgb []byte)) { e.onFrame = f }

// SetPattern replaces the oscillator set wholesale. Used by the simulator
// and tests; during normal operation patterns come from the 'n' command.
func (e *Engine) SetPattern(lights []twinkle.Oscillator) {
	copy(e.lights, lights)
}

// Enqueue hands a command byte to the render loop. When the queue is full
// the byte is dropped; the protocol has no back-pressure.
func (e *Engine) Enqueue(b byte) {
	select {
	case e.cmds <- b:
	default:
	}
}

// Now returns seconds since the engine started. Go's monotonic clock never
// wraps, unlike the 32-bit microsecond counter on the original hardware,
// and float64 seconds keep sub-microsecond resolution for any realistic
// uptime.
func (e *Engine) Now() float64 { return time.Since(e.t0).Seconds() }

// State exposes the run state for read-only surfaces like /health.
func (e *Engine) State() *twinkle.RunState { return e.st }

// Lights returns the fixed chain length.
func (e *Engine) Lights() int { return len(e.lights) }

// FrameID returns the number of frames committed so far.
func (e *Engine) FrameID() uint64 { return e.frameID.Load() }

// Frame renders one frame at elapsed seconds.
func (e *Engine) Frame(elapsed float64) error {
	select {
	case b := <-e.cmds:
		if twinkle.Apply(b, e.st, e.gen, e.lights) {
			log.Debug().Str("cmd", string(b)).Msg("command applied")
		}
	default:
	}

	cycle, scheme := e.st.Snapshot()
	for i, o := range e.lights {
		f := o.Brightness(elapsed, cycle) * e.brightness
		r, g, b := scheme.Map(f, i)
		e.rgb[i*3+0] = r
		e.rgb[i*3+1] = g
		e.rgb[i*3+2] = b
	}
	if err := e.drv.Write(e.rgb); err != nil {
		return err
	}
	id := e.frameID.Add(1)

	if e.hb != nil {
		e.hb.Pulse()
	}
	if e.onFrame != nil {
		e.onFrame(id, e.rgb)
	}
	return nil
}

// Run drives Frame at the configured rate until ctx is done. It runs on a
// single goroutine; nothing else touches the oscillators or run state
// except through the command queue.
func (e *Engine) Run(ctx context.Context) {
	tick := time.NewTicker(time.Second / time.Duration(e.fps))
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			if err := e.Frame(e.Now()); err != nil {
				log.Error().Err(err).Msg("frame write failed")
			}
		}
	}
}
