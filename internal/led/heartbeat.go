package led

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// Heartbeat toggles an indicator pin once per frame so a glance at the
// board shows the render loop is alive.
type Heartbeat struct {
	pin  gpio.PinIO
	high bool
}

// OpenHeartbeat looks up a GPIO pin by name ("GPIO13", "13", ...). An
// empty name returns nil; a nil Heartbeat is a no-op.
func OpenHeartbeat(name string) (*Heartbeat, error) {
	if name == "" {
		return nil, nil
	}
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph host init: %w", err)
	}
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("no such pin: %q", name)
	}
	if err := p.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("heartbeat pin %s: %w", name, err)
	}
	return &Heartbeat{pin: p}, nil
}

// Pulse flips the pin level. Safe on a nil receiver.
func (h *Heartbeat) Pulse() {
	if h == nil {
		return
	}
	h.high = !h.high
	_ = h.pin.Out(gpio.Level(h.high))
}
