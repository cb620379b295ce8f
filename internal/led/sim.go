package led

// Sim is a headless driver: it counts frames and keeps a copy of the last
// buffer written, useful for tests and the simulator.
type Sim struct {
	Frames int
	Last   []byte
}

func NewSim() *Sim { return &Sim{} }

func (d *Sim) Write(rgb []byte) error {
	d.Frames++
	d.Last = append(d.Last[:0], rgb...)
	return nil
}

func (d *Sim) Close() error { return nil }
