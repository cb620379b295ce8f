package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/peter-bloomfield/arduino-christmas-lights/internal/engine"
	"github.com/peter-bloomfield/arduino-christmas-lights/internal/led"
	"github.com/peter-bloomfield/arduino-christmas-lights/internal/twinkle"
)

// Headless simulator: runs the engine against the sim driver, feeding one
// scripted command byte per simulated second, and prints a compact frame
// summary. Handy for eyeballing schemes and cycle changes without a chain
// attached.
func main() {
	var (
		lights  = flag.Int("lights", 50, "number of lights on the chain")
		fps     = flag.Int("fps", 30, "simulation frames per second")
		seconds = flag.Int("seconds", 10, "how long to simulate")
		script  = flag.String("script", "x5n", "command bytes, one applied per simulated second")
		seed    = flag.Int64("seed", 1, "pattern seed (reproducible runs)")
	)
	flag.Parse()

	st := twinkle.NewRunState(5.0, twinkle.SchemeXmas)
	gen := twinkle.NewGeneratorSeeded(twinkle.Band{Low: 0.5, High: 1.0}, *seed)
	drv := led.NewSim()

	eng, err := engine.New(drv, st, gen, *lights, *fps, 1.0)
	if err != nil {
		log.Fatalf("engine: %v", err)
	}

	dt := 1.0 / float64(*fps)
	pending := *script
	total := *seconds * *fps
	for i := 0; i < total; i++ {
		if i%*fps == 0 && len(pending) > 0 {
			eng.Enqueue(pending[0])
			pending = pending[1:]
		}
		if err := eng.Frame(float64(i) * dt); err != nil {
			log.Fatalf("frame: %v", err)
		}
		if i%*fps == 0 {
			printSummary(drv)
		}
	}
}

func printSummary(d *led.Sim) {
	var r, g, b float64
	n := len(d.Last) / 3
	for i := 0; i < n; i++ {
		r += float64(d.Last[i*3+0])
		g += float64(d.Last[i*3+1])
		b += float64(d.Last[i*3+2])
	}
	if n == 0 {
		n = 1
	}
	fmt.Printf("[frame %04d] avg=(%.1f,%.1f,%.1f) first=(%d,%d,%d)\n",
		d.Frames, r/float64(n), g/float64(n), b/float64(n),
		d.Last[0], d.Last[1], d.Last[2])
}
