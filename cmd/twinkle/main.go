package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/peter-bloomfield/arduino-christmas-lights/internal/config"
	"github.com/peter-bloomfield/arduino-christmas-lights/internal/engine"
	"github.com/peter-bloomfield/arduino-christmas-lights/internal/led"
	"github.com/peter-bloomfield/arduino-christmas-lights/internal/scheduler"
	"github.com/peter-bloomfield/arduino-christmas-lights/internal/serialio"
	"github.com/peter-bloomfield/arduino-christmas-lights/internal/server"
	"github.com/peter-bloomfield/arduino-christmas-lights/internal/twinkle"
)

func main() {
	// ---- Flags (config.yaml can override most) ----
	var (
		configPath = flag.String("config", "twinkle.yaml", "path to config yaml")
		lights     = flag.Int("lights", 50, "number of lights on the chain")
		fps        = flag.Int("fps", 30, "target frames per second")
		driver     = flag.String("driver", "spi", "driver: spi | sim")
		serialDev  = flag.String("serial", "", "serial device for the command stream (empty disables)")
		addr       = flag.String("addr", ":8080", "HTTP listen address (empty disables)")
		simOnly    = flag.Bool("sim-only", false, "force simulation (no hardware output)")
	)
	flag.Parse()

	// ---- Logging ----
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	// ---- Load config (optional) ----
	cfg := config.Default()
	if c, err := config.Load(*configPath); err != nil {
		log.Warn().Err(err).Str("path", *configPath).Msg("config load failed; proceeding with flags")
	} else {
		cfg = c
	}

	// ---- Effective params (flags fill gaps the config left at defaults) ----
	eLights, eFPS := cfg.Lights, cfg.FPS
	if *lights != 50 {
		eLights = *lights
	}
	if *fps != 30 {
		eFPS = *fps
	}
	eSerial := cfg.Serial.Dev
	if *serialDev != "" {
		eSerial = *serialDev
	}
	eAddr := cfg.Addr
	if *addr != ":8080" {
		eAddr = *addr
	}

	scheme, ok := twinkle.SchemeByName(cfg.Scheme)
	if !ok {
		log.Warn().Str("scheme", cfg.Scheme).Msg("unknown scheme in config; using xmas")
		scheme = twinkle.SchemeXmas
	}

	st := twinkle.NewRunState(cfg.CycleSeconds, scheme)
	gen := twinkle.NewGenerator(cfg.Band)

	// ---- Driver selection: -sim-only overrides; otherwise flag then config ----
	selected := cfg.Driver
	if *driver != "spi" {
		selected = *driver
	}
	if *simOnly {
		selected = "sim"
	}

	var drv led.Driver
	switch selected {
	case "sim":
		drv = led.NewSim()
	case "spi":
		d, err := led.OpenNRZ(cfg.SPI.Dev, eLights)
		if err != nil {
			log.Warn().Err(err).Str("dev", cfg.SPI.Dev).Msg("SPI init failed; falling back to sim")
			drv = led.NewSim()
		} else {
			if !d.Hardware {
				log.Warn().Msg("no SPI port found; drawing to the terminal")
			}
			drv = d
		}
	default:
		log.Warn().Str("driver", selected).Msg("unknown driver; using sim")
		drv = led.NewSim()
	}

	eng, err := engine.New(drv, st, gen, eLights, eFPS, cfg.Brightness)
	if err != nil {
		log.Fatal().Err(err).Msg("engine init")
	}

	if hb, err := led.OpenHeartbeat(cfg.HeartbeatPin); err != nil {
		log.Warn().Err(err).Str("pin", cfg.HeartbeatPin).Msg("heartbeat disabled")
	} else if hb != nil {
		eng.SetHeartbeat(hb)
	}

	// ---- Command sources ----
	var port *serialio.Port
	if eSerial != "" {
		p, err := serialio.Open(eSerial, cfg.Serial.Baud, eng.Enqueue)
		if err != nil {
			log.Warn().Err(err).Str("dev", eSerial).Msg("serial unavailable; commands via websocket only")
		} else {
			port = p
		}
	}

	sched := scheduler.New(eng.Enqueue)
	for _, sc := range cfg.Schedules {
		if err := sched.Add(sc.Cron, sc.Commands); err != nil {
			log.Warn().Err(err).Msg("schedule skipped")
		}
	}
	sched.Start()

	// ---- Preview/control server ----
	var srv *http.Server
	if eAddr != "" {
		mux := http.NewServeMux()
		server.New(eng).Routes(mux)
		srv = &http.Server{
			Addr:         eAddr,
			Handler:      mux,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		}
		go func() {
			log.Info().Str("addr", eAddr).Msg("HTTP server starting")
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatal().Err(err).Msg("http server crashed")
			}
		}()
	}

	// ---- Render loop ----
	ctx, cancel := context.WithCancel(context.Background())
	go eng.Run(ctx)
	log.Info().
		Int("lights", eLights).
		Int("fps", eFPS).
		Str("driver", selected).
		Str("scheme", scheme.String()).
		Msg("twinkling")

	// ---- Graceful shutdown ----
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	s := <-ch
	log.Info().Str("signal", s.String()).Msg("shutting down")

	cancel()
	sched.Stop()
	if port != nil {
		_ = port.Close()
	}
	if srv != nil {
		_ = srv.Close()
	}
	_ = drv.Close()
}
