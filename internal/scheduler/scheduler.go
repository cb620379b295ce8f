package scheduler

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Scheduler injects command bytes on cron schedules, e.g. a nightly "n"
// to refresh the pattern or an evening scheme change.
type Scheduler struct {
	cron *cron.Cron
	sink func(byte)
}

func New(sink func(byte)) *Scheduler {
	return &Scheduler{cron: cron.New(), sink: sink}
}

// Add registers one schedule. The command string is replayed byte by byte
// when the spec fires.
func (s *Scheduler) Add(spec, commands string) error {
	if commands == "" {
		return fmt.Errorf("schedule %q has no commands", spec)
	}
	_, err := s.cron.AddFunc(spec, func() {
		log.Info().Str("spec", spec).Str("commands", commands).Msg("scheduled commands")
		for i := 0; i < len(commands); i++ {
			s.sink(commands[i])
		}
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", spec, err)
	}
	return nil
}

func (s *Scheduler) Start() { s.cron.Start() }
func (s *Scheduler) Stop()  { s.cron.Stop() }
