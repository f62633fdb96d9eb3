package service

import (
	"time"

	"github.com/diegoclair/slack-alarm-bot/internal/domain"
	"github.com/diegoclair/slack-alarm-bot/internal/domain/contract"
	"github.com/rs/zerolog"
)

const defaultNotifyTimeout = 10 * time.Second

// Options tunes the scheduler. Zero values fall back to the defaults.
type Options struct {
	TickInterval  time.Duration
	NotifyTimeout time.Duration
}

// Services groups what the command layer and the process lifecycle use.
type Services struct {
	Alarm     contract.AlarmService
	Scheduler *Scheduler
}

// New wires the alarm service and the scheduler to the same store and clock.
func New(dm contract.DataManager, notifier contract.Notifier, clock contract.Clock, loc *time.Location, log zerolog.Logger, opts Options) *Services {
	if opts.TickInterval <= 0 {
		opts.TickInterval = domain.DefaultTickInterval
	}
	if opts.NotifyTimeout <= 0 {
		opts.NotifyTimeout = defaultNotifyTimeout
	}
	if loc == nil {
		loc = time.UTC
	}

	return &Services{
		Alarm:     newAlarm(dm, clock, loc),
		Scheduler: newScheduler(dm, notifier, clock, loc, log, opts),
	}
}
