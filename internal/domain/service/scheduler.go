package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/diegoclair/slack-alarm-bot/internal/domain"
	"github.com/diegoclair/slack-alarm-bot/internal/domain/contract"
	"github.com/diegoclair/slack-alarm-bot/internal/logger"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Scheduler periodically delivers due alarms. Ticks never overlap: a tick
// that would start while the previous one is still running is skipped.
type Scheduler struct {
	dm            contract.DataManager
	notifier      contract.Notifier
	clock         contract.Clock
	loc           *time.Location
	log           zerolog.Logger
	interval      time.Duration
	notifyTimeout time.Duration

	mu      sync.Mutex
	cron    *cron.Cron
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running bool
}

func newScheduler(dm contract.DataManager, notifier contract.Notifier, clock contract.Clock, loc *time.Location, log zerolog.Logger, opts Options) *Scheduler {
	return &Scheduler{
		dm:            dm,
		notifier:      notifier,
		clock:         clock,
		loc:           loc,
		log:           logger.Component(log, "scheduler"),
		interval:      opts.TickInterval,
		notifyTimeout: opts.NotifyTimeout,
	}
}

// Start runs one tick right away and then one every interval.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	cl := logger.NewCronLogger(s.log)
	job := cron.NewChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)).
		Then(cron.FuncJob(func() { s.Tick(ctx) }))

	s.cron = cron.New(cron.WithLocation(time.UTC), cron.WithLogger(cl))
	s.cron.Schedule(cron.Every(s.interval), job)
	s.cron.Start()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		job.Run()
	}()

	s.log.Info().
		Dur("interval", s.interval).
		Str("timezone", s.loc.String()).
		Msg("scheduler started")
}

// Stop stops scheduling new ticks and waits for the running one to finish.
// If ctx expires first the running tick is cancelled and ctx's error returned.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	cronDone := s.cron.Stop()
	cancel := s.cancel
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		<-cronDone.Done()
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		cancel()
		s.log.Info().Msg("scheduler stopped")
		return nil
	case <-ctx.Done():
		cancel()
		return fmt.Errorf("failed to stop scheduler: %w", ctx.Err())
	}
}

// Tick delivers every due one-shot alarm and then every due recurring alarm.
// Each alarm is re-checked, delivered and marked in its own transaction; the
// write lock is never held across more than one send. A storage failure
// leaves that alarm due for the next tick and does not stop the others.
func (s *Scheduler) Tick(ctx context.Context) {
	now := s.clock.Now().UTC()
	today := domain.LocalDate(now, s.loc)
	minuteOfDay := domain.MinuteOfDay(now, s.loc)

	s.fireOneShots(ctx, now)
	s.fireRecurring(ctx, today, minuteOfDay)
}

func (s *Scheduler) fireOneShots(ctx context.Context, now time.Time) {
	alarms, err := s.dm.Alarm().Due(ctx, now)
	if err != nil {
		s.log.Error().Err(domain.Wrap(domain.ErrStorage, err, "one-shot alarms")).
			Msg("tick failed, due alarms will be retried")
		return
	}

	for _, a := range alarms {
		if err := s.fireOneShot(ctx, a.ID); err != nil {
			s.log.Error().Err(domain.Wrap(domain.ErrStorage, err, "one-shot alarm")).
				Int64("alarm_id", a.ID).
				Msg("alarm not marked, it will be retried")
		}
	}
}

func (s *Scheduler) fireOneShot(ctx context.Context, id int64) error {
	return s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		a, err := tx.Alarm().GetPending(ctx, id)
		if err != nil {
			return err
		}
		if a == nil {
			// cancelled or fired since the due query
			return nil
		}

		text := fmt.Sprintf("<@%s> ⏰ Alarm: %s", a.UserID, a.Message)
		s.deliver(ctx, a.ID, a.ChannelID, text, domain.MentionUser)

		return tx.Alarm().MarkFired(ctx, a.ID)
	})
}

func (s *Scheduler) fireRecurring(ctx context.Context, today string, minuteOfDay int) {
	alarms, err := s.dm.Recurring().Due(ctx, today, minuteOfDay)
	if err != nil {
		s.log.Error().Err(domain.Wrap(domain.ErrStorage, err, "recurring alarms")).
			Str("local_date", today).
			Msg("tick failed, due alarms will be retried")
		return
	}

	for _, a := range alarms {
		if err := s.fireDaily(ctx, a.ID, today); err != nil {
			s.log.Error().Err(domain.Wrap(domain.ErrStorage, err, "recurring alarm")).
				Int64("alarm_id", a.ID).
				Str("local_date", today).
				Msg("alarm not marked, it will be retried")
		}
	}
}

func (s *Scheduler) fireDaily(ctx context.Context, id int64, today string) error {
	return s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		a, err := tx.Recurring().GetDue(ctx, id, today)
		if err != nil {
			return err
		}
		if a == nil {
			// disabled or fired today since the due query
			return nil
		}

		text := fmt.Sprintf("<@%s> ⏰ Daily alarm: %s", a.UserID, a.Message)
		policy := domain.MentionUser
		if a.PingEveryone {
			text = fmt.Sprintf("<!everyone> ⏰ Daily alarm: %s", a.Message)
			policy = domain.MentionEveryone
		}
		s.deliver(ctx, a.ID, a.ChannelID, text, policy)

		return tx.Recurring().MarkFired(ctx, a.ID, today)
	})
}

// deliver sends one notification. Failures are logged and swallowed: the
// alarm is marked either way.
func (s *Scheduler) deliver(ctx context.Context, alarmID int64, channelID, text string, policy domain.MentionPolicy) {
	ctx, cancel := context.WithTimeout(ctx, s.notifyTimeout)
	defer cancel()

	if err := s.notifier.Send(ctx, channelID, text, policy); err != nil {
		s.log.Warn().
			Err(domain.Wrap(domain.ErrDelivery, err, "send failed")).
			Int64("alarm_id", alarmID).
			Str("channel_id", channelID).
			Msg("alarm delivery failed")
		return
	}

	s.log.Debug().
		Int64("alarm_id", alarmID).
		Str("channel_id", channelID).
		Stringer("mention", policy).
		Msg("alarm delivered")
}
