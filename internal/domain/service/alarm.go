package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/diegoclair/slack-alarm-bot/internal/domain"
	"github.com/diegoclair/slack-alarm-bot/internal/domain/contract"
	"github.com/diegoclair/slack-alarm-bot/internal/domain/entity"
)

type alarmService struct {
	dm    contract.DataManager
	clock contract.Clock
	loc   *time.Location
}

func newAlarm(dm contract.DataManager, clock contract.Clock, loc *time.Location) *alarmService {
	return &alarmService{
		dm:    dm,
		clock: clock,
		loc:   loc,
	}
}

func (s *alarmService) Location() *time.Location {
	return s.loc
}

func (s *alarmService) RegisterRelative(ctx context.Context, guildID, channelID, userID string, minutes int, message string) (*entity.Confirmation, error) {
	if minutes < 1 {
		return nil, domain.Errorf(domain.ErrInvalid, "minutes must be at least 1")
	}
	if minutes > domain.MaxRelativeMinutes {
		return nil, domain.Errorf(domain.ErrInvalid, "minutes must be at most %d (one year)", domain.MaxRelativeMinutes)
	}

	message, err := normalizeMessage(message)
	if err != nil {
		return nil, err
	}

	runAt := s.now().Add(time.Duration(minutes) * time.Minute)
	return s.createOneShot(ctx, guildID, channelID, userID, runAt, message)
}

func (s *alarmService) RegisterAbsolute(ctx context.Context, guildID, channelID, userID, whenLocal, message string) (*entity.Confirmation, error) {
	runAt, err := time.ParseInLocation(domain.InputLayout, strings.TrimSpace(whenLocal), s.loc)
	if err != nil {
		return nil, domain.Errorf(domain.ErrInvalid, "invalid date/time %q, use YYYY-MM-DD HH:MM (ex: 2025-10-17 15:30)", whenLocal)
	}

	if !runAt.After(s.now()) {
		return nil, domain.Errorf(domain.ErrInvalid, "%s is not in the future", runAt.Format(domain.InputLayout))
	}

	message, err = normalizeMessage(message)
	if err != nil {
		return nil, err
	}

	return s.createOneShot(ctx, guildID, channelID, userID, runAt, message)
}

func (s *alarmService) createOneShot(ctx context.Context, guildID, channelID, userID string, runAt time.Time, message string) (*entity.Confirmation, error) {
	alarm := &entity.Alarm{
		GuildID:   guildID,
		ChannelID: channelID,
		UserID:    userID,
		RunAt:     runAt.UTC(),
		Message:   message,
	}

	if err := s.dm.Alarm().Create(ctx, alarm); err != nil {
		return nil, domain.Wrap(domain.ErrStorage, err, "failed to save alarm")
	}

	return &entity.Confirmation{
		ID:        alarm.ID,
		LocalTime: alarm.RunAt.In(s.loc),
	}, nil
}

func (s *alarmService) ListPending(ctx context.Context, guildID, userID string) ([]entity.PendingAlarm, error) {
	alarms, err := s.dm.Alarm().ListPending(ctx, guildID, userID)
	if err != nil {
		return nil, domain.Wrap(domain.ErrStorage, err, "failed to list alarms")
	}

	pending := make([]entity.PendingAlarm, 0, len(alarms))
	for _, a := range alarms {
		pending = append(pending, entity.PendingAlarm{
			ID:        a.ID,
			LocalTime: a.RunAt.In(s.loc),
			Message:   a.Message,
		})
	}

	return pending, nil
}

// Cancel reports false when there is no pending alarm with that id owned by
// the user. Missing, foreign and already fired alarms are indistinguishable.
func (s *alarmService) Cancel(ctx context.Context, guildID, userID string, id int64) (bool, error) {
	changed, err := s.dm.Alarm().Cancel(ctx, id, guildID, userID)
	if err != nil {
		return false, domain.Wrap(domain.ErrStorage, err, "failed to cancel alarm")
	}
	return changed, nil
}

func (s *alarmService) RegisterRecurring(ctx context.Context, guildID, channelID, userID string, hour, minute int, message string, pingEveryone bool) (*entity.RecurringConfirmation, error) {
	if !domain.ValidTimeOfDay(hour, minute) {
		return nil, domain.Errorf(domain.ErrInvalid, "time %02d:%02d is out of range (00:00-23:59)", hour, minute)
	}

	message, err := normalizeMessage(message)
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := domain.LocalDate(now, s.loc)
	alarm := &entity.RecurringAlarm{
		GuildID:      guildID,
		ChannelID:    channelID,
		UserID:       userID,
		Hour:         hour,
		Minute:       minute,
		Message:      message,
		Enabled:      true,
		PingEveryone: pingEveryone,
	}

	// A time that already went by today starts tomorrow
	alarm.StartsOn = today
	if domain.MinuteOfDay(now, s.loc) > hour*60+minute {
		alarm.StartsOn = nextLocalDate(now, s.loc)
	}

	if err := s.dm.Recurring().Create(ctx, alarm); err != nil {
		return nil, domain.Wrap(domain.ErrStorage, err, "failed to save daily alarm")
	}

	return &entity.RecurringConfirmation{
		ID:             alarm.ID,
		Hour:           hour,
		Minute:         minute,
		FirstLocalDate: alarm.StartsOn,
		PingEveryone:   pingEveryone,
	}, nil
}

// DisableRecurring disables every enabled recurrence the user has in the
// channel at hour:minute.
func (s *alarmService) DisableRecurring(ctx context.Context, guildID, channelID, userID string, hour, minute int) (bool, error) {
	if !domain.ValidTimeOfDay(hour, minute) {
		return false, domain.Errorf(domain.ErrInvalid, "time %02d:%02d is out of range (00:00-23:59)", hour, minute)
	}

	changed, err := s.dm.Recurring().Disable(ctx, guildID, channelID, userID, hour, minute)
	if err != nil {
		return false, domain.Wrap(domain.ErrStorage, err, "failed to disable daily alarm")
	}
	return changed, nil
}

func (s *alarmService) ListRecurring(ctx context.Context, guildID, userID string) ([]*entity.RecurringAlarm, error) {
	alarms, err := s.dm.Recurring().List(ctx, guildID, userID)
	if err != nil {
		return nil, domain.Wrap(domain.ErrStorage, err, "failed to list daily alarms")
	}
	return alarms, nil
}

// now is truncated to whole seconds, the resolution alarms are stored with.
func (s *alarmService) now() time.Time {
	return s.clock.Now().UTC().Truncate(time.Second)
}

func nextLocalDate(now time.Time, loc *time.Location) string {
	local := now.In(loc)
	y, m, d := local.Date()
	return time.Date(y, m, d+1, 12, 0, 0, 0, loc).Format(domain.DateLayout)
}

func normalizeMessage(message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", domain.Errorf(domain.ErrInvalid, "message cannot be empty")
	}
	if utf8.RuneCountInString(message) > domain.MaxMessageLength {
		return "", domain.Errorf(domain.ErrInvalid, "message is too long (max %d characters)", domain.MaxMessageLength)
	}
	return message, nil
}
