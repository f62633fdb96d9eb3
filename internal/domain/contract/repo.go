package contract

//go:generate mockgen -source=repo.go -destination=../../../mocks/repo.go -package=mocks

import (
	"context"
	"time"

	"github.com/diegoclair/slack-alarm-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Alarm() AlarmRepo
	Recurring() RecurringRepo
}

// AlarmRepo defines the contract for the one-shot alarm repository
type AlarmRepo interface {
	Create(ctx context.Context, alarm *entity.Alarm) error
	ListPending(ctx context.Context, guildID, userID string) ([]*entity.Alarm, error)
	Cancel(ctx context.Context, id int64, guildID, userID string) (bool, error)
	Due(ctx context.Context, now time.Time) ([]*entity.Alarm, error)
	GetPending(ctx context.Context, id int64) (*entity.Alarm, error)
	MarkFired(ctx context.Context, id int64) error
}

// RecurringRepo defines the contract for the recurring alarm repository
type RecurringRepo interface {
	Create(ctx context.Context, alarm *entity.RecurringAlarm) error
	List(ctx context.Context, guildID, userID string) ([]*entity.RecurringAlarm, error)
	Disable(ctx context.Context, guildID, channelID, userID string, hour, minute int) (bool, error)
	Due(ctx context.Context, localDate string, minuteOfDay int) ([]*entity.RecurringAlarm, error)
	GetDue(ctx context.Context, id int64, localDate string) (*entity.RecurringAlarm, error)
	MarkFired(ctx context.Context, id int64, localDate string) error
}
