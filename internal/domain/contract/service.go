package contract

//go:generate mockgen -source=service.go -destination=../../../mocks/service.go -package=mocks

import (
	"context"
	"time"

	"github.com/diegoclair/slack-alarm-bot/internal/domain/entity"
)

type AlarmService interface {
	RegisterRelative(ctx context.Context, guildID, channelID, userID string, minutes int, message string) (*entity.Confirmation, error)
	RegisterAbsolute(ctx context.Context, guildID, channelID, userID, whenLocal, message string) (*entity.Confirmation, error)
	ListPending(ctx context.Context, guildID, userID string) ([]entity.PendingAlarm, error)
	Cancel(ctx context.Context, guildID, userID string, id int64) (bool, error)
	RegisterRecurring(ctx context.Context, guildID, channelID, userID string, hour, minute int, message string, pingEveryone bool) (*entity.RecurringConfirmation, error)
	DisableRecurring(ctx context.Context, guildID, channelID, userID string, hour, minute int) (bool, error)
	ListRecurring(ctx context.Context, guildID, userID string) ([]*entity.RecurringAlarm, error)
	Location() *time.Location
}

// Clock supplies the current instant
type Clock interface {
	Now() time.Time
}
