package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/diegoclair/slack-alarm-bot/internal/domain/contract"
	"github.com/diegoclair/slack-alarm-bot/internal/domain/entity"
)

type recurringRepository struct {
	db dbConn
}

func newRecurringRepository(db dbConn) contract.RecurringRepo {
	return &recurringRepository{db: db}
}

const recurringColumns = `id, guild_id, channel_id, user_id, hour, minute, message,
	enabled, last_fired_date, starts_on, ping_everyone, created_at`

func (r *recurringRepository) Create(ctx context.Context, alarm *entity.RecurringAlarm) error {
	query := `
		INSERT INTO recurring_alarms (guild_id, channel_id, user_id, hour, minute,
			message, enabled, last_fired_date, starts_on, ping_everyone)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		alarm.GuildID,
		alarm.ChannelID,
		alarm.UserID,
		alarm.Hour,
		alarm.Minute,
		alarm.Message,
		alarm.Enabled,
		nullableDate(alarm.LastFiredDate),
		nullableDate(alarm.StartsOn),
		alarm.PingEveryone,
	)
	if err != nil {
		return fmt.Errorf("failed to create recurring alarm: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	alarm.ID = id
	return nil
}

func (r *recurringRepository) List(ctx context.Context, guildID, userID string) ([]*entity.RecurringAlarm, error) {
	query := `
		SELECT ` + recurringColumns + `
		FROM recurring_alarms
		WHERE guild_id = ? AND user_id = ?
		ORDER BY hour, minute, id
	`

	return r.query(ctx, "failed to list recurring alarms", query, guildID, userID)
}

// Disable turns off every enabled recurrence matching the exact
// guild/channel/user/time tuple.
func (r *recurringRepository) Disable(ctx context.Context, guildID, channelID, userID string, hour, minute int) (bool, error) {
	query := `
		UPDATE recurring_alarms SET enabled = 0
		WHERE guild_id = ? AND channel_id = ? AND user_id = ?
			AND hour = ? AND minute = ? AND enabled = 1
	`

	result, err := r.db.ExecContext(ctx, query, guildID, channelID, userID, hour, minute)
	if err != nil {
		return false, fmt.Errorf("failed to disable recurring alarm: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return affected > 0, nil
}

// Due returns enabled recurrences whose time of day is at or before
// minuteOfDay, that have started by localDate and have not fired on it.
func (r *recurringRepository) Due(ctx context.Context, localDate string, minuteOfDay int) ([]*entity.RecurringAlarm, error) {
	query := `
		SELECT ` + recurringColumns + `
		FROM recurring_alarms
		WHERE enabled = 1
			AND (last_fired_date IS NULL OR last_fired_date <> ?)
			AND (starts_on IS NULL OR starts_on <= ?)
			AND hour * 60 + minute <= ?
		ORDER BY hour, minute, id
	`

	return r.query(ctx, "failed to get due recurring alarms", query, localDate, localDate, minuteOfDay)
}

// GetDue returns the recurrence if it is still enabled, has started by
// localDate and has not fired on it, or nil otherwise.
func (r *recurringRepository) GetDue(ctx context.Context, id int64, localDate string) (*entity.RecurringAlarm, error) {
	query := `
		SELECT ` + recurringColumns + `
		FROM recurring_alarms
		WHERE id = ? AND enabled = 1
			AND (last_fired_date IS NULL OR last_fired_date <> ?)
			AND (starts_on IS NULL OR starts_on <= ?)
	`

	alarms, err := r.query(ctx, "failed to get recurring alarm", query, id, localDate, localDate)
	if err != nil {
		return nil, err
	}
	if len(alarms) == 0 {
		return nil, nil
	}

	return alarms[0], nil
}

func (r *recurringRepository) MarkFired(ctx context.Context, id int64, localDate string) error {
	query := `UPDATE recurring_alarms SET last_fired_date = ? WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, localDate, id)
	if err != nil {
		return fmt.Errorf("failed to mark recurring alarm %d as fired: %w", id, err)
	}

	return nil
}

func (r *recurringRepository) query(ctx context.Context, errMsg, query string, args ...any) ([]*entity.RecurringAlarm, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}
	defer rows.Close()

	var alarms []*entity.RecurringAlarm
	for rows.Next() {
		alarm := &entity.RecurringAlarm{}
		var lastFired, startsOn sql.NullString
		err := rows.Scan(
			&alarm.ID,
			&alarm.GuildID,
			&alarm.ChannelID,
			&alarm.UserID,
			&alarm.Hour,
			&alarm.Minute,
			&alarm.Message,
			&alarm.Enabled,
			&lastFired,
			&startsOn,
			&alarm.PingEveryone,
			&alarm.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recurring alarm: %w", err)
		}
		alarm.LastFiredDate = lastFired.String
		alarm.StartsOn = startsOn.String
		alarms = append(alarms, alarm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}

	return alarms, nil
}

func nullableDate(date string) sql.NullString {
	return sql.NullString{String: date, Valid: date != ""}
}
