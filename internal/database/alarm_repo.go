package database

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/slack-alarm-bot/internal/domain/contract"
	"github.com/diegoclair/slack-alarm-bot/internal/domain/entity"
)

type alarmRepository struct {
	db dbConn
}

func newAlarmRepository(db dbConn) contract.AlarmRepo {
	return &alarmRepository{db: db}
}

const alarmColumns = `id, guild_id, channel_id, user_id, run_at, message, fired, created_at`

func (r *alarmRepository) Create(ctx context.Context, alarm *entity.Alarm) error {
	query := `
		INSERT INTO alarms (guild_id, channel_id, user_id, run_at, message)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		alarm.GuildID,
		alarm.ChannelID,
		alarm.UserID,
		alarm.RunAt.UTC().Unix(),
		alarm.Message,
	)
	if err != nil {
		return fmt.Errorf("failed to create alarm: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	alarm.ID = id
	return nil
}

func (r *alarmRepository) ListPending(ctx context.Context, guildID, userID string) ([]*entity.Alarm, error) {
	query := `
		SELECT ` + alarmColumns + `
		FROM alarms
		WHERE guild_id = ? AND user_id = ? AND fired = 0
		ORDER BY run_at, id
	`

	return r.query(ctx, "failed to list pending alarms", query, guildID, userID)
}

// Cancel deletes a pending alarm owned by guildID/userID. It reports false
// when the alarm does not exist, belongs to someone else or already fired.
func (r *alarmRepository) Cancel(ctx context.Context, id int64, guildID, userID string) (bool, error) {
	query := `DELETE FROM alarms WHERE id = ? AND guild_id = ? AND user_id = ? AND fired = 0`

	result, err := r.db.ExecContext(ctx, query, id, guildID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to cancel alarm: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return affected > 0, nil
}

func (r *alarmRepository) Due(ctx context.Context, now time.Time) ([]*entity.Alarm, error) {
	query := `
		SELECT ` + alarmColumns + `
		FROM alarms
		WHERE fired = 0 AND run_at <= ?
		ORDER BY run_at, id
	`

	return r.query(ctx, "failed to get due alarms", query, now.UTC().Unix())
}

// GetPending returns the alarm if it still exists and has not fired, or nil
// otherwise.
func (r *alarmRepository) GetPending(ctx context.Context, id int64) (*entity.Alarm, error) {
	query := `
		SELECT ` + alarmColumns + `
		FROM alarms
		WHERE id = ? AND fired = 0
	`

	alarms, err := r.query(ctx, "failed to get alarm", query, id)
	if err != nil {
		return nil, err
	}
	if len(alarms) == 0 {
		return nil, nil
	}

	return alarms[0], nil
}

func (r *alarmRepository) MarkFired(ctx context.Context, id int64) error {
	query := `UPDATE alarms SET fired = 1 WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to mark alarm %d as fired: %w", id, err)
	}

	return nil
}

func (r *alarmRepository) query(ctx context.Context, errMsg, query string, args ...any) ([]*entity.Alarm, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}
	defer rows.Close()

	var alarms []*entity.Alarm
	for rows.Next() {
		alarm := &entity.Alarm{}
		var runAt int64
		err := rows.Scan(
			&alarm.ID,
			&alarm.GuildID,
			&alarm.ChannelID,
			&alarm.UserID,
			&runAt,
			&alarm.Message,
			&alarm.Fired,
			&alarm.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alarm: %w", err)
		}
		alarm.RunAt = time.Unix(runAt, 0).UTC()
		alarms = append(alarms, alarm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}

	return alarms, nil
}
