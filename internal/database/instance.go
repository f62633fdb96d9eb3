package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/slack-alarm-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db            *DB
	alarmRepo     contract.AlarmRepo
	recurringRepo contract.RecurringRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.alarmRepo = newAlarmRepository(i.db.conn)
	i.recurringRepo = newRecurringRepository(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		alarmRepo:     newAlarmRepository(db),
		recurringRepo: newRecurringRepository(db),
	}
}

// Alarm returns the one-shot alarm repository
func (i *instance) Alarm() contract.AlarmRepo {
	return i.alarmRepo
}

// Recurring returns the recurring alarm repository
func (i *instance) Recurring() contract.RecurringRepo {
	return i.recurringRepo
}

// WithTransaction executes a function within a database transaction.
// Nested calls on a transaction-bound instance join the outer transaction.
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.db == nil {
		return fn(i)
	}

	tx, err := i.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
