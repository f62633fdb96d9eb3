package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	_ "time/tzdata"

	"github.com/diegoclair/slack-alarm-bot/internal/database"
	"github.com/diegoclair/slack-alarm-bot/internal/domain/contract"
	"github.com/diegoclair/slack-alarm-bot/migrator/sqlite"
	"github.com/diegoclair/slack-alarm-bot/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager   *mocks.MockDataManager
	mockAlarmRepo     *mocks.MockAlarmRepo
	mockRecurringRepo *mocks.MockRecurringRepo
	mockNotifier      *mocks.MockNotifier
	mockClock         *mocks.MockClock
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	alarmRepo := mocks.NewMockAlarmRepo(ctrl)
	dm.EXPECT().Alarm().Return(alarmRepo).AnyTimes()

	recurringRepo := mocks.NewMockRecurringRepo(ctrl)
	dm.EXPECT().Recurring().Return(recurringRepo).AnyTimes()

	m = allMocks{
		mockDataManager:   dm,
		mockAlarmRepo:     alarmRepo,
		mockRecurringRepo: recurringRepo,
		mockNotifier:      mocks.NewMockNotifier(ctrl),
		mockClock:         mocks.NewMockClock(ctrl),
	}

	// validate service creation
	services := New(dm, m.mockNotifier, m.mockClock, time.UTC, zerolog.Nop(), Options{})
	require.NotNil(t, services.Alarm)
	require.NotNil(t, services.Scheduler)

	return
}

// expectTransactions makes WithTransaction run its callback against the mocked
// DataManager.
func (m allMocks) expectTransactions() {
	m.mockDataManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, fn func(contract.DataManager) error) error {
			return fn(m.mockDataManager)
		}).AnyTimes()
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now.UTC()
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// storeTestEnv wires the services to a migrated in-memory database.
type storeTestEnv struct {
	services *Services
	dm       contract.DataManager
	notifier *mocks.MockNotifier
	clock    *fakeClock
	loc      *time.Location
}

func newStoreTestEnv(t *testing.T, zone, startLocal string) storeTestEnv {
	t.Helper()

	loc, err := time.LoadLocation(zone)
	require.NoError(t, err)
	start := mustLocal(t, loc, startLocal)

	db := database.SetupTestDB(t)
	t.Cleanup(func() { database.CleanupTestDB(t, db) })

	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockNotifier(ctrl)
	clock := newFakeClock(start)
	dm := database.NewInstance(db)

	return storeTestEnv{
		services: New(dm, notifier, clock, loc, zerolog.Nop(), Options{TickInterval: time.Hour}),
		dm:       dm,
		notifier: notifier,
		clock:    clock,
		loc:      loc,
	}
}

// newFileStoreTestEnv is like newStoreTestEnv but on a WAL database file, so
// the scheduler and commands use separate connections and real locking.
func newFileStoreTestEnv(t *testing.T, zone, startLocal string, busyTimeout time.Duration) storeTestEnv {
	t.Helper()

	loc, err := time.LoadLocation(zone)
	require.NoError(t, err)
	start := mustLocal(t, loc, startLocal)

	db, err := database.New(filepath.Join(t.TempDir(), "alarms.db"), busyTimeout)
	require.NoError(t, err)
	t.Cleanup(func() { database.CleanupTestDB(t, db) })
	require.NoError(t, sqlite.Migrate(db.DB()))

	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockNotifier(ctrl)
	clock := newFakeClock(start)
	dm := database.NewInstance(db)

	return storeTestEnv{
		services: New(dm, notifier, clock, loc, zerolog.Nop(), Options{TickInterval: time.Hour}),
		dm:       dm,
		notifier: notifier,
		clock:    clock,
		loc:      loc,
	}
}

// hookedDataManager runs hook once, right before the first transaction.
type hookedDataManager struct {
	contract.DataManager
	once sync.Once
	hook func()
}

func (d *hookedDataManager) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	d.once.Do(d.hook)
	return d.DataManager.WithTransaction(ctx, fn)
}

func mustLocal(t *testing.T, loc *time.Location, value string) time.Time {
	t.Helper()

	ts, err := time.ParseInLocation("2006-01-02 15:04:05", value, loc)
	require.NoError(t, err)
	return ts
}
