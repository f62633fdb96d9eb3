package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/diegoclair/slack-alarm-bot/internal/domain"
	"github.com/diegoclair/slack-alarm-bot/internal/domain/entity"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestScheduler_Tick_OneShotExactlyOnce(t *testing.T) {
	env := newStoreTestEnv(t, "Asia/Seoul", "2025-01-01 12:00:00")
	ctx := context.Background()

	_, err := env.services.Alarm.RegisterRelative(ctx, "T1", "C1", "U1", 1, "stretch")
	require.NoError(t, err)

	// Not due yet
	env.clock.Advance(30 * time.Second)
	env.services.Scheduler.Tick(ctx)

	env.clock.Advance(31 * time.Second)
	env.notifier.EXPECT().
		Send(gomock.Any(), "C1", "<@U1> ⏰ Alarm: stretch", domain.MentionUser).
		Return(nil).
		Times(1)
	env.services.Scheduler.Tick(ctx)

	// Already fired
	env.clock.Advance(time.Minute)
	env.services.Scheduler.Tick(ctx)

	pending, err := env.services.Alarm.ListPending(ctx, "T1", "U1")
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestScheduler_Tick_OverdueAlarmsFireOnNextTick(t *testing.T) {
	env := newStoreTestEnv(t, "Asia/Seoul", "2025-01-01 12:00:00")
	ctx := context.Background()

	for _, msg := range []string{"first", "second"} {
		_, err := env.services.Alarm.RegisterRelative(ctx, "T1", "C1", "U1", 5, msg)
		require.NoError(t, err)
	}

	// The loop was down for a day
	env.clock.Advance(24 * time.Hour)

	gomock.InOrder(
		env.notifier.EXPECT().Send(gomock.Any(), "C1", "<@U1> ⏰ Alarm: first", domain.MentionUser).Return(nil),
		env.notifier.EXPECT().Send(gomock.Any(), "C1", "<@U1> ⏰ Alarm: second", domain.MentionUser).Return(nil),
	)
	env.services.Scheduler.Tick(ctx)
	env.services.Scheduler.Tick(ctx)
}

func TestScheduler_Tick_DeliveryFailureStillMarksFired(t *testing.T) {
	env := newStoreTestEnv(t, "Asia/Seoul", "2025-01-01 12:00:00")
	ctx := context.Background()

	_, err := env.services.Alarm.RegisterRelative(ctx, "T1", "C1", "U1", 1, "stretch")
	require.NoError(t, err)
	_, err = env.services.Alarm.RegisterRelative(ctx, "T1", "C2", "U2", 1, "water")
	require.NoError(t, err)

	env.clock.Advance(2 * time.Minute)
	env.notifier.EXPECT().Send(gomock.Any(), "C1", gomock.Any(), domain.MentionUser).
		Return(errors.New("channel_not_found"))
	env.notifier.EXPECT().Send(gomock.Any(), "C2", "<@U2> ⏰ Alarm: water", domain.MentionUser).
		Return(nil)
	env.services.Scheduler.Tick(ctx)

	env.clock.Advance(time.Minute)
	env.services.Scheduler.Tick(ctx)

	for _, user := range []string{"U1", "U2"} {
		pending, err := env.services.Alarm.ListPending(ctx, "T1", user)
		require.NoError(t, err)
		assert.Empty(t, pending, "alarm of %s should be fired", user)
	}
}

func TestScheduler_Tick_NotifyTimeout(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()
	m.expectTransactions()

	now := time.Date(2025, 1, 1, 3, 0, 0, 0, time.UTC)
	m.mockClock.EXPECT().Now().Return(now)
	slow := &entity.Alarm{ID: 1, ChannelID: "C1", UserID: "U1", Message: "slow"}
	m.mockAlarmRepo.EXPECT().Due(gomock.Any(), now).Return([]*entity.Alarm{slow}, nil)
	m.mockAlarmRepo.EXPECT().GetPending(gomock.Any(), int64(1)).Return(slow, nil)
	m.mockNotifier.EXPECT().Send(gomock.Any(), "C1", gomock.Any(), domain.MentionUser).
		DoAndReturn(func(ctx context.Context, _, _ string, _ domain.MentionPolicy) error {
			deadline, ok := ctx.Deadline()
			require.True(t, ok, "send must be bounded")
			assert.WithinDuration(t, time.Now().Add(250*time.Millisecond), deadline, 200*time.Millisecond)
			<-ctx.Done()
			return ctx.Err()
		})
	m.mockAlarmRepo.EXPECT().MarkFired(gomock.Any(), int64(1)).Return(nil)
	m.mockRecurringRepo.EXPECT().Due(gomock.Any(), "2025-01-01", 3*60).Return(nil, nil)

	s := New(m.mockDataManager, m.mockNotifier, m.mockClock, time.UTC, zerolog.Nop(), Options{NotifyTimeout: 250 * time.Millisecond})
	s.Scheduler.Tick(context.Background())
}

func TestScheduler_Tick_StorageFailureDoesNotStopOtherKind(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()
	m.expectTransactions()

	seoul, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) // 09:00 KST
	m.mockClock.EXPECT().Now().Return(now)
	m.mockAlarmRepo.EXPECT().Due(gomock.Any(), now).Return(nil, errors.New("database is locked"))
	standup := &entity.RecurringAlarm{ID: 3, ChannelID: "C9", UserID: "U1", Hour: 9, Message: "standup", PingEveryone: true}
	m.mockRecurringRepo.EXPECT().Due(gomock.Any(), "2025-01-01", 9*60).Return([]*entity.RecurringAlarm{standup}, nil)
	m.mockRecurringRepo.EXPECT().GetDue(gomock.Any(), int64(3), "2025-01-01").Return(standup, nil)
	m.mockNotifier.EXPECT().Send(gomock.Any(), "C9", "<!everyone> ⏰ Daily alarm: standup", domain.MentionEveryone).Return(nil)
	m.mockRecurringRepo.EXPECT().MarkFired(gomock.Any(), int64(3), "2025-01-01").Return(nil)

	s := New(m.mockDataManager, m.mockNotifier, m.mockClock, seoul, zerolog.Nop(), Options{})
	s.Scheduler.Tick(context.Background())
}

func TestScheduler_Tick_StorageFailureOnOneAlarmDoesNotStopTheNext(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()
	m.expectTransactions()

	now := time.Date(2025, 1, 1, 3, 0, 0, 0, time.UTC)
	m.mockClock.EXPECT().Now().Return(now)

	broken := &entity.Alarm{ID: 1, ChannelID: "C1", UserID: "U1", Message: "broken"}
	gone := &entity.Alarm{ID: 2, ChannelID: "C1", UserID: "U1", Message: "cancelled meanwhile"}
	fine := &entity.Alarm{ID: 3, ChannelID: "C2", UserID: "U2", Message: "water"}
	m.mockAlarmRepo.EXPECT().Due(gomock.Any(), now).Return([]*entity.Alarm{broken, gone, fine}, nil)

	gomock.InOrder(
		m.mockAlarmRepo.EXPECT().GetPending(gomock.Any(), int64(1)).Return(broken, nil),
		m.mockNotifier.EXPECT().Send(gomock.Any(), "C1", "<@U1> ⏰ Alarm: broken", domain.MentionUser).Return(nil),
		m.mockAlarmRepo.EXPECT().MarkFired(gomock.Any(), int64(1)).Return(errors.New("disk I/O error")),
		m.mockAlarmRepo.EXPECT().GetPending(gomock.Any(), int64(2)).Return(nil, nil),
		m.mockAlarmRepo.EXPECT().GetPending(gomock.Any(), int64(3)).Return(fine, nil),
		m.mockNotifier.EXPECT().Send(gomock.Any(), "C2", "<@U2> ⏰ Alarm: water", domain.MentionUser).Return(nil),
		m.mockAlarmRepo.EXPECT().MarkFired(gomock.Any(), int64(3)).Return(nil),
	)
	m.mockRecurringRepo.EXPECT().Due(gomock.Any(), "2025-01-01", 3*60).Return(nil, nil)

	s := New(m.mockDataManager, m.mockNotifier, m.mockClock, time.UTC, zerolog.Nop(), Options{})
	s.Scheduler.Tick(context.Background())
}

func TestScheduler_Tick_FailedTransactionLeavesAlarmsDue(t *testing.T) {
	env := newStoreTestEnv(t, "Asia/Seoul", "2025-01-01 12:00:00")
	ctx := context.Background()

	_, err := env.services.Alarm.RegisterRelative(ctx, "T1", "C1", "U1", 1, "stretch")
	require.NoError(t, err)
	env.clock.Advance(2 * time.Minute)

	// A cancelled context makes the transaction fail before anything is sent
	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	env.services.Scheduler.Tick(cancelled)

	pending, err := env.services.Alarm.ListPending(ctx, "T1", "U1")
	require.NoError(t, err)
	assert.Len(t, pending, 1, "alarm stays due after a failed tick")

	env.notifier.EXPECT().Send(gomock.Any(), "C1", "<@U1> ⏰ Alarm: stretch", domain.MentionUser).Return(nil)
	env.services.Scheduler.Tick(ctx)
}

func TestScheduler_Tick_RecurringOncePerLocalDay(t *testing.T) {
	env := newStoreTestEnv(t, "Asia/Seoul", "2025-01-01 08:00:00")
	ctx := context.Background()

	_, err := env.services.Alarm.RegisterRecurring(ctx, "T1", "C1", "U1", 9, 0, "standup", false)
	require.NoError(t, err)

	deliveries := map[string][]time.Time{}
	env.notifier.EXPECT().
		Send(gomock.Any(), "C1", "<@U1> ⏰ Daily alarm: standup", domain.MentionUser).
		DoAndReturn(func(context.Context, string, string, domain.MentionPolicy) error {
			local := env.clock.Now().In(env.loc)
			date := local.Format(domain.DateLayout)
			deliveries[date] = append(deliveries[date], local)
			return nil
		}).
		AnyTimes()

	for i := 0; i < 3*24*60; i++ {
		env.services.Scheduler.Tick(ctx)
		env.clock.Advance(time.Minute)
	}

	require.Len(t, deliveries, 3)
	for _, date := range []string{"2025-01-01", "2025-01-02", "2025-01-03"} {
		require.Len(t, deliveries[date], 1, date)
		assert.Equal(t, "09:00", deliveries[date][0].Format(domain.TimeOfDayLayout), date)
	}
}

func TestScheduler_Tick_RecurringAcrossDSTChange(t *testing.T) {
	// Clocks in New York jump from 02:00 to 03:00 on 2025-03-09
	env := newStoreTestEnv(t, "America/New_York", "2025-03-08 08:00:00")
	ctx := context.Background()

	_, err := env.services.Alarm.RegisterRecurring(ctx, "T1", "C1", "U1", 9, 0, "standup", false)
	require.NoError(t, err)

	var fired []time.Time
	env.notifier.EXPECT().
		Send(gomock.Any(), "C1", gomock.Any(), domain.MentionUser).
		DoAndReturn(func(context.Context, string, string, domain.MentionPolicy) error {
			fired = append(fired, env.clock.Now())
			return nil
		}).
		AnyTimes()

	for i := 0; i < 3*24*60; i++ {
		env.services.Scheduler.Tick(ctx)
		env.clock.Advance(time.Minute)
	}

	require.Len(t, fired, 3)
	assert.Equal(t, "2025-03-08T14:00:00Z", fired[0].Format(time.RFC3339), "09:00 EST")
	assert.Equal(t, "2025-03-09T13:00:00Z", fired[1].Format(time.RFC3339), "09:00 EDT")
	assert.Equal(t, "2025-03-10T13:00:00Z", fired[2].Format(time.RFC3339), "09:00 EDT")
	for _, ts := range fired {
		assert.Equal(t, "09:00", ts.In(env.loc).Format(domain.TimeOfDayLayout))
	}
}

func TestScheduler_Tick_RecurringMissedWhileDown(t *testing.T) {
	env := newStoreTestEnv(t, "Asia/Seoul", "2025-01-01 08:00:00")
	ctx := context.Background()

	_, err := env.services.Alarm.RegisterRecurring(ctx, "T1", "C1", "U1", 9, 0, "standup", true)
	require.NoError(t, err)

	// Back up at 15:00, the 09:00 alarm still fires once today
	env.clock.Advance(7 * time.Hour)
	env.notifier.EXPECT().
		Send(gomock.Any(), "C1", "<!everyone> ⏰ Daily alarm: standup", domain.MentionEveryone).
		Return(nil).
		Times(1)
	env.services.Scheduler.Tick(ctx)
	env.clock.Advance(time.Minute)
	env.services.Scheduler.Tick(ctx)
}

func TestScheduler_Tick_RegisteredAfterTimeStartsTomorrow(t *testing.T) {
	env := newStoreTestEnv(t, "Asia/Seoul", "2025-01-01 10:00:00")
	ctx := context.Background()

	conf, err := env.services.Alarm.RegisterRecurring(ctx, "T1", "C1", "U1", 9, 0, "standup", false)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-02", conf.FirstLocalDate)

	env.services.Scheduler.Tick(ctx)

	list, err := env.services.Alarm.ListRecurring(ctx, "T1", "U1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Empty(t, list[0].LastFiredDate, "not delivered on the registration day")
	assert.Equal(t, "2025-01-02", list[0].StartsOn)

	// 08:59 next day
	env.clock.Advance(22*time.Hour + 59*time.Minute)
	env.services.Scheduler.Tick(ctx)

	env.clock.Advance(time.Minute)
	env.notifier.EXPECT().Send(gomock.Any(), "C1", "<@U1> ⏰ Daily alarm: standup", domain.MentionUser).Return(nil)
	env.services.Scheduler.Tick(ctx)

	list, err = env.services.Alarm.ListRecurring(ctx, "T1", "U1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "2025-01-02", list[0].LastFiredDate)
}

func TestScheduler_StartStop(t *testing.T) {
	env := newStoreTestEnv(t, "Asia/Seoul", "2025-01-01 12:00:00")
	ctx := context.Background()

	_, err := env.services.Alarm.RegisterRelative(ctx, "T1", "C1", "U1", 1, "stretch")
	require.NoError(t, err)
	env.clock.Advance(2 * time.Minute)

	delivered := make(chan struct{})
	env.notifier.EXPECT().Send(gomock.Any(), "C1", "<@U1> ⏰ Alarm: stretch", domain.MentionUser).
		DoAndReturn(func(context.Context, string, string, domain.MentionPolicy) error {
			close(delivered)
			return nil
		})

	env.services.Scheduler.Start()
	env.services.Scheduler.Start() // second call is a no-op

	select {
	case <-delivered:
	case <-time.After(5 * time.Second):
		t.Fatal("first tick did not run on start")
	}

	stopCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, env.services.Scheduler.Stop(stopCtx))
	require.NoError(t, env.services.Scheduler.Stop(stopCtx), "stopping twice is harmless")
}

func TestScheduler_StopBeforeStart(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := New(m.mockDataManager, m.mockNotifier, m.mockClock, time.UTC, zerolog.Nop(), Options{})
	assert.NoError(t, s.Scheduler.Stop(context.Background()))
}

func TestScheduler_Tick_CommandsDuringSlowTickAreNotRejected(t *testing.T) {
	env := newFileStoreTestEnv(t, "Asia/Seoul", "2025-01-01 12:00:00", 500*time.Millisecond)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := env.services.Alarm.RegisterRelative(ctx, "T1", "C1", "U1", 1, fmt.Sprintf("alarm %d", i))
		require.NoError(t, err)
	}
	env.clock.Advance(2 * time.Minute)

	// Together the sends take longer than the busy timeout
	sending := make(chan struct{}, 5)
	env.notifier.EXPECT().Send(gomock.Any(), "C1", gomock.Any(), domain.MentionUser).
		DoAndReturn(func(context.Context, string, string, domain.MentionPolicy) error {
			sending <- struct{}{}
			time.Sleep(150 * time.Millisecond)
			return nil
		}).
		Times(5)

	done := make(chan struct{})
	go func() {
		defer close(done)
		env.services.Scheduler.Tick(ctx)
	}()

	<-sending
	conf, err := env.services.Alarm.RegisterRelative(ctx, "T1", "C2", "U2", 30, "during tick")
	require.NoError(t, err)
	_, err = env.services.Alarm.RegisterRecurring(ctx, "T1", "C2", "U2", 20, 0, "journal", false)
	require.NoError(t, err)
	<-done

	pending, err := env.services.Alarm.ListPending(ctx, "T1", "U2")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, conf.ID, pending[0].ID)

	pending, err = env.services.Alarm.ListPending(ctx, "T1", "U1")
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestScheduler_Tick_CancelRacingDelivery(t *testing.T) {
	t.Run("delivery commits first, cancel finds nothing", func(t *testing.T) {
		env := newFileStoreTestEnv(t, "Asia/Seoul", "2025-01-01 12:00:00", 5*time.Second)
		ctx := context.Background()

		conf, err := env.services.Alarm.RegisterRelative(ctx, "T1", "C1", "U1", 1, "stretch")
		require.NoError(t, err)
		env.clock.Advance(2 * time.Minute)

		sending := make(chan struct{})
		release := make(chan struct{})
		env.notifier.EXPECT().Send(gomock.Any(), "C1", "<@U1> ⏰ Alarm: stretch", domain.MentionUser).
			DoAndReturn(func(context.Context, string, string, domain.MentionPolicy) error {
				close(sending)
				<-release
				return nil
			})

		done := make(chan struct{})
		go func() {
			defer close(done)
			env.services.Scheduler.Tick(ctx)
		}()
		<-sending

		type result struct {
			changed bool
			err     error
		}
		cancelled := make(chan result, 1)
		go func() {
			changed, err := env.services.Alarm.Cancel(ctx, "T1", "U1", conf.ID)
			cancelled <- result{changed, err}
		}()

		// Cancel waits on the delivery transaction
		time.Sleep(50 * time.Millisecond)
		close(release)
		<-done

		res := <-cancelled
		require.NoError(t, res.err)
		assert.False(t, res.changed)
	})

	t.Run("cancel commits first, nothing is delivered", func(t *testing.T) {
		env := newFileStoreTestEnv(t, "Asia/Seoul", "2025-01-01 12:00:00", 5*time.Second)
		ctx := context.Background()

		conf, err := env.services.Alarm.RegisterRelative(ctx, "T1", "C1", "U1", 1, "stretch")
		require.NoError(t, err)
		env.clock.Advance(2 * time.Minute)

		// Cancel lands between the due query and the delivery transaction
		var cancelled bool
		dm := &hookedDataManager{DataManager: env.dm}
		dm.hook = func() {
			cancelled, err = env.services.Alarm.Cancel(ctx, "T1", "U1", conf.ID)
		}

		s := New(dm, env.notifier, env.clock, env.loc, zerolog.Nop(), Options{})
		s.Scheduler.Tick(ctx)

		require.NoError(t, err)
		assert.True(t, cancelled)

		pending, err := env.services.Alarm.ListPending(ctx, "T1", "U1")
		require.NoError(t, err)
		assert.Empty(t, pending)
	})
}
