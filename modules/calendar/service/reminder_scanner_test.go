package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"internhub/modules/calendar/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedEvent(t *testing.T, repo *memRepo, userID uuid.UUID, start time.Time, reminders entity.ReminderList) entity.CalendarEvent {
	t.Helper()
	created, err := repo.Create(context.Background(), &entity.CalendarEvent{
		UserID:    userID,
		Title:     "Backend interview",
		Start:     start,
		End:       start.Add(time.Hour),
		Type:      entity.EventTypeInterview,
		Status:    entity.EventStatusUpcoming,
		Reminders: reminders,
	})
	require.NoError(t, err)
	return *created
}

func TestReminderScanner_FiresDueReminderOnce(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	clock := newFakeClock(now)
	repo := newMemRepo()
	presenter := &recordingPresenter{}
	userID := uuid.New()

	event := seedEvent(t, repo, userID, now.Add(time.Hour), entity.ReminderList{
		{ID: "rem-a", Time: now.Add(-time.Minute), Triggered: false},
	})

	scanner := NewReminderScanner(userID, repo, presenter, clock)
	require.NoError(t, scanner.Scan(context.Background()))

	require.Equal(t, 1, presenter.count())
	assert.Equal(t, event.ID, presenter.last().EventID)
	assert.Equal(t, "rem-a", presenter.last().ReminderID)

	stored := repo.mustGet(event.ID)
	assert.True(t, stored.Reminders[0].Triggered, "triggered flag must be persisted")

	// Second scan with no time advance: nothing new fires.
	require.NoError(t, scanner.Scan(context.Background()))
	assert.Equal(t, 1, presenter.count())
}

func TestReminderScanner_AtMostOnePerTick(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	clock := newFakeClock(now)
	repo := newMemRepo()
	presenter := &recordingPresenter{}
	userID := uuid.New()

	// Both events have a due reminder; iteration order decides the winner.
	eventA := seedEvent(t, repo, userID, now.Add(time.Hour), entity.ReminderList{
		{ID: "rem-a", Time: now.Add(-2 * time.Minute)},
	})
	eventB := seedEvent(t, repo, userID, now.Add(2*time.Hour), entity.ReminderList{
		{ID: "rem-b", Time: now.Add(-10 * time.Minute)},
	})

	scanner := NewReminderScanner(userID, repo, presenter, clock)

	require.NoError(t, scanner.Scan(context.Background()))
	require.Equal(t, 1, presenter.count())
	assert.Equal(t, eventA.ID, presenter.last().EventID, "first event in store order wins, not earliest due")
	assert.False(t, repo.mustGet(eventB.ID).Reminders[0].Triggered)

	// B's reminder is picked up on the next tick.
	require.NoError(t, scanner.Scan(context.Background()))
	require.Equal(t, 2, presenter.count())
	assert.Equal(t, eventB.ID, presenter.last().EventID)
	assert.True(t, repo.mustGet(eventB.ID).Reminders[0].Triggered)
}

func TestReminderScanner_NotDueYet(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	clock := newFakeClock(now)
	repo := newMemRepo()
	presenter := &recordingPresenter{}
	userID := uuid.New()

	event := seedEvent(t, repo, userID, now.Add(time.Hour), entity.ReminderList{
		{ID: "rem-a", Time: now.Add(30 * time.Minute)},
	})

	scanner := NewReminderScanner(userID, repo, presenter, clock)
	require.NoError(t, scanner.Scan(context.Background()))
	assert.Zero(t, presenter.count())

	// Becomes due after the clock passes its time.
	clock.Advance(31 * time.Minute)
	require.NoError(t, scanner.Scan(context.Background()))
	require.Equal(t, 1, presenter.count())
	assert.Equal(t, event.ID, presenter.last().EventID)
}

func TestReminderScanner_StoreFailureLeavesReminderPending(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	clock := newFakeClock(now)
	repo := newMemRepo()
	presenter := &recordingPresenter{}
	userID := uuid.New()

	event := seedEvent(t, repo, userID, now.Add(time.Hour), entity.ReminderList{
		{ID: "rem-a", Time: now.Add(-time.Minute)},
	})

	repo.failNextUpdate(errors.New("connection reset"))

	scanner := NewReminderScanner(userID, repo, presenter, clock)
	err := scanner.Scan(context.Background())

	require.Error(t, err)
	assert.Zero(t, presenter.count(), "presenter must not run before the triggered-write lands")
	assert.False(t, repo.mustGet(event.ID).Reminders[0].Triggered)

	// Retry on the next tick succeeds.
	require.NoError(t, scanner.Scan(context.Background()))
	assert.Equal(t, 1, presenter.count())
	assert.True(t, repo.mustGet(event.ID).Reminders[0].Triggered)
}

func TestReminderScanner_SkipsMalformedEvents(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	clock := newFakeClock(now)
	repo := newMemRepo()
	presenter := &recordingPresenter{}
	userID := uuid.New()

	// Missing start/end: must be skipped, not crash the loop.
	_, err := repo.Create(context.Background(), &entity.CalendarEvent{
		UserID: userID,
		Title:  "broken",
		Type:   entity.EventTypeReminder,
		Status: entity.EventStatusUpcoming,
		Reminders: entity.ReminderList{
			{ID: "rem-broken", Time: now.Add(-time.Hour)},
		},
	})
	require.NoError(t, err)

	healthy := seedEvent(t, repo, userID, now.Add(time.Hour), entity.ReminderList{
		{ID: "rem-ok", Time: now.Add(-time.Minute)},
	})

	scanner := NewReminderScanner(userID, repo, presenter, clock)
	require.NoError(t, scanner.Scan(context.Background()))

	require.Equal(t, 1, presenter.count())
	assert.Equal(t, healthy.ID, presenter.last().EventID)
}

func TestReminderScanner_TriggeredIsMonotonic(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	clock := newFakeClock(now)
	repo := newMemRepo()
	presenter := &recordingPresenter{}
	userID := uuid.New()

	event := seedEvent(t, repo, userID, now.Add(time.Hour), entity.ReminderList{
		{ID: "rem-a", Time: now.Add(-2 * time.Minute)},
		{ID: "rem-b", Time: now.Add(-time.Minute)},
	})

	scanner := NewReminderScanner(userID, repo, presenter, clock)

	// Drain both reminders over several ticks; rem-a must stay triggered
	// throughout.
	for i := 0; i < 4; i++ {
		require.NoError(t, scanner.Scan(context.Background()))
		stored := repo.mustGet(event.ID)
		if i >= 0 {
			assert.True(t, stored.Reminders[0].Triggered, "tick %d: rem-a flipped back", i)
		}
	}

	assert.Equal(t, 2, presenter.count())
	stored := repo.mustGet(event.ID)
	assert.True(t, stored.Reminders[0].Triggered)
	assert.True(t, stored.Reminders[1].Triggered)
}

func TestReminderScanner_ScopedToOwnUser(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	clock := newFakeClock(now)
	repo := newMemRepo()
	presenter := &recordingPresenter{}

	owner := uuid.New()
	other := uuid.New()

	seedEvent(t, repo, other, now.Add(time.Hour), entity.ReminderList{
		{ID: "rem-foreign", Time: now.Add(-time.Minute)},
	})

	scanner := NewReminderScanner(owner, repo, presenter, clock)
	require.NoError(t, scanner.Scan(context.Background()))

	assert.Zero(t, presenter.count(), "scanner must never act on another user's events")
}
