package service

import (
	"context"
	"testing"
	"time"

	"internhub/modules/calendar/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineManager_SessionLifecycle(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	clock := newFakeClock(now)
	repo := newMemRepo()
	presenter := &recordingPresenter{}
	userID := uuid.New()

	seedEvent(t, repo, userID, now.Add(time.Hour), entity.ReminderList{
		{ID: "rem-a", Time: now.Add(-time.Minute)},
	})

	// Long intervals: only the immediate first tick of each task runs
	// during the test.
	manager := NewEngineManager(repo, presenter, clock, time.Hour, time.Hour)
	manager.StartSession(context.Background(), userID)
	// Second login must not spawn a second engine.
	manager.StartSession(context.Background(), userID)

	require.Eventually(t, func() bool {
		return presenter.count() == 1
	}, 2*time.Second, 10*time.Millisecond)

	manager.StopSession(userID)

	// After logout nothing scans: a newly due reminder stays pending.
	added, err := repo.Create(context.Background(), &entity.CalendarEvent{
		UserID: userID,
		Title:  "after logout",
		Start:  now.Add(time.Hour),
		End:    now.Add(2 * time.Hour),
		Type:   entity.EventTypeReminder,
		Status: entity.EventStatusUpcoming,
		Reminders: entity.ReminderList{
			{ID: "rem-b", Time: now.Add(-time.Minute)},
		},
	})
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, presenter.count())
	assert.False(t, repo.mustGet(added.ID).Reminders[0].Triggered)
}

func TestEngineManager_StopAll(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	manager := NewEngineManager(newMemRepo(), &recordingPresenter{}, newFakeClock(now), time.Hour, time.Hour)

	first, second := uuid.New(), uuid.New()
	manager.StartSession(context.Background(), first)
	manager.StartSession(context.Background(), second)

	// Must not block or panic with multiple live engines.
	manager.StopAll()
	// Stopping again is a no-op.
	manager.StopSession(first)
}
