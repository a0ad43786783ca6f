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

func seedStatusEvent(t *testing.T, repo *memRepo, userID uuid.UUID, start, end time.Time, status entity.EventStatus) entity.CalendarEvent {
	t.Helper()
	created, err := repo.Create(context.Background(), &entity.CalendarEvent{
		UserID: userID,
		Title:  "Application deadline",
		Start:  start,
		End:    end,
		Type:   entity.EventTypeDeadline,
		Status: status,
	})
	require.NoError(t, err)
	return *created
}

func TestStatusReconciler_Transitions(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		start  time.Time
		end    time.Time
		status entity.EventStatus
		want   entity.EventStatus
	}{
		{
			name:   "ended event becomes past",
			start:  now.Add(-3 * time.Hour),
			end:    now.Add(-2 * time.Hour),
			status: entity.EventStatusUpcoming,
			want:   entity.EventStatusPast,
		},
		{
			name:   "future event stays upcoming",
			start:  now.Add(time.Hour),
			end:    now.Add(2 * time.Hour),
			status: entity.EventStatusUpcoming,
			want:   entity.EventStatusUpcoming,
		},
		{
			name:   "stale past status on a future event is corrected",
			start:  now.Add(time.Hour),
			end:    now.Add(2 * time.Hour),
			status: entity.EventStatusPast,
			want:   entity.EventStatusUpcoming,
		},
		{
			name:   "in-progress event keeps its current value",
			start:  now.Add(-time.Hour),
			end:    now.Add(time.Hour),
			status: entity.EventStatusUpcoming,
			want:   entity.EventStatusUpcoming,
		},
		{
			name:   "completed is sticky even after end",
			start:  now.Add(-3 * time.Hour),
			end:    now.Add(-2 * time.Hour),
			status: entity.EventStatusCompleted,
			want:   entity.EventStatusCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo := newMemRepo()
			userID := uuid.New()
			event := seedStatusEvent(t, repo, userID, tt.start, tt.end, tt.status)

			reconciler := NewStatusReconciler(userID, repo, newFakeClock(now))
			require.NoError(t, reconciler.Reconcile(context.Background()))

			assert.Equal(t, tt.want, repo.mustGet(event.ID).Status)
		})
	}
}

func TestStatusReconciler_PastThenCompletedStaysCompleted(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	clock := newFakeClock(now)
	repo := newMemRepo()
	userID := uuid.New()

	event := seedStatusEvent(t, repo, userID,
		now.Add(-3*time.Hour), now.Add(-2*time.Hour), entity.EventStatusUpcoming)

	reconciler := NewStatusReconciler(userID, repo, clock)
	require.NoError(t, reconciler.Reconcile(context.Background()))
	require.Equal(t, entity.EventStatusPast, repo.mustGet(event.ID).Status)

	// User marks the past event complete; allowed, and terminal.
	svc := NewCalendarService(repo, clock)
	_, appErr := svc.MarkCompleted(context.Background(), userID, event.ID)
	require.Nil(t, appErr)

	for i := 0; i < 3; i++ {
		clock.Advance(time.Minute)
		require.NoError(t, reconciler.Reconcile(context.Background()))
		assert.Equal(t, entity.EventStatusCompleted, repo.mustGet(event.ID).Status)
	}
}

func TestStatusReconciler_UpdateFailureDoesNotHaltPass(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	repo := newMemRepo()
	userID := uuid.New()

	first := seedStatusEvent(t, repo, userID,
		now.Add(-4*time.Hour), now.Add(-3*time.Hour), entity.EventStatusUpcoming)
	second := seedStatusEvent(t, repo, userID,
		now.Add(-2*time.Hour), now.Add(-time.Hour), entity.EventStatusUpcoming)

	repo.failNextUpdate(errors.New("write timeout"))

	reconciler := NewStatusReconciler(userID, repo, newFakeClock(now))
	require.NoError(t, reconciler.Reconcile(context.Background()))

	// First write failed and is retried next tick; the second still went through.
	assert.Equal(t, entity.EventStatusUpcoming, repo.mustGet(first.ID).Status)
	assert.Equal(t, entity.EventStatusPast, repo.mustGet(second.ID).Status)

	require.NoError(t, reconciler.Reconcile(context.Background()))
	assert.Equal(t, entity.EventStatusPast, repo.mustGet(first.ID).Status)
}

func TestStatusReconciler_SkipsMalformedEvents(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	repo := newMemRepo()
	userID := uuid.New()

	_, err := repo.Create(context.Background(), &entity.CalendarEvent{
		UserID: userID,
		Title:  "no times",
		Type:   entity.EventTypeReminder,
		Status: entity.EventStatusUpcoming,
	})
	require.NoError(t, err)

	healthy := seedStatusEvent(t, repo, userID,
		now.Add(-2*time.Hour), now.Add(-time.Hour), entity.EventStatusUpcoming)

	reconciler := NewStatusReconciler(userID, repo, newFakeClock(now))
	require.NoError(t, reconciler.Reconcile(context.Background()))

	assert.Equal(t, entity.EventStatusPast, repo.mustGet(healthy.ID).Status)
}
