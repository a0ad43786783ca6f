package service

import (
	"context"
	"testing"
	"time"

	"internhub/modules/calendar/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarService_CreateEventGeneratesReminders(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	repo := newMemRepo()
	svc := NewCalendarService(repo, newFakeClock(now))
	userID := uuid.New()

	start := now.AddDate(0, 0, 10)
	created, appErr := svc.CreateEvent(context.Background(), userID, &dto.CreateEventRequest{
		Title: "Campus drive",
		Start: start,
		End:   start.Add(4 * time.Hour),
		Type:  "drive",
		URL:   "https://careers.example.com/apply",
	})

	require.Nil(t, appErr)
	assert.Equal(t, "upcoming", created.Status)
	assert.Len(t, created.Reminders, 4)
	for _, r := range created.Reminders {
		assert.False(t, r.Triggered)
	}
}

func TestCalendarService_CreateEventRejectsBadInput(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	svc := NewCalendarService(newMemRepo(), newFakeClock(now))
	userID := uuid.New()

	tests := []struct {
		name string
		req  dto.CreateEventRequest
	}{
		{
			name: "unknown type",
			req: dto.CreateEventRequest{
				Title: "x", Start: now.Add(time.Hour), End: now.Add(2 * time.Hour), Type: "meetup",
			},
		},
		{
			name: "missing title",
			req: dto.CreateEventRequest{
				Start: now.Add(time.Hour), End: now.Add(2 * time.Hour), Type: "interview",
			},
		},
		{
			name: "missing start",
			req: dto.CreateEventRequest{
				Title: "x", End: now.Add(2 * time.Hour), Type: "interview",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, appErr := svc.CreateEvent(context.Background(), userID, &tt.req)
			require.NotNil(t, appErr)
		})
	}
}

func TestCalendarService_UpdateEventRegeneratesReminders(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	repo := newMemRepo()
	svc := NewCalendarService(repo, newFakeClock(now))
	userID := uuid.New()

	start := now.AddDate(0, 0, 5)
	created, appErr := svc.CreateEvent(context.Background(), userID, &dto.CreateEventRequest{
		Title: "HR interview",
		Start: start,
		End:   start.Add(time.Hour),
		Type:  "interview",
	})
	require.Nil(t, appErr)

	oldIDs := map[string]bool{}
	for _, r := range created.Reminders {
		oldIDs[r.ID] = true
	}

	newStart := now.AddDate(0, 0, 12)
	updated, appErr := svc.UpdateEvent(context.Background(), userID, created.ID, &dto.UpdateEventRequest{
		Start: newStart,
		End:   newStart.Add(time.Hour),
	})
	require.Nil(t, appErr)

	require.NotEmpty(t, updated.Reminders)
	for _, r := range updated.Reminders {
		assert.False(t, oldIDs[r.ID], "old reminder %s survived regeneration", r.ID)
		assert.False(t, r.Triggered)
		assert.True(t, r.Time.Before(newStart))
	}
}

func TestCalendarService_DeleteEventRemovesReminders(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	repo := newMemRepo()
	clock := newFakeClock(now)
	svc := NewCalendarService(repo, clock)
	userID := uuid.New()

	start := now.AddDate(0, 0, 3)
	created, appErr := svc.CreateEvent(context.Background(), userID, &dto.CreateEventRequest{
		Title: "Submit application",
		Start: start,
		End:   start.Add(time.Hour),
		Type:  "deadline",
	})
	require.Nil(t, appErr)

	require.Nil(t, svc.DeleteEvent(context.Background(), userID, created.ID))

	_, appErr = svc.GetEventByID(context.Background(), userID, created.ID)
	require.NotNil(t, appErr)

	// No orphaned reminders can fire after delete.
	presenter := &recordingPresenter{}
	scanner := NewReminderScanner(userID, repo, presenter, clock)
	clock.Advance(30 * 24 * time.Hour)
	require.NoError(t, scanner.Scan(context.Background()))
	assert.Zero(t, presenter.count())
}

func TestCalendarService_OwnershipEnforced(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	repo := newMemRepo()
	svc := NewCalendarService(repo, newFakeClock(now))

	owner := uuid.New()
	intruder := uuid.New()

	start := now.AddDate(0, 0, 3)
	created, appErr := svc.CreateEvent(context.Background(), owner, &dto.CreateEventRequest{
		Title: "Final round",
		Start: start,
		End:   start.Add(time.Hour),
		Type:  "interview",
	})
	require.Nil(t, appErr)

	_, appErr = svc.GetEventByID(context.Background(), intruder, created.ID)
	assert.NotNil(t, appErr)

	appErr = svc.DeleteEvent(context.Background(), intruder, created.ID)
	assert.NotNil(t, appErr)

	// Still there for the owner.
	_, appErr = svc.GetEventByID(context.Background(), owner, created.ID)
	assert.Nil(t, appErr)
}
