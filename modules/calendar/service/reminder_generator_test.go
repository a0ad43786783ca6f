package service

import (
	"testing"
	"time"

	"internhub/modules/calendar/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderGenerator_DriveSchedule(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	start := now.AddDate(0, 0, 10)
	gen := NewReminderGenerator(newFakeClock(now))

	reminders := gen.Generate(entity.EventTypeDrive, start)

	require.Len(t, reminders, 4)
	assert.Equal(t, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC), reminders[0].Time)
	assert.Equal(t, time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC), reminders[1].Time)
	assert.Equal(t, time.Date(2026, 3, 12, 7, 0, 0, 0, time.UTC), reminders[2].Time)
	assert.Equal(t, start.Add(-30*time.Minute), reminders[3].Time)
}

func TestReminderGenerator_InterviewSchedule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		now       time.Time
		start     time.Time
		wantTimes []time.Time
	}{
		{
			name:  "start 25 hours ahead, all offsets still future",
			now:   time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC),
			start: time.Date(2026, 3, 3, 13, 0, 0, 0, time.UTC),
			wantTimes: []time.Time{
				time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC),  // day before at 18:00
				time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC),  // 1 hour before
				time.Date(2026, 3, 3, 12, 30, 0, 0, time.UTC), // 30 minutes before
			},
		},
		{
			name:  "day-before 18:00 already passed, entry omitted",
			now:   time.Date(2026, 3, 2, 19, 0, 0, 0, time.UTC),
			start: time.Date(2026, 3, 3, 13, 0, 0, 0, time.UTC),
			wantTimes: []time.Time{
				time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC),
				time.Date(2026, 3, 3, 12, 30, 0, 0, time.UTC),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			gen := NewReminderGenerator(newFakeClock(tt.now))

			reminders := gen.Generate(entity.EventTypeInterview, tt.start)

			require.Len(t, reminders, len(tt.wantTimes))
			for i, want := range tt.wantTimes {
				assert.True(t, reminders[i].Time.Equal(want), "reminder %d: got %v want %v", i, reminders[i].Time, want)
			}
		})
	}
}

func TestReminderGenerator_DefaultSchedule(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	start := time.Date(2026, 3, 9, 15, 0, 0, 0, time.UTC)

	for _, eventType := range []entity.EventType{entity.EventTypeDeadline, entity.EventTypeReminder} {
		gen := NewReminderGenerator(newFakeClock(now))

		reminders := gen.Generate(eventType, start)

		require.Len(t, reminders, 2, "type %s", eventType)
		assert.Equal(t, time.Date(2026, 3, 8, 9, 0, 0, 0, time.UTC), reminders[0].Time)
		assert.Equal(t, start.Add(-30*time.Minute), reminders[1].Time)
	}
}

func TestReminderGenerator_NeverYieldsPastReminders(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	starts := []time.Time{
		now.Add(-48 * time.Hour),  // fully past
		now.Add(-time.Minute),     // just past
		now.Add(10 * time.Minute), // imminent: every offset already elapsed
		now.Add(45 * time.Minute), // only the 30-minute offset survives
		now.AddDate(0, 0, 30),     // far future: everything survives
	}

	for _, eventType := range []entity.EventType{entity.EventTypeInterview, entity.EventTypeDrive, entity.EventTypeDeadline, entity.EventTypeReminder} {
		for _, start := range starts {
			gen := NewReminderGenerator(newFakeClock(now))

			for _, r := range gen.Generate(eventType, start) {
				assert.True(t, r.Time.After(now),
					"type %s start %v produced reminder at %v not after now", eventType, start, r.Time)
				assert.False(t, r.Triggered)
				assert.NotEmpty(t, r.ID)
			}
		}
	}
}

func TestReminderGenerator_PastStartYieldsEmptySet(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	gen := NewReminderGenerator(newFakeClock(now))

	reminders := gen.Generate(entity.EventTypeDrive, now.AddDate(0, 0, -5))

	assert.Empty(t, reminders)
}

func TestReminderGenerator_FreshIDsPerGeneration(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	start := now.AddDate(0, 0, 10)
	gen := NewReminderGenerator(newFakeClock(now))

	first := gen.Generate(entity.EventTypeDrive, start)
	second := gen.Generate(entity.EventTypeDrive, start)

	seen := map[string]bool{}
	for _, r := range append(first, second...) {
		assert.False(t, seen[r.ID], "duplicate reminder id %s", r.ID)
		seen[r.ID] = true
	}
}
