package service

import (
	"context"
	"testing"
	"time"

	"internhub/core/params"
	"internhub/core/queue"
	"internhub/modules/notification/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotificationRepo struct {
	notifications []*entity.Notification
	reminderIDs   map[string]bool
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{reminderIDs: map[string]bool{}}
}

func (f *fakeNotificationRepo) ListByUserID(_ context.Context, userID uuid.UUID, queryParams params.QueryParams) (*entity.PaginatedNotificationEntity, error) {
	items := []entity.Notification{}
	for _, n := range f.notifications {
		if n.UserID == userID {
			items = append(items, *n)
		}
	}
	return &entity.PaginatedNotificationEntity{
		Items:      items,
		TotalItems: len(items),
		PageNumber: queryParams.PageNumber,
		PageSize:   queryParams.PageSize,
	}, nil
}

func (f *fakeNotificationRepo) Create(_ context.Context, notification *entity.Notification) error {
	notification.ID = uuid.New()
	f.notifications = append(f.notifications, notification)
	return nil
}

func (f *fakeNotificationRepo) CreateReminderNotification(_ context.Context, notification *entity.Notification, reminderID string) error {
	if f.reminderIDs[reminderID] {
		return nil
	}
	f.reminderIDs[reminderID] = true
	notification.ID = uuid.New()
	f.notifications = append(f.notifications, notification)
	return nil
}

func (f *fakeNotificationRepo) UnreadCount(_ context.Context, userID uuid.UUID) (int, error) {
	count := 0
	for _, n := range f.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, id uuid.UUID, userID uuid.UUID) error {
	for _, n := range f.notifications {
		if n.ID == id && n.UserID == userID {
			n.IsRead = true
		}
	}
	return nil
}

func (f *fakeNotificationRepo) MarkAllRead(_ context.Context, userID uuid.UUID) error {
	for _, n := range f.notifications {
		if n.UserID == userID {
			n.IsRead = true
		}
	}
	return nil
}

func reminderPayload(userID uuid.UUID, reminderID string) queue.ReminderDeliverPayload {
	return queue.ReminderDeliverPayload{
		UserID:       userID,
		EventID:      uuid.New(),
		EventTitle:   "Acme Online Assessment",
		EventType:    "drive",
		Description:  "Bring your own laptop",
		URL:          "https://acme.example.com/drive",
		EventStart:   time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC),
		ReminderID:   reminderID,
		ReminderTime: time.Date(2026, time.March, 9, 9, 0, 0, 0, time.UTC),
	}
}

func TestDeliverReminderStoresTypedNotification(t *testing.T) {
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo)
	userID := uuid.New()
	payload := reminderPayload(userID, "rem-abc123")

	require.NoError(t, svc.DeliverReminder(context.Background(), payload))

	require.Len(t, repo.notifications, 1)
	n := repo.notifications[0]
	assert.Equal(t, userID, n.UserID)
	assert.Equal(t, entity.NotificationTypeReminder, n.Type)
	assert.Equal(t, "Reminder: Acme Online Assessment", n.Title)
	assert.Contains(t, n.Message, "drive")
	assert.Contains(t, n.Message, "Bring your own laptop")
	assert.Equal(t, payload.EventID.String(), n.Data["event_id"])
	assert.Equal(t, "rem-abc123", n.Data["reminder_id"])
	assert.Equal(t, payload.URL, n.Data["url"])
	assert.Equal(t, "drive", n.Data["event_type"])
	assert.False(t, n.IsRead)
}

func TestDeliverReminderIsIdempotentOnReminderID(t *testing.T) {
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo)
	payload := reminderPayload(uuid.New(), "rem-once")

	require.NoError(t, svc.DeliverReminder(context.Background(), payload))
	require.NoError(t, svc.DeliverReminder(context.Background(), payload))

	assert.Len(t, repo.notifications, 1)
}

func TestUnreadCountAndMarkRead(t *testing.T) {
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo)
	userID := uuid.New()

	require.NoError(t, svc.DeliverReminder(context.Background(), reminderPayload(userID, "rem-1")))
	require.NoError(t, svc.DeliverReminder(context.Background(), reminderPayload(userID, "rem-2")))

	count, appErr := svc.UnreadCount(context.Background(), userID)
	require.Nil(t, appErr)
	assert.Equal(t, 2, count.Count)

	appErr = svc.MarkRead(context.Background(), repo.notifications[0].ID, userID)
	require.Nil(t, appErr)

	count, appErr = svc.UnreadCount(context.Background(), userID)
	require.Nil(t, appErr)
	assert.Equal(t, 1, count.Count)
}

func TestMarkAllRead(t *testing.T) {
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo)
	userID := uuid.New()

	require.NoError(t, svc.DeliverReminder(context.Background(), reminderPayload(userID, "rem-1")))
	require.NoError(t, svc.DeliverReminder(context.Background(), reminderPayload(userID, "rem-2")))

	require.Nil(t, svc.MarkAllRead(context.Background(), userID))

	count, appErr := svc.UnreadCount(context.Background(), userID)
	require.Nil(t, appErr)
	assert.Equal(t, 0, count.Count)
}

func TestListNotificationsScopedToUser(t *testing.T) {
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo)
	alice := uuid.New()
	bob := uuid.New()

	require.NoError(t, svc.DeliverReminder(context.Background(), reminderPayload(alice, "rem-a")))
	require.NoError(t, svc.DeliverReminder(context.Background(), reminderPayload(bob, "rem-b")))

	page, appErr := svc.ListNotifications(context.Background(), alice, params.QueryParams{PageNumber: 1, PageSize: 20})
	require.Nil(t, appErr)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "rem-a", page.Items[0].Data["reminder_id"])
}
