package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/notification"
	vo "helpdesk/internal/domain/notification/valueobjects"
	"helpdesk/internal/shared/logger"
)

type mockNotificationRepository struct {
	GetByIDFunc        func(ctx context.Context, id uint) (*notification.Notification, error)
	ListByReceiverFunc func(ctx context.Context, receiverID uint, limit, offset int) ([]*notification.Notification, int64, error)
	CountUnreadFunc    func(ctx context.Context, receiverID uint) (int64, error)
	MarkAsReadFunc     func(ctx context.Context, id uint) error
	MarkAllAsReadFunc  func(ctx context.Context, receiverID uint) error
}

func (m *mockNotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	return nil
}

func (m *mockNotificationRepository) BulkCreate(ctx context.Context, ns []*notification.Notification) error {
	return nil
}

func (m *mockNotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockNotificationRepository) ListByReceiver(ctx context.Context, receiverID uint, limit, offset int) ([]*notification.Notification, int64, error) {
	if m.ListByReceiverFunc != nil {
		return m.ListByReceiverFunc(ctx, receiverID, limit, offset)
	}
	return nil, 0, nil
}

func (m *mockNotificationRepository) CountUnread(ctx context.Context, receiverID uint) (int64, error) {
	if m.CountUnreadFunc != nil {
		return m.CountUnreadFunc(ctx, receiverID)
	}
	return 0, nil
}

func (m *mockNotificationRepository) MarkAsRead(ctx context.Context, id uint) error {
	if m.MarkAsReadFunc != nil {
		return m.MarkAsReadFunc(ctx, id)
	}
	return nil
}

func (m *mockNotificationRepository) MarkAllAsRead(ctx context.Context, receiverID uint) error {
	if m.MarkAllAsReadFunc != nil {
		return m.MarkAllAsReadFunc(ctx, receiverID)
	}
	return nil
}

type mockUnreadCache struct {
	GetFunc      func(ctx context.Context, userID uint) (int64, bool, error)
	SetFunc      func(ctx context.Context, userID uint, count int64) error
	Invalidated  []uint
}

func (m *mockUnreadCache) Get(ctx context.Context, userID uint) (int64, bool, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID)
	}
	return 0, false, nil
}

func (m *mockUnreadCache) Set(ctx context.Context, userID uint, count int64) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, userID, count)
	}
	return nil
}

func (m *mockUnreadCache) Invalidate(ctx context.Context, userID uint) error {
	m.Invalidated = append(m.Invalidated, userID)
	return nil
}

func testNotification(id, receiverID uint) *notification.Notification {
	n, err := notification.ReconstructNotification(
		id,
		vo.TypeIssueAssigned,
		nil,
		receiverID,
		nil,
		nil,
		"Issue assigned",
		"You were assigned an issue.",
		nil,
		vo.PriorityMedium,
		false,
		nil,
		time.Now(),
	)
	if err != nil {
		panic(err)
	}
	return n
}

func TestListNotifications_PaginatesByReceiver(t *testing.T) {
	repo := &mockNotificationRepository{}
	var gotLimit, gotOffset int
	repo.ListByReceiverFunc = func(ctx context.Context, receiverID uint, limit, offset int) ([]*notification.Notification, int64, error) {
		gotLimit, gotOffset = limit, offset
		return []*notification.Notification{testNotification(1, receiverID)}, 21, nil
	}

	uc := NewListNotificationsUseCase(repo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), ListNotificationsQuery{ReceiverID: 5, Page: 2, PageSize: 10})

	require.NoError(t, err)
	assert.Equal(t, 10, gotLimit)
	assert.Equal(t, 10, gotOffset)
	assert.Equal(t, int64(21), result.Total)
	require.Len(t, result.Notifications, 1)
	assert.Equal(t, "Issue assigned", result.Notifications[0].Title)
}

func TestMarkNotificationRead_RejectsForeignNotification(t *testing.T) {
	repo := &mockNotificationRepository{}
	repo.GetByIDFunc = func(ctx context.Context, id uint) (*notification.Notification, error) {
		return testNotification(id, 99), nil
	}

	uc := NewMarkNotificationReadUseCase(repo, &mockUnreadCache{}, logger.NewLogger())

	err := uc.Execute(context.Background(), MarkNotificationReadCommand{NotificationID: 1, ReceiverID: 5})

	assert.Error(t, err)
}

func TestMarkNotificationRead_InvalidatesCache(t *testing.T) {
	repo := &mockNotificationRepository{}
	repo.GetByIDFunc = func(ctx context.Context, id uint) (*notification.Notification, error) {
		return testNotification(id, 5), nil
	}
	cache := &mockUnreadCache{}

	uc := NewMarkNotificationReadUseCase(repo, cache, logger.NewLogger())

	err := uc.Execute(context.Background(), MarkNotificationReadCommand{NotificationID: 1, ReceiverID: 5})

	require.NoError(t, err)
	assert.Equal(t, []uint{5}, cache.Invalidated)
}

func TestMarkAllNotificationsRead_InvalidatesCache(t *testing.T) {
	cache := &mockUnreadCache{}

	uc := NewMarkAllNotificationsReadUseCase(&mockNotificationRepository{}, cache, logger.NewLogger())

	err := uc.Execute(context.Background(), MarkAllNotificationsReadCommand{ReceiverID: 5})

	require.NoError(t, err)
	assert.Equal(t, []uint{5}, cache.Invalidated)
}

func TestUnreadCount_CacheHitSkipsDatabase(t *testing.T) {
	repo := &mockNotificationRepository{}
	repo.CountUnreadFunc = func(ctx context.Context, receiverID uint) (int64, error) {
		t.Fatal("database must not be queried on a cache hit")
		return 0, nil
	}
	cache := &mockUnreadCache{
		GetFunc: func(ctx context.Context, userID uint) (int64, bool, error) {
			return 4, true, nil
		},
	}

	uc := NewUnreadCountUseCase(repo, cache, logger.NewLogger())

	result, err := uc.Execute(context.Background(), UnreadCountQuery{ReceiverID: 5})

	require.NoError(t, err)
	assert.Equal(t, int64(4), result.Count)
}

func TestUnreadCount_CacheMissFallsThroughAndBackfills(t *testing.T) {
	repo := &mockNotificationRepository{}
	repo.CountUnreadFunc = func(ctx context.Context, receiverID uint) (int64, error) {
		return 7, nil
	}
	var backfilled int64
	cache := &mockUnreadCache{
		SetFunc: func(ctx context.Context, userID uint, count int64) error {
			backfilled = count
			return nil
		},
	}

	uc := NewUnreadCountUseCase(repo, cache, logger.NewLogger())

	result, err := uc.Execute(context.Background(), UnreadCountQuery{ReceiverID: 5})

	require.NoError(t, err)
	assert.Equal(t, int64(7), result.Count)
	assert.Equal(t, int64(7), backfilled)
}

func TestUnreadCount_CacheErrorFallsThroughToDatabase(t *testing.T) {
	repo := &mockNotificationRepository{}
	repo.CountUnreadFunc = func(ctx context.Context, receiverID uint) (int64, error) {
		return 3, nil
	}
	cache := &mockUnreadCache{
		GetFunc: func(ctx context.Context, userID uint) (int64, bool, error) {
			return 0, false, fmt.Errorf("redis unavailable")
		},
	}

	uc := NewUnreadCountUseCase(repo, cache, logger.NewLogger())

	result, err := uc.Execute(context.Background(), UnreadCountQuery{ReceiverID: 5})

	require.NoError(t, err)
	assert.Equal(t, int64(3), result.Count)
}
