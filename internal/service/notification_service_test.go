package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SAQIB-dev7447/SmartCampus/internal/models"
)

func newNotificationService(notifs *MockNotificationRepo) *NotificationService {
	return NewNotificationService(newFakeStore(new(MockUserRepo), new(MockIssueRepo), notifs))
}

func TestListForUser_NewestFirstPassthrough(t *testing.T) {
	notifs := new(MockNotificationRepo)
	svc := newNotificationService(notifs)

	newer := models.Notification{ID: 2, UserID: 42, CreatedAt: time.Now()}
	older := models.Notification{ID: 1, UserID: 42, CreatedAt: time.Now().Add(-time.Hour)}
	notifs.On("ListForUser", mock.Anything, int64(42)).Return([]models.Notification{newer, older}, nil)

	items, err := svc.ListForUser(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(2), items[0].ID)
}

func TestMarkRead_Owned(t *testing.T) {
	notifs := new(MockNotificationRepo)
	svc := newNotificationService(notifs)

	notifs.On("MarkRead", mock.Anything, int64(42), int64(10)).Return(true, nil)

	assert.NoError(t, svc.MarkRead(context.Background(), 42, 10))
}

func TestMarkRead_NotOwnedIsNotFound(t *testing.T) {
	notifs := new(MockNotificationRepo)
	svc := newNotificationService(notifs)

	// user A asking for user B's notification: the repo reports no row touched
	notifs.On("MarkRead", mock.Anything, int64(42), int64(10)).Return(false, nil)

	err := svc.MarkRead(context.Background(), 42, 10)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMarkAllRead_Idempotent(t *testing.T) {
	notifs := new(MockNotificationRepo)
	svc := newNotificationService(notifs)

	notifs.On("MarkAllRead", mock.Anything, int64(42)).Return(int64(3), nil).Once()
	notifs.On("MarkAllRead", mock.Anything, int64(42)).Return(int64(0), nil).Once()
	notifs.On("UnreadCount", mock.Anything, int64(42)).Return(0, nil)

	n, err := svc.MarkAllRead(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	// second call flips nothing further
	n, err = svc.MarkAllRead(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	unread, err := svc.UnreadCount(context.Background(), 42)
	require.NoError(t, err)
	assert.Zero(t, unread)
}
