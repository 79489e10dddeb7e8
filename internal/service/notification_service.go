package service

import (
	"context"

	"github.com/SAQIB-dev7447/SmartCampus/internal/models"
	"github.com/SAQIB-dev7447/SmartCampus/internal/repository"
)

// NotificationService owns read/unread state. Ownership is checked per
// notification: a user can only see or mark their own, and a mismatch is
// indistinguishable from a missing id.
type NotificationService struct {
	store repository.Store
}

func NewNotificationService(store repository.Store) *NotificationService {
	return &NotificationService{store: store}
}

// ListForUser returns the full notification history, newest first.
func (s *NotificationService) ListForUser(ctx context.Context, userID int64) ([]models.Notification, error) {
	return s.store.Repos().Notifications.ListForUser(ctx, userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID int64) error {
	ok, err := s.store.Repos().Notifications.MarkRead(ctx, userID, notificationID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// MarkAllRead flips every unread notification for the user. Idempotent.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	return s.store.Repos().Notifications.MarkAllRead(ctx, userID)
}

// UnreadCount backs the badge shown on every authenticated page render.
func (s *NotificationService) UnreadCount(ctx context.Context, userID int64) (int, error) {
	return s.store.Repos().Notifications.UnreadCount(ctx, userID)
}
