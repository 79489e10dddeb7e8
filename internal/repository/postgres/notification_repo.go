package postgres

import (
	"context"

	"github.com/SAQIB-dev7447/SmartCampus/internal/models"
	"github.com/SAQIB-dev7447/SmartCampus/internal/repository"
)

type NotificationRepo struct{ db DB }

func NewNotificationRepo(db DB) repository.NotificationRepository {
	return &NotificationRepo{db: db}
}

func (r *NotificationRepo) Create(ctx context.Context, n *models.Notification) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO notifications (user_id, issue_id, message)
		VALUES ($1,$2,$3)
		RETURNING id, is_read, created_at`,
		n.UserID, n.IssueID, n.Message).Scan(&n.ID, &n.IsRead, &n.CreatedAt)
}

func (r *NotificationRepo) ListForUser(ctx context.Context, userID int64) ([]models.Notification, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, issue_id, message, is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.IssueID, &n.Message, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// MarkRead is ownership-scoped in the WHERE clause, so a mismatched caller
// changes nothing and learns nothing beyond "no such notification".
func (r *NotificationRepo) MarkRead(ctx context.Context, userID, notificationID int64) (bool, error) {
	ct, err := r.db.Exec(ctx, `
		UPDATE notifications SET is_read = TRUE
		WHERE id = $1 AND user_id = $2`, notificationID, userID)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}

func (r *NotificationRepo) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	ct, err := r.db.Exec(ctx, `
		UPDATE notifications SET is_read = TRUE
		WHERE user_id = $1 AND is_read = FALSE`, userID)
	if err != nil {
		return 0, err
	}
	return ct.RowsAffected(), nil
}

func (r *NotificationRepo) UnreadCount(ctx context.Context, userID int64) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM notifications
		WHERE user_id = $1 AND is_read = FALSE`, userID).Scan(&n)
	return n, err
}

func (r *NotificationRepo) MarkReadByIssue(ctx context.Context, userID, issueID int64) error {
	_, err := r.db.Exec(ctx, `
		UPDATE notifications SET is_read = TRUE
		WHERE user_id = $1 AND issue_id = $2`, userID, issueID)
	return err
}
