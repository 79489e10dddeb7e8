package repository

import (
	"context"

	"github.com/SAQIB-dev7447/SmartCampus/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, fullname, email string, role models.Role, department, passwordHash string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, string /*passwordHash*/, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	// AdminIDs returns the ids of every admin account.
	AdminIDs(ctx context.Context) ([]int64, error)
	// StaffIDsForCategory returns staff whose department matches the category
	// or the catch-all department.
	StaffIDsForCategory(ctx context.Context, category string) ([]int64, error)
	ListStaff(ctx context.Context) ([]models.User, error)
}

type IssueRepository interface {
	Create(ctx context.Context, i *models.Issue) error
	Get(ctx context.Context, id int64) (*models.Issue, error)
	List(ctx context.Context, f IssueFilter) ([]models.Issue, error)
	// Update persists the mutable triage fields (status, assigned_to,
	// resolved_at) of an existing issue.
	Update(ctx context.Context, i *models.Issue) error
	AddComment(ctx context.Context, c *models.Comment) error
	ListComments(ctx context.Context, issueID int64) ([]models.Comment, error)

	// dashboard/analytics reads.
	// CountByStatus aggregates over every matching row, optionally scoped to
	// one reporter (0 = everyone); it never depends on a page limit.
	CountByStatus(ctx context.Context, reporterID int64) (map[models.Status]int, error)
	CountByCategory(ctx context.Context) ([]CategoryCount, error)
	TopLocations(ctx context.Context, limit int) ([]LocationCount, error)
	StaffWorkload(ctx context.Context) ([]StaffLoad, error)
	ResolutionStats(ctx context.Context) (ResolutionStats, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
	ListForUser(ctx context.Context, userID int64) ([]models.Notification, error)
	// MarkRead flips is_read for one notification owned by userID; it reports
	// false when the id does not exist or belongs to someone else.
	MarkRead(ctx context.Context, userID, notificationID int64) (bool, error)
	MarkAllRead(ctx context.Context, userID int64) (int64, error)
	UnreadCount(ctx context.Context, userID int64) (int, error)
	MarkReadByIssue(ctx context.Context, userID, issueID int64) error
}

// Repos bundles the repositories bound to one database handle, either the
// shared pool or a single transaction.
type Repos struct {
	Users         UserRepository
	Issues        IssueRepository
	Notifications NotificationRepository
}

// Store is the persistence gateway: pool-bound repositories for plain reads
// and a transactional boundary for lifecycle writes. Everything inside fn
// commits atomically or not at all.
type Store interface {
	Repos() Repos
	ExecTx(ctx context.Context, fn func(Repos) error) error
}
