package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/SAQIB-dev7447/SmartCampus/internal/models"
	"github.com/SAQIB-dev7447/SmartCampus/internal/repository"
)

// fakeStore runs the transactional closure directly against the mock repos;
// commit/rollback semantics are the database's job, not what these tests cover.
type fakeStore struct {
	repos repository.Repos
}

func newFakeStore(users *MockUserRepo, issues *MockIssueRepo, notifs *MockNotificationRepo) *fakeStore {
	return &fakeStore{repos: repository.Repos{Users: users, Issues: issues, Notifications: notifs}}
}

func (s *fakeStore) Repos() repository.Repos { return s.repos }

func (s *fakeStore) ExecTx(ctx context.Context, fn func(repository.Repos) error) error {
	return fn(s.repos)
}

type MockUserRepo struct{ mock.Mock }

func (m *MockUserRepo) Create(ctx context.Context, fullname, email string, role models.Role, department, passwordHash string) (*models.User, error) {
	args := m.Called(ctx, fullname, email, role, department, passwordHash)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, string, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*models.User)
	return u, args.String(1), args.Error(2)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *MockUserRepo) AdminIDs(ctx context.Context) ([]int64, error) {
	args := m.Called(ctx)
	ids, _ := args.Get(0).([]int64)
	return ids, args.Error(1)
}

func (m *MockUserRepo) StaffIDsForCategory(ctx context.Context, category string) ([]int64, error) {
	args := m.Called(ctx, category)
	ids, _ := args.Get(0).([]int64)
	return ids, args.Error(1)
}

func (m *MockUserRepo) ListStaff(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	us, _ := args.Get(0).([]models.User)
	return us, args.Error(1)
}

type MockIssueRepo struct{ mock.Mock }

func (m *MockIssueRepo) Create(ctx context.Context, i *models.Issue) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockIssueRepo) Get(ctx context.Context, id int64) (*models.Issue, error) {
	args := m.Called(ctx, id)
	i, _ := args.Get(0).(*models.Issue)
	return i, args.Error(1)
}

func (m *MockIssueRepo) List(ctx context.Context, f repository.IssueFilter) ([]models.Issue, error) {
	args := m.Called(ctx, f)
	is, _ := args.Get(0).([]models.Issue)
	return is, args.Error(1)
}

func (m *MockIssueRepo) Update(ctx context.Context, i *models.Issue) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockIssueRepo) AddComment(ctx context.Context, c *models.Comment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockIssueRepo) ListComments(ctx context.Context, issueID int64) ([]models.Comment, error) {
	args := m.Called(ctx, issueID)
	cs, _ := args.Get(0).([]models.Comment)
	return cs, args.Error(1)
}

func (m *MockIssueRepo) CountByStatus(ctx context.Context, reporterID int64) (map[models.Status]int, error) {
	args := m.Called(ctx, reporterID)
	c, _ := args.Get(0).(map[models.Status]int)
	return c, args.Error(1)
}

func (m *MockIssueRepo) CountByCategory(ctx context.Context) ([]repository.CategoryCount, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).([]repository.CategoryCount)
	return c, args.Error(1)
}

func (m *MockIssueRepo) TopLocations(ctx context.Context, limit int) ([]repository.LocationCount, error) {
	args := m.Called(ctx, limit)
	l, _ := args.Get(0).([]repository.LocationCount)
	return l, args.Error(1)
}

func (m *MockIssueRepo) StaffWorkload(ctx context.Context) ([]repository.StaffLoad, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).([]repository.StaffLoad)
	return s, args.Error(1)
}

func (m *MockIssueRepo) ResolutionStats(ctx context.Context) (repository.ResolutionStats, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(repository.ResolutionStats)
	return s, args.Error(1)
}

type MockNotificationRepo struct{ mock.Mock }

func (m *MockNotificationRepo) Create(ctx context.Context, n *models.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepo) ListForUser(ctx context.Context, userID int64) ([]models.Notification, error) {
	args := m.Called(ctx, userID)
	ns, _ := args.Get(0).([]models.Notification)
	return ns, args.Error(1)
}

func (m *MockNotificationRepo) MarkRead(ctx context.Context, userID, notificationID int64) (bool, error) {
	args := m.Called(ctx, userID, notificationID)
	return args.Bool(0), args.Error(1)
}

func (m *MockNotificationRepo) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepo) UnreadCount(ctx context.Context, userID int64) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationRepo) MarkReadByIssue(ctx context.Context, userID, issueID int64) error {
	args := m.Called(ctx, userID, issueID)
	return args.Error(0)
}
