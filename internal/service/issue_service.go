package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/SAQIB-dev7447/SmartCampus/internal/models"
	"github.com/SAQIB-dev7447/SmartCampus/internal/repository"
)

// IssueService is the issue lifecycle engine: it creates issues, applies
// status/assignment transitions and fans out the notifications each
// transition produces. Every mutating call commits as one transaction, so a
// state change is never visible without its notifications.
type IssueService struct {
	store repository.Store
	log   zerolog.Logger
	now   func() time.Time
}

func NewIssueService(store repository.Store, log zerolog.Logger) *IssueService {
	return &IssueService{store: store, log: log, now: time.Now}
}

type IssueInput struct {
	Title       string
	Category    string
	Description string
	Location    string
	Priority    string
	ImagePath   string
}

// Create inserts a new issue as Submitted and notifies every admin plus the
// staff of the matching department (and the catch-all department).
func (s *IssueService) Create(ctx context.Context, reporterID int64, in IssueInput) (*models.Issue, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Category = strings.TrimSpace(in.Category)
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if in.Category == "" {
		return nil, fmt.Errorf("%w: category is required", ErrValidation)
	}
	priority := models.PriorityLow
	if in.Priority != "" {
		p, err := models.ParsePriority(in.Priority)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		priority = p
	}

	issue := &models.Issue{
		Title:       in.Title,
		Description: strings.TrimSpace(in.Description),
		Category:    in.Category,
		Location:    strings.TrimSpace(in.Location),
		Priority:    priority,
		Status:      models.StatusSubmitted,
		ImagePath:   in.ImagePath,
		ReporterID:  reporterID,
	}

	err := s.store.ExecTx(ctx, func(r repository.Repos) error {
		if err := r.Issues.Create(ctx, issue); err != nil {
			return err
		}

		adminIDs, err := r.Users.AdminIDs(ctx)
		if err != nil {
			return err
		}
		adminMsg := fmt.Sprintf("New %s priority issue reported: %s", issue.Priority, issue.Title)
		for _, id := range adminIDs {
			if err := notify(ctx, r, id, issue.ID, adminMsg); err != nil {
				return err
			}
		}

		staffIDs, err := r.Users.StaffIDsForCategory(ctx, issue.Category)
		if err != nil {
			return err
		}
		staffMsg := "New issue assigned to your department: " + issue.Title
		for _, id := range staffIDs {
			if err := notify(ctx, r, id, issue.ID, staffMsg); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("issue", issue.ID).Str("category", issue.Category).
		Str("priority", string(issue.Priority)).Msg("issue reported")
	return issue, nil
}

type IssueUpdate struct {
	Status   *models.Status
	Assignee *string
}

// Update applies a status and/or assignment transition. Both fields are
// independent; each one that actually changes emits its own reporter
// notification, and an empty assignee counts as not provided. Entering
// Resolved stamps resolved_at; the stamp is kept if the issue later moves out
// of Resolved again.
func (s *IssueService) Update(ctx context.Context, actor models.Actor, issueID int64, upd IssueUpdate) (bool, error) {
	if !actor.Role.Privileged() {
		return false, ErrPermissionDenied
	}

	changed := false
	err := s.store.ExecTx(ctx, func(r repository.Repos) error {
		issue, err := r.Issues.Get(ctx, issueID)
		if err != nil {
			return err
		}
		if issue == nil {
			return ErrNotFound
		}

		if upd.Status != nil && *upd.Status != issue.Status {
			issue.Status = *upd.Status
			if issue.Status == models.StatusResolved {
				now := s.now()
				issue.ResolvedAt = &now
			}
			msg := fmt.Sprintf("Issue #%d status updated to %s", issue.ID, issue.Status)
			if err := notify(ctx, r, issue.ReporterID, issue.ID, msg); err != nil {
				return err
			}
			changed = true
		}

		// an empty assignee means "not provided", never "clear the assignment"
		if upd.Assignee != nil {
			if a := strings.TrimSpace(*upd.Assignee); a != "" && a != issue.AssignedTo {
				issue.AssignedTo = a
				msg := fmt.Sprintf("Issue #%d assigned to %s", issue.ID, issue.AssignedTo)
				if err := notify(ctx, r, issue.ReporterID, issue.ID, msg); err != nil {
					return err
				}
				changed = true
			}
		}

		if !changed {
			return nil
		}
		return r.Issues.Update(ctx, issue)
	})
	if err != nil {
		return false, err
	}

	if changed {
		s.log.Info().Int64("issue", issueID).Int64("actor", actor.ID).Msg("issue updated")
	}
	return changed, nil
}

// AddComment records a remark on an issue. Comments from admin/staff notify
// the reporter; student comments notify nobody.
func (s *IssueService) AddComment(ctx context.Context, actor models.Actor, issueID int64, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}

	c := &models.Comment{IssueID: issueID, UserID: actor.ID, Content: content}
	err := s.store.ExecTx(ctx, func(r repository.Repos) error {
		issue, err := r.Issues.Get(ctx, issueID)
		if err != nil {
			return err
		}
		if issue == nil {
			return ErrNotFound
		}
		if err := r.Issues.AddComment(ctx, c); err != nil {
			return err
		}
		if actor.Role.Privileged() {
			msg := fmt.Sprintf("New comment on Issue #%d", issue.ID)
			return notify(ctx, r, issue.ReporterID, issue.ID, msg)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Detail loads one issue with its comment thread and, as a side effect of the
// visit, marks the viewer's notifications for that issue as read.
func (s *IssueService) Detail(ctx context.Context, actor models.Actor, issueID int64) (*models.Issue, error) {
	r := s.store.Repos()
	issue, err := r.Issues.Get(ctx, issueID)
	if err != nil {
		return nil, err
	}
	if issue == nil {
		return nil, ErrNotFound
	}
	issue.Comments, err = r.Issues.ListComments(ctx, issueID)
	if err != nil {
		return nil, err
	}
	if err := r.Notifications.MarkReadByIssue(ctx, actor.ID, issueID); err != nil {
		return nil, err
	}
	return issue, nil
}

func notify(ctx context.Context, r repository.Repos, userID, issueID int64, msg string) error {
	return r.Notifications.Create(ctx, &models.Notification{
		UserID:  userID,
		IssueID: &issueID,
		Message: msg,
	})
}
