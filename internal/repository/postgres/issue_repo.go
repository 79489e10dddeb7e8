package postgres

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/SAQIB-dev7447/SmartCampus/internal/models"
	"github.com/SAQIB-dev7447/SmartCampus/internal/repository"
)

type IssueRepo struct{ db DB }

func NewIssueRepo(db DB) repository.IssueRepository { return &IssueRepo{db: db} }

const issueCols = `
	i.id, i.title, i.description, i.category, i.location, i.priority, i.status,
	COALESCE(i.image_path,''), i.reporter_id, COALESCE(i.assigned_to,''),
	i.created_at, i.resolved_at`

func scanIssue(row pgx.Row, i *models.Issue, extra ...any) error {
	dest := []any{
		&i.ID, &i.Title, &i.Description, &i.Category, &i.Location, &i.Priority,
		&i.Status, &i.ImagePath, &i.ReporterID, &i.AssignedTo, &i.CreatedAt, &i.ResolvedAt,
	}
	return row.Scan(append(dest, extra...)...)
}

func (r *IssueRepo) Create(ctx context.Context, i *models.Issue) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO issues (title, description, category, location, priority, status, image_path, reporter_id)
		VALUES ($1,$2,$3,$4,$5,$6,NULLIF($7,''),$8)
		RETURNING id, created_at`,
		i.Title, i.Description, i.Category, i.Location, i.Priority, models.StatusSubmitted,
		i.ImagePath, i.ReporterID,
	).Scan(&i.ID, &i.CreatedAt)
}

// Get loads one issue joined with its reporter. Returns nil, nil when absent.
func (r *IssueRepo) Get(ctx context.Context, id int64) (*models.Issue, error) {
	var i models.Issue
	err := scanIssue(r.db.QueryRow(ctx, `
		SELECT `+issueCols+`, u.fullname, u.email
		FROM issues i JOIN users u ON u.id = i.reporter_id
		WHERE i.id = $1`, id), &i, &i.ReporterName, &i.ReporterEmail)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &i, nil
}

func (r *IssueRepo) List(ctx context.Context, f repository.IssueFilter) ([]models.Issue, error) {
	if f.Limit <= 0 || f.Limit > 200 {
		f.Limit = 50
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	conds := []string{"1=1"}
	args := []any{}

	if s := strings.TrimSpace(f.Status); s != "" {
		args = append(args, s)
		conds = append(conds, "i.status = $"+itoa(len(args)))
	}
	if c := strings.TrimSpace(f.Category); c != "" {
		args = append(args, c)
		conds = append(conds, "i.category = $"+itoa(len(args)))
	}
	if f.ReporterID != 0 {
		args = append(args, f.ReporterID)
		conds = append(conds, "i.reporter_id = $"+itoa(len(args)))
	}
	args = append(args, f.Limit, f.Offset)

	sql := `
		SELECT ` + issueCols + `, u.fullname
		FROM issues i JOIN users u ON u.id = i.reporter_id
		WHERE ` + strings.Join(conds, " AND ") + `
		ORDER BY i.created_at DESC
		LIMIT $` + itoa(len(args)-1) + ` OFFSET $` + itoa(len(args))

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Issue
	for rows.Next() {
		var i models.Issue
		if err := scanIssue(rows, &i, &i.ReporterName); err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, rows.Err()
}

// Update writes the triage fields. resolved_at is persisted as carried on the
// struct, so a stamp set once survives later status changes untouched.
func (r *IssueRepo) Update(ctx context.Context, i *models.Issue) error {
	ct, err := r.db.Exec(ctx, `
		UPDATE issues SET status=$1, assigned_to=NULLIF($2,''), resolved_at=$3
		WHERE id=$4`,
		i.Status, i.AssignedTo, i.ResolvedAt, i.ID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *IssueRepo) AddComment(ctx context.Context, c *models.Comment) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO comments (issue_id, user_id, content)
		VALUES ($1,$2,$3)
		RETURNING id, created_at`,
		c.IssueID, c.UserID, c.Content).Scan(&c.ID, &c.CreatedAt)
}

func (r *IssueRepo) ListComments(ctx context.Context, issueID int64) ([]models.Comment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.id, c.issue_id, c.user_id, c.content, c.created_at, u.fullname, u.role
		FROM comments c JOIN users u ON u.id = c.user_id
		WHERE c.issue_id = $1
		ORDER BY c.created_at DESC`, issueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Comment
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.IssueID, &c.UserID, &c.Content, &c.CreatedAt, &c.AuthorName, &c.AuthorRole); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// -----------------------------------------------------------------------------
// Dashboard/analytics reads
// -----------------------------------------------------------------------------

func (r *IssueRepo) CountByStatus(ctx context.Context, reporterID int64) (map[models.Status]int, error) {
	rows, err := r.db.Query(ctx, `
		SELECT status, COUNT(*) FROM issues
		WHERE $1 = 0 OR reporter_id = $1
		GROUP BY status`, reporterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[models.Status]int{}
	for rows.Next() {
		var s models.Status
		var n int
		if err := rows.Scan(&s, &n); err != nil {
			return nil, err
		}
		out[s] = n
	}
	return out, rows.Err()
}

func (r *IssueRepo) CountByCategory(ctx context.Context) ([]repository.CategoryCount, error) {
	rows, err := r.db.Query(ctx, `
		SELECT category, COUNT(*) FROM issues GROUP BY category ORDER BY COUNT(*) DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []repository.CategoryCount
	for rows.Next() {
		var c repository.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *IssueRepo) TopLocations(ctx context.Context, limit int) ([]repository.LocationCount, error) {
	if limit <= 0 {
		limit = 3
	}
	rows, err := r.db.Query(ctx, `
		SELECT location, COUNT(*) AS cnt
		FROM issues
		WHERE location IS NOT NULL AND location != ''
		GROUP BY location
		ORDER BY cnt DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []repository.LocationCount
	for rows.Next() {
		var l repository.LocationCount
		if err := rows.Scan(&l.Location, &l.Count); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// StaffWorkload counts unresolved issues per assignee.
func (r *IssueRepo) StaffWorkload(ctx context.Context) ([]repository.StaffLoad, error) {
	rows, err := r.db.Query(ctx, `
		SELECT assigned_to, COUNT(*) AS active_count
		FROM issues
		WHERE assigned_to IS NOT NULL AND status != 'Resolved'
		GROUP BY assigned_to
		ORDER BY active_count DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []repository.StaffLoad
	for rows.Next() {
		var s repository.StaffLoad
		if err := rows.Scan(&s.AssignedTo, &s.ActiveCount); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *IssueRepo) ResolutionStats(ctx context.Context) (repository.ResolutionStats, error) {
	var s repository.ResolutionStats
	var avgSeconds *float64
	err := r.db.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'Resolved'),
			COUNT(*) FILTER (WHERE status = 'Resolved' AND resolved_at::date = CURRENT_DATE),
			COUNT(*) FILTER (WHERE priority = 'High' AND status != 'Resolved'),
			AVG(EXTRACT(EPOCH FROM resolved_at - created_at))
				FILTER (WHERE status = 'Resolved' AND resolved_at IS NOT NULL)
		FROM issues`).
		Scan(&s.Total, &s.Resolved, &s.ResolvedToday, &s.ActiveHighPriority, &avgSeconds)
	if err != nil {
		return s, err
	}
	if avgSeconds != nil {
		s.AvgResolution = time.Duration(*avgSeconds * float64(time.Second))
	}
	return s, nil
}

// small helper to avoid fmt in the query builder.
func itoa(i int) string { return strconv.Itoa(i) }
