package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/SAQIB-dev7447/SmartCampus/internal/models"
	"github.com/SAQIB-dev7447/SmartCampus/internal/repository"
)

type UserRepo struct{ db DB }

func NewUserRepo(db DB) repository.UserRepository { return &UserRepo{db: db} }

// Create inserts a user (bcrypt hash in password_hash). The unique index on
// email rejects duplicates.
func (r *UserRepo) Create(ctx context.Context, fullname, email string, role models.Role, department, passwordHash string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (fullname, email, password_hash, role, department)
		VALUES ($1,$2,$3,$4,NULLIF($5,''))
		RETURNING id, fullname, email, role, COALESCE(department,''), created_at`,
		fullname, email, passwordHash, role, department).
		Scan(&u.ID, &u.FullName, &u.Email, &u.Role, &u.Department, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, string, error) {
	var u models.User
	var ph string
	err := r.db.QueryRow(ctx, `
		SELECT id, fullname, email, role, COALESCE(department,''), password_hash, created_at
		FROM users WHERE email=$1`, email).
		Scan(&u.ID, &u.FullName, &u.Email, &u.Role, &u.Department, &ph, &u.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", nil
		}
		return nil, "", err
	}
	return &u, ph, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(ctx, `
		SELECT id, fullname, email, role, COALESCE(department,''), created_at
		FROM users WHERE id=$1`, id).
		Scan(&u.ID, &u.FullName, &u.Email, &u.Role, &u.Department, &u.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) AdminIDs(ctx context.Context) ([]int64, error) {
	return r.scanIDs(ctx, `SELECT id FROM users WHERE role='admin' ORDER BY id`)
}

func (r *UserRepo) StaffIDsForCategory(ctx context.Context, category string) ([]int64, error) {
	return r.scanIDs(ctx, `
		SELECT id FROM users
		WHERE role='staff' AND (department = $1 OR department = $2)
		ORDER BY id`, category, models.CatchAllDepartment)
}

func (r *UserRepo) ListStaff(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, fullname, email, role, COALESCE(department,''), created_at
		FROM users WHERE role='staff' ORDER BY department, fullname`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.FullName, &u.Email, &u.Role, &u.Department, &u.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *UserRepo) scanIDs(ctx context.Context, sql string, args ...any) ([]int64, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
