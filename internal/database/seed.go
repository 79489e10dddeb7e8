package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SAQIB-dev7447/SmartCampus/internal/config"
	"github.com/SAQIB-dev7447/SmartCampus/internal/models"
	"github.com/SAQIB-dev7447/SmartCampus/internal/utils"
)

type seedAccount struct {
	fullname   string
	email      string
	role       models.Role
	department string
}

// Seed creates the admin account and one staff account per department.
// Idempotent: accounts whose email already exists are left alone.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	accounts := []seedAccount{
		{"Admin User", "admin@campus.edu", models.RoleAdmin, "Administration"},
		{"IT Support Staff", "it_staff@campus.edu", models.RoleStaff, "IT Support"},
		{"Infrastructure Staff", "infra_staff@campus.edu", models.RoleStaff, "Infrastructure"},
		{"Cleanliness Staff", "clean_staff@campus.edu", models.RoleStaff, "Cleanliness"},
		{"Safety Officer", "safety_staff@campus.edu", models.RoleStaff, "Safety"},
		{"General Staff", "other_staff@campus.edu", models.RoleStaff, "Others"},
	}

	for _, a := range accounts {
		pass := cfg.SeedStaffPass
		if a.role == models.RoleAdmin {
			pass = cfg.SeedAdminPass
		}
		hash, err := utils.HashPassword(pass)
		if err != nil {
			return err
		}
		_, err = pool.Exec(ctx, `
			INSERT INTO users (fullname, email, password_hash, role, department)
			VALUES ($1,$2,$3,$4,$5)
			ON CONFLICT (email) DO NOTHING`,
			a.fullname, a.email, hash, a.role, a.department)
		if err != nil {
			return err
		}
	}
	return nil
}
