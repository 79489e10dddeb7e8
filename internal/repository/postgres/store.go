package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SAQIB-dev7447/SmartCampus/internal/repository"
)

// DB is the subset of pgx satisfied by both *pgxpool.Pool and pgx.Tx, so the
// same repository code runs pooled or inside a transaction.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store { return &Store{pool: pool} }

func reposFor(db DB) repository.Repos {
	return repository.Repos{
		Users:         NewUserRepo(db),
		Issues:        NewIssueRepo(db),
		Notifications: NewNotificationRepo(db),
	}
}

func (s *Store) Repos() repository.Repos { return reposFor(s.pool) }

// ExecTx runs fn with transaction-bound repositories. Rollback on error,
// commit otherwise.
func (s *Store) ExecTx(ctx context.Context, fn func(repository.Repos) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(reposFor(tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("tx err: %w, rollback err: %v", err, rbErr)
		}
		return err
	}
	return tx.Commit(ctx)
}
