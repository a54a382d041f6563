// internal/repository/repository.go
package repository

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Transaction interface for handling DB transactions.
type Transaction interface {
	Commit() error
	Rollback() error
}

// gormTransaction is a wrapper for a GORM DB transaction.
type gormTransaction struct {
	tx *gorm.DB
}

// Commit finalizes the transaction.
func (t *gormTransaction) Commit() error {
	return t.tx.Commit().Error
}

// Rollback reverts the transaction.
func (t *gormTransaction) Rollback() error {
	slog.Warn("Rolling back transaction")
	return t.tx.Rollback().Error
}

// orgScoped narrows a query to one organization. Every business-entity
// read and write goes through this helper; the organization id always
// comes from the authenticated session, never from client input.
func orgScoped(db *gorm.DB, orgID uuid.UUID) *gorm.DB {
	return db.Where("organization_id = ?", orgID)
}

// isUniqueViolation reports whether the error is a Postgres duplicate
// key violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
