package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/nmoreira/dropship/internal/domain"
)

const uniqueViolation = "23505"

// translateCreateErr maps a driver error on insert to a domain error.
// Postgres reports SQLSTATE 23505 for unique violations; the substring
// check is a fallback for other dialects (sqlite in tests).
func translateCreateErr(err error, field string) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return &domain.DuplicateKeyError{Field: field}
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &domain.DuplicateKeyError{Field: field}
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate") {
		return &domain.DuplicateKeyError{Field: field}
	}
	return err
}
