package store

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorMapper translates driver-level errors into the dialect-independent
// categories the repositories care about. Each supported engine has its own
// implementation because PostgreSQL reports structured SQLSTATE codes while
// SQLite only exposes message text through the driver.
type ErrorMapper interface {
	// IsUniqueViolation reports whether err was caused by a violated
	// UNIQUE constraint (duplicate email, duplicate post title).
	IsUniqueViolation(err error) bool

	// IsForeignKeyViolation reports whether err was caused by a violated
	// foreign key reference.
	IsForeignKeyViolation(err error) bool
}

// PostgresErrorMapper implements [ErrorMapper] for PostgreSQL by unwrapping
// *pgconn.PgError and inspecting its SQLSTATE code.
type PostgresErrorMapper struct{}

// NewPostgresErrorMapper constructs a [PostgresErrorMapper] ready for use.
func NewPostgresErrorMapper() *PostgresErrorMapper {
	return &PostgresErrorMapper{}
}

// IsUniqueViolation implements [ErrorMapper].
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
func (m *PostgresErrorMapper) IsUniqueViolation(err error) bool {
	return postgresErrorCode(err) == pgerrcode.UniqueViolation
}

// IsForeignKeyViolation implements [ErrorMapper].
func (m *PostgresErrorMapper) IsForeignKeyViolation(err error) bool {
	return postgresErrorCode(err) == pgerrcode.ForeignKeyViolation
}

func postgresErrorCode(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// SQLiteErrorMapper implements [ErrorMapper] for SQLite. The go-sqlite3
// driver reports constraint failures as plain text, so classification is a
// message match.
type SQLiteErrorMapper struct{}

// NewSQLiteErrorMapper constructs a [SQLiteErrorMapper] ready for use.
func NewSQLiteErrorMapper() *SQLiteErrorMapper {
	return &SQLiteErrorMapper{}
}

// IsUniqueViolation implements [ErrorMapper].
func (m *SQLiteErrorMapper) IsUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// IsForeignKeyViolation implements [ErrorMapper].
func (m *SQLiteErrorMapper) IsForeignKeyViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
