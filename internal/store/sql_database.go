package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/migrations"
)

// Supported SQL dialects. The value doubles as the goose dialect name.
const (
	DialectPostgres = "pgx"
	DialectSQLite   = "sqlite3"
)

// DB wraps the raw *sql.DB connection together with everything that differs
// between the two supported engines: the goose dialect, the squirrel
// placeholder format, and the driver error mapper.
type DB struct {
	*sql.DB
	dialect     string
	builder     sq.StatementBuilderType
	errorMapper ErrorMapper
	logger      *logger.Logger
}

// Migrate applies all embedded migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Builder returns a squirrel statement builder preconfigured with the
// placeholder format of the underlying engine ($1 for PostgreSQL, ? for
// SQLite).
func (db *DB) Builder() sq.StatementBuilderType {
	return db.builder
}
