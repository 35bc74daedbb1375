package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
)

// Storages bundles every repository the application needs, all backed by the
// single shared database connection.
type Storages struct {
	UserRepository    UserRepository
	PostRepository    PostRepository
	CommentRepository CommentRepository
	SessionRepository SessionRepository

	db *DB
}

// NewStorages opens the database connection described by cfg, runs the
// embedded migrations, and constructs all repositories on top of it.
//
// The engine is chosen by DSN scheme: "postgres://" and "postgresql://"
// select PostgreSQL, anything else is treated as an SQLite file path.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var db *DB
	var err error

	if isPostgresDSN(cfg.DB.DSN) {
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		PostRepository:    NewPostRepository(db, log),
		CommentRepository: NewCommentRepository(db, log),
		SessionRepository: NewSessionRepository(db, log),
		db:                db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
