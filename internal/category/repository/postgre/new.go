package postgre

import (
	"database/sql"

	"taskmate/internal/category/repository"
	"taskmate/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the category domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("category/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}
