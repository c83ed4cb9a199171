package database

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// Store is the Postgres implementation of UserRepository and
// SessionRepository.
type Store struct {
	DB *sql.DB
}

var (
	_ UserRepository    = (*Store)(nil)
	_ SessionRepository = (*Store)(nil)
)

func NewStore(conn *sql.DB) *Store {
	return &Store{
		DB: conn,
	}
}

const uniqueViolation = "23505"

func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == uniqueViolation && pqErr.Constraint == constraint
}
