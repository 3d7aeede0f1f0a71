package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

// ErrNotFound is returned by lookups that match no row.
var ErrNotFound = errors.New("postgres: not found")

func noRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
