package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
)

// Store is the transaction/connection gateway shared by the
// repositories. It owns no connection state of its own: every call
// borrows from the pool and transactions never outlive withTx.
type Store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for single-statement reads.
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// withTx runs fn inside a transaction. Any error returned by fn (or a
// panic crossing the deferred rollback) aborts the whole transaction;
// only a clean return commits. The rollback after a successful commit
// is a no-op.
func (s *Store) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return crerr.Wrap(err, "begin tx")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return crerr.Wrap(err, "commit tx")
	}
	return nil
}
