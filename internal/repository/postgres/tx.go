package postgres

import (
	"context"
	"database/sql"
)

// withTx runs fn inside a transaction, committing when fn succeeds and
// rolling back on error or panic.
func (s *Connection) withTx(ctx context.Context, fn func(tx *sql.Tx) error) (err error) {
	tx, err := s.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	return fn(tx)
}
