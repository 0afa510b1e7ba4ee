package repository

import (
	"context"
	stdsql "database/sql"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
)

// store is shared by every repository: the ent driver plus its dialect builder.
type store struct {
	drv dialect.Driver
}

func newStore(drv dialect.Driver) store { return store{drv: drv} }

func (s store) builder() *sql.DialectBuilder { return sql.Dialect(s.drv.Dialect()) }

// tx runs fn inside a transaction, rolling back when fn fails.
func (s store) tx(ctx context.Context, fn func(dialect.Tx) error) error {
	tx, err := s.drv.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = errors.Join(err, fmt.Errorf("rollback: %w", rerr))
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// scanAll runs q and scans every row into dst, which must point to a slice.
// Rows are closed before returning so that single-connection pools stay usable.
func scanAll(ctx context.Context, eq dialect.ExecQuerier, q sql.Querier, dst any) error {
	query, args := q.Query()
	var rows sql.Rows
	if err := eq.Query(ctx, query, args, &rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(&rows, dst)
}

// scanInt64 runs q and returns the single integer it selects.
func scanInt64(ctx context.Context, eq dialect.ExecQuerier, q sql.Querier) (int64, error) {
	query, args := q.Query()
	var rows sql.Rows
	if err := eq.Query(ctx, query, args, &rows); err != nil {
		return 0, err
	}
	defer rows.Close()
	return sql.ScanInt64(&rows)
}

// exec runs q and returns the number of affected rows.
func exec(ctx context.Context, eq dialect.ExecQuerier, q sql.Querier) (int64, error) {
	query, args := q.Query()
	var res stdsql.Result
	if err := eq.Exec(ctx, query, args, &res); err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// exists reports whether table has a row with the given id.
func (s store) exists(ctx context.Context, eq dialect.ExecQuerier, table string, id int64) (bool, error) {
	b := s.builder()
	t := b.Table(table)
	n, err := scanInt64(ctx, eq, b.Select().Count().From(t).Where(sql.EQ(t.C("id"), id)))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
