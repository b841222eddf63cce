// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update data, abstracting SQL logic away from the service layer.
//
// Every entity table is served by the same generic Table, parameterized by
// the table name, its mutable columns and the mapping between a row and the
// entity struct. Values are always bound as parameters; only the fixed
// table and column names are spliced into the SQL text.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/deppfellow/portfolio/internal/database"
)

// ErrNotFound is returned by Get when no row has the requested id.
var ErrNotFound = errors.New("record not found")

// Conn is the subset of *sql.Conn (and *sql.DB) a Table needs.
type Conn interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

var (
	_ Conn = (*sql.Conn)(nil)
	_ Conn = (*sql.DB)(nil)
)

// Table is the CRUD repository for one entity type.
type Table[T any] struct {
	name    string
	columns []string

	// values returns the mutable fields of a record, in column order.
	values func(T) []string
	// build assembles a record from its id and column values.
	build func(id int64, vals []string) T

	selectAllSQL string
	selectOneSQL string
	insertSQL    string
	updateSQL    string
	deleteSQL    string
}

// NewTable prepares the statements for table in the given dialect.
func NewTable[T any](
	dialect database.Dialect,
	name string,
	columns []string,
	values func(T) []string,
	build func(id int64, vals []string) T,
) *Table[T] {
	t := &Table[T]{
		name:    name,
		columns: columns,
		values:  values,
		build:   build,
	}

	selected := make([]string, len(columns))
	assignments := make([]string, len(columns))
	placeholders := make([]string, len(columns))
	for i, col := range columns {
		selected[i] = fmt.Sprintf("COALESCE(CAST(%s AS TEXT), '')", col)
		assignments[i] = fmt.Sprintf("%s = %s", col, dialect.Placeholder(i+1))
		placeholders[i] = dialect.Placeholder(i + 1)
	}
	idParam := dialect.Placeholder(len(columns) + 1)

	t.selectAllSQL = fmt.Sprintf("SELECT id, %s FROM %s ORDER BY id",
		strings.Join(selected, ", "), name)
	t.selectOneSQL = fmt.Sprintf("SELECT id, %s FROM %s WHERE id = %s",
		strings.Join(selected, ", "), name, dialect.Placeholder(1))
	t.insertSQL = fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		name, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
	t.updateSQL = fmt.Sprintf("UPDATE %s SET %s WHERE id = %s",
		name, strings.Join(assignments, ", "), idParam)
	t.deleteSQL = fmt.Sprintf("DELETE FROM %s WHERE id = %s",
		name, dialect.Placeholder(1))

	return t
}

// Name returns the table name.
func (t *Table[T]) Name() string {
	return t.name
}

// List returns every row ordered by id. The result is never nil.
func (t *Table[T]) List(ctx context.Context, conn Conn) ([]T, error) {
	rows, err := conn.QueryContext(ctx, t.selectAllSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", t.name, err)
	}
	defer rows.Close()

	records := []T{}
	for rows.Next() {
		record, err := t.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", t.name, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", t.name, err)
	}

	return records, nil
}

// Get returns the row with the given id, or ErrNotFound.
func (t *Table[T]) Get(ctx context.Context, conn Conn, id int64) (T, error) {
	record, err := t.scan(conn.QueryRowContext(ctx, t.selectOneSQL, id))
	if err != nil {
		var zero T
		if errors.Is(err, sql.ErrNoRows) {
			return zero, fmt.Errorf("%w: table:%s: id %d", ErrNotFound, t.name, id)
		}
		return zero, fmt.Errorf("failed to get %s %d: %w", t.name, id, err)
	}
	return record, nil
}

// Insert stores record and returns the id assigned by the store.
func (t *Table[T]) Insert(ctx context.Context, conn Conn, record T) (int64, error) {
	var id int64
	err := inTx(ctx, conn, func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, t.insertSQL, t.args(record)...).Scan(&id)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to insert into %s: %w", t.name, err)
	}
	return id, nil
}

// Update replaces every mutable column of row id. A missing id is a no-op;
// the number of affected rows is returned.
func (t *Table[T]) Update(ctx context.Context, conn Conn, id int64, record T) (int64, error) {
	var affected int64
	err := inTx(ctx, conn, func(tx *sql.Tx) error {
		args := append(t.args(record), id)
		res, err := tx.ExecContext(ctx, t.updateSQL, args...)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to update %s %d: %w", t.name, id, err)
	}
	return affected, nil
}

// Delete removes row id. A missing id is a no-op; the number of affected
// rows is returned.
func (t *Table[T]) Delete(ctx context.Context, conn Conn, id int64) (int64, error) {
	var affected int64
	err := inTx(ctx, conn, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, t.deleteSQL, id)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete %s %d: %w", t.name, id, err)
	}
	return affected, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func (t *Table[T]) scan(row scanner) (T, error) {
	var id int64
	vals := make([]string, len(t.columns))

	dest := make([]any, 0, len(t.columns)+1)
	dest = append(dest, &id)
	for i := range vals {
		dest = append(dest, &vals[i])
	}

	if err := row.Scan(dest...); err != nil {
		var zero T
		return zero, err
	}
	return t.build(id, vals), nil
}

func (t *Table[T]) args(record T) []any {
	vals := t.values(record)
	args := make([]any, len(vals), len(vals)+1)
	for i, v := range vals {
		args[i] = v
	}
	return args
}

// inTx runs fn in its own transaction, committing on success and rolling
// back otherwise.
func inTx(ctx context.Context, conn Conn, fn func(tx *sql.Tx) error) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
