// Package service contains the business logic.
//
// It sits between the handler and repository layers. Every operation
// acquires its own database connection, runs one repository call and
// releases the connection on every exit path.
package service

import (
	"context"
	"database/sql"

	"github.com/deppfellow/portfolio/internal/database"
	"github.com/deppfellow/portfolio/internal/repository"
)

// withConn acquires a connection, runs fn and closes the connection.
func withConn[R any](ctx context.Context, db database.Provider, fn func(conn *sql.Conn) (R, error)) (R, error) {
	conn, err := db.Acquire(ctx)
	if err != nil {
		var zero R
		return zero, err
	}
	defer conn.Close()

	return fn(conn)
}

// EntityService exposes the CRUD operations of one portfolio entity.
type EntityService[T any] struct {
	db    database.Provider
	table *repository.Table[T]
}

func NewEntityService[T any](db database.Provider, table *repository.Table[T]) *EntityService[T] {
	return &EntityService[T]{db: db, table: table}
}

// List returns every record ordered by id.
func (s *EntityService[T]) List(ctx context.Context) ([]T, error) {
	return withConn(ctx, s.db, func(conn *sql.Conn) ([]T, error) {
		return s.table.List(ctx, conn)
	})
}

// Get returns one record or repository.ErrNotFound.
func (s *EntityService[T]) Get(ctx context.Context, id int64) (T, error) {
	return withConn(ctx, s.db, func(conn *sql.Conn) (T, error) {
		return s.table.Get(ctx, conn, id)
	})
}

// Create stores a new record and returns its id.
func (s *EntityService[T]) Create(ctx context.Context, record T) (int64, error) {
	return withConn(ctx, s.db, func(conn *sql.Conn) (int64, error) {
		return s.table.Insert(ctx, conn, record)
	})
}

// Update replaces record id. Missing ids are a silent no-op; the returned
// bool reports whether a row changed.
func (s *EntityService[T]) Update(ctx context.Context, id int64, record T) (bool, error) {
	return withConn(ctx, s.db, func(conn *sql.Conn) (bool, error) {
		n, err := s.table.Update(ctx, conn, id, record)
		return n > 0, err
	})
}

// Delete removes record id. Missing ids are a silent no-op.
func (s *EntityService[T]) Delete(ctx context.Context, id int64) (bool, error) {
	return withConn(ctx, s.db, func(conn *sql.Conn) (bool, error) {
		n, err := s.table.Delete(ctx, conn, id)
		return n > 0, err
	})
}
