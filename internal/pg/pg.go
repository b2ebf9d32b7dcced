package pg

//go:generate mockgen -destination=mock_pg.go -package=pg github.com/GlebRadaev/finseed/internal/pg TXManager

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Database interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// Pool is a Database that can open transactions. Both *pgxpool.Pool and pgxmock pools satisfy it.
type Pool interface {
	Database
	Begin(ctx context.Context) (pgx.Tx, error)
}

type TransactionalFn func(ctx context.Context) error

type TXManager interface {
	Begin(ctx context.Context, fn TransactionalFn) error
}

type txKey struct{}

// Conn routes every statement through the transaction stored in ctx, if any.
type Conn struct {
	pool Pool
}

func New(pool Pool) *Conn {
	return &Conn{pool: pool}
}

func (c *Conn) executor(ctx context.Context) Database {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return c.pool
}

func (c *Conn) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return c.executor(ctx).Exec(ctx, sql, arguments...)
}

func (c *Conn) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return c.executor(ctx).Query(ctx, sql, args...)
}

func (c *Conn) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return c.executor(ctx).QueryRow(ctx, sql, args...)
}

func (c *Conn) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return c.executor(ctx).CopyFrom(ctx, tableName, columnNames, rowSrc)
}

type TxManager struct {
	pool Pool
}

func NewTXManager(pool Pool) *TxManager {
	return &TxManager{pool: pool}
}

// Begin runs fn inside a transaction. A Begin nested in another joins the outer transaction.
func (m *TxManager) Begin(ctx context.Context, fn TransactionalFn) error {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return err
	}

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return errors.Join(err, rbErr)
		}
		return err
	}
	return tx.Commit(ctx)
}
