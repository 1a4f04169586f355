package postgresql

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chronoworks/timesheet-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type txContextKey struct{}

// TxBeginner opens transactions. *database.DB satisfies it through the
// embedded pool.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// WithTransaction executes fn inside a database transaction. fn receives a
// context carrying the transaction; repositories resolve it via GetQuerier,
// so every statement issued through them joins the same transaction. Any
// error or panic rolls the whole transaction back.
func WithTransaction(ctx context.Context, db TxBeginner, fn func(ctx context.Context) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				slog.Error("rollback error during panic recovery", "error", rbErr)
			}
			panic(p)
		}
	}()

	txCtx := context.WithValue(ctx, txContextKey{}, tx)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback error: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// GetQuerier returns the transaction carried by ctx, or the fallback querier.
// Used in repositories to support both transactional and non-transactional
// operations.
func GetQuerier(ctx context.Context, fallback database.Querier) database.Querier {
	if tx, ok := ctx.Value(txContextKey{}).(pgx.Tx); ok {
		return tx
	}
	return fallback
}

// TxManager adapts WithTransaction to the Transactor interfaces the services
// declare, keeping transaction control injectable in tests.
type TxManager struct {
	db TxBeginner
}

func NewTxManager(db TxBeginner) *TxManager {
	return &TxManager{db: db}
}

func (m *TxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return WithTransaction(ctx, m.db, fn)
}
