package tr

import (
	"context"

	"github.com/DRSN-tech/bifl-catalog/pkg/e"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type txKey struct{}

// Querier — общее подмножество pgxpool.Pool и pgx.Tx, достаточное для чтения.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// WithTx кладёт транзакцию в контекст.
func WithTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// TxFromCtx извлекает объект транзакции (pgx.Tx) из контекста
func TxFromCtx(ctx context.Context) (pgx.Tx, error) {
	tx, ok := ctx.Value(txKey{}).(pgx.Tx)
	if !ok {
		return nil, e.ErrTransactionNotFound
	}
	return tx, nil
}

// QuerierFromCtx возвращает транзакцию из контекста, а при её отсутствии — fallback (обычно пул).
func QuerierFromCtx(ctx context.Context, fallback Querier) Querier {
	if tx, err := TxFromCtx(ctx); err == nil {
		return tx
	}
	return fallback
}

// SnapshotRunner выполняет функцию внутри READ ONLY транзакции с уровнем REPEATABLE READ,
// чтобы несколько запросов видели один снимок данных.
type SnapshotRunner struct {
	db transaction.Transactional
}

func NewSnapshotRunner(db transaction.Transactional) *SnapshotRunner {
	return &SnapshotRunner{db: db}
}

// ReadSnapshot запускает fn с транзакцией в контексте. Транзакция фиксируется при успехе
// и откатывается при ошибке.
func (s *SnapshotRunner) ReadSnapshot(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	const op = "SnapshotRunner.ReadSnapshot"

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	}, s.db)
	if err != nil {
		return e.Wrap(op, err)
	}

	defer func() {
		if err != nil && tx.IsActive() {
			_ = tx.Rollback(ctx)
		}
	}()

	pgxTx, ok := tx.Transaction().(pgx.Tx)
	if !ok {
		return e.Wrap(op, e.ErrTransactionNotFound)
	}

	if err = fn(WithTx(ctx, pgxTx)); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}
