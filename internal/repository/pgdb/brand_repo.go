package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/bifl-catalog/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/bifl-catalog/internal/usecase"
	"github.com/DRSN-tech/bifl-catalog/pkg/e"
	"github.com/DRSN-tech/bifl-catalog/pkg/query"
	"github.com/DRSN-tech/bifl-catalog/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"golang.org/x/sync/errgroup"
)

// BrandRepo реализует чтение брендов поверх PostgreSQL.
type BrandRepo struct {
	pool *pgxpool.Pool
	conv converter.BrandConverter
}

func NewBrandRepo(pool *pgxpool.Pool, conv converter.BrandConverter) *BrandRepo {
	return &BrandRepo{pool: pool, conv: conv}
}

// List возвращает страницу брендов и их общее число по тому же предикату.
func (b *BrandRepo) List(ctx context.Context, q usecase.BrandQuery) ([]usecase.BrandRow, int64, error) {
	dataStmt, countStmt := brandStatements(q)

	var (
		models []converter.BrandRowModel
		total  int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := b.pool.QueryRow(gctx, countStmt.SQL, countStmt.Args...).Scan(&total); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		models, err = b.collect(gctx, b.pool, dataStmt)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	return b.conv.ToRows(models), total, nil
}

// Featured возвращает до limit случайных брендов для карусели.
func (b *BrandRepo) Featured(ctx context.Context, limit int) ([]usecase.BrandRow, error) {
	stmt := brandsFrom().
		Select(brandColumns...).
		OrderBy("random()", query.Asc).
		Limit(int64(limit)).
		Build()

	models, err := b.collect(ctx, b.pool, stmt)
	if err != nil {
		return nil, err
	}

	return b.conv.ToRows(models), nil
}

// GetByID возвращает бренд с его категорией или e.ErrBrandNotFound.
func (b *BrandRepo) GetByID(ctx context.Context, id int64) (*usecase.BrandRow, error) {
	stmt := brandsFrom().
		Select(brandColumns...).
		Where(query.Eq("b.id", id)).
		Build()

	rows, err := tr.QuerierFromCtx(ctx, b.pool).Query(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[converter.BrandRowModel])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrBrandNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	row := b.conv.ToRow(&model)
	return &row, nil
}

func (b *BrandRepo) collect(ctx context.Context, q tr.Querier, stmt query.Statement) ([]converter.BrandRowModel, error) {
	rows, err := q.Query(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	models, err := pgx.CollectRows(rows, pgx.RowToStructByName[converter.BrandRowModel])
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return models, nil
}
