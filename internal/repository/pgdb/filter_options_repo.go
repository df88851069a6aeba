package pgdb

import (
	"context"

	"github.com/DRSN-tech/bifl-catalog/internal/domain"
	"github.com/DRSN-tech/bifl-catalog/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/bifl-catalog/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// FilterOptionsRepo собирает значения фильтров по всему каталогу,
// включая категории и бренды без товаров.
type FilterOptionsRepo struct {
	pool *pgxpool.Pool
	conv converter.CategoryConverter
}

func NewFilterOptionsRepo(pool *pgxpool.Pool, conv converter.CategoryConverter) *FilterOptionsRepo {
	return &FilterOptionsRepo{pool: pool, conv: conv}
}

// CategoryPairs возвращает различные пары «основная категория / подкатегория».
func (f *FilterOptionsRepo) CategoryPairs(ctx context.Context) ([]domain.Category, error) {
	sql := `
		SELECT MIN(c.id) AS id, c.main_category, c.subcategory
		FROM categories c
		GROUP BY c.main_category, c.subcategory
		ORDER BY c.main_category, c.subcategory
	`

	rows, err := f.pool.Query(ctx, sql)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	models, err := pgx.CollectRows(rows, pgx.RowToStructByName[converter.CategoryModel])
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return f.conv.ToArrEntity(models), nil
}

// BrandNames возвращает различные имена брендов, отсортированные по алфавиту.
func (f *FilterOptionsRepo) BrandNames(ctx context.Context) ([]string, error) {
	return f.names(ctx, `
		SELECT DISTINCT b.name
		FROM brands b
		ORDER BY b.name
	`)
}

// ProductNames возвращает различные названия товаров, отсортированные по алфавиту.
func (f *FilterOptionsRepo) ProductNames(ctx context.Context) ([]string, error) {
	return f.names(ctx, `SELECT DISTINCT p.name FROM products p ORDER BY p.name`)
}

func (f *FilterOptionsRepo) names(ctx context.Context, sql string) ([]string, error) {
	rows, err := f.pool.Query(ctx, sql)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return names, nil
}
