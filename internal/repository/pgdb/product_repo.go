package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/bifl-catalog/internal/domain"
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

// ProductRepo реализует чтение товаров поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

// List выполняет запрос данных и запрос количества параллельно. Оба запроса используют один предикат.
// Частичный результат не возвращается: ошибка любого из запросов отменяет оба.
func (p *ProductRepo) List(ctx context.Context, q usecase.CatalogQuery) ([]usecase.ProductRow, int64, error) {
	dataStmt, countStmt := productStatements(q)

	var (
		models []converter.ProductRowModel
		total  int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := p.pool.QueryRow(gctx, countStmt.SQL, countStmt.Args...).Scan(&total); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
		return nil
	})
	g.Go(func() error {
		rows, err := p.pool.Query(gctx, dataStmt.SQL, dataStmt.Args...)
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}

		models, err = pgx.CollectRows(rows, pgx.RowToStructByName[converter.ProductRowModel])
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	return p.conv.ToRows(models), total, nil
}

// GetByID возвращает товар с брендом и категорией. Материалы и изображения читаются отдельно.
// Если в контексте есть транзакция, запрос выполняется в ней.
func (p *ProductRepo) GetByID(ctx context.Context, id int64) (*usecase.ProductDetail, error) {
	stmt := productsFrom().
		Select(productColumns...).
		Where(query.Eq("p.id", id)).
		Build()

	rows, err := tr.QuerierFromCtx(ctx, p.pool).Query(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[converter.ProductRowModel])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrProductNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToDetail(&model), nil
}

// Materials возвращает материалы товара по убыванию доли, при равенстве по имени.
func (p *ProductRepo) Materials(ctx context.Context, productID int64) ([]domain.ProductMaterial, error) {
	sql := `
		SELECT m.id, m.name, pm.percentage::text AS percentage
		FROM product_materials pm
		JOIN materials m ON m.id = pm.material_id
		WHERE pm.product_id = $1
		ORDER BY pm.percentage DESC, m.name ASC
	`

	rows, err := tr.QuerierFromCtx(ctx, p.pool).Query(ctx, sql, productID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	models, err := pgx.CollectRows(rows, pgx.RowToStructByName[converter.ProductMaterialModel])
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToMaterials(models), nil
}

// Images возвращает изображения товара в порядке id.
func (p *ProductRepo) Images(ctx context.Context, productID int64) ([]domain.ProductImage, error) {
	sql := `
		SELECT id, product_id, url
		FROM product_images
		WHERE product_id = $1
		ORDER BY id
	`

	rows, err := tr.QuerierFromCtx(ctx, p.pool).Query(ctx, sql, productID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	models, err := pgx.CollectRows(rows, pgx.RowToStructByName[converter.ProductImageModel])
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToImages(models), nil
}

// ListByBrand возвращает все товары бренда, отсортированные по имени.
func (p *ProductRepo) ListByBrand(ctx context.Context, brandID int64) ([]usecase.ProductRow, error) {
	stmt := productsFrom().
		Select(productColumns...).
		Where(query.Eq("p.brand_id", brandID)).
		OrderBy("p.name", query.Asc).
		OrderBy("p.id", query.Asc).
		Build()

	rows, err := tr.QuerierFromCtx(ctx, p.pool).Query(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	models, err := pgx.CollectRows(rows, pgx.RowToStructByName[converter.ProductRowModel])
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToRows(models), nil
}
