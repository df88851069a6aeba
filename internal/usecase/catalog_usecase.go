package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/DRSN-tech/bifl-catalog/internal/cfg"
	"github.com/DRSN-tech/bifl-catalog/internal/domain"
	"github.com/DRSN-tech/bifl-catalog/pkg/e"
	"github.com/DRSN-tech/bifl-catalog/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// CatalogUseCase реализует чтение каталога: списки товаров и брендов, фильтры и карточки.
type CatalogUseCase struct {
	productRepo ProductRepository
	brandRepo   BrandRepository
	filterRepo  FilterOptionsRepository
	cacheRepo   CacheRepository
	imageRepo   ImageRepository
	snapshot    SnapshotRunner
	logger      logger.Logger
	cfg         *cfg.CatalogCfg
}

func NewCatalogUC(
	productRepo ProductRepository,
	brandRepo BrandRepository,
	filterRepo FilterOptionsRepository,
	cacheRepo CacheRepository,
	imageRepo ImageRepository,
	snapshot SnapshotRunner,
	logger logger.Logger,
	cfg *cfg.CatalogCfg,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo: productRepo,
		brandRepo:   brandRepo,
		filterRepo:  filterRepo,
		cacheRepo:   cacheRepo,
		imageRepo:   imageRepo,
		snapshot:    snapshot,
		logger:      logger,
		cfg:         cfg,
	}
}

// ListProducts возвращает страницу товаров. Некорректные параметры нормализуются, а не отклоняются.
func (c *CatalogUseCase) ListProducts(ctx context.Context, q CatalogQuery) (*CatalogPage, error) {
	const op = "CatalogUseCase.ListProducts"

	q = q.Normalize(c.cfg.DefaultPageSize)

	ctx, cancel := c.withQueryTimeout(ctx)
	defer cancel()

	items, total, err := c.productRepo.List(ctx, q)
	if err != nil {
		return nil, storeErr(op, err)
	}

	return NewCatalogPage(items, total, q.Paging), nil
}

// GetFilterOptions возвращает варианты фильтров по всему каталогу (cache-aside через Redis).
// Ошибки кэша только логируются.
func (c *CatalogUseCase) GetFilterOptions(ctx context.Context) (*FilterOptions, error) {
	const op = "CatalogUseCase.GetFilterOptions"

	cached, err := c.cacheRepo.GetFilterOptions(ctx)
	if err != nil {
		c.logger.Warnf("Failed to read filter options from cache: %v", e.Wrap(op, err))
	}
	if cached != nil {
		return cached, nil
	}

	qctx, cancel := c.withQueryTimeout(ctx)
	defer cancel()

	var (
		pairs    []domain.Category
		brands   []string
		products []string
	)

	g, gctx := errgroup.WithContext(qctx)
	g.Go(func() error {
		var err error
		pairs, err = c.filterRepo.CategoryPairs(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		brands, err = c.filterRepo.BrandNames(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		products, err = c.filterRepo.ProductNames(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, storeErr(op, err)
	}

	opts := &FilterOptions{
		Categories:  GroupCategories(pairs),
		Brands:      nonNil(brands),
		Products:    nonNil(products),
		PriceRanges: domain.PriceBuckets(),
	}

	if err := c.cacheRepo.SetFilterOptions(ctx, opts); err != nil {
		c.logger.Warnf("Failed to cache filter options: %v", e.Wrap(op, err))
	}

	return opts, nil
}

// GetProduct возвращает карточку товара с материалами и изображениями, прочитанными в одном снимке.
func (c *CatalogUseCase) GetProduct(ctx context.Context, rawID string) (*ProductDetail, error) {
	const op = "CatalogUseCase.GetProduct"

	id, err := parseID(rawID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, cancel := c.withQueryTimeout(ctx)
	defer cancel()

	var detail *ProductDetail
	err = c.snapshot.ReadSnapshot(ctx, func(ctx context.Context) error {
		d, err := c.productRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if d.Materials, err = c.productRepo.Materials(ctx, id); err != nil {
			return err
		}

		if d.Images, err = c.productRepo.Images(ctx, id); err != nil {
			return err
		}

		detail = d
		return nil
	})
	if err != nil {
		return nil, storeErr(op, err)
	}

	detail.Images = c.resolveImages(ctx, detail.Images)
	return detail, nil
}

// ListBrands возвращает страницу брендов вместе с избранными брендами.
func (c *CatalogUseCase) ListBrands(ctx context.Context, q BrandQuery) (*BrandPage, error) {
	const op = "CatalogUseCase.ListBrands"

	q = q.Normalize(c.cfg.DefaultPageSize)

	ctx, cancel := c.withQueryTimeout(ctx)
	defer cancel()

	var (
		items    []BrandRow
		featured []BrandRow
		total    int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, total, err = c.brandRepo.List(gctx, q)
		return err
	})
	if c.cfg.FeaturedBrands > 0 {
		g.Go(func() error {
			var err error
			featured, err = c.brandRepo.Featured(gctx, c.cfg.FeaturedBrands)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, storeErr(op, err)
	}

	return NewBrandPage(items, featured, total, q.Paging), nil
}

// GetBrand возвращает бренд и все его товары.
func (c *CatalogUseCase) GetBrand(ctx context.Context, rawID string) (*BrandDetail, error) {
	const op = "CatalogUseCase.GetBrand"

	id, err := parseID(rawID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, cancel := c.withQueryTimeout(ctx)
	defer cancel()

	var detail *BrandDetail
	err = c.snapshot.ReadSnapshot(ctx, func(ctx context.Context) error {
		brand, err := c.brandRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		products, err := c.productRepo.ListByBrand(ctx, id)
		if err != nil {
			return err
		}

		detail = &BrandDetail{BrandRow: *brand, Products: nonNil(products)}
		return nil
	})
	if err != nil {
		return nil, storeErr(op, err)
	}

	return detail, nil
}

// resolveImages заменяет ключи объектов на presign-ссылки. Абсолютные ссылки не меняются.
// Изображение, для которого не удалось получить ссылку, пропускается.
func (c *CatalogUseCase) resolveImages(ctx context.Context, images []domain.ProductImage) []domain.ProductImage {
	resolved := make([]domain.ProductImage, 0, len(images))
	for _, img := range images {
		if img.IsObjectKey() {
			url, err := c.imageRepo.PresignedURL(ctx, img.URL)
			if err != nil {
				c.logger.Warnf("Failed to presign image %d of product %d: %v", img.ID, img.ProductID, err)
				continue
			}
			img.URL = url
		}
		resolved = append(resolved, img)
	}

	return resolved
}

func (c *CatalogUseCase) withQueryTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.cfg.QueryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.cfg.QueryTimeout)
}

// parseID разбирает идентификатор из пути. Нечисловые и неположительные значения дают ErrInvalidIdentifier.
func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, e.Wrap(strconv.Quote(raw), e.ErrInvalidIdentifier)
	}

	return id, nil
}

// storeErr сохраняет «не найдено» как есть, остальные ошибки хранилища помечает как ErrQueryFailed.
func storeErr(op string, err error) error {
	if errors.Is(err, e.ErrNotFound) {
		return e.Wrap(op, err)
	}

	return e.Wrap(op, e.QueryFailed(err))
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
