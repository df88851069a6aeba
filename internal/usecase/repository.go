package usecase

import (
	"context"

	"github.com/DRSN-tech/bifl-catalog/internal/domain"
)

type ProductRepository interface {
	// List возвращает страницу товаров и общее число строк, подходящих под тот же предикат.
	List(ctx context.Context, q CatalogQuery) ([]ProductRow, int64, error)
	// GetByID возвращает e.ErrProductNotFound, если товара нет.
	GetByID(ctx context.Context, id int64) (*ProductDetail, error)
	Materials(ctx context.Context, productID int64) ([]domain.ProductMaterial, error)
	Images(ctx context.Context, productID int64) ([]domain.ProductImage, error)
	ListByBrand(ctx context.Context, brandID int64) ([]ProductRow, error)
}

type BrandRepository interface {
	List(ctx context.Context, q BrandQuery) ([]BrandRow, int64, error)
	Featured(ctx context.Context, limit int) ([]BrandRow, error)
	// GetByID возвращает e.ErrBrandNotFound, если бренда нет.
	GetByID(ctx context.Context, id int64) (*BrandRow, error)
}

type FilterOptionsRepository interface {
	CategoryPairs(ctx context.Context) ([]domain.Category, error)
	BrandNames(ctx context.Context) ([]string, error)
	ProductNames(ctx context.Context) ([]string, error)
}

type CacheRepository interface {
	// GetFilterOptions возвращает nil без ошибки при промахе кэша.
	GetFilterOptions(ctx context.Context) (*FilterOptions, error)
	SetFilterOptions(ctx context.Context, opts *FilterOptions) error
}

type ImageRepository interface {
	PresignedURL(ctx context.Context, objectKey string) (string, error)
}
