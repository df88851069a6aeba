package usecase

import "context"

type CatalogUC interface {
	ListProducts(ctx context.Context, q CatalogQuery) (*CatalogPage, error)
	GetFilterOptions(ctx context.Context) (*FilterOptions, error)
	GetProduct(ctx context.Context, rawID string) (*ProductDetail, error)
	ListBrands(ctx context.Context, q BrandQuery) (*BrandPage, error)
	GetBrand(ctx context.Context, rawID string) (*BrandDetail, error)
}
