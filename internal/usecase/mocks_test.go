package usecase

import (
	"context"

	"github.com/DRSN-tech/bifl-catalog/internal/domain"
	"github.com/stretchr/testify/mock"
)

type mockProductRepo struct{ mock.Mock }

func (m *mockProductRepo) List(ctx context.Context, q CatalogQuery) ([]ProductRow, int64, error) {
	args := m.Called(ctx, q)
	rows, _ := args.Get(0).([]ProductRow)
	return rows, args.Get(1).(int64), args.Error(2)
}

func (m *mockProductRepo) GetByID(ctx context.Context, id int64) (*ProductDetail, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*ProductDetail)
	return d, args.Error(1)
}

func (m *mockProductRepo) Materials(ctx context.Context, id int64) ([]domain.ProductMaterial, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).([]domain.ProductMaterial)
	return v, args.Error(1)
}

func (m *mockProductRepo) Images(ctx context.Context, id int64) ([]domain.ProductImage, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).([]domain.ProductImage)
	return v, args.Error(1)
}

func (m *mockProductRepo) ListByBrand(ctx context.Context, brandID int64) ([]ProductRow, error) {
	args := m.Called(ctx, brandID)
	v, _ := args.Get(0).([]ProductRow)
	return v, args.Error(1)
}

type mockBrandRepo struct{ mock.Mock }

func (m *mockBrandRepo) List(ctx context.Context, q BrandQuery) ([]BrandRow, int64, error) {
	args := m.Called(ctx, q)
	rows, _ := args.Get(0).([]BrandRow)
	return rows, args.Get(1).(int64), args.Error(2)
}

func (m *mockBrandRepo) Featured(ctx context.Context, limit int) ([]BrandRow, error) {
	args := m.Called(ctx, limit)
	rows, _ := args.Get(0).([]BrandRow)
	return rows, args.Error(1)
}

func (m *mockBrandRepo) GetByID(ctx context.Context, id int64) (*BrandRow, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*BrandRow)
	return b, args.Error(1)
}

type mockFilterRepo struct{ mock.Mock }

func (m *mockFilterRepo) CategoryPairs(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]domain.Category)
	return v, args.Error(1)
}

func (m *mockFilterRepo) BrandNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]string)
	return v, args.Error(1)
}

func (m *mockFilterRepo) ProductNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]string)
	return v, args.Error(1)
}

type mockCacheRepo struct{ mock.Mock }

func (m *mockCacheRepo) GetFilterOptions(ctx context.Context) (*FilterOptions, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).(*FilterOptions)
	return v, args.Error(1)
}

func (m *mockCacheRepo) SetFilterOptions(ctx context.Context, opts *FilterOptions) error {
	return m.Called(ctx, opts).Error(0)
}

type mockImageRepo struct{ mock.Mock }

func (m *mockImageRepo) PresignedURL(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

// inlineSnapshot выполняет функцию без транзакции.
type inlineSnapshot struct{ calls int }

func (s *inlineSnapshot) ReadSnapshot(ctx context.Context, fn func(ctx context.Context) error) error {
	s.calls++
	return fn(ctx)
}
