package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DRSN-tech/bifl-catalog/internal/cfg"
	"github.com/DRSN-tech/bifl-catalog/internal/domain"
	"github.com/DRSN-tech/bifl-catalog/pkg/e"
	"github.com/DRSN-tech/bifl-catalog/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	products *mockProductRepo
	brands   *mockBrandRepo
	filters  *mockFilterRepo
	cache    *mockCacheRepo
	images   *mockImageRepo
	snapshot *inlineSnapshot
	uc       *CatalogUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		products: &mockProductRepo{},
		brands:   &mockBrandRepo{},
		filters:  &mockFilterRepo{},
		cache:    &mockCacheRepo{},
		images:   &mockImageRepo{},
		snapshot: &inlineSnapshot{},
	}
	f.uc = NewCatalogUC(f.products, f.brands, f.filters, f.cache, f.images, f.snapshot, logger.NewNopLogger(),
		&cfg.CatalogCfg{QueryTimeout: time.Second, DefaultPageSize: 10, FeaturedBrands: 3})

	t.Cleanup(func() {
		f.products.AssertExpectations(t)
		f.brands.AssertExpectations(t)
		f.filters.AssertExpectations(t)
		f.cache.AssertExpectations(t)
		f.images.AssertExpectations(t)
	})

	return f
}

func TestListProducts_NormalizesQueryBeforeRepository(t *testing.T) {
	f := newFixture(t)

	want := CatalogQuery{
		Paging:        Paging{Page: 1, PageSize: 10},
		SortField:     SortByName,
		SortDirection: SortAsc,
		Search:        "wool",
		Filters:       map[FilterCategory][]string{FilterByBrand: {"Darn Tough"}},
	}
	f.products.On("List", mock.Anything, want).Return([]ProductRow{{Product: domain.Product{ID: 1}}}, int64(1), nil)

	page, err := f.uc.ListProducts(context.Background(), CatalogQuery{
		Paging:        Paging{Page: -3, PageSize: 0},
		SortField:     "price",
		SortDirection: SortDesc,
		Search:        "  wool ",
		Filters: map[FilterCategory][]string{
			FilterByBrand:    {" Darn Tough ", ""},
			"color":          {"red"},
			FilterByCategory: {"  "},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.PageSize)
	assert.Len(t, page.Items, 1)
}

func TestListProducts_PageSizeAllResolvesToTotal(t *testing.T) {
	f := newFixture(t)

	f.products.On("List", mock.Anything, mock.MatchedBy(func(q CatalogQuery) bool {
		return q.All() && q.Limit() == 0 && q.Offset() == 0
	})).Return([]ProductRow{{}, {}, {}}, int64(3), nil)

	page, err := f.uc.ListProducts(context.Background(), CatalogQuery{Paging: Paging{Page: 4, PageSize: PageSizeAll}})
	require.NoError(t, err)

	assert.Equal(t, 3, page.PageSize)
	assert.Equal(t, 4, page.Page)
}

func TestListProducts_PastLastPageReturnsEmptyItemsWithTotal(t *testing.T) {
	f := newFixture(t)

	f.products.On("List", mock.Anything, mock.Anything).Return(nil, int64(12), nil)

	page, err := f.uc.ListProducts(context.Background(), CatalogQuery{Paging: Paging{Page: 9, PageSize: 10}})
	require.NoError(t, err)

	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(12), page.Total)
}

func TestListProducts_StoreFailureIsQueryFailed(t *testing.T) {
	f := newFixture(t)

	f.products.On("List", mock.Anything, mock.Anything).Return(nil, int64(0), errors.New("connection reset"))

	page, err := f.uc.ListProducts(context.Background(), CatalogQuery{})
	require.ErrorIs(t, err, e.ErrQueryFailed)
	assert.Nil(t, page)
}

func TestListProducts_AppliesQueryTimeout(t *testing.T) {
	f := newFixture(t)

	f.products.On("List", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	}), mock.Anything).Return(nil, int64(0), nil)

	_, err := f.uc.ListProducts(context.Background(), CatalogQuery{})
	require.NoError(t, err)
}

func TestGetFilterOptions_CacheHit(t *testing.T) {
	f := newFixture(t)

	cached := &FilterOptions{Brands: []string{"Lodge"}}
	f.cache.On("GetFilterOptions", mock.Anything).Return(cached, nil)

	opts, err := f.uc.GetFilterOptions(context.Background())
	require.NoError(t, err)
	assert.Same(t, cached, opts)
}

func TestGetFilterOptions_CacheMissLoadsAndStores(t *testing.T) {
	f := newFixture(t)

	f.cache.On("GetFilterOptions", mock.Anything).Return(nil, nil)
	f.filters.On("CategoryPairs", mock.Anything).Return([]domain.Category{
		{MainCategory: "Kitchen", SubCategory: "Pans"},
		{MainCategory: "Apparel", SubCategory: "Socks"},
		{MainCategory: "Kitchen", SubCategory: "Knives"},
		{MainCategory: "Kitchen", SubCategory: "Pans"},
	}, nil)
	f.filters.On("BrandNames", mock.Anything).Return([]string{"Darn Tough", "Lodge"}, nil)
	f.filters.On("ProductNames", mock.Anything).Return(nil, nil)
	f.cache.On("SetFilterOptions", mock.Anything, mock.AnythingOfType("*usecase.FilterOptions")).Return(nil)

	opts, err := f.uc.GetFilterOptions(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []CategoryGroup{
		{MainCategory: "Apparel", SubCategories: []string{"Socks"}},
		{MainCategory: "Kitchen", SubCategories: []string{"Knives", "Pans"}},
	}, opts.Categories)
	assert.Equal(t, []string{"Darn Tough", "Lodge"}, opts.Brands)
	assert.NotNil(t, opts.Products)
	assert.Equal(t, domain.PriceBuckets(), opts.PriceRanges)
}

func TestGetFilterOptions_CacheErrorsAreNotFatal(t *testing.T) {
	f := newFixture(t)

	f.cache.On("GetFilterOptions", mock.Anything).Return(nil, errors.New("redis down"))
	f.filters.On("CategoryPairs", mock.Anything).Return([]domain.Category{}, nil)
	f.filters.On("BrandNames", mock.Anything).Return([]string{}, nil)
	f.filters.On("ProductNames", mock.Anything).Return([]string{}, nil)
	f.cache.On("SetFilterOptions", mock.Anything, mock.Anything).Return(errors.New("redis down"))

	opts, err := f.uc.GetFilterOptions(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, opts)
}

func TestGetFilterOptions_StoreFailure(t *testing.T) {
	f := newFixture(t)

	f.cache.On("GetFilterOptions", mock.Anything).Return(nil, nil)
	f.filters.On("CategoryPairs", mock.Anything).Return(nil, errors.New("boom"))
	f.filters.On("BrandNames", mock.Anything).Return([]string{}, nil).Maybe()
	f.filters.On("ProductNames", mock.Anything).Return([]string{}, nil).Maybe()

	_, err := f.uc.GetFilterOptions(context.Background())
	require.ErrorIs(t, err, e.ErrQueryFailed)
}

func TestGetProduct_InvalidIdentifier(t *testing.T) {
	for _, raw := range []string{"", "abc", "0", "-4", "1.5"} {
		t.Run(raw, func(t *testing.T) {
			f := newFixture(t)

			_, err := f.uc.GetProduct(context.Background(), raw)
			require.ErrorIs(t, err, e.ErrInvalidIdentifier)
			assert.Zero(t, f.snapshot.calls)
		})
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	f := newFixture(t)

	f.products.On("GetByID", mock.Anything, int64(7)).Return(nil, e.ErrProductNotFound)

	_, err := f.uc.GetProduct(context.Background(), "7")
	require.ErrorIs(t, err, e.ErrProductNotFound)
	require.ErrorIs(t, err, e.ErrNotFound)
	assert.NotErrorIs(t, err, e.ErrQueryFailed)
}

func TestGetProduct_ResolvesImagesInsideSnapshot(t *testing.T) {
	f := newFixture(t)

	f.products.On("GetByID", mock.Anything, int64(7)).Return(&ProductDetail{Product: domain.Product{ID: 7, Name: "Skillet"}}, nil)
	f.products.On("Materials", mock.Anything, int64(7)).Return([]domain.ProductMaterial{{Material: domain.Material{Name: "Cast iron"}}}, nil)
	f.products.On("Images", mock.Anything, int64(7)).Return([]domain.ProductImage{
		{ID: 1, ProductID: 7, URL: "products/7/a.jpg"},
		{ID: 2, ProductID: 7, URL: "https://cdn.example.com/b.jpg"},
		{ID: 3, ProductID: 7, URL: "products/7/broken.jpg"},
	}, nil)
	f.images.On("PresignedURL", mock.Anything, "products/7/a.jpg").Return("https://minio/a?sig=1", nil)
	f.images.On("PresignedURL", mock.Anything, "products/7/broken.jpg").Return("", errors.New("sign failed"))

	d, err := f.uc.GetProduct(context.Background(), " 7 ")
	require.NoError(t, err)

	assert.Equal(t, 1, f.snapshot.calls)
	assert.Equal(t, "Skillet", d.Name)
	assert.Len(t, d.Materials, 1)
	require.Len(t, d.Images, 2)
	assert.Equal(t, "https://minio/a?sig=1", d.Images[0].URL)
	assert.Equal(t, "https://cdn.example.com/b.jpg", d.Images[1].URL)
}

func TestListBrands_IncludesFeatured(t *testing.T) {
	f := newFixture(t)

	f.brands.On("List", mock.Anything, BrandQuery{
		Paging:        Paging{Page: 2, PageSize: 5},
		SortField:     BrandSortByName,
		SortDirection: SortAsc,
	}).Return([]BrandRow{{Brand: domain.Brand{ID: 6}}}, int64(6), nil)
	f.brands.On("Featured", mock.Anything, 3).Return([]BrandRow{{Brand: domain.Brand{ID: 1}}}, nil)

	page, err := f.uc.ListBrands(context.Background(), BrandQuery{
		Paging:        Paging{Page: 2, PageSize: 5},
		SortField:     "founded",
		SortDirection: SortDesc,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(6), page.Total)
	assert.Len(t, page.Items, 1)
	assert.Len(t, page.Featured, 1)
}

func TestGetBrand(t *testing.T) {
	f := newFixture(t)

	f.brands.On("GetByID", mock.Anything, int64(3)).Return(&BrandRow{Brand: domain.Brand{ID: 3, Name: "Lodge"}}, nil)
	f.products.On("ListByBrand", mock.Anything, int64(3)).Return(nil, nil)

	d, err := f.uc.GetBrand(context.Background(), "3")
	require.NoError(t, err)

	assert.Equal(t, "Lodge", d.Name)
	assert.NotNil(t, d.Products)
	assert.Empty(t, d.Products)
}

func TestGetBrand_NotFound(t *testing.T) {
	f := newFixture(t)

	f.brands.On("GetByID", mock.Anything, int64(99)).Return(nil, e.ErrBrandNotFound)

	_, err := f.uc.GetBrand(context.Background(), "99")
	require.ErrorIs(t, err, e.ErrBrandNotFound)
}

func TestGetBrand_InvalidIdentifier(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.GetBrand(context.Background(), "lodge")
	require.ErrorIs(t, err, e.ErrInvalidIdentifier)
}
