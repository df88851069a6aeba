package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/DRSN-tech/bifl-catalog/internal/cfg"
	"github.com/DRSN-tech/bifl-catalog/internal/domain"
	"github.com/DRSN-tech/bifl-catalog/internal/usecase"
	"github.com/DRSN-tech/bifl-catalog/pkg/e"
	"github.com/DRSN-tech/bifl-catalog/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"
)

type catalogUCMock struct{ mock.Mock }

func (m *catalogUCMock) ListProducts(ctx context.Context, q usecase.CatalogQuery) (*usecase.CatalogPage, error) {
	args := m.Called(ctx, q)
	page, _ := args.Get(0).(*usecase.CatalogPage)
	return page, args.Error(1)
}

func (m *catalogUCMock) GetFilterOptions(ctx context.Context) (*usecase.FilterOptions, error) {
	args := m.Called(ctx)
	opts, _ := args.Get(0).(*usecase.FilterOptions)
	return opts, args.Error(1)
}

func (m *catalogUCMock) GetProduct(ctx context.Context, rawID string) (*usecase.ProductDetail, error) {
	args := m.Called(ctx, rawID)
	d, _ := args.Get(0).(*usecase.ProductDetail)
	return d, args.Error(1)
}

func (m *catalogUCMock) ListBrands(ctx context.Context, q usecase.BrandQuery) (*usecase.BrandPage, error) {
	args := m.Called(ctx, q)
	page, _ := args.Get(0).(*usecase.BrandPage)
	return page, args.Error(1)
}

func (m *catalogUCMock) GetBrand(ctx context.Context, rawID string) (*usecase.BrandDetail, error) {
	args := m.Called(ctx, rawID)
	d, _ := args.Get(0).(*usecase.BrandDetail)
	return d, args.Error(1)
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func startServer(t *testing.T, uc usecase.CatalogUC) (*GRPCServer, *grpc.ClientConn) {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := NewGRPCServer(&cfg.GRPCConfig{Port: "0", NetworkMode: "tcp"}, logger.NewNopLogger())
	srv.RegisterServices(uc)
	go func() { _ = srv.Serve(lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Stop(ctx)
	})

	return srv, conn
}

func invoke(t *testing.T, conn *grpc.ClientConn, method string, req map[string]any) (*structpb.Struct, error) {
	t.Helper()

	in, err := structpb.NewStruct(req)
	require.NoError(t, err)

	out := &structpb.Struct{}
	err = conn.Invoke(context.Background(), "/"+CatalogServiceName+"/"+method, in, out)
	return out, err
}

func TestCatalogService_ListProducts(t *testing.T) {
	uc := &catalogUCMock{}
	msrp := decimal.RequireFromString("50.00")

	uc.On("ListProducts", mock.Anything, usecase.CatalogQuery{
		Paging:        usecase.Paging{Page: 2, PageSize: usecase.PageSizeAll},
		SortField:     usecase.SortByBrandName,
		SortDirection: usecase.SortDesc,
		Search:        "wool",
		Filters: map[usecase.FilterCategory][]string{
			usecase.FilterByBrand: {"X", "Y"},
			usecase.FilterByPrice: {"0-25", "500-"},
		},
	}).Return(&usecase.CatalogPage{
		Items: []usecase.ProductRow{{Product: domain.Product{ID: 2, Name: "B", MSRP: &msrp}}},
		Total: 1, Page: 2, PageSize: 1,
	}, nil)
	uc.On("GetFilterOptions", mock.Anything).Return(&usecase.FilterOptions{Brands: []string{"X", "Y"}}, nil)

	_, conn := startServer(t, uc)

	out, err := invoke(t, conn, "ListProducts", map[string]any{
		"page":          2,
		"pageSize":      "all",
		"sortField":     "brandName",
		"sortDirection": "DESC",
		"search":        "wool",
		"filters": map[string]any{
			"brand":  []any{"X", "Y"},
			"price":  "0-25,500-",
			"colour": []any{"red"},
		},
	})
	require.NoError(t, err)

	m := out.AsMap()
	page := m["page"].(map[string]any)
	assert.EqualValues(t, 1, page["total"])
	item := page["items"].([]any)[0].(map[string]any)
	assert.Equal(t, "50", item["msrp"])
	assert.Equal(t, []any{"X", "Y"}, m["filterOptions"].(map[string]any)["brands"])
	uc.AssertExpectations(t)
}

func TestCatalogService_GetProductErrorCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
	}{
		{name: "invalid id", err: e.Wrap("op", e.ErrInvalidIdentifier), code: codes.InvalidArgument},
		{name: "not found", err: e.Wrap("op", e.ErrProductNotFound), code: codes.NotFound},
		{name: "query failed", err: e.QueryFailed(context.DeadlineExceeded), code: codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &catalogUCMock{}
			uc.On("GetProduct", mock.Anything, "12").Return(nil, tt.err)
			_, conn := startServer(t, uc)

			_, err := invoke(t, conn, "GetProduct", map[string]any{"id": 12})

			assert.Equal(t, tt.code, status.Code(err))
		})
	}
}

func TestCatalogService_GetBrand(t *testing.T) {
	uc := &catalogUCMock{}
	uc.On("GetBrand", mock.Anything, "3").Return(&usecase.BrandDetail{
		BrandRow: usecase.BrandRow{Brand: domain.Brand{ID: 3, Name: "Woolly"}, MainCategory: "Apparel"},
		Products: []usecase.ProductRow{},
	}, nil)
	_, conn := startServer(t, uc)

	out, err := invoke(t, conn, "GetBrand", map[string]any{"id": "3"})
	require.NoError(t, err)

	m := out.AsMap()
	assert.Equal(t, "Woolly", m["name"])
	assert.Equal(t, "Apparel", m["mainCategory"])
	assert.Equal(t, []any{}, m["products"])
}

func TestCatalogService_ListBrandsDefaults(t *testing.T) {
	uc := &catalogUCMock{}
	uc.On("ListBrands", mock.Anything, usecase.BrandQuery{}).Return(&usecase.BrandPage{
		Items: []usecase.BrandRow{}, Featured: []usecase.BrandRow{}, Page: 1, PageSize: 10,
	}, nil)
	_, conn := startServer(t, uc)

	out, err := invoke(t, conn, "ListBrands", map[string]any{})
	require.NoError(t, err)
	assert.EqualValues(t, 10, out.AsMap()["pageSize"])
}

func TestGRPCServer_HealthFollowsStore(t *testing.T) {
	srv, conn := startServer(t, &catalogUCMock{})
	client := healthpb.NewHealthClient(conn)

	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: CatalogServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	pinged := make(chan struct{}, 1)
	down := pingerFunc(func(context.Context) error {
		select {
		case pinged <- struct{}{}:
		default:
		}
		return assert.AnError
	})
	go srv.WatchHealth(ctx, down, time.Hour)

	<-pinged
	assert.Eventually(t, func() bool {
		resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: CatalogServiceName})
		return err == nil && resp.Status == healthpb.HealthCheckResponse_NOT_SERVING
	}, time.Second, 10*time.Millisecond)
}

func TestGRPCServer_HungPingTimesOut(t *testing.T) {
	srv, conn := startServer(t, &catalogUCMock{})
	client := healthpb.NewHealthClient(conn)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	hung := pingerFunc(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	go srv.WatchHealth(ctx, hung, 20*time.Millisecond)

	assert.Eventually(t, func() bool {
		resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: CatalogServiceName})
		return err == nil && resp.Status == healthpb.HealthCheckResponse_NOT_SERVING
	}, time.Second, 10*time.Millisecond)
}
