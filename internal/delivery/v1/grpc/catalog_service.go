package grpc

import (
	"context"

	"github.com/DRSN-tech/bifl-catalog/internal/delivery/v1/dto"
	"github.com/DRSN-tech/bifl-catalog/internal/usecase"
	"github.com/DRSN-tech/bifl-catalog/pkg/e"
	"github.com/DRSN-tech/bifl-catalog/pkg/logger"
	"google.golang.org/protobuf/types/known/structpb"
)

type CatalogService struct {
	catalogUC usecase.CatalogUC
	logger    logger.Logger
}

func NewCatalogService(catalogUC usecase.CatalogUC, logger logger.Logger) *CatalogService {
	return &CatalogService{catalogUC: catalogUC, logger: logger}
}

// ListProducts возвращает {"page": ..., "filterOptions": ...}, как и HTTP-ручка.
func (g *CatalogService) ListProducts(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	const op = "grpc.ListProducts"

	page, err := g.catalogUC.ListProducts(ctx, parseCatalogQuery(req))
	if err != nil {
		return nil, g.fail(op, err)
	}

	opts, err := g.catalogUC.GetFilterOptions(ctx)
	if err != nil {
		return nil, g.fail(op, err)
	}

	return g.respond(op, dto.ProductsResponse{
		Page:          dto.ToCatalogPage(page),
		FilterOptions: dto.ToFilterOptions(opts),
	})
}

func (g *CatalogService) GetFilterOptions(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	const op = "grpc.GetFilterOptions"

	opts, err := g.catalogUC.GetFilterOptions(ctx)
	if err != nil {
		return nil, g.fail(op, err)
	}

	return g.respond(op, dto.ToFilterOptions(opts))
}

func (g *CatalogService) GetProduct(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	const op = "grpc.GetProduct"

	detail, err := g.catalogUC.GetProduct(ctx, rawID(req))
	if err != nil {
		return nil, g.fail(op, err)
	}

	return g.respond(op, dto.ToProductDetail(detail))
}

func (g *CatalogService) ListBrands(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	const op = "grpc.ListBrands"

	page, err := g.catalogUC.ListBrands(ctx, parseBrandQuery(req))
	if err != nil {
		return nil, g.fail(op, err)
	}

	return g.respond(op, dto.ToBrandPage(page))
}

func (g *CatalogService) GetBrand(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	const op = "grpc.GetBrand"

	detail, err := g.catalogUC.GetBrand(ctx, rawID(req))
	if err != nil {
		return nil, g.fail(op, err)
	}

	return g.respond(op, dto.ToBrandDetail(detail))
}

func (g *CatalogService) fail(op string, err error) error {
	resp := GRPCErrorResponse(err)
	g.logger.Warnf("%s: %v", op, err)
	return resp
}

func (g *CatalogService) respond(op string, v any) (*structpb.Struct, error) {
	out, err := toStruct(v)
	if err != nil {
		g.logger.Errorf(e.Wrap(op, err), "%s", op)
		return nil, GRPCErrorResponse(err)
	}

	return out, nil
}
