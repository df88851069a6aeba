package grpc

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/DRSN-tech/bifl-catalog/internal/delivery/v1/dto"
	"github.com/DRSN-tech/bifl-catalog/internal/usecase"
	"github.com/DRSN-tech/bifl-catalog/pkg/e"
	"github.com/spf13/cast"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

func GRPCErrorResponse(err error) error {
	switch {
	case errors.Is(err, e.ErrInvalidIdentifier):
		return status.Error(codes.InvalidArgument, e.ErrInvalidIdentifier.Error())
	case errors.Is(err, e.ErrProductNotFound):
		return status.Error(codes.NotFound, e.ErrProductNotFound.Error())
	case errors.Is(err, e.ErrBrandNotFound):
		return status.Error(codes.NotFound, e.ErrBrandNotFound.Error())
	case errors.Is(err, e.ErrNotFound):
		return status.Error(codes.NotFound, e.ErrNotFound.Error())
	default:
		return status.Error(codes.Internal, e.ErrInternalServerError.Error())
	}
}

// toStruct переводит DTO в google.protobuf.Struct через его JSON-представление.
func toStruct(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	out := &structpb.Struct{}
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, err
	}

	return out, nil
}

func fields(in *structpb.Struct) map[string]any {
	if in == nil {
		return map[string]any{}
	}
	return in.AsMap()
}

// rawID принимает id строкой или числом. Проверку выполняет usecase.
func rawID(in *structpb.Struct) string {
	return cast.ToString(fields(in)["id"])
}

// parseFilters читает {"filters": {"brand": ["Lodge"], "price": "0-25,500-"}}.
func parseFilters(v any) map[usecase.FilterCategory][]string {
	raw, ok := v.(map[string]any)
	if !ok {
		return nil
	}

	filters := make(map[usecase.FilterCategory][]string, len(raw))
	for name, tokens := range raw {
		group, ok := usecase.ParseFilterCategory(strings.ToLower(name))
		if !ok {
			continue
		}

		switch t := tokens.(type) {
		case string:
			filters[group] = append(filters[group], strings.Split(t, ",")...)
		default:
			filters[group] = append(filters[group], cast.ToStringSlice(t)...)
		}
	}

	return filters
}

func parseCatalogQuery(in *structpb.Struct) usecase.CatalogQuery {
	m := fields(in)
	return usecase.CatalogQuery{
		Paging: usecase.Paging{
			Page:     dto.ParsePage(m["page"]),
			PageSize: dto.ParsePageSize(m["pageSize"]),
		},
		SortField:     usecase.ProductSortField(cast.ToString(m["sortField"])),
		SortDirection: usecase.SortDirection(strings.ToLower(cast.ToString(m["sortDirection"]))),
		Search:        cast.ToString(m["search"]),
		Filters:       parseFilters(m["filters"]),
	}
}

func parseBrandQuery(in *structpb.Struct) usecase.BrandQuery {
	m := fields(in)
	return usecase.BrandQuery{
		Paging: usecase.Paging{
			Page:     dto.ParsePage(m["page"]),
			PageSize: dto.ParsePageSize(m["pageSize"]),
		},
		SortField:     usecase.BrandSortField(cast.ToString(m["sortField"])),
		SortDirection: usecase.SortDirection(strings.ToLower(cast.ToString(m["sortDirection"]))),
		Search:        cast.ToString(m["search"]),
	}
}
