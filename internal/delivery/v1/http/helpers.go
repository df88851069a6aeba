package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/DRSN-tech/bifl-catalog/internal/delivery/v1/dto"
	"github.com/DRSN-tech/bifl-catalog/internal/usecase"
	"github.com/DRSN-tech/bifl-catalog/pkg/e"
)

const filterParamPrefix = "filter_"

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrInvalidIdentifier):
		return http.StatusBadRequest, e.ErrInvalidIdentifier.Error()
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrBrandNotFound):
		return http.StatusNotFound, e.ErrBrandNotFound.Error()
	case errors.Is(err, e.ErrNotFound):
		return http.StatusNotFound, e.ErrNotFound.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	WriteSuccess(w, code, dto.NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// parseFilters собирает параметры вида filter_<group>=v1,v2. Параметр может повторяться.
// Неизвестные группы отбрасываются.
func parseFilters(values url.Values) map[usecase.FilterCategory][]string {
	filters := make(map[usecase.FilterCategory][]string)
	for key, vals := range values {
		name, ok := strings.CutPrefix(key, filterParamPrefix)
		if !ok {
			continue
		}

		group, ok := usecase.ParseFilterCategory(strings.ToLower(name))
		if !ok {
			continue
		}

		for _, v := range vals {
			filters[group] = append(filters[group], strings.Split(v, ",")...)
		}
	}

	return filters
}

func parseCatalogQuery(values url.Values) usecase.CatalogQuery {
	return usecase.CatalogQuery{
		Paging: usecase.Paging{
			Page:     dto.ParsePage(values.Get("page")),
			PageSize: dto.ParsePageSize(values.Get("pageSize")),
		},
		SortField:     usecase.ProductSortField(values.Get("sortField")),
		SortDirection: usecase.SortDirection(strings.ToLower(values.Get("sortDirection"))),
		Search:        values.Get("search"),
		Filters:       parseFilters(values),
	}
}

func parseBrandQuery(values url.Values) usecase.BrandQuery {
	return usecase.BrandQuery{
		Paging: usecase.Paging{
			Page:     dto.ParsePage(values.Get("page")),
			PageSize: dto.ParsePageSize(values.Get("pageSize")),
		},
		SortField:     usecase.BrandSortField(values.Get("sortField")),
		SortDirection: usecase.SortDirection(strings.ToLower(values.Get("sortDirection"))),
		Search:        values.Get("search"),
	}
}
