package http

import (
	"net/http"

	"github.com/DRSN-tech/bifl-catalog/internal/delivery/v1/dto"
	"github.com/DRSN-tech/bifl-catalog/internal/usecase"
	"github.com/DRSN-tech/bifl-catalog/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// listProducts
//
//	@Summary		Страница каталога
//	@Description	Возвращает страницу товаров с поиском, фильтрами и сортировкой, а также все варианты фильтров
//	@Tags			products
//	@Produce		json
//	@Param			page			query		int		false	"Номер страницы (с 1)"
//	@Param			pageSize		query		string	false	"Размер страницы или all"
//	@Param			sortField		query		string	false	"name | mainCategory | brandName | msrp | description"
//	@Param			sortDirection	query		string	false	"asc | desc"
//	@Param			search			query		string	false	"Поиск по названию, бренду, категории и описанию"
//	@Param			filter_category	query		string	false	"Категории через запятую"
//	@Param			filter_brand	query		string	false	"Бренды через запятую"
//	@Param			filter_price	query		string	false	"Ценовые диапазоны, например 0-25,500-"
//	@Param			filter_product	query		string	false	"Названия товаров через запятую"
//	@Success		200				{object}	dto.ProductsResponse
//	@Failure		500				{object}	dto.ErrorResponse
//	@Router			/products [get]
func (h *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	log := loggerFromCtx(r.Context(), h.logger)

	page, err := h.catalogUsecase.ListProducts(r.Context(), parseCatalogQuery(r.URL.Query()))
	if err != nil {
		h.writeError(log, w, err)
		return
	}

	opts, err := h.catalogUsecase.GetFilterOptions(r.Context())
	if err != nil {
		h.writeError(log, w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, dto.ProductsResponse{
		Page:          dto.ToCatalogPage(page),
		FilterOptions: dto.ToFilterOptions(opts),
	})
}

// getFilterOptions
//
//	@Summary		Варианты фильтров
//	@Description	Категории, бренды, товары и ценовые диапазоны по всему каталогу
//	@Tags			products
//	@Produce		json
//	@Success		200	{object}	dto.FilterOptions
//	@Failure		500	{object}	dto.ErrorResponse
//	@Router			/products/filters [get]
func (h *CatalogHandler) getFilterOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := h.catalogUsecase.GetFilterOptions(r.Context())
	if err != nil {
		h.writeError(loggerFromCtx(r.Context(), h.logger), w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, dto.ToFilterOptions(opts))
}

// getProduct
//
//	@Summary		Карточка товара
//	@Description	Товар с брендом, категорией, материалами и изображениями
//	@Tags			products
//	@Produce		json
//	@Param			id	path		int	true	"ID товара"
//	@Success		200	{object}	dto.ProductDetail
//	@Failure		400	{object}	dto.ErrorResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Failure		500	{object}	dto.ErrorResponse
//	@Router			/products/{id} [get]
func (h *CatalogHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	detail, err := h.catalogUsecase.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(loggerFromCtx(r.Context(), h.logger), w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, dto.ToProductDetail(detail))
}

// listBrands
//
//	@Summary		Список брендов
//	@Description	Страница брендов с поиском и сортировкой и избранные бренды
//	@Tags			brands
//	@Produce		json
//	@Param			page			query		int		false	"Номер страницы (с 1)"
//	@Param			pageSize		query		string	false	"Размер страницы или all"
//	@Param			sortField		query		string	false	"brandName | mainCategory | subCategory"
//	@Param			sortDirection	query		string	false	"asc | desc"
//	@Param			search			query		string	false	"Поиск по названию, категориям и описанию"
//	@Success		200				{object}	dto.BrandPage
//	@Failure		500				{object}	dto.ErrorResponse
//	@Router			/brands [get]
func (h *CatalogHandler) listBrands(w http.ResponseWriter, r *http.Request) {
	page, err := h.catalogUsecase.ListBrands(r.Context(), parseBrandQuery(r.URL.Query()))
	if err != nil {
		h.writeError(loggerFromCtx(r.Context(), h.logger), w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, dto.ToBrandPage(page))
}

// getBrand
//
//	@Summary		Карточка бренда
//	@Description	Бренд и все его товары
//	@Tags			brands
//	@Produce		json
//	@Param			id	path		int	true	"ID бренда"
//	@Success		200	{object}	dto.BrandDetail
//	@Failure		400	{object}	dto.ErrorResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Failure		500	{object}	dto.ErrorResponse
//	@Router			/brands/{id} [get]
func (h *CatalogHandler) getBrand(w http.ResponseWriter, r *http.Request) {
	detail, err := h.catalogUsecase.GetBrand(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(loggerFromCtx(r.Context(), h.logger), w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, dto.ToBrandDetail(detail))
}

// writeError логирует 4xx как warn, 5xx как error, и пишет ответ.
func (h *CatalogHandler) writeError(log logger.Logger, w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	if code >= http.StatusInternalServerError {
		log.Errorf(err, "%d %s", code, msg)
	} else {
		log.Warnf("%d %s: %v", code, msg, err)
	}

	WriteError(w, err)
}
