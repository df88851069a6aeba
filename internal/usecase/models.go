package usecase

import (
	"math"
	"sort"
	"strings"

	"github.com/DRSN-tech/bifl-catalog/internal/domain"
)

// PageSizeAll — размер страницы «все строки», без LIMIT/OFFSET.
const PageSizeAll = -1

// SortDirection — направление сортировки.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ProductSortField — поле сортировки списка товаров.
type ProductSortField string

const (
	SortByName         ProductSortField = "name"
	SortByMainCategory ProductSortField = "mainCategory"
	SortByBrandName    ProductSortField = "brandName"
	SortByMSRP         ProductSortField = "msrp"
	SortByDescription  ProductSortField = "description"
)

func (f ProductSortField) valid() bool {
	switch f {
	case SortByName, SortByMainCategory, SortByBrandName, SortByMSRP, SortByDescription:
		return true
	}
	return false
}

// BrandSortField — поле сортировки списка брендов.
type BrandSortField string

const (
	BrandSortByName         BrandSortField = "brandName"
	BrandSortByMainCategory BrandSortField = "mainCategory"
	BrandSortBySubCategory  BrandSortField = "subCategory"
)

func (f BrandSortField) valid() bool {
	switch f {
	case BrandSortByName, BrandSortByMainCategory, BrandSortBySubCategory:
		return true
	}
	return false
}

// FilterCategory — группа фильтров. Внутри группы токены объединяются через OR, между группами через AND.
type FilterCategory string

const (
	FilterByCategory FilterCategory = "category"
	FilterByBrand    FilterCategory = "brand"
	FilterByPrice    FilterCategory = "price"
	FilterByProduct  FilterCategory = "product"
)

// ParseFilterCategory возвращает false для неизвестных групп.
func ParseFilterCategory(s string) (FilterCategory, bool) {
	switch c := FilterCategory(s); c {
	case FilterByCategory, FilterByBrand, FilterByPrice, FilterByProduct:
		return c, true
	}
	return "", false
}

// Paging — номер и размер страницы.
type Paging struct {
	Page     int
	PageSize int
}

func (p Paging) normalize(defaultPageSize int) Paging {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 && p.PageSize != PageSizeAll {
		p.PageSize = defaultPageSize
	}
	return p
}

// All сообщает, что запрошены все строки.
func (p Paging) All() bool {
	return p.PageSize == PageSizeAll
}

// Limit возвращает LIMIT; 0 означает отсутствие ограничения.
func (p Paging) Limit() int64 {
	if p.All() {
		return 0
	}
	return int64(p.PageSize)
}

// Offset возвращает OFFSET = (page-1) * pageSize.
// При переполнении возвращается math.MaxInt64: такая страница заведомо пуста.
func (p Paging) Offset() int64 {
	if p.All() || p.Page <= 1 || p.PageSize < 1 {
		return 0
	}

	pages, size := int64(p.Page-1), int64(p.PageSize)
	if pages > math.MaxInt64/size {
		return math.MaxInt64
	}
	return pages * size
}

// resolvedSize — размер страницы для ответа: при PageSizeAll равен total.
func (p Paging) resolvedSize(total int64) int {
	if p.All() {
		return int(total)
	}
	return p.PageSize
}

// CatalogQuery — запрос списка товаров.
type CatalogQuery struct {
	Paging
	SortField     ProductSortField
	SortDirection SortDirection
	Search        string
	Filters       map[FilterCategory][]string
}

// Normalize приводит запрос к допустимому виду: страница >= 1, размер по умолчанию,
// неизвестная сортировка превращается в name asc, пустые токены и группы отбрасываются.
func (q CatalogQuery) Normalize(defaultPageSize int) CatalogQuery {
	q.Paging = q.Paging.normalize(defaultPageSize)

	switch {
	case q.SortField == "":
		q.SortField = SortByName
	case !q.SortField.valid():
		q.SortField = SortByName
		q.SortDirection = SortAsc
	}
	if q.SortDirection != SortDesc {
		q.SortDirection = SortAsc
	}

	q.Search = strings.TrimSpace(q.Search)
	q.Filters = normalizeFilters(q.Filters)

	return q
}

func normalizeFilters(in map[FilterCategory][]string) map[FilterCategory][]string {
	out := make(map[FilterCategory][]string, len(in))
	for cat, tokens := range in {
		if _, ok := ParseFilterCategory(string(cat)); !ok {
			continue
		}

		clean := make([]string, 0, len(tokens))
		for _, t := range tokens {
			if t = strings.TrimSpace(t); t != "" {
				clean = append(clean, t)
			}
		}
		if len(clean) > 0 {
			out[cat] = clean
		}
	}
	return out
}

// ProductRow — строка списка товаров: товар плюс поля категории и бренда из LEFT JOIN.
type ProductRow struct {
	domain.Product
	MainCategory string
	SubCategory  string
	BrandName    string
	BrandWebsite string
}

// CatalogPage — страница товаров и общее число подходящих строк.
type CatalogPage struct {
	Items    []ProductRow
	Total    int64
	Page     int
	PageSize int
}

// CategoryGroup — основная категория и её подкатегории.
type CategoryGroup struct {
	MainCategory  string
	SubCategories []string
}

// FilterOptions — все варианты фильтров по всему каталогу.
type FilterOptions struct {
	Categories  []CategoryGroup
	Brands      []string
	Products    []string
	PriceRanges []domain.PriceBucket
}

// GroupCategories группирует пары категорий по основной категории.
// Группы и подкатегории сортируются, дубликаты и пустые значения отбрасываются.
func GroupCategories(pairs []domain.Category) []CategoryGroup {
	subs := make(map[string]map[string]struct{})
	for _, p := range pairs {
		if p.MainCategory == "" {
			continue
		}
		if _, ok := subs[p.MainCategory]; !ok {
			subs[p.MainCategory] = make(map[string]struct{})
		}
		if p.SubCategory != "" {
			subs[p.MainCategory][p.SubCategory] = struct{}{}
		}
	}

	groups := make([]CategoryGroup, 0, len(subs))
	for main, set := range subs {
		list := make([]string, 0, len(set))
		for s := range set {
			list = append(list, s)
		}
		sort.Strings(list)
		groups = append(groups, CategoryGroup{MainCategory: main, SubCategories: list})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].MainCategory < groups[j].MainCategory })

	return groups
}

// BrandQuery — запрос списка брендов.
type BrandQuery struct {
	Paging
	SortField     BrandSortField
	SortDirection SortDirection
	Search        string
}

// Normalize работает так же, как CatalogQuery.Normalize; поле по умолчанию — brandName.
func (q BrandQuery) Normalize(defaultPageSize int) BrandQuery {
	q.Paging = q.Paging.normalize(defaultPageSize)

	switch {
	case q.SortField == "":
		q.SortField = BrandSortByName
	case !q.SortField.valid():
		q.SortField = BrandSortByName
		q.SortDirection = SortAsc
	}
	if q.SortDirection != SortDesc {
		q.SortDirection = SortAsc
	}

	q.Search = strings.TrimSpace(q.Search)
	return q
}

// BrandRow — бренд с его собственной категорией.
type BrandRow struct {
	domain.Brand
	MainCategory string
	SubCategory  string
}

// BrandPage — страница брендов и избранные бренды для карусели.
type BrandPage struct {
	Items    []BrandRow
	Featured []BrandRow
	Total    int64
	Page     int
	PageSize int
}

// BrandRef — краткие данные бренда в карточке товара.
type BrandRef struct {
	ID      int64
	Name    string
	Website string
}

// ProductDetail — карточка товара.
type ProductDetail struct {
	domain.Product
	Brand        *BrandRef
	MainCategory string
	SubCategory  string
	Materials    []domain.ProductMaterial
	Images       []domain.ProductImage
}

// BrandDetail — бренд и все его товары.
type BrandDetail struct {
	BrandRow
	Products []ProductRow
}

// MAPPERS

func NewCatalogPage(items []ProductRow, total int64, paging Paging) *CatalogPage {
	return &CatalogPage{
		Items:    nonNil(items),
		Total:    total,
		Page:     paging.Page,
		PageSize: paging.resolvedSize(total),
	}
}

func NewBrandPage(items, featured []BrandRow, total int64, paging Paging) *BrandPage {
	return &BrandPage{
		Items:    nonNil(items),
		Featured: nonNil(featured),
		Total:    total,
		Page:     paging.Page,
		PageSize: paging.resolvedSize(total),
	}
}
