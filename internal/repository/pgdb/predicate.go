package pgdb

import (
	"github.com/DRSN-tech/bifl-catalog/internal/domain"
	"github.com/DRSN-tech/bifl-catalog/internal/usecase"
	"github.com/DRSN-tech/bifl-catalog/pkg/query"
)

// Колонки выборки товара. Алиасы совпадают с db-тегами converter.ProductRowModel.
var productColumns = []string{
	"p.id",
	"p.name",
	"p.description",
	"p.msrp::text AS msrp",
	"p.current_price::text AS current_price",
	"p.price_last_updated",
	"p.product_link",
	"p.affiliate_link",
	"p.warranty_info",
	"p.country_of_origin",
	"p.year_introduced",
	"p.contains_pfas",
	"p.likes",
	"p.dislikes",
	"p.author_notes",
	"p.updated_at",
	"p.category_id",
	"p.brand_id",
	"c.main_category",
	"c.subcategory",
	"b.name AS brand_name",
	"b.website AS brand_website",
}

var brandColumns = []string{
	"b.id",
	"b.name",
	"b.description",
	"b.website",
	"b.location",
	"b.category_id",
	"c.main_category",
	"c.subcategory",
}

var productSortColumns = map[usecase.ProductSortField]string{
	usecase.SortByName:         "p.name",
	usecase.SortByMainCategory: "c.main_category",
	usecase.SortByBrandName:    "b.name",
	usecase.SortByMSRP:         "p.msrp",
	usecase.SortByDescription:  "p.description",
}

var brandSortColumns = map[usecase.BrandSortField]string{
	usecase.BrandSortByName:         "b.name",
	usecase.BrandSortByMainCategory: "c.main_category",
	usecase.BrandSortBySubCategory:  "c.subcategory",
}

// Порядок групп фиксирован, чтобы одинаковые запросы давали одинаковый SQL.
var filterOrder = []usecase.FilterCategory{
	usecase.FilterByCategory,
	usecase.FilterByBrand,
	usecase.FilterByPrice,
	usecase.FilterByProduct,
}

// productsFrom — products с категориями и брендами через LEFT JOIN.
func productsFrom() *query.Builder {
	return query.From("products p").
		LeftJoin("categories c", "c.id = p.category_id").
		LeftJoin("brands b", "b.id = p.brand_id")
}

// productPredicate строит единственный предикат списка товаров: AND между группами, OR внутри группы.
// Nil означает отсутствие ограничений.
func productPredicate(q usecase.CatalogQuery) query.Condition {
	conds := make([]query.Condition, 0, len(filterOrder)+1)

	if q.Search != "" {
		conds = append(conds, query.Or(
			query.Contains("p.name", q.Search),
			query.Contains("b.name", q.Search),
			query.Contains("c.main_category", q.Search),
			query.Contains("p.description", q.Search),
		))
	}

	for _, cat := range filterOrder {
		tokens := q.Filters[cat]
		if len(tokens) == 0 {
			continue
		}

		alts := make([]query.Condition, 0, len(tokens))
		for _, token := range tokens {
			alts = append(alts, filterCondition(cat, token))
		}
		conds = append(conds, query.Or(alts...))
	}

	return query.And(conds...)
}

// filterCondition возвращает условие для одного токена. Некорректный ценовой токен даёт nil.
func filterCondition(cat usecase.FilterCategory, token string) query.Condition {
	switch cat {
	case usecase.FilterByCategory:
		return query.Or(query.Eq("c.main_category", token), query.Eq("c.subcategory", token))
	case usecase.FilterByBrand:
		return query.Eq("b.name", token)
	case usecase.FilterByProduct:
		return query.Eq("p.name", token)
	case usecase.FilterByPrice:
		r, ok := domain.ParsePriceRange(token)
		if !ok {
			return nil
		}
		if r.Max == nil {
			return query.Gte("p.msrp", r.Min)
		}
		return query.And(query.Gte("p.msrp", r.Min), query.Lt("p.msrp", *r.Max))
	default:
		return nil
	}
}

// productStatements возвращает запрос данных и запрос количества, построенные от одной базы.
func productStatements(q usecase.CatalogQuery) (data, count query.Statement) {
	base := productsFrom().Where(productPredicate(q))

	sortCol, ok := productSortColumns[q.SortField]
	if !ok {
		sortCol = productSortColumns[usecase.SortByName]
	}

	data = base.
		Select(productColumns...).
		OrderBy(sortCol, direction(q.SortDirection)).
		OrderBy("p.id", query.Asc).
		Limit(q.Limit()).
		Offset(q.Offset()).
		Build()

	return data, base.Count().Build()
}

func brandsFrom() *query.Builder {
	return query.From("brands b").LeftJoin("categories c", "c.id = b.category_id")
}

func brandPredicate(q usecase.BrandQuery) query.Condition {
	if q.Search == "" {
		return nil
	}

	return query.Or(
		query.Contains("b.name", q.Search),
		query.Contains("c.main_category", q.Search),
		query.Contains("c.subcategory", q.Search),
		query.Contains("b.description", q.Search),
	)
}

func brandStatements(q usecase.BrandQuery) (data, count query.Statement) {
	base := brandsFrom().Where(brandPredicate(q))

	sortCol, ok := brandSortColumns[q.SortField]
	if !ok {
		sortCol = brandSortColumns[usecase.BrandSortByName]
	}

	data = base.
		Select(brandColumns...).
		OrderBy(sortCol, direction(q.SortDirection)).
		OrderBy("b.id", query.Asc).
		Limit(q.Limit()).
		Offset(q.Offset()).
		Build()

	return data, base.Count().Build()
}

func direction(d usecase.SortDirection) query.Direction {
	if d == usecase.SortDesc {
		return query.Desc
	}
	return query.Asc
}
