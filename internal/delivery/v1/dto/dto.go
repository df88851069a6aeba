// Package dto описывает JSON-представление каталога, общее для HTTP и gRPC.
package dto

import (
	"time"

	"github.com/DRSN-tech/bifl-catalog/internal/domain"
	"github.com/DRSN-tech/bifl-catalog/internal/usecase"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Product — строка списка товаров. Цены сериализуются строкой, null означает «цена не указана».
type Product struct {
	ID               int64            `json:"id"`
	Name             string           `json:"name"`
	Description      string           `json:"description"`
	MSRP             *decimal.Decimal `json:"msrp"`
	CurrentPrice     *decimal.Decimal `json:"currentPrice"`
	PriceLastUpdated *time.Time       `json:"priceLastUpdated"`
	ProductLink      string           `json:"productLink"`
	AffiliateLink    string           `json:"affiliateLink"`
	WarrantyInfo     string           `json:"warrantyInfo"`
	CountryOfOrigin  string           `json:"countryOfOrigin"`
	YearIntroduced   *int32           `json:"yearIntroduced"`
	ContainsPFAS     bool             `json:"containsPfas"`
	Likes            int32            `json:"likes"`
	Dislikes         int32            `json:"dislikes"`
	AuthorNotes      string           `json:"authorNotes"`
	UpdatedAt        time.Time        `json:"updatedAt"`
	CategoryID       *int64           `json:"categoryId"`
	BrandID          *int64           `json:"brandId"`
	MainCategory     string           `json:"mainCategory"`
	SubCategory      string           `json:"subCategory"`
	BrandName        string           `json:"brandName"`
	BrandWebsite     string           `json:"brandWebsite"`
}

type CatalogPage struct {
	Items    []Product `json:"items"`
	Total    int64     `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"pageSize"`
}

type CategoryGroup struct {
	MainCategory  string   `json:"mainCategory"`
	SubCategories []string `json:"subCategories"`
}

type PriceRange struct {
	Token string `json:"token"`
	Label string `json:"label"`
}

type FilterOptions struct {
	Categories  []CategoryGroup `json:"categories"`
	Brands      []string        `json:"brands"`
	Products    []string        `json:"products"`
	PriceRanges []PriceRange    `json:"priceRanges"`
}

// ProductsResponse — ответ страницы каталога: товары и варианты фильтров.
type ProductsResponse struct {
	Page          CatalogPage   `json:"page"`
	FilterOptions FilterOptions `json:"filterOptions"`
}

type BrandRef struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Website string `json:"website"`
}

type Material struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Percentage decimal.Decimal `json:"percentage"`
}

type Image struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
}

type ProductDetail struct {
	ID               int64            `json:"id"`
	Name             string           `json:"name"`
	Description      string           `json:"description"`
	MSRP             *decimal.Decimal `json:"msrp"`
	CurrentPrice     *decimal.Decimal `json:"currentPrice"`
	PriceLastUpdated *time.Time       `json:"priceLastUpdated"`
	ProductLink      string           `json:"productLink"`
	AffiliateLink    string           `json:"affiliateLink"`
	WarrantyInfo     string           `json:"warrantyInfo"`
	CountryOfOrigin  string           `json:"countryOfOrigin"`
	YearIntroduced   *int32           `json:"yearIntroduced"`
	ContainsPFAS     bool             `json:"containsPfas"`
	Likes            int32            `json:"likes"`
	Dislikes         int32            `json:"dislikes"`
	AuthorNotes      string           `json:"authorNotes"`
	UpdatedAt        time.Time        `json:"updatedAt"`
	MainCategory     string           `json:"mainCategory"`
	SubCategory      string           `json:"subCategory"`
	Brand            *BrandRef        `json:"brand"`
	Materials        []Material       `json:"materials"`
	Images           []Image          `json:"images"`
}

type Brand struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Website      string `json:"website"`
	Location     string `json:"location"`
	CategoryID   *int64 `json:"categoryId"`
	MainCategory string `json:"mainCategory"`
	SubCategory  string `json:"subCategory"`
}

type BrandPage struct {
	Items    []Brand `json:"items"`
	Featured []Brand `json:"featured"`
	Total    int64   `json:"total"`
	Page     int     `json:"page"`
	PageSize int     `json:"pageSize"`
}

type BrandDetail struct {
	Brand
	Products []Product `json:"products"`
}

// MAPPERS

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToProduct(r *usecase.ProductRow) Product {
	p := r.Product
	return Product{
		ID:               p.ID,
		Name:             p.Name,
		Description:      p.Description,
		MSRP:             p.MSRP,
		CurrentPrice:     p.CurrentPrice,
		PriceLastUpdated: p.PriceLastUpdated,
		ProductLink:      p.ProductLink,
		AffiliateLink:    p.AffiliateLink,
		WarrantyInfo:     p.WarrantyInfo,
		CountryOfOrigin:  p.CountryOfOrigin,
		YearIntroduced:   p.YearIntroduced,
		ContainsPFAS:     p.ContainsPFAS,
		Likes:            p.Likes,
		Dislikes:         p.Dislikes,
		AuthorNotes:      p.AuthorNotes,
		UpdatedAt:        p.UpdatedAt,
		CategoryID:       p.CategoryID,
		BrandID:          p.BrandID,
		MainCategory:     r.MainCategory,
		SubCategory:      r.SubCategory,
		BrandName:        r.BrandName,
		BrandWebsite:     r.BrandWebsite,
	}
}

func ToArrProduct(rows []usecase.ProductRow) []Product {
	res := make([]Product, len(rows))
	for i := range rows {
		res[i] = ToProduct(&rows[i])
	}

	return res
}

func ToCatalogPage(page *usecase.CatalogPage) CatalogPage {
	return CatalogPage{
		Items:    ToArrProduct(page.Items),
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}
}

func ToFilterOptions(opts *usecase.FilterOptions) FilterOptions {
	res := FilterOptions{
		Categories:  make([]CategoryGroup, len(opts.Categories)),
		Brands:      nonNil(opts.Brands),
		Products:    nonNil(opts.Products),
		PriceRanges: make([]PriceRange, len(opts.PriceRanges)),
	}
	for i, g := range opts.Categories {
		res.Categories[i] = CategoryGroup{MainCategory: g.MainCategory, SubCategories: nonNil(g.SubCategories)}
	}
	for i, b := range opts.PriceRanges {
		res.PriceRanges[i] = PriceRange{Token: b.Token, Label: b.Label}
	}

	return res
}

func ToProductDetail(d *usecase.ProductDetail) ProductDetail {
	p := d.Product
	res := ProductDetail{
		ID:               p.ID,
		Name:             p.Name,
		Description:      p.Description,
		MSRP:             p.MSRP,
		CurrentPrice:     p.CurrentPrice,
		PriceLastUpdated: p.PriceLastUpdated,
		ProductLink:      p.ProductLink,
		AffiliateLink:    p.AffiliateLink,
		WarrantyInfo:     p.WarrantyInfo,
		CountryOfOrigin:  p.CountryOfOrigin,
		YearIntroduced:   p.YearIntroduced,
		ContainsPFAS:     p.ContainsPFAS,
		Likes:            p.Likes,
		Dislikes:         p.Dislikes,
		AuthorNotes:      p.AuthorNotes,
		UpdatedAt:        p.UpdatedAt,
		MainCategory:     d.MainCategory,
		SubCategory:      d.SubCategory,
		Materials:        toArrMaterial(d.Materials),
		Images:           toArrImage(d.Images),
	}
	if d.Brand != nil {
		res.Brand = &BrandRef{ID: d.Brand.ID, Name: d.Brand.Name, Website: d.Brand.Website}
	}

	return res
}

func ToBrand(r *usecase.BrandRow) Brand {
	return Brand{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		Website:      r.Website,
		Location:     r.Location,
		CategoryID:   r.CategoryID,
		MainCategory: r.MainCategory,
		SubCategory:  r.SubCategory,
	}
}

func ToArrBrand(rows []usecase.BrandRow) []Brand {
	res := make([]Brand, len(rows))
	for i := range rows {
		res[i] = ToBrand(&rows[i])
	}

	return res
}

func ToBrandPage(page *usecase.BrandPage) BrandPage {
	return BrandPage{
		Items:    ToArrBrand(page.Items),
		Featured: ToArrBrand(page.Featured),
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}
}

func ToBrandDetail(d *usecase.BrandDetail) BrandDetail {
	return BrandDetail{
		Brand:    ToBrand(&d.BrandRow),
		Products: ToArrProduct(d.Products),
	}
}

func toArrMaterial(materials []domain.ProductMaterial) []Material {
	res := make([]Material, len(materials))
	for i, m := range materials {
		res[i] = Material{ID: m.ID, Name: m.Name, Percentage: m.Percentage}
	}

	return res
}

func toArrImage(images []domain.ProductImage) []Image {
	res := make([]Image, len(images))
	for i, img := range images {
		res[i] = Image{ID: img.ID, URL: img.URL}
	}

	return res
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
