package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product описывает товар каталога.
// Текстовые поля, отсутствующие в БД, приводятся к пустой строке.
// Цены остаются nullable: nil означает «цена не указана».
type Product struct {
	ID               int64
	Name             string
	Description      string
	MSRP             *decimal.Decimal
	CurrentPrice     *decimal.Decimal
	PriceLastUpdated *time.Time
	ProductLink      string
	AffiliateLink    string
	WarrantyInfo     string
	CountryOfOrigin  string
	YearIntroduced   *int32
	ContainsPFAS     bool
	Likes            int32
	Dislikes         int32
	AuthorNotes      string
	UpdatedAt        time.Time
	CategoryID       *int64
	BrandID          *int64
}

// Material — материал, из которого сделан товар.
type Material struct {
	ID   int64
	Name string
}

// ProductMaterial — доля материала в товаре. Сумма долей по товару не обязана быть 100.
type ProductMaterial struct {
	Material
	Percentage decimal.Decimal
}
