package converter

import "time"

// ProductRowModel — строка products LEFT JOIN categories, brands.
// Денежные колонки читаются как text, чтобы не терять точность numeric.
type ProductRowModel struct {
	ID               int64      `db:"id"`
	Name             string     `db:"name"`
	Description      *string    `db:"description"`
	MSRP             *string    `db:"msrp"`
	CurrentPrice     *string    `db:"current_price"`
	PriceLastUpdated *time.Time `db:"price_last_updated"`
	ProductLink      *string    `db:"product_link"`
	AffiliateLink    *string    `db:"affiliate_link"`
	WarrantyInfo     *string    `db:"warranty_info"`
	CountryOfOrigin  *string    `db:"country_of_origin"`
	YearIntroduced   *int32     `db:"year_introduced"`
	ContainsPFAS     *bool      `db:"contains_pfas"`
	Likes            *int32     `db:"likes"`
	Dislikes         *int32     `db:"dislikes"`
	AuthorNotes      *string    `db:"author_notes"`
	UpdatedAt        time.Time  `db:"updated_at"`
	CategoryID       *int64     `db:"category_id"`
	BrandID          *int64     `db:"brand_id"`
	MainCategory     *string    `db:"main_category"`
	SubCategory      *string    `db:"subcategory"`
	BrandName        *string    `db:"brand_name"`
	BrandWebsite     *string    `db:"brand_website"`
}

// BrandRowModel — строка brands LEFT JOIN categories.
type BrandRowModel struct {
	ID           int64   `db:"id"`
	Name         string  `db:"name"`
	Description  *string `db:"description"`
	Website      *string `db:"website"`
	Location     *string `db:"location"`
	CategoryID   *int64  `db:"category_id"`
	MainCategory *string `db:"main_category"`
	SubCategory  *string `db:"subcategory"`
}

// CategoryModel представляет запись таблицы categories в PostgreSQL.
type CategoryModel struct {
	ID           int64  `db:"id"`
	MainCategory string `db:"main_category"`
	SubCategory  string `db:"subcategory"`
}

// ProductMaterialModel — материал товара с долей.
type ProductMaterialModel struct {
	ID         int64  `db:"id"`
	Name       string `db:"name"`
	Percentage string `db:"percentage"`
}

// ProductImageModel представляет запись таблицы product_images в PostgreSQL.
type ProductImageModel struct {
	ID        int64  `db:"id"`
	ProductID int64  `db:"product_id"`
	URL       string `db:"url"`
}
