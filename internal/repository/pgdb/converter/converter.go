package converter

import (
	"github.com/DRSN-tech/bifl-catalog/internal/domain"
	"github.com/DRSN-tech/bifl-catalog/internal/usecase"
	"github.com/shopspring/decimal"
)

// ProductConverter преобразует строки товаров из PostgreSQL в модели usecase.
// Здесь единственное место, где NULL текстовых колонок превращается в "".
type ProductConverter interface {
	ToRow(model *ProductRowModel) usecase.ProductRow
	ToRows(models []ProductRowModel) []usecase.ProductRow
	ToDetail(model *ProductRowModel) *usecase.ProductDetail
	ToMaterials(models []ProductMaterialModel) []domain.ProductMaterial
	ToImages(models []ProductImageModel) []domain.ProductImage
}

// BrandConverter преобразует строки брендов.
type BrandConverter interface {
	ToRow(model *BrandRowModel) usecase.BrandRow
	ToRows(models []BrandRowModel) []usecase.BrandRow
}

// CategoryConverter преобразует сущности Category между domain и моделью PostgreSQL.
type CategoryConverter interface {
	ToEntity(model *CategoryModel) domain.Category
	ToArrEntity(models []CategoryModel) []domain.Category
}

type ProductConverterImpl struct{}

func NewProductConverterImpl() *ProductConverterImpl {
	return &ProductConverterImpl{}
}

func (c *ProductConverterImpl) ToRow(m *ProductRowModel) usecase.ProductRow {
	return usecase.ProductRow{
		Product:      c.toProduct(m),
		MainCategory: ConvertNullString(m.MainCategory),
		SubCategory:  ConvertNullString(m.SubCategory),
		BrandName:    ConvertNullString(m.BrandName),
		BrandWebsite: ConvertNullString(m.BrandWebsite),
	}
}

func (c *ProductConverterImpl) ToRows(models []ProductRowModel) []usecase.ProductRow {
	rows := make([]usecase.ProductRow, 0, len(models))
	for i := range models {
		rows = append(rows, c.ToRow(&models[i]))
	}
	return rows
}

func (c *ProductConverterImpl) ToDetail(m *ProductRowModel) *usecase.ProductDetail {
	detail := &usecase.ProductDetail{
		Product:      c.toProduct(m),
		MainCategory: ConvertNullString(m.MainCategory),
		SubCategory:  ConvertNullString(m.SubCategory),
		Materials:    []domain.ProductMaterial{},
		Images:       []domain.ProductImage{},
	}

	// brands.name NOT NULL, поэтому NULL означает, что бренд не найден в LEFT JOIN.
	if m.BrandID != nil && m.BrandName != nil {
		detail.Brand = &usecase.BrandRef{
			ID:      *m.BrandID,
			Name:    *m.BrandName,
			Website: ConvertNullString(m.BrandWebsite),
		}
	}

	return detail
}

func (c *ProductConverterImpl) ToMaterials(models []ProductMaterialModel) []domain.ProductMaterial {
	materials := make([]domain.ProductMaterial, 0, len(models))
	for _, m := range models {
		pct, err := decimal.NewFromString(m.Percentage)
		if err != nil {
			pct = decimal.Zero
		}
		materials = append(materials, domain.ProductMaterial{
			Material:   domain.Material{ID: m.ID, Name: m.Name},
			Percentage: pct,
		})
	}
	return materials
}

func (c *ProductConverterImpl) ToImages(models []ProductImageModel) []domain.ProductImage {
	images := make([]domain.ProductImage, 0, len(models))
	for _, m := range models {
		images = append(images, domain.ProductImage{ID: m.ID, ProductID: m.ProductID, URL: m.URL})
	}
	return images
}

func (c *ProductConverterImpl) toProduct(m *ProductRowModel) domain.Product {
	return domain.Product{
		ID:               m.ID,
		Name:             m.Name,
		Description:      ConvertNullString(m.Description),
		MSRP:             ConvertNumeric(m.MSRP),
		CurrentPrice:     ConvertNumeric(m.CurrentPrice),
		PriceLastUpdated: m.PriceLastUpdated,
		ProductLink:      ConvertNullString(m.ProductLink),
		AffiliateLink:    ConvertNullString(m.AffiliateLink),
		WarrantyInfo:     ConvertNullString(m.WarrantyInfo),
		CountryOfOrigin:  ConvertNullString(m.CountryOfOrigin),
		YearIntroduced:   m.YearIntroduced,
		ContainsPFAS:     m.ContainsPFAS != nil && *m.ContainsPFAS,
		Likes:            ConvertNullInt(m.Likes),
		Dislikes:         ConvertNullInt(m.Dislikes),
		AuthorNotes:      ConvertNullString(m.AuthorNotes),
		UpdatedAt:        m.UpdatedAt,
		CategoryID:       m.CategoryID,
		BrandID:          m.BrandID,
	}
}

type BrandConverterImpl struct{}

func NewBrandConverterImpl() *BrandConverterImpl {
	return &BrandConverterImpl{}
}

func (c *BrandConverterImpl) ToRow(m *BrandRowModel) usecase.BrandRow {
	return usecase.BrandRow{
		Brand: domain.Brand{
			ID:          m.ID,
			Name:        m.Name,
			Description: ConvertNullString(m.Description),
			Website:     ConvertNullString(m.Website),
			Location:    ConvertNullString(m.Location),
			CategoryID:  m.CategoryID,
		},
		MainCategory: ConvertNullString(m.MainCategory),
		SubCategory:  ConvertNullString(m.SubCategory),
	}
}

func (c *BrandConverterImpl) ToRows(models []BrandRowModel) []usecase.BrandRow {
	rows := make([]usecase.BrandRow, 0, len(models))
	for i := range models {
		rows = append(rows, c.ToRow(&models[i]))
	}
	return rows
}

type CategoryConverterImpl struct{}

func NewCategoryConverterImpl() *CategoryConverterImpl {
	return &CategoryConverterImpl{}
}

func (c *CategoryConverterImpl) ToEntity(m *CategoryModel) domain.Category {
	return domain.Category{ID: m.ID, MainCategory: m.MainCategory, SubCategory: m.SubCategory}
}

func (c *CategoryConverterImpl) ToArrEntity(models []CategoryModel) []domain.Category {
	out := make([]domain.Category, 0, len(models))
	for i := range models {
		out = append(out, c.ToEntity(&models[i]))
	}
	return out
}

func ConvertNullString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func ConvertNullInt(i *int32) int32 {
	if i == nil {
		return 0
	}
	return *i
}

// ConvertNumeric разбирает numeric, прочитанный как text. NULL и нечисловые значения дают nil.
func ConvertNumeric(s *string) *decimal.Decimal {
	if s == nil {
		return nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil
	}
	return &d
}
