package converter

import (
	"github.com/DRSN-tech/bifl-catalog/internal/domain"
	"github.com/DRSN-tech/bifl-catalog/internal/usecase"
)

type FilterOptionsConverter interface {
	ToRedisModel(entity *usecase.FilterOptions) *FilterOptionsRedisModel
	ToUseCase(model *FilterOptionsRedisModel) *usecase.FilterOptions
}

type FilterOptionsConverterImpl struct{}

func NewFilterOptionsConverterImpl() *FilterOptionsConverterImpl {
	return &FilterOptionsConverterImpl{}
}

func (c *FilterOptionsConverterImpl) ToRedisModel(entity *usecase.FilterOptions) *FilterOptionsRedisModel {
	if entity == nil {
		return nil
	}

	model := &FilterOptionsRedisModel{
		Categories:  make([]CategoryGroupRedisModel, len(entity.Categories)),
		Brands:      copyStrings(entity.Brands),
		Products:    copyStrings(entity.Products),
		PriceRanges: make([]PriceBucketRedisModel, len(entity.PriceRanges)),
	}
	for i, g := range entity.Categories {
		model.Categories[i] = CategoryGroupRedisModel{
			MainCategory:  g.MainCategory,
			SubCategories: copyStrings(g.SubCategories),
		}
	}
	for i, b := range entity.PriceRanges {
		model.PriceRanges[i] = PriceBucketRedisModel{Token: b.Token, Label: b.Label}
	}

	return model
}

func (c *FilterOptionsConverterImpl) ToUseCase(model *FilterOptionsRedisModel) *usecase.FilterOptions {
	if model == nil {
		return nil
	}

	entity := &usecase.FilterOptions{
		Categories:  make([]usecase.CategoryGroup, len(model.Categories)),
		Brands:      copyStrings(model.Brands),
		Products:    copyStrings(model.Products),
		PriceRanges: make([]domain.PriceBucket, len(model.PriceRanges)),
	}
	for i, g := range model.Categories {
		entity.Categories[i] = usecase.CategoryGroup{
			MainCategory:  g.MainCategory,
			SubCategories: copyStrings(g.SubCategories),
		}
	}
	for i, b := range model.PriceRanges {
		entity.PriceRanges[i] = domain.PriceBucket{Token: b.Token, Label: b.Label}
	}

	return entity
}

// copyStrings всегда возвращает не-nil срез, чтобы в JSON не попадал null.
func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
