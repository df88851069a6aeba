package converter

import (
	"encoding/json"
	"testing"

	"github.com/DRSN-tech/bifl-catalog/internal/domain"
	"github.com/DRSN-tech/bifl-catalog/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterOptionsConverter_EmptyListsStayEmpty(t *testing.T) {
	conv := NewFilterOptionsConverterImpl()

	model := conv.ToRedisModel(&usecase.FilterOptions{})
	data, err := json.Marshal(model)
	require.NoError(t, err)

	assert.JSONEq(t, `{"categories":[],"brands":[],"products":[],"price_ranges":[]}`, string(data))
}

func TestFilterOptionsConverter_FromCachedJSON(t *testing.T) {
	raw := `{
		"categories":[{"main_category":"Kitchen","sub_categories":["Cookware","Knives"]}],
		"brands":["Lodge"],
		"products":["Skillet"],
		"price_ranges":[{"token":"0-25","label":"Under $25"}]
	}`

	var model FilterOptionsRedisModel
	require.NoError(t, json.Unmarshal([]byte(raw), &model))

	opts := NewFilterOptionsConverterImpl().ToUseCase(&model)

	assert.Equal(t, []usecase.CategoryGroup{{MainCategory: "Kitchen", SubCategories: []string{"Cookware", "Knives"}}}, opts.Categories)
	assert.Equal(t, []string{"Lodge"}, opts.Brands)
	assert.Equal(t, []string{"Skillet"}, opts.Products)
	assert.Equal(t, []domain.PriceBucket{{Token: "0-25", Label: "Under $25"}}, opts.PriceRanges)
}

func TestFilterOptionsConverter_Nil(t *testing.T) {
	conv := NewFilterOptionsConverterImpl()

	assert.Nil(t, conv.ToRedisModel(nil))
	assert.Nil(t, conv.ToUseCase(nil))
}
