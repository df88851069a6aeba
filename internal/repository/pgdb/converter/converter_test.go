package converter

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestProductConverter_ToRowNormalizesNulls(t *testing.T) {
	conv := NewProductConverterImpl()

	row := conv.ToRow(&ProductRowModel{
		ID:        1,
		Name:      "Wool socks",
		MSRP:      ptr("24.99"),
		UpdatedAt: time.Unix(0, 0),
	})

	assert.Equal(t, "", row.Description)
	assert.Equal(t, "", row.MainCategory)
	assert.Equal(t, "", row.BrandName)
	assert.Equal(t, "", row.BrandWebsite)
	assert.Nil(t, row.CurrentPrice)
	assert.False(t, row.ContainsPFAS)
	assert.Zero(t, row.Likes)
	require.NotNil(t, row.MSRP)
	assert.True(t, row.MSRP.Equal(decimal.RequireFromString("24.99")))
}

func TestProductConverter_ToDetailBrandRef(t *testing.T) {
	conv := NewProductConverterImpl()

	withBrand := conv.ToDetail(&ProductRowModel{ID: 1, BrandID: ptr(int64(3)), BrandName: ptr("Lodge")})
	require.NotNil(t, withBrand.Brand)
	assert.Equal(t, int64(3), withBrand.Brand.ID)
	assert.Equal(t, "Lodge", withBrand.Brand.Name)
	assert.NotNil(t, withBrand.Materials)
	assert.NotNil(t, withBrand.Images)

	danglingBrand := conv.ToDetail(&ProductRowModel{ID: 2, BrandID: ptr(int64(404))})
	assert.Nil(t, danglingBrand.Brand)
}

func TestProductConverter_ToMaterials(t *testing.T) {
	materials := NewProductConverterImpl().ToMaterials([]ProductMaterialModel{
		{ID: 1, Name: "Merino wool", Percentage: "70.00"},
		{ID: 2, Name: "Nylon", Percentage: "27.50"},
	})

	require.Len(t, materials, 2)
	assert.Equal(t, "Merino wool", materials[0].Name)
	assert.True(t, materials[1].Percentage.Equal(decimal.RequireFromString("27.5")))
}

func TestBrandConverter_ToRows(t *testing.T) {
	rows := NewBrandConverterImpl().ToRows([]BrandRowModel{
		{ID: 1, Name: "Lodge", Website: ptr("https://lodgecastiron.com"), MainCategory: ptr("Kitchen")},
		{ID: 2, Name: "Unknown"},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, "https://lodgecastiron.com", rows[0].Website)
	assert.Equal(t, "Kitchen", rows[0].MainCategory)
	assert.Equal(t, "", rows[1].Description)
	assert.Equal(t, "", rows[1].SubCategory)
}

func TestConvertNumeric(t *testing.T) {
	assert.Nil(t, ConvertNumeric(nil))
	assert.Nil(t, ConvertNumeric(ptr("NaN")))
	assert.True(t, ConvertNumeric(ptr("50.00")).Equal(decimal.NewFromInt(50)))
}
