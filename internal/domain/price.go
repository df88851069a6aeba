package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// PriceRange — полуинтервал цен [Min, Max). Max == nil означает отсутствие верхней границы.
type PriceRange struct {
	Min decimal.Decimal
	Max *decimal.Decimal
}

// Contains проверяет попадание цены в диапазон. Товары без цены не попадают ни в один диапазон.
func (r PriceRange) Contains(price *decimal.Decimal) bool {
	if price == nil || price.LessThan(r.Min) {
		return false
	}
	return r.Max == nil || price.LessThan(*r.Max)
}

// ParsePriceRange разбирает токен "min-max" или "min-".
// Нечисловые, отрицательные и перевёрнутые границы дают ok == false.
func ParsePriceRange(token string) (PriceRange, bool) {
	minStr, maxStr, found := strings.Cut(strings.TrimSpace(token), "-")
	if !found {
		return PriceRange{}, false
	}

	minVal, err := decimal.NewFromString(strings.TrimSpace(minStr))
	if err != nil || minVal.IsNegative() {
		return PriceRange{}, false
	}

	maxStr = strings.TrimSpace(maxStr)
	if maxStr == "" {
		return PriceRange{Min: minVal}, true
	}

	maxVal, err := decimal.NewFromString(maxStr)
	if err != nil || maxVal.LessThanOrEqual(minVal) {
		return PriceRange{}, false
	}

	return PriceRange{Min: minVal, Max: &maxVal}, true
}

// PriceBucket — фиксированный вариант ценового фильтра.
type PriceBucket struct {
	Token string
	Label string
}

// PriceBuckets возвращает ценовые диапазоны, предлагаемые в фильтрах.
func PriceBuckets() []PriceBucket {
	return []PriceBucket{
		{Token: "0-25", Label: "Under $25"},
		{Token: "25-50", Label: "$25 - $50"},
		{Token: "50-100", Label: "$50 - $100"},
		{Token: "100-250", Label: "$100 - $250"},
		{Token: "250-500", Label: "$250 - $500"},
		{Token: "500-", Label: "$500+"},
	}
}
