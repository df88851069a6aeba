package converter

type FilterOptionsRedisModel struct {
	Categories  []CategoryGroupRedisModel `json:"categories"`
	Brands      []string                  `json:"brands"`
	Products    []string                  `json:"products"`
	PriceRanges []PriceBucketRedisModel   `json:"price_ranges"`
}

type CategoryGroupRedisModel struct {
	MainCategory  string   `json:"main_category"`
	SubCategories []string `json:"sub_categories"`
}

type PriceBucketRedisModel struct {
	Token string `json:"token"`
	Label string `json:"label"`
}
