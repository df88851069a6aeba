package domain

// Brand описывает производителя. CategoryID — собственная категория бренда,
// не связанная с категориями его товаров.
type Brand struct {
	ID          int64
	Name        string
	Description string
	Website     string
	Location    string
	CategoryID  *int64
}
