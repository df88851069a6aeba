package domain

// Category — пара «основная категория / подкатегория».
// Иерархия не хранится отдельно: одна основная категория повторяется в нескольких строках.
type Category struct {
	ID           int64
	MainCategory string
	SubCategory  string
}
