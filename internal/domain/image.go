package domain

import "strings"

// ProductImage — изображение товара. URL хранит либо абсолютную ссылку,
// либо ключ объекта в S3-хранилище.
type ProductImage struct {
	ID        int64
	ProductID int64
	URL       string
}

// IsObjectKey сообщает, что URL является ключом объекта в хранилище, а не готовой ссылкой.
func (i ProductImage) IsObjectKey() bool {
	u := strings.ToLower(i.URL)
	return u != "" && !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") && !strings.HasPrefix(u, "//")
}
