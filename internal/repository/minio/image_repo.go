package minio

import (
	"context"
	"strings"

	"github.com/DRSN-tech/bifl-catalog/internal/cfg"
	"github.com/DRSN-tech/bifl-catalog/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

// ImageRepo выдаёт ссылки на изображения товаров, хранящиеся в MinIO.
type ImageRepo struct {
	mc  *minio.Client
	cfg *cfg.MinIOCfg
}

func NewImageRepo(mc *minio.Client, cfg *cfg.MinIOCfg) *ImageRepo {
	return &ImageRepo{
		mc:  mc,
		cfg: cfg,
	}
}

// PresignedURL возвращает временную ссылку на объект. Срок жизни берётся из конфигурации.
func (i *ImageRepo) PresignedURL(ctx context.Context, objectKey string) (string, error) {
	key := strings.TrimPrefix(objectKey, "/")

	u, err := i.mc.PresignedGetObject(ctx, i.cfg.BucketName, key, i.cfg.URLTTL, nil)
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return u.String(), nil
}
