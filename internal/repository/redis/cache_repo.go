package redis

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/DRSN-tech/bifl-catalog/internal/cfg"
	"github.com/DRSN-tech/bifl-catalog/internal/repository/redis/converter"
	"github.com/DRSN-tech/bifl-catalog/internal/usecase"
	"github.com/DRSN-tech/bifl-catalog/pkg/clients"
	"github.com/DRSN-tech/bifl-catalog/pkg/e"
	"github.com/DRSN-tech/bifl-catalog/pkg/jitter"
	"github.com/DRSN-tech/bifl-catalog/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

const filterOptionsKey = "catalog:filter-options"

type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.FilterOptionsConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.FilterOptionsConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetFilterOptions возвращает закэшированные варианты фильтров. Промах кэша — (nil, nil).
// Повреждённая запись удаляется и считается промахом.
func (c *CacheRepo) GetFilterOptions(ctx context.Context) (*usecase.FilterOptions, error) {
	data, err := c.client.Client.Get(ctx, filterOptionsKey).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return nil, nil
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var model converter.FilterOptionsRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		c.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
		if err := c.client.Client.Del(ctx, filterOptionsKey).Err(); err != nil {
			c.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return nil, nil
	}

	return c.conv.ToUseCase(&model), nil
}

// SetFilterOptions кэширует варианты фильтров с TTL, размытым джиттером.
func (c *CacheRepo) SetFilterOptions(ctx context.Context, opts *usecase.FilterOptions) error {
	if opts == nil {
		return nil
	}

	data, err := json.Marshal(c.conv.ToRedisModel(opts))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	ttl := jitter.Duration(c.cfg.FilterOptionsTTL, jitter.DefaultJitter)
	if err := c.client.Client.Set(ctx, filterOptionsKey, data, ttl).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
