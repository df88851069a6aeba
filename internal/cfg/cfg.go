package cfg

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/DRSN-tech/bifl-catalog/pkg/e"
	"github.com/DRSN-tech/bifl-catalog/pkg/logger"
	"github.com/go-playground/validator/v10"
	"github.com/jimlawless/whereami"
)

type Config struct {
	Minio   *MinIOCfg   `validate:"required"`
	Http    *HTTPConfig `validate:"required"`
	Grpc    *GRPCConfig `validate:"required"`
	Db      *PGDBCfg    `validate:"required"`
	Redis   *RedisCfg   `validate:"required"`
	Catalog *CatalogCfg `validate:"required"`
}

// MinIOCfg — хранилище изображений товаров. Region задаётся явно,
// чтобы presign-ссылки подписывались без запроса к серверу.
type MinIOCfg struct {
	Endpoint   string `validate:"required"`
	BucketName string `validate:"required"`
	AccessKey  string
	SecretKey  string
	Region     string
	UseSSL     bool
	URLTTL     time.Duration `validate:"gt=0"` // время жизни presign-ссылки
}

type HTTPConfig struct {
	Port            string        `validate:"required,numeric"`
	ReadTimeout     time.Duration `validate:"gt=0"`
	WriteTimeout    time.Duration `validate:"gt=0"`
	IdleTimeout     time.Duration `validate:"gt=0"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

type GRPCConfig struct {
	Port        string `validate:"required,numeric"`
	NetworkMode string `validate:"oneof=tcp tcp4 tcp6"`
}

type PGDBCfg struct {
	Host          string `validate:"required"`
	Port          string `validate:"required,numeric"`
	User          string `validate:"required"`
	Password      string `validate:"required"`
	DBName        string `validate:"required"`
	SSLMode       string `validate:"oneof=disable allow prefer require verify-ca verify-full"`
	MaxConns      int32  `validate:"gte=0"`
	MigrationsURL string `validate:"required"`
}

type RedisCfg struct {
	Addr             string `validate:"required"`
	Password         string
	User             string
	DB               int           `validate:"gte=0"`
	MaxRetries       int           `validate:"gte=0"`
	DialTimeout      time.Duration `validate:"gt=0"`
	Timeout          time.Duration `validate:"gt=0"`
	FilterOptionsTTL time.Duration `validate:"gt=0"`
}

// CatalogCfg — параметры запросов каталога.
type CatalogCfg struct {
	QueryTimeout    time.Duration `validate:"gt=0"`
	DefaultPageSize int           `validate:"gte=1"`
	FeaturedBrands  int           `validate:"gte=0"`
}

// Load безопасно загружает конфигурацию и возвращает ошибку в случае неудачи.
func Load(log logger.Logger) (*Config, error) {
	db, err := loadPGDBCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	redis, err := loadRedisCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minio, err := loadMinIOCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	catalog, err := loadCatalogCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	cfg := &Config{
		Minio:   minio,
		Http:    http,
		Grpc:    loadGRPCConfig(),
		Db:      db,
		Redis:   redis,
		Catalog: catalog,
	}

	if err := Validate(cfg); err != nil {
		log.Errorf(err, "invalid configuration")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return cfg, nil
}

// Validate проверяет собранную конфигурацию по struct-тегам.
func Validate(cfg *Config) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", e.ErrIncorrectEnvVariable, err)
	}

	return nil
}

func loadMinIOCfg(log logger.Logger) (*MinIOCfg, error) {
	const (
		defaultUseSSL   = false
		defaultEndpoint = "minio:9000"
		defaultBucket   = "product-images"
		defaultRegion   = "us-east-1"
		defaultURLTTL   = 15 * time.Minute
	)

	useSSL, err := strconv.ParseBool(getEnvOrDefault("MINIO_USE_SSL", strconv.FormatBool(defaultUseSSL)))
	if err != nil {
		log.Errorf(err, "invalid MINIO_USE_SSL")
		return nil, err
	}

	urlTTL, err := parseDurationEnv("IMAGE_URL_TTL", defaultURLTTL)
	if err != nil {
		log.Errorf(err, "invalid IMAGE_URL_TTL")
		return nil, err
	}

	return &MinIOCfg{
		Endpoint:   getEnvOrDefault("MINIO_ENDPOINT", defaultEndpoint),
		BucketName: getEnvOrDefault("BUCKET_NAME", defaultBucket),
		AccessKey:  getEnv("MINIO_ROOT_USER"),
		SecretKey:  getEnv("MINIO_ROOT_PASSWORD"),
		Region:     getEnvOrDefault("MINIO_REGION", defaultRegion),
		UseSSL:     useSSL,
		URLTTL:     urlTTL,
	}, nil
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort            = "8080"
		defaultReadTimeout     = 5 * time.Second
		defaultWriteTimeout    = 10 * time.Second
		defaultIdleTimeout     = 60 * time.Second
		defaultShutdownTimeout = 10 * time.Second
	)

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	shutdownTimeout, err := parseDurationEnv("SHUTDOWN_TIMEOUT", defaultShutdownTimeout)
	if err != nil {
		log.Errorf(err, "invalid SHUTDOWN_TIMEOUT")
		return nil, err
	}

	return &HTTPConfig{
		Port:            getEnvOrDefault("HTTP_PORT", defaultPort),
		ReadTimeout:     readTimeout,
		WriteTimeout:    writeTimeout,
		IdleTimeout:     idleTimeout,
		ShutdownTimeout: shutdownTimeout,
	}, nil
}

func loadGRPCConfig() *GRPCConfig {
	const (
		defaultPort        = "8091"
		defaultNetworkMode = "tcp"
	)

	return &GRPCConfig{
		Port:        getEnvOrDefault("GRPC_PORT", defaultPort),
		NetworkMode: getEnvOrDefault("GRPC_NETWORK_MODE", defaultNetworkMode),
	}
}

func loadPGDBCfg(log logger.Logger) (*PGDBCfg, error) {
	const (
		defaultHost          = "localhost"
		defaultPort          = "5432"
		defaultSSLMode       = "disable"
		defaultMaxConns      = 10
		defaultMigrationsURL = "file://db/migrations"
	)

	for _, key := range []string{"POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB"} {
		if getEnv(key) == "" {
			err := fmt.Errorf("%s is required", key)
			log.Errorf(err, "missing %s", key)
			return nil, err
		}
	}

	maxConns, err := parseIntEnv("POSTGRES_MAX_CONNS", defaultMaxConns)
	if err != nil {
		log.Errorf(err, "invalid POSTGRES_MAX_CONNS")
		return nil, err
	}

	return &PGDBCfg{
		Host:          getEnvOrDefault("POSTGRES_HOST", defaultHost),
		Port:          getEnvOrDefault("POSTGRES_PORT", defaultPort),
		User:          getEnv("POSTGRES_USER"),
		Password:      getEnv("POSTGRES_PASSWORD"),
		DBName:        getEnv("POSTGRES_DB"),
		SSLMode:       getEnvOrDefault("SSL_MODE", defaultSSLMode),
		MaxConns:      int32(maxConns),
		MigrationsURL: getEnvOrDefault("MIGRATIONS_URL", defaultMigrationsURL),
	}, nil
}

func loadRedisCfg(log logger.Logger) (*RedisCfg, error) {
	const (
		defaultAddr             = "localhost:6379"
		defaultDB               = 0
		defaultMaxRetries       = 3
		defaultDialTimeout      = 5 * time.Second
		defaultReadTimeout      = 3 * time.Second
		defaultWriteTimeout     = 3 * time.Second
		defaultFilterOptionsTTL = 5 * time.Minute
	)

	db, err := parseIntEnv("REDIS_DB_ID", defaultDB)
	if err != nil {
		log.Errorf(err, "invalid REDIS_DB_ID")
		return nil, err
	}

	maxRetries, err := parseIntEnv("MAX_RETRIES", defaultMaxRetries)
	if err != nil {
		log.Errorf(err, "invalid MAX_RETRIES")
		return nil, err
	}

	dialTimeout, err := parseDurationEnv("DIAL_TIMEOUT", defaultDialTimeout)
	if err != nil {
		log.Errorf(err, "invalid DIAL_TIMEOUT")
		return nil, err
	}

	readTimeout, err := parseDurationEnv("READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid WRITE_TIMEOUT")
		return nil, err
	}

	filterOptionsTTL, err := parseDurationEnv("FILTER_OPTIONS_TTL", defaultFilterOptionsTTL)
	if err != nil {
		log.Errorf(err, "invalid FILTER_OPTIONS_TTL")
		return nil, err
	}

	timeout := readTimeout
	if writeTimeout > timeout {
		timeout = writeTimeout
	}

	return &RedisCfg{
		Addr:             getEnvOrDefault("REDIS_ADDR", defaultAddr),
		Password:         getEnv("REDIS_PASSWORD"),
		User:             getEnv("REDIS_USER"),
		DB:               db,
		MaxRetries:       maxRetries,
		DialTimeout:      dialTimeout,
		Timeout:          timeout,
		FilterOptionsTTL: filterOptionsTTL,
	}, nil
}

func loadCatalogCfg(log logger.Logger) (*CatalogCfg, error) {
	const (
		defaultQueryTimeout   = 5 * time.Second
		defaultPageSize       = 10
		defaultFeaturedBrands = 10
	)

	queryTimeout, err := parseDurationEnv("CATALOG_QUERY_TIMEOUT", defaultQueryTimeout)
	if err != nil {
		log.Errorf(err, "invalid CATALOG_QUERY_TIMEOUT")
		return nil, err
	}

	pageSize, err := parseIntEnv("CATALOG_DEFAULT_PAGE_SIZE", defaultPageSize)
	if err != nil {
		log.Errorf(err, "invalid CATALOG_DEFAULT_PAGE_SIZE")
		return nil, err
	}

	featured, err := parseIntEnv("CATALOG_FEATURED_BRANDS", defaultFeaturedBrands)
	if err != nil {
		log.Errorf(err, "invalid CATALOG_FEATURED_BRANDS")
		return nil, err
	}

	return &CatalogCfg{
		QueryTimeout:    queryTimeout,
		DefaultPageSize: pageSize,
		FeaturedBrands:  featured,
	}, nil
}

// getEnv возвращает значение переменной окружения.
// Возвращает пустую строку, если переменная не задана.
func getEnv(key string) string {
	return os.Getenv(key)
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// parseDurationEnv считывает длительность или возвращает значение по умолчанию.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		return time.ParseDuration(v)
	}

	return defaultValue, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue, e.ErrIncorrectEnvVariable
	}

	return intValue, nil
}
