package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/bifl-catalog/internal/cfg"
	v1Grpc "github.com/DRSN-tech/bifl-catalog/internal/delivery/v1/grpc"
	v1Http "github.com/DRSN-tech/bifl-catalog/internal/delivery/v1/http"
	s3Repo "github.com/DRSN-tech/bifl-catalog/internal/repository/minio"
	"github.com/DRSN-tech/bifl-catalog/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/bifl-catalog/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/bifl-catalog/internal/repository/redis"
	redisConv "github.com/DRSN-tech/bifl-catalog/internal/repository/redis/converter"
	"github.com/DRSN-tech/bifl-catalog/internal/usecase"
	"github.com/DRSN-tech/bifl-catalog/pkg/clients"
	"github.com/DRSN-tech/bifl-catalog/pkg/closer"
	"github.com/DRSN-tech/bifl-catalog/pkg/e"
	"github.com/DRSN-tech/bifl-catalog/pkg/logger"
	"github.com/DRSN-tech/bifl-catalog/pkg/postgres"
	"github.com/DRSN-tech/bifl-catalog/pkg/tr"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const (
	startupTimeout      = 10 * time.Second
	healthCheckInterval = 15 * time.Second
)

type App struct {
	cfg     *config.Config
	logger  logger.Logger
	closer  *closer.Closer
	db      *postgres.PgDatabase
	httpSrv *v1Http.Server
	grpcSrv *v1Grpc.GRPCServer
}

// NewApp подключает хранилища, применяет миграции и собирает серверы.
// При ошибке уже открытые ресурсы закрываются.
func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	a := &App{
		cfg:    cfg,
		logger: log,
		closer: closer.NewCloser(0, log),
	}

	if err := a.wire(); err != nil {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Http.ShutdownTimeout)
		defer cancel()
		if cerr := a.closer.Close(ctx); cerr != nil {
			log.Errorf(cerr, "failed to release resources")
		}
		return nil, err
	}

	return a, nil
}

func (a *App) wire() error {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	db, err := initPGDB(ctx, a.logger, a.cfg.Db)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	a.db = db
	a.closer.AddSimple("postgres", db.Close)

	redisClient := clients.NewRedisClient(a.cfg.Redis)
	a.closer.Add("redis", redisClient.Close)
	if err := redisClient.Ping(ctx); err != nil {
		a.logger.Errorf(err, "failed to connect to redis")
		return e.Wrap(whereami.WhereAmI(), err)
	}

	minioClient, err := clients.NewMinIOClient(a.cfg.Minio)
	if err != nil {
		a.logger.Errorf(err, "failed to initialize minio client")
		return e.Wrap(whereami.WhereAmI(), err)
	}
	// Без бакета presign всё равно работает, поэтому отсутствие только логируется.
	if ok, err := clients.BucketExists(ctx, minioClient, a.cfg.Minio.BucketName); err != nil || !ok {
		a.logger.Warnf("minio bucket %q is not available: exists=%t err=%v", a.cfg.Minio.BucketName, ok, err)
	}

	productRepo := pgdb.NewProductRepo(db.Pool, pgdbConv.NewProductConverterImpl())
	brandRepo := pgdb.NewBrandRepo(db.Pool, pgdbConv.NewBrandConverterImpl())
	filterRepo := pgdb.NewFilterOptionsRepo(db.Pool, pgdbConv.NewCategoryConverterImpl())
	cacheRepo := redis.NewCacheRepo(redisClient, redisConv.NewFilterOptionsConverterImpl(), a.cfg.Redis, a.logger)
	imageRepo := s3Repo.NewImageRepo(minioClient, a.cfg.Minio)

	catalogUC := usecase.NewCatalogUC(
		productRepo,
		brandRepo,
		filterRepo,
		cacheRepo,
		imageRepo,
		tr.NewSnapshotRunner(db.Pool),
		a.logger,
		a.cfg.Catalog,
	)

	a.grpcSrv = v1Grpc.NewGRPCServer(a.cfg.Grpc, a.logger)
	a.grpcSrv.RegisterServices(catalogUC)

	r := chi.NewRouter()
	v1Http.NewRouter(r, a.logger).Init(catalogUC, db)
	a.httpSrv = v1Http.NewServer(r, a.cfg.Http, a.logger)

	return nil
}

// Run запускает HTTP и gRPC серверы и блокируется до сигнала остановки или фатальной ошибки сервера.
func (a *App) Run() error {
	healthCtx, stopHealth := context.WithCancel(context.Background())
	go a.grpcSrv.WatchHealth(healthCtx, a.db, healthCheckInterval)

	a.closer.AddSimple("health watcher", stopHealth)
	a.closer.Add("gRPC server", a.grpcSrv.Stop)
	a.closer.Add("HTTP server", a.httpSrv.Stop)

	errCh := make(chan error, 2)
	go func() {
		if err := a.grpcSrv.Start(); err != nil {
			errCh <- e.Wrap("gRPC server", err)
		}
	}()
	go func() {
		if err := a.httpSrv.Run(); err != nil {
			errCh <- e.Wrap("HTTP server", err)
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "server fatal error")
	case sig := <-shutdown:
		a.logger.Infof("Received %s, stopping gracefully...", sig)
	}

	// === Graceful shutdown ===
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Http.ShutdownTimeout)
	defer cancel()

	if err := a.closer.Close(ctx); err != nil {
		a.logger.Errorf(err, "shutdown error")
		if appErr == nil {
			appErr = err
		}
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

func initPGDB(ctx context.Context, log logger.Logger, cfg *config.PGDBCfg) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(ctx, cfg)
	if err != nil {
		log.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(log, cfg.MigrationsURL); err != nil {
		log.Errorf(err, "failed to run migrations")
		db.Close()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(ctx); err != nil {
		log.Errorf(err, "failed to ping database")
		db.Close()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
