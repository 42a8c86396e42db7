package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/GlebRadaev/marketbid/internal/autobid"
	"github.com/GlebRadaev/marketbid/internal/config"
	"github.com/GlebRadaev/marketbid/internal/events"
	"github.com/GlebRadaev/marketbid/internal/expiry"
	"github.com/GlebRadaev/marketbid/internal/gateway"
	"github.com/GlebRadaev/marketbid/internal/handlers"
	"github.com/GlebRadaev/marketbid/internal/pg"
	"github.com/GlebRadaev/marketbid/internal/ratingcache"
	"github.com/GlebRadaev/marketbid/internal/repo"
	"github.com/GlebRadaev/marketbid/internal/service"
	"github.com/GlebRadaev/marketbid/pkg/auth"
	"github.com/GlebRadaev/marketbid/pkg/clients"
	"github.com/GlebRadaev/marketbid/pkg/logger"
)

const eventSubjectPrefix = "marketbid."

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg       *config.Config
	api       *handlers.Handlers
	srv       *service.Services
	repo      *repo.Repositories
	scheduler *autobid.Scheduler
	sweeper   *expiry.Service

	closers []func()
	errCh   chan error
	wg      sync.WaitGroup
	ready   bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	a.closers = append(a.closers, pool.Close)
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	a.cfg = cfg
	a.repo = repo.New(conn, txManager)

	notifier, err := a.notifier(cfg)
	if err != nil {
		return fmt.Errorf("can't connect to nats: %w", err)
	}

	a.scheduler = autobid.New(a.repo.BidRepo, cfg.AutoBidReconcileInterval)
	a.srv = service.New(cfg, a.repo, service.Collaborators{
		Gateway:  gateway.New(cfg.GatewayAddress, cfg.GatewayKey, clients.NewHTTPClient()),
		Ratings:  a.ratingCache(ctx, cfg),
		Tracker:  a.scheduler,
		Notifier: notifier,
	})
	a.api = handlers.New(a.srv, auth.NewJWTService(cfg.JWTSecret))
	a.sweeper = expiry.New(a.repo.BidRepo, a.srv.PenaltyService, cfg.ExpirySweepInterval)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startBackground(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

// ratingCache puts Redis in front of the ratings query when it is configured and reachable.
func (a *Application) ratingCache(ctx context.Context, cfg *config.Config) *ratingcache.Cache {
	if cfg.RedisAddr == "" {
		return ratingcache.New(nil, a.repo.ReceiptRepo, cfg.RatingCacheTTL)
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		zap.L().Warn("redis unavailable, rating cache disabled", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		client.Close()
		return ratingcache.New(nil, a.repo.ReceiptRepo, cfg.RatingCacheTTL)
	}
	a.closers = append(a.closers, func() { client.Close() })
	return ratingcache.New(client, a.repo.ReceiptRepo, cfg.RatingCacheTTL)
}

func (a *Application) notifier(cfg *config.Config) (events.Notifier, error) {
	if cfg.NATSURL == "" {
		zap.L().Info("NATS_URL is empty, events are only logged")
		return events.LogNotifier{}, nil
	}

	nc, err := nats.Connect(cfg.NATSURL, nats.Name("marketbid"), nats.MaxReconnects(-1))
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, func() {
		if err := nc.Drain(); err != nil {
			zap.L().Warn("nats drain failed", zap.Error(err))
		}
	})
	return events.NewNATSNotifier(nc, eventSubjectPrefix), nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

// startBackground runs the auto-bid scheduler and the payment expiry sweeper until ctx is done.
func (a *Application) startBackground(ctx context.Context) {
	a.scheduler.Start(ctx)
	a.sweeper.Start(ctx)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()
		a.scheduler.Wait()
		a.sweeper.Wait()
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}

	return appErr
}
