package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/finseed/internal/config"
	"github.com/GlebRadaev/finseed/internal/handlers"
	"github.com/GlebRadaev/finseed/internal/pg"
	"github.com/GlebRadaev/finseed/internal/pipeline"
	"github.com/GlebRadaev/finseed/internal/repo"
	"github.com/GlebRadaev/finseed/internal/service"
	"github.com/GlebRadaev/finseed/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg   *config.Config
	api   *handlers.Handlers
	srv   *service.Services
	repo  *repo.Repositories
	pools []*pgxpool.Pool
	runID string

	errCh   chan error
	wg      sync.WaitGroup
	serving bool
	ready   bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

type store struct {
	name   string
	dsn    string
	schema string
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	a.runID = uuid.NewString()
	zap.ReplaceGlobals(zap.L().With(zap.String("run_id", a.runID)))

	pools, err := openStores(ctx, []store{
		{name: "identity", dsn: cfg.UsersDatabase, schema: pg.IdentitySchema},
		{name: "ledger", dsn: cfg.LedgerDatabase, schema: pg.LedgerSchema},
		{name: "campaigns", dsn: cfg.CampaignsDatabase, schema: pg.CampaignsSchema},
	})
	if err != nil {
		zap.L().Error("stores are not ready: ", zap.Error(err))
		return fmt.Errorf("can't open stores: %w", err)
	}
	a.pools = pools

	a.cfg = cfg
	a.repo = repo.New(newStore(pools[0]), newStore(pools[1]), newStore(pools[2]))
	a.srv, err = service.New(a.repo, cfg)
	if err != nil {
		a.closePools()
		return fmt.Errorf("can't build services: %w", err)
	}

	if err := a.seed(ctx); err != nil {
		a.closePools()
		return err
	}

	if cfg.ServeAddress != "" {
		a.api = handlers.New(a.srv)
		if err = a.startHTTPServer(ctx); err != nil {
			a.closePools()
			return fmt.Errorf("can't start http server: %w", err)
		}
		a.serving = true
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func (a *Application) seed(ctx context.Context) error {
	p, err := pipeline.New(a.srv.Stages()...)
	if err != nil {
		return fmt.Errorf("can't build pipeline: %w", err)
	}

	started := time.Now()
	results, err := p.Run(ctx)
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	total := 0
	for _, r := range results {
		for _, n := range r.Summary {
			total += n
		}
	}
	zap.L().Info("seeding finished",
		zap.Int("stages", len(results)),
		zap.Int("rows", total),
		zap.Duration("elapsed", time.Since(started)),
	)
	return nil
}

// openStores connects to every store and migrates it, all stores in parallel.
func openStores(ctx context.Context, stores []store) ([]*pgxpool.Pool, error) {
	pools := make([]*pgxpool.Pool, len(stores))
	g, gctx := errgroup.WithContext(ctx)
	for i, s := range stores {
		g.Go(func() error {
			pool, err := pg.Connect(gctx, s.name, s.dsn)
			if err != nil {
				return err
			}
			pools[i] = pool
			if err := pg.RunMigrations(gctx, pool, s.schema); err != nil {
				return fmt.Errorf("migrate %s store: %w", s.name, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		for _, p := range pools {
			if p != nil {
				p.Close()
			}
		}
		return nil, err
	}
	return pools, nil
}

func newStore(pool *pgxpool.Pool) repo.Store {
	return repo.Store{
		Conn:      pg.New(pool),
		TxManager: pg.NewTXManager(pool),
	}
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.ServeAddress,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
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
		zap.L().Info("starting browse api", zap.String("address", a.cfg.ServeAddress))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) closePools() {
	for _, p := range a.pools {
		if p != nil {
			p.Close()
		}
	}
	a.pools = nil
}

// Wait blocks until ctx is done when the browse API is up. Without it the
// seeding run is already complete and Wait returns at once.
func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	defer a.closePools()

	if !a.serving {
		cancel()
		return nil
	}

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

	return appErr
}
