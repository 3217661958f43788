package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"jobswipe/internal/config"
	"jobswipe/internal/database/migration"
	"jobswipe/internal/database/seeder"
	"jobswipe/internal/delivery/http/handler"
	"jobswipe/internal/delivery/http/middleware"
	"jobswipe/internal/delivery/http/routes"
	v1 "jobswipe/internal/delivery/http/routes/v1"
	"jobswipe/internal/metrics"
	"jobswipe/internal/repository"
	"jobswipe/internal/scheduler"
	"jobswipe/internal/ws"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName:      c.Config.App.AppName,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	registerGlobalMiddleware(f, c.Logger)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

// Bootstrap builds the container, prepares the schema when configured to and
// returns the HTTP app together with its cleanup func.
func Bootstrap(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("init container: %w", err)
	}

	if err := Prepare(ctx, c); err != nil {
		_ = c.Close()
		return nil, nil, err
	}

	bgCtx, stopBackground := context.WithCancel(context.Background())
	go c.Hub.Run(bgCtx)

	var sched *scheduler.Scheduler
	if spec := cfg.Scheduler.PoolStatsSpec; spec != "" {
		sched = scheduler.New(repository.NewPostgresStatsRepository(c.DB), spec, c.Logger.Named("scheduler"))
		if err := sched.Start(bgCtx); err != nil {
			stopBackground()
			_ = c.Close()
			return nil, nil, err
		}
	}

	cleanup := func() error {
		if sched != nil {
			stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			sched.Stop(stopCtx)
			cancel()
		}
		stopBackground()
		return c.Close()
	}
	return New(c), cleanup, nil
}

// Prepare runs migrations and seeders according to the database config.
func Prepare(ctx context.Context, c *Container) error {
	cfg := c.Config.Database
	if cfg.RunMigrations {
		migCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
		defer cancel()
		r := migration.Runner{Source: migration.SourceFor(cfg.MigrationsDir), Logger: c.Logger.Named("migration")}
		if err := r.Run(migCtx, c.DB.SQLDB()); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	if cfg.RunSeeders {
		seedCtx, cancel := context.WithTimeout(ctx, time.Minute)
		defer cancel()
		r := seeder.Runner{Seeders: seeder.Defaults(), Logger: c.Logger.Named("seeder")}
		if err := r.Run(seedCtx, c.DB); err != nil {
			return err
		}
		// Seeded swipes change like counts behind the cache's back.
		if err := c.Cache.DeleteByPattern(seedCtx, repository.LikeCountCacheKeyPattern); err != nil {
			c.Logger.Warn("flush like count cache failed", zap.Error(err))
		}
	}
	return nil
}

// Order matters: metrics and access log sit outside the error middleware so
// they observe the final status code.
func registerGlobalMiddleware(app *fiber.App, logger *zap.Logger) {
	if app == nil {
		return
	}

	app.Use(metrics.Middleware())
	app.Use(middleware.NewAccessLogMiddleware(logger.Named("http")).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger.Named("http")).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	var cacheStatus handler.CacheStatus
	if c.Cache != nil {
		cacheStatus = c.Cache
	}

	reg := routes.NewRegistry(
		handler.NewHealthHandler(c.DB, cacheStatus),
		v1.Handlers{
			Users:           handler.NewUserHandler(c.UserUsecase),
			Recommendations: handler.NewJobRecommendationHandler(c.RecommendationUsecase, c.Config.Recommendation.DefaultLimit),
			Jobs:            handler.NewJobHandler(c.JobUsecase),
			Swipes:          handler.NewSwipeHandler(c.SwipeUsecase),
		},
	)
	if rl := c.Config.RateLimit; rl.RPS > 0 {
		reg.UseAPI(middleware.NewRateLimiter(rl.RPS, rl.Burst).Middleware())
	}
	reg.Register(app)

	ws.NewHandler(c.Hub, c.Logger.Named("ws")).RegisterRoutes(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
