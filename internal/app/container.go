package app

import (
	"context"
	"errors"
	"time"

	"jobswipe/internal/config"
	"jobswipe/internal/database"
	dbpostgres "jobswipe/internal/database/postgres"
	"jobswipe/internal/infrastructure/cache"
	"jobswipe/internal/repository"
	"jobswipe/internal/usecase"
	"jobswipe/internal/ws"

	"go.uber.org/zap"
)

// Container owns every long-lived dependency of the process. It is the only
// place the storage handle is created and the only place it is closed.
type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub

	Recommendations *repository.CachedRecommendationQuery

	UserUsecase           *usecase.User
	JobUsecase            *usecase.Job
	SwipeUsecase          *usecase.Swipe
	RecommendationUsecase *usecase.JobRecommendation
}

func NewContainer(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(connectCtx, cfg.Database)
	if err != nil {
		return nil, err
	}

	redis := cache.NewRedis(ctx, cfg.Redis, logger.Named("cache"))
	return NewContainerWithDeps(cfg, logger, db, redis), nil
}

// NewContainerWithDeps wires repositories and usecases around an existing
// storage handle and cache. The cache may be nil.
func NewContainerWithDeps(cfg config.Config, logger *zap.Logger, db database.DB, redis *cache.Redis) *Container {
	if logger == nil {
		logger = zap.NewNop()
	}

	var likeCache repository.JSONCache
	if redis != nil {
		likeCache = redis
	}

	recs := repository.NewCachedRecommendationQuery(
		repository.NewPostgresRecommendationRepository(db),
		likeCache,
		cfg.Recommendation.LikeCountTTL,
		logger.Named("likes"),
	)
	users := repository.NewPostgresUserRepository(db)
	jobs := repository.NewPostgresJobRepository(db)
	swipes := repository.NewPostgresSwipeRepository(db)
	hub := ws.NewHub(logger.Named("ws"))

	return &Container{
		Config:          cfg,
		Logger:          logger,
		DB:              db,
		Cache:           redis,
		Hub:             hub,
		Recommendations: recs,

		UserUsecase:           usecase.NewUserUsecase(users, swipes),
		JobUsecase:            usecase.NewJobUsecase(jobs).WithEvents(hub),
		SwipeUsecase:          usecase.NewSwipeUsecase(swipes, recs, logger.Named("swipes")),
		RecommendationUsecase: usecase.NewJobRecommendationUsecase(recs, cfg.Recommendation, logger.Named("recommendations")),
	}
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}

	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
