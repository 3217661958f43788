// Package scheduler runs periodic housekeeping jobs next to the HTTP server.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"jobswipe/internal/metrics"
	"jobswipe/internal/repository"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type StatsSource interface {
	PoolStats(ctx context.Context) (repository.PoolStats, error)
}

// Scheduler wraps robfig/cron. Jobs never overlap with themselves.
type Scheduler struct {
	cron   *cron.Cron
	stats  StatsSource
	spec   string
	logger *zap.Logger
}

func New(stats StatsSource, spec string, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	cl := cronLogger{logger}
	return &Scheduler{
		cron:   cron.New(cron.WithLogger(cl), cron.WithChain(cron.SkipIfStillRunning(cl))),
		stats:  stats,
		spec:   spec,
		logger: logger,
	}
}

// Start registers the pool stats job and runs it once right away so the
// gauges are populated before the first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.spec, func() { s.refreshPoolStats(ctx) }); err != nil {
		return fmt.Errorf("cron.AddFunc %q: %w", s.spec, err)
	}

	s.cron.Start()
	s.logger.Info("scheduler started", zap.String("pool_stats_spec", s.spec))

	go s.refreshPoolStats(ctx)
	return nil
}

// Stop waits for running jobs to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) refreshPoolStats(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	st, err := s.stats.PoolStats(runCtx)
	if err != nil {
		s.logger.Warn("pool stats refresh failed", zap.Error(err))
		return
	}

	metrics.SetPoolSize("users", st.Users)
	metrics.SetPoolSize("jobs", st.Jobs)
	metrics.SetPoolSize("likes", st.Likes)
	metrics.SetPoolSize("dislikes", st.Dislikes)
	s.logger.Debug("pool stats refreshed",
		zap.Int64("users", st.Users),
		zap.Int64("jobs", st.Jobs),
		zap.Int64("likes", st.Likes),
		zap.Int64("dislikes", st.Dislikes),
	)
}

// cronLogger adapts zap to cron.Logger.
type cronLogger struct{ l *zap.Logger }

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.l.Sugar().Debugw(msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.l.Sugar().Errorw(msg, append(keysAndValues, "error", err)...)
}
