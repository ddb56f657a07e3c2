package scheduler

import (
	"context"
	"sync"
	"time"

	"fabshop-api/config"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// ScheduleRoutine is a unit of periodic background work.
type ScheduleRoutine interface {
	Run() error
	Name() string
	Cancel()
}

type SchedulerParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Logger    *zap.Logger
	Config    *config.AppConfig
	Routines  []ScheduleRoutine `group:"routines"`
}

// Scheduler runs all registered routines on a shared ticker. A tick is
// skipped when the previous round is still running.
type Scheduler struct {
	logger   *zap.Logger
	interval time.Duration
	shutdown chan struct{}
	routines map[string]ScheduleRoutine
}

func NewScheduler(params SchedulerParams) *Scheduler {
	routines := make(map[string]ScheduleRoutine)
	for _, routine := range params.Routines {
		routines[routine.Name()] = routine
	}

	scheduler := &Scheduler{
		logger:   params.Logger,
		interval: params.Config.ReconcileInterval,
		routines: routines,
		shutdown: make(chan struct{}),
	}

	if scheduler.interval <= 0 {
		params.Logger.Info("background routines disabled")
		return scheduler
	}

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go scheduler.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(scheduler.shutdown)
			for _, routine := range scheduler.routines {
				routine.Cancel()
			}
			return nil
		},
	})

	return scheduler
}

func (s *Scheduler) Start() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	var busy sync.Mutex

	for {
		if busy.TryLock() {
			go func() {
				defer busy.Unlock()
				s.runAll()
			}()
		} else {
			s.logger.Warn("previous routine round still in progress, skipping tick")
		}

		select {
		case <-s.shutdown:
			return
		case <-ticker.C:
		}
	}
}

func (s *Scheduler) runAll() {
	for _, routine := range s.routines {
		s.logger.Debug("running routine", zap.String("name", routine.Name()))
		if err := routine.Run(); err != nil {
			s.logger.Error("routine failed", zap.String("name", routine.Name()), zap.Error(err))
			continue
		}
		s.logger.Debug("routine completed", zap.String("name", routine.Name()))
	}
}
