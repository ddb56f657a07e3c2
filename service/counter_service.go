package service

import (
	"fabshop-api/models"
	"fabshop-api/repository"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// CounterService applies single-column counter deltas to a project.
// Counter maintenance is never fatal to the task operation that triggered
// it: a missing project row or a database error is logged with the full
// adjustment context and otherwise swallowed. The reconcile routine
// repairs whatever drift accumulates.
type CounterService interface {
	Adjust(projectNo string, cat models.Category, kind models.CounterKind, delta int)
}

type CounterServiceParams struct {
	fx.In

	ProjectRepo repository.ProjectRepository
	Logger      *zap.Logger
}

type CounterServiceImpl struct {
	projectRepo repository.ProjectRepository
	logger      *zap.Logger
}

func NewCounterService(params CounterServiceParams) CounterService {
	return &CounterServiceImpl{
		projectRepo: params.ProjectRepo,
		logger:      params.Logger,
	}
}

func (s *CounterServiceImpl) Adjust(projectNo string, cat models.Category, kind models.CounterKind, delta int) {
	rows, err := s.projectRepo.AdjustCounter(projectNo, cat, kind, delta)
	if err != nil {
		s.logger.Warn("counter adjustment failed",
			zap.String("project_no", projectNo),
			zap.String("category", string(cat)),
			zap.String("counter", string(kind)),
			zap.Int("delta", delta),
			zap.Error(err),
		)
		return
	}
	if rows == 0 {
		s.logger.Warn("counter adjustment matched no project",
			zap.String("project_no", projectNo),
			zap.String("category", string(cat)),
			zap.String("counter", string(kind)),
			zap.Int("delta", delta),
		)
	}
}
