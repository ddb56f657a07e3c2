package service

import (
	"fabshop-api/internal/scheduler"
	"fabshop-api/models"
	"fabshop-api/repository"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// ReconcileRoutine recomputes every project's counter columns from the
// task tables and writes back corrections. Counter maintenance is
// best-effort by design, so drift accumulates whenever an adjustment is
// swallowed; this routine bounds how long that drift can live.
//
// It deliberately counts with the write-side vocabulary (completed only,
// not done) so it converges to what the counter path would have produced.
type ReconcileRoutine struct {
	projectRepo repository.ProjectRepository
	taskRepo    repository.TaskRepository
	logger      *zap.Logger
}

type ReconcileRoutineParams struct {
	fx.In

	ProjectRepo repository.ProjectRepository
	TaskRepo    repository.TaskRepository
	Logger      *zap.Logger
}

func NewReconcileRoutine(params ReconcileRoutineParams) scheduler.ScheduleRoutine {
	return &ReconcileRoutine{
		projectRepo: params.ProjectRepo,
		taskRepo:    params.TaskRepo,
		logger:      params.Logger,
	}
}

func (r *ReconcileRoutine) Name() string {
	return "counter_reconcile"
}

func (r *ReconcileRoutine) Run() error {
	projects, err := r.projectRepo.List()
	if err != nil {
		return err
	}

	for _, project := range projects {
		for _, cat := range models.Categories {
			if err := r.reconcile(&project, cat); err != nil {
				r.logger.Error("failed to reconcile counters",
					zap.String("project_no", project.ProjectNo),
					zap.String("category", string(cat)),
					zap.Error(err),
				)
				// keep going; other categories are independent
			}
		}
	}

	return nil
}

func (r *ReconcileRoutine) reconcile(project *models.Project, cat models.Category) error {
	counts, err := r.taskRepo.CountByProject(cat, project.ProjectNo, models.CounterStatuses)
	if err != nil {
		return err
	}

	storedTotal, storedCompleted := project.Counters(cat)
	if int64(storedTotal) == counts.Total && int64(storedCompleted) == counts.Completed {
		return nil
	}

	if err := r.projectRepo.SetCounters(project.ProjectNo, cat, counts.Total, counts.Completed); err != nil {
		return err
	}

	r.logger.Warn("repaired counter drift",
		zap.String("project_no", project.ProjectNo),
		zap.String("category", string(cat)),
		zap.Int("stored_total", storedTotal),
		zap.Int64("actual_total", counts.Total),
		zap.Int("stored_completed", storedCompleted),
		zap.Int64("actual_completed", counts.Completed),
	)
	return nil
}

func (r *ReconcileRoutine) Cancel() {
}
