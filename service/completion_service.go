package service

import (
	"fmt"
	"math"

	"fabshop-api/models"
	"fabshop-api/repository"

	"go.uber.org/fx"
)

// CategoryCompletion is one category's completion figures for a project.
type CategoryCompletion struct {
	Completed  int64 `json:"completed"`
	Total      int64 `json:"total"`
	Percentage int   `json:"percentage"`
}

// CompletionService recomputes completion per category by scanning the
// task tables directly. It never reads or writes the projects table's
// counter columns, which makes it usable as a drift oracle against them.
type CompletionService interface {
	// Calculate is all-or-nothing: a failure on any category aborts the
	// whole aggregation for the project.
	Calculate(projectNo string) (map[models.Category]CategoryCompletion, error)
	// Zeroed returns an all-zero completion map, the degraded form list
	// callers fall back to when Calculate fails.
	Zeroed() map[models.Category]CategoryCompletion
}

type CompletionServiceParams struct {
	fx.In

	TaskRepo repository.TaskRepository
}

type CompletionServiceImpl struct {
	taskRepo repository.TaskRepository
}

func NewCompletionService(params CompletionServiceParams) CompletionService {
	return &CompletionServiceImpl{taskRepo: params.TaskRepo}
}

func (s *CompletionServiceImpl) Calculate(projectNo string) (map[models.Category]CategoryCompletion, error) {
	completion := make(map[models.Category]CategoryCompletion, len(models.Categories))
	for _, cat := range models.Categories {
		counts, err := s.taskRepo.CountByProject(cat, projectNo, models.CompletionStatuses)
		if err != nil {
			return nil, fmt.Errorf("failed to aggregate %s tasks for project %s: %w", cat, projectNo, err)
		}
		completion[cat] = CategoryCompletion{
			Completed:  counts.Completed,
			Total:      counts.Total,
			Percentage: percentage(counts.Completed, counts.Total),
		}
	}
	return completion, nil
}

func (s *CompletionServiceImpl) Zeroed() map[models.Category]CategoryCompletion {
	completion := make(map[models.Category]CategoryCompletion, len(models.Categories))
	for _, cat := range models.Categories {
		completion[cat] = CategoryCompletion{}
	}
	return completion
}

// percentage rounds half-up: 1/3 -> 33, 2/3 -> 67.
func percentage(completed, total int64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) * 100 / float64(total)))
}
