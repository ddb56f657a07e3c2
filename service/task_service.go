package service

import (
	"errors"
	"fmt"
	"time"

	"fabshop-api/models"
	"fabshop-api/repository"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrTitleRequired   = errors.New("title is required")
	ErrProjectRequired = errors.New("project_no is required")
)

type TaskCreateInput struct {
	ProjectNo     string     `json:"project_no"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Priority      string     `json:"priority"`
	Status        string     `json:"status"`
	DueDate       *time.Time `json:"due_date"`
	ApproveStatus string     `json:"approve_status"`
}

// TaskUpdateInput carries a partial update; nil fields keep their stored
// values, which also makes them inherit the previous value for counter
// delta purposes.
type TaskUpdateInput struct {
	ProjectNo     *string    `json:"project_no"`
	Title         *string    `json:"title"`
	Description   *string    `json:"description"`
	Priority      *string    `json:"priority"`
	Status        *string    `json:"status"`
	DueDate       *time.Time `json:"due_date"`
	ApproveStatus *string    `json:"approve_status"`
}

// TaskService owns the task lifecycle for every category. The task row
// mutation is the operation of record: if it fails the request fails and
// no counters move. Counter adjustments run after the row mutation and
// are never fatal.
type TaskService interface {
	Create(cat models.Category, input TaskCreateInput) (models.Task, error)
	Get(cat models.Category, id uint) (models.Task, error)
	ListByProject(cat models.Category, projectNo string) ([]models.Task, error)
	Update(cat models.Category, id uint, input TaskUpdateInput) (models.Task, error)
	Delete(cat models.Category, id uint) error
}

type TaskServiceParams struct {
	fx.In

	TaskRepo repository.TaskRepository
	Counters CounterService
	Logger   *zap.Logger
}

type TaskServiceImpl struct {
	taskRepo repository.TaskRepository
	counters CounterService
	logger   *zap.Logger
}

func NewTaskService(params TaskServiceParams) TaskService {
	return &TaskServiceImpl{
		taskRepo: params.TaskRepo,
		counters: params.Counters,
		logger:   params.Logger,
	}
}

func (s *TaskServiceImpl) Create(cat models.Category, input TaskCreateInput) (models.Task, error) {
	if input.ProjectNo == "" {
		return models.Task{}, ErrProjectRequired
	}
	if input.Title == "" {
		return models.Task{}, ErrTitleRequired
	}

	status := input.Status
	if status == "" {
		status = models.DefaultTaskStatus
	}

	task := models.Task{
		ProjectNo:     input.ProjectNo,
		Title:         input.Title,
		Description:   input.Description,
		Priority:      input.Priority,
		Status:        status,
		DueDate:       input.DueDate,
		ApproveStatus: input.ApproveStatus,
	}
	if err := s.taskRepo.Create(cat, &task); err != nil {
		return models.Task{}, fmt.Errorf("failed to create %s task: %w", cat, err)
	}

	s.counters.Adjust(task.ProjectNo, cat, models.CounterTotal, +1)
	if models.IsCompleted(task.Status) {
		s.counters.Adjust(task.ProjectNo, cat, models.CounterCompleted, +1)
	}

	return task, nil
}

func (s *TaskServiceImpl) Get(cat models.Category, id uint) (models.Task, error) {
	task, err := s.taskRepo.GetByID(cat, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, ErrTaskNotFound
		}
		return models.Task{}, err
	}
	return task, nil
}

func (s *TaskServiceImpl) ListByProject(cat models.Category, projectNo string) ([]models.Task, error) {
	return s.taskRepo.ListByProject(cat, projectNo)
}

func (s *TaskServiceImpl) Update(cat models.Category, id uint, input TaskUpdateInput) (models.Task, error) {
	old, err := s.Get(cat, id)
	if err != nil {
		return models.Task{}, err
	}

	updates := make(map[string]any)
	if input.ProjectNo != nil {
		if *input.ProjectNo == "" {
			return models.Task{}, ErrProjectRequired
		}
		updates["project_no"] = *input.ProjectNo
	}
	if input.Title != nil {
		if *input.Title == "" {
			return models.Task{}, ErrTitleRequired
		}
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Priority != nil {
		updates["priority"] = *input.Priority
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}
	if input.DueDate != nil {
		updates["due_date"] = *input.DueDate
	}
	if input.ApproveStatus != nil {
		updates["approve_status"] = *input.ApproveStatus
	}

	if len(updates) > 0 {
		if _, err := s.taskRepo.Updates(cat, id, updates); err != nil {
			return models.Task{}, fmt.Errorf("failed to update %s task %d: %w", cat, id, err)
		}
	}

	newStatus := old.Status
	if input.Status != nil {
		newStatus = *input.Status
	}
	newProject := old.ProjectNo
	if input.ProjectNo != nil {
		newProject = *input.ProjectNo
	}

	s.applyUpdateDeltas(cat, old, newProject, newStatus)

	return s.Get(cat, id)
}

// applyUpdateDeltas derives counter deltas from the task's state before
// and after the mutation. A project move re-homes the task's counter
// contribution wholesale; otherwise only a status flip across the
// completed boundary moves the completed counter.
func (s *TaskServiceImpl) applyUpdateDeltas(cat models.Category, old models.Task, newProject, newStatus string) {
	oldCompleted := models.IsCompleted(old.Status)
	newCompleted := models.IsCompleted(newStatus)

	if newProject != old.ProjectNo {
		s.counters.Adjust(old.ProjectNo, cat, models.CounterTotal, -1)
		if oldCompleted {
			s.counters.Adjust(old.ProjectNo, cat, models.CounterCompleted, -1)
		}
		s.counters.Adjust(newProject, cat, models.CounterTotal, +1)
		if newCompleted {
			s.counters.Adjust(newProject, cat, models.CounterCompleted, +1)
		}
		return
	}

	switch {
	case !oldCompleted && newCompleted:
		s.counters.Adjust(old.ProjectNo, cat, models.CounterCompleted, +1)
	case oldCompleted && !newCompleted:
		s.counters.Adjust(old.ProjectNo, cat, models.CounterCompleted, -1)
	}
}

func (s *TaskServiceImpl) Delete(cat models.Category, id uint) error {
	old, err := s.Get(cat, id)
	if err != nil {
		return err
	}

	rows, err := s.taskRepo.Delete(cat, id)
	if err != nil {
		return fmt.Errorf("failed to delete %s task %d: %w", cat, id, err)
	}
	if rows == 0 {
		return ErrTaskNotFound
	}

	s.counters.Adjust(old.ProjectNo, cat, models.CounterTotal, -1)
	if models.IsCompleted(old.Status) {
		s.counters.Adjust(old.ProjectNo, cat, models.CounterCompleted, -1)
	}

	return nil
}
