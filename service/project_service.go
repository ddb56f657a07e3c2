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
	ErrProjectNotFound = errors.New("project not found")
	ErrProjectExists   = errors.New("project already exists")
)

type ProjectCreateInput struct {
	ProjectNo string     `json:"project_no"`
	Customer  string     `json:"customer"`
	Status    string     `json:"status"`
	Remarks   string     `json:"remarks"`
	OrderDate *time.Time `json:"order_date"`
	DueDate   *time.Time `json:"due_date"`
}

type ProjectUpdateInput struct {
	Customer  *string    `json:"customer"`
	Status    *string    `json:"status"`
	Remarks   *string    `json:"remarks"`
	OrderDate *time.Time `json:"order_date"`
	DueDate   *time.Time `json:"due_date"`
}

// ProjectWithCompletion is the list/detail view: the project row plus
// live per-category completion recomputed from the task tables.
type ProjectWithCompletion struct {
	models.Project
	Completion map[models.Category]CategoryCompletion `json:"completion"`
}

type ProjectService interface {
	Create(input ProjectCreateInput) (models.Project, error)
	Get(projectNo string) (ProjectWithCompletion, error)
	List() ([]ProjectWithCompletion, error)
	Update(projectNo string, input ProjectUpdateInput) (models.Project, error)
	// Delete removes the project row and then best-effort cascades to
	// the project's task rows and files.
	Delete(projectNo string) error
}

type ProjectServiceParams struct {
	fx.In

	ProjectRepo repository.ProjectRepository
	TaskRepo    repository.TaskRepository
	FileRepo    repository.FileRepository
	Completion  CompletionService
	Logger      *zap.Logger
}

type ProjectServiceImpl struct {
	projectRepo repository.ProjectRepository
	taskRepo    repository.TaskRepository
	fileRepo    repository.FileRepository
	completion  CompletionService
	logger      *zap.Logger
}

func NewProjectService(params ProjectServiceParams) ProjectService {
	return &ProjectServiceImpl{
		projectRepo: params.ProjectRepo,
		taskRepo:    params.TaskRepo,
		fileRepo:    params.FileRepo,
		completion:  params.Completion,
		logger:      params.Logger,
	}
}

func (s *ProjectServiceImpl) Create(input ProjectCreateInput) (models.Project, error) {
	if input.ProjectNo == "" {
		return models.Project{}, ErrProjectRequired
	}
	if _, err := s.projectRepo.GetByProjectNo(input.ProjectNo); err == nil {
		return models.Project{}, ErrProjectExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Project{}, err
	}

	status := input.Status
	if status == "" {
		status = models.ProjectStatusDraft
	}

	project := models.Project{
		ProjectNo: input.ProjectNo,
		Customer:  input.Customer,
		Status:    status,
		Remarks:   input.Remarks,
		OrderDate: input.OrderDate,
		DueDate:   input.DueDate,
	}
	if err := s.projectRepo.Create(&project); err != nil {
		return models.Project{}, fmt.Errorf("failed to create project %s: %w", input.ProjectNo, err)
	}
	return project, nil
}

func (s *ProjectServiceImpl) Get(projectNo string) (ProjectWithCompletion, error) {
	project, err := s.projectRepo.GetByProjectNo(projectNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProjectWithCompletion{}, ErrProjectNotFound
		}
		return ProjectWithCompletion{}, err
	}
	return s.withCompletion(project), nil
}

func (s *ProjectServiceImpl) List() ([]ProjectWithCompletion, error) {
	projects, err := s.projectRepo.List()
	if err != nil {
		return nil, err
	}
	views := make([]ProjectWithCompletion, 0, len(projects))
	for _, project := range projects {
		views = append(views, s.withCompletion(project))
	}
	return views, nil
}

// withCompletion degrades to an all-zero completion map when aggregation
// fails so one bad category scan cannot take down a whole list response.
func (s *ProjectServiceImpl) withCompletion(project models.Project) ProjectWithCompletion {
	completion, err := s.completion.Calculate(project.ProjectNo)
	if err != nil {
		s.logger.Error("failed to calculate completion",
			zap.String("project_no", project.ProjectNo),
			zap.Error(err),
		)
		completion = s.completion.Zeroed()
	}
	return ProjectWithCompletion{Project: project, Completion: completion}
}

func (s *ProjectServiceImpl) Update(projectNo string, input ProjectUpdateInput) (models.Project, error) {
	updates := make(map[string]any)
	if input.Customer != nil {
		updates["customer"] = *input.Customer
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}
	if input.Remarks != nil {
		updates["remarks"] = *input.Remarks
	}
	if input.OrderDate != nil {
		updates["order_date"] = *input.OrderDate
	}
	if input.DueDate != nil {
		updates["due_date"] = *input.DueDate
	}

	if len(updates) > 0 {
		rows, err := s.projectRepo.Updates(projectNo, updates)
		if err != nil {
			return models.Project{}, fmt.Errorf("failed to update project %s: %w", projectNo, err)
		}
		if rows == 0 {
			return models.Project{}, ErrProjectNotFound
		}
	}

	project, err := s.projectRepo.GetByProjectNo(projectNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Project{}, ErrProjectNotFound
		}
		return models.Project{}, err
	}
	return project, nil
}

func (s *ProjectServiceImpl) Delete(projectNo string) error {
	rows, err := s.projectRepo.Delete(projectNo)
	if err != nil {
		return fmt.Errorf("failed to delete project %s: %w", projectNo, err)
	}
	if rows == 0 {
		return ErrProjectNotFound
	}

	// Cascades are best-effort: the project row is already gone, so a
	// failure here only strands orphan rows that carry the dead key.
	for _, cat := range models.Categories {
		if _, err := s.taskRepo.DeleteByProject(cat, projectNo); err != nil {
			s.logger.Error("failed to cascade task deletion",
				zap.String("project_no", projectNo),
				zap.String("category", string(cat)),
				zap.Error(err),
			)
		}
	}
	if _, err := s.fileRepo.DeleteByProject(projectNo); err != nil {
		s.logger.Error("failed to cascade file deletion",
			zap.String("project_no", projectNo),
			zap.Error(err),
		)
	}

	return nil
}
