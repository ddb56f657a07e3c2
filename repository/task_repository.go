package repository

import (
	"fabshop-api/models"

	"gorm.io/gorm"
)

// TaskCounts is one category's aggregate for a project.
type TaskCounts struct {
	Total     int64
	Completed int64
}

type TaskRepository interface {
	Create(cat models.Category, task *models.Task) error
	GetByID(cat models.Category, id uint) (models.Task, error)
	ListByProject(cat models.Category, projectNo string) ([]models.Task, error)
	Updates(cat models.Category, id uint, updates map[string]any) (int64, error)
	Delete(cat models.Category, id uint) (int64, error)
	DeleteByProject(cat models.Category, projectNo string) (int64, error)
	// CountByProject scans the category's task table for the project and
	// counts rows total and rows whose status is in completedStatuses
	// (matched case-insensitively).
	CountByProject(cat models.Category, projectNo string, completedStatuses []string) (TaskCounts, error)
}

type TaskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) table(cat models.Category) *gorm.DB {
	return r.db.Table(cat.TaskTable())
}

func (r *TaskRepositoryImpl) Create(cat models.Category, task *models.Task) error {
	return r.table(cat).Create(task).Error
}

func (r *TaskRepositoryImpl) GetByID(cat models.Category, id uint) (models.Task, error) {
	var task models.Task
	result := r.table(cat).Where("id = ?", id).First(&task)
	if result.Error != nil {
		return models.Task{}, result.Error
	}
	return task, nil
}

func (r *TaskRepositoryImpl) ListByProject(cat models.Category, projectNo string) ([]models.Task, error) {
	var tasks []models.Task
	query := r.table(cat).Order("id")
	if projectNo != "" {
		query = query.Where("project_no = ?", projectNo)
	}
	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepositoryImpl) Updates(cat models.Category, id uint, updates map[string]any) (int64, error) {
	result := r.table(cat).Where("id = ?", id).Updates(updates)
	return result.RowsAffected, result.Error
}

func (r *TaskRepositoryImpl) Delete(cat models.Category, id uint) (int64, error) {
	result := r.table(cat).Where("id = ?", id).Delete(&models.Task{})
	return result.RowsAffected, result.Error
}

func (r *TaskRepositoryImpl) DeleteByProject(cat models.Category, projectNo string) (int64, error) {
	result := r.table(cat).Where("project_no = ?", projectNo).Delete(&models.Task{})
	return result.RowsAffected, result.Error
}

func (r *TaskRepositoryImpl) CountByProject(cat models.Category, projectNo string, completedStatuses []string) (TaskCounts, error) {
	var counts TaskCounts
	if err := r.table(cat).
		Where("project_no = ?", projectNo).
		Count(&counts.Total).Error; err != nil {
		return TaskCounts{}, err
	}
	if err := r.table(cat).
		Where("project_no = ? AND LOWER(status) IN ?", projectNo, completedStatuses).
		Count(&counts.Completed).Error; err != nil {
		return TaskCounts{}, err
	}
	return counts, nil
}
