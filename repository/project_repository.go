package repository

import (
	"fabshop-api/models"

	"gorm.io/gorm"
)

type ProjectRepository interface {
	Create(project *models.Project) error
	GetByProjectNo(projectNo string) (models.Project, error)
	List() ([]models.Project, error)
	Updates(projectNo string, updates map[string]any) (int64, error)
	Delete(projectNo string) (int64, error)
	// AdjustCounter applies one +/- delta to a single counter column as
	// one atomic UPDATE. It reports the number of matched project rows;
	// zero means the project key did not resolve.
	AdjustCounter(projectNo string, cat models.Category, kind models.CounterKind, delta int) (int64, error)
	// SetCounters overwrites a category's counter pair, used by the
	// reconcile routine to repair drift.
	SetCounters(projectNo string, cat models.Category, total, completed int64) error
}

type ProjectRepositoryImpl struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &ProjectRepositoryImpl{db: db}
}

func (r *ProjectRepositoryImpl) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

func (r *ProjectRepositoryImpl) GetByProjectNo(projectNo string) (models.Project, error) {
	var project models.Project
	result := r.db.Where("project_no = ?", projectNo).First(&project)
	if result.Error != nil {
		return models.Project{}, result.Error
	}
	return project, nil
}

func (r *ProjectRepositoryImpl) List() ([]models.Project, error) {
	var projects []models.Project
	result := r.db.Order("project_no").Find(&projects)
	if result.Error != nil {
		return nil, result.Error
	}
	return projects, nil
}

func (r *ProjectRepositoryImpl) Updates(projectNo string, updates map[string]any) (int64, error) {
	result := r.db.Model(&models.Project{}).Where("project_no = ?", projectNo).Updates(updates)
	return result.RowsAffected, result.Error
}

func (r *ProjectRepositoryImpl) Delete(projectNo string) (int64, error) {
	result := r.db.Where("project_no = ?", projectNo).Delete(&models.Project{})
	return result.RowsAffected, result.Error
}

func (r *ProjectRepositoryImpl) AdjustCounter(projectNo string, cat models.Category, kind models.CounterKind, delta int) (int64, error) {
	// The column name comes from the closed category lookup, never from
	// request input. The increment is expressed inside the statement so
	// concurrent adjustments cannot lose updates.
	col := cat.CounterColumn(kind)
	result := r.db.Model(&models.Project{}).
		Where("project_no = ?", projectNo).
		UpdateColumn(col, gorm.Expr(col+" + ?", delta))
	return result.RowsAffected, result.Error
}

func (r *ProjectRepositoryImpl) SetCounters(projectNo string, cat models.Category, total, completed int64) error {
	result := r.db.Model(&models.Project{}).
		Where("project_no = ?", projectNo).
		UpdateColumns(map[string]any{
			cat.CounterColumn(models.CounterTotal):     total,
			cat.CounterColumn(models.CounterCompleted): completed,
		})
	return result.Error
}
