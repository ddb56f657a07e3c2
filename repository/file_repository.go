package repository

import (
	"fabshop-api/models"

	"gorm.io/gorm"
)

type FileRepository interface {
	Create(file *models.ProjectFile) error
	// GetByID loads the full row including the BLOB.
	GetByID(id string) (models.ProjectFile, error)
	// ListByProject returns metadata only; the data column is omitted.
	ListByProject(projectNo string) ([]models.ProjectFile, error)
	Delete(id string) (int64, error)
	DeleteByProject(projectNo string) (int64, error)
}

type FileRepositoryImpl struct {
	db *gorm.DB
}

func NewFileRepository(db *gorm.DB) FileRepository {
	return &FileRepositoryImpl{db: db}
}

func (r *FileRepositoryImpl) Create(file *models.ProjectFile) error {
	return r.db.Create(file).Error
}

func (r *FileRepositoryImpl) GetByID(id string) (models.ProjectFile, error) {
	var file models.ProjectFile
	result := r.db.Where("id = ?", id).First(&file)
	if result.Error != nil {
		return models.ProjectFile{}, result.Error
	}
	return file, nil
}

func (r *FileRepositoryImpl) ListByProject(projectNo string) ([]models.ProjectFile, error) {
	var files []models.ProjectFile
	result := r.db.
		Select("id", "project_no", "task_no", "file_name", "content_type", "size", "created_at").
		Where("project_no = ?", projectNo).
		Order("created_at").
		Find(&files)
	if result.Error != nil {
		return nil, result.Error
	}
	return files, nil
}

func (r *FileRepositoryImpl) Delete(id string) (int64, error) {
	result := r.db.Where("id = ?", id).Delete(&models.ProjectFile{})
	return result.RowsAffected, result.Error
}

func (r *FileRepositoryImpl) DeleteByProject(projectNo string) (int64, error) {
	result := r.db.Where("project_no = ?", projectNo).Delete(&models.ProjectFile{})
	return result.RowsAffected, result.Error
}
