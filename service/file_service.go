package service

import (
	"errors"
	"fmt"

	"fabshop-api/models"
	"fabshop-api/repository"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrFileNotFound  = errors.New("file not found")
	ErrEmptyUpload   = errors.New("uploaded file is empty")
	ErrFileNameEmpty = errors.New("file name is required")
)

type FileUploadInput struct {
	ProjectNo   string
	TaskNo      *uint
	FileName    string
	ContentType string
	Data        []byte
}

type FileService interface {
	Upload(input FileUploadInput) (models.ProjectFile, error)
	// Get returns the full attachment including the BLOB, for download.
	Get(id string) (models.ProjectFile, error)
	ListByProject(projectNo string) ([]models.ProjectFile, error)
	Delete(id string) error
}

type FileServiceParams struct {
	fx.In

	FileRepo    repository.FileRepository
	ProjectRepo repository.ProjectRepository
	Logger      *zap.Logger
}

type FileServiceImpl struct {
	fileRepo    repository.FileRepository
	projectRepo repository.ProjectRepository
	logger      *zap.Logger
}

func NewFileService(params FileServiceParams) FileService {
	return &FileServiceImpl{
		fileRepo:    params.FileRepo,
		projectRepo: params.ProjectRepo,
		logger:      params.Logger,
	}
}

func (s *FileServiceImpl) Upload(input FileUploadInput) (models.ProjectFile, error) {
	if input.ProjectNo == "" {
		return models.ProjectFile{}, ErrProjectRequired
	}
	if input.FileName == "" {
		return models.ProjectFile{}, ErrFileNameEmpty
	}
	if len(input.Data) == 0 {
		return models.ProjectFile{}, ErrEmptyUpload
	}
	if _, err := s.projectRepo.GetByProjectNo(input.ProjectNo); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ProjectFile{}, ErrProjectNotFound
		}
		return models.ProjectFile{}, err
	}

	file := models.ProjectFile{
		ID:          uuid.New().String(),
		ProjectNo:   input.ProjectNo,
		TaskNo:      input.TaskNo,
		FileName:    input.FileName,
		ContentType: input.ContentType,
		Size:        int64(len(input.Data)),
		Data:        input.Data,
	}
	if err := s.fileRepo.Create(&file); err != nil {
		return models.ProjectFile{}, fmt.Errorf("failed to store file %s: %w", input.FileName, err)
	}

	s.logger.Info("stored project file",
		zap.String("file_id", file.ID),
		zap.String("project_no", file.ProjectNo),
		zap.Int64("size", file.Size),
	)

	// Listings never carry the BLOB; neither does the upload response.
	file.Data = nil
	return file, nil
}

func (s *FileServiceImpl) Get(id string) (models.ProjectFile, error) {
	file, err := s.fileRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ProjectFile{}, ErrFileNotFound
		}
		return models.ProjectFile{}, err
	}
	return file, nil
}

func (s *FileServiceImpl) ListByProject(projectNo string) ([]models.ProjectFile, error) {
	return s.fileRepo.ListByProject(projectNo)
}

func (s *FileServiceImpl) Delete(id string) error {
	rows, err := s.fileRepo.Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete file %s: %w", id, err)
	}
	if rows == 0 {
		return ErrFileNotFound
	}
	return nil
}
