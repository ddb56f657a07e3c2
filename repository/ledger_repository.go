package repository

import (
	"time"

	"fabshop-api/models"

	"gorm.io/gorm"
)

type LedgerRepository interface {
	Create(entry *models.LedgerEntry) error
	GetByID(id string) (models.LedgerEntry, error)
	ListByProject(projectNo string) ([]models.LedgerEntry, error)
	Updates(id string, updates map[string]any) (int64, error)
	Delete(id string) (int64, error)
	// Decide moves a submitted entry to the given terminal status in one
	// conditional UPDATE. Zero rows affected means the entry is missing
	// or not in the submitted state.
	Decide(id, status, signedBy string, decidedAt time.Time) (int64, error)
}

type LedgerRepositoryImpl struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &LedgerRepositoryImpl{db: db}
}

func (r *LedgerRepositoryImpl) Create(entry *models.LedgerEntry) error {
	return r.db.Create(entry).Error
}

func (r *LedgerRepositoryImpl) GetByID(id string) (models.LedgerEntry, error) {
	var entry models.LedgerEntry
	result := r.db.Where("id = ?", id).First(&entry)
	if result.Error != nil {
		return models.LedgerEntry{}, result.Error
	}
	return entry, nil
}

func (r *LedgerRepositoryImpl) ListByProject(projectNo string) ([]models.LedgerEntry, error) {
	var entries []models.LedgerEntry
	query := r.db.Order("created_at")
	if projectNo != "" {
		query = query.Where("project_no = ?", projectNo)
	}
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *LedgerRepositoryImpl) Updates(id string, updates map[string]any) (int64, error) {
	result := r.db.Model(&models.LedgerEntry{}).Where("id = ?", id).Updates(updates)
	return result.RowsAffected, result.Error
}

func (r *LedgerRepositoryImpl) Delete(id string) (int64, error) {
	result := r.db.Where("id = ?", id).Delete(&models.LedgerEntry{})
	return result.RowsAffected, result.Error
}

func (r *LedgerRepositoryImpl) Decide(id, status, signedBy string, decidedAt time.Time) (int64, error) {
	result := r.db.Model(&models.LedgerEntry{}).
		Where("id = ? AND status = ?", id, models.LedgerStatusSubmitted).
		Updates(map[string]any{
			"status":     status,
			"signed_by":  signedBy,
			"decided_at": decidedAt,
		})
	return result.RowsAffected, result.Error
}
