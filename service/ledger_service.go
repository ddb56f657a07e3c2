package service

import (
	"errors"
	"fmt"
	"time"

	"fabshop-api/models"
	"fabshop-api/repository"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrLedgerEntryNotFound = errors.New("ledger entry not found")
	ErrLedgerNotSubmitted  = errors.New("ledger entry is not awaiting approval")
	ErrSignerRequired      = errors.New("signed_by is required")
	ErrInvalidLedgerStatus = errors.New("invalid ledger status")
)

type LedgerCreateInput struct {
	ProjectNo string         `json:"project_no"`
	Title     string         `json:"title"`
	Amount    float64        `json:"amount"`
	Status    string         `json:"status"`
	Metadata  datatypes.JSON `json:"metadata"`
}

type LedgerUpdateInput struct {
	Title    *string         `json:"title"`
	Amount   *float64        `json:"amount"`
	Status   *string         `json:"status"`
	Metadata *datatypes.JSON `json:"metadata"`
}

// LedgerService runs the job-ledger approval workflow. Entries are
// drafted, submitted, and then approved or rejected exactly once; the
// decision is a single conditional UPDATE so two concurrent approvers
// cannot both win.
type LedgerService interface {
	Create(input LedgerCreateInput) (models.LedgerEntry, error)
	Get(id string) (models.LedgerEntry, error)
	ListByProject(projectNo string) ([]models.LedgerEntry, error)
	Update(id string, input LedgerUpdateInput) (models.LedgerEntry, error)
	Approve(id, signedBy string) (models.LedgerEntry, error)
	Reject(id, signedBy string) (models.LedgerEntry, error)
	Delete(id string) error
}

type LedgerServiceParams struct {
	fx.In

	LedgerRepo  repository.LedgerRepository
	ProjectRepo repository.ProjectRepository
	Logger      *zap.Logger
}

type LedgerServiceImpl struct {
	ledgerRepo  repository.LedgerRepository
	projectRepo repository.ProjectRepository
	logger      *zap.Logger
}

func NewLedgerService(params LedgerServiceParams) LedgerService {
	return &LedgerServiceImpl{
		ledgerRepo:  params.LedgerRepo,
		projectRepo: params.ProjectRepo,
		logger:      params.Logger,
	}
}

func validLedgerStatus(status string) bool {
	switch status {
	case models.LedgerStatusDraft, models.LedgerStatusSubmitted,
		models.LedgerStatusApproved, models.LedgerStatusRejected:
		return true
	}
	return false
}

func (s *LedgerServiceImpl) Create(input LedgerCreateInput) (models.LedgerEntry, error) {
	if input.ProjectNo == "" {
		return models.LedgerEntry{}, ErrProjectRequired
	}
	if input.Title == "" {
		return models.LedgerEntry{}, ErrTitleRequired
	}
	if _, err := s.projectRepo.GetByProjectNo(input.ProjectNo); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.LedgerEntry{}, ErrProjectNotFound
		}
		return models.LedgerEntry{}, err
	}

	status := input.Status
	if status == "" {
		status = models.LedgerStatusDraft
	}
	if status != models.LedgerStatusDraft && status != models.LedgerStatusSubmitted {
		return models.LedgerEntry{}, ErrInvalidLedgerStatus
	}

	entry := models.LedgerEntry{
		ID:        uuid.New().String(),
		ProjectNo: input.ProjectNo,
		Title:     input.Title,
		Amount:    input.Amount,
		Status:    status,
		Metadata:  input.Metadata,
	}
	if err := s.ledgerRepo.Create(&entry); err != nil {
		return models.LedgerEntry{}, fmt.Errorf("failed to create ledger entry: %w", err)
	}
	return entry, nil
}

func (s *LedgerServiceImpl) Get(id string) (models.LedgerEntry, error) {
	entry, err := s.ledgerRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.LedgerEntry{}, ErrLedgerEntryNotFound
		}
		return models.LedgerEntry{}, err
	}
	return entry, nil
}

func (s *LedgerServiceImpl) ListByProject(projectNo string) ([]models.LedgerEntry, error) {
	return s.ledgerRepo.ListByProject(projectNo)
}

func (s *LedgerServiceImpl) Update(id string, input LedgerUpdateInput) (models.LedgerEntry, error) {
	entry, err := s.Get(id)
	if err != nil {
		return models.LedgerEntry{}, err
	}

	updates := make(map[string]any)
	if input.Title != nil {
		if *input.Title == "" {
			return models.LedgerEntry{}, ErrTitleRequired
		}
		updates["title"] = *input.Title
	}
	if input.Amount != nil {
		updates["amount"] = *input.Amount
	}
	if input.Status != nil {
		// A PATCH may only move an entry between draft and submitted;
		// terminal states are reached through Approve/Reject.
		if *input.Status != models.LedgerStatusDraft && *input.Status != models.LedgerStatusSubmitted {
			return models.LedgerEntry{}, ErrInvalidLedgerStatus
		}
		if entry.Status == models.LedgerStatusApproved || entry.Status == models.LedgerStatusRejected {
			return models.LedgerEntry{}, ErrLedgerNotSubmitted
		}
		updates["status"] = *input.Status
	}
	if input.Metadata != nil {
		updates["metadata"] = *input.Metadata
	}

	if len(updates) > 0 {
		if _, err := s.ledgerRepo.Updates(id, updates); err != nil {
			return models.LedgerEntry{}, fmt.Errorf("failed to update ledger entry %s: %w", id, err)
		}
	}
	return s.Get(id)
}

func (s *LedgerServiceImpl) Approve(id, signedBy string) (models.LedgerEntry, error) {
	return s.decide(id, models.LedgerStatusApproved, signedBy)
}

func (s *LedgerServiceImpl) Reject(id, signedBy string) (models.LedgerEntry, error) {
	return s.decide(id, models.LedgerStatusRejected, signedBy)
}

func (s *LedgerServiceImpl) decide(id, status, signedBy string) (models.LedgerEntry, error) {
	if signedBy == "" {
		return models.LedgerEntry{}, ErrSignerRequired
	}

	rows, err := s.ledgerRepo.Decide(id, status, signedBy, time.Now().UTC())
	if err != nil {
		return models.LedgerEntry{}, fmt.Errorf("failed to decide ledger entry %s: %w", id, err)
	}
	if rows == 0 {
		// Distinguish a missing entry from one in the wrong state.
		if _, err := s.Get(id); err != nil {
			return models.LedgerEntry{}, err
		}
		return models.LedgerEntry{}, ErrLedgerNotSubmitted
	}

	s.logger.Info("ledger entry decided",
		zap.String("entry_id", id),
		zap.String("status", status),
		zap.String("signed_by", signedBy),
	)
	return s.Get(id)
}

func (s *LedgerServiceImpl) Delete(id string) error {
	rows, err := s.ledgerRepo.Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete ledger entry %s: %w", id, err)
	}
	if rows == 0 {
		return ErrLedgerEntryNotFound
	}
	return nil
}
