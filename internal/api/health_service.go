package api

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// HealthService reports whether the database is reachable.
type HealthService struct {
	db *gorm.DB
}

type HealthServiceParams struct {
	fx.In
	DB *gorm.DB
}

func NewHealthService(params HealthServiceParams) *HealthService {
	return &HealthService{db: params.DB}
}

func (s *HealthService) IsReady() bool {
	sqlDB, err := s.db.DB()
	if err != nil {
		return false
	}
	return sqlDB.Ping() == nil
}
