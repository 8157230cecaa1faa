package repository

import (
	"context"

	"gorm.io/gorm"

	"coride/internal/model"
)

// StatsRepository reads the sustainability figures shown to administrators.
type StatsRepository interface {
	RideStats(ctx context.Context) (*model.RideStats, error)
	DepartmentStats(ctx context.Context) ([]model.DepartmentStats, error)
}

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new stats repository.
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) RideStats(ctx context.Context) (*model.RideStats, error) {
	var stats model.RideStats
	if err := r.db.WithContext(ctx).Order("id").First(&stats).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *statsRepository) DepartmentStats(ctx context.Context) ([]model.DepartmentStats, error) {
	var stats []model.DepartmentStats
	if err := r.db.WithContext(ctx).Order("position").Find(&stats).Error; err != nil {
		return nil, err
	}
	return stats, nil
}
