package repository

import (
	"context"

	"gorm.io/gorm"

	"coride/internal/model"
)

// RideRepository defines ride persistence operations.
type RideRepository interface {
	// List returns every ride, with its driver, in publication order.
	List(ctx context.Context) ([]model.Ride, error)
	FindByID(ctx context.Context, id string) (*model.Ride, error)
	Create(ctx context.Context, ride *model.Ride) error
}

type rideRepository struct {
	db *gorm.DB
}

// NewRideRepository creates a new ride repository.
func NewRideRepository(db *gorm.DB) RideRepository {
	return &rideRepository{db: db}
}

// List lists all rides ordered by position.
func (r *rideRepository) List(ctx context.Context) ([]model.Ride, error) {
	var rides []model.Ride
	if err := r.db.WithContext(ctx).Preload("Driver").
		Order("position").Order("created_at").
		Find(&rides).Error; err != nil {
		return nil, err
	}
	return rides, nil
}

// FindByID finds a ride by ID.
func (r *rideRepository) FindByID(ctx context.Context, id string) (*model.Ride, error) {
	var ride model.Ride
	if err := r.db.WithContext(ctx).Preload("Driver").
		Where("id = ?", id).First(&ride).Error; err != nil {
		return nil, err
	}
	return &ride, nil
}

// Create appends a new ride after the existing ones.
func (r *rideRepository) Create(ctx context.Context, ride *model.Ride) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var last int
		if err := tx.Model(&model.Ride{}).Select("COALESCE(MAX(position), 0)").Scan(&last).Error; err != nil {
			return err
		}
		ride.Position = last + 1
		return tx.Omit("Driver").Create(ride).Error
	})
}
