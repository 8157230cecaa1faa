package repository

import (
	"context"

	"gorm.io/gorm"

	"coride/internal/model"
)

// RideRequestRepository defines ride request persistence operations.
type RideRequestRepository interface {
	// List returns every request with its ride (and driver) and passenger.
	List(ctx context.Context) ([]model.RideRequest, error)
	FindByRideAndPassenger(ctx context.Context, rideID, passengerID string) (*model.RideRequest, error)
	Create(ctx context.Context, request *model.RideRequest) error
}

type rideRequestRepository struct {
	db *gorm.DB
}

// NewRideRequestRepository creates a new ride request repository.
func NewRideRequestRepository(db *gorm.DB) RideRequestRepository {
	return &rideRequestRepository{db: db}
}

func (r *rideRequestRepository) List(ctx context.Context) ([]model.RideRequest, error) {
	var requests []model.RideRequest
	if err := r.db.WithContext(ctx).
		Preload("Ride").Preload("Ride.Driver").Preload("Passenger").
		Order("created_at").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *rideRequestRepository) FindByRideAndPassenger(ctx context.Context, rideID, passengerID string) (*model.RideRequest, error) {
	var request model.RideRequest
	if err := r.db.WithContext(ctx).
		Where("ride_id = ? AND passenger_id = ?", rideID, passengerID).
		First(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *rideRequestRepository) Create(ctx context.Context, request *model.RideRequest) error {
	return r.db.WithContext(ctx).Omit("Ride", "Passenger").Create(request).Error
}
