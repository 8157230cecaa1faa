package model

import "time"

// RequestStatus represents the state of a passenger's ride request.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusAccepted RequestStatus = "accepted"
	RequestStatusRejected RequestStatus = "rejected"
)

// RideRequest links a passenger to a ride they asked to join.
type RideRequest struct {
	ID          string        `json:"id" gorm:"size:64;primaryKey"`
	RideID      string        `json:"rideId" gorm:"size:64;not null;index"`
	PassengerID string        `json:"passengerId" gorm:"size:64;not null;index"`
	Status      RequestStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt   time.Time     `json:"createdAt"`

	// Relations
	Ride      *Ride `json:"ride,omitempty" gorm:"foreignKey:RideID"`
	Passenger *User `json:"passenger,omitempty" gorm:"foreignKey:PassengerID"`
}
