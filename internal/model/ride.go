package model

import "time"

// RideRecurrence tells whether a ride happens once or on a weekly schedule.
type RideRecurrence string

const (
	RecurrenceOneTime   RideRecurrence = "oneTime"
	RecurrenceRecurring RideRecurrence = "recurring"
)

// WeekDay is a working day a recurring ride runs on.
type WeekDay string

const (
	Monday    WeekDay = "monday"
	Tuesday   WeekDay = "tuesday"
	Wednesday WeekDay = "wednesday"
	Thursday  WeekDay = "thursday"
	Friday    WeekDay = "friday"
)

// WorkingDays lists every WeekDay in calendar order.
var WorkingDays = []WeekDay{Monday, Tuesday, Wednesday, Thursday, Friday}

// RideStatus represents the lifecycle state of a ride.
type RideStatus string

const (
	RideStatusActive    RideStatus = "active"
	RideStatusCompleted RideStatus = "completed"
	RideStatusCancelled RideStatus = "cancelled"
)

// Ride is a commute offer published by a driver.
type Ride struct {
	ID             string         `json:"id" gorm:"size:64;primaryKey"`
	DriverID       string         `json:"driverId" gorm:"size:64;not null;index"`
	StartLocation  string         `json:"startLocation" gorm:"size:255;not null"`
	EndLocation    string         `json:"endLocation" gorm:"size:255;not null"`
	DepartureTime  string         `json:"departureTime" gorm:"size:5;not null"` // HH:MM
	AvailableSeats int            `json:"availableSeats" gorm:"not null;default:0"`
	Recurrence     RideRecurrence `json:"recurrence" gorm:"type:varchar(20);not null"`
	RecurringDays  []WeekDay      `json:"recurringDays" gorm:"serializer:json"`
	Notes          string         `json:"notes,omitempty" gorm:"type:text"`
	Status         RideStatus     `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`
	Position       int            `json:"-" gorm:"not null;default:0;index"`
	CreatedAt      time.Time      `json:"createdAt"`

	// Relations
	Driver *User `json:"driver,omitempty" gorm:"foreignKey:DriverID"`
}

// IsActive reports whether the ride is still open for passengers.
func (r *Ride) IsActive() bool {
	return r.Status == RideStatusActive
}
