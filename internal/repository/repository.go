package repository

import (
	"gorm.io/gorm"

	"coride/internal/model"
)

// ErrNotFound is returned by every repository when a record does not exist.
var ErrNotFound = gorm.ErrRecordNotFound

// Repositories bundles the data access interfaces the services depend on.
type Repositories struct {
	Users         UserRepository
	Rides         RideRepository
	RideRequests  RideRequestRepository
	Messages      MessageRepository
	Notifications NotificationRepository
	Stats         StatsRepository
}

// NewGormRepositories builds SQL-backed repositories over db.
func NewGormRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(db),
		Rides:         NewRideRepository(db),
		RideRequests:  NewRideRequestRepository(db),
		Messages:      NewMessageRepository(db),
		Notifications: NewNotificationRepository(db),
		Stats:         NewStatsRepository(db),
	}
}

// Models lists every persisted model in migration order.
func Models() []interface{} {
	return []interface{}{
		&model.User{},
		&model.Ride{},
		&model.RideRequest{},
		&model.Message{},
		&model.Notification{},
		&model.RideStats{},
		&model.DepartmentStats{},
	}
}
