// Package fixture holds the sample dataset that stands in for a real backend.
package fixture

import (
	"time"

	"coride/internal/model"
)

// DefaultOrganization is the organization assigned to every demo account.
const DefaultOrganization = "Demo Company"

// Dataset is a complete, independent copy of the sample records.
type Dataset struct {
	Users           []model.User
	Rides           []model.Ride
	RideRequests    []model.RideRequest
	Messages        []model.Message
	Notifications   []model.Notification
	RideStats       model.RideStats
	DepartmentStats []model.DepartmentStats
}

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// Load returns a fresh copy of the sample dataset. Callers may mutate it freely.
func Load() *Dataset {
	users := []model.User{
		{
			ID:           "user-1",
			Email:        "admin@coride.com",
			Name:         "Admin User",
			Role:         model.RoleAdmin,
			Organization: DefaultOrganization,
			Location:     "Sidi Maarouf",
			CreatedAt:    ts("2023-01-15T08:00:00Z"),
		},
		{
			ID:           "user-2",
			Email:        "sara@coride.com",
			Name:         "Sara El Amrani",
			Role:         model.RoleUser,
			Organization: DefaultOrganization,
			Location:     "Sidi Maarouf",
			CreatedAt:    ts("2023-01-20T10:30:00Z"),
		},
		{
			ID:           "user-3",
			Email:        "karim@coride.com",
			Name:         "Karim Benali",
			Role:         model.RoleUser,
			Organization: DefaultOrganization,
			Location:     "Derb Ghallef",
			CreatedAt:    ts("2023-02-05T14:15:00Z"),
		},
		{
			ID:           "user-4",
			Email:        "leila@coride.com",
			Name:         "Leila Tazi",
			Role:         model.RoleUser,
			Organization: DefaultOrganization,
			Location:     "Maarif",
			CreatedAt:    ts("2023-02-10T09:45:00Z"),
		},
	}

	rides := []model.Ride{
		{
			ID:             "ride-1",
			DriverID:       "user-2",
			StartLocation:  "Sidi Maarouf",
			EndLocation:    "Derb Ghallef",
			DepartureTime:  "17:00",
			AvailableSeats: 3,
			Recurrence:     model.RecurrenceRecurring,
			RecurringDays:  []model.WeekDay{model.Monday, model.Tuesday, model.Wednesday, model.Thursday},
			Notes:          "I leave from the main entrance of the business center",
			Status:         model.RideStatusActive,
			Position:       1,
			CreatedAt:      ts("2023-03-01T11:30:00Z"),
		},
		{
			ID:             "ride-2",
			DriverID:       "user-3",
			StartLocation:  "Derb Ghallef",
			EndLocation:    "Sidi Maarouf",
			DepartureTime:  "08:30",
			AvailableSeats: 2,
			Recurrence:     model.RecurrenceRecurring,
			RecurringDays:  []model.WeekDay{model.Monday, model.Wednesday, model.Friday},
			Status:         model.RideStatusActive,
			Position:       2,
			CreatedAt:      ts("2023-03-02T10:15:00Z"),
		},
		{
			ID:             "ride-3",
			DriverID:       "user-4",
			StartLocation:  "Maarif",
			EndLocation:    "Sidi Maarouf",
			DepartureTime:  "08:45",
			AvailableSeats: 4,
			Recurrence:     model.RecurrenceOneTime,
			RecurringDays:  []model.WeekDay{},
			Notes:          "One-time ride this Friday",
			Status:         model.RideStatusActive,
			Position:       3,
			CreatedAt:      ts("2023-03-05T16:45:00Z"),
		},
	}

	requests := []model.RideRequest{
		{ID: "request-1", RideID: "ride-1", PassengerID: "user-3", Status: model.RequestStatusAccepted, CreatedAt: ts("2023-03-02T14:30:00Z")},
		{ID: "request-2", RideID: "ride-1", PassengerID: "user-4", Status: model.RequestStatusPending, CreatedAt: ts("2023-03-02T15:45:00Z")},
		{ID: "request-3", RideID: "ride-2", PassengerID: "user-2", Status: model.RequestStatusRejected, CreatedAt: ts("2023-03-03T09:15:00Z")},
	}

	messages := []model.Message{
		{
			ID:         "message-1",
			SenderID:   "user-2",
			ReceiverID: "user-3",
			RideID:     "ride-1",
			Content:    "Hi! I've accepted your ride request. We'll meet at the main entrance.",
			Read:       true,
			CreatedAt:  ts("2023-03-02T14:45:00Z"),
		},
		{
			ID:         "message-2",
			SenderID:   "user-3",
			ReceiverID: "user-2",
			RideID:     "ride-1",
			Content:    "Great, thanks! What color is your car?",
			Read:       true,
			CreatedAt:  ts("2023-03-02T14:50:00Z"),
		},
		{
			ID:         "message-3",
			SenderID:   "user-2",
			ReceiverID: "user-3",
			RideID:     "ride-1",
			Content:    "It's a blue Toyota. I'll be there at 16:55.",
			Read:       false,
			CreatedAt:  ts("2023-03-02T14:55:00Z"),
		},
	}

	notifications := []model.Notification{
		{
			ID:        "notification-1",
			UserID:    "user-2",
			Title:     "Ride Request",
			Message:   "Karim Benali has requested to join your ride to Derb Ghallef",
			Type:      model.NotificationInfo,
			Read:      true,
			Link:      "/rides",
			CreatedAt: ts("2023-03-02T14:30:00Z"),
		},
		{
			ID:        "notification-2",
			UserID:    "user-2",
			Title:     "Ride Request",
			Message:   "Leila Tazi has requested to join your ride to Derb Ghallef",
			Type:      model.NotificationInfo,
			Read:      false,
			Link:      "/rides",
			CreatedAt: ts("2023-03-02T15:45:00Z"),
		},
		{
			ID:        "notification-3",
			UserID:    "user-3",
			Title:     "Request Accepted",
			Message:   "Sara El Amrani has accepted your ride request",
			Type:      model.NotificationSuccess,
			Read:      true,
			Link:      "/rides",
			CreatedAt: ts("2023-03-02T14:45:00Z"),
		},
		{
			ID:        "notification-4",
			UserID:    "user-3",
			Title:     "New Message",
			Message:   "You have received a new message from Sara El Amrani",
			Type:      model.NotificationInfo,
			Read:      false,
			Link:      "/messages",
			CreatedAt: ts("2023-03-02T14:55:00Z"),
		},
	}

	return &Dataset{
		Users:         users,
		Rides:         rides,
		RideRequests:  requests,
		Messages:      messages,
		Notifications: notifications,
		RideStats: model.RideStats{
			ID:              1,
			TotalRides:      128,
			ActiveUsers:     43,
			TotalKilometers: 2567,
			CO2Saved:        385,
		},
		DepartmentStats: []model.DepartmentStats{
			{Department: "HR", RidesCount: 45, UsersCount: 12, CO2Saved: 120, Position: 1},
			{Department: "IT", RidesCount: 38, UsersCount: 15, CO2Saved: 102, Position: 2},
			{Department: "Finance", RidesCount: 25, UsersCount: 8, CO2Saved: 78, Position: 3},
			{Department: "Marketing", RidesCount: 20, UsersCount: 8, CO2Saved: 85, Position: 4},
		},
	}
}
