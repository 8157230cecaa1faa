package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "coride/internal/errors"
	"coride/internal/model"
	"coride/internal/repository"
)

// SearchCriteria selects rides by route and departure time.
type SearchCriteria struct {
	StartLocation string `json:"startLocation" query:"startLocation"`
	EndLocation   string `json:"endLocation" query:"endLocation" validate:"required,min=2"`
	Time          string `json:"time" query:"time" validate:"omitempty,hhmm"`
}

// Matches reports whether ride satisfies every supplied criterion.
func (c SearchCriteria) Matches(ride *model.Ride) bool {
	if !containsFold(ride.EndLocation, c.EndLocation) {
		return false
	}
	if c.StartLocation != "" && !containsFold(ride.StartLocation, c.StartLocation) {
		return false
	}
	if c.Time != "" && ride.DepartureTime != c.Time {
		return false
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// FilterRides returns the rides matching c in their original order.
func FilterRides(rides []model.Ride, c SearchCriteria) []model.Ride {
	matches := make([]model.Ride, 0)
	for i := range rides {
		if c.Matches(&rides[i]) {
			matches = append(matches, rides[i])
		}
	}
	return matches
}

// OfferRideInput describes a ride a driver wants to publish.
type OfferRideInput struct {
	StartLocation  string               `json:"startLocation" validate:"required,min=2"`
	EndLocation    string               `json:"endLocation" validate:"required,min=2"`
	DepartureTime  string               `json:"departureTime" validate:"required,hhmm"`
	AvailableSeats int                  `json:"availableSeats" validate:"min=1,max=8"`
	Recurrence     model.RideRecurrence `json:"recurrence" validate:"required,oneof=oneTime recurring"`
	RecurringDays  []model.WeekDay      `json:"recurringDays" validate:"omitempty,dive,oneof=monday tuesday wednesday thursday friday"`
	Notes          string               `json:"notes" validate:"max=500"`
}

// Dashboard is the home view of a user.
type Dashboard struct {
	UpcomingRides []model.Ride        `json:"upcomingRides"`
	Requests      []model.RideRequest `json:"requests"`
}

// RideService handles ride operations.
type RideService interface {
	List(ctx context.Context) ([]model.Ride, error)
	Get(ctx context.Context, id string) (*model.Ride, error)
	Search(ctx context.Context, criteria SearchCriteria) ([]model.Ride, error)
	Offer(ctx context.Context, driver *model.User, in OfferRideInput) (*model.Ride, error)
	RequestSeat(ctx context.Context, passenger *model.User, rideID string) (*model.RideRequest, error)
	Dashboard(ctx context.Context, user *model.User) (*Dashboard, error)
}

type rideService struct {
	rides         repository.RideRepository
	requests      repository.RideRequestRepository
	notifications NotificationService
	now           func() time.Time
}

// NewRideService creates a new ride service.
func NewRideService(
	rides repository.RideRepository,
	requests repository.RideRequestRepository,
	notifications NotificationService,
) RideService {
	return &rideService{
		rides:         rides,
		requests:      requests,
		notifications: notifications,
		now:           time.Now,
	}
}

func (s *rideService) List(ctx context.Context) ([]model.Ride, error) {
	rides, err := s.rides.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rides: %w", err)
	}
	return rides, nil
}

func (s *rideService) Get(ctx context.Context, id string) (*model.Ride, error) {
	ride, err := s.rides.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ErrRideNotFound
		}
		return nil, fmt.Errorf("find ride: %w", err)
	}
	return ride, nil
}

// Search returns the rides matching criteria. No match is not an error.
func (s *rideService) Search(ctx context.Context, criteria SearchCriteria) ([]model.Ride, error) {
	if err := check(&criteria); err != nil {
		return nil, err
	}
	rides, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterRides(rides, criteria), nil
}

// Offer publishes a new active ride driven by driver.
func (s *rideService) Offer(ctx context.Context, driver *model.User, in OfferRideInput) (*model.Ride, error) {
	if err := check(&in); err != nil {
		return nil, err
	}

	days := normalizeDays(in.RecurringDays)
	switch in.Recurrence {
	case model.RecurrenceRecurring:
		if len(days) == 0 {
			return nil, apperrors.NewValidationError("recurringDays", "select at least one day for recurring rides")
		}
	case model.RecurrenceOneTime:
		days = []model.WeekDay{}
	}

	ride := &model.Ride{
		ID:             model.NewID(model.RideIDPrefix),
		DriverID:       driver.ID,
		StartLocation:  in.StartLocation,
		EndLocation:    in.EndLocation,
		DepartureTime:  in.DepartureTime,
		AvailableSeats: in.AvailableSeats,
		Recurrence:     in.Recurrence,
		RecurringDays:  days,
		Notes:          in.Notes,
		Status:         model.RideStatusActive,
		CreatedAt:      s.now().UTC(),
	}
	if err := s.rides.Create(ctx, ride); err != nil {
		return nil, fmt.Errorf("create ride: %w", err)
	}
	ride.Driver = driver
	return ride, nil
}

// normalizeDays drops duplicates and returns days in calendar order.
func normalizeDays(days []model.WeekDay) []model.WeekDay {
	seen := make(map[model.WeekDay]bool, len(days))
	for _, d := range days {
		seen[d] = true
	}
	out := make([]model.WeekDay, 0, len(seen))
	for _, d := range model.WorkingDays {
		if seen[d] {
			out = append(out, d)
		}
	}
	return out
}

// RequestSeat records a pending request by passenger and notifies the driver.
func (s *rideService) RequestSeat(ctx context.Context, passenger *model.User, rideID string) (*model.RideRequest, error) {
	ride, err := s.Get(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.DriverID == passenger.ID {
		return nil, apperrors.ErrOwnRide
	}
	if !ride.IsActive() {
		return nil, apperrors.ErrRideNotActive
	}
	if ride.AvailableSeats <= 0 {
		return nil, apperrors.ErrNoSeats
	}

	_, err = s.requests.FindByRideAndPassenger(ctx, ride.ID, passenger.ID)
	if err == nil {
		return nil, apperrors.ErrAlreadyRequested
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("check existing request: %w", err)
	}

	request := &model.RideRequest{
		ID:          model.NewID(model.RequestIDPrefix),
		RideID:      ride.ID,
		PassengerID: passenger.ID,
		Status:      model.RequestStatusPending,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.requests.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("create ride request: %w", err)
	}
	request.Ride = ride
	request.Passenger = passenger

	s.notifications.Publish(ride.DriverID, NewNotification{
		Title:   "Ride Request",
		Message: fmt.Sprintf("%s has requested to join your ride to %s", passenger.Name, ride.EndLocation),
		Type:    model.NotificationInfo,
		Link:    "/rides",
	})
	return request, nil
}

// Dashboard lists the user's active rides as driver and the requests that
// concern them: their own, and pending ones on rides they drive.
func (s *rideService) Dashboard(ctx context.Context, user *model.User) (*Dashboard, error) {
	rides, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	requests, err := s.requests.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ride requests: %w", err)
	}

	d := &Dashboard{
		UpcomingRides: make([]model.Ride, 0),
		Requests:      make([]model.RideRequest, 0),
	}
	for _, r := range rides {
		if r.DriverID == user.ID && r.IsActive() {
			d.UpcomingRides = append(d.UpcomingRides, r)
		}
	}
	for _, req := range requests {
		drivesRide := req.Ride != nil && req.Ride.DriverID == user.ID
		if req.PassengerID == user.ID || (drivesRide && req.Status == model.RequestStatusPending) {
			d.Requests = append(d.Requests, req)
		}
	}
	return d, nil
}
