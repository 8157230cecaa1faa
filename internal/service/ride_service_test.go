package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "coride/internal/errors"
	"coride/internal/fixture"
	"coride/internal/model"
	"coride/internal/repository"
)

// MockRideRepository is a mock implementation of RideRepository.
type MockRideRepository struct {
	mock.Mock
}

func (m *MockRideRepository) List(ctx context.Context) ([]model.Ride, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Ride), args.Error(1)
}

func (m *MockRideRepository) FindByID(ctx context.Context, id string) (*model.Ride, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ride), args.Error(1)
}

func (m *MockRideRepository) Create(ctx context.Context, ride *model.Ride) error {
	args := m.Called(ctx, ride)
	return args.Error(0)
}

func rideIDs(rides []model.Ride) []string {
	ids := make([]string, 0, len(rides))
	for _, r := range rides {
		ids = append(ids, r.ID)
	}
	return ids
}

func newRideFixture() (RideService, *repository.Repositories, NotificationService) {
	repos := repository.NewMemoryRepositories(nil)
	notifications := NewNotificationService(repos.Notifications, time.Hour)
	return NewRideService(repos.Rides, repos.RideRequests, notifications), repos, notifications
}

func TestFilterRides(t *testing.T) {
	rides := fixture.Load().Rides

	tests := []struct {
		name     string
		criteria SearchCriteria
		expected []string
	}{
		{
			name:     "end location substring",
			criteria: SearchCriteria{EndLocation: "Maarouf"},
			expected: []string{"ride-2", "ride-3"},
		},
		{
			name:     "case insensitive",
			criteria: SearchCriteria{EndLocation: "sidi maarouf"},
			expected: []string{"ride-2", "ride-3"},
		},
		{
			name:     "no match",
			criteria: SearchCriteria{EndLocation: "zzz"},
			expected: []string{},
		},
		{
			name:     "start, end and time",
			criteria: SearchCriteria{StartLocation: "Maarif", EndLocation: "Sidi Maarouf", Time: "08:45"},
			expected: []string{"ride-3"},
		},
		{
			name:     "time must match exactly",
			criteria: SearchCriteria{EndLocation: "Sidi Maarouf", Time: "08:4"},
			expected: []string{},
		},
		{
			name:     "start location narrows",
			criteria: SearchCriteria{StartLocation: "derb", EndLocation: "ma"},
			expected: []string{"ride-2"},
		},
		{
			name:     "every ride",
			criteria: SearchCriteria{EndLocation: "a"},
			expected: []string{"ride-1", "ride-2", "ride-3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FilterRides(rides, tt.criteria)
			require.NotNil(t, result)
			assert.Equal(t, tt.expected, rideIDs(result))
		})
	}
}

func TestFilterRides_IsSubsetInOrder(t *testing.T) {
	rides := fixture.Load().Rides
	for _, end := range []string{"a", "Derb", "Sidi", "Maarif", "x"} {
		result := FilterRides(rides, SearchCriteria{EndLocation: end})
		last := -1
		for _, r := range result {
			idx := -1
			for i := range rides {
				if rides[i].ID == r.ID {
					idx = i
				}
			}
			require.NotEqual(t, -1, idx)
			assert.Greater(t, idx, last)
			last = idx
		}
	}
}

func TestRideService_Search(t *testing.T) {
	svc, _, _ := newRideFixture()
	ctx := context.Background()

	rides, err := svc.Search(ctx, SearchCriteria{EndLocation: "Maarouf"})
	require.NoError(t, err)
	assert.Equal(t, []string{"ride-2", "ride-3"}, rideIDs(rides))
	require.NotNil(t, rides[0].Driver)
	assert.Equal(t, "Karim Benali", rides[0].Driver.Name)

	rides, err = svc.Search(ctx, SearchCriteria{EndLocation: "zzz"})
	require.NoError(t, err)
	assert.NotNil(t, rides)
	assert.Empty(t, rides)

	invalid := []struct {
		name     string
		criteria SearchCriteria
		field    string
	}{
		{name: "end location too short", criteria: SearchCriteria{EndLocation: "M"}, field: "endLocation"},
		{name: "end location missing", criteria: SearchCriteria{StartLocation: "Maarif"}, field: "endLocation"},
		{name: "bad time", criteria: SearchCriteria{EndLocation: "Maarouf", Time: "8h45"}, field: "time"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Search(ctx, tt.criteria)
			var vErr *apperrors.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Contains(t, vErr.Fields, tt.field)
		})
	}
}

func TestRideService_Get(t *testing.T) {
	svc, _, _ := newRideFixture()

	ride, err := svc.Get(context.Background(), "ride-1")
	require.NoError(t, err)
	assert.Equal(t, "Sara El Amrani", ride.Driver.Name)

	_, err = svc.Get(context.Background(), "ride-404")
	assert.Equal(t, apperrors.ErrRideNotFound, err)
}

func TestRideService_Offer(t *testing.T) {
	ctx := context.Background()
	driver := &model.User{ID: "user-4", Name: "Leila Tazi"}
	valid := OfferRideInput{
		StartLocation:  "Maarif",
		EndLocation:    "Casa Port",
		DepartureTime:  "07:50",
		AvailableSeats: 3,
		Recurrence:     model.RecurrenceRecurring,
		RecurringDays:  []model.WeekDay{model.Friday, model.Monday, model.Friday},
	}

	t.Run("recurring ride", func(t *testing.T) {
		svc, _, _ := newRideFixture()
		ride, err := svc.Offer(ctx, driver, valid)
		require.NoError(t, err)
		assert.Contains(t, ride.ID, "ride-")
		assert.Equal(t, "user-4", ride.DriverID)
		assert.Equal(t, model.RideStatusActive, ride.Status)
		assert.Equal(t, []model.WeekDay{model.Monday, model.Friday}, ride.RecurringDays)
		assert.Same(t, driver, ride.Driver)

		all, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"ride-1", "ride-2", "ride-3", ride.ID}, rideIDs(all))
	})

	t.Run("one-time ride drops days", func(t *testing.T) {
		svc, _, _ := newRideFixture()
		in := valid
		in.Recurrence = model.RecurrenceOneTime
		ride, err := svc.Offer(ctx, driver, in)
		require.NoError(t, err)
		assert.NotNil(t, ride.RecurringDays)
		assert.Empty(t, ride.RecurringDays)
	})

	invalid := []struct {
		name   string
		mutate func(*OfferRideInput)
		field  string
	}{
		{name: "recurring without days", mutate: func(in *OfferRideInput) { in.RecurringDays = nil }, field: "recurringDays"},
		{name: "no seats", mutate: func(in *OfferRideInput) { in.AvailableSeats = 0 }, field: "availableSeats"},
		{name: "too many seats", mutate: func(in *OfferRideInput) { in.AvailableSeats = 9 }, field: "availableSeats"},
		{name: "bad time", mutate: func(in *OfferRideInput) { in.DepartureTime = "25:00" }, field: "departureTime"},
		{name: "bad recurrence", mutate: func(in *OfferRideInput) { in.Recurrence = "weekly" }, field: "recurrence"},
		{name: "weekend day", mutate: func(in *OfferRideInput) { in.RecurringDays = []model.WeekDay{"saturday"} }, field: "recurringDays[0]"},
		{name: "missing start", mutate: func(in *OfferRideInput) { in.StartLocation = "" }, field: "startLocation"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newRideFixture()
			in := valid
			in.RecurringDays = append([]model.WeekDay{}, valid.RecurringDays...)
			tt.mutate(&in)

			_, err := svc.Offer(ctx, driver, in)
			var vErr *apperrors.ValidationError
			require.True(t, errors.As(err, &vErr), "got %v", err)
			assert.Contains(t, vErr.Fields, tt.field)
		})
	}
}

func TestRideService_OfferRepositoryError(t *testing.T) {
	rides := new(MockRideRepository)
	rides.On("Create", mock.Anything, mock.AnythingOfType("*model.Ride")).Return(errors.New("db down"))
	svc := NewRideService(rides, nil, nil)

	_, err := svc.Offer(context.Background(), &model.User{ID: "user-2"}, OfferRideInput{
		StartLocation:  "Maarif",
		EndLocation:    "Sidi Maarouf",
		DepartureTime:  "08:00",
		AvailableSeats: 1,
		Recurrence:     model.RecurrenceOneTime,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create ride")
	rides.AssertExpectations(t)
}

func TestRideService_RequestSeat(t *testing.T) {
	ctx := context.Background()
	leila := &model.User{ID: "user-4", Name: "Leila Tazi"}
	admin := &model.User{ID: "user-1", Name: "Admin User"}

	tests := []struct {
		name          string
		passenger     *model.User
		rideID        string
		expectedError error
	}{
		{name: "new request", passenger: admin, rideID: "ride-2"},
		{name: "own ride", passenger: leila, rideID: "ride-3", expectedError: apperrors.ErrOwnRide},
		{name: "already requested", passenger: leila, rideID: "ride-1", expectedError: apperrors.ErrAlreadyRequested},
		{name: "unknown ride", passenger: leila, rideID: "ride-404", expectedError: apperrors.ErrRideNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newRideFixture()
			request, err := svc.RequestSeat(ctx, tt.passenger, tt.rideID)
			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, request)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, model.RequestStatusPending, request.Status)
			assert.Equal(t, tt.rideID, request.RideID)
			assert.Equal(t, tt.passenger.ID, request.PassengerID)
			assert.Contains(t, request.ID, "request-")
		})
	}

	t.Run("second request for same ride", func(t *testing.T) {
		svc, _, _ := newRideFixture()
		_, err := svc.RequestSeat(ctx, admin, "ride-3")
		require.NoError(t, err)
		_, err = svc.RequestSeat(ctx, admin, "ride-3")
		assert.Equal(t, apperrors.ErrAlreadyRequested, err)
	})
}

func TestRideService_RequestSeatUnavailableRide(t *testing.T) {
	ctx := context.Background()
	passenger := &model.User{ID: "user-1", Name: "Admin User"}

	tests := []struct {
		name          string
		ride          *model.Ride
		expectedError error
	}{
		{
			name:          "cancelled",
			ride:          &model.Ride{ID: "ride-9", DriverID: "user-2", AvailableSeats: 2, Status: model.RideStatusCancelled},
			expectedError: apperrors.ErrRideNotActive,
		},
		{
			name:          "full",
			ride:          &model.Ride{ID: "ride-9", DriverID: "user-2", AvailableSeats: 0, Status: model.RideStatusActive},
			expectedError: apperrors.ErrNoSeats,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rides := new(MockRideRepository)
			rides.On("FindByID", mock.Anything, "ride-9").Return(tt.ride, nil)
			svc := NewRideService(rides, nil, nil)

			_, err := svc.RequestSeat(ctx, passenger, "ride-9")
			assert.Equal(t, tt.expectedError, err)
			rides.AssertExpectations(t)
		})
	}
}

func TestRideService_RequestSeatNotifiesDriver(t *testing.T) {
	ctx := context.Background()
	svc, _, notifications := newRideFixture()

	karim := &model.User{ID: "user-3", Name: "Karim Benali"}
	driverStore, err := notifications.Store(ctx, "karim-session", karim)
	require.NoError(t, err)
	otherStore, err := notifications.Store(ctx, "sara-session", &model.User{ID: "user-2"})
	require.NoError(t, err)
	before := otherStore.UnreadCount()

	_, err = svc.RequestSeat(ctx, &model.User{ID: "user-1", Name: "Admin User"}, "ride-2")
	require.NoError(t, err)

	latest := driverStore.Notifications()[0]
	assert.Equal(t, "Ride Request", latest.Title)
	assert.Equal(t, "Admin User has requested to join your ride to Sidi Maarouf", latest.Message)
	assert.Equal(t, "/rides", latest.Link)
	assert.False(t, latest.Read)
	assert.Equal(t, before, otherStore.UnreadCount())
}

func TestRideService_Dashboard(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name             string
		user             *model.User
		expectedRides    []string
		expectedRequests []string
	}{
		{name: "driver with pending request", user: &model.User{ID: "user-2"}, expectedRides: []string{"ride-1"}, expectedRequests: []string{"request-2", "request-3"}},
		{name: "passenger", user: &model.User{ID: "user-3"}, expectedRides: []string{"ride-2"}, expectedRequests: []string{"request-1"}},
		{name: "no activity", user: &model.User{ID: "user-1"}, expectedRides: []string{}, expectedRequests: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newRideFixture()
			d, err := svc.Dashboard(ctx, tt.user)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedRides, rideIDs(d.UpcomingRides))

			ids := make([]string, 0, len(d.Requests))
			for _, r := range d.Requests {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.expectedRequests, ids)
		})
	}
}
