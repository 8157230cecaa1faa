package repository

import (
	"context"
	"sort"
	"sync"

	"coride/internal/fixture"
	"coride/internal/model"
)

// memoryDB is the shared in-memory state behind the fixture repositories.
type memoryDB struct {
	mu   sync.RWMutex
	data *fixture.Dataset
}

// NewMemoryRepositories builds repositories over an in-memory copy of ds.
// A nil ds uses the sample dataset.
func NewMemoryRepositories(ds *fixture.Dataset) *Repositories {
	if ds == nil {
		ds = fixture.Load()
	}
	db := &memoryDB{data: ds}
	return &Repositories{
		Users:         &memoryUserRepository{db: db},
		Rides:         &memoryRideRepository{db: db},
		RideRequests:  &memoryRideRequestRepository{db: db},
		Messages:      &memoryMessageRepository{db: db},
		Notifications: &memoryNotificationRepository{db: db},
		Stats:         &memoryStatsRepository{db: db},
	}
}

// userLocked returns a copy of the user with id. Caller holds mu.
func (db *memoryDB) userLocked(id string) *model.User {
	for i := range db.data.Users {
		if db.data.Users[i].ID == id {
			u := db.data.Users[i]
			return &u
		}
	}
	return nil
}

// rideLocked returns a copy of the ride with id, driver attached. Caller holds mu.
func (db *memoryDB) rideLocked(id string) *model.Ride {
	for i := range db.data.Rides {
		if db.data.Rides[i].ID == id {
			return db.copyRideLocked(&db.data.Rides[i])
		}
	}
	return nil
}

func (db *memoryDB) copyRideLocked(src *model.Ride) *model.Ride {
	r := *src
	r.RecurringDays = append([]model.WeekDay{}, src.RecurringDays...)
	r.Driver = db.userLocked(r.DriverID)
	return &r
}

type memoryUserRepository struct {
	db *memoryDB
}

func (r *memoryUserRepository) List(ctx context.Context) ([]model.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return append([]model.User{}, r.db.data.Users...), nil
}

func (r *memoryUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	if u := r.db.userLocked(id); u != nil {
		return u, nil
	}
	return nil, ErrNotFound
}

func (r *memoryUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	for _, u := range r.db.data.Users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

type memoryRideRepository struct {
	db *memoryDB
}

func (r *memoryRideRepository) List(ctx context.Context) ([]model.Ride, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	rides := make([]model.Ride, 0, len(r.db.data.Rides))
	for i := range r.db.data.Rides {
		rides = append(rides, *r.db.copyRideLocked(&r.db.data.Rides[i]))
	}
	return rides, nil
}

func (r *memoryRideRepository) FindByID(ctx context.Context, id string) (*model.Ride, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	if ride := r.db.rideLocked(id); ride != nil {
		return ride, nil
	}
	return nil, ErrNotFound
}

func (r *memoryRideRepository) Create(ctx context.Context, ride *model.Ride) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := ride.BeforeCreate(nil); err != nil {
		return err
	}
	ride.Position = len(r.db.data.Rides) + 1
	stored := *ride
	stored.RecurringDays = append([]model.WeekDay{}, ride.RecurringDays...)
	stored.Driver = nil
	r.db.data.Rides = append(r.db.data.Rides, stored)
	return nil
}

type memoryRideRequestRepository struct {
	db *memoryDB
}

func (r *memoryRideRequestRepository) List(ctx context.Context) ([]model.RideRequest, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	requests := make([]model.RideRequest, 0, len(r.db.data.RideRequests))
	for _, req := range r.db.data.RideRequests {
		req.Ride = r.db.rideLocked(req.RideID)
		req.Passenger = r.db.userLocked(req.PassengerID)
		requests = append(requests, req)
	}
	return requests, nil
}

func (r *memoryRideRequestRepository) FindByRideAndPassenger(ctx context.Context, rideID, passengerID string) (*model.RideRequest, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	for _, req := range r.db.data.RideRequests {
		if req.RideID == rideID && req.PassengerID == passengerID {
			found := req
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryRideRequestRepository) Create(ctx context.Context, request *model.RideRequest) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := request.BeforeCreate(nil); err != nil {
		return err
	}
	stored := *request
	stored.Ride = nil
	stored.Passenger = nil
	r.db.data.RideRequests = append(r.db.data.RideRequests, stored)
	return nil
}

type memoryMessageRepository struct {
	db *memoryDB
}

func (r *memoryMessageRepository) ListForUser(ctx context.Context, userID string) ([]model.Message, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	var messages []model.Message
	for _, m := range r.db.data.Messages {
		if m.Involves(userID) {
			messages = append(messages, m)
		}
	}
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})
	return messages, nil
}

func (r *memoryMessageRepository) FindByID(ctx context.Context, id string) (*model.Message, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	for _, m := range r.db.data.Messages {
		if m.ID == id {
			found := m
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryMessageRepository) Create(ctx context.Context, message *model.Message) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := message.BeforeCreate(nil); err != nil {
		return err
	}
	r.db.data.Messages = append(r.db.data.Messages, *message)
	return nil
}

func (r *memoryMessageRepository) MarkRead(ctx context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for i := range r.db.data.Messages {
		if r.db.data.Messages[i].ID == id {
			r.db.data.Messages[i].Read = true
			return nil
		}
	}
	return ErrNotFound
}

type memoryNotificationRepository struct {
	db *memoryDB
}

func (r *memoryNotificationRepository) ListFor(ctx context.Context, userID string) ([]model.Notification, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	var notifications []model.Notification
	for _, n := range r.db.data.Notifications {
		if n.UserID == userID {
			notifications = append(notifications, n)
		}
	}
	return notifications, nil
}

type memoryStatsRepository struct {
	db *memoryDB
}

func (r *memoryStatsRepository) RideStats(ctx context.Context) (*model.RideStats, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	stats := r.db.data.RideStats
	return &stats, nil
}

func (r *memoryStatsRepository) DepartmentStats(ctx context.Context) ([]model.DepartmentStats, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return append([]model.DepartmentStats{}, r.db.data.DepartmentStats...), nil
}
