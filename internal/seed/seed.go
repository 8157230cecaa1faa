// Package seed loads the sample dataset into a SQL database.
package seed

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"coride/internal/fixture"
	"coride/internal/model"
	"coride/internal/repository"
)

// Result counts the records created and updated by a seed run.
type Result struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
}

func (r *Result) add(other Result) {
	r.Created += other.Created
	r.Updated += other.Updated
}

// Seeder upserts fixture records by primary key.
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a seeder over db.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Migrate creates or updates the schema of every model.
func (s *Seeder) Migrate() error {
	if err := s.db.AutoMigrate(repository.Models()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// Seed writes ds, or the sample dataset when ds is nil, in one transaction.
func (s *Seeder) Seed(ctx context.Context, ds *fixture.Dataset) (Result, error) {
	if ds == nil {
		ds = fixture.Load()
	}

	var total Result
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		steps := []struct {
			table string
			run   func() (Result, error)
		}{
			{"users", func() (Result, error) {
				return upsert(tx, ds.Users, "id", func(u *model.User) interface{} { return u.ID })
			}},
			{"rides", func() (Result, error) {
				return upsert(tx, ds.Rides, "id", func(r *model.Ride) interface{} { return r.ID }, "Driver")
			}},
			{"ride requests", func() (Result, error) {
				return upsert(tx, ds.RideRequests, "id", func(r *model.RideRequest) interface{} { return r.ID }, "Ride", "Passenger")
			}},
			{"messages", func() (Result, error) {
				return upsert(tx, ds.Messages, "id", func(m *model.Message) interface{} { return m.ID })
			}},
			{"notifications", func() (Result, error) {
				return upsert(tx, ds.Notifications, "id", func(n *model.Notification) interface{} { return n.ID })
			}},
			{"ride stats", func() (Result, error) {
				return upsert(tx, []model.RideStats{ds.RideStats}, "id", func(s *model.RideStats) interface{} { return s.ID })
			}},
			{"department stats", func() (Result, error) {
				return upsert(tx, ds.DepartmentStats, "department", func(d *model.DepartmentStats) interface{} { return d.Department })
			}},
		}

		for _, step := range steps {
			res, err := step.run()
			if err != nil {
				return fmt.Errorf("seed %s: %w", step.table, err)
			}
			total.add(res)
		}
		return nil
	})
	return total, err
}

// upsert creates each record or, when a row with the same key exists,
// updates it. omit names associations that must not be written.
func upsert[T any](tx *gorm.DB, records []T, keyColumn string, key func(*T) interface{}, omit ...string) (Result, error) {
	var res Result
	for i := range records {
		record := &records[i]

		var count int64
		if err := tx.Model(record).Where(keyColumn+" = ?", key(record)).Count(&count).Error; err != nil {
			return res, fmt.Errorf("check %v: %w", key(record), err)
		}

		q := tx
		if len(omit) > 0 {
			q = q.Omit(omit...)
		}
		if count > 0 {
			if err := q.Save(record).Error; err != nil {
				return res, fmt.Errorf("update %v: %w", key(record), err)
			}
			res.Updated++
			continue
		}
		if err := q.Create(record).Error; err != nil {
			return res, fmt.Errorf("create %v: %w", key(record), err)
		}
		res.Created++
	}
	return res, nil
}
