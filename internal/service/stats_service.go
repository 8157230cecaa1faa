package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"coride/internal/cache"
	"coride/internal/model"
	"coride/internal/report"
	"coride/internal/repository"
)

const (
	statsCacheKey = "admin:overview"
	statsCacheTTL = 5 * time.Minute
)

var (
	litresPerKilometer = decimal.RequireFromString("0.07")
	co2KgPerTree       = decimal.NewFromInt(20)
	tripsPerRide       = decimal.RequireFromString("1.8")
	hundred            = decimal.NewFromInt(100)
)

// Impact holds figures derived from the ride statistics.
type Impact struct {
	FuelSavedLitres   int64 `json:"fuelSavedLitres"`
	TreesEquivalent   int64 `json:"treesEquivalent"`
	ParticipationRate int64 `json:"participationRate"` // percent of headcount
	TripsAvoided      int64 `json:"tripsAvoided"`
}

// AdminOverview is the administrator's sustainability view.
type AdminOverview struct {
	Stats       model.RideStats         `json:"stats"`
	Departments []model.DepartmentStats `json:"departments"`
	Impact      Impact                  `json:"impact"`
}

// StatsService exposes the sustainability statistics.
type StatsService interface {
	Overview(ctx context.Context) (*AdminOverview, error)
	Report(ctx context.Context) ([]byte, error)
	// Invalidate drops the cached overview after the statistics change.
	Invalidate(ctx context.Context) error
}

// StatsCache is the part of cache.Client used for the overview.
type StatsCache interface {
	GetJSON(ctx context.Context, key string, dst interface{}) bool
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Ensure cache.Client implements StatsCache
var _ StatsCache = (*cache.Client)(nil)

type statsService struct {
	repo      repository.StatsRepository
	cache     StatsCache
	headcount int
}

// NewStatsService creates a new stats service. headcount is the size of the
// organization used for the participation rate. A nil cache disables caching.
func NewStatsService(repo repository.StatsRepository, c StatsCache, headcount int) StatsService {
	if c == nil {
		c = (*cache.Client)(nil)
	}
	return &statsService{repo: repo, cache: c, headcount: headcount}
}

// Overview returns the statistics with their derived impact, cached briefly.
func (s *statsService) Overview(ctx context.Context) (*AdminOverview, error) {
	var cached AdminOverview
	if s.cache.GetJSON(ctx, statsCacheKey, &cached) {
		return &cached, nil
	}

	stats, err := s.repo.RideStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("load ride stats: %w", err)
	}
	departments, err := s.repo.DepartmentStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("load department stats: %w", err)
	}
	if departments == nil {
		departments = []model.DepartmentStats{}
	}

	overview := &AdminOverview{
		Stats:       *stats,
		Departments: departments,
		Impact:      ComputeImpact(*stats, s.headcount),
	}
	_ = s.cache.SetJSON(ctx, statsCacheKey, overview, statsCacheTTL)
	return overview, nil
}

// Invalidate removes the cached overview.
func (s *statsService) Invalidate(ctx context.Context) error {
	return s.cache.Delete(ctx, statsCacheKey)
}

// Report renders the overview as an .xlsx workbook.
func (s *statsService) Report(ctx context.Context) ([]byte, error) {
	overview, err := s.Overview(ctx)
	if err != nil {
		return nil, err
	}

	summary := []report.Row{
		{Label: "Total rides", Value: overview.Stats.TotalRides},
		{Label: "Active users", Value: overview.Stats.ActiveUsers},
		{Label: "Total kilometers", Value: overview.Stats.TotalKilometers},
		{Label: "CO2 saved (kg)", Value: overview.Stats.CO2Saved},
		{Label: "Fuel saved (litres)", Value: overview.Impact.FuelSavedLitres},
		{Label: "Trees equivalent", Value: overview.Impact.TreesEquivalent},
		{Label: "Participation rate (%)", Value: overview.Impact.ParticipationRate},
		{Label: "Car trips avoided", Value: overview.Impact.TripsAvoided},
	}
	return report.Build(summary, overview.Departments)
}

// ComputeImpact derives fuel, tree, participation and trip figures from stats.
// Results are rounded to the nearest integer.
func ComputeImpact(stats model.RideStats, headcount int) Impact {
	impact := Impact{
		FuelSavedLitres: decimal.NewFromInt(int64(stats.TotalKilometers)).Mul(litresPerKilometer).Round(0).IntPart(),
		TreesEquivalent: decimal.NewFromInt(int64(stats.CO2Saved)).Div(co2KgPerTree).Round(0).IntPart(),
		TripsAvoided:    decimal.NewFromInt(int64(stats.TotalRides)).Mul(tripsPerRide).Round(0).IntPart(),
	}
	if headcount > 0 {
		impact.ParticipationRate = decimal.NewFromInt(int64(stats.ActiveUsers)).
			Div(decimal.NewFromInt(int64(headcount))).
			Mul(hundred).
			Round(0).
			IntPart()
	}
	return impact
}
