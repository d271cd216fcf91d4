package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/imammufiid/bnyu-admin/internal/cache"
	"github.com/imammufiid/bnyu-admin/internal/model"
	"github.com/imammufiid/bnyu-admin/internal/repository"
)

const (
	dashboardCacheKey = "stats:dashboard"
	dashboardCacheTTL = 30 * time.Second
)

// ReminderStats partitions a set of reminders by their IsDrink flag.
type ReminderStats struct {
	Drink    int `json:"drink"`
	NotDrink int `json:"not_drink"`
}

// UserStats bundles the numbers shown in the per-user detail view.
type UserStats struct {
	Points     int64         `json:"points"`
	LastActive *time.Time    `json:"last_active,omitempty"`
	Today      ReminderStats `json:"today"`
	Week       ReminderStats `json:"week"`
	Month      ReminderStats `json:"month"`
}

// DashboardSummary aggregates the cards on the dashboard landing page.
// A nil field means that fetch failed; callers render it as unavailable,
// never as zero.
type DashboardSummary struct {
	TotalUsers *int64         `json:"total_users"`
	Today      *ReminderStats `json:"today"`
	Week       *ReminderStats `json:"week"`
	Month      *ReminderStats `json:"month"`
}

// StatsService computes derived statistics from the app's collections.
type StatsService interface {
	GlobalReminderStats(ctx context.Context, start, end time.Time) (*ReminderStats, error)
	UserStats(ctx context.Context, userID uuid.UUID) (*UserStats, error)
	TotalUsers(ctx context.Context) (int64, error)
	DashboardSummary(ctx context.Context) *DashboardSummary
}

type statsService struct {
	userRepo     repository.UserRepository
	pointsRepo   repository.PointsRepository
	reminderRepo repository.ReminderRepository
	cache        *cache.Client
	now          func() time.Time
}

// NewStatsService creates a new stats service.
func NewStatsService(
	userRepo repository.UserRepository,
	pointsRepo repository.PointsRepository,
	reminderRepo repository.ReminderRepository,
	cache *cache.Client,
) StatsService {
	return &statsService{
		userRepo:     userRepo,
		pointsRepo:   pointsRepo,
		reminderRepo: reminderRepo,
		cache:        cache,
		now:          time.Now,
	}
}

// partition counts reminders by flag. The two branches are exhaustive for a
// boolean column, so every fetched reminder lands in exactly one bucket.
func partition(reminders []model.Reminder) ReminderStats {
	var stats ReminderStats
	for _, r := range reminders {
		if r.IsDrink {
			stats.Drink++
		} else {
			stats.NotDrink++
		}
	}
	return stats
}

// GlobalReminderStats counts reminders created in the inclusive window,
// split by flag. On a failed fetch the result is nil, not zero counts.
func (s *statsService) GlobalReminderStats(ctx context.Context, start, end time.Time) (*ReminderStats, error) {
	reminders, err := s.reminderRepo.ListByCreatedBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch reminders: %w", err)
	}
	stats := partition(reminders)
	return &stats, nil
}

// UserStats derives the detail-view statistics for a single user.
func (s *statsService) UserStats(ctx context.Context, userID uuid.UUID) (*UserStats, error) {
	points, err := s.pointsRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch points: %w", err)
	}

	stats := &UserStats{}
	if len(points) > 0 {
		// The app can leave several point records per user with no defined
		// store order. The dashboard has always shown the first one returned
		// rather than a sum; keep that until the owning team decides otherwise.
		stats.Points = points[0].Points
	}

	reminders, err := s.reminderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch reminders: %w", err)
	}
	for i := range reminders {
		if stats.LastActive == nil || reminders[i].CreatedAt.After(*stats.LastActive) {
			t := reminders[i].CreatedAt
			stats.LastActive = &t
		}
	}

	now := s.now()
	type window struct {
		dst        *ReminderStats
		start, end time.Time
	}
	dayStart, dayEnd := DayWindow(now)
	weekStart, weekEnd := WeekWindow(now)
	monthStart, monthEnd := MonthWindow(now)
	for _, w := range []window{
		{&stats.Today, dayStart, dayEnd},
		{&stats.Week, weekStart, weekEnd},
		{&stats.Month, monthStart, monthEnd},
	} {
		scoped, err := s.reminderRepo.ListByUserAndCreatedBetween(ctx, userID, w.start, w.end)
		if err != nil {
			return nil, fmt.Errorf("fetch windowed reminders: %w", err)
		}
		*w.dst = partition(scoped)
	}

	return stats, nil
}

// TotalUsers returns the cardinality of the users collection.
func (s *statsService) TotalUsers(ctx context.Context) (int64, error) {
	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}

// DashboardSummary fetches the total user count and the three global windows
// concurrently. The four fetches are independent; a failed leg leaves its
// field nil while the others still populate. Fully populated summaries are
// cached briefly.
func (s *statsService) DashboardSummary(ctx context.Context) *DashboardSummary {
	if data, _ := s.cache.Get(ctx, dashboardCacheKey); data != nil {
		var cached DashboardSummary
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached
		}
	}

	now := s.now()
	summary := &DashboardSummary{}

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		if n, err := s.TotalUsers(ctx); err == nil {
			summary.TotalUsers = &n
		}
	}()
	window := func(dst **ReminderStats, start, end time.Time) {
		defer wg.Done()
		if stats, err := s.GlobalReminderStats(ctx, start, end); err == nil {
			*dst = stats
		}
	}
	dayStart, dayEnd := DayWindow(now)
	weekStart, weekEnd := WeekWindow(now)
	monthStart, monthEnd := MonthWindow(now)
	go window(&summary.Today, dayStart, dayEnd)
	go window(&summary.Week, weekStart, weekEnd)
	go window(&summary.Month, monthStart, monthEnd)
	wg.Wait()

	if summary.TotalUsers != nil && summary.Today != nil && summary.Week != nil && summary.Month != nil {
		if payload, err := json.Marshal(summary); err == nil {
			_ = s.cache.Set(ctx, dashboardCacheKey, payload, dashboardCacheTTL)
		}
	}
	return summary
}
