package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/imammufiid/bnyu-admin/internal/model"
	"github.com/imammufiid/bnyu-admin/internal/repository"
)

// SeedSummary reports what a demo-data run created.
type SeedSummary struct {
	Users     int `json:"users"`
	Points    int `json:"points"`
	Reminders int `json:"reminders"`
	Feedback  int `json:"feedback"`
}

// SeedService populates the store with demo data for local development.
type SeedService interface {
	SeedDemo(ctx context.Context) (*SeedSummary, error)
}

type seedService struct {
	userRepo     repository.UserRepository
	pointsRepo   repository.PointsRepository
	reminderRepo repository.ReminderRepository
	feedbackRepo repository.FeedbackRepository
	now          func() time.Time
}

// NewSeedService creates a new seed service.
func NewSeedService(
	userRepo repository.UserRepository,
	pointsRepo repository.PointsRepository,
	reminderRepo repository.ReminderRepository,
	feedbackRepo repository.FeedbackRepository,
) SeedService {
	return &seedService{
		userRepo:     userRepo,
		pointsRepo:   pointsRepo,
		reminderRepo: reminderRepo,
		feedbackRepo: feedbackRepo,
		now:          time.Now,
	}
}

type demoUser struct {
	name     string
	email    string
	verified bool
	// points records; more than one entry exercises the first-record
	// behaviour of the stats views
	points []int64
	// reminder offsets back from now, with the drink flag
	reminders []demoReminder
	feedback  string
}

type demoReminder struct {
	ago     time.Duration
	isDrink bool
}

var demoUsers = []demoUser{
	{
		name: "Aisyah Putri", email: "aisyah@example.com", verified: true,
		points: []int64{120},
		reminders: []demoReminder{
			{1 * time.Hour, true},
			{3 * time.Hour, true},
			{5 * time.Hour, false},
			{30 * time.Hour, true},
		},
		feedback: "Love the reminder sounds, keep them coming!",
	},
	{
		name: "Budi Santoso", email: "budi@example.com", verified: true,
		// two point records on purpose
		points: []int64{80, 45},
		reminders: []demoReminder{
			{2 * time.Hour, false},
			{52 * time.Hour, true},
			{6 * 24 * time.Hour, false},
		},
		feedback: "Please add a dark mode for the night reminders.",
	},
	{
		name: "Citra Lestari", email: "citra@example.com", verified: false,
		points: []int64{15},
		reminders: []demoReminder{
			{20 * 24 * time.Hour, true},
		},
	},
	{
		name: "Dewi Anggraini", email: "dewi@example.com", verified: true,
		points: []int64{230},
		reminders: []demoReminder{
			{30 * time.Minute, true},
			{90 * time.Minute, true},
			{4 * time.Hour, true},
			{26 * time.Hour, false},
			{3 * 24 * time.Hour, true},
		},
		feedback: "The weekly streak screen motivated me a lot.",
	},
	{
		name: "Eko Prasetyo", email: "eko@example.com", verified: false,
		// no points, no reminders: renders as 0 points and no last activity
	},
}

// SeedDemo creates a fresh batch of demo users, points, reminders and
// feedback. Each run inserts new records with new IDs.
func (s *seedService) SeedDemo(ctx context.Context) (*SeedSummary, error) {
	now := s.now()
	summary := &SeedSummary{}

	for _, d := range demoUsers {
		user := &model.User{
			ID:          uuid.New(),
			DisplayName: d.name,
			Email:       d.email,
			IsVerified:  d.verified,
			CreatedAt:   now.Add(-30 * 24 * time.Hour),
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return summary, fmt.Errorf("seed user %s: %w", d.email, err)
		}
		summary.Users++

		for _, p := range d.points {
			record := &model.PointsRecord{UserID: user.ID, Points: p}
			if err := s.pointsRepo.Create(ctx, record); err != nil {
				return summary, fmt.Errorf("seed points for %s: %w", d.email, err)
			}
			summary.Points++
		}

		for _, rem := range d.reminders {
			reminder := &model.Reminder{
				UserID:    user.ID,
				IsDrink:   rem.isDrink,
				CreatedAt: now.Add(-rem.ago),
			}
			if err := s.reminderRepo.Create(ctx, reminder); err != nil {
				return summary, fmt.Errorf("seed reminder for %s: %w", d.email, err)
			}
			summary.Reminders++
		}

		if d.feedback != "" {
			fb := &model.Feedback{
				UserID:    user.ID,
				Message:   d.feedback,
				CreatedAt: now.Add(-2 * 24 * time.Hour),
			}
			if err := s.feedbackRepo.Create(ctx, fb); err != nil {
				return summary, fmt.Errorf("seed feedback for %s: %w", d.email, err)
			}
			summary.Feedback++
		}
	}

	return summary, nil
}
