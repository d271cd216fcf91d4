package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/imammufiid/bnyu-admin/internal/repository"
	"github.com/imammufiid/bnyu-admin/internal/table"
)

// FeedbackRow is one row of the feedback table, joined to the submitting
// user's email when that user still exists.
type FeedbackRow struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	Email            string    `json:"email"`
	Message          string    `json:"message"`
	CreatedAt        time.Time `json:"created_at"`
	CreatedAtDisplay string    `json:"created_at_display"`
}

// FeedbackService lists feedback submissions.
type FeedbackService interface {
	ListFeedback(ctx context.Context) ([]FeedbackRow, error)
}

type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
	userRepo     repository.UserRepository
}

// NewFeedbackService creates a new feedback service.
func NewFeedbackService(feedbackRepo repository.FeedbackRepository, userRepo repository.UserRepository) FeedbackService {
	return &feedbackService{
		feedbackRepo: feedbackRepo,
		userRepo:     userRepo,
	}
}

// ListFeedback returns every feedback entry with the user's email resolved.
// A missing user degrades the email to "-"; it is not an error.
func (s *feedbackService) ListFeedback(ctx context.Context) ([]FeedbackRow, error) {
	entries, err := s.feedbackRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch feedback: %w", err)
	}

	rows := make([]FeedbackRow, 0, len(entries))
	for _, fb := range entries {
		email := "-"
		user, err := s.userRepo.FindByID(ctx, fb.UserID)
		if err != nil {
			if !stderrors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("fetch user for feedback %s: %w", fb.ID, err)
			}
		} else if user.Email != "" {
			email = user.Email
		}

		rows = append(rows, FeedbackRow{
			ID:               fb.ID,
			UserID:           fb.UserID,
			Email:            email,
			Message:          fb.Message,
			CreatedAt:        fb.CreatedAt,
			CreatedAtDisplay: table.FormatRelativeDate(fb.CreatedAt),
		})
	}
	return rows, nil
}
