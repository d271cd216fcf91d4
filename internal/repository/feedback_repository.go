package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/imammufiid/bnyu-admin/internal/model"
)

// FeedbackRepository defines read access to the feedback collection.
type FeedbackRepository interface {
	List(ctx context.Context) ([]model.Feedback, error)
	Create(ctx context.Context, feedback *model.Feedback) error
}

type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository creates a new feedback repository.
func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

// List returns every feedback entry.
func (r *feedbackRepository) List(ctx context.Context) ([]model.Feedback, error) {
	var entries []model.Feedback
	if err := r.db.WithContext(ctx).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Create creates a feedback entry. Seeding only.
func (r *feedbackRepository) Create(ctx context.Context, feedback *model.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}
