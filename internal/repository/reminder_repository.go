package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/imammufiid/bnyu-admin/internal/model"
)

// ReminderRepository defines read access to the reminders collection.
type ReminderRepository interface {
	ListByCreatedBetween(ctx context.Context, start, end time.Time) ([]model.Reminder, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Reminder, error)
	ListByUserAndCreatedBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]model.Reminder, error)
	Create(ctx context.Context, reminder *model.Reminder) error
}

type reminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository creates a new reminder repository.
func NewReminderRepository(db *gorm.DB) ReminderRepository {
	return &reminderRepository{db: db}
}

// ListByCreatedBetween returns reminders created within the inclusive range.
func (r *reminderRepository) ListByCreatedBetween(ctx context.Context, start, end time.Time) ([]model.Reminder, error) {
	var reminders []model.Reminder
	if err := r.db.WithContext(ctx).
		Where("created_at BETWEEN ? AND ?", start, end).
		Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

// ListByUser returns all reminders for a user.
func (r *reminderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Reminder, error) {
	var reminders []model.Reminder
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

// ListByUserAndCreatedBetween returns a user's reminders within the inclusive range.
func (r *reminderRepository) ListByUserAndCreatedBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]model.Reminder, error) {
	var reminders []model.Reminder
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND created_at BETWEEN ? AND ?", userID, start, end).
		Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

// Create creates a reminder record. Seeding only.
func (r *reminderRepository) Create(ctx context.Context, reminder *model.Reminder) error {
	return r.db.WithContext(ctx).Create(reminder).Error
}
