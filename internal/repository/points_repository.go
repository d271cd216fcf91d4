package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/imammufiid/bnyu-admin/internal/model"
)

// PointsRepository defines read access to the points collection.
type PointsRepository interface {
	// ListByUser returns the point records for a user in store order. More
	// than one record may exist; callers decide how to collapse them.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.PointsRecord, error)
	Create(ctx context.Context, record *model.PointsRecord) error
}

type pointsRepository struct {
	db *gorm.DB
}

// NewPointsRepository creates a new points repository.
func NewPointsRepository(db *gorm.DB) PointsRepository {
	return &pointsRepository{db: db}
}

// ListByUser returns all point records for a user.
func (r *pointsRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.PointsRecord, error) {
	var records []model.PointsRecord
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Create creates a point record. Seeding only.
func (r *pointsRepository) Create(ctx context.Context, record *model.PointsRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}
