package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PointsRecord stores a point total for a user. The app may leave more than
// one record per user; see StatsService for how duplicates are resolved.
type PointsRecord struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:char(36);not null;index"`
	Points    int64     `json:"points" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (p *PointsRecord) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
