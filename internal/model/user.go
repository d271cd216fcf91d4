package model

import (
	"time"

	"github.com/google/uuid"
)

// User is an end user of the bnyu mobile app. The app owns these records;
// the dashboard only ever reads them.
type User struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	DisplayName string    `json:"display_name" gorm:"size:255"`
	Email       string    `json:"email" gorm:"size:255;index"`
	IsVerified  bool      `json:"is_verified" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
}
