package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment represents a comment on a video.
type Comment struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Content   string         `gorm:"not null" json:"content"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	VideoID   uint           `gorm:"not null;index" json:"video_id"`
	User      User           `gorm:"foreignKey:UserID" json:"user"`
	Video     Video          `gorm:"foreignKey:VideoID" json:"video,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
