// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered account. Every user doubles as a channel
// that other users can subscribe to.
type User struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Username   string         `gorm:"unique;not null" json:"username"`
	Email      string         `gorm:"unique;not null" json:"email"`
	Password   string         `gorm:"not null" json:"-"`
	FullName   string         `json:"full_name"`
	Avatar     string         `json:"avatar"`
	CoverImage string         `json:"cover_image"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
	Videos     []Video        `gorm:"foreignKey:OwnerID" json:"videos,omitempty"`
}

// PublicUser is the projection of a user that is safe to embed in
// aggregation results. The field list is part of the API contract.
type PublicUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Avatar   string `json:"avatar"`
}

// ChannelProfile is the public channel view of a user, with subscription
// aggregates relative to the acting viewer.
type ChannelProfile struct {
	ID                uint   `json:"id"`
	Username          string `json:"username"`
	FullName          string `json:"full_name"`
	Avatar            string `json:"avatar"`
	CoverImage        string `json:"cover_image"`
	SubscribersCount  int64  `json:"subscribers_count"`
	SubscribedToCount int64  `json:"subscribed_to_count"`
	IsSubscribed      bool   `json:"is_subscribed"`
}

// Public returns the public-safe projection of the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Avatar:   u.Avatar,
	}
}
