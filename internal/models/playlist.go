package models

import (
	"time"

	"gorm.io/gorm"
)

// Playlist is an ordered collection of videos owned by a single user.
// Only the owner may mutate it.
type Playlist struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `json:"description"`
	OwnerID     uint           `gorm:"not null;index" json:"owner_id"`
	Owner       User           `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// PlaylistVideo is the ordered membership row linking a video into a
// playlist. (playlist, video) is unique; Position preserves insertion order.
type PlaylistVideo struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PlaylistID uint      `gorm:"not null;uniqueIndex:idx_playlist_video" json:"playlist_id"`
	VideoID    uint      `gorm:"not null;uniqueIndex:idx_playlist_video" json:"video_id"`
	Position   int       `gorm:"not null" json:"position"`
	CreatedAt  time.Time `json:"created_at"`

	Playlist Playlist `gorm:"foreignKey:PlaylistID" json:"-"`
	Video    Video    `gorm:"foreignKey:VideoID" json:"-"`
}

// PlaylistVideoEntry is a published video as it appears inside a playlist
// read, with its owner reduced to the public projection.
type PlaylistVideoEntry struct {
	ID        uint       `json:"id"`
	Title     string     `json:"title"`
	Thumbnail string     `json:"thumbnail"`
	Duration  float64    `json:"duration"`
	Views     int64      `json:"views"`
	Owner     PublicUser `json:"owner"`
	CreatedAt time.Time  `json:"created_at"`
}

// PlaylistDetails is the shaped read model for playlist fetches.
// Unpublished videos are excluded from Videos, VideosCount and TotalViews;
// Thumbnail is the first included video's thumbnail.
type PlaylistDetails struct {
	ID          uint                 `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Owner       PublicUser           `json:"owner"`
	Videos      []PlaylistVideoEntry `json:"videos,omitempty"`
	Thumbnail   string               `json:"thumbnail"`
	VideosCount int64                `json:"videos_count"`
	TotalViews  int64                `json:"total_views"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// PlaylistVideoFlag reports whether a given video is already a member of
// one of the acting user's playlists.
type PlaylistVideoFlag struct {
	PlaylistID     uint   `json:"playlist_id"`
	Name           string `json:"name"`
	IsVideoPresent bool   `json:"is_video_present"`
}
