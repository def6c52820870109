package repository

import (
	"context"
	"errors"
	"time"

	"github.com/code-sankar/Backend-ChaiAurCode/internal/cache"
	"github.com/code-sankar/Backend-ChaiAurCode/internal/models"

	"gorm.io/gorm"
)

// PlaylistRepository defines the interface for playlist data operations
type PlaylistRepository interface {
	Create(ctx context.Context, playlist *models.Playlist) error
	GetByID(ctx context.Context, id uint) (*models.Playlist, error)
	GetDetails(ctx context.Context, id uint) (*models.PlaylistDetails, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]models.PlaylistDetails, error)
	Update(ctx context.Context, playlist *models.Playlist) error
	Delete(ctx context.Context, id uint) error
	AddVideo(ctx context.Context, playlistID, videoID uint) error
	RemoveVideo(ctx context.Context, playlistID, videoID uint) error
	HasVideo(ctx context.Context, playlistID, videoID uint) (bool, error)
	VideoMembership(ctx context.Context, ownerID, videoID uint) ([]models.PlaylistVideoFlag, error)
}

type playlistRepository struct {
	db *gorm.DB
}

// NewPlaylistRepository creates a new playlist repository
func NewPlaylistRepository(db *gorm.DB) PlaylistRepository {
	return &playlistRepository{db: db}
}

func (r *playlistRepository) Create(ctx context.Context, playlist *models.Playlist) error {
	if err := r.db.WithContext(ctx).Create(playlist).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *playlistRepository) GetByID(ctx context.Context, id uint) (*models.Playlist, error) {
	var playlist models.Playlist
	err := r.db.WithContext(ctx).Preload("Owner").First(&playlist, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("playlist", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &playlist, nil
}

// playlistEntryRow is the flat scan target for the playlist-video join.
type playlistEntryRow struct {
	ID            uint
	Title         string
	Thumbnail     string
	Duration      float64
	Views         int64
	CreatedAt     time.Time
	OwnerID       uint
	OwnerUsername string
	OwnerFullName string
	OwnerAvatar   string
}

// loadEntries returns the published videos of a playlist in insertion order.
// Unpublished and soft-deleted videos are filtered out here so every rollup
// downstream sees the same view of the playlist.
func (r *playlistRepository) loadEntries(ctx context.Context, playlistID uint) ([]models.PlaylistVideoEntry, error) {
	var rows []playlistEntryRow
	err := r.db.WithContext(ctx).
		Model(&models.PlaylistVideo{}).
		Select("videos.id, videos.title, videos.thumbnail, videos.duration, videos.views, videos.created_at, "+
			"users.id as owner_id, users.username as owner_username, users.full_name as owner_full_name, users.avatar as owner_avatar").
		Joins("JOIN videos ON videos.id = playlist_videos.video_id AND videos.deleted_at IS NULL AND videos.is_published = ?", true).
		Joins("JOIN users ON users.id = videos.owner_id AND users.deleted_at IS NULL").
		Where("playlist_videos.playlist_id = ?", playlistID).
		Order("playlist_videos.position ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	entries := make([]models.PlaylistVideoEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, models.PlaylistVideoEntry{
			ID:        row.ID,
			Title:     row.Title,
			Thumbnail: row.Thumbnail,
			Duration:  row.Duration,
			Views:     row.Views,
			CreatedAt: row.CreatedAt,
			Owner: models.PublicUser{
				ID:       row.OwnerID,
				Username: row.OwnerUsername,
				FullName: row.OwnerFullName,
				Avatar:   row.OwnerAvatar,
			},
		})
	}
	return entries, nil
}

func rollup(playlist *models.Playlist, entries []models.PlaylistVideoEntry) *models.PlaylistDetails {
	details := &models.PlaylistDetails{
		ID:          playlist.ID,
		Name:        playlist.Name,
		Description: playlist.Description,
		Owner:       playlist.Owner.Public(),
		CreatedAt:   playlist.CreatedAt,
		UpdatedAt:   playlist.UpdatedAt,
		Videos:      entries,
		VideosCount: int64(len(entries)),
	}
	for _, entry := range entries {
		details.TotalViews += entry.Views
	}
	if len(entries) > 0 {
		details.Thumbnail = entries[0].Thumbnail
	}
	return details
}

// GetDetails returns the playlist with its published videos, derived counts
// and the first video's thumbnail as cover.
func (r *playlistRepository) GetDetails(ctx context.Context, id uint) (*models.PlaylistDetails, error) {
	var details models.PlaylistDetails
	err := cache.Aside(ctx, cache.PlaylistKey(id), &details, cache.PlaylistTTL, func() error {
		playlist, err := r.GetByID(ctx, id)
		if err != nil {
			return err
		}
		entries, err := r.loadEntries(ctx, id)
		if err != nil {
			return err
		}
		details = *rollup(playlist, entries)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &details, nil
}

func (r *playlistRepository) ListByOwner(ctx context.Context, ownerID uint) ([]models.PlaylistDetails, error) {
	var playlists []models.Playlist
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&playlists).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	list := make([]models.PlaylistDetails, 0, len(playlists))
	for i := range playlists {
		entries, err := r.loadEntries(ctx, playlists[i].ID)
		if err != nil {
			return nil, err
		}
		list = append(list, *rollup(&playlists[i], entries))
	}
	return list, nil
}

func (r *playlistRepository) Update(ctx context.Context, playlist *models.Playlist) error {
	if err := r.db.WithContext(ctx).Save(playlist).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePlaylist(ctx, playlist.ID)
	return nil
}

func (r *playlistRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", id).Delete(&models.PlaylistVideo{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Playlist{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePlaylist(ctx, id)
	return nil
}

// AddVideo appends the video at the next position. Membership is also
// guarded by a unique index, so a concurrent duplicate insert fails rather
// than double-adding.
func (r *playlistRepository) AddVideo(ctx context.Context, playlistID, videoID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxPos int64
		if err := tx.Model(&models.PlaylistVideo{}).
			Where("playlist_id = ?", playlistID).
			Select("COALESCE(MAX(position), 0)").
			Scan(&maxPos).Error; err != nil {
			return err
		}
		return tx.Create(&models.PlaylistVideo{
			PlaylistID: playlistID,
			VideoID:    videoID,
			Position:   int(maxPos) + 1,
		}).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePlaylist(ctx, playlistID)
	return nil
}

func (r *playlistRepository) RemoveVideo(ctx context.Context, playlistID, videoID uint) error {
	err := r.db.WithContext(ctx).
		Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&models.PlaylistVideo{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePlaylist(ctx, playlistID)
	return nil
}

func (r *playlistRepository) HasVideo(ctx context.Context, playlistID, videoID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.PlaylistVideo{}).
		Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// VideoMembership reports, for every playlist the owner has, whether the
// given video is a member. Used by clients to render save-to-playlist
// checkboxes in one round trip.
func (r *playlistRepository) VideoMembership(ctx context.Context, ownerID, videoID uint) ([]models.PlaylistVideoFlag, error) {
	var flags []models.PlaylistVideoFlag
	err := r.db.WithContext(ctx).
		Model(&models.Playlist{}).
		Select("playlists.id as playlist_id, playlists.name, "+
			"EXISTS(SELECT 1 FROM playlist_videos pv WHERE pv.playlist_id = playlists.id AND pv.video_id = ?) as is_video_present",
			videoID).
		Where("playlists.owner_id = ?", ownerID).
		Order("playlists.created_at DESC").
		Scan(&flags).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return flags, nil
}
