package repository

import (
	"context"
	"errors"

	"github.com/code-sankar/Backend-ChaiAurCode/internal/cache"
	"github.com/code-sankar/Backend-ChaiAurCode/internal/models"

	"gorm.io/gorm"
)

// VideoRepository defines the interface for video data operations
type VideoRepository interface {
	Create(ctx context.Context, video *models.Video) error
	GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Video, error)
	GetByOwner(ctx context.Context, ownerID uint, limit, offset int, currentUserID uint) ([]*models.Video, error)
	ListPublished(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Video, error)
	Update(ctx context.Context, video *models.Video) error
	Delete(ctx context.Context, id uint) error
	IncrementViews(ctx context.Context, id uint) error
	IsLiked(ctx context.Context, userID, videoID uint) (bool, error)
	Like(ctx context.Context, userID, videoID uint) error
	Unlike(ctx context.Context, userID, videoID uint) error
	GetLikedVideos(ctx context.Context, userID uint, limit, offset int) ([]*models.Video, error)
}

// videoRepository implements VideoRepository
type videoRepository struct {
	db *gorm.DB
}

// NewVideoRepository creates a new video repository
func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

// applyVideoDetails adds subqueries to fetch counts and liked status in a single query.
func (r *videoRepository) applyVideoDetails(db *gorm.DB, currentUserID uint) *gorm.DB {
	selectQuery := "videos.*, " +
		"(SELECT COUNT(*) FROM likes WHERE likes.video_id = videos.id) as likes_count, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.video_id = videos.id AND comments.deleted_at IS NULL) as comments_count"

	if currentUserID != 0 {
		return db.Select(selectQuery+", EXISTS(SELECT 1 FROM likes WHERE likes.video_id = videos.id AND likes.user_id = ?) as liked", currentUserID)
	}

	return db.Select(selectQuery + ", false as liked")
}

func (r *videoRepository) Create(ctx context.Context, video *models.Video) error {
	if err := r.db.WithContext(ctx).Create(video).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *videoRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Video, error) {
	var video models.Video

	var err error
	if currentUserID == 0 {
		err = cache.Aside(ctx, cache.VideoKey(id), &video, cache.VideoTTL, func() error {
			return r.applyVideoDetails(r.db.WithContext(ctx), 0).
				Preload("Owner").
				First(&video, id).Error
		})
	} else {
		err = r.applyVideoDetails(r.db.WithContext(ctx), currentUserID).
			Preload("Owner").
			First(&video, id).Error
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Video", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &video, nil
}

// GetByOwner returns the owner's videos with per-video like and comment
// counts attached. Result order is newest first.
func (r *videoRepository) GetByOwner(ctx context.Context, ownerID uint, limit, offset int, currentUserID uint) ([]*models.Video, error) {
	var videos []*models.Video
	err := r.applyVideoDetails(r.db.WithContext(ctx), currentUserID).
		Preload("Owner").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&videos).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return videos, nil
}

func (r *videoRepository) ListPublished(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Video, error) {
	var videos []*models.Video
	err := r.applyVideoDetails(r.db.WithContext(ctx), currentUserID).
		Preload("Owner").
		Where("is_published = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&videos).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return videos, nil
}

func (r *videoRepository) Update(ctx context.Context, video *models.Video) error {
	if err := r.db.WithContext(ctx).Save(video).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateVideo(ctx, video.ID)
	return nil
}

func (r *videoRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Video{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateVideo(ctx, id)
	return nil
}

func (r *videoRepository) IncrementViews(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).
		Model(&models.Video{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateVideo(ctx, id)
	return nil
}

func (r *videoRepository) IsLiked(ctx context.Context, userID, videoID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND video_id = ?", userID, videoID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *videoRepository) Like(ctx context.Context, userID, videoID uint) error {
	// INSERT ... ON CONFLICT DO NOTHING keeps concurrent double-likes from
	// tripping the unique index.
	result := r.db.WithContext(ctx).Exec(
		`INSERT INTO likes (user_id, video_id, created_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (user_id, video_id) DO NOTHING`,
		userID, videoID,
	)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	cache.InvalidateVideo(ctx, videoID)
	return nil
}

func (r *videoRepository) Unlike(ctx context.Context, userID, videoID uint) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND video_id = ?", userID, videoID).
		Delete(&models.Like{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateVideo(ctx, videoID)
	return nil
}

func (r *videoRepository) GetLikedVideos(ctx context.Context, userID uint, limit, offset int) ([]*models.Video, error) {
	var videos []*models.Video
	err := r.applyVideoDetails(r.db.WithContext(ctx), userID).
		Preload("Owner").
		Joins("JOIN likes ON likes.video_id = videos.id AND likes.user_id = ?", userID).
		Where("videos.is_published = ?", true).
		Order("likes.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&videos).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return videos, nil
}
