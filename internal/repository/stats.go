package repository

import (
	"context"

	"github.com/code-sankar/Backend-ChaiAurCode/internal/models"
	"github.com/code-sankar/Backend-ChaiAurCode/internal/observability"

	"gorm.io/gorm"
)

// StatsRepository defines the interface for channel dashboard aggregates
type StatsRepository interface {
	ChannelVideoStats(ctx context.Context, ownerID uint) (*models.VideoStats, error)
	SubscriberCount(ctx context.Context, channelID uint) (int64, error)
	TweetCount(ctx context.Context, ownerID uint) (int64, error)
}

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

// ChannelVideoStats aggregates the channel's video totals in a single query.
// A channel with no videos comes back zero-filled, never as a missing row.
func (r *statsRepository) ChannelVideoStats(ctx context.Context, ownerID uint) (*models.VideoStats, error) {
	observability.AggregationQueries.WithLabelValues("channel_video_stats").Inc()

	var stats models.VideoStats
	err := r.db.WithContext(ctx).
		Model(&models.Video{}).
		Select("COUNT(*) as total_videos, "+
			"COALESCE(SUM(views), 0) as total_views, "+
			"COALESCE(SUM((SELECT COUNT(*) FROM likes WHERE likes.video_id = videos.id)), 0) as total_likes").
		Where("videos.owner_id = ?", ownerID).
		Scan(&stats).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &stats, nil
}

func (r *statsRepository) SubscriberCount(ctx context.Context, channelID uint) (int64, error) {
	observability.AggregationQueries.WithLabelValues("subscriber_count").Inc()

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Subscription{}).
		Where("channel_id = ?", channelID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *statsRepository) TweetCount(ctx context.Context, ownerID uint) (int64, error) {
	observability.AggregationQueries.WithLabelValues("tweet_count").Inc()

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Tweet{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
