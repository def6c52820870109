package service

import (
	"context"

	"github.com/code-sankar/Backend-ChaiAurCode/internal/cache"
	"github.com/code-sankar/Backend-ChaiAurCode/internal/models"
	"github.com/code-sankar/Backend-ChaiAurCode/internal/repository"
)

type StatsService struct {
	statsRepo repository.StatsRepository
	videoRepo repository.VideoRepository
	userRepo  repository.UserRepository
}

func NewStatsService(statsRepo repository.StatsRepository, videoRepo repository.VideoRepository, userRepo repository.UserRepository) *StatsService {
	return &StatsService{
		statsRepo: statsRepo,
		videoRepo: videoRepo,
		userRepo:  userRepo,
	}
}

// GetChannelStats assembles the dashboard rollup for a channel. Stats are
// cached briefly since every dashboard load hits this.
func (s *StatsService) GetChannelStats(ctx context.Context, channelID uint) (*models.ChannelStats, error) {
	if _, err := s.userRepo.GetByID(ctx, channelID); err != nil {
		return nil, err
	}

	key := cache.ChannelStatsKey(channelID)
	var cached models.ChannelStats
	if found, err := cache.GetJSON(ctx, key, &cached); err == nil && found {
		return &cached, nil
	}

	videoStats, err := s.statsRepo.ChannelVideoStats(ctx, channelID)
	if err != nil {
		return nil, err
	}
	subscribers, err := s.statsRepo.SubscriberCount(ctx, channelID)
	if err != nil {
		return nil, err
	}
	tweets, err := s.statsRepo.TweetCount(ctx, channelID)
	if err != nil {
		return nil, err
	}

	stats := &models.ChannelStats{
		TotalVideos:      videoStats.TotalVideos,
		TotalViews:       videoStats.TotalViews,
		TotalLikes:       videoStats.TotalLikes,
		TotalSubscribers: subscribers,
		TotalTweets:      tweets,
	}
	cache.SetJSON(ctx, key, stats, cache.ChannelStatsTTL)
	return stats, nil
}

// GetChannelVideos lists the channel owner's videos, published or not, with
// per-video like and comment counts.
func (s *StatsService) GetChannelVideos(ctx context.Context, ownerID uint, limit, offset int) ([]*models.Video, error) {
	return s.videoRepo.GetByOwner(ctx, ownerID, limit, offset, ownerID)
}
