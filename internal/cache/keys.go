package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix         = "user:%d"
	VideoKeyPrefix        = "video:%d"
	PlaylistKeyPrefix     = "playlist:%d"
	ChannelStatsKeyPrefix = "channel:%d:stats"
)

const (
	UserTTL         = 5 * time.Minute
	VideoTTL        = 30 * time.Minute
	PlaylistTTL     = 10 * time.Minute
	ChannelStatsTTL = time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func VideoKey(videoID uint) string {
	return fmt.Sprintf(VideoKeyPrefix, videoID)
}

func PlaylistKey(playlistID uint) string {
	return fmt.Sprintf(PlaylistKeyPrefix, playlistID)
}

func ChannelStatsKey(userID uint) string {
	return fmt.Sprintf(ChannelStatsKeyPrefix, userID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateVideo(ctx context.Context, videoID uint) {
	Invalidate(ctx, VideoKey(videoID))
}

func InvalidatePlaylist(ctx context.Context, playlistID uint) {
	Invalidate(ctx, PlaylistKey(playlistID))
}

func InvalidateChannelStats(ctx context.Context, userID uint) {
	Invalidate(ctx, ChannelStatsKey(userID))
}
