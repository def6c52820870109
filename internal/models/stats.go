package models

// VideoStats is the per-channel video aggregate: row count, summed views and
// summed like counts across all of the owner's videos.
type VideoStats struct {
	TotalVideos int64 `json:"total_videos"`
	TotalViews  int64 `json:"total_views"`
	TotalLikes  int64 `json:"total_likes"`
}

// ChannelStats is the full dashboard rollup for a channel.
type ChannelStats struct {
	TotalVideos      int64 `json:"total_videos"`
	TotalViews       int64 `json:"total_views"`
	TotalLikes       int64 `json:"total_likes"`
	TotalSubscribers int64 `json:"total_subscribers"`
	TotalTweets      int64 `json:"total_tweets"`
}
