package models

import (
	"time"
)

// Subscription records that SubscriberID follows ChannelID's channel.
// The (subscriber, channel) pair is unique and a user cannot subscribe
// to their own channel.
type Subscription struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SubscriberID uint      `gorm:"not null;uniqueIndex:idx_subscriber_channel" json:"subscriber_id"`
	ChannelID    uint      `gorm:"not null;uniqueIndex:idx_subscriber_channel" json:"channel_id"`
	CreatedAt    time.Time `json:"created_at"`

	// Relationships
	Subscriber User `gorm:"foreignKey:SubscriberID" json:"subscriber,omitempty"`
	Channel    User `gorm:"foreignKey:ChannelID" json:"channel,omitempty"`
}

// ChannelSubscriber is one row of a channel's subscriber listing.
type ChannelSubscriber struct {
	Subscriber       PublicUser `json:"subscriber"`
	SubscribersCount int64      `json:"subscribers_count"`
}

// SubscribedChannel is one row of a user's subscribed-channels listing.
// IsSubscribed reflects the acting user, which may differ from the
// subscriber whose list is being read.
type SubscribedChannel struct {
	Channel          PublicUser `json:"channel"`
	SubscribersCount int64      `json:"subscribers_count"`
	IsSubscribed     bool       `json:"is_subscribed"`
}
