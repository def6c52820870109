package repository

import (
	"context"
	"errors"
	"time"

	"github.com/code-sankar/Backend-ChaiAurCode/internal/models"

	"gorm.io/gorm"
)

// SubscriptionRepository defines the interface for subscription data operations
type SubscriptionRepository interface {
	Get(ctx context.Context, subscriberID, channelID uint) (*models.Subscription, error)
	Create(ctx context.Context, sub *models.Subscription) error
	Delete(ctx context.Context, subscriberID, channelID uint) error
	CountForChannel(ctx context.Context, channelID uint) (int64, error)
	CountForSubscriber(ctx context.Context, subscriberID uint) (int64, error)
	ListChannelSubscribers(ctx context.Context, channelID uint) ([]models.ChannelSubscriber, error)
	ListSubscribedChannels(ctx context.Context, subscriberID, currentUserID uint) ([]models.SubscribedChannel, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Get(ctx context.Context, subscriberID, channelID uint) (*models.Subscription, error) {
	var sub models.Subscription
	err := r.db.WithContext(ctx).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Absence is the Unsubscribed state, not an error.
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &sub, nil
}

func (r *subscriptionRepository) Create(ctx context.Context, sub *models.Subscription) error {
	if err := r.db.WithContext(ctx).Create(sub).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *subscriptionRepository) Delete(ctx context.Context, subscriberID, channelID uint) error {
	err := r.db.WithContext(ctx).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Delete(&models.Subscription{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *subscriptionRepository) CountForChannel(ctx context.Context, channelID uint) (int64, error) {
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

func (r *subscriptionRepository) CountForSubscriber(ctx context.Context, subscriberID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Subscription{}).
		Where("subscriber_id = ?", subscriberID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

// subscriberRow is the flat scan target for the subscriber listing join.
type subscriberRow struct {
	ID        uint
	Username  string
	FullName  string
	Avatar    string
	CreatedAt time.Time
}

// ListChannelSubscribers returns the channel's subscribers joined to their
// public user projection, each row carrying the channel's total subscriber
// count. An empty channel yields an empty slice.
func (r *subscriptionRepository) ListChannelSubscribers(ctx context.Context, channelID uint) ([]models.ChannelSubscriber, error) {
	var rows []subscriberRow
	err := r.db.WithContext(ctx).
		Model(&models.Subscription{}).
		Select("users.id, users.username, users.full_name, users.avatar, subscriptions.created_at").
		Joins("JOIN users ON users.id = subscriptions.subscriber_id AND users.deleted_at IS NULL").
		Where("subscriptions.channel_id = ?", channelID).
		Order("subscriptions.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	total := int64(len(rows))
	subscribers := make([]models.ChannelSubscriber, 0, len(rows))
	for _, row := range rows {
		subscribers = append(subscribers, models.ChannelSubscriber{
			Subscriber: models.PublicUser{
				ID:       row.ID,
				Username: row.Username,
				FullName: row.FullName,
				Avatar:   row.Avatar,
			},
			SubscribersCount: total,
		})
	}
	return subscribers, nil
}

// channelRow is the flat scan target for the subscribed-channels join.
type channelRow struct {
	ID               uint
	Username         string
	FullName         string
	Avatar           string
	SubscribersCount int64
	IsSubscribed     bool
}

// ListSubscribedChannels returns the channels the subscriber follows. Each
// row carries that channel's own subscriber count and whether the acting
// user (currentUserID, possibly different from subscriberID) is among its
// subscribers.
func (r *subscriptionRepository) ListSubscribedChannels(ctx context.Context, subscriberID, currentUserID uint) ([]models.SubscribedChannel, error) {
	var rows []channelRow
	err := r.db.WithContext(ctx).
		Model(&models.Subscription{}).
		Select("users.id, users.username, users.full_name, users.avatar, "+
			"(SELECT COUNT(*) FROM subscriptions s2 WHERE s2.channel_id = users.id) as subscribers_count, "+
			"EXISTS(SELECT 1 FROM subscriptions s3 WHERE s3.channel_id = users.id AND s3.subscriber_id = ?) as is_subscribed",
			currentUserID).
		Joins("JOIN users ON users.id = subscriptions.channel_id AND users.deleted_at IS NULL").
		Where("subscriptions.subscriber_id = ?", subscriberID).
		Order("subscriptions.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	channels := make([]models.SubscribedChannel, 0, len(rows))
	for _, row := range rows {
		channels = append(channels, models.SubscribedChannel{
			Channel: models.PublicUser{
				ID:       row.ID,
				Username: row.Username,
				FullName: row.FullName,
				Avatar:   row.Avatar,
			},
			SubscribersCount: row.SubscribersCount,
			IsSubscribed:     row.IsSubscribed,
		})
	}
	return channels, nil
}
