package service

import (
	"context"

	"github.com/code-sankar/Backend-ChaiAurCode/internal/models"
	"github.com/code-sankar/Backend-ChaiAurCode/internal/repository"
)

type SubscriptionService struct {
	subRepo  repository.SubscriptionRepository
	userRepo repository.UserRepository
}

// ToggleResult reports the subscription state after a toggle.
type ToggleResult struct {
	Subscribed bool `json:"subscribed"`
}

func NewSubscriptionService(subRepo repository.SubscriptionRepository, userRepo repository.UserRepository) *SubscriptionService {
	return &SubscriptionService{
		subRepo:  subRepo,
		userRepo: userRepo,
	}
}

// ToggleSubscription flips the subscriber's state on the channel. A second
// toggle deletes the subscription row outright rather than leaving a tombstone.
func (s *SubscriptionService) ToggleSubscription(ctx context.Context, subscriberID, channelID uint) (*ToggleResult, error) {
	if subscriberID == channelID {
		return nil, models.NewForbiddenError("You cannot subscribe to your own channel")
	}

	if _, err := s.userRepo.GetByID(ctx, channelID); err != nil {
		return nil, err
	}

	existing, err := s.subRepo.Get(ctx, subscriberID, channelID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if err := s.subRepo.Delete(ctx, subscriberID, channelID); err != nil {
			return nil, err
		}
		return &ToggleResult{Subscribed: false}, nil
	}

	sub := &models.Subscription{
		SubscriberID: subscriberID,
		ChannelID:    channelID,
	}
	if err := s.subRepo.Create(ctx, sub); err != nil {
		return nil, err
	}
	return &ToggleResult{Subscribed: true}, nil
}

func (s *SubscriptionService) GetChannelSubscribers(ctx context.Context, channelID uint) ([]models.ChannelSubscriber, error) {
	if _, err := s.userRepo.GetByID(ctx, channelID); err != nil {
		return nil, err
	}
	return s.subRepo.ListChannelSubscribers(ctx, channelID)
}

// GetSubscribedChannels lists the channels subscriberID follows. The
// is_subscribed flag on each row is computed against currentUserID, which may
// be a different user browsing someone else's subscriptions.
func (s *SubscriptionService) GetSubscribedChannels(ctx context.Context, subscriberID, currentUserID uint) ([]models.SubscribedChannel, error) {
	if _, err := s.userRepo.GetByID(ctx, subscriberID); err != nil {
		return nil, err
	}
	return s.subRepo.ListSubscribedChannels(ctx, subscriberID, currentUserID)
}
