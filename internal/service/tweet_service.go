package service

import (
	"context"
	"strings"

	"github.com/code-sankar/Backend-ChaiAurCode/internal/models"
	"github.com/code-sankar/Backend-ChaiAurCode/internal/repository"
)

type TweetService struct {
	tweetRepo repository.TweetRepository
	userRepo  repository.UserRepository
}

func NewTweetService(tweetRepo repository.TweetRepository, userRepo repository.UserRepository) *TweetService {
	return &TweetService{
		tweetRepo: tweetRepo,
		userRepo:  userRepo,
	}
}

const maxTweetLen = 500

func (s *TweetService) CreateTweet(ctx context.Context, userID uint, content string) (*models.Tweet, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.NewValidationError("Tweet content is required")
	}
	if len(content) > maxTweetLen {
		return nil, models.NewValidationError("Tweet too long (max 500 characters)")
	}

	tweet := &models.Tweet{
		Content: content,
		OwnerID: userID,
	}
	if err := s.tweetRepo.Create(ctx, tweet); err != nil {
		return nil, err
	}
	return s.tweetRepo.GetByID(ctx, tweet.ID)
}

func (s *TweetService) GetUserTweets(ctx context.Context, ownerID uint, limit, offset int) ([]models.Tweet, error) {
	if _, err := s.userRepo.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}
	return s.tweetRepo.GetByOwner(ctx, ownerID, limit, offset)
}

func (s *TweetService) UpdateTweet(ctx context.Context, userID, tweetID uint, content string) (*models.Tweet, error) {
	tweet, err := s.tweetRepo.GetByID(ctx, tweetID)
	if err != nil {
		return nil, err
	}
	if tweet.OwnerID != userID {
		return nil, models.NewForbiddenError("You can only update your own tweets")
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.NewValidationError("Tweet content is required")
	}
	if len(content) > maxTweetLen {
		return nil, models.NewValidationError("Tweet too long (max 500 characters)")
	}

	tweet.Content = content
	if err := s.tweetRepo.Update(ctx, tweet); err != nil {
		return nil, err
	}
	return tweet, nil
}

func (s *TweetService) DeleteTweet(ctx context.Context, userID, tweetID uint) error {
	tweet, err := s.tweetRepo.GetByID(ctx, tweetID)
	if err != nil {
		return err
	}
	if tweet.OwnerID != userID {
		return models.NewForbiddenError("You can only delete your own tweets")
	}
	return s.tweetRepo.Delete(ctx, tweetID)
}
