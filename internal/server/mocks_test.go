package server

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/code-sankar/Backend-ChaiAurCode/internal/models"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]models.User), args.Error(1)
}

// MockSubscriptionRepository is a mock of the SubscriptionRepository interface
type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Get(ctx context.Context, subscriberID, channelID uint) (*models.Subscription, error) {
	args := m.Called(ctx, subscriberID, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) Create(ctx context.Context, sub *models.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) Delete(ctx context.Context, subscriberID, channelID uint) error {
	args := m.Called(ctx, subscriberID, channelID)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) CountForChannel(ctx context.Context, channelID uint) (int64, error) {
	args := m.Called(ctx, channelID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubscriptionRepository) CountForSubscriber(ctx context.Context, subscriberID uint) (int64, error) {
	args := m.Called(ctx, subscriberID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubscriptionRepository) ListChannelSubscribers(ctx context.Context, channelID uint) ([]models.ChannelSubscriber, error) {
	args := m.Called(ctx, channelID)
	return args.Get(0).([]models.ChannelSubscriber), args.Error(1)
}

func (m *MockSubscriptionRepository) ListSubscribedChannels(ctx context.Context, subscriberID, currentUserID uint) ([]models.SubscribedChannel, error) {
	args := m.Called(ctx, subscriberID, currentUserID)
	return args.Get(0).([]models.SubscribedChannel), args.Error(1)
}

// MockVideoRepository is a mock of the VideoRepository interface
type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) Create(ctx context.Context, video *models.Video) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

func (m *MockVideoRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Video, error) {
	args := m.Called(ctx, id, currentUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Video), args.Error(1)
}

func (m *MockVideoRepository) GetByOwner(ctx context.Context, ownerID uint, limit, offset int, currentUserID uint) ([]*models.Video, error) {
	args := m.Called(ctx, ownerID, limit, offset, currentUserID)
	return args.Get(0).([]*models.Video), args.Error(1)
}

func (m *MockVideoRepository) ListPublished(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Video, error) {
	args := m.Called(ctx, limit, offset, currentUserID)
	return args.Get(0).([]*models.Video), args.Error(1)
}

func (m *MockVideoRepository) Update(ctx context.Context, video *models.Video) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

func (m *MockVideoRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVideoRepository) IncrementViews(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVideoRepository) IsLiked(ctx context.Context, userID, videoID uint) (bool, error) {
	args := m.Called(ctx, userID, videoID)
	return args.Bool(0), args.Error(1)
}

func (m *MockVideoRepository) Like(ctx context.Context, userID, videoID uint) error {
	args := m.Called(ctx, userID, videoID)
	return args.Error(0)
}

func (m *MockVideoRepository) Unlike(ctx context.Context, userID, videoID uint) error {
	args := m.Called(ctx, userID, videoID)
	return args.Error(0)
}

func (m *MockVideoRepository) GetLikedVideos(ctx context.Context, userID uint, limit, offset int) ([]*models.Video, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]*models.Video), args.Error(1)
}
