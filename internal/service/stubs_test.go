package service

import (
	"context"

	"github.com/code-sankar/Backend-ChaiAurCode/internal/models"
)

// Function-field stubs for the repository interfaces. Only the fields a test
// sets are callable; everything else panics to surface unexpected calls.

type stubUserRepo struct {
	createFn        func(ctx context.Context, user *models.User) error
	getByIDFn       func(ctx context.Context, id uint) (*models.User, error)
	getByEmailFn    func(ctx context.Context, email string) (*models.User, error)
	getByUsernameFn func(ctx context.Context, username string) (*models.User, error)
	updateFn        func(ctx context.Context, user *models.User) error
	deleteFn        func(ctx context.Context, id uint) error
	listFn          func(ctx context.Context, limit, offset int) ([]models.User, error)
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *stubUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *stubUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *stubUserRepo) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *stubUserRepo) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *stubUserRepo) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}

type stubSubscriptionRepo struct {
	getFn                    func(ctx context.Context, subscriberID, channelID uint) (*models.Subscription, error)
	createFn                 func(ctx context.Context, sub *models.Subscription) error
	deleteFn                 func(ctx context.Context, subscriberID, channelID uint) error
	countForChannelFn        func(ctx context.Context, channelID uint) (int64, error)
	countForSubscriberFn     func(ctx context.Context, subscriberID uint) (int64, error)
	listChannelSubscribersFn func(ctx context.Context, channelID uint) ([]models.ChannelSubscriber, error)
	listSubscribedChannelsFn func(ctx context.Context, subscriberID, currentUserID uint) ([]models.SubscribedChannel, error)
}

func (s *stubSubscriptionRepo) Get(ctx context.Context, subscriberID, channelID uint) (*models.Subscription, error) {
	return s.getFn(ctx, subscriberID, channelID)
}
func (s *stubSubscriptionRepo) Create(ctx context.Context, sub *models.Subscription) error {
	return s.createFn(ctx, sub)
}
func (s *stubSubscriptionRepo) Delete(ctx context.Context, subscriberID, channelID uint) error {
	return s.deleteFn(ctx, subscriberID, channelID)
}
func (s *stubSubscriptionRepo) CountForChannel(ctx context.Context, channelID uint) (int64, error) {
	return s.countForChannelFn(ctx, channelID)
}
func (s *stubSubscriptionRepo) CountForSubscriber(ctx context.Context, subscriberID uint) (int64, error) {
	return s.countForSubscriberFn(ctx, subscriberID)
}
func (s *stubSubscriptionRepo) ListChannelSubscribers(ctx context.Context, channelID uint) ([]models.ChannelSubscriber, error) {
	return s.listChannelSubscribersFn(ctx, channelID)
}
func (s *stubSubscriptionRepo) ListSubscribedChannels(ctx context.Context, subscriberID, currentUserID uint) ([]models.SubscribedChannel, error) {
	return s.listSubscribedChannelsFn(ctx, subscriberID, currentUserID)
}

type stubVideoRepo struct {
	createFn         func(ctx context.Context, video *models.Video) error
	getByIDFn        func(ctx context.Context, id uint, currentUserID uint) (*models.Video, error)
	getByOwnerFn     func(ctx context.Context, ownerID uint, limit, offset int, currentUserID uint) ([]*models.Video, error)
	listPublishedFn  func(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Video, error)
	updateFn         func(ctx context.Context, video *models.Video) error
	deleteFn         func(ctx context.Context, id uint) error
	incrementViewsFn func(ctx context.Context, id uint) error
	isLikedFn        func(ctx context.Context, userID, videoID uint) (bool, error)
	likeFn           func(ctx context.Context, userID, videoID uint) error
	unlikeFn         func(ctx context.Context, userID, videoID uint) error
	getLikedVideosFn func(ctx context.Context, userID uint, limit, offset int) ([]*models.Video, error)
}

func (s *stubVideoRepo) Create(ctx context.Context, video *models.Video) error {
	return s.createFn(ctx, video)
}
func (s *stubVideoRepo) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Video, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *stubVideoRepo) GetByOwner(ctx context.Context, ownerID uint, limit, offset int, currentUserID uint) ([]*models.Video, error) {
	return s.getByOwnerFn(ctx, ownerID, limit, offset, currentUserID)
}
func (s *stubVideoRepo) ListPublished(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Video, error) {
	return s.listPublishedFn(ctx, limit, offset, currentUserID)
}
func (s *stubVideoRepo) Update(ctx context.Context, video *models.Video) error {
	return s.updateFn(ctx, video)
}
func (s *stubVideoRepo) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *stubVideoRepo) IncrementViews(ctx context.Context, id uint) error {
	return s.incrementViewsFn(ctx, id)
}
func (s *stubVideoRepo) IsLiked(ctx context.Context, userID, videoID uint) (bool, error) {
	return s.isLikedFn(ctx, userID, videoID)
}
func (s *stubVideoRepo) Like(ctx context.Context, userID, videoID uint) error {
	return s.likeFn(ctx, userID, videoID)
}
func (s *stubVideoRepo) Unlike(ctx context.Context, userID, videoID uint) error {
	return s.unlikeFn(ctx, userID, videoID)
}
func (s *stubVideoRepo) GetLikedVideos(ctx context.Context, userID uint, limit, offset int) ([]*models.Video, error) {
	return s.getLikedVideosFn(ctx, userID, limit, offset)
}

type stubPlaylistRepo struct {
	createFn          func(ctx context.Context, playlist *models.Playlist) error
	getByIDFn         func(ctx context.Context, id uint) (*models.Playlist, error)
	getDetailsFn      func(ctx context.Context, id uint) (*models.PlaylistDetails, error)
	listByOwnerFn     func(ctx context.Context, ownerID uint) ([]models.PlaylistDetails, error)
	updateFn          func(ctx context.Context, playlist *models.Playlist) error
	deleteFn          func(ctx context.Context, id uint) error
	addVideoFn        func(ctx context.Context, playlistID, videoID uint) error
	removeVideoFn     func(ctx context.Context, playlistID, videoID uint) error
	hasVideoFn        func(ctx context.Context, playlistID, videoID uint) (bool, error)
	videoMembershipFn func(ctx context.Context, ownerID, videoID uint) ([]models.PlaylistVideoFlag, error)
}

func (s *stubPlaylistRepo) Create(ctx context.Context, playlist *models.Playlist) error {
	return s.createFn(ctx, playlist)
}
func (s *stubPlaylistRepo) GetByID(ctx context.Context, id uint) (*models.Playlist, error) {
	return s.getByIDFn(ctx, id)
}
func (s *stubPlaylistRepo) GetDetails(ctx context.Context, id uint) (*models.PlaylistDetails, error) {
	return s.getDetailsFn(ctx, id)
}
func (s *stubPlaylistRepo) ListByOwner(ctx context.Context, ownerID uint) ([]models.PlaylistDetails, error) {
	return s.listByOwnerFn(ctx, ownerID)
}
func (s *stubPlaylistRepo) Update(ctx context.Context, playlist *models.Playlist) error {
	return s.updateFn(ctx, playlist)
}
func (s *stubPlaylistRepo) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *stubPlaylistRepo) AddVideo(ctx context.Context, playlistID, videoID uint) error {
	return s.addVideoFn(ctx, playlistID, videoID)
}
func (s *stubPlaylistRepo) RemoveVideo(ctx context.Context, playlistID, videoID uint) error {
	return s.removeVideoFn(ctx, playlistID, videoID)
}
func (s *stubPlaylistRepo) HasVideo(ctx context.Context, playlistID, videoID uint) (bool, error) {
	return s.hasVideoFn(ctx, playlistID, videoID)
}
func (s *stubPlaylistRepo) VideoMembership(ctx context.Context, ownerID, videoID uint) ([]models.PlaylistVideoFlag, error) {
	return s.videoMembershipFn(ctx, ownerID, videoID)
}

type stubStatsRepo struct {
	channelVideoStatsFn func(ctx context.Context, ownerID uint) (*models.VideoStats, error)
	subscriberCountFn   func(ctx context.Context, channelID uint) (int64, error)
	tweetCountFn        func(ctx context.Context, ownerID uint) (int64, error)
}

func (s *stubStatsRepo) ChannelVideoStats(ctx context.Context, ownerID uint) (*models.VideoStats, error) {
	return s.channelVideoStatsFn(ctx, ownerID)
}
func (s *stubStatsRepo) SubscriberCount(ctx context.Context, channelID uint) (int64, error) {
	return s.subscriberCountFn(ctx, channelID)
}
func (s *stubStatsRepo) TweetCount(ctx context.Context, ownerID uint) (int64, error) {
	return s.tweetCountFn(ctx, ownerID)
}

type stubTweetRepo struct {
	createFn     func(ctx context.Context, tweet *models.Tweet) error
	getByIDFn    func(ctx context.Context, id uint) (*models.Tweet, error)
	getByOwnerFn func(ctx context.Context, ownerID uint, limit, offset int) ([]models.Tweet, error)
	updateFn     func(ctx context.Context, tweet *models.Tweet) error
	deleteFn     func(ctx context.Context, id uint) error
}

func (s *stubTweetRepo) Create(ctx context.Context, tweet *models.Tweet) error {
	return s.createFn(ctx, tweet)
}
func (s *stubTweetRepo) GetByID(ctx context.Context, id uint) (*models.Tweet, error) {
	return s.getByIDFn(ctx, id)
}
func (s *stubTweetRepo) GetByOwner(ctx context.Context, ownerID uint, limit, offset int) ([]models.Tweet, error) {
	return s.getByOwnerFn(ctx, ownerID, limit, offset)
}
func (s *stubTweetRepo) Update(ctx context.Context, tweet *models.Tweet) error {
	return s.updateFn(ctx, tweet)
}
func (s *stubTweetRepo) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

type stubCommentRepo struct {
	createFn     func(ctx context.Context, comment *models.Comment) error
	getByIDFn    func(ctx context.Context, id uint) (*models.Comment, error)
	getByVideoFn func(ctx context.Context, videoID uint, limit, offset int) ([]models.Comment, error)
	updateFn     func(ctx context.Context, comment *models.Comment) error
	deleteFn     func(ctx context.Context, id uint) error
}

func (s *stubCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *stubCommentRepo) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *stubCommentRepo) GetByVideo(ctx context.Context, videoID uint, limit, offset int) ([]models.Comment, error) {
	return s.getByVideoFn(ctx, videoID, limit, offset)
}
func (s *stubCommentRepo) Update(ctx context.Context, comment *models.Comment) error {
	return s.updateFn(ctx, comment)
}
func (s *stubCommentRepo) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
