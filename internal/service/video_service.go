package service

import (
	"context"
	"strings"

	"github.com/code-sankar/Backend-ChaiAurCode/internal/models"
	"github.com/code-sankar/Backend-ChaiAurCode/internal/repository"
)

type VideoService struct {
	videoRepo repository.VideoRepository
}

type CreateVideoInput struct {
	UserID      uint
	Title       string
	Description string
	VideoFile   string
	Thumbnail   string
	Duration    float64
}

type UpdateVideoInput struct {
	UserID      uint
	VideoID     uint
	Title       string
	Description string
	Thumbnail   string
}

func NewVideoService(videoRepo repository.VideoRepository) *VideoService {
	return &VideoService{videoRepo: videoRepo}
}

const maxVideoTitleLen = 200

func (s *VideoService) CreateVideo(ctx context.Context, in CreateVideoInput) (*models.Video, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(title) > maxVideoTitleLen {
		return nil, models.NewValidationError("Title too long (max 200 characters)")
	}
	if strings.TrimSpace(in.VideoFile) == "" {
		return nil, models.NewValidationError("video_file is required")
	}

	video := &models.Video{
		Title:       title,
		Description: in.Description,
		VideoFile:   in.VideoFile,
		Thumbnail:   in.Thumbnail,
		Duration:    in.Duration,
		IsPublished: true,
		OwnerID:     in.UserID,
	}
	if err := s.videoRepo.Create(ctx, video); err != nil {
		return nil, err
	}
	return s.videoRepo.GetByID(ctx, video.ID, in.UserID)
}

// GetVideo fetches a video with its derived counts and the caller's liked
// flag. Unpublished videos are visible only to their owner; everyone else
// gets a not-found rather than a hint that the video exists.
func (s *VideoService) GetVideo(ctx context.Context, id, currentUserID uint) (*models.Video, error) {
	video, err := s.videoRepo.GetByID(ctx, id, currentUserID)
	if err != nil {
		return nil, err
	}
	if !video.IsPublished && video.OwnerID != currentUserID {
		return nil, models.NewNotFoundError("video", id)
	}
	return video, nil
}

// WatchVideo is GetVideo plus a view-count bump. The increment is atomic at
// the database so concurrent watches never lose counts.
func (s *VideoService) WatchVideo(ctx context.Context, id, currentUserID uint) (*models.Video, error) {
	video, err := s.GetVideo(ctx, id, currentUserID)
	if err != nil {
		return nil, err
	}
	if err := s.videoRepo.IncrementViews(ctx, id); err != nil {
		return nil, err
	}
	video.Views++
	return video, nil
}

func (s *VideoService) ListVideos(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Video, error) {
	return s.videoRepo.ListPublished(ctx, limit, offset, currentUserID)
}

func (s *VideoService) GetUserVideos(ctx context.Context, ownerID uint, limit, offset int, currentUserID uint) ([]*models.Video, error) {
	videos, err := s.videoRepo.GetByOwner(ctx, ownerID, limit, offset, currentUserID)
	if err != nil {
		return nil, err
	}
	if ownerID == currentUserID {
		return videos, nil
	}
	published := make([]*models.Video, 0, len(videos))
	for _, v := range videos {
		if v.IsPublished {
			published = append(published, v)
		}
	}
	return published, nil
}

func (s *VideoService) ownedVideo(ctx context.Context, videoID, userID uint) (*models.Video, error) {
	video, err := s.videoRepo.GetByID(ctx, videoID, userID)
	if err != nil {
		return nil, err
	}
	if video.OwnerID != userID {
		return nil, models.NewForbiddenError("You can only modify your own videos")
	}
	return video, nil
}

func (s *VideoService) UpdateVideo(ctx context.Context, in UpdateVideoInput) (*models.Video, error) {
	video, err := s.ownedVideo(ctx, in.VideoID, in.UserID)
	if err != nil {
		return nil, err
	}

	if title := strings.TrimSpace(in.Title); title != "" {
		if len(title) > maxVideoTitleLen {
			return nil, models.NewValidationError("Title too long (max 200 characters)")
		}
		video.Title = title
	}
	if in.Description != "" {
		video.Description = in.Description
	}
	if in.Thumbnail != "" {
		video.Thumbnail = in.Thumbnail
	}

	if err := s.videoRepo.Update(ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

func (s *VideoService) DeleteVideo(ctx context.Context, userID, videoID uint) error {
	if _, err := s.ownedVideo(ctx, videoID, userID); err != nil {
		return err
	}
	return s.videoRepo.Delete(ctx, videoID)
}

// TogglePublish flips the video's published state and returns the new state.
func (s *VideoService) TogglePublish(ctx context.Context, userID, videoID uint) (*models.Video, error) {
	video, err := s.ownedVideo(ctx, videoID, userID)
	if err != nil {
		return nil, err
	}
	video.IsPublished = !video.IsPublished
	if err := s.videoRepo.Update(ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

// ToggleLike flips the caller's like on the video. The likes table's unique
// index keeps a user from ever holding two likes on the same video.
func (s *VideoService) ToggleLike(ctx context.Context, userID, videoID uint) (*models.Video, error) {
	if _, err := s.GetVideo(ctx, videoID, userID); err != nil {
		return nil, err
	}

	liked, err := s.videoRepo.IsLiked(ctx, userID, videoID)
	if err != nil {
		return nil, err
	}
	if liked {
		if err := s.videoRepo.Unlike(ctx, userID, videoID); err != nil {
			return nil, err
		}
	} else {
		if err := s.videoRepo.Like(ctx, userID, videoID); err != nil {
			return nil, err
		}
	}
	return s.videoRepo.GetByID(ctx, videoID, userID)
}

func (s *VideoService) GetLikedVideos(ctx context.Context, userID uint, limit, offset int) ([]*models.Video, error) {
	return s.videoRepo.GetLikedVideos(ctx, userID, limit, offset)
}
