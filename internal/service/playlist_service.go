package service

import (
	"context"
	"strings"

	"github.com/code-sankar/Backend-ChaiAurCode/internal/models"
	"github.com/code-sankar/Backend-ChaiAurCode/internal/repository"
)

type PlaylistService struct {
	playlistRepo repository.PlaylistRepository
	videoRepo    repository.VideoRepository
}

type CreatePlaylistInput struct {
	UserID      uint
	Name        string
	Description string
}

type UpdatePlaylistInput struct {
	UserID      uint
	PlaylistID  uint
	Name        string
	Description string
}

func NewPlaylistService(playlistRepo repository.PlaylistRepository, videoRepo repository.VideoRepository) *PlaylistService {
	return &PlaylistService{
		playlistRepo: playlistRepo,
		videoRepo:    videoRepo,
	}
}

const maxPlaylistNameLen = 100

func (s *PlaylistService) CreatePlaylist(ctx context.Context, in CreatePlaylistInput) (*models.Playlist, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, models.NewValidationError("Playlist name is required")
	}
	if len(name) > maxPlaylistNameLen {
		return nil, models.NewValidationError("Playlist name too long (max 100 characters)")
	}

	playlist := &models.Playlist{
		Name:        name,
		Description: in.Description,
		OwnerID:     in.UserID,
	}
	if err := s.playlistRepo.Create(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (s *PlaylistService) GetPlaylist(ctx context.Context, id uint) (*models.PlaylistDetails, error) {
	return s.playlistRepo.GetDetails(ctx, id)
}

func (s *PlaylistService) GetUserPlaylists(ctx context.Context, ownerID uint) ([]models.PlaylistDetails, error) {
	return s.playlistRepo.ListByOwner(ctx, ownerID)
}

// ownedPlaylist loads the playlist and rejects the call unless userID owns it.
func (s *PlaylistService) ownedPlaylist(ctx context.Context, playlistID, userID uint) (*models.Playlist, error) {
	playlist, err := s.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if playlist.OwnerID != userID {
		return nil, models.NewForbiddenError("You can only modify your own playlists")
	}
	return playlist, nil
}

func (s *PlaylistService) UpdatePlaylist(ctx context.Context, in UpdatePlaylistInput) (*models.Playlist, error) {
	if strings.TrimSpace(in.Name) == "" && strings.TrimSpace(in.Description) == "" {
		return nil, models.NewValidationError("Provide a name or description to update")
	}

	playlist, err := s.ownedPlaylist(ctx, in.PlaylistID, in.UserID)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(in.Name); name != "" {
		if len(name) > maxPlaylistNameLen {
			return nil, models.NewValidationError("Playlist name too long (max 100 characters)")
		}
		playlist.Name = name
	}
	if in.Description != "" {
		playlist.Description = in.Description
	}

	if err := s.playlistRepo.Update(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (s *PlaylistService) DeletePlaylist(ctx context.Context, userID, playlistID uint) error {
	if _, err := s.ownedPlaylist(ctx, playlistID, userID); err != nil {
		return err
	}
	return s.playlistRepo.Delete(ctx, playlistID)
}

// AddVideo adds a video to the caller's playlist. Adding a video that is
// already a member is a validation error, not a silent no-op.
func (s *PlaylistService) AddVideo(ctx context.Context, userID, playlistID, videoID uint) (*models.PlaylistDetails, error) {
	if _, err := s.ownedPlaylist(ctx, playlistID, userID); err != nil {
		return nil, err
	}
	if _, err := s.videoRepo.GetByID(ctx, videoID, 0); err != nil {
		return nil, err
	}

	present, err := s.playlistRepo.HasVideo(ctx, playlistID, videoID)
	if err != nil {
		return nil, err
	}
	if present {
		return nil, models.NewValidationError("Video is already in this playlist")
	}

	if err := s.playlistRepo.AddVideo(ctx, playlistID, videoID); err != nil {
		return nil, err
	}
	return s.playlistRepo.GetDetails(ctx, playlistID)
}

func (s *PlaylistService) RemoveVideo(ctx context.Context, userID, playlistID, videoID uint) (*models.PlaylistDetails, error) {
	if _, err := s.ownedPlaylist(ctx, playlistID, userID); err != nil {
		return nil, err
	}

	present, err := s.playlistRepo.HasVideo(ctx, playlistID, videoID)
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, models.NewNotFoundError("video in playlist", videoID)
	}

	if err := s.playlistRepo.RemoveVideo(ctx, playlistID, videoID); err != nil {
		return nil, err
	}
	return s.playlistRepo.GetDetails(ctx, playlistID)
}

// VideoMembership reports, per playlist of the caller, whether videoID is a
// member.
func (s *PlaylistService) VideoMembership(ctx context.Context, userID, videoID uint) ([]models.PlaylistVideoFlag, error) {
	if _, err := s.videoRepo.GetByID(ctx, videoID, 0); err != nil {
		return nil, err
	}
	return s.playlistRepo.VideoMembership(ctx, userID, videoID)
}
