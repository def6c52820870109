package server

import (
	"github.com/code-sankar/Backend-ChaiAurCode/internal/models"
	"github.com/code-sankar/Backend-ChaiAurCode/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePlaylist handles POST /api/v1/playlist
func (s *Server) CreatePlaylist(c *fiber.Ctx) error {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	playlist, err := s.playlistService.CreatePlaylist(c.Context(), service.CreatePlaylistInput{
		UserID:      s.currentUserID(c),
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return models.Respond(c, fiber.StatusCreated, playlist, "Playlist created successfully")
}

// GetPlaylist handles GET /api/v1/playlist/:id
func (s *Server) GetPlaylist(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	details, err := s.playlistService.GetPlaylist(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return models.Respond(c, fiber.StatusOK, details, "Playlist fetched successfully")
}

// GetUserPlaylists handles GET /api/v1/users/:id/playlists
func (s *Server) GetUserPlaylists(c *fiber.Ctx) error {
	ownerID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	playlists, err := s.playlistService.GetUserPlaylists(c.Context(), ownerID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return models.Respond(c, fiber.StatusOK, playlists, "User playlists fetched successfully")
}

// UpdatePlaylist handles PATCH /api/v1/playlist/:id
func (s *Server) UpdatePlaylist(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	playlist, err := s.playlistService.UpdatePlaylist(c.Context(), service.UpdatePlaylistInput{
		UserID:      s.currentUserID(c),
		PlaylistID:  id,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return models.Respond(c, fiber.StatusOK, playlist, "Playlist updated successfully")
}

// DeletePlaylist handles DELETE /api/v1/playlist/:id
func (s *Server) DeletePlaylist(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.playlistService.DeletePlaylist(c.Context(), s.currentUserID(c), id); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return models.Respond(c, fiber.StatusOK, nil, "Playlist deleted successfully")
}

// AddVideoToPlaylist handles PATCH /api/v1/playlist/add/:videoId/:playlistId
func (s *Server) AddVideoToPlaylist(c *fiber.Ctx) error {
	videoID, err := s.parseID(c, "videoId")
	if err != nil {
		return nil
	}
	playlistID, err := s.parseID(c, "playlistId")
	if err != nil {
		return nil
	}

	details, err := s.playlistService.AddVideo(c.Context(), s.currentUserID(c), playlistID, videoID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return models.Respond(c, fiber.StatusOK, details, "Video added to playlist successfully")
}

// RemoveVideoFromPlaylist handles PATCH /api/v1/playlist/remove/:videoId/:playlistId
func (s *Server) RemoveVideoFromPlaylist(c *fiber.Ctx) error {
	videoID, err := s.parseID(c, "videoId")
	if err != nil {
		return nil
	}
	playlistID, err := s.parseID(c, "playlistId")
	if err != nil {
		return nil
	}

	details, err := s.playlistService.RemoveVideo(c.Context(), s.currentUserID(c), playlistID, videoID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return models.Respond(c, fiber.StatusOK, details, "Video removed from playlist successfully")
}

// GetPlaylistsForVideo handles GET /api/v1/playlist/video/:videoId. It
// returns every playlist of the caller with a flag for whether the video is
// already a member.
func (s *Server) GetPlaylistsForVideo(c *fiber.Ctx) error {
	videoID, err := s.parseID(c, "videoId")
	if err != nil {
		return nil
	}

	flags, err := s.playlistService.VideoMembership(c.Context(), s.currentUserID(c), videoID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return models.Respond(c, fiber.StatusOK, flags, "Playlists fetched successfully")
}
