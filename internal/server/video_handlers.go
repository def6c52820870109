package server

import (
	"github.com/code-sankar/Backend-ChaiAurCode/internal/models"
	"github.com/code-sankar/Backend-ChaiAurCode/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetVideos handles GET /api/v1/videos
func (s *Server) GetVideos(c *fiber.Ctx) error {
	p := parsePagination(c, 20)
	currentUserID, _ := s.optionalUserID(c)

	videos, err := s.videoService.ListVideos(c.Context(), p.Limit, p.Offset, currentUserID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return models.Respond(c, fiber.StatusOK, videos, "Videos fetched successfully")
}

// GetVideo handles GET /api/v1/videos/:id. Fetching a video counts a view.
func (s *Server) GetVideo(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	currentUserID, _ := s.optionalUserID(c)

	video, err := s.videoService.WatchVideo(c.Context(), id, currentUserID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return models.Respond(c, fiber.StatusOK, video, "Video fetched successfully")
}

// GetUserVideos handles GET /api/v1/users/:id/videos
func (s *Server) GetUserVideos(c *fiber.Ctx) error {
	ownerID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	p := parsePagination(c, 20)
	currentUserID, _ := s.optionalUserID(c)

	videos, err := s.videoService.GetUserVideos(c.Context(), ownerID, p.Limit, p.Offset, currentUserID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return models.Respond(c, fiber.StatusOK, videos, "Channel videos fetched successfully")
}

// CreateVideo handles POST /api/v1/videos
func (s *Server) CreateVideo(c *fiber.Ctx) error {
	var req struct {
		Title       string  `json:"title"`
		Description string  `json:"description"`
		VideoFile   string  `json:"video_file"`
		Thumbnail   string  `json:"thumbnail"`
		Duration    float64 `json:"duration"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	video, err := s.videoService.CreateVideo(c.Context(), service.CreateVideoInput{
		UserID:      s.currentUserID(c),
		Title:       req.Title,
		Description: req.Description,
		VideoFile:   req.VideoFile,
		Thumbnail:   req.Thumbnail,
		Duration:    req.Duration,
	})
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return models.Respond(c, fiber.StatusCreated, video, "Video published successfully")
}

// UpdateVideo handles PATCH /api/v1/videos/:id
func (s *Server) UpdateVideo(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Thumbnail   string `json:"thumbnail"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	video, err := s.videoService.UpdateVideo(c.Context(), service.UpdateVideoInput{
		UserID:      s.currentUserID(c),
		VideoID:     id,
		Title:       req.Title,
		Description: req.Description,
		Thumbnail:   req.Thumbnail,
	})
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return models.Respond(c, fiber.StatusOK, video, "Video updated successfully")
}

// DeleteVideo handles DELETE /api/v1/videos/:id
func (s *Server) DeleteVideo(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.videoService.DeleteVideo(c.Context(), s.currentUserID(c), id); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return models.Respond(c, fiber.StatusOK, nil, "Video deleted successfully")
}

// TogglePublish handles PATCH /api/v1/videos/:id/toggle-publish
func (s *Server) TogglePublish(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	video, err := s.videoService.TogglePublish(c.Context(), s.currentUserID(c), id)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return models.Respond(c, fiber.StatusOK, video, "Publish status toggled successfully")
}

// ToggleVideoLike handles POST /api/v1/videos/:id/like
func (s *Server) ToggleVideoLike(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	video, err := s.videoService.ToggleLike(c.Context(), s.currentUserID(c), id)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return models.Respond(c, fiber.StatusOK, video, "Like toggled successfully")
}

// GetLikedVideos handles GET /api/v1/likes/videos
func (s *Server) GetLikedVideos(c *fiber.Ctx) error {
	p := parsePagination(c, 20)

	videos, err := s.videoService.GetLikedVideos(c.Context(), s.currentUserID(c), p.Limit, p.Offset)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return models.Respond(c, fiber.StatusOK, videos, "Liked videos fetched successfully")
}
