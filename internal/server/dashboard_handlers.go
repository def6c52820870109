package server

import (
	"github.com/code-sankar/Backend-ChaiAurCode/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetChannelStats handles GET /api/v1/dashboard/stats/:userId
func (s *Server) GetChannelStats(c *fiber.Ctx) error {
	channelID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	stats, err := s.statsService.GetChannelStats(c.Context(), channelID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return models.Respond(c, fiber.StatusOK, stats, "Channel stats fetched successfully")
}

// GetChannelVideos handles GET /api/v1/dashboard/videos. It lists the
// authenticated channel owner's videos, unpublished ones included.
func (s *Server) GetChannelVideos(c *fiber.Ctx) error {
	p := parsePagination(c, 20)

	videos, err := s.statsService.GetChannelVideos(c.Context(), s.currentUserID(c), p.Limit, p.Offset)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return models.Respond(c, fiber.StatusOK, videos, "Channel videos fetched successfully")
}
