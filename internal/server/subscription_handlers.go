package server

import (
	"github.com/code-sankar/Backend-ChaiAurCode/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ToggleSubscription handles POST /api/v1/subscriptions/c/:channelId
func (s *Server) ToggleSubscription(c *fiber.Ctx) error {
	channelID, err := s.parseID(c, "channelId")
	if err != nil {
		return nil
	}

	result, err := s.subService.ToggleSubscription(c.Context(), s.currentUserID(c), channelID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	message := "Subscribed successfully"
	if !result.Subscribed {
		message = "Unsubscribed successfully"
	}
	return models.Respond(c, fiber.StatusOK, result, message)
}

// GetChannelSubscribers handles GET /api/v1/subscriptions/c/:channelId
func (s *Server) GetChannelSubscribers(c *fiber.Ctx) error {
	channelID, err := s.parseID(c, "channelId")
	if err != nil {
		return nil
	}

	subscribers, err := s.subService.GetChannelSubscribers(c.Context(), channelID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return models.Respond(c, fiber.StatusOK, subscribers, "Subscribers fetched successfully")
}

// GetSubscribedChannels handles GET /api/v1/subscriptions/u/:subscriberId
func (s *Server) GetSubscribedChannels(c *fiber.Ctx) error {
	subscriberID, err := s.parseID(c, "subscriberId")
	if err != nil {
		return nil
	}
	currentUserID, _ := s.optionalUserID(c)

	channels, err := s.subService.GetSubscribedChannels(c.Context(), subscriberID, currentUserID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return models.Respond(c, fiber.StatusOK, channels, "Subscribed channels fetched successfully")
}
