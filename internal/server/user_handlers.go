package server

import (
	"github.com/code-sankar/Backend-ChaiAurCode/internal/models"
	"github.com/code-sankar/Backend-ChaiAurCode/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetCurrentUser handles GET /api/v1/users/current-user
func (s *Server) GetCurrentUser(c *fiber.Ctx) error {
	user, err := s.userService.GetUser(c.Context(), s.currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return models.Respond(c, fiber.StatusOK, user, "Current user fetched successfully")
}

// GetAllUsers handles GET /api/v1/users
func (s *Server) GetAllUsers(c *fiber.Ctx) error {
	p := parsePagination(c, 20)
	users, err := s.userService.ListUsers(c.Context(), p.Limit, p.Offset)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	public := make([]models.PublicUser, 0, len(users))
	for i := range users {
		public = append(public, users[i].Public())
	}
	return models.Respond(c, fiber.StatusOK, public, "Users fetched successfully")
}

// GetUser handles GET /api/v1/users/:id
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUser(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return models.Respond(c, fiber.StatusOK, user.Public(), "User fetched successfully")
}

// GetChannelProfile handles GET /api/v1/users/c/:username
func (s *Server) GetChannelProfile(c *fiber.Ctx) error {
	username := c.Params("username")
	currentUserID, _ := s.optionalUserID(c)

	profile, err := s.userService.GetChannelProfile(c.Context(), username, currentUserID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return models.Respond(c, fiber.StatusOK, profile, "Channel profile fetched successfully")
}

// UpdateAccount handles PATCH /api/v1/users/update-account
func (s *Server) UpdateAccount(c *fiber.Ctx) error {
	var req struct {
		FullName   string `json:"full_name"`
		Email      string `json:"email"`
		Avatar     string `json:"avatar"`
		CoverImage string `json:"cover_image"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateAccount(c.Context(), service.UpdateAccountInput{
		UserID:     s.currentUserID(c),
		FullName:   req.FullName,
		Email:      req.Email,
		Avatar:     req.Avatar,
		CoverImage: req.CoverImage,
	})
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return models.Respond(c, fiber.StatusOK, user, "Account details updated successfully")
}

// ChangePassword handles POST /api/v1/users/change-password
func (s *Server) ChangePassword(c *fiber.Ctx) error {
	var req struct {
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.userService.ChangePassword(c.Context(), s.currentUserID(c), req.OldPassword, req.NewPassword); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return models.Respond(c, fiber.StatusOK, nil, "Password changed successfully")
}

// DeleteAccount handles DELETE /api/v1/users/me
func (s *Server) DeleteAccount(c *fiber.Ctx) error {
	if err := s.userService.DeleteAccount(c.Context(), s.currentUserID(c)); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return models.Respond(c, fiber.StatusOK, nil, "Account deleted successfully")
}
