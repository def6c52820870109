package service

import (
	"context"
	"strings"

	"github.com/code-sankar/Backend-ChaiAurCode/internal/models"
	"github.com/code-sankar/Backend-ChaiAurCode/internal/repository"
	"github.com/code-sankar/Backend-ChaiAurCode/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepo repository.UserRepository
	subRepo  repository.SubscriptionRepository
}

type UpdateAccountInput struct {
	UserID     uint
	FullName   string
	Email      string
	Avatar     string
	CoverImage string
}

func NewUserService(userRepo repository.UserRepository, subRepo repository.SubscriptionRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		subRepo:  subRepo,
	}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.userRepo.List(ctx, limit, offset)
}

// GetChannelProfile resolves a channel by username and decorates it with
// subscriber aggregates and the viewer's own subscription state.
func (s *UserService) GetChannelProfile(ctx context.Context, username string, currentUserID uint) (*models.ChannelProfile, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, models.NewValidationError("Username is required")
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("channel", 0)
	}

	subscribers, err := s.subRepo.CountForChannel(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	subscribedTo, err := s.subRepo.CountForSubscriber(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	profile := &models.ChannelProfile{
		ID:                user.ID,
		Username:          user.Username,
		FullName:          user.FullName,
		Avatar:            user.Avatar,
		CoverImage:        user.CoverImage,
		SubscribersCount:  subscribers,
		SubscribedToCount: subscribedTo,
	}
	if currentUserID != 0 && currentUserID != user.ID {
		sub, err := s.subRepo.Get(ctx, currentUserID, user.ID)
		if err != nil {
			return nil, err
		}
		profile.IsSubscribed = sub != nil
	}
	return profile, nil
}

func (s *UserService) UpdateAccount(ctx context.Context, in UpdateAccountInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Email != "" && in.Email != user.Email {
		if err := validation.ValidateEmail(in.Email); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		existing, err := s.userRepo.GetByEmail(ctx, in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, models.NewValidationError("Email is already in use")
		}
		user.Email = in.Email
	}
	if in.FullName != "" {
		user.FullName = in.FullName
	}
	if in.Avatar != "" {
		user.Avatar = in.Avatar
	}
	if in.CoverImage != "" {
		user.CoverImage = in.CoverImage
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword verifies the current password before setting the new one.
func (s *UserService) ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return models.NewUnauthorizedError("Current password is incorrect")
	}
	if err := validation.ValidatePassword(newPassword); err != nil {
		return models.NewValidationError(err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return models.NewInternalError(err)
	}
	user.Password = string(hashed)
	return s.userRepo.Update(ctx, user)
}

func (s *UserService) DeleteAccount(ctx context.Context, userID uint) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, userID)
}
