package service

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-sankar/Backend-ChaiAurCode/internal/models"
)

func TestAddComment_BlankContent(t *testing.T) {
	svc := NewCommentService(&stubCommentRepo{}, &stubVideoRepo{})

	_, err := svc.AddComment(context.Background(), 1, 5, "   ")

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, fiber.StatusBadRequest, appErr.Status)
}

func TestAddComment_MissingVideo(t *testing.T) {
	videoRepo := &stubVideoRepo{
		getByIDFn: func(ctx context.Context, id uint, currentUserID uint) (*models.Video, error) {
			return nil, models.NewNotFoundError("video", id)
		},
	}
	svc := NewCommentService(&stubCommentRepo{}, videoRepo)

	_, err := svc.AddComment(context.Background(), 1, 404, "nice video")

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, fiber.StatusNotFound, appErr.Status)
}

func TestUpdateComment_NonAuthorForbidden(t *testing.T) {
	repo := &stubCommentRepo{
		getByIDFn: func(ctx context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, Content: "first", UserID: 1, VideoID: 5}, nil
		},
	}
	svc := NewCommentService(repo, &stubVideoRepo{})

	_, err := svc.UpdateComment(context.Background(), 2, 9, "edited")

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, fiber.StatusForbidden, appErr.Status)
}

func TestDeleteComment_AuthorMayDelete(t *testing.T) {
	deleted := false
	repo := &stubCommentRepo{
		getByIDFn: func(ctx context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, UserID: 1, VideoID: 5}, nil
		},
		deleteFn: func(ctx context.Context, id uint) error {
			deleted = true
			return nil
		},
	}
	svc := NewCommentService(repo, &stubVideoRepo{})

	err := svc.DeleteComment(context.Background(), 1, 9)

	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestDeleteComment_VideoOwnerMayDelete(t *testing.T) {
	deleted := false
	repo := &stubCommentRepo{
		getByIDFn: func(ctx context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, UserID: 1, VideoID: 5}, nil
		},
		deleteFn: func(ctx context.Context, id uint) error {
			deleted = true
			return nil
		},
	}
	videoRepo := &stubVideoRepo{
		getByIDFn: func(ctx context.Context, id uint, currentUserID uint) (*models.Video, error) {
			return &models.Video{ID: id, OwnerID: 3, IsPublished: true}, nil
		},
	}
	svc := NewCommentService(repo, videoRepo)

	err := svc.DeleteComment(context.Background(), 3, 9)

	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestDeleteComment_StrangerForbidden(t *testing.T) {
	repo := &stubCommentRepo{
		getByIDFn: func(ctx context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, UserID: 1, VideoID: 5}, nil
		},
	}
	videoRepo := &stubVideoRepo{
		getByIDFn: func(ctx context.Context, id uint, currentUserID uint) (*models.Video, error) {
			return &models.Video{ID: id, OwnerID: 3, IsPublished: true}, nil
		},
	}
	svc := NewCommentService(repo, videoRepo)

	err := svc.DeleteComment(context.Background(), 7, 9)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, fiber.StatusForbidden, appErr.Status)
}
