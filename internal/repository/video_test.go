package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/code-sankar/Backend-ChaiAurCode/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestVideoRepository_GetByID_WithDetails(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewVideoRepository(db)

	rows := sqlmock.NewRows([]string{"id", "title", "owner_id", "is_published", "likes_count", "comments_count", "liked"}).
		AddRow(1, "First upload", 10, true, 5, 3, true)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM likes WHERE likes.video_id = videos.id`)).
		WillReturnRows(rows)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(10, "creator"))

	video, err := repo.GetByID(context.Background(), 1, 2)
	assert.NoError(t, err)
	assert.Equal(t, "First upload", video.Title)
	assert.Equal(t, 5, video.LikesCount)
	assert.Equal(t, 3, video.CommentsCount)
	assert.True(t, video.Liked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepository_GetByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewVideoRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT`)).
		WillReturnError(assert.AnError)

	_, err := repo.GetByID(context.Background(), 42, 1)
	assert.Error(t, err)
}

func TestVideoRepository_Like_IsIdempotent(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewVideoRepository(db)

	// Second insert conflicts and affects zero rows; still no error. The
	// timestamp must stay CURRENT_TIMESTAMP, which both postgres and the
	// in-memory sqlite test store accept.
	insert := `INSERT INTO likes \(user_id, video_id, created_at\)[\s]+VALUES \(.+, .+, CURRENT_TIMESTAMP\)`
	mock.ExpectExec(insert).
		WithArgs(2, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(insert).
		WithArgs(2, 1).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Like(context.Background(), 2, 1))
	assert.NoError(t, repo.Like(context.Background(), 2, 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepository_IsLiked(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewVideoRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "likes"`)).
		WithArgs(2, 1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	liked, err := repo.IsLiked(context.Background(), 2, 1)
	assert.NoError(t, err)
	assert.True(t, liked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepository_Unlike_DeletesRow(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewVideoRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "likes"`)).
		WithArgs(2, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.Unlike(context.Background(), 2, 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepository_IncrementViews(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewVideoRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "videos" SET "views"=views + 1`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.IncrementViews(context.Background(), 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewVideoRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "videos"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	video := &models.Video{Title: "Test", VideoFile: "f.mp4", OwnerID: 1, IsPublished: true}
	assert.NoError(t, repo.Create(context.Background(), video))
	assert.NoError(t, mock.ExpectationsWereMet())
}
