package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestPlaylistRepository_HasVideo(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPlaylistRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "playlist_videos"`)).
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	present, err := repo.HasVideo(context.Background(), 1, 2)
	assert.NoError(t, err)
	assert.True(t, present)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaylistRepository_VideoMembership(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPlaylistRepository(db)

	rows := sqlmock.NewRows([]string{"playlist_id", "name", "is_video_present"}).
		AddRow(1, "Watch later", true).
		AddRow(2, "Favorites", false)
	mock.ExpectQuery(regexp.QuoteMeta(`EXISTS(SELECT 1 FROM playlist_videos pv`)).
		WithArgs(5, 3).
		WillReturnRows(rows)

	flags, err := repo.VideoMembership(context.Background(), 3, 5)
	assert.NoError(t, err)
	assert.Len(t, flags, 2)
	assert.True(t, flags[0].IsVideoPresent)
	assert.False(t, flags[1].IsVideoPresent)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaylistRepository_GetDetails_RollsUpPublishedVideos(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPlaylistRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "playlists"`)).
		WithArgs(1, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "owner_id"}).
			AddRow(1, "Watch later", "", 3))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(3, "alice"))

	// The join keeps only published, non-deleted videos; drafts never reach
	// the rollup.
	entries := sqlmock.NewRows([]string{"id", "title", "thumbnail", "duration", "views", "owner_id", "owner_username"}).
		AddRow(10, "first", "thumb-1.png", 12.5, 100, 3, "alice").
		AddRow(11, "second", "thumb-2.png", 8.0, 40, 3, "alice")
	mock.ExpectQuery(regexp.QuoteMeta(`JOIN videos ON videos.id = playlist_videos.video_id AND videos.deleted_at IS NULL AND videos.is_published =`)).
		WithArgs(true, 1).
		WillReturnRows(entries)

	details, err := repo.GetDetails(context.Background(), 1)
	assert.NoError(t, err)
	assert.EqualValues(t, 2, details.VideosCount)
	assert.EqualValues(t, 140, details.TotalViews)
	assert.Equal(t, "thumb-1.png", details.Thumbnail)
	assert.Equal(t, "alice", details.Videos[0].Owner.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaylistRepository_RemoveVideo(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPlaylistRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "playlist_videos"`)).
		WithArgs(1, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.RemoveVideo(context.Background(), 1, 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaylistRepository_AddVideo_AssignsNextPosition(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPlaylistRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(MAX(position), 0) FROM "playlist_videos"`)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "playlist_videos"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))
	mock.ExpectCommit()

	assert.NoError(t, repo.AddVideo(context.Background(), 1, 9))
	assert.NoError(t, mock.ExpectationsWereMet())
}
