package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/code-sankar/Backend-ChaiAurCode/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestSubscriptionRepository_Get_MissingIsNil(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSubscriptionRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "subscriptions"`)).
		WithArgs(2, 3, 1).
		WillReturnError(gorm.ErrRecordNotFound)

	sub, err := repo.Get(context.Background(), 2, 3)
	assert.NoError(t, err)
	assert.Nil(t, sub)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriptionRepository_Get_Found(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSubscriptionRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "subscriptions"`)).
		WithArgs(2, 3, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "subscriber_id", "channel_id"}).AddRow(7, 2, 3))

	sub, err := repo.Get(context.Background(), 2, 3)
	assert.NoError(t, err)
	assert.NotNil(t, sub)
	assert.Equal(t, uint(2), sub.SubscriberID)
	assert.Equal(t, uint(3), sub.ChannelID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriptionRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSubscriptionRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "subscriptions"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	sub := &models.Subscription{SubscriberID: 2, ChannelID: 3}
	assert.NoError(t, repo.Create(context.Background(), sub))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriptionRepository_Delete_RemovesRow(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSubscriptionRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "subscriptions"`)).
		WithArgs(2, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.Delete(context.Background(), 2, 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriptionRepository_CountForChannel(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSubscriptionRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "subscriptions"`)).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	count, err := repo.CountForChannel(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriptionRepository_ListChannelSubscribers(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSubscriptionRepository(db)

	rows := sqlmock.NewRows([]string{"id", "username", "full_name", "avatar"}).
		AddRow(4, "alice", "Alice A", "a.png").
		AddRow(5, "bob", "Bob B", "b.png")
	mock.ExpectQuery(regexp.QuoteMeta(`JOIN users ON users.id = subscriptions.subscriber_id`)).
		WithArgs(3).
		WillReturnRows(rows)

	subscribers, err := repo.ListChannelSubscribers(context.Background(), 3)
	assert.NoError(t, err)
	assert.Len(t, subscribers, 2)
	assert.Equal(t, "alice", subscribers[0].Subscriber.Username)
	// Each row carries the channel total.
	assert.Equal(t, int64(2), subscribers[0].SubscribersCount)
	assert.Equal(t, int64(2), subscribers[1].SubscribersCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriptionRepository_ListSubscribedChannels(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSubscriptionRepository(db)

	rows := sqlmock.NewRows([]string{"id", "username", "full_name", "avatar", "subscribers_count", "is_subscribed"}).
		AddRow(9, "techchannel", "Tech Channel", "t.png", 120, true).
		AddRow(11, "musicchannel", "Music Channel", "m.png", 45, false)
	mock.ExpectQuery(regexp.QuoteMeta(`JOIN users ON users.id = subscriptions.channel_id`)).
		WithArgs(7, 2).
		WillReturnRows(rows)

	channels, err := repo.ListSubscribedChannels(context.Background(), 2, 7)
	assert.NoError(t, err)
	assert.Len(t, channels, 2)
	assert.Equal(t, "techchannel", channels[0].Channel.Username)
	assert.Equal(t, int64(120), channels[0].SubscribersCount)
	assert.True(t, channels[0].IsSubscribed)
	assert.False(t, channels[1].IsSubscribed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriptionRepository_ListChannelSubscribers_Empty(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSubscriptionRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`JOIN users ON users.id = subscriptions.subscriber_id`)).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "full_name", "avatar"}))

	subscribers, err := repo.ListChannelSubscribers(context.Background(), 3)
	assert.NoError(t, err)
	assert.Empty(t, subscribers)
	assert.NoError(t, mock.ExpectationsWereMet())
}
