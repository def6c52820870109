// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/code-sankar/Backend-ChaiAurCode/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the seeder and tests.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db: db,
		r:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// pastTime returns a timestamp spread over the last maxDays days so seeded
// feeds do not all share one creation instant.
func (f *Factory) pastTime(maxDays int) time.Time {
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := f.r.Intn(maxDays)
	hoursBack := f.r.Intn(24)
	minsBack := f.r.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour -
		time.Duration(minsBack)*time.Minute)
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		Username:   fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
		Email:      gofakeit.Email(),
		FullName:   gofakeit.Name(),
		Password:   string(hashedPassword),
		Avatar:     fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		CoverImage: fmt.Sprintf("https://picsum.photos/seed/%s/1280/320", gofakeit.UUID()),
	}
	user.CreatedAt = f.pastTime(365)

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateVideo constructs and persists a video for the given owner.
func (f *Factory) CreateVideo(owner *models.User, overrides ...func(*models.Video)) (*models.Video, error) {
	id := gofakeit.UUID()
	video := &models.Video{
		Title:       gofakeit.Sentence(5),
		Description: gofakeit.Paragraph(1, 3, 8, "\n"),
		VideoFile:   fmt.Sprintf("https://cdn.videotube.dev/v/%s.mp4", id),
		Thumbnail:   fmt.Sprintf("https://picsum.photos/seed/%s/640/360", id),
		Duration:    float64(f.r.Intn(3600) + 30),
		Views:       int64(f.r.Intn(100000)),
		IsPublished: f.r.Intn(10) > 1, // roughly 1 in 5 drafts
		OwnerID:     owner.ID,
	}
	video.CreatedAt = f.pastTime(180)

	for _, override := range overrides {
		override(video)
	}

	if err := f.db.Create(video).Error; err != nil {
		return nil, err
	}
	return video, nil
}

// CreateTweet constructs and persists a tweet for the given owner.
func (f *Factory) CreateTweet(owner *models.User) (*models.Tweet, error) {
	tweet := &models.Tweet{
		Content: gofakeit.Sentence(12),
		OwnerID: owner.ID,
	}
	tweet.CreatedAt = f.pastTime(60)

	if err := f.db.Create(tweet).Error; err != nil {
		return nil, err
	}
	return tweet, nil
}

// CreateComment persists a comment by user on video.
func (f *Factory) CreateComment(user *models.User, video *models.Video) (*models.Comment, error) {
	comment := &models.Comment{
		Content: gofakeit.Sentence(10),
		VideoID: video.ID,
		UserID:  user.ID,
	}
	comment.CreatedAt = f.pastTime(30)

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreatePlaylist persists a playlist with the given videos in order.
func (f *Factory) CreatePlaylist(owner *models.User, videos []*models.Video) (*models.Playlist, error) {
	playlist := &models.Playlist{
		Name:        gofakeit.HipsterSentence(3),
		Description: gofakeit.Sentence(8),
		OwnerID:     owner.ID,
	}
	if err := f.db.Create(playlist).Error; err != nil {
		return nil, err
	}
	for i, v := range videos {
		entry := &models.PlaylistVideo{
			PlaylistID: playlist.ID,
			VideoID:    v.ID,
			Position:   i + 1,
		}
		if err := f.db.Create(entry).Error; err != nil {
			return nil, err
		}
	}
	return playlist, nil
}

// CreateProduct persists a product in the given category.
func (f *Factory) CreateProduct(owner *models.User, category *models.Category) (*models.Product, error) {
	product := &models.Product{
		Name:         gofakeit.ProductName(),
		Description:  gofakeit.ProductDescription(),
		ProductImage: fmt.Sprintf("https://picsum.photos/seed/%s/600/600", gofakeit.UUID()),
		Price:        int64(gofakeit.Number(199, 99999)),
		Stock:        int64(gofakeit.Number(0, 500)),
		CategoryID:   category.ID,
		OwnerID:      owner.ID,
	}
	if err := f.db.Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}
