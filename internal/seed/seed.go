package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/code-sankar/Backend-ChaiAurCode/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumVideos   int
	ShouldClean bool
}

var productCategories = []string{
	"electronics", "books", "clothing", "home", "sports",
	"toys", "music", "outdoors",
}

// Seeder populates the database with realistic demo data.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
	r       *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{
		db:      db,
		factory: NewFactory(db),
		r:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll truncates every seeded table.
func (s *Seeder) ClearAll() error {
	log.Println("🗑️  Clearing existing data...")
	sql := `TRUNCATE TABLE playlist_videos, playlists, subscriptions, likes, comments, tweets, videos, products, categories, users RESTART IDENTITY CASCADE;`
	if err := s.db.Exec(sql).Error; err != nil {
		// sqlite has no TRUNCATE; fall back to per-table deletes.
		for _, table := range []string{
			"playlist_videos", "playlists", "subscriptions", "likes",
			"comments", "tweets", "videos", "products", "categories", "users",
		} {
			if derr := s.db.Exec("DELETE FROM " + table).Error; derr != nil {
				return derr
			}
		}
	}
	return nil
}

// Seed populates the database with test data
func (s *Seeder) Seed(opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users and %d videos...", opts.NumUsers, opts.NumVideos)

	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	users, err := s.seedUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d test users created", len(users))

	videos, err := s.seedVideos(users, opts.NumVideos)
	if err != nil {
		return fmt.Errorf("failed to create videos: %w", err)
	}
	log.Printf("✓ %d videos created", len(videos))

	if err := s.seedEngagement(users, videos); err != nil {
		return fmt.Errorf("failed to create engagement: %w", err)
	}
	log.Println("✓ likes, comments, tweets and subscriptions created")

	if err := s.seedPlaylists(users, videos); err != nil {
		return fmt.Errorf("failed to create playlists: %w", err)
	}
	log.Println("✓ playlists created")

	if err := s.seedProducts(users); err != nil {
		return fmt.Errorf("failed to create products: %w", err)
	}
	log.Println("✓ products created")

	log.Println("🎉 Database seeding completed successfully!")
	log.Println("📧 All test users have the password: password123")
	return nil
}

func (s *Seeder) seedUsers(n int) ([]*models.User, error) {
	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (s *Seeder) seedVideos(users []*models.User, n int) ([]*models.Video, error) {
	if len(users) == 0 {
		return nil, nil
	}
	videos := make([]*models.Video, 0, n)
	for i := 0; i < n; i++ {
		owner := users[s.r.Intn(len(users))]
		video, err := s.factory.CreateVideo(owner)
		if err != nil {
			return nil, err
		}
		videos = append(videos, video)
	}
	return videos, nil
}

// seedEngagement wires likes, comments, tweets and subscriptions between the
// seeded users. Likes go through the unique-index insert so a duplicate
// random pick is a no-op rather than an error.
func (s *Seeder) seedEngagement(users []*models.User, videos []*models.Video) error {
	for _, video := range videos {
		nLikes := s.r.Intn(len(users))
		for i := 0; i < nLikes; i++ {
			user := users[s.r.Intn(len(users))]
			err := s.db.Exec(
				"INSERT INTO likes (user_id, video_id, created_at) VALUES (?, ?, ?) ON CONFLICT (user_id, video_id) DO NOTHING",
				user.ID, video.ID, time.Now(),
			).Error
			if err != nil {
				return err
			}
		}

		nComments := s.r.Intn(6)
		for i := 0; i < nComments; i++ {
			user := users[s.r.Intn(len(users))]
			if _, err := s.factory.CreateComment(user, video); err != nil {
				return err
			}
		}
	}

	for _, user := range users {
		nTweets := s.r.Intn(4)
		for i := 0; i < nTweets; i++ {
			if _, err := s.factory.CreateTweet(user); err != nil {
				return err
			}
		}

		nSubs := s.r.Intn(len(users) / 2)
		for i := 0; i < nSubs; i++ {
			channel := users[s.r.Intn(len(users))]
			if channel.ID == user.ID {
				continue
			}
			err := s.db.Exec(
				"INSERT INTO subscriptions (subscriber_id, channel_id, created_at) VALUES (?, ?, ?) ON CONFLICT (subscriber_id, channel_id) DO NOTHING",
				user.ID, channel.ID, time.Now(),
			).Error
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Seeder) seedPlaylists(users []*models.User, videos []*models.Video) error {
	if len(videos) == 0 {
		return nil
	}
	for _, user := range users {
		if s.r.Intn(3) == 0 {
			continue
		}
		n := s.r.Intn(6) + 1
		picked := make([]*models.Video, 0, n)
		seen := map[uint]bool{}
		for len(picked) < n {
			v := videos[s.r.Intn(len(videos))]
			if seen[v.ID] {
				continue
			}
			seen[v.ID] = true
			picked = append(picked, v)
		}
		if _, err := s.factory.CreatePlaylist(user, picked); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedProducts(users []*models.User) error {
	if len(users) == 0 {
		return nil
	}
	for _, name := range productCategories {
		category := &models.Category{Name: name}
		if err := s.db.Where(models.Category{Name: name}).FirstOrCreate(category).Error; err != nil {
			return err
		}
		nProducts := s.r.Intn(5) + 1
		for i := 0; i < nProducts; i++ {
			owner := users[s.r.Intn(len(users))]
			if _, err := s.factory.CreateProduct(owner, category); err != nil {
				return err
			}
		}
	}
	return nil
}
