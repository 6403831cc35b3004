package seed

import (
	"fmt"
	"log"

	"ripple/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	// SkipBcrypt stores a plaintext password instead of hashing. Login will
	// not work for these accounts; only useful for bulk dev seeding.
	SkipBcrypt bool
	// MaxDays bounds how far back generated post timestamps spread.
	MaxDays int
}

// Seeder populates the database with generated social graph data.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db, opts)}
}

// Factory exposes the underlying entity factory for callers that need
// fine-grained control.
func (s *Seeder) Factory() *Factory {
	return s.factory
}

// ClearAll removes all seeded data. Deletes run child-first so foreign keys
// hold on databases that enforce them.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	for _, model := range []any{
		&models.Like{},
		&models.Comment{},
		&models.Follow{},
		&models.Post{},
		&models.Profile{},
		&models.User{},
	} {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Unscoped().
			Delete(model).Error; err != nil {
			return fmt.Errorf("failed to clear table: %w", err)
		}
	}
	return nil
}

// SeedSocialMesh creates `count` accounts and a sparse random follow graph
// over them. Returns the created profiles.
func (s *Seeder) SeedSocialMesh(count int) ([]*models.Profile, error) {
	profiles := make([]*models.Profile, 0, count)

	for i := 0; i < count; i++ {
		profile, err := s.factory.CreateAccount()
		if err != nil {
			log.Printf("Failed to create account %d: %v", i, err)
			continue
		}
		profiles = append(profiles, profile)

		if i > 0 && i%100 == 0 {
			log.Printf("Created %d accounts...", i)
		}
	}

	// roughly 15% edge density, no self edges
	for _, follower := range profiles {
		for _, followee := range profiles {
			if follower.ID == followee.ID {
				continue
			}
			if gofakeit.Number(0, 99) < 15 {
				if err := s.factory.CreateFollow(follower, followee); err != nil {
					return nil, fmt.Errorf("failed to create follow edge: %w", err)
				}
			}
		}
	}

	log.Printf("Seeded %d accounts with a random follow mesh", len(profiles))
	return profiles, nil
}

// SeedEngagement creates `numPosts` posts spread over the given profiles,
// each with a handful of comments and likes from other profiles.
func (s *Seeder) SeedEngagement(profiles []*models.Profile, numPosts int) ([]*models.Post, error) {
	if len(profiles) == 0 {
		return nil, fmt.Errorf("no profiles to seed posts for")
	}

	posts := make([]*models.Post, 0, numPosts)

	for i := 0; i < numPosts; i++ {
		author := profiles[gofakeit.Number(0, len(profiles)-1)]

		post, err := s.factory.CreatePost(author)
		if err != nil {
			return nil, fmt.Errorf("failed to create post: %w", err)
		}
		posts = append(posts, post)

		for c := gofakeit.Number(0, 4); c > 0; c-- {
			commenter := profiles[gofakeit.Number(0, len(profiles)-1)]
			if _, err := s.factory.CreateComment(commenter, post); err != nil {
				return nil, fmt.Errorf("failed to create comment: %w", err)
			}
		}

		for l := gofakeit.Number(0, len(profiles)-1); l > 0; l-- {
			liker := profiles[gofakeit.Number(0, len(profiles)-1)]
			if liker.ID == author.ID {
				continue
			}
			if err := s.factory.CreateLike(liker, post); err != nil {
				return nil, fmt.Errorf("failed to create like: %w", err)
			}
		}

		if i > 0 && i%100 == 0 {
			log.Printf("Created %d posts...", i)
		}
	}

	log.Printf("Seeded %d posts with comments and likes", len(posts))
	return posts, nil
}
