package seed

import (
	"fmt"
	"os"

	"ripple/internal/models"

	"gopkg.in/yaml.v3"
)

// Fixtures describes a deterministic dataset loaded from a YAML file.
// Accounts are referenced by username in the follow and post sections.
type Fixtures struct {
	Accounts []FixtureAccount `yaml:"accounts"`
	Follows  []FixtureFollow  `yaml:"follows"`
	Posts    []FixturePost    `yaml:"posts"`
}

// FixtureAccount declares one user plus profile pair.
type FixtureAccount struct {
	Username  string `yaml:"username"`
	Email     string `yaml:"email"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Bio       string `yaml:"bio"`
}

// FixtureFollow declares a directed follow edge by username.
type FixtureFollow struct {
	Follower string `yaml:"follower"`
	Followee string `yaml:"followee"`
}

// FixturePost declares a post authored by a fixture account.
type FixturePost struct {
	Author  string `yaml:"author"`
	Content string `yaml:"content"`
}

// LoadFixtures reads and parses a fixtures YAML file.
func LoadFixtures(path string) (*Fixtures, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures file: %w", err)
	}

	var fx Fixtures
	if err := yaml.Unmarshal(raw, &fx); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures file: %w", err)
	}
	return &fx, nil
}

// ApplyFixtures creates the accounts, follow edges and posts declared in fx.
// Accounts missing an email get `<username>@example.com`.
func (s *Seeder) ApplyFixtures(fx *Fixtures) error {
	byUsername := make(map[string]*models.Profile, len(fx.Accounts))

	for _, account := range fx.Accounts {
		if account.Username == "" {
			return fmt.Errorf("fixture account without a username")
		}

		profile, err := s.factory.CreateAccount(func(p *models.Profile) {
			p.Username = account.Username
			p.FirstName = account.FirstName
			p.LastName = account.LastName
			p.Bio = account.Bio
		})
		if err != nil {
			return fmt.Errorf("failed to create fixture account %q: %w", account.Username, err)
		}

		email := account.Email
		if email == "" {
			email = account.Username + "@example.com"
		}
		err = s.db.Model(&models.User{}).
			Where("id = ?", profile.UserID).
			Update("email", email).Error
		if err != nil {
			return fmt.Errorf("failed to set email for %q: %w", account.Username, err)
		}

		byUsername[account.Username] = profile
	}

	for _, edge := range fx.Follows {
		follower, ok := byUsername[edge.Follower]
		if !ok {
			return fmt.Errorf("unknown follower %q in fixtures", edge.Follower)
		}
		followee, ok := byUsername[edge.Followee]
		if !ok {
			return fmt.Errorf("unknown followee %q in fixtures", edge.Followee)
		}
		if err := s.factory.CreateFollow(follower, followee); err != nil {
			return fmt.Errorf("failed to create fixture follow %s -> %s: %w", edge.Follower, edge.Followee, err)
		}
	}

	for _, post := range fx.Posts {
		author, ok := byUsername[post.Author]
		if !ok {
			return fmt.Errorf("unknown post author %q in fixtures", post.Author)
		}
		_, err := s.factory.CreatePost(author, func(p *models.Post) {
			p.Content = post.Content
			p.ImageURL = ""
		})
		if err != nil {
			return fmt.Errorf("failed to create fixture post for %q: %w", post.Author, err)
		}
	}

	return nil
}
