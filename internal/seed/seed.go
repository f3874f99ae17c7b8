// Package seed populates the database with fake data for local development.
package seed

import (
	"fmt"
	"log"
	"math/rand"

	"telx/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Seeder generates fake users, posts, likes, follows and comments.
type Seeder struct {
	db *gorm.DB
}

// NewSeeder returns a Seeder bound to the given database.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// ClearAll removes all seeded data. Order matters because of foreign keys.
func (s *Seeder) ClearAll() error {
	for _, table := range []string{"likes", "comments", "follows", "posts", "users"} {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	log.Println("Cleared existing data")
	return nil
}

// Run seeds numUsers accounts with posts, a follow graph, likes and comments.
func (s *Seeder) Run(numUsers, numPosts int) error {
	users, err := s.createUsers(numUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("Created %d users", len(users))

	posts, err := s.createPosts(users, numPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("Created %d posts", len(posts))

	if err := s.createFollows(users); err != nil {
		return fmt.Errorf("failed to create follows: %w", err)
	}
	if err := s.createLikes(users, posts); err != nil {
		return fmt.Errorf("failed to create likes: %w", err)
	}
	if err := s.createComments(users, posts); err != nil {
		return fmt.Errorf("failed to create comments: %w", err)
	}

	log.Println("Seeding complete")
	return nil
}

func (s *Seeder) createUsers(n int) ([]*models.User, error) {
	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		bio := gofakeit.Sentence(8)
		if runes := []rune(bio); len(runes) > models.BioMaxLen {
			bio = string(runes[:models.BioMaxLen])
		}
		u := &models.User{
			TelegramID:   int64(100000000 + i),
			Username:     gofakeit.Username(),
			FirstName:    gofakeit.FirstName(),
			LastName:     gofakeit.LastName(),
			LanguageCode: gofakeit.RandomString([]string{"en", "ru", "de", "es", "pt"}),
			PhotoURL:     gofakeit.ImageURL(200, 200),
			Bio:          bio,
		}
		if err := s.db.Create(u).Error; err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (s *Seeder) createPosts(users []*models.User, n int) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		content := gofakeit.Sentence(gofakeit.Number(5, 30))
		if runes := []rune(content); len(runes) > models.ContentMaxLen {
			content = string(runes[:models.ContentMaxLen])
		}
		p := &models.Post{
			UserID:  users[rand.Intn(len(users))].ID,
			Content: content,
		}
		if gofakeit.Bool() {
			p.ImageURL = gofakeit.ImageURL(640, 480)
		}
		if err := s.db.Create(p).Error; err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, nil
}

// createFollows gives every user a handful of random follows, skipping self.
func (s *Seeder) createFollows(users []*models.User) error {
	for _, u := range users {
		for i := 0; i < gofakeit.Number(1, 8); i++ {
			target := users[rand.Intn(len(users))]
			if target.ID == u.ID {
				continue
			}
			err := s.db.Exec(
				`INSERT INTO follows (follower_id, following_id, created_at)
				 VALUES (?, ?, CURRENT_TIMESTAMP)
				 ON CONFLICT (follower_id, following_id) DO NOTHING`,
				u.ID, target.ID,
			).Error
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Seeder) createLikes(users []*models.User, posts []*models.Post) error {
	for _, p := range posts {
		for i := 0; i < gofakeit.Number(0, 10); i++ {
			liker := users[rand.Intn(len(users))]
			err := s.db.Exec(
				`INSERT INTO likes (user_id, post_id, created_at)
				 VALUES (?, ?, CURRENT_TIMESTAMP)
				 ON CONFLICT (user_id, post_id) DO NOTHING`,
				liker.ID, p.ID,
			).Error
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Seeder) createComments(users []*models.User, posts []*models.Post) error {
	for _, p := range posts {
		for i := 0; i < gofakeit.Number(0, 5); i++ {
			c := &models.Comment{
				UserID:  users[rand.Intn(len(users))].ID,
				PostID:  p.ID,
				Content: gofakeit.Sentence(gofakeit.Number(3, 15)),
			}
			if err := s.db.Create(c).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
