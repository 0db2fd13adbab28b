// Package seed provides helpers to create development and demo data.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"devconnect/internal/gravatar"
	"devconnect/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the plaintext password for all seeded accounts.
const DefaultPassword = "password123"

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db *gorm.DB
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db}
}

// CreateUser persists a fake user with the shared default password.
func (f *Factory) CreateUser() (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	email := gofakeit.Email()
	user := &models.User{
		Name:     gofakeit.Name(),
		Email:    email,
		Password: string(hash),
		Avatar:   gravatar.URL(email),
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateProfile persists a profile for the user with a couple of experience
// and education entries.
func (f *Factory) CreateProfile(user *models.User) (*models.Profile, error) {
	handle := strings.ToLower(strings.ReplaceAll(user.Name, " ", "")) + fmt.Sprint(user.ID)

	profile := &models.Profile{
		UserID:         user.ID,
		Handle:         handle,
		Company:        gofakeit.Company(),
		Website:        gofakeit.URL(),
		Location:       gofakeit.City(),
		Status:         gofakeit.JobTitle(),
		Skills:         []string{gofakeit.ProgrammingLanguage(), gofakeit.ProgrammingLanguage(), "Git"},
		Bio:            gofakeit.Sentence(12),
		GithubUsername: gofakeit.Username(),
		Social: models.SocialLinks{
			Twitter: "https://twitter.com/" + gofakeit.Username(),
		},
	}
	if err := f.db.Create(profile).Error; err != nil {
		return nil, err
	}

	for i := 0; i < 1+rand.Intn(3); i++ {
		from := gofakeit.DateRange(time.Now().AddDate(-8, 0, 0), time.Now().AddDate(-1, 0, 0))
		exp := &models.Experience{
			ProfileID:   profile.ID,
			Title:       gofakeit.JobTitle(),
			Company:     gofakeit.Company(),
			Location:    gofakeit.City(),
			From:        from,
			Current:     i == 0,
			Description: gofakeit.Sentence(10),
		}
		if !exp.Current {
			to := from.AddDate(1+rand.Intn(2), 0, 0)
			exp.To = &to
		}
		if err := f.db.Create(exp).Error; err != nil {
			return nil, err
		}
	}

	from := gofakeit.DateRange(time.Now().AddDate(-12, 0, 0), time.Now().AddDate(-8, 0, 0))
	to := from.AddDate(4, 0, 0)
	edu := &models.Education{
		ProfileID:    profile.ID,
		School:       gofakeit.Company() + " University",
		Degree:       "BSc",
		FieldOfStudy: "Computer Science",
		From:         from,
		To:           &to,
		Description:  gofakeit.Sentence(8),
	}
	if err := f.db.Create(edu).Error; err != nil {
		return nil, err
	}

	return profile, nil
}

// CreatePost persists a post authored by the user.
func (f *Factory) CreatePost(user *models.User) (*models.Post, error) {
	post := &models.Post{
		UserID: user.ID,
		Text:   gofakeit.Sentence(15),
		Name:   user.Name,
		Avatar: user.Avatar,
	}
	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// Run populates the database with n users, each with a profile and a handful
// of posts, then sprinkles likes across the feed.
func Run(db *gorm.DB, n int) error {
	factory := NewFactory(db)

	var users []*models.User
	var posts []*models.Post

	for i := 0; i < n; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		users = append(users, user)

		if _, err := factory.CreateProfile(user); err != nil {
			return fmt.Errorf("seed profile: %w", err)
		}

		for j := 0; j < 1+rand.Intn(3); j++ {
			post, err := factory.CreatePost(user)
			if err != nil {
				return fmt.Errorf("seed post: %w", err)
			}
			posts = append(posts, post)
		}
	}

	for _, post := range posts {
		for _, user := range users {
			if user.ID == post.UserID || rand.Intn(4) != 0 {
				continue
			}
			like := &models.Like{PostID: post.ID, UserID: user.ID}
			if err := db.Create(like).Error; err != nil {
				return fmt.Errorf("seed like: %w", err)
			}
		}
	}

	log.Printf("Seeded %d users, %d posts", len(users), len(posts))
	return nil
}
