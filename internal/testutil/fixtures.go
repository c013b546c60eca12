package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/campusconnect/backend/internal/domain"
	"github.com/campusconnect/backend/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	firstName string
	lastName  string
	email     string
	password  string
	age       int
	gender    domain.Gender
	photos    []string
	interests []string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		firstName: "Test",
		lastName:  "User",
		email:     fmt.Sprintf("testuser_%s@campus.edu", uuid.New().String()[:8]),
		password:  "testpassword123",
		age:       21,
		gender:    domain.GenderFemale,
	}
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// WithName sets the first and last names
func (b *UserBuilder) WithName(first, last string) *UserBuilder {
	b.firstName = first
	b.lastName = last
	return b
}

// WithAge sets the age
func (b *UserBuilder) WithAge(age int) *UserBuilder {
	b.age = age
	return b
}

// WithGender sets the gender
func (b *UserBuilder) WithGender(gender domain.Gender) *UserBuilder {
	b.gender = gender
	return b
}

// WithPhotos sets the photo list
func (b *UserBuilder) WithPhotos(photos ...string) *UserBuilder {
	b.photos = photos
	return b
}

// WithInterests sets the interest list
func (b *UserBuilder) WithInterests(interests ...string) *UserBuilder {
	b.interests = interests
	return b
}

// Build creates the user in the repository and returns it with the raw password
func (b *UserBuilder) Build(t *testing.T, repo repository.UserRepository) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	now := time.Now()
	user := &domain.User{
		ID:              uuid.New(),
		FirstName:       b.firstName,
		LastName:        b.lastName,
		Email:           b.email,
		PasswordHash:    string(hashedPassword),
		Age:             b.age,
		Gender:          b.gender,
		University:      "State University",
		Major:           "Computer Science",
		Year:            "Junior",
		Bio:             "Test bio",
		Location:        "Campus",
		Interests:       b.interests,
		Photos:          b.photos,
		ProfileComplete: true,
		CreatedAt:       now,
		LastLoginAt:     now,
	}
	if user.Interests == nil {
		user.Interests = []string{}
	}
	if user.Photos == nil {
		user.Photos = []string{}
	}

	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// UserPayload is the user shape returned by the API
type UserPayload struct {
	ID        string   `json:"id"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	Age       int      `json:"age"`
	Gender    string   `json:"gender"`
	Bio       string   `json:"bio"`
	Interests []string `json:"interests"`
	Photos    []string `json:"photos"`
}

// AuthResponse matches the API auth response
type AuthResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    UserPayload `json:"user"`
}

// SignupRequest returns a complete, valid signup payload
func (b *UserBuilder) SignupRequest() map[string]interface{} {
	return map[string]interface{}{
		"firstName":  b.firstName,
		"lastName":   b.lastName,
		"email":      b.email,
		"password":   b.password,
		"age":        b.age,
		"gender":     b.gender.String(),
		"university": "State University",
		"major":      "Computer Science",
		"year":       "Junior",
		"bio":        "Test bio",
		"location":   "Campus",
	}
}

// BuildAndAuthenticate creates a user via the API and returns the auth response
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) *AuthResponse {
	t.Helper()

	body, _ := json.Marshal(b.SignupRequest())

	resp, err := http.Post(ts.APIURL("/auth/signup"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to sign up: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("signup returned status %d", resp.StatusCode)
	}

	var result AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode auth response: %v", err)
	}

	return &result
}
