package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID              uuid.UUID  `json:"id"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	Email           string     `json:"email"`
	PasswordHash    string     `json:"-"`
	Age             int        `json:"age"`
	Gender          Gender     `json:"gender"`
	University      string     `json:"university"`
	Major           string     `json:"major"`
	Year            string     `json:"year"`
	Bio             string     `json:"bio"`
	Location        string     `json:"location"`
	Interests       []string   `json:"interests"`
	Photos          []string   `json:"photos"`
	ProfileComplete bool       `json:"profileComplete"`
	CreatedAt       time.Time  `json:"createdAt"`
	LastLoginAt     time.Time  `json:"lastLogin"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}

// Clone returns a deep copy so callers never share the interest/photo
// slices with the store.
func (u *User) Clone() *User {
	clone := *u
	clone.Interests = append([]string(nil), u.Interests...)
	clone.Photos = append([]string(nil), u.Photos...)
	if u.UpdatedAt != nil {
		updatedAt := *u.UpdatedAt
		clone.UpdatedAt = &updatedAt
	}
	return &clone
}
