package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/campusconnect/backend/internal/domain"
	"github.com/campusconnect/backend/internal/repository"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// userRecord is the database row shape. Interests and photos are stored as
// JSONB so the column set stays flat.
type userRecord struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key"`
	FirstName       string         `gorm:"not null"`
	LastName        string         `gorm:"not null"`
	Email           string         `gorm:"uniqueIndex;not null"`
	PasswordHash    string         `gorm:"not null"`
	Age             int            `gorm:"not null"`
	Gender          string         `gorm:"not null"`
	University      string         `gorm:"not null"`
	Major           string         `gorm:"not null"`
	Year            string         `gorm:"not null"`
	Bio             string         `gorm:"not null"`
	Location        string         `gorm:"not null"`
	Interests       datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	Photos          datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	ProfileComplete bool           `gorm:"not null;default:false"`
	CreatedAt       time.Time
	LastLoginAt     time.Time
	UpdatedAt       *time.Time
}

func (userRecord) TableName() string {
	return "users"
}

func newUserRecord(user *domain.User) (*userRecord, error) {
	interests, err := json.Marshal(user.Interests)
	if err != nil {
		return nil, err
	}
	photos, err := json.Marshal(user.Photos)
	if err != nil {
		return nil, err
	}

	return &userRecord{
		ID:              user.ID,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		Email:           user.Email,
		PasswordHash:    user.PasswordHash,
		Age:             user.Age,
		Gender:          user.Gender.String(),
		University:      user.University,
		Major:           user.Major,
		Year:            user.Year,
		Bio:             user.Bio,
		Location:        user.Location,
		Interests:       datatypes.JSON(interests),
		Photos:          datatypes.JSON(photos),
		ProfileComplete: user.ProfileComplete,
		CreatedAt:       user.CreatedAt,
		LastLoginAt:     user.LastLoginAt,
		UpdatedAt:       user.UpdatedAt,
	}, nil
}

func (r *userRecord) toDomain() (*domain.User, error) {
	var interests, photos []string
	if len(r.Interests) > 0 {
		if err := json.Unmarshal(r.Interests, &interests); err != nil {
			return nil, err
		}
	}
	if len(r.Photos) > 0 {
		if err := json.Unmarshal(r.Photos, &photos); err != nil {
			return nil, err
		}
	}

	return &domain.User{
		ID:              r.ID,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		PasswordHash:    r.PasswordHash,
		Age:             r.Age,
		Gender:          domain.Gender(r.Gender),
		University:      r.University,
		Major:           r.Major,
		Year:            r.Year,
		Bio:             r.Bio,
		Location:        r.Location,
		Interests:       interests,
		Photos:          photos,
		ProfileComplete: r.ProfileComplete,
		CreatedAt:       r.CreatedAt,
		LastLoginAt:     r.LastLoginAt,
		UpdatedAt:       r.UpdatedAt,
	}, nil
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	record, err := newUserRecord(user)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repository.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var record userRecord
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain()
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var record userRecord
	err := r.db.WithContext(ctx).First(&record, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain()
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	record, err := newUserRecord(user)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&userRecord{}).
		Where("id = ?", user.ID).
		Select("*").
		Updates(record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return repository.ErrDuplicateEmail
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *userRepository) List(ctx context.Context) ([]*domain.User, error) {
	var records []userRecord
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, err
	}

	users := make([]*domain.User, 0, len(records))
	for i := range records {
		user, err := records[i].toDomain()
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}
