package service

import (
	"context"
	"errors"
	"time"

	"github.com/campusconnect/backend/internal/domain"
	"github.com/campusconnect/backend/internal/repository"
	"github.com/google/uuid"
)

type ProfileService struct {
	userRepo repository.UserRepository
}

func NewProfileService(userRepo repository.UserRepository) *ProfileService {
	return &ProfileService{userRepo: userRepo}
}

// UpdateProfileInput holds the mutable profile fields. Nil means "leave
// unchanged"; everything outside this allow-list (email, password, photos)
// cannot be touched through a profile update.
type UpdateProfileInput struct {
	FirstName  *string
	LastName   *string
	Age        *int
	Gender     *domain.Gender
	University *string
	Major      *string
	Year       *string
	Bio        *string
	Location   *string
	Interests  *[]string
}

func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Age != nil {
		user.Age = *input.Age
	}
	if input.Gender != nil {
		user.Gender = *input.Gender
	}
	if input.University != nil {
		user.University = *input.University
	}
	if input.Major != nil {
		user.Major = *input.Major
	}
	if input.Year != nil {
		user.Year = *input.Year
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.Location != nil {
		user.Location = *input.Location
	}
	if input.Interests != nil {
		user.Interests = *input.Interests
	}

	now := time.Now()
	user.UpdatedAt = &now

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// AttachPhotos replaces the user's photo list with the freshly uploaded set.
func (s *ProfileService) AttachPhotos(ctx context.Context, userID uuid.UUID, urls []string) (*domain.User, error) {
	if len(urls) == 0 {
		return nil, &ValidationError{Message: "No photos uploaded"}
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.Photos = urls
	now := time.Now()
	user.UpdatedAt = &now

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
