package service

import (
	"context"
	"errors"

	"github.com/campusconnect/backend/internal/domain"
	"github.com/campusconnect/backend/internal/repository"
	"github.com/google/uuid"
)

var ErrInvalidSwipeAction = errors.New("invalid swipe action")

type MatchService struct {
	userRepo repository.UserRepository
}

func NewMatchService(userRepo repository.UserRepository) *MatchService {
	return &MatchService{userRepo: userRepo}
}

// SwipeResult acknowledges a swipe. Swipes are not recorded and mutual
// likes are never computed, so no match object exists.
type SwipeResult struct {
	Action domain.SwipeAction
	Target *domain.User
}

// ListCandidates returns every other user that passes the gender rule:
// male viewers see only female candidates, female viewers only male,
// and any other viewer gender sees all non-self users.
func (s *MatchService) ListCandidates(ctx context.Context, userID uuid.UUID) ([]*domain.User, error) {
	viewer, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	candidates := make([]*domain.User, 0, len(users))
	for _, candidate := range users {
		if candidate.ID == viewer.ID {
			continue
		}
		if viewer.Gender == domain.GenderMale && candidate.Gender != domain.GenderFemale {
			continue
		}
		if viewer.Gender == domain.GenderFemale && candidate.Gender != domain.GenderMale {
			continue
		}
		candidates = append(candidates, candidate)
	}

	return candidates, nil
}

// Swipe validates the action and target but stores nothing.
func (s *MatchService) Swipe(ctx context.Context, userID, targetID uuid.UUID, action domain.SwipeAction) (*SwipeResult, error) {
	if !action.IsValid() {
		return nil, ErrInvalidSwipeAction
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &SwipeResult{Action: action, Target: target}, nil
}
