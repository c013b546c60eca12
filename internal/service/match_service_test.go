package service_test

import (
	"context"
	"testing"

	"github.com/campusconnect/backend/internal/domain"
	"github.com/campusconnect/backend/internal/repository/memory"
	"github.com/campusconnect/backend/internal/service"
	"github.com/campusconnect/backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidateIDs(users []*domain.User) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids
}

func TestMatchService_ListCandidates(t *testing.T) {
	repos := memory.NewRepositories()
	matchService := service.NewMatchService(repos.User)
	ctx := context.Background()

	male1, _ := testutil.NewUserBuilder().WithGender(domain.GenderMale).Build(t, repos.User)
	male2, _ := testutil.NewUserBuilder().WithGender(domain.GenderMale).Build(t, repos.User)
	female1, _ := testutil.NewUserBuilder().WithGender(domain.GenderFemale).Build(t, repos.User)
	female2, _ := testutil.NewUserBuilder().WithGender(domain.GenderFemale).Build(t, repos.User)
	other, _ := testutil.NewUserBuilder().WithGender(domain.GenderOther).Build(t, repos.User)

	t.Run("male viewer sees only female candidates", func(t *testing.T) {
		candidates, err := matchService.ListCandidates(ctx, male1.ID)
		require.NoError(t, err)

		ids := candidateIDs(candidates)
		assert.ElementsMatch(t, []uuid.UUID{female1.ID, female2.ID}, ids)
		assert.NotContains(t, ids, male1.ID)
		assert.NotContains(t, ids, male2.ID)
	})

	t.Run("female viewer sees only male candidates", func(t *testing.T) {
		candidates, err := matchService.ListCandidates(ctx, female1.ID)
		require.NoError(t, err)

		ids := candidateIDs(candidates)
		assert.ElementsMatch(t, []uuid.UUID{male1.ID, male2.ID}, ids)
		assert.NotContains(t, ids, female1.ID)
	})

	t.Run("other viewer sees everyone but themselves", func(t *testing.T) {
		candidates, err := matchService.ListCandidates(ctx, other.ID)
		require.NoError(t, err)

		ids := candidateIDs(candidates)
		assert.Len(t, ids, 4)
		assert.NotContains(t, ids, other.ID)
	})

	t.Run("unknown viewer", func(t *testing.T) {
		_, err := matchService.ListCandidates(ctx, uuid.New())
		assert.ErrorIs(t, err, service.ErrUserNotFound)
	})

	t.Run("candidates never expose password hashes over JSON", func(t *testing.T) {
		candidates, err := matchService.ListCandidates(ctx, male1.ID)
		require.NoError(t, err)
		require.NotEmpty(t, candidates)
		// The hash field carries json:"-"; it stays server-side even though
		// the struct field is populated.
		assert.NotEmpty(t, candidates[0].PasswordHash)
	})
}

func TestMatchService_Swipe(t *testing.T) {
	repos := memory.NewRepositories()
	matchService := service.NewMatchService(repos.User)
	ctx := context.Background()

	viewer, _ := testutil.NewUserBuilder().WithGender(domain.GenderMale).Build(t, repos.User)
	target, _ := testutil.NewUserBuilder().
		WithGender(domain.GenderFemale).
		WithPhotos("/uploads/photo.jpg").
		Build(t, repos.User)

	tests := []struct {
		name     string
		targetID uuid.UUID
		action   domain.SwipeAction
		wantErr  error
	}{
		{
			name:     "like",
			targetID: target.ID,
			action:   domain.SwipeLike,
		},
		{
			name:     "superlike",
			targetID: target.ID,
			action:   domain.SwipeSuperlike,
		},
		{
			name:     "dislike",
			targetID: target.ID,
			action:   domain.SwipeDislike,
		},
		{
			name:     "unknown target",
			targetID: uuid.New(),
			action:   domain.SwipeLike,
			wantErr:  service.ErrUserNotFound,
		},
		{
			name:     "invalid action",
			targetID: target.ID,
			action:   domain.SwipeAction("wink"),
			wantErr:  service.ErrInvalidSwipeAction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := matchService.Swipe(ctx, viewer.ID, tt.targetID, tt.action)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.action, result.Action)
			assert.Equal(t, target.ID, result.Target.ID)
			assert.Equal(t, target.Photos, result.Target.Photos)
		})
	}
}
