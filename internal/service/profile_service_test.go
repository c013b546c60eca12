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

func TestProfileService_GetProfile(t *testing.T) {
	repos := memory.NewRepositories()
	profileService := service.NewProfileService(repos.User)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, repos.User)

	t.Run("existing user", func(t *testing.T) {
		got, err := profileService.GetProfile(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.Email, got.Email)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := profileService.GetProfile(ctx, uuid.New())
		assert.ErrorIs(t, err, service.ErrUserNotFound)
	})
}

func TestProfileService_UpdateProfile(t *testing.T) {
	repos := memory.NewRepositories()
	profileService := service.NewProfileService(repos.User)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().
		WithName("Maya", "Chen").
		WithInterests("climbing").
		Build(t, repos.User)

	bio := "New bio"
	age := 25
	interests := []string{"hiking", "jazz"}

	updated, err := profileService.UpdateProfile(ctx, user.ID, service.UpdateProfileInput{
		Bio:       &bio,
		Age:       &age,
		Interests: &interests,
	})
	require.NoError(t, err)

	assert.Equal(t, "New bio", updated.Bio)
	assert.Equal(t, 25, updated.Age)
	assert.Equal(t, []string{"hiking", "jazz"}, updated.Interests)
	require.NotNil(t, updated.UpdatedAt)

	// Untouched fields survive
	assert.Equal(t, "Maya", updated.FirstName)
	assert.Equal(t, user.Email, updated.Email)

	stored, err := repos.User.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "New bio", stored.Bio)
}

func TestProfileService_UpdateProfile_UnknownUser(t *testing.T) {
	repos := memory.NewRepositories()
	profileService := service.NewProfileService(repos.User)

	bio := "bio"
	_, err := profileService.UpdateProfile(context.Background(), uuid.New(), service.UpdateProfileInput{Bio: &bio})
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestProfileService_AttachPhotos(t *testing.T) {
	repos := memory.NewRepositories()
	profileService := service.NewProfileService(repos.User)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().
		WithPhotos("/uploads/old-1.jpg", "/uploads/old-2.jpg").
		Build(t, repos.User)

	t.Run("empty upload rejected", func(t *testing.T) {
		_, err := profileService.AttachPhotos(ctx, user.ID, nil)
		var vErr *service.ValidationError
		assert.ErrorAs(t, err, &vErr)
	})

	t.Run("new set replaces old photos entirely", func(t *testing.T) {
		updated, err := profileService.AttachPhotos(ctx, user.ID, []string{"/uploads/new-1.jpg"})
		require.NoError(t, err)
		assert.Equal(t, []string{"/uploads/new-1.jpg"}, updated.Photos)

		stored, err := repos.User.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"/uploads/new-1.jpg"}, stored.Photos)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := profileService.AttachPhotos(ctx, uuid.New(), []string{"/uploads/x.jpg"})
		assert.ErrorIs(t, err, service.ErrUserNotFound)
	})
}

func TestProfileService_UpdateProfile_GenderChange(t *testing.T) {
	repos := memory.NewRepositories()
	profileService := service.NewProfileService(repos.User)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().WithGender(domain.GenderFemale).Build(t, repos.User)

	gender := domain.GenderOther
	updated, err := profileService.UpdateProfile(ctx, user.ID, service.UpdateProfileInput{Gender: &gender})
	require.NoError(t, err)
	assert.Equal(t, domain.GenderOther, updated.Gender)
}
