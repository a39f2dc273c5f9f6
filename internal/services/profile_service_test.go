package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard_backend/internal/repositories/repotest"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

func TestProfileService_CreateAndGet(t *testing.T) {
	svc := NewProfileService(repotest.NewProfileRepo())

	profile, err := svc.Create("seeker-1", &dto.CreateProfileRequest{
		Headline: "Go developer",
		Skills:   []string{"go", "sql"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "sql"}, profile.GetSkills())

	found, err := svc.GetByUserID("seeker-1")
	require.NoError(t, err)
	assert.Equal(t, "Go developer", found.Headline)
}

func TestProfileService_Create_Duplicate(t *testing.T) {
	svc := NewProfileService(repotest.NewProfileRepo())

	_, err := svc.Create("seeker-1", &dto.CreateProfileRequest{})
	require.NoError(t, err)

	_, err = svc.Create("seeker-1", &dto.CreateProfileRequest{})
	assert.ErrorIs(t, err, apperrors.ErrProfileAlreadyExists)
}

func TestProfileService_Get_NotFound(t *testing.T) {
	svc := NewProfileService(repotest.NewProfileRepo())

	_, err := svc.GetByUserID("seeker-1")
	assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
}

func TestProfileService_Update_Partial(t *testing.T) {
	svc := NewProfileService(repotest.NewProfileRepo())

	_, err := svc.Create("seeker-1", &dto.CreateProfileRequest{
		Headline: "Go developer",
		Bio:      "I write Go",
	})
	require.NoError(t, err)

	newHeadline := "Senior Go developer"
	updated, err := svc.Update("seeker-1", &dto.UpdateProfileRequest{Headline: &newHeadline})
	require.NoError(t, err)

	assert.Equal(t, "Senior Go developer", updated.Headline)
	// Не переданные поля не трогаются
	assert.Equal(t, "I write Go", updated.Bio)
}

func TestProfileService_Update_NotFound(t *testing.T) {
	svc := NewProfileService(repotest.NewProfileRepo())

	headline := "anything"
	_, err := svc.Update("seeker-1", &dto.UpdateProfileRequest{Headline: &headline})
	assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
}

func TestProfileService_Delete(t *testing.T) {
	svc := NewProfileService(repotest.NewProfileRepo())

	_, err := svc.Create("seeker-1", &dto.CreateProfileRequest{})
	require.NoError(t, err)

	require.NoError(t, svc.Delete("seeker-1"))
	assert.ErrorIs(t, svc.Delete("seeker-1"), apperrors.ErrProfileNotFound)
}
