package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/joshua-takyi/carrental/internal/helpers"
	"github.com/joshua-takyi/carrental/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.user(t, "john@example.com", models.RoleUser)

	phone := "+977-9800000009"
	updated, err := f.users.UpdateProfile(ctx, u.ID, models.UpdateProfileRequest{Phone: &phone})
	require.NoError(t, err)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, phone, *updated.Phone)
	assert.Equal(t, "Test User", updated.Name)

	password := "new-password"
	updated, err = f.users.UpdateProfile(ctx, u.ID, models.UpdateProfileRequest{Password: &password})
	require.NoError(t, err)
	assert.NotEqual(t, password, updated.Password)
	assert.True(t, helpers.CheckPassword(updated.Password, password))

	_, err = f.users.UpdateProfile(ctx, uuid.New(), models.UpdateProfileRequest{Phone: &phone})
	assertKind(t, err, KindNotFound, "User not found")
}

func TestUploadLicense(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.user(t, "john@example.com", models.RoleUser)

	url, err := f.users.UploadLicense(ctx, u.ID, &helpers.Upload{Filename: "license.pdf", MIME: "application/pdf"})
	require.NoError(t, err)
	assert.Equal(t, []string{helpers.LicensesFolder}, f.store.folders)

	profile, err := f.users.GetProfile(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, profile.LicenseURL)
	assert.Equal(t, url, *profile.LicenseURL)
}

func TestUploadError(t *testing.T) {
	assertKind(t, UploadError(helpers.ErrFileTooLarge), KindValidation, "File size must not exceed 5MB")
	assertKind(t, UploadError(fmt.Errorf("%w: text/plain", helpers.ErrUnsupportedType)), KindValidation, "Invalid file type")

	other := fmt.Errorf("disk on fire")
	assert.Same(t, other, UploadError(other))
}
