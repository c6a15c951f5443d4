package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lennykioko/School-Mngmt-Backend/internal/apperrors"
	"github.com/lennykioko/School-Mngmt-Backend/internal/models"
)

func TestUserCreateAndGetByUsername(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)

	user := &models.User{
		Username:     "jdoe",
		Email:        "jdoe@school.local",
		FirstName:    "John",
		PasswordHash: "hashed",
		Active:       true,
	}
	require.NoError(t, repo.Create(user))

	got, err := repo.GetByUsername("jdoe")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "John", got.FirstName)
}

func TestUserUsernameUnique(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)

	require.NoError(t, repo.Create(&models.User{Username: "same", Email: "a@b.c", PasswordHash: "x", Active: true}))
	err := repo.Create(&models.User{Username: "same", Email: "d@e.f", PasswordHash: "y", Active: true})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
}

func TestUserUpdatePassword(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)

	user := &models.User{Username: "pwchange", Email: "p@w.c", PasswordHash: "old", Active: true}
	require.NoError(t, repo.Create(user))

	newHash := "new"
	updated, err := repo.Update(user.ID, UserPatch{PasswordHash: &newHash})
	require.NoError(t, err)
	assert.Equal(t, "new", updated.PasswordHash)
	assert.Equal(t, "pwchange", updated.Username)
}

func TestUserSearch(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)

	require.NoError(t, repo.Create(&models.User{Username: "amara", Email: "amara@x.y", FirstName: "Amara", PasswordHash: "h", Active: true}))
	require.NoError(t, repo.Create(&models.User{Username: "brian", Email: "brian@x.y", LastName: "Odhiambo", PasswordHash: "h", Active: true}))

	got, err := repo.List(ListOptions{Search: "odhia"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "brian", got[0].Username)
}
