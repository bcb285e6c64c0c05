package repository

import (
	"testing"

	"forge/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateReturnsSameProfile(t *testing.T) {
	repo := NewProfileRepository(openTestDB(t))

	first, err := repo.GetOrCreate("user-1")
	require.NoError(t, err)
	again, err := repo.GetOrCreate("user-1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
}

func TestGetOrCreatePropagatesReadErrors(t *testing.T) {
	db := openTestDB(t)
	repo := NewProfileRepository(db)

	require.NoError(t, db.Migrator().DropTable(&models.UserProfile{}))

	_, err := repo.GetOrCreate("user-1")
	assert.Error(t, err, "a failed read must not fall through to create")
}
