package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"taskly.com/internal/domain"
	"taskly.com/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}))
	return db
}

func seedUser(t *testing.T, s *UserStoreImpl, email, username string) *model.User {
	t.Helper()
	user := &model.User{
		Name:         "Test",
		Surname:      "User",
		Email:        email,
		Username:     username,
		PasswordHash: "x",
		Role:         "user",
		IsActive:     true,
	}
	require.NoError(t, s.Insert(context.Background(), user))
	return user
}

func TestFindByEmailCaseInsensitive(t *testing.T) {
	s := NewUserStore(newTestDB(t))
	seedUser(t, s, "User@X.com", "test.user")

	found, err := s.FindByEmail(context.Background(), "user@x.COM")
	require.NoError(t, err)
	assert.Equal(t, "User@X.com", found.Email)

	_, err = s.FindByEmail(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFindActiveByIdentifier(t *testing.T) {
	db := newTestDB(t)
	s := NewUserStore(db)
	user := seedUser(t, s, "ada@x.com", "ada.lovelace")

	ctx := context.Background()

	byEmail, err := s.FindActiveByIdentifier(ctx, "ADA@X.COM")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byUsername, err := s.FindActiveByIdentifier(ctx, "Ada.Lovelace")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byUsername.ID)

	// Deactivated accounts match nothing.
	require.NoError(t, db.Model(&model.User{}).Where("id = ?", user.ID).Update("is_active", false).Error)
	_, err = s.FindActiveByIdentifier(ctx, "ada@x.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExistsByUsername(t *testing.T) {
	s := NewUserStore(newTestDB(t))
	seedUser(t, s, "ada@x.com", "ada.lovelace")

	ctx := context.Background()

	taken, err := s.ExistsByUsername(ctx, "ADA.LOVELACE")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = s.ExistsByUsername(ctx, "ada.lovelace1")
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestInsertUniqueIndexes(t *testing.T) {
	s := NewUserStore(newTestDB(t))
	seedUser(t, s, "ada@x.com", "ada.lovelace")

	ctx := context.Background()

	dupEmail := &model.User{Name: "A", Surname: "B", Email: "ada@x.com", Username: "other", PasswordHash: "x", IsActive: true}
	err := s.Insert(ctx, dupEmail)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))

	dupUsername := &model.User{Name: "A", Surname: "B", Email: "other@x.com", Username: "ada.lovelace", PasswordHash: "x", IsActive: true}
	err = s.Insert(ctx, dupUsername)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}

func TestFindByID(t *testing.T) {
	s := NewUserStore(newTestDB(t))
	user := seedUser(t, s, "ada@x.com", "ada.lovelace")

	found, err := s.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada.lovelace", found.Username)

	_, err = s.FindByID(context.Background(), user.ID+100)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
