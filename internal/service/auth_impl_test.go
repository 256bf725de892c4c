package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"taskly.com/internal/auth"
	"taskly.com/internal/config"
	"taskly.com/internal/domain"
	"taskly.com/internal/model"
	"taskly.com/internal/store"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Task{},
		&model.Team{},
		&model.TeamMember{},
		&model.Project{},
		&model.ProjectMember{},
		&model.Document{},
	))
	return db
}

func newTestTokens() *auth.TokenManager {
	return auth.NewTokenManager(config.JWTConfig{
		Secret:      "unit-test-secret",
		Issuer:      "taskly-api",
		Audience:    "taskly-mobile",
		ExpiryHours: 168,
	})
}

func newAuthService(t *testing.T) (*AuthServiceImpl, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewAuthService(store.NewUserStore(db), newTestTokens()), db
}

func signUp(t *testing.T, svc *AuthServiceImpl, name, surname, email, password string) string {
	t.Helper()
	username, err := svc.SignUp(context.Background(), domain.SignUpInput{
		Name:     name,
		Surname:  surname,
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return username
}

func TestSignUpDerivesUsername(t *testing.T) {
	svc, _ := newAuthService(t)

	assert.Equal(t, "ada.lovelace", signUp(t, svc, "Ada", "Lovelace", "ada@x.com", "pw123"))
	assert.Equal(t, "ada.lovelace1", signUp(t, svc, "Ada", "Lovelace", "ada2@x.com", "pw456"))
	assert.Equal(t, "ada.lovelace2", signUp(t, svc, "Ada", "Lovelace", "ada3@x.com", "pw789"))
}

func TestSignUpDuplicateEmail(t *testing.T) {
	svc, db := newAuthService(t)
	signUp(t, svc, "Ada", "Lovelace", "ada@x.com", "pw123")

	_, err := svc.SignUp(context.Background(), domain.SignUpInput{
		Name: "Other", Surname: "Person", Email: "ADA@X.COM", Password: "pw",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)

	// Rejected before persistence: no second record exists.
	var count int64
	require.NoError(t, db.Model(&model.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSignUpNeverStoresPlaintext(t *testing.T) {
	svc, db := newAuthService(t)
	signUp(t, svc, "Ada", "Lovelace", "ada@x.com", "pw123")

	var user model.User
	require.NoError(t, db.First(&user).Error)
	assert.NotEqual(t, "pw123", user.PasswordHash)
	assert.Equal(t, "user", user.Role)
	assert.True(t, user.IsActive)
}

func TestLoginRoundTrip(t *testing.T) {
	svc, _ := newAuthService(t)
	username := signUp(t, svc, "Ada", "Lovelace", "ada@x.com", "pw123")

	ctx := context.Background()

	result, err := svc.Login(ctx, username, "pw123")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "ada.lovelace", result.User.Username)
	assert.Equal(t, "ada@x.com", result.User.Email)
	assert.Equal(t, "user", result.User.Role)

	claims, err := newTestTokens().Verify(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "ada.lovelace", claims.Username)
	assert.Equal(t, "user", claims.Role)

	_, err = svc.Login(ctx, username, "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginCaseInsensitiveIdentifier(t *testing.T) {
	svc, _ := newAuthService(t)
	signUp(t, svc, "Ada", "Lovelace", "Ada@X.com", "pw123")

	ctx := context.Background()

	_, err := svc.Login(ctx, "ada@x.com", "pw123")
	assert.NoError(t, err)

	_, err = svc.Login(ctx, "ADA.LOVELACE", "pw123")
	assert.NoError(t, err)
}

func TestLoginInactiveLooksLikeMissing(t *testing.T) {
	svc, db := newAuthService(t)
	username := signUp(t, svc, "Ada", "Lovelace", "ada@x.com", "pw123")

	require.NoError(t, db.Model(&model.User{}).
		Where("username = ?", username).
		Update("is_active", false).Error)

	ctx := context.Background()

	_, errInactive := svc.Login(ctx, username, "pw123")
	_, errMissing := svc.Login(ctx, "no.such.user", "pw123")

	assert.ErrorIs(t, errInactive, domain.ErrUserNotFound)
	assert.ErrorIs(t, errMissing, domain.ErrUserNotFound)

	var inactiveErr, missingErr *domain.AppError
	require.ErrorAs(t, errInactive, &inactiveErr)
	require.ErrorAs(t, errMissing, &missingErr)
	assert.Equal(t, missingErr.Code, inactiveErr.Code)
	assert.Equal(t, missingErr.Message, inactiveErr.Message)
}

// racingStore passes the advisory duplicate checks but loses the insert, as a
// concurrent writer would.
type racingStore struct {
	domain.UserStore
	emailTakenAfterInsert bool
	insertAttempted       bool
}

func (s *racingStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.insertAttempted && s.emailTakenAfterInsert {
		return &model.User{Email: email}, nil
	}
	return nil, domain.ErrNotFound
}

func (s *racingStore) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return false, nil
}

func (s *racingStore) Insert(ctx context.Context, user *model.User) error {
	s.insertAttempted = true
	return gorm.ErrDuplicatedKey
}

func TestSignUpRemapsInsertRace(t *testing.T) {
	input := domain.SignUpInput{Name: "Ada", Surname: "Lovelace", Email: "ada@x.com", Password: "pw"}

	// Losing the email index surfaces as the duplicate-email rejection.
	svc := NewAuthService(&racingStore{emailTakenAfterInsert: true}, newTestTokens())
	_, err := svc.SignUp(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)

	// Losing the username index surfaces as the duplicate-username rejection.
	svc = NewAuthService(&racingStore{emailTakenAfterInsert: false}, newTestTokens())
	_, err = svc.SignUp(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
}

func TestGetUser(t *testing.T) {
	svc, db := newAuthService(t)
	signUp(t, svc, "Ada", "Lovelace", "ada@x.com", "pw123")

	var user model.User
	require.NoError(t, db.First(&user).Error)

	found, err := svc.GetUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada.lovelace", found.Username)

	_, err = svc.GetUser(context.Background(), user.ID+100)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
