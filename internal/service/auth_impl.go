package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"
	"taskly.com/internal/auth"
	"taskly.com/internal/domain"
	"taskly.com/internal/model"
)

// AuthServiceImpl implements domain.AuthService. The credential store is
// injected; every request is handled statelessly.
type AuthServiceImpl struct {
	store  domain.UserStore
	tokens *auth.TokenManager
}

func NewAuthService(store domain.UserStore, tokens *auth.TokenManager) *AuthServiceImpl {
	return &AuthServiceImpl{store: store, tokens: tokens}
}

// SignUp creates a credential record and returns the derived username. The
// email check and the username probe loop are advisory; the store's unique
// indexes settle concurrent sign-ups, and a losing insert is remapped to the
// same duplicate rejection a pre-detected collision gets.
func (s *AuthServiceImpl) SignUp(ctx context.Context, input domain.SignUpInput) (string, error) {
	if _, err := s.store.FindByEmail(ctx, input.Email); err == nil {
		return "", domain.NewDuplicateError("email address already in use", domain.ErrDuplicateEmail)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return "", domain.NewInternalError("failed to check email", err)
	}

	username, err := s.deriveUsername(ctx, input.Name, input.Surname)
	if err != nil {
		return "", domain.NewInternalError("failed to derive username", err)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return "", domain.NewInternalError("failed to hash password", err)
	}

	user := model.User{
		Name:         input.Name,
		Surname:      input.Surname,
		Email:        input.Email,
		Username:     username,
		PasswordHash: hash,
		Role:         "user",
		IsActive:     true,
	}
	user.CreatedAt = time.Now().UTC()

	if err := s.store.Insert(ctx, &user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", s.remapDuplicateKey(ctx, input.Email)
		}
		return "", domain.NewInternalError("failed to create user", err)
	}

	log.Printf("AuthService: user %s signed up", user.Username)
	return user.Username, nil
}

// deriveUsername builds lowercase(name).lowercase(surname) and, while taken,
// appends 1, 2, 3, ... until a free username is found. The loop is bounded by
// the count of existing colliding usernames.
func (s *AuthServiceImpl) deriveUsername(ctx context.Context, name, surname string) (string, error) {
	base := strings.ToLower(name) + "." + strings.ToLower(surname)
	username := base
	for counter := 1; ; counter++ {
		taken, err := s.store.ExistsByUsername(ctx, username)
		if err != nil {
			return "", err
		}
		if !taken {
			return username, nil
		}
		username = fmt.Sprintf("%s%d", base, counter)
	}
}

// remapDuplicateKey decides which unique index a losing concurrent insert hit.
func (s *AuthServiceImpl) remapDuplicateKey(ctx context.Context, email string) error {
	if _, err := s.store.FindByEmail(ctx, email); err == nil {
		return domain.NewDuplicateError("email address already in use", domain.ErrDuplicateEmail)
	}
	return domain.NewDuplicateError("username already in use", domain.ErrDuplicateUsername)
}

// Login verifies the identifier/password pair against the store and mints a
// session token. An unknown identifier and a deactivated account produce the
// same outward rejection.
func (s *AuthServiceImpl) Login(ctx context.Context, identifier, password string) (*domain.LoginResult, error) {
	user, err := s.store.FindActiveByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewUnauthorizedError("user not found or account inactive", domain.ErrUserNotFound)
		}
		return nil, domain.NewInternalError("failed to look up user", err)
	}

	if !auth.VerifyPassword(user.PasswordHash, password) {
		return nil, domain.NewUnauthorizedError("invalid password", domain.ErrInvalidCredentials)
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, domain.NewInternalError("failed to sign token", err)
	}

	return &domain.LoginResult{
		Token: token,
		User:  user.Public(),
	}, nil
}

func (s *AuthServiceImpl) GetUser(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFoundError("user not found")
		}
		return nil, domain.NewInternalError("failed to fetch user", err)
	}
	return user, nil
}

var _ domain.AuthService = (*AuthServiceImpl)(nil)
