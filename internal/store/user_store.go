package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"taskly.com/internal/domain"
	"taskly.com/internal/model"
)

// UserStoreImpl implements domain.UserStore on GORM.
type UserStoreImpl struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStoreImpl {
	return &UserStoreImpl{db: db}
}

func (s *UserStoreImpl) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?)", email).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserStoreImpl) FindActiveByIdentifier(ctx context.Context, identifier string) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).
		Where("(LOWER(email) = LOWER(?) OR LOWER(username) = LOWER(?)) AND is_active = ?",
			identifier, identifier, true).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserStoreImpl) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.User{}).
		Where("LOWER(username) = LOWER(?)", username).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Insert persists a new user. A unique-index collision surfaces as
// gorm.ErrDuplicatedKey for the caller to remap.
func (s *UserStoreImpl) Insert(ctx context.Context, user *model.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *UserStoreImpl) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

var _ domain.UserStore = (*UserStoreImpl)(nil)
