package user

import (
	"Care-Crumbs/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		GetUserByEmailOrMobile(ctx context.Context, emailOrMobile string) (*entities.User, error)
		UpdateUser(ctx context.Context, user *entities.User) error
		UpdateUserPassword(ctx context.Context, id string, passwordHash string) error

		CreatePasswordReset(ctx context.Context, reset *entities.PasswordReset) error
		GetActivePasswordReset(ctx context.Context, emailOrMobile string, otp string, now time.Time) (*entities.PasswordReset, error)
		DeletePasswordResetsByUser(ctx context.Context, userID string) error
		DeletePasswordReset(ctx context.Context, id string) error
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmailOrMobile(ctx context.Context, emailOrMobile string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).
		Where("email = ? OR mobile = ?", emailOrMobile, emailOrMobile).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) UpdateUserPassword(ctx context.Context, id string, passwordHash string) error {
	return r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("id = ?", id).
		Update("password", passwordHash).Error
}

func (r *userRepository) CreatePasswordReset(ctx context.Context, reset *entities.PasswordReset) error {
	return r.db.WithContext(ctx).Create(reset).Error
}

func (r *userRepository) GetActivePasswordReset(ctx context.Context, emailOrMobile string, otp string, now time.Time) (*entities.PasswordReset, error) {
	var reset entities.PasswordReset
	if err := r.db.WithContext(ctx).
		Where("email_or_mobile = ? AND otp = ? AND expires > ?", emailOrMobile, otp, now).
		First(&reset).Error; err != nil {
		return nil, err
	}
	return &reset, nil
}

func (r *userRepository) DeletePasswordResetsByUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&entities.PasswordReset{}).Error
}

func (r *userRepository) DeletePasswordReset(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.PasswordReset{}).Error
}
