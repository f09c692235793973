package user

import (
	"Care-Crumbs/domain"
	"Care-Crumbs/entities"
	"Care-Crumbs/internal/utils/mailing"
	"Care-Crumbs/internal/utils/sms"
	"Care-Crumbs/internal/utils/storage"
	"Care-Crumbs/pkg/jwt"
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const resetCodeTTL = time.Hour

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
		UpdateUser(ctx context.Context, req domain.UpdateUserRequest, userID string) error
		ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error
		ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		s3             storage.AwsS3
		smsSender      sms.SnsSender
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, s3 storage.AwsS3, smsSender sms.SnsSender) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		s3:             s3,
		smsSender:      smsSender,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	if _, err := s.userRepository.GetUserByEmailOrMobile(ctx, req.Email); err == nil {
		return domain.RegisterResponse{}, domain.ErrUserAlreadyExists
	}
	if _, err := s.userRepository.GetUserByEmailOrMobile(ctx, req.Mobile); err == nil {
		return domain.RegisterResponse{}, domain.ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, domain.ErrPasswordHashingFailed
	}

	user := &entities.User{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Mobile:    req.Mobile,
		Password:  string(hash),
		Role:      domain.RoleUser,
		LastLogin: time.Now(),
	}

	if req.ProfileImage != nil {
		fileName := fmt.Sprintf("profile-%s", user.ID.String())
		objectKey, err := s.s3.UploadFile(fileName, req.ProfileImage, "profiles", storage.AllowImage...)
		if err != nil {
			return domain.RegisterResponse{}, err
		}
		user.ProfileImage = s.s3.GetPublicLinkKey(objectKey)
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.RegisterResponse{}, err
	}

	return domain.RegisterResponse{
		ID:           user.ID.String(),
		Name:         user.Name,
		Email:        user.Email,
		Mobile:       user.Mobile,
		ProfileImage: user.ProfileImage,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmailOrMobile(ctx, req.EmailOrMobile)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)

	user.LastLogin = time.Now()
	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.LoginResponse{}, err
	}

	return domain.LoginResponse{
		Token: token,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	return domain.UserResponse{
		ID:           user.ID.String(),
		Name:         user.Name,
		Email:        user.Email,
		Mobile:       user.Mobile,
		ProfileImage: user.ProfileImage,
		LastLogin:    user.LastLogin,
		CreatedAt:    user.CreatedAt,
	}, nil
}

func (s *userService) UpdateUser(ctx context.Context, req domain.UpdateUserRequest, userID string) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Mobile != "" {
		user.Mobile = req.Mobile
	}

	if req.ProfileImage != nil {
		fileName := fmt.Sprintf("profile-%s", user.ID.String())
		var objectKey string
		var uploadErr error

		if user.ProfileImage != "" {
			existingKey := s.s3.GetObjectKeyFromLink(user.ProfileImage)
			if existingKey != "" {
				objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.ProfileImage, storage.AllowImage...)
			} else {
				objectKey, uploadErr = s.s3.UploadFile(fileName, req.ProfileImage, "profiles", storage.AllowImage...)
			}
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.ProfileImage, "profiles", storage.AllowImage...)
		}

		if uploadErr != nil {
			return uploadErr
		}
		user.ProfileImage = s.s3.GetPublicLinkKey(objectKey)
	}

	return s.userRepository.UpdateUser(ctx, user)
}

// ForgotPassword issues a fresh 6-digit reset code. Any code previously
// issued for the user is deleted first, so only the newest code can be
// redeemed.
func (s *userService) ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error {
	user, err := s.userRepository.GetUserByEmailOrMobile(ctx, req.EmailOrMobile)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if err := s.userRepository.DeletePasswordResetsByUser(ctx, user.ID.String()); err != nil {
		return err
	}

	otp, err := generateOTP(6)
	if err != nil {
		return err
	}

	reset := &entities.PasswordReset{
		ID:            uuid.New(),
		UserID:        user.ID,
		EmailOrMobile: req.EmailOrMobile,
		OTP:           otp,
		Expires:       time.Now().Add(resetCodeTTL),
	}

	if err := s.userRepository.CreatePasswordReset(ctx, reset); err != nil {
		return err
	}

	switch req.Method {
	case "email":
		if err := mailing.SendResetCodeMail(req.EmailOrMobile, otp); err != nil {
			return domain.ErrSendResetCode
		}
	case "mobile":
		message := fmt.Sprintf("Your Care Crumbs password reset code is: %s", otp)
		if err := s.smsSender.SendSMS(ctx, req.EmailOrMobile, message); err != nil {
			return domain.ErrSendResetCode
		}
	default:
		return domain.ErrInvalidResetMethod
	}

	return nil
}

// ResetPassword redeems a code issued by ForgotPassword. The code must match,
// be unexpired and belong to the given email or mobile; it is consumed on
// success.
func (s *userService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	reset, err := s.userRepository.GetActivePasswordReset(ctx, req.EmailOrMobile, req.ResetCode, time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrInvalidOrExpiredCode
		}
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return domain.ErrPasswordHashingFailed
	}

	if err := s.userRepository.UpdateUserPassword(ctx, reset.UserID.String(), string(hash)); err != nil {
		return err
	}

	return s.userRepository.DeletePasswordReset(ctx, reset.ID.String())
}

func generateOTP(length int) (string, error) {
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
