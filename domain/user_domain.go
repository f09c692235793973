package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessRegister       = "user registered successfully"
	MessageSuccessLogin          = "login successful"
	MessageSuccessGetProfile     = "profile retrieved successfully"
	MessageSuccessUpdateProfile  = "profile updated successfully"
	MessageSuccessForgotPassword = "reset code sent successfully"
	MessageSuccessResetPassword  = "password reset successfully"

	MessageFailedRegister       = "failed to register user"
	MessageFailedLogin          = "failed to login"
	MessageFailedGetProfile     = "failed to retrieve profile"
	MessageFailedUpdateProfile  = "failed to update profile"
	MessageFailedForgotPassword = "failed to send reset code"
	MessageFailedResetPassword  = "failed to reset password"

	ErrUserNotFound          = errors.New("user not found")
	ErrUserAlreadyExists     = errors.New("user already exists")
	ErrInvalidCredentials    = errors.New("invalid email, mobile or password")
	ErrInvalidOrExpiredCode  = errors.New("invalid or expired reset code")
	ErrInvalidResetMethod    = errors.New("reset method must be email or mobile")
	ErrSendResetCode         = errors.New("failed to deliver reset code")
	ErrPasswordHashingFailed = errors.New("failed to hash password")
)

type (
	RegisterRequest struct {
		Name         string                `json:"name" form:"name" validate:"required"`
		Email        string                `json:"email" form:"email" validate:"required,email"`
		Mobile       string                `json:"mobile" form:"mobile" validate:"required"`
		Password     string                `json:"password" form:"password" validate:"required,min=8"`
		ProfileImage *multipart.FileHeader `json:"profile_image" form:"profile_image"`
	}

	RegisterResponse struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		Email        string `json:"email"`
		Mobile       string `json:"mobile"`
		ProfileImage string `json:"profile_image,omitempty"`
	}

	LoginRequest struct {
		EmailOrMobile string `json:"email_or_mobile" validate:"required"`
		Password      string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}

	UserResponse struct {
		ID           string    `json:"id"`
		Name         string    `json:"name"`
		Email        string    `json:"email"`
		Mobile       string    `json:"mobile"`
		ProfileImage string    `json:"profile_image,omitempty"`
		LastLogin    time.Time `json:"last_login"`
		CreatedAt    time.Time `json:"created_at"`
	}

	UpdateUserRequest struct {
		Name         string                `json:"name" form:"name" validate:"omitempty"`
		Mobile       string                `json:"mobile" form:"mobile" validate:"omitempty"`
		ProfileImage *multipart.FileHeader `json:"profile_image" form:"profile_image"`
	}

	ForgotPasswordRequest struct {
		EmailOrMobile string `json:"email_or_mobile" validate:"required"`
		Method        string `json:"method" validate:"required,oneof=email mobile"`
	}

	ResetPasswordRequest struct {
		EmailOrMobile string `json:"email_or_mobile" validate:"required"`
		ResetCode     string `json:"reset_code" validate:"required,len=6,numeric"`
		NewPassword   string `json:"new_password" validate:"required,min=8"`
	}
)
