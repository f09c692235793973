package user

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"
	"time"

	"Care-Crumbs/domain"
	"Care-Crumbs/entities"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type mockUserRepository struct {
	users  map[string]*entities.User
	resets map[string]*entities.PasswordReset
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{
		users:  make(map[string]*entities.User),
		resets: make(map[string]*entities.PasswordReset),
	}
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user *entities.User) error {
	m.users[user.ID.String()] = user
	return nil
}

func (m *mockUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (m *mockUserRepository) GetUserByEmailOrMobile(ctx context.Context, emailOrMobile string) (*entities.User, error) {
	for _, user := range m.users {
		if user.Email == emailOrMobile || user.Mobile == emailOrMobile {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	m.users[user.ID.String()] = user
	return nil
}

func (m *mockUserRepository) UpdateUserPassword(ctx context.Context, id string, passwordHash string) error {
	user, ok := m.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.Password = passwordHash
	return nil
}

func (m *mockUserRepository) CreatePasswordReset(ctx context.Context, reset *entities.PasswordReset) error {
	m.resets[reset.ID.String()] = reset
	return nil
}

func (m *mockUserRepository) GetActivePasswordReset(ctx context.Context, emailOrMobile string, otp string, now time.Time) (*entities.PasswordReset, error) {
	for _, reset := range m.resets {
		if reset.EmailOrMobile == emailOrMobile && reset.OTP == otp && reset.Expires.After(now) {
			return reset, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepository) DeletePasswordResetsByUser(ctx context.Context, userID string) error {
	for id, reset := range m.resets {
		if reset.UserID.String() == userID {
			delete(m.resets, id)
		}
	}
	return nil
}

func (m *mockUserRepository) DeletePasswordReset(ctx context.Context, id string) error {
	delete(m.resets, id)
	return nil
}

type mockJWTService struct{}

func (m *mockJWTService) GenerateTokenUser(userId string, role string) string {
	return "token-" + userId + "-" + role
}

func (m *mockJWTService) ValidateTokenUser(token string) (*jwtlib.Token, error) {
	return nil, nil
}

func (m *mockJWTService) GetUserIDByToken(token string) (string, string, error) {
	return "", "", nil
}

type mockS3 struct{}

func (m *mockS3) UploadFile(fileName string, file *multipart.FileHeader, dir string, allowedTypes ...string) (string, error) {
	return dir + "/" + fileName, nil
}

func (m *mockS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowedTypes ...string) (string, error) {
	return objectKey, nil
}

func (m *mockS3) DeleteFile(objectKey string) error { return nil }

func (m *mockS3) GetPublicLinkKey(objectKey string) string {
	return "https://bucket.s3.region.amazonaws.com/" + objectKey
}

func (m *mockS3) GetObjectKeyFromLink(link string) string { return "" }

type mockSmsSender struct {
	sent []string
	err  error
}

func (m *mockSmsSender) SendSMS(ctx context.Context, phoneNumber string, message string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, message)
	return nil
}

func seedUser(repo *mockUserRepository, password string) *entities.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	user := &entities.User{
		ID:       uuid.New(),
		Name:     "Asha",
		Email:    "asha@example.com",
		Mobile:   "+6281234567890",
		Password: string(hash),
		Role:     domain.RoleUser,
	}
	repo.users[user.ID.String()] = user
	return user
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newMockUserRepository()
	service := NewUserService(repo, &mockJWTService{}, &mockS3{}, &mockSmsSender{})

	res, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Budi",
		Email:    "budi@example.com",
		Mobile:   "+6289876543210",
		Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	stored, ok := repo.users[res.ID]
	if !ok {
		t.Fatal("user was not persisted")
	}
	if stored.Password == "supersecret" {
		t.Error("password must not be stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("supersecret")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
	if stored.Role != domain.RoleUser {
		t.Errorf("expected default role %q, got %q", domain.RoleUser, stored.Role)
	}
}

func TestRegisterDuplicateEmailOrMobile(t *testing.T) {
	repo := newMockUserRepository()
	service := NewUserService(repo, &mockJWTService{}, &mockS3{}, &mockSmsSender{})
	existing := seedUser(repo, "password123")

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Clone",
		Email:    existing.Email,
		Mobile:   "+6200000000000",
		Password: "password123",
	})
	if !errors.Is(err, domain.ErrUserAlreadyExists) {
		t.Errorf("expected ErrUserAlreadyExists for duplicate email, got %v", err)
	}

	_, err = service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Clone",
		Email:    "other@example.com",
		Mobile:   existing.Mobile,
		Password: "password123",
	})
	if !errors.Is(err, domain.ErrUserAlreadyExists) {
		t.Errorf("expected ErrUserAlreadyExists for duplicate mobile, got %v", err)
	}
}

func TestLoginByEmailAndMobile(t *testing.T) {
	repo := newMockUserRepository()
	service := NewUserService(repo, &mockJWTService{}, &mockS3{}, &mockSmsSender{})
	user := seedUser(repo, "password123")

	for _, identifier := range []string{user.Email, user.Mobile} {
		res, err := service.Login(context.Background(), domain.LoginRequest{
			EmailOrMobile: identifier,
			Password:      "password123",
		})
		if err != nil {
			t.Fatalf("Login with %q failed: %v", identifier, err)
		}
		if res.Token == "" {
			t.Error("expected a token")
		}
	}

	_, err := service.Login(context.Background(), domain.LoginRequest{
		EmailOrMobile: user.Email,
		Password:      "wrong",
	})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}

	_, err = service.Login(context.Background(), domain.LoginRequest{
		EmailOrMobile: "nobody@example.com",
		Password:      "password123",
	})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestForgotPasswordMobileSendsCode(t *testing.T) {
	repo := newMockUserRepository()
	sender := &mockSmsSender{}
	service := NewUserService(repo, &mockJWTService{}, &mockS3{}, sender)
	user := seedUser(repo, "password123")

	err := service.ForgotPassword(context.Background(), domain.ForgotPasswordRequest{
		EmailOrMobile: user.Mobile,
		Method:        "mobile",
	})
	if err != nil {
		t.Fatalf("ForgotPassword failed: %v", err)
	}

	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 SMS, got %d", len(sender.sent))
	}
	if len(repo.resets) != 1 {
		t.Fatalf("expected 1 reset record, got %d", len(repo.resets))
	}
	for _, reset := range repo.resets {
		if len(reset.OTP) != 6 {
			t.Errorf("expected 6-digit code, got %q", reset.OTP)
		}
		if !reset.Expires.After(time.Now()) {
			t.Error("reset code must expire in the future")
		}
	}
}

func TestForgotPasswordSupersedesPreviousCode(t *testing.T) {
	repo := newMockUserRepository()
	sender := &mockSmsSender{}
	service := NewUserService(repo, &mockJWTService{}, &mockS3{}, sender)
	user := seedUser(repo, "password123")

	req := domain.ForgotPasswordRequest{EmailOrMobile: user.Mobile, Method: "mobile"}
	if err := service.ForgotPassword(context.Background(), req); err != nil {
		t.Fatalf("first ForgotPassword failed: %v", err)
	}
	var firstOTP string
	for _, reset := range repo.resets {
		firstOTP = reset.OTP
	}

	if err := service.ForgotPassword(context.Background(), req); err != nil {
		t.Fatalf("second ForgotPassword failed: %v", err)
	}
	if len(repo.resets) != 1 {
		t.Fatalf("old codes must be superseded, got %d records", len(repo.resets))
	}

	// the first code is no longer redeemable unless it happens to repeat
	var secondOTP string
	for _, reset := range repo.resets {
		secondOTP = reset.OTP
	}
	if firstOTP != secondOTP {
		err := service.ResetPassword(context.Background(), domain.ResetPasswordRequest{
			EmailOrMobile: user.Mobile,
			ResetCode:     firstOTP,
			NewPassword:   "newpassword",
		})
		if !errors.Is(err, domain.ErrInvalidOrExpiredCode) {
			t.Errorf("expected superseded code to be rejected, got %v", err)
		}
	}
}

func TestForgotPasswordUnknownUser(t *testing.T) {
	service := NewUserService(newMockUserRepository(), &mockJWTService{}, &mockS3{}, &mockSmsSender{})

	err := service.ForgotPassword(context.Background(), domain.ForgotPasswordRequest{
		EmailOrMobile: "ghost@example.com",
		Method:        "mobile",
	})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestResetPasswordConsumesCode(t *testing.T) {
	repo := newMockUserRepository()
	sender := &mockSmsSender{}
	service := NewUserService(repo, &mockJWTService{}, &mockS3{}, sender)
	user := seedUser(repo, "oldpassword")

	if err := service.ForgotPassword(context.Background(), domain.ForgotPasswordRequest{
		EmailOrMobile: user.Mobile,
		Method:        "mobile",
	}); err != nil {
		t.Fatalf("ForgotPassword failed: %v", err)
	}
	var otp string
	for _, reset := range repo.resets {
		otp = reset.OTP
	}

	if err := service.ResetPassword(context.Background(), domain.ResetPasswordRequest{
		EmailOrMobile: user.Mobile,
		ResetCode:     otp,
		NewPassword:   "newpassword",
	}); err != nil {
		t.Fatalf("ResetPassword failed: %v", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("newpassword")); err != nil {
		t.Errorf("new password does not verify: %v", err)
	}
	if len(repo.resets) != 0 {
		t.Errorf("redeemed code must be consumed, got %d records", len(repo.resets))
	}

	// a consumed code cannot be replayed
	err := service.ResetPassword(context.Background(), domain.ResetPasswordRequest{
		EmailOrMobile: user.Mobile,
		ResetCode:     otp,
		NewPassword:   "anotherpassword",
	})
	if !errors.Is(err, domain.ErrInvalidOrExpiredCode) {
		t.Errorf("expected ErrInvalidOrExpiredCode on replay, got %v", err)
	}
}

func TestResetPasswordExpiredCode(t *testing.T) {
	repo := newMockUserRepository()
	service := NewUserService(repo, &mockJWTService{}, &mockS3{}, &mockSmsSender{})
	user := seedUser(repo, "oldpassword")

	reset := &entities.PasswordReset{
		ID:            uuid.New(),
		UserID:        user.ID,
		EmailOrMobile: user.Mobile,
		OTP:           "123456",
		Expires:       time.Now().Add(-time.Minute),
	}
	repo.resets[reset.ID.String()] = reset

	err := service.ResetPassword(context.Background(), domain.ResetPasswordRequest{
		EmailOrMobile: user.Mobile,
		ResetCode:     "123456",
		NewPassword:   "newpassword",
	})
	if !errors.Is(err, domain.ErrInvalidOrExpiredCode) {
		t.Errorf("expected ErrInvalidOrExpiredCode for expired code, got %v", err)
	}
}

func TestForgotPasswordSmsFailure(t *testing.T) {
	repo := newMockUserRepository()
	sender := &mockSmsSender{err: errors.New("sns unavailable")}
	service := NewUserService(repo, &mockJWTService{}, &mockS3{}, sender)
	user := seedUser(repo, "password123")

	err := service.ForgotPassword(context.Background(), domain.ForgotPasswordRequest{
		EmailOrMobile: user.Mobile,
		Method:        "mobile",
	})
	if !errors.Is(err, domain.ErrSendResetCode) {
		t.Errorf("expected ErrSendResetCode, got %v", err)
	}
}
