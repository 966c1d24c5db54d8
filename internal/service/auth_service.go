package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "animehub/internal/errors"
	"animehub/internal/model"
	"animehub/internal/repository"
	"animehub/internal/session"
)

const bcryptCost = 10

// ErrInvalidCredentials is returned when username or password is incorrect.
// The two cases are deliberately indistinguishable so usernames cannot be
// enumerated through the login endpoint.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService verifies admin credentials and resolves session tokens.
type AuthService interface {
	Verify(ctx context.Context, username, password string) (*model.Admin, error)
	HashPassword(password string) (string, error)
	Resolve(ctx context.Context, token string) (uint, error)
	GetByID(ctx context.Context, id uint) (*model.Admin, error)
	CreateAdmin(ctx context.Context, username, password string) (*model.Admin, error)
}

type authService struct {
	adminRepo repository.AdminRepository
}

// NewAuthService creates a new authentication service.
func NewAuthService(adminRepo repository.AdminRepository) AuthService {
	return &authService{adminRepo: adminRepo}
}

// Verify checks a username/password pair against the stored bcrypt hash.
func (s *authService) Verify(ctx context.Context, username, password string) (*model.Admin, error) {
	admin, err := s.adminRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return admin, nil
}

// HashPassword produces a salted bcrypt hash suitable for long-term storage.
// Comparison always goes through bcrypt's own verify, never by re-hashing.
func (s *authService) HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// Resolve decodes a session token and confirms the embedded admin still
// exists. Malformed tokens and stale admin IDs both come back unauthorized.
func (s *authService) Resolve(ctx context.Context, token string) (uint, error) {
	sess, ok := session.Decode(token)
	if !ok {
		return 0, apperrors.ErrUnauthorized
	}

	if _, err := s.adminRepo.FindByID(ctx, sess.AdminID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.ErrUnauthorized
		}
		return 0, fmt.Errorf("resolve session: %w", err)
	}
	return sess.AdminID, nil
}

// GetByID hydrates the admin identity for a resolved session.
func (s *authService) GetByID(ctx context.Context, id uint) (*model.Admin, error) {
	admin, err := s.adminRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}
	return admin, nil
}

// CreateAdmin creates an admin with a freshly hashed password.
func (s *authService) CreateAdmin(ctx context.Context, username, password string) (*model.Admin, error) {
	hashed, err := s.HashPassword(password)
	if err != nil {
		return nil, err
	}

	admin := &model.Admin{
		Username: username,
		Password: hashed,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}
	return admin, nil
}
