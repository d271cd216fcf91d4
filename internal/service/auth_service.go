package service

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/imammufiid/bnyu-admin/internal/auth"
	"github.com/imammufiid/bnyu-admin/internal/errors"
	"github.com/imammufiid/bnyu-admin/internal/model"
	"github.com/imammufiid/bnyu-admin/internal/repository"
)

const bcryptCost = 10

// AuthService handles admin authentication and the persisted session identity.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*model.Admin, error)
	Login(ctx context.Context, email, password string) (token string, identity *auth.Identity, err error)
	Logout(ctx context.Context, sessionID string) error
	Identity(ctx context.Context, sessionID string) (*auth.Identity, error)
	UpdateProfile(ctx context.Context, sessionID, email, name string) (*auth.Identity, error)
}

type authService struct {
	adminRepo  repository.AdminRepository
	jwtService *auth.JWTService
	sessions   auth.SessionStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(adminRepo repository.AdminRepository, jwtService *auth.JWTService, sessions auth.SessionStoreInterface) AuthService {
	return &authService{
		adminRepo:  adminRepo,
		jwtService: jwtService,
		sessions:   sessions,
	}
}

// Register creates a new admin with a hashed password.
func (s *authService) Register(ctx context.Context, name, email, password string) (*model.Admin, error) {
	existing, err := s.adminRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, errors.ErrEmailTaken
	}
	if err != nil && !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check admin existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	admin := &model.Admin{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}
	return admin, nil
}

// Login verifies credentials, issues a session token and persists the
// identity under the token's session ID.
func (s *authService) Login(ctx context.Context, email, password string) (string, *auth.Identity, error) {
	admin, err := s.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, errors.ErrNoAccount
		}
		return "", nil, fmt.Errorf("find admin: %w", err)
	}

	// Fails closed: any comparison error reads as a bad password.
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", nil, errors.ErrIncorrectPassword
	}

	sessionID, token, err := s.jwtService.GenerateSessionToken(admin)
	if err != nil {
		return "", nil, fmt.Errorf("generate session token: %w", err)
	}

	identity := &auth.Identity{
		AdminID: admin.ID.String(),
		Name:    admin.Name,
		Email:   admin.Email,
	}
	if err := s.sessions.Put(ctx, sessionID, *identity, auth.SessionExpiry); err != nil {
		return "", nil, fmt.Errorf("persist session: %w", err)
	}
	return token, identity, nil
}

// Logout removes the persisted session, returning the holder to logged out.
func (s *authService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

// Identity resolves the persisted identity for a session.
func (s *authService) Identity(ctx context.Context, sessionID string) (*auth.Identity, error) {
	identity, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, errors.ErrInvalidSession
	}
	return identity, nil
}

// UpdateProfile updates the admin's display name, looked up by the current
// email, and rewrites the persisted session identity in place. Email is not
// editable.
func (s *authService) UpdateProfile(ctx context.Context, sessionID, email, name string) (*auth.Identity, error) {
	admin, err := s.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}

	if err := s.adminRepo.UpdateName(ctx, admin.ID, name); err != nil {
		return nil, fmt.Errorf("update name: %w", err)
	}

	identity := &auth.Identity{
		AdminID: admin.ID.String(),
		Name:    name,
		Email:   admin.Email,
	}
	if err := s.sessions.Put(ctx, sessionID, *identity, auth.SessionExpiry); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	return identity, nil
}
