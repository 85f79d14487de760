package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/crucial707/blog-api/internal/auth"
	"github.com/crucial707/blog-api/internal/models"
	"github.com/crucial707/blog-api/internal/repo"
)

// UserStore persists users. Create must report a duplicate email as repo.ErrDuplicate,
// and GetByEmail an unknown email as repo.ErrNotFound.
type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type TokenIssuer interface {
	Issue(userID string) (string, error)
}

type SignupInput struct {
	FirstName string `json:"firstName" validate:"min=2"`
	LastName  string `json:"lastName" validate:"min=2"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"min=8,max=15"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"min=8,max=15"`
}

// AuthResult is returned by Signup and Login.
type AuthResult struct {
	ID    string `json:"id"`
	Token string `json:"token"`
}

// AuthService handles account creation and credential checks.
type AuthService struct {
	users  UserStore
	hasher PasswordHasher
	tokens TokenIssuer
	newID  func() string
}

func NewAuthService(users UserStore, hasher PasswordHasher, tokens TokenIssuer) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		newID:  func() string { return uuid.New().String() },
	}
}

// Signup validates in, creates the user and returns its id with a fresh token.
// The unique index on email is what actually prevents duplicates; the existence
// check only avoids hashing for an address that is obviously taken.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (AuthResult, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = normalizeEmail(in.Email)
	if err := validateStruct(in); err != nil {
		return AuthResult{}, err
	}

	exists, err := s.users.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return AuthResult{}, fmt.Errorf("signup: %w", err)
	}
	if exists {
		return AuthResult{}, ErrConflict
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return AuthResult{}, fmt.Errorf("signup: %w", err)
	}

	user := &models.User{
		ID:           s.newID(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return AuthResult{}, ErrConflict
		}
		return AuthResult{}, fmt.Errorf("signup: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return AuthResult{}, fmt.Errorf("signup: %w", err)
	}
	return AuthResult{ID: user.ID, Token: token}, nil
}

// Login checks the credentials in in and returns a fresh token for the user.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (AuthResult, error) {
	in.Email = normalizeEmail(in.Email)
	if err := validateStruct(in); err != nil {
		return AuthResult{}, err
	}

	user, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return AuthResult{}, ErrNotFound
		}
		return AuthResult{}, fmt.Errorf("login: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, in.Password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, fmt.Errorf("login: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return AuthResult{}, fmt.Errorf("login: %w", err)
	}
	return AuthResult{ID: user.ID, Token: token}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
