package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Praveenkumar07007/BlogApp/internal/auth"
	dom "github.com/Praveenkumar07007/BlogApp/internal/domain"
	"github.com/Praveenkumar07007/BlogApp/internal/repo"
	"github.com/Praveenkumar07007/BlogApp/internal/utils"

	"github.com/jackc/pgx/v5"
)

var (
	ErrEmailTaken   = errors.New("email already registered")
	ErrUnknownEmail = errors.New("invalid email")
	ErrBadPassword  = errors.New("invalid password")
	ErrUserNotFound = errors.New("user not found")
)

// UserService handles local registration and login.
type UserService struct {
	repo repo.UserRepo
}

// NewUserService returns a new UserService.
func NewUserService(repo repo.UserRepo) *UserService {
	return &UserService{repo: repo}
}

// Register creates a local account with a hashed password. Fails with
// ErrEmailTaken if the email is already registered; the DB unique constraint
// catches the insert race the pre-check cannot.
func (s *UserService) Register(ctx context.Context, username, email, password string) (dom.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return dom.User{}, ErrEmailTaken
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return dom.User{}, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return dom.User{}, err
	}
	u, err := s.repo.Create(ctx, dom.User{
		Username:     username,
		Email:        email,
		PasswordHash: &hash,
		AuthProvider: dom.ProviderLocal,
	})
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.User{}, ErrEmailTaken
		}
		return dom.User{}, err
	}
	return u, nil
}

// Authenticate checks email and password; returns the user if valid.
// Unknown email and wrong password are distinct failures. An account with no
// password hash (created via Google) always fails with ErrBadPassword.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (dom.User, error) {
	u, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrUnknownEmail
		}
		return dom.User{}, err
	}
	var digest string
	if u.PasswordHash != nil {
		digest = *u.PasswordHash
	}
	if !auth.CheckPassword(password, digest) {
		return dom.User{}, ErrBadPassword
	}
	return u, nil
}

// GetByEmail resolves a user record for an authenticated identity. Fails
// with ErrUserNotFound when the email has no account behind it.
func (s *UserService) GetByEmail(ctx context.Context, email string) (dom.User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrUserNotFound
		}
		return dom.User{}, err
	}
	return u, nil
}
