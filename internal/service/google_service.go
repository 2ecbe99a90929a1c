package service

import (
	"context"
	"errors"

	dom "github.com/Praveenkumar07007/BlogApp/internal/domain"
	"github.com/Praveenkumar07007/BlogApp/internal/repo"
	"github.com/Praveenkumar07007/BlogApp/internal/utils"

	"github.com/jackc/pgx/v5"
)

// GoogleService maps a verified Google identity onto exactly one user
// account, creating or linking as needed.
type GoogleService struct {
	repo repo.UserRepo
}

// NewGoogleService returns a new GoogleService.
func NewGoogleService(repo repo.UserRepo) *GoogleService {
	return &GoogleService{repo: repo}
}

// Reconcile resolves googleID to a single account. Branch order matters:
//  1. account already linked to googleID: refresh username and picture;
//  2. account exists with the same email: attach googleID, set picture and
//     switch auth_provider to google, keeping the local password;
//  3. otherwise insert a new google-provider account with no password.
//
// The lookups and insert are not one transaction; two concurrent callbacks
// for a new identity race at the insert, the unique constraint rejects the
// loser, and one retry lands it on branch 1.
func (s *GoogleService) Reconcile(ctx context.Context, googleID, name, email, picture string) (dom.User, error) {
	u, err := s.reconcile(ctx, googleID, name, email, picture)
	if err != nil && utils.IsPGUniqueViolation(err) {
		return s.reconcile(ctx, googleID, name, email, picture)
	}
	return u, err
}

func (s *GoogleService) reconcile(ctx context.Context, googleID, name, email, picture string) (dom.User, error) {
	var pic *string
	if picture != "" {
		pic = &picture
	}

	u, err := s.repo.GetByGoogleID(ctx, googleID)
	if err == nil {
		u.Username = name
		u.ProfilePicture = pic
		return s.repo.Update(ctx, u)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return dom.User{}, err
	}

	u, err = s.repo.GetByEmail(ctx, email)
	if err == nil {
		gid := googleID
		u.GoogleID = &gid
		u.ProfilePicture = pic
		u.AuthProvider = dom.ProviderGoogle
		return s.repo.Update(ctx, u)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return dom.User{}, err
	}

	gid := googleID
	return s.repo.Create(ctx, dom.User{
		Username:       name,
		Email:          email,
		GoogleID:       &gid,
		ProfilePicture: pic,
		AuthProvider:   dom.ProviderGoogle,
	})
}
