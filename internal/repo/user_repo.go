package repo

import (
	"context"

	dom "github.com/Praveenkumar07007/BlogApp/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepo provides user persistence. Uniqueness of email and google_id is
// enforced by the database; Create surfaces the raw pgconn error so callers
// can detect constraint violations.
type UserRepo interface {
	GetByEmail(ctx context.Context, email string) (dom.User, error)
	GetByGoogleID(ctx context.Context, googleID string) (dom.User, error)
	Create(ctx context.Context, u dom.User) (dom.User, error)
	Update(ctx context.Context, u dom.User) (dom.User, error)
}

// PGUserRepo implements UserRepo with Postgres.
type PGUserRepo struct {
	db *pgxpool.Pool
}

// NewPGUserRepo returns a new PGUserRepo.
func NewPGUserRepo(db *pgxpool.Pool) *PGUserRepo {
	return &PGUserRepo{db: db}
}

const userColumns = `id, username, email, password_hash, google_id, profile_picture, auth_provider, created_at`

// GetByEmail returns the user by email.
func (r *PGUserRepo) GetByEmail(ctx context.Context, email string) (dom.User, error) {
	var u dom.User
	err := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		email,
	).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.GoogleID, &u.ProfilePicture, &u.AuthProvider, &u.CreatedAt)
	return u, err
}

// GetByGoogleID returns the user by Google subject id.
func (r *PGUserRepo) GetByGoogleID(ctx context.Context, googleID string) (dom.User, error) {
	var u dom.User
	err := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE google_id = $1`,
		googleID,
	).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.GoogleID, &u.ProfilePicture, &u.AuthProvider, &u.CreatedAt)
	return u, err
}

// Create inserts a new user and returns it with id and created_at assigned.
func (r *PGUserRepo) Create(ctx context.Context, u dom.User) (dom.User, error) {
	query := `
		INSERT INTO users (username, email, password_hash, google_id, profile_picture, auth_provider)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + userColumns
	var out dom.User
	err := r.db.QueryRow(ctx, query,
		u.Username, u.Email, u.PasswordHash, u.GoogleID, u.ProfilePicture, u.AuthProvider,
	).Scan(&out.ID, &out.Username, &out.Email, &out.PasswordHash, &out.GoogleID, &out.ProfilePicture, &out.AuthProvider, &out.CreatedAt)
	return out, err
}

// Update persists the mutable fields of an existing user in place.
func (r *PGUserRepo) Update(ctx context.Context, u dom.User) (dom.User, error) {
	query := `
		UPDATE users
		SET username = $2, google_id = $3, profile_picture = $4, auth_provider = $5
		WHERE id = $1
		RETURNING ` + userColumns
	var out dom.User
	err := r.db.QueryRow(ctx, query,
		u.ID, u.Username, u.GoogleID, u.ProfilePicture, u.AuthProvider,
	).Scan(&out.ID, &out.Username, &out.Email, &out.PasswordHash, &out.GoogleID, &out.ProfilePicture, &out.AuthProvider, &out.CreatedAt)
	return out, err
}
