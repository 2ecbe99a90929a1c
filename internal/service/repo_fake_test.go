package service

import (
	"context"
	"sync"
	"time"

	dom "github.com/Praveenkumar07007/BlogApp/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeUserRepo is an in-memory UserRepo with the same contract as the
// Postgres one: pgx.ErrNoRows on miss, pgconn.PgError 23505 on unique
// violations of email or google_id.
type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]dom.User

	// failNextCreate makes the next Create report a unique violation while
	// still inserting the row, simulating a concurrent writer winning the race.
	failNextCreate bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]dom.User{}}
}

func uniqueViolation() error {
	return &pgconn.PgError{Code: "23505"}
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (dom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return dom.User{}, pgx.ErrNoRows
}

func (r *fakeUserRepo) GetByGoogleID(_ context.Context, googleID string) (dom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.GoogleID != nil && *u.GoogleID == googleID {
			return u, nil
		}
	}
	return dom.User{}, pgx.ErrNoRows
}

func (r *fakeUserRepo) Create(_ context.Context, u dom.User) (dom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return dom.User{}, uniqueViolation()
		}
		if existing.GoogleID != nil && u.GoogleID != nil && *existing.GoogleID == *u.GoogleID {
			return dom.User{}, uniqueViolation()
		}
	}
	r.nextID++
	u.ID = r.nextID
	u.CreatedAt = time.Now().UTC()
	r.users[u.ID] = u
	if r.failNextCreate {
		r.failNextCreate = false
		return dom.User{}, uniqueViolation()
	}
	return u, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u dom.User) (dom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	r.users[u.ID] = u
	return u, nil
}
