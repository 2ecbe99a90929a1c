package repo

import (
	"context"

	dom "github.com/Praveenkumar07007/BlogApp/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type BlogRepo interface {
	Create(ctx context.Context, b dom.Blog) (dom.Blog, error)
	List(ctx context.Context) ([]dom.Blog, error)
}

type PGBlogRepo struct {
	db *pgxpool.Pool
}

func NewPGBlogRepo(db *pgxpool.Pool) *PGBlogRepo {
	return &PGBlogRepo{db: db}
}

func (r *PGBlogRepo) Create(ctx context.Context, b dom.Blog) (dom.Blog, error) {
	query := `
		INSERT INTO blogs (title, description)
		VALUES ($1, $2)
		RETURNING id, title, description, created_at`
	var out dom.Blog
	err := r.db.QueryRow(ctx, query, b.Title, b.Description).Scan(
		&out.ID, &out.Title, &out.Description, &out.CreatedAt,
	)
	return out, err
}

func (r *PGBlogRepo) List(ctx context.Context) ([]dom.Blog, error) {
	query := `
		SELECT id, title, description, created_at
		FROM blogs ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Blog
	for rows.Next() {
		var b dom.Blog
		if err := rows.Scan(&b.ID, &b.Title, &b.Description, &b.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}
