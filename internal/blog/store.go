package blog

import (
	"context"

	"github.com/w3Abhishek/blog/internal/db"
)

// Store is the slice of the posts table the domain layer depends on.
// db.Repository is the production implementation; tests provide stubs.
type Store interface {
	Posts(ctx context.Context, filter db.PostFilter, order db.Order, limit, offset int) ([]db.Post, int, error)
	PostBySlug(ctx context.Context, slug string, publishedOnly bool) (*db.Post, error)
	PostByID(ctx context.Context, id int) (*db.Post, error)
	InsertPost(ctx context.Context, post *db.Post) error
	UpdatePost(ctx context.Context, post *db.Post) error
	DeletePost(ctx context.Context, id int) error
}
