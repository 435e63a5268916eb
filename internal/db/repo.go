package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

// Repository is the posts table adapter. It performs no business validation;
// publish gating and input normalization live in the blog package.
type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// Posts retrieves posts matching filter in the given order and returns them
// together with the total number of matching rows (ignoring limit/offset).
// A limit <= 0 means no limit.
func (r *Repository) Posts(ctx context.Context, filter PostFilter, order Order,
	limit, offset int) ([]Post, int, error) {

	var posts []Post
	query := r.db.ModelContext(ctx, &posts)

	if filter.Published != nil {
		query = query.Where(`"t"."published" = ?`, *filter.Published)
	}

	if filter.CreatedBefore != nil {
		query = query.Where(`"t"."created_at" < ?`, *filter.CreatedBefore)
	}

	if filter.CreatedAfter != nil {
		query = query.Where(`"t"."created_at" > ?`, *filter.CreatedAfter)
	}

	if order == OldestFirst {
		query = query.OrderExpr(`"t"."created_at" ASC, "t"."id" ASC`)
	} else {
		query = query.OrderExpr(`"t"."created_at" DESC, "t"."id" DESC`)
	}

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	count, err := query.SelectAndCount()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query posts: %w", err)
	}

	return posts, count, nil
}

// PostBySlug returns the post with the given slug, or nil if there is none.
// Slugs are not constrained unique; on a duplicate the lowest id wins.
func (r *Repository) PostBySlug(ctx context.Context, slug string, publishedOnly bool) (*Post, error) {
	post := &Post{}
	query := r.db.ModelContext(ctx, post).
		Where(`"t"."slug" = ?`, slug)

	if publishedOnly {
		query = query.Where(`"t"."published" = ?`, true)
	}

	err := query.
		OrderExpr(`"t"."id" ASC`).
		Limit(1).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get post by slug: %w", err)
	}

	return post, nil
}

func (r *Repository) PostByID(ctx context.Context, id int) (*Post, error) {
	post := &Post{}
	err := r.db.ModelContext(ctx, post).
		Where(`"t"."id" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

// InsertPost stores a new post. The database assigns id and created_at; both
// are written back into post.
func (r *Repository) InsertPost(ctx context.Context, post *Post) error {
	_, err := r.db.ModelContext(ctx, post).
		Returning("*").
		Insert()
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

// UpdatePost overwrites every editable column of the post wholesale.
// created_at is never written by update.
func (r *Repository) UpdatePost(ctx context.Context, post *Post) error {
	_, err := r.db.ModelContext(ctx, post).
		Column("slug", "title", "content", "category", "tags", "published").
		WherePK().
		Update()
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	return nil
}

// DeletePost removes the post with the given id. Deleting an id that does not
// exist is not an error.
func (r *Repository) DeletePost(ctx context.Context, id int) error {
	_, err := r.db.ModelContext(ctx, (*Post)(nil)).
		Where(`"t"."id" = ?`, id).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	return nil
}
