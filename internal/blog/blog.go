package blog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/w3Abhishek/blog/internal/db"
)

// ErrNotFound signals a missing post; handlers map it to a 404.
var ErrNotFound = errors.New("post not found")

type Manager struct {
	store Store
	log   *slog.Logger
}

func NewManager(store Store, log *slog.Logger) *Manager {
	return &Manager{
		store: store,
		log:   log,
	}
}

// Page returns one page of published posts, newest first. page must be >= 1;
// callers clamp user input before calling. A store failure degrades to an
// empty page rather than an error: the public listing never renders an error
// page, it just comes up empty.
func (m *Manager) Page(ctx context.Context, page, pageSize int) PageResult {
	published := true
	offset := (page - 1) * pageSize

	posts, total, err := m.store.Posts(ctx, db.PostFilter{Published: &published},
		db.NewestFirst, pageSize, offset)
	if err != nil {
		m.log.Error("failed to fetch post page", "error", err, "page", page)
		return PageResult{Page: page}
	}

	totalPages := (total + pageSize - 1) / pageSize

	return PageResult{
		Posts:      NewPosts(posts),
		Page:       page,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// PostBySlug returns the published post with the given slug, or ErrNotFound.
func (m *Manager) PostBySlug(ctx context.Context, slug string) (*Post, error) {
	dbPost, err := m.store.PostBySlug(ctx, slug, true)
	if err != nil {
		return nil, fmt.Errorf("store get post by slug: %w", err)
	}
	if dbPost == nil {
		return nil, ErrNotFound
	}

	post := NewPost(dbPost)
	return &post, nil
}

// Neighbors resolves the chronological neighbors of a published post:
// previous is the most recent strictly-older published post, next the
// earliest strictly-newer one. Posts sharing the exact created_at are
// neighbors of neither (strict inequalities); among tied candidates the id
// ordering makes the pick deterministic. Probe failures degrade to missing
// links.
func (m *Manager) Neighbors(ctx context.Context, post *Post) (prev, next *NeighborLink) {
	published := true

	older, _, err := m.store.Posts(ctx, db.PostFilter{
		Published:     &published,
		CreatedBefore: &post.CreatedAt,
	}, db.NewestFirst, 1, 0)
	if err != nil {
		m.log.Error("failed to fetch previous post", "error", err, "slug", post.Slug)
	} else if len(older) > 0 {
		prev = NewNeighborLink(&older[0])
	}

	newer, _, err := m.store.Posts(ctx, db.PostFilter{
		Published:    &published,
		CreatedAfter: &post.CreatedAt,
	}, db.OldestFirst, 1, 0)
	if err != nil {
		m.log.Error("failed to fetch next post", "error", err, "slug", post.Slug)
	} else if len(newer) > 0 {
		next = NewNeighborLink(&newer[0])
	}

	return prev, next
}

// AllPosts returns every post regardless of publish state, newest first, for
// the admin dashboard. Degrades to an empty list on store failure.
func (m *Manager) AllPosts(ctx context.Context) []Post {
	posts, _, err := m.store.Posts(ctx, db.PostFilter{}, db.NewestFirst, 0, 0)
	if err != nil {
		m.log.Error("failed to fetch all posts", "error", err)
		return nil
	}

	return NewPosts(posts)
}

// PostByID returns the post with the given id in any publish state, or
// ErrNotFound.
func (m *Manager) PostByID(ctx context.Context, id int) (*Post, error) {
	dbPost, err := m.store.PostByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("store get post by id: %w", err)
	}
	if dbPost == nil {
		return nil, ErrNotFound
	}

	post := NewPost(dbPost)
	return &post, nil
}

// CreatePost normalizes the form input and inserts a new post. The store
// assigns id and created_at.
func (m *Manager) CreatePost(ctx context.Context, in PostInput) (*Post, error) {
	dbPost := &db.Post{
		Slug:      in.Slug,
		Title:     in.Title,
		Content:   in.Content,
		Category:  in.Category,
		Tags:      ParseTags(in.Tags),
		Published: in.Published,
	}

	if err := m.store.InsertPost(ctx, dbPost); err != nil {
		return nil, fmt.Errorf("store insert post: %w", err)
	}

	post := NewPost(dbPost)
	return &post, nil
}

// UpdatePost overwrites every editable field of an existing post wholesale;
// an omitted form field clears the stored value. Returns ErrNotFound when the
// id does not exist.
func (m *Manager) UpdatePost(ctx context.Context, id int, in PostInput) error {
	existing, err := m.store.PostByID(ctx, id)
	if err != nil {
		return fmt.Errorf("store get post by id: %w", err)
	}
	if existing == nil {
		return ErrNotFound
	}

	existing.Slug = in.Slug
	existing.Title = in.Title
	existing.Content = in.Content
	existing.Category = in.Category
	existing.Tags = ParseTags(in.Tags)
	existing.Published = in.Published

	if err := m.store.UpdatePost(ctx, existing); err != nil {
		return fmt.Errorf("store update post: %w", err)
	}

	return nil
}

// DeletePost removes a post. Deleting an id that does not exist succeeds.
func (m *Manager) DeletePost(ctx context.Context, id int) error {
	if err := m.store.DeletePost(ctx, id); err != nil {
		return fmt.Errorf("store delete post: %w", err)
	}

	return nil
}

// ParseTags splits a comma-separated tag list, trimming whitespace and
// dropping empty entries.
func ParseTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
