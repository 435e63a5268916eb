package blog

import (
	"github.com/w3Abhishek/blog/internal/db"
)

func NewPost(p *db.Post) Post {
	return Post{
		ID:        p.ID,
		Slug:      p.Slug,
		Title:     p.Title,
		Content:   p.Content,
		Category:  p.Category,
		Tags:      p.Tags,
		Published: p.Published,
		CreatedAt: p.CreatedAt,
	}
}

func NewPosts(list []db.Post) []Post {
	result := make([]Post, len(list))
	for i := range list {
		result[i] = NewPost(&list[i])
	}
	return result
}

func NewNeighborLink(p *db.Post) *NeighborLink {
	return &NeighborLink{
		Title: p.Title,
		Slug:  p.Slug,
	}
}
