package rest

import "github.com/w3Abhishek/blog/internal/blog"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewPostView(p blog.Post) PostView {
	return PostView{
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

func NewPostViews(list []blog.Post) []PostView {
	return Map(list, NewPostView)
}

func NewNeighborView(l *blog.NeighborLink) *NeighborView {
	if l == nil {
		return nil
	}
	return &NeighborView{
		Title: l.Title,
		Slug:  l.Slug,
	}
}
