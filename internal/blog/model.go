package blog

import "time"

type Post struct {
	ID        int
	Slug      string
	Title     string
	Content   string
	Category  string
	Tags      []string
	Published bool
	CreatedAt time.Time
}

// PostInput carries raw admin form values. Tags is the unparsed
// comma-separated field; normalization happens in the manager.
type PostInput struct {
	Title     string
	Slug      string
	Content   string
	Category  string
	Tags      string
	Published bool
}

// NeighborLink is the minimal projection used for previous/next navigation.
type NeighborLink struct {
	Title string
	Slug  string
}

// PageResult is one page of the public listing.
type PageResult struct {
	Posts      []Post
	Page       int
	TotalPages int
	HasNext    bool
	HasPrev    bool
}
