package rest

import (
	"strings"
	"time"
)

type PostView struct {
	ID        int
	Slug      string
	Title     string
	Content   string
	Category  string
	Tags      []string
	Published bool
	CreatedAt time.Time
}

// TagList renders the tags back into the comma-separated form the editor
// expects.
func (p PostView) TagList() string {
	return strings.Join(p.Tags, ", ")
}

type NeighborView struct {
	Title string
	Slug  string
}

type indexPage struct {
	Posts      []PostView
	Page       int
	TotalPages int
	HasNext    bool
	HasPrev    bool
	NextPage   int
	PrevPage   int
	Year       int
}

type postPage struct {
	Post PostView
	Prev *NeighborView
	Next *NeighborView
	Year int
}

type loginPage struct {
	Flashes []string
	Year    int
}

type dashboardPage struct {
	Posts   []PostView
	Flashes []string
	Year    int
}

type editorPage struct {
	Post    *PostView
	Action  string
	Flashes []string
	Year    int
}
