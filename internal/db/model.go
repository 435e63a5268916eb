package db

import (
	"time"
)

// Post is the row shape of the posts table. Slug is intentionally not
// constrained unique: two posts may share a slug, in which case lookups pick
// the lowest id (see PostBySlug).
type Post struct {
	tableName struct{} `pg:"posts,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	Slug      string    `pg:"slug,use_zero"`
	Title     string    `pg:"title,use_zero"`
	Content   string    `pg:"content,use_zero"`
	Category  string    `pg:"category,use_zero"`
	Tags      []string  `pg:"tags,array,use_zero"`
	Published bool      `pg:"published,use_zero"`
	CreatedAt time.Time `pg:"created_at,default:now()"`
}

// PostFilter narrows a Posts query. Nil fields are ignored. The created-at
// bounds are strict inequalities; neighbor resolution relies on that.
type PostFilter struct {
	Published     *bool
	CreatedBefore *time.Time
	CreatedAfter  *time.Time
}

// Order selects the scan direction of a Posts query. Both directions carry id
// as a secondary key so rows sharing a created_at come back deterministically.
type Order int

const (
	NewestFirst Order = iota
	OldestFirst
)
