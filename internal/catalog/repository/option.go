package repository

import "time"

// CreateItemOptions holds parameters for inserting a new Item.
type CreateItemOptions struct {
	Name        string
	Description string
	Tags        []string
	Price       float64
	InStock     bool
}

// GetOneItemOptions holds filter parameters for fetching a single Item.
// All non-empty fields are applied as AND conditions.
type GetOneItemOptions struct {
	ID   string
	Name string
}

// ListItemsOptions holds filter, sort and pagination parameters for
// listing Items. Nil pointer fields mean "no constraint".
type ListItemsOptions struct {
	Statuses      []string
	Tags          []string
	Search        string
	MinPrice      *float64
	MaxPrice      *float64
	InStock       *bool
	CreatedAfter  *time.Time
	CreatedBefore *time.Time

	Limit          int
	Offset         int
	OrderBy        string
	OrderDirection string
}
