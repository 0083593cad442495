package catalog

import "time"

// --- Item Domain Model ---

// Item is the core domain entity managed by this module.
type Item struct {
	ID          string
	Name        string
	Description string
	Status      string
	Tags        []string
	Price       float64
	InStock     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// --- UseCase Inputs ---

type CreateItemInput struct {
	Name        string
	Description string
	Tags        []string
	Price       float64
	InStock     bool
}

// ListItemsInput carries every filter the list endpoint understands.
// Pointer fields are nil when the caller did not supply them.
type ListItemsInput struct {
	Statuses      []string
	Tags          []string
	Search        string
	MinPrice      *float64
	MaxPrice      *float64
	InStock       *bool
	CreatedAfter  *time.Time
	CreatedBefore *time.Time

	Page           int
	PageSize       int
	OrderBy        string
	OrderDirection string
}

// --- UseCase Outputs ---

type CreateItemOutput struct {
	Item Item
}

type ListItemsOutput struct {
	Items    []Item
	Total    int
	Page     int
	PageSize int
}

type DetailItemOutput struct {
	Item Item
}
