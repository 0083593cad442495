package queryparams

// Keys recognized by the Pagination and Ordering extractors.
const (
	KeyPage           = "page"
	KeyPageSize       = "pageSize"
	KeyOrderBy        = "orderBy"
	KeyOrderDirection = "orderDirection"
)

// Direction is a sort direction as it appears on the wire.
type Direction string

const (
	DirectionAsc  Direction = "asc"
	DirectionDesc Direction = "desc"
)

// PageRequest carries pagination fields extracted from a query string.
// Nil means the field was missing, empty, or unparseable.
type PageRequest struct {
	Page     *int `json:"page,omitempty"`
	PageSize *int `json:"pageSize,omitempty"`
}

// OrderRequest carries ordering fields extracted from a query string.
// Nil means the field was missing or the whole request was invalid: an
// unrecognized direction resets both fields, not just the bad one.
type OrderRequest struct {
	OrderBy        *string    `json:"orderBy,omitempty"`
	OrderDirection *Direction `json:"orderDirection,omitempty"`
}
