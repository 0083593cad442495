package http

import (
	"time"

	"querykit/internal/catalog"
	"querykit/pkg/queryparams"
	"querykit/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Name        string   `json:"name"        binding:"required,min=1,max=255"`
	Description string   `json:"description" binding:"max=1000"`
	Tags        []string `json:"tags"`
	Price       float64  `json:"price"       binding:"gte=0"`
	InStock     bool     `json:"in_stock"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() catalog.CreateItemInput {
	return catalog.CreateItemInput{
		Name:        r.Name,
		Description: r.Description,
		Tags:        r.Tags,
		Price:       r.Price,
		InStock:     r.InStock,
	}
}

// ---

type listReq struct {
	Statuses      []string
	Tags          []string
	Search        string
	MinPrice      *float64
	MaxPrice      *float64
	InStock       *bool
	CreatedAfter  *time.Time
	CreatedBefore *time.Time

	Page  queryparams.PageRequest
	Order queryparams.OrderRequest
}

// toInput resolves absent pagination against configured defaults and
// clamps the page size.
func (r listReq) toInput(defaultPageSize, maxPageSize int) catalog.ListItemsInput {
	page := 1
	if r.Page.Page != nil && *r.Page.Page > 0 {
		page = *r.Page.Page
	}
	pageSize := defaultPageSize
	if r.Page.PageSize != nil && *r.Page.PageSize > 0 {
		pageSize = *r.Page.PageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	input := catalog.ListItemsInput{
		Statuses:      r.Statuses,
		Tags:          r.Tags,
		Search:        r.Search,
		MinPrice:      r.MinPrice,
		MaxPrice:      r.MaxPrice,
		InStock:       r.InStock,
		CreatedAfter:  r.CreatedAfter,
		CreatedBefore: r.CreatedBefore,
		Page:          page,
		PageSize:      pageSize,
	}
	if r.Order.OrderBy != nil {
		input.OrderBy = *r.Order.OrderBy
	}
	if r.Order.OrderDirection != nil {
		input.OrderDirection = string(*r.Order.OrderDirection)
	}
	return input
}

// --- Response DTOs ---

type itemResp struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Status      string            `json:"status"`
	Tags        []string          `json:"tags,omitempty"`
	Price       float64           `json:"price"`
	InStock     bool              `json:"in_stock"`
	CreatedAt   response.DateTime `json:"created_at"`
	UpdatedAt   response.DateTime `json:"updated_at"`
}

func newItemResp(item catalog.Item) itemResp {
	return itemResp{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Status:      item.Status,
		Tags:        item.Tags,
		Price:       item.Price,
		InStock:     item.InStock,
		CreatedAt:   response.DateTime(item.CreatedAt),
		UpdatedAt:   response.DateTime(item.UpdatedAt),
	}
}

type createResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newCreateResp(o catalog.CreateItemOutput) createResp {
	return createResp{Item: newItemResp(o.Item)}
}

type listResp struct {
	Items    []itemResp `json:"items"`
	Total    int        `json:"total"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
}

func (h *handler) newListResp(o catalog.ListItemsOutput) listResp {
	items := make([]itemResp, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, newItemResp(item))
	}
	return listResp{
		Items:    items,
		Total:    o.Total,
		Page:     o.Page,
		PageSize: o.PageSize,
	}
}

type detailResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newDetailResp(o catalog.DetailItemOutput) detailResp {
	return detailResp{Item: newItemResp(o.Item)}
}
