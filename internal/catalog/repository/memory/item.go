package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"querykit/internal/catalog"
	repo "querykit/internal/catalog/repository"
)

// CreateItem appends a new Item and returns the created entity.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (catalog.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].Name == opt.Name {
			return catalog.Item{}, repo.ErrFailedToInsert
		}
	}

	r.seq++
	now := time.Now().UTC()
	item := catalog.Item{
		ID:          fmt.Sprintf("item-%d", r.seq),
		Name:        opt.Name,
		Description: opt.Description,
		Status:      "active",
		Tags:        append([]string(nil), opt.Tags...),
		Price:       opt.Price,
		InStock:     opt.InStock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.items = append(r.items, item)
	return item, nil
}

// GetOneItem retrieves a single Item by the provided filters (AND
// condition). Returns zero-value Item (ID == "") when not found — do
// NOT return error for not-found. Empty options match nothing.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (catalog.Item, error) {
	if opt.ID == "" && opt.Name == "" {
		return catalog.Item{}, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.items {
		if opt.ID != "" && r.items[i].ID != opt.ID {
			continue
		}
		if opt.Name != "" && r.items[i].Name != opt.Name {
			continue
		}
		return r.items[i], nil
	}
	return catalog.Item{}, nil
}

// ListItems applies filters, sorting and pagination. The returned
// total counts all matches before pagination.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]catalog.Item, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]catalog.Item, 0, len(r.items))
	for i := range r.items {
		if !matches(r.items[i], opt) {
			continue
		}
		matched = append(matched, r.items[i])
	}

	sortItems(matched, opt.OrderBy, opt.OrderDirection)

	total := len(matched)
	if opt.Offset >= total {
		return []catalog.Item{}, total, nil
	}
	matched = matched[opt.Offset:]
	if opt.Limit > 0 && opt.Limit < len(matched) {
		matched = matched[:opt.Limit]
	}

	out := make([]catalog.Item, len(matched))
	copy(out, matched)
	return out, total, nil
}

// DeleteItem removes an item by ID.
func (r *implRepository) DeleteItem(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return repo.ErrFailedToDelete
}

func matches(item catalog.Item, opt repo.ListItemsOptions) bool {
	if len(opt.Statuses) > 0 && !slices.Contains(opt.Statuses, item.Status) {
		return false
	}
	if len(opt.Tags) > 0 {
		for _, want := range opt.Tags {
			if !slices.Contains(item.Tags, want) {
				return false
			}
		}
	}
	if opt.Search != "" {
		needle := strings.ToLower(opt.Search)
		if !strings.Contains(strings.ToLower(item.Name), needle) &&
			!strings.Contains(strings.ToLower(item.Description), needle) {
			return false
		}
	}
	if opt.MinPrice != nil && item.Price < *opt.MinPrice {
		return false
	}
	if opt.MaxPrice != nil && item.Price > *opt.MaxPrice {
		return false
	}
	if opt.InStock != nil && item.InStock != *opt.InStock {
		return false
	}
	if opt.CreatedAfter != nil && item.CreatedAt.Before(*opt.CreatedAfter) {
		return false
	}
	if opt.CreatedBefore != nil && item.CreatedAt.After(*opt.CreatedBefore) {
		return false
	}
	return true
}

func sortItems(items []catalog.Item, orderBy, direction string) {
	if orderBy == "" {
		return
	}
	desc := direction == "desc"
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if desc {
			a, b = b, a
		}
		switch orderBy {
		case "name":
			return a.Name < b.Name
		case "price":
			return a.Price < b.Price
		case "createdAt":
			return a.CreatedAt.Before(b.CreatedAt)
		default:
			return a.ID < b.ID
		}
	})
}
