package repository

import (
	"context"

	"querykit/internal/catalog"
)

// Repository is the composed interface for the catalog data store.
type Repository interface {
	ItemRepository
}

// ItemRepository defines all data access methods for the Item entity.
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (catalog.Item, error)
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (catalog.Item, error)
	ListItems(ctx context.Context, opt ListItemsOptions) ([]catalog.Item, int, error)
	DeleteItem(ctx context.Context, id string) error
}
