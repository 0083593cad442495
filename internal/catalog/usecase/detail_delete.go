package usecase

import (
	"context"

	"querykit/internal/catalog"
	repo "querykit/internal/catalog/repository"
)

// Detail returns a single Item by ID.
func (uc *implUseCase) Detail(ctx context.Context, id string) (catalog.DetailItemOutput, error) {
	item, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneItem: %v", err)
		return catalog.DetailItemOutput{}, err
	}
	if item.ID == "" {
		return catalog.DetailItemOutput{}, catalog.ErrItemNotFound
	}
	return catalog.DetailItemOutput{Item: item}, nil
}

// Delete removes an Item by ID.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.Detail(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteItem(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteItem: %v", err)
		return err
	}
	uc.listCache.Purge()
	return nil
}
