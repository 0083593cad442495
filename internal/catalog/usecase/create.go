package usecase

import (
	"context"

	"querykit/internal/catalog"
	repo "querykit/internal/catalog/repository"
)

// Create inserts a new Item. Names are unique across the catalog.
func (uc *implUseCase) Create(ctx context.Context, input catalog.CreateItemInput) (catalog.CreateItemOutput, error) {
	if input.Name == "" {
		return catalog.CreateItemOutput{}, catalog.ErrInvalidPayload
	}

	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{Name: input.Name})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneItem: %v", err)
		return catalog.CreateItemOutput{}, err
	}
	if existing.ID != "" {
		return catalog.CreateItemOutput{}, catalog.ErrDuplicateName
	}

	item, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		Name:        input.Name,
		Description: input.Description,
		Tags:        input.Tags,
		Price:       input.Price,
		InStock:     input.InStock,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return catalog.CreateItemOutput{}, err
	}

	uc.listCache.Purge()
	return catalog.CreateItemOutput{Item: item}, nil
}
