package usecase

import (
	"context"

	"querykit/internal/catalog"
	repo "querykit/internal/catalog/repository"
	"querykit/pkg/queryparams"
)

// List returns a filtered, sorted page of Items. Results are memoized
// per canonical query for a short TTL; write operations purge the
// cache.
func (uc *implUseCase) List(ctx context.Context, input catalog.ListItemsInput) (catalog.ListItemsOutput, error) {
	key := listCacheKey(input)
	if cached, ok := uc.listCache.Get(key); ok {
		uc.l.Debugf(ctx, "uc.List cache hit: %s", key)
		return cached, nil
	}

	items, total, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{
		Statuses:       input.Statuses,
		Tags:           input.Tags,
		Search:         input.Search,
		MinPrice:       input.MinPrice,
		MaxPrice:       input.MaxPrice,
		InStock:        input.InStock,
		CreatedAfter:   input.CreatedAfter,
		CreatedBefore:  input.CreatedBefore,
		Limit:          input.PageSize,
		Offset:         (input.Page - 1) * input.PageSize,
		OrderBy:        input.OrderBy,
		OrderDirection: input.OrderDirection,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return catalog.ListItemsOutput{}, err
	}

	out := catalog.ListItemsOutput{
		Items:    items,
		Total:    total,
		Page:     input.Page,
		PageSize: input.PageSize,
	}
	uc.listCache.Add(key, out)
	return out, nil
}

// listCacheKey canonicalizes a list request into a deterministic query
// string. Absent filters vanish from the key, so equivalent requests
// share a cache slot regardless of how they were phrased.
func listCacheKey(input catalog.ListItemsInput) string {
	vals := queryparams.Values{
		"status":        input.Statuses,
		"tag":           input.Tags,
		"minPrice":      input.MinPrice,
		"maxPrice":      input.MaxPrice,
		"inStock":       input.InStock,
		"createdAfter":  input.CreatedAfter,
		"createdBefore": input.CreatedBefore,
		"page":          input.Page,
		"pageSize":      input.PageSize,
	}
	if input.Search != "" {
		vals["q"] = input.Search
	}
	if input.OrderBy != "" {
		vals["orderBy"] = input.OrderBy
		vals["orderDirection"] = input.OrderDirection
	}
	return queryparams.Create(vals).Encode()
}
