package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"querykit/internal/catalog"
	"querykit/internal/catalog/repository"
	"querykit/pkg/log"
)

// listCacheSize bounds how many distinct list queries are memoized.
const listCacheSize = 256

// listCacheTTL keeps cached pages fresh enough for a listing endpoint.
const listCacheTTL = 30 * time.Second

// implUseCase is the private implementation of catalog.UseCase.
type implUseCase struct {
	repo      repository.Repository
	l         log.Logger
	listCache *expirable.LRU[string, catalog.ListItemsOutput]
}

// New creates a new catalog UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:      repo,
		l:         l,
		listCache: expirable.NewLRU[string, catalog.ListItemsOutput](listCacheSize, nil, listCacheTTL),
	}
}
