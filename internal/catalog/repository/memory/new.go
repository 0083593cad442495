package memory

import (
	"sync"

	"querykit/internal/catalog"
	"querykit/pkg/log"
)

// implRepository is an in-memory, mutex-guarded item store. It keeps
// items in insertion order so unsorted listings are stable.
type implRepository struct {
	l     log.Logger
	mu    sync.RWMutex
	items []catalog.Item
	seq   int
}

// New creates a new in-memory catalog repository.
func New(l log.Logger) *implRepository {
	return &implRepository{l: l}
}
