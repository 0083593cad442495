package http

import (
	"querykit/config"
	"querykit/internal/catalog"
	"querykit/pkg/log"
	"querykit/pkg/queryparams"
)

// Handler is the public interface for the catalog HTTP delivery layer.
type Handler interface {
	Create(c interface{})
	List(c interface{})
	Detail(c interface{})
	Delete(c interface{})
}

type handler struct {
	l        log.Logger
	uc       catalog.UseCase
	extract  queryparams.Extractor
	queryCfg config.QueryConfig
}

// New creates a new HTTP handler for the catalog domain.
func New(l log.Logger, uc catalog.UseCase, queryCfg config.QueryConfig) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		extract:  queryparams.NewExtractor(l),
		queryCfg: queryCfg,
	}
}
