package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	catalogHTTP "querykit/internal/catalog/delivery/http"
	catalogRepo "querykit/internal/catalog/repository/memory"
	catalogUC "querykit/internal/catalog/usecase"
	"querykit/internal/middleware"
)

// setupCatalogDomain initializes the catalog domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc, ...)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(rg.Group("/myresource"), h, mw)
func (srv HTTPServer) setupCatalogDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := catalogRepo.New(srv.l)

	// 2. UseCase
	uc := catalogUC.New(repo, srv.l)

	// 3. HTTP Handler
	h := catalogHTTP.New(srv.l, uc, srv.cfg.Query)

	// 4. Routes: registers /api/v1/catalog/items
	catalogHTTP.RegisterRoutes(api.Group("/catalog"), h, mw)

	srv.l.Infof(ctx, "Catalog domain registered")
	return nil
}
