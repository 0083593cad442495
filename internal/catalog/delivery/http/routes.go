package http

import (
	"github.com/gin-gonic/gin"

	"querykit/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	items := rg.Group("/items")
	{
		items.POST("", mw.RateLimit(), h.Create)
		items.GET("", mw.RateLimit(), h.List)
		items.GET("/:id", mw.RateLimit(), h.Detail)
		items.DELETE("/:id", mw.RateLimit(), h.Delete)
	}
}
