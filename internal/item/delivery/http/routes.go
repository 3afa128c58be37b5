package http

import (
	"github.com/gin-gonic/gin"

	"master-data-barang/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// The item API is create-only; listing and lookup are out of scope.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	items := rg.Group("/items")
	{
		items.POST("", mw.RateLimit(), h.Create)
	}
}
