package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"master-data-barang/internal/diagnostic"
	itemHTTP "master-data-barang/internal/item/delivery/http"
	itemRepo "master-data-barang/internal/item/repository/mongodb"
	itemUC "master-data-barang/internal/item/usecase"
	"master-data-barang/internal/middleware"
)

// setupItemDomain initializes the item domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.db, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv *HTTPServer) setupItemDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := itemRepo.New(srv.db, srv.l)

	// 2. UseCase
	uc := itemUC.New(repo, srv.files, srv.l)

	// 3. HTTP Handler
	h := itemHTTP.New(srv.l, uc)

	// 4. Routes: registers POST /api/items
	itemHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Item domain registered")
	return nil
}

// setupDiagnostics registers the database connectivity report at GET /test.
func (srv *HTTPServer) setupDiagnostics(ctx context.Context) {
	h := diagnostic.New(srv.l, diagnostic.NewMongoProber(srv.db))
	srv.gin.GET("/test", h.HandleStatus)

	srv.l.Infof(ctx, "Diagnostics route registered at GET /test")
}
