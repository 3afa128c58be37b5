package diagnostic

import (
	"context"

	"github.com/gin-gonic/gin"

	pkgLog "master-data-barang/pkg/log"
)

// Prober is the connectivity probe against the document store.
type Prober interface {
	ListCollectionNames(ctx context.Context) ([]string, error)
}

// Handler is the interface for the diagnostics handler.
type Handler interface {
	HandleStatus(c *gin.Context)
}

// New creates a new diagnostics handler. prober may be nil when the service
// started without a database connection; the report then says so.
func New(l pkgLog.Logger, prober Prober) Handler {
	return &handler{
		l:      l,
		prober: prober,
	}
}
