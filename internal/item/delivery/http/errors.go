package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "master-data-barang/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors.
// Unknown errors (including the storage insert failing) become a 500 that
// carries the underlying message, which is what the frontend displays.
func (h *handler) mapError(err error) error {
	// The create-only item API has no domain-specific statuses; every
	// use-case failure surfaces as 500 with its underlying message.
	return pkgErrors.NewHTTPError(http.StatusInternalServerError, err.Error())
}

// respondError writes the fixed error body. The item API does not use the
// pkg/response envelope: its wire format is a flat {"error": "..."} object.
func (h *handler) respondError(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.Code, errorResp{Error: httpErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, errorResp{Error: err.Error()})
}
