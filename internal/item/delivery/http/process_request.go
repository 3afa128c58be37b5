package http

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
)

// processCreateReq binds and validates the multipart create request, reading
// the uploaded image fully into memory. Any failure here happens before the
// use case runs, so a rejected request has no side effects.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBind(&req); err != nil {
		return req, err
	}

	file, err := req.Image.Open()
	if err != nil {
		return req, fmt.Errorf("open uploaded image: %w", err)
	}
	defer file.Close()

	req.imageContent, err = io.ReadAll(file)
	if err != nil {
		return req, fmt.Errorf("read uploaded image: %w", err)
	}

	return req, req.validate()
}
