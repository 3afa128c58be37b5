package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "master-data-barang/pkg/errors"
)

// Create godoc
// @Summary     Register a master data barang record
// @Description Accepts item metadata and an image as a multipart form, stores
// @Description the image in the upload directory, and persists the record.
// @Tags        Items
// @Accept      multipart/form-data
// @Produce     json
// @Param       name        formData string  true  "Item name"
// @Param       condition   formData string  true  "Item condition (e.g. new, used)"
// @Param       category    formData string  true  "Item category (e.g. Elektronik, Pakaian)"
// @Param       price       formData number  true  "Item price"
// @Param       description formData string  false "Item description"
// @Param       image       formData file    true  "Item image"
// @Success     200 {object} itemResp
// @Failure     400 {object} errorResp "Bad Request"
// @Failure     500 {object} errorResp "Internal Server Error"
// @Router      /api/items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		h.respondError(c, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error()))
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.respondError(c, h.mapError(err))
		return
	}

	c.JSON(http.StatusOK, h.newCreateResp(output))
}
