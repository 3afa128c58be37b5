package http

import (
	"mime/multipart"

	"master-data-barang/internal/item"
)

// --- Request DTOs ---

type createReq struct {
	Name        string                `form:"name"      binding:"required"`
	Condition   string                `form:"condition" binding:"required"`
	Category    string                `form:"category"  binding:"required"`
	Price       float64               `form:"price"     binding:"required"`
	Description string                `form:"description"`
	Image       *multipart.FileHeader `form:"image"     binding:"required"`

	// populated by processCreateReq after binding
	imageContent []byte
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() item.CreateItemInput {
	return item.CreateItemInput{
		Name:          r.Name,
		Category:      r.Category,
		Condition:     r.Condition,
		Price:         r.Price,
		Description:   r.Description,
		ImageFilename: r.Image.Filename,
		ImageContent:  r.imageContent,
	}
}

// --- Response DTOs ---

// itemResp is the flat record shape the frontend consumes.
type itemResp struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Condition   string  `json:"condition"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
}

func newItemResp(it item.Item) itemResp {
	return itemResp{
		ID:          it.ID,
		Name:        it.Name,
		Category:    it.Category,
		Condition:   it.Condition,
		Price:       it.Price,
		Description: it.Description,
		ImageURL:    it.ImageURL,
	}
}

func (h *handler) newCreateResp(out item.CreateItemOutput) itemResp {
	return newItemResp(out.Item)
}

// errorResp is the fixed error body shape.
type errorResp struct {
	Error string `json:"error"`
}
