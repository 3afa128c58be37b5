package item

import "errors"

var (
	ErrInvalidPayload = errors.New("invalid payload")
	ErrSaveImage      = errors.New("failed to save image")
)
