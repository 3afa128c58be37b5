package repository

import "errors"

var (
	ErrNotConnected = errors.New("database not connected")
)
