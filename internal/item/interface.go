package item

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Create saves the uploaded image to the file sink, inserts the metadata
	// record into the document store, and returns the created Item.
	Create(ctx context.Context, input CreateItemInput) (CreateItemOutput, error)
}
