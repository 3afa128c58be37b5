package usecase

import (
	"context"
	"fmt"

	"master-data-barang/internal/item"
	repo "master-data-barang/internal/item/repository"
)

// Create writes the uploaded image to the file sink, then inserts the item
// document. The two side effects are not transactional: when the insert
// fails the file stays on disk and the error is surfaced to the caller.
func (uc *implUseCase) Create(ctx context.Context, input item.CreateItemInput) (item.CreateItemOutput, error) {
	// 1. File sink write — same-name uploads overwrite the previous file.
	imageURL, err := uc.files.Save(input.ImageFilename, input.ImageContent)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create Save: %v", err)
		return item.CreateItemOutput{}, fmt.Errorf("%w: %v", item.ErrSaveImage, err)
	}

	// 2. Document insert
	created, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		Name:        input.Name,
		Category:    input.Category,
		Condition:   input.Condition,
		Price:       input.Price,
		Description: input.Description,
		ImageURL:    imageURL,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return item.CreateItemOutput{}, err
	}

	return item.CreateItemOutput{Item: created}, nil
}
