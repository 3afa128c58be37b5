package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"master-data-barang/internal/item"
	"master-data-barang/internal/item/repository"
	"master-data-barang/internal/item/usecase"
	"master-data-barang/pkg/filestore"
)

func TestCreate(t *testing.T) {
	input := item.CreateItemInput{
		Name:          "Kursi",
		Category:      "Furniture",
		Condition:     "used",
		Price:         150000,
		Description:   "Kursi kayu",
		ImageFilename: "chair.jpg",
		ImageContent:  []byte("0123456789"),
	}

	t.Run("Happy Path", func(t *testing.T) {
		saver := &fakeSaver{saveFunc: func(filename string, content []byte) (string, error) {
			return "/uploads/" + filename, nil
		}}
		repo := &fakeRepo{createFunc: func(ctx context.Context, opt repository.CreateItemOptions) (item.Item, error) {
			if opt.ImageURL != "/uploads/chair.jpg" {
				t.Errorf("expected image_url /uploads/chair.jpg, got %s", opt.ImageURL)
			}
			return item.Item{
				ID:          "68b01234567890abcdef1234",
				Name:        opt.Name,
				Category:    opt.Category,
				Condition:   opt.Condition,
				Price:       opt.Price,
				Description: opt.Description,
				ImageURL:    opt.ImageURL,
			}, nil
		}}

		uc := usecase.New(repo, saver, &mockLogger{})
		out, err := uc.Create(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Item.ID == "" {
			t.Errorf("expected generated id")
		}
		if out.Item.Price != 150000 {
			t.Errorf("expected price 150000, got %v", out.Item.Price)
		}
		if saver.calls != 1 || repo.calls != 1 {
			t.Errorf("expected one save and one insert, got %d/%d", saver.calls, repo.calls)
		}
	})

	t.Run("File Save Error Skips Insert", func(t *testing.T) {
		saver := &fakeSaver{saveFunc: func(string, []byte) (string, error) {
			return "", errors.New("disk full")
		}}
		repo := &fakeRepo{createFunc: func(context.Context, repository.CreateItemOptions) (item.Item, error) {
			t.Fatal("insert must not run when the file write fails")
			return item.Item{}, nil
		}}

		uc := usecase.New(repo, saver, &mockLogger{})
		_, err := uc.Create(context.Background(), input)
		if !errors.Is(err, item.ErrSaveImage) {
			t.Errorf("expected ErrSaveImage, got %v", err)
		}
		if repo.calls != 0 {
			t.Errorf("expected no insert calls, got %d", repo.calls)
		}
	})

	t.Run("Insert Error Leaves File On Disk", func(t *testing.T) {
		dir := t.TempDir()
		store, err := filestore.New(filestore.Config{Dir: dir, PublicPrefix: "/uploads"})
		if err != nil {
			t.Fatalf("filestore.New: %v", err)
		}

		insertErr := errors.New("insert item: connection refused")
		repo := &fakeRepo{createFunc: func(context.Context, repository.CreateItemOptions) (item.Item, error) {
			return item.Item{}, insertErr
		}}

		uc := usecase.New(repo, store, &mockLogger{})
		_, err = uc.Create(context.Background(), input)
		if !errors.Is(err, insertErr) {
			t.Errorf("expected insert error to propagate, got %v", err)
		}

		// The file write is not rolled back — the orphan stays.
		if _, statErr := os.Stat(filepath.Join(dir, "chair.jpg")); statErr != nil {
			t.Errorf("expected orphaned file to remain: %v", statErr)
		}
	})
}
