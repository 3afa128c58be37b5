package usecase

import (
	"master-data-barang/internal/item/repository"
	"master-data-barang/pkg/filestore"
	"master-data-barang/pkg/log"
)

// implUseCase is the private implementation of item.UseCase.
type implUseCase struct {
	repo  repository.Repository
	files filestore.Saver
	l     log.Logger
}

// New creates a new item UseCase implementation.
func New(repo repository.Repository, files filestore.Saver, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:  repo,
		files: files,
		l:     l,
	}
}
