package mongodb

import (
	"go.mongodb.org/mongo-driver/v2/mongo"

	"master-data-barang/internal/item/repository"
	"master-data-barang/pkg/log"
)

// itemCollection is the document collection item records are inserted into.
const itemCollection = "item"

type implRepository struct {
	db *mongo.Database
	l  log.Logger
}

// New creates a new MongoDB-backed Repository for the item domain.
// db may be nil when the service starts without a reachable database;
// every operation then fails with repository.ErrNotConnected.
func New(db *mongo.Database, l log.Logger) repository.Repository {
	return &implRepository{db: db, l: l}
}
