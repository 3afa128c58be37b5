package diagnostic

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type mongoProber struct {
	db *mongo.Database
}

// NewMongoProber wraps a Mongo database handle as a Prober.
// A nil handle yields a nil Prober so the report shows "Not Available".
func NewMongoProber(db *mongo.Database) Prober {
	if db == nil {
		return nil
	}
	return &mongoProber{db: db}
}

func (p *mongoProber) ListCollectionNames(ctx context.Context) ([]string, error) {
	return p.db.ListCollectionNames(ctx, bson.D{})
}
