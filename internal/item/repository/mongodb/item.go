package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"

	"master-data-barang/internal/item"
	repo "master-data-barang/internal/item/repository"
)

// itemDocument is the BSON layout of an item record in the store.
type itemDocument struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	Name        string        `bson:"name"`
	Category    string        `bson:"category"`
	Condition   string        `bson:"condition"`
	Price       float64       `bson:"price"`
	Description string        `bson:"description,omitempty"`
	ImageURL    string        `bson:"image_url"`
}

// CreateItem inserts a new item document and returns the created entity with
// the generated ObjectID hex as its ID.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (item.Item, error) {
	if r.db == nil {
		return item.Item{}, repo.ErrNotConnected
	}

	doc := itemDocument{
		Name:        opt.Name,
		Category:    opt.Category,
		Condition:   opt.Condition,
		Price:       opt.Price,
		Description: opt.Description,
		ImageURL:    opt.ImageURL,
	}

	res, err := r.db.Collection(itemCollection).InsertOne(ctx, doc)
	if err != nil {
		r.l.Errorf(ctx, "item/repository/mongodb.CreateItem: %v", err)
		return item.Item{}, fmt.Errorf("insert item: %w", err)
	}

	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return item.Item{}, fmt.Errorf("insert item: unexpected id type %T", res.InsertedID)
	}

	return item.Item{
		ID:          oid.Hex(),
		Name:        opt.Name,
		Category:    opt.Category,
		Condition:   opt.Condition,
		Price:       opt.Price,
		Description: opt.Description,
		ImageURL:    opt.ImageURL,
	}, nil
}
