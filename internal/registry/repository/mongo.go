package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/attestia/docregistry/internal/registry"
)

// MongoRepo implements a MongoDB-backed document store. Records are keyed by
// `_id` (the generated document id), so uniqueness comes from the collection
// itself and List in `_id` order matches an ordered key scan.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col}
}

func (m *MongoRepo) Insert(ctx context.Context, doc *registry.Document) error {
	_, err := m.col.InsertOne(ctx, doc)
	return err
}

func (m *MongoRepo) Get(ctx context.Context, id string) (*registry.Document, error) {
	var d registry.Document
	err := m.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (m *MongoRepo) Replace(ctx context.Context, doc *registry.Document) error {
	res, err := m.col.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the record and returns the pre-deletion version in one
// round trip.
func (m *MongoRepo) Delete(ctx context.Context, id string) (*registry.Document, error) {
	var d registry.Document
	err := m.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&d)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (m *MongoRepo) List(ctx context.Context) ([]*registry.Document, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := m.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*registry.Document{}
	for cur.Next(ctx) {
		var d registry.Document
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		out = append(out, &d)
	}
	return out, cur.Err()
}
