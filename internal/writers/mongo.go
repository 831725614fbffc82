package writers

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDirectory implements Directory against a writers collection.
type MongoDirectory struct {
	col *mongo.Collection
}

// NewMongoDirectory creates a directory for the given collection.
func NewMongoDirectory(col *mongo.Collection) *MongoDirectory {
	return &MongoDirectory{col: col}
}

func (m *MongoDirectory) Get(ctx context.Context, id string) (*Writer, error) {
	var w Writer
	if err := m.col.FindOne(ctx, bson.M{"_id": id}).Decode(&w); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &w, nil
}

func (m *MongoDirectory) List(ctx context.Context) ([]Writer, error) {
	cur, err := m.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []Writer
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *MongoDirectory) Upsert(ctx context.Context, w *Writer) (*Writer, error) {
	now := time.Now().UTC()
	w.UpdatedAt = now

	filter := bson.M{"_id": w.ID}
	update := bson.M{
		"$set": bson.M{
			"name":      w.Name,
			"email":     w.Email,
			"updatedAt": w.UpdatedAt,
		},
		"$setOnInsert": bson.M{"createdAt": now},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var updated Writer
	if err := m.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated); err != nil {
		if err == mongo.ErrNoDocuments {
			// Shouldn't happen because of upsert, but handle gracefully
			return w, nil
		}
		return nil, err
	}
	return &updated, nil
}
