package repository

import (
	"context"
	"time"

	"rental-backend/internal/apperrors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SequenceRepository allocates monotonically increasing int64 ids from a
// counters collection, one document per entity name. Entity ids are plain
// positive integers across the whole API.
type SequenceRepository struct {
	collection *mongo.Collection
}

func NewSequenceRepository(db *mongo.Database) *SequenceRepository {
	return &SequenceRepository{
		collection: db.Collection("counters"),
	}
}

// NextID atomically increments and returns the counter for name. The first
// call for a name yields 1.
func (r *SequenceRepository) NextID(name string) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)

	var counter struct {
		Seq int64 `bson:"seq"`
	}
	if err := result.Decode(&counter); err != nil {
		return 0, apperrors.Persistence(err, "failed to allocate id for %s", name)
	}

	return counter.Seq, nil
}
