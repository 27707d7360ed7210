package ratings

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ErosMello/jornalescolar/models"
)

// MongoRemote backs the remote tier with the ratings collection.
type MongoRemote struct {
	coll *mongo.Collection
}

func NewMongoRemote(coll *mongo.Collection) *MongoRemote {
	return &MongoRemote{coll: coll}
}

func (r *MongoRemote) Upsert(ctx context.Context, rating models.Rating) error {
	_, err := r.coll.ReplaceOne(
		ctx,
		bson.M{"_id": rating.ID},
		rating,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (r *MongoRemote) ByUser(ctx context.Context, postID, userID string) (int, bool, error) {
	var rating models.Rating
	err := r.coll.FindOne(ctx, bson.M{"_id": postID + "_" + userID}).Decode(&rating)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return rating.Value, true, nil
}

func (r *MongoRemote) Values(ctx context.Context, postID string) ([]int, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"postId": postID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []models.Rating
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	values := make([]int, len(docs))
	for i, d := range docs {
		values[i] = d.Value
	}
	return values, nil
}
