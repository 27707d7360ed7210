package database

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Client *mongo.Client
var Accounts *mongo.Collection
var Users *mongo.Collection
var Posts *mongo.Collection
var Ratings *mongo.Collection

// Connect dials MongoDB and binds the package-level collection handles.
// accounts holds credential documents, users holds permission records keyed
// by email, posts holds news items, ratings holds one document per
// (post, rater).
func Connect(uri, dbName string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var err error
	Client, err = mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return err
	}

	if err := Client.Ping(ctx, nil); err != nil {
		return err
	}

	db := Client.Database(dbName)
	Accounts = db.Collection("accounts")
	Users = db.Collection("users")
	Posts = db.Collection("posts")
	Ratings = db.Collection("ratings")

	if err := ensureIndexes(ctx); err != nil {
		return err
	}

	logrus.WithField("database", dbName).Info("connected to MongoDB")
	return nil
}

func ensureIndexes(ctx context.Context) error {
	_, err := Posts.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "isPublished", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return err
	}

	_, err = Ratings.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "postId", Value: 1}},
	})
	return err
}

func Disconnect() error {
	if Client == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := Client.Disconnect(ctx); err != nil {
		return err
	}

	logrus.Info("disconnected from MongoDB")
	return nil
}
