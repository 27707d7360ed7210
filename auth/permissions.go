package auth

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ErosMello/jornalescolar/apperrors"
	"github.com/ErosMello/jornalescolar/models"
)

// MongoPermissions stores permission records in the users collection,
// keyed by email.
type MongoPermissions struct {
	users *mongo.Collection
}

func NewMongoPermissions(users *mongo.Collection) *MongoPermissions {
	return &MongoPermissions{users: users}
}

func (s *MongoPermissions) Get(ctx context.Context, email string) (*models.UserPermission, error) {
	var perm models.UserPermission
	err := s.users.FindOne(ctx, bson.M{"_id": email}).Decode(&perm)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.Wrap(apperrors.UserNotFound, err, "permission record")
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindOf(err), err, "permission lookup")
	}
	return &perm, nil
}

func (s *MongoPermissions) Create(ctx context.Context, perm models.UserPermission) error {
	_, err := s.users.InsertOne(ctx, perm)
	return err
}
