package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/ErosMello/jornalescolar/apperrors"
	"github.com/ErosMello/jornalescolar/models"
)

// MongoProvider checks credentials against the accounts collection.
type MongoProvider struct {
	accounts *mongo.Collection
}

func NewMongoProvider(accounts *mongo.Collection) *MongoProvider {
	return &MongoProvider{accounts: accounts}
}

func (p *MongoProvider) SignIn(ctx context.Context, email, password string) (Identity, error) {
	var account models.AuthUser
	err := p.accounts.FindOne(ctx, bson.M{"_id": email}).Decode(&account)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Identity{}, apperrors.New(apperrors.InvalidCredential, "invalid email or password")
	}
	if err != nil {
		return Identity{}, apperrors.Wrap(apperrors.KindOf(err), err, "account lookup")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return Identity{}, apperrors.New(apperrors.InvalidCredential, "invalid email or password")
	}

	return Identity{
		UID:           account.UID,
		Email:         account.Email,
		EmailVerified: account.EmailVerified,
	}, nil
}

// SignOut is a no-op server side: sessions are stateless JWTs and the
// client drops its token. Kept on the interface so the gateway can force a
// sign-out on unverified identities with providers that do hold state.
func (p *MongoProvider) SignOut(ctx context.Context, uid string) error {
	return nil
}

func (p *MongoProvider) Register(ctx context.Context, email, password string) (Identity, error) {
	count, err := p.accounts.CountDocuments(ctx, bson.M{"_id": email})
	if err != nil {
		return Identity{}, apperrors.Wrap(apperrors.KindOf(err), err, "account lookup")
	}
	if count > 0 {
		return Identity{}, apperrors.New(apperrors.InvalidCredential, "email already in use")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Identity{}, apperrors.Wrap(apperrors.Unknown, err, "hash password")
	}

	account := models.AuthUser{
		Email:         email,
		PasswordHash:  string(hash),
		EmailVerified: false,
		UID:           uuid.NewString(),
		CreatedAt:     time.Now().Unix(),
	}

	if _, err := p.accounts.InsertOne(ctx, account); err != nil {
		return Identity{}, apperrors.Wrap(apperrors.KindOf(err), err, "create account")
	}

	return Identity{UID: account.UID, Email: account.Email, EmailVerified: false}, nil
}
