// Package posts is the repository for news items.
package posts

import (
	"context"
	"errors"
	"io"
	"time"

	pkgerrors "github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ErosMello/jornalescolar/apperrors"
	"github.com/ErosMello/jornalescolar/models"
	"github.com/ErosMello/jornalescolar/storage"
)

var ErrNotFound = apperrors.New(apperrors.UserNotFound, "post not found")

// Image is an optional attachment to a create or update.
type Image struct {
	File     io.Reader
	Filename string
}

// Update carries the partial fields of an update; nil means "leave alone".
type Update struct {
	Title       *string
	Content     *string
	Category    *string
	IsPublished *bool
	Image       *Image
}

type Repository struct {
	coll     *mongo.Collection
	uploader storage.Uploader
}

func NewRepository(coll *mongo.Collection, uploader storage.Uploader) *Repository {
	return &Repository{coll: coll, uploader: uploader}
}

// Create stores a new post, unpublished until an explicit publish. When an
// image is attached its upload must succeed before the document is written:
// a storage failure aborts the whole creation, so no post ever exists
// without its recorded image URL.
func (r *Repository) Create(ctx context.Context, title, content, category, author string, image *Image) (string, error) {
	imageURL := ""
	if image != nil {
		url, err := r.uploader.UploadImage(ctx, image.File, image.Filename)
		if err != nil {
			return "", pkgerrors.Wrap(err, "create post")
		}
		imageURL = url
	}

	now := time.Now().Unix()
	post := models.Post{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Content:     content,
		ImageURL:    imageURL,
		Author:      author,
		Category:    category,
		IsPublished: false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := r.coll.InsertOne(ctx, post); err != nil {
		return "", pkgerrors.Wrap(err, "insert post")
	}
	return post.ID.Hex(), nil
}

// Latest returns up to limit published posts, most recent first.
func (r *Repository) Latest(ctx context.Context, limit int) ([]models.Post, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.M{"isPublished": true}, opts)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "find posts")
	}
	defer cursor.Close(ctx)

	var out []models.Post
	if err := cursor.All(ctx, &out); err != nil {
		return nil, pkgerrors.Wrap(err, "decode posts")
	}
	return out, nil
}

func (r *Repository) ByID(ctx context.Context, id string) (*models.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var post models.Post
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, pkgerrors.Wrap(err, "find post")
	}
	return &post, nil
}

// Apply updates the given fields and bumps updatedAt. A replacement image
// follows the same all-or-nothing policy as Create.
func (r *Repository) Apply(ctx context.Context, id string, upd Update) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	set := bson.M{"updatedAt": time.Now().Unix()}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Content != nil {
		set["content"] = *upd.Content
	}
	if upd.Category != nil {
		set["category"] = *upd.Category
	}
	if upd.IsPublished != nil {
		set["isPublished"] = *upd.IsPublished
	}
	if upd.Image != nil {
		url, err := r.uploader.UploadImage(ctx, upd.Image.File, upd.Image.Filename)
		if err != nil {
			return pkgerrors.Wrap(err, "update post")
		}
		set["imageUrl"] = url
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return pkgerrors.Wrap(err, "update post")
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return pkgerrors.Wrap(err, "delete post")
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
