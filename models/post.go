package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Post struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string             `bson:"title" json:"title"`
	Content       string             `bson:"content" json:"content"`
	ImageURL      string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Author        string             `bson:"author" json:"author"`
	Category      string             `bson:"category,omitempty" json:"category,omitempty"`
	IsPublished   bool               `bson:"isPublished" json:"isPublished"`
	CreatedAt     int64              `bson:"createdAt" json:"createdAt"`
	UpdatedAt     int64              `bson:"updatedAt" json:"updatedAt"`
	AverageRating float64            `bson:"-" json:"averageRating"` // populated in responses only
}
