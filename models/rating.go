package models

// Rating is one reader's star value for a post. The document ID is the
// canonical "{postId}_{uid}" composite, so a later submit by the same
// rater overwrites the earlier one.
type Rating struct {
	ID        string `bson:"_id" json:"id"`
	PostID    string `bson:"postId" json:"postId"`
	UserID    string `bson:"userId" json:"userId"`
	Value     int    `bson:"value" json:"value"`
	Timestamp int64  `bson:"timestamp" json:"timestamp"`
}
