package models

// AuthUser is the credential document for a staff account. The _id is the
// institutional email address.
type AuthUser struct {
	Email         string `bson:"_id" json:"email"`
	PasswordHash  string `bson:"passwordHash" json:"-"`
	EmailVerified bool   `bson:"emailVerified" json:"emailVerified"`
	UID           string `bson:"uid" json:"uid"`
	CreatedAt     int64  `bson:"createdAt" json:"createdAt"`
}

// UserPermission is the authorization record keyed by email. It is created
// lazily with isAdmin=false on the first permission lookup and is never
// promoted automatically.
type UserPermission struct {
	Email   string `bson:"_id" json:"email"`
	IsAdmin bool   `bson:"isAdmin" json:"isAdmin"`
	Name    string `bson:"name" json:"name"`
}
