// path: store/store.go
package store

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// Timestamps are persisted as fixed-width ISO-8601 strings so that sorting on
// the raw field stays chronological.
const timeLayout = "2006-01-02T15:04:05.000000Z07:00"

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("not found")

// ErrDuplicateEmail is returned when a user insert hits the unique email index.
var ErrDuplicateEmail = errors.New("email already registered")

// mongoTimeout bounds every single store call.
const mongoTimeout = 8 * time.Second

// Store is a thin accessor over the three flat collections. Every document
// is keyed by its generated "id" field, not by Mongo's _id.
type Store struct {
	users    *mongo.Collection
	reports  *mongo.Collection
	comments *mongo.Collection
}

// New wraps the given database handle.
func New(db *mongo.Database) *Store {
	return &Store{
		users:    db.Collection("users"),
		reports:  db.Collection("reports"),
		comments: db.Collection("comments"),
	}
}

func fmtTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime tolerates any RFC 3339 variant on read.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}
