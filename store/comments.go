// path: store/comments.go
package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"civicfix/models"
)

type commentDoc struct {
	ID        string `bson:"id"`
	ReportID  string `bson:"report_id"`
	UserID    string `bson:"user_id"`
	UserName  string `bson:"user_name"`
	Text      string `bson:"text"`
	CreatedAt string `bson:"created_at"`
}

func (d commentDoc) model() models.Comment {
	return models.Comment{
		ID:        d.ID,
		ReportID:  d.ReportID,
		UserID:    d.UserID,
		UserName:  d.UserName,
		Text:      d.Text,
		CreatedAt: parseTime(d.CreatedAt),
	}
}

// CreateComment persists a new comment; comments are never edited or deleted.
func (s *Store) CreateComment(ctx context.Context, c models.Comment) error {
	ctx, cancel := context.WithTimeout(ctx, mongoTimeout)
	defer cancel()

	_, err := s.comments.InsertOne(ctx, commentDoc{
		ID:        c.ID,
		ReportID:  c.ReportID,
		UserID:    c.UserID,
		UserName:  c.UserName,
		Text:      c.Text,
		CreatedAt: fmtTime(c.CreatedAt),
	})
	return err
}

// CommentsByReport lists a report's comments newest-first, capped at limit.
func (s *Store) CommentsByReport(ctx context.Context, reportID string, limit int64) ([]models.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cur, err := s.comments.Find(ctx, bson.M{"report_id": reportID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	comments := make([]models.Comment, 0, 8)
	for cur.Next(ctx) {
		var d commentDoc
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		comments = append(comments, d.model())
	}
	return comments, cur.Err()
}
