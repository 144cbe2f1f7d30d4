// path: database/database.go
package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect dials MongoDB, pings it, and ensures the indexes the service
// queries by. The returned client is owned by the caller; disconnect it on
// shutdown.
func Connect(ctx context.Context, uri, dbname string) (*mongo.Client, *mongo.Database, error) {
	start := time.Now()
	log.Printf("mongo: connecting uri=%s db=%s", redactURI(uri), dbname)

	dctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	c, err := mongo.Connect(dctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err = c.Ping(dctx, nil); err != nil {
		_ = c.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := c.Database(dbname)
	if err := createIndexes(db); err != nil {
		log.Printf("mongo: index creation warnings: %v", err)
	}

	log.Printf("mongo: connected ok in %s", time.Since(start).Round(time.Millisecond))
	return c, db, nil
}

func createIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var errs []string
	add := func(col, label string, model mongo.IndexModel) {
		if _, err := db.Collection(col).Indexes().CreateOne(ctx, model); err != nil {
			errs = append(errs, label+": "+err.Error())
		}
	}

	add("users", "users.email", mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	add("reports", "reports.created_at", mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	add("reports", "reports.status", mongo.IndexModel{
		Keys: bson.D{{Key: "status", Value: 1}},
	})
	add("reports", "reports.category", mongo.IndexModel{
		Keys: bson.D{{Key: "category", Value: 1}},
	})
	add("comments", "comments.report_id", mongo.IndexModel{
		Keys: bson.D{{Key: "report_id", Value: 1}, {Key: "created_at", Value: -1}},
	})

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// redactURI hides credentials so connection strings are safe to log.
func redactURI(raw string) string {
	if raw == "" || !strings.Contains(raw, "://") {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	u.User = url.UserPassword("****", "****")
	return u.String()
}
