// path: store/users.go
package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"civicfix/models"
)

type userDoc struct {
	ID           string `bson:"id"`
	Name         string `bson:"name"`
	Email        string `bson:"email"`
	Phone        string `bson:"phone,omitempty"`
	PasswordHash string `bson:"password_hash"`
	Role         string `bson:"role"`
	CreatedAt    string `bson:"created_at"`
}

func (d userDoc) model() models.User {
	return models.User{
		ID:        d.ID,
		Name:      d.Name,
		Email:     d.Email,
		Phone:     d.Phone,
		Role:      d.Role,
		CreatedAt: parseTime(d.CreatedAt),
	}
}

// CreateUser persists a new account with its password hash.
func (s *Store) CreateUser(ctx context.Context, u models.User, passwordHash string) error {
	ctx, cancel := context.WithTimeout(ctx, mongoTimeout)
	defer cancel()

	_, err := s.users.InsertOne(ctx, userDoc{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Phone:        u.Phone,
		PasswordHash: passwordHash,
		Role:         u.Role,
		CreatedAt:    fmtTime(u.CreatedAt),
	})
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateEmail
	}
	return err
}

// UserByEmail looks up an account by exact email and returns it with its
// password hash for credential verification.
func (s *Store) UserByEmail(ctx context.Context, email string) (models.User, string, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoTimeout)
	defer cancel()

	var d userDoc
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&d)
	if err == mongo.ErrNoDocuments {
		return models.User{}, "", ErrNotFound
	}
	if err != nil {
		return models.User{}, "", err
	}
	return d.model(), d.PasswordHash, nil
}

// UserByID resolves a user id, typically from a token subject.
func (s *Store) UserByID(ctx context.Context, id string) (models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoTimeout)
	defer cancel()

	var d userDoc
	err := s.users.FindOne(ctx, bson.M{"id": id}).Decode(&d)
	if err == mongo.ErrNoDocuments {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return d.model(), nil
}

// ListUsers returns up to limit accounts, optionally filtered by role.
// Password hashes never leave this layer.
func (s *Store) ListUsers(ctx context.Context, role string, limit int64) ([]models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoTimeout)
	defer cancel()

	filter := bson.M{}
	if role != "" {
		filter["role"] = role
	}

	cur, err := s.users.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	users := make([]models.User, 0, 16)
	for cur.Next(ctx) {
		var d userDoc
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		users = append(users, d.model())
	}
	return users, cur.Err()
}
