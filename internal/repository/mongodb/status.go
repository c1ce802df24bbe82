// Package mongodb implements the status-check repository on MongoDB.
//
// Status checks are the one piece of the system that never touched the
// relational store — clients ping POST /api/status and the documents land
// in the status_checks collection. The client here is constructed once and
// injected; there is no module-level cached connection.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gamevault/gamevault/internal/model"
	"github.com/gamevault/gamevault/internal/repository"
)

// Compile-time check that *StatusStore implements repository.StatusRepository.
var _ repository.StatusRepository = (*StatusStore)(nil)

const statusCollection = "status_checks"

// StatusStore wraps a Mongo client scoped to one database.
type StatusStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// New connects to MongoDB and pings it so a bad URL fails at startup, not
// on the first request.
func New(ctx context.Context, uri, dbName string) (*StatusStore, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongodb: connecting: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongodb: pinging: %w", err)
	}

	return &StatusStore{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

// Close disconnects the underlying client.
func (s *StatusStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// CreateStatus inserts one status-check document.
func (s *StatusStore) CreateStatus(ctx context.Context, check *model.StatusCheck) error {
	if _, err := s.db.Collection(statusCollection).InsertOne(ctx, check); err != nil {
		return fmt.Errorf("mongodb: inserting status check: %w", err)
	}
	return nil
}

// ListStatus returns up to limit status checks. Mongo's internal _id is
// projected away so it never leaks into API responses.
func (s *StatusStore) ListStatus(ctx context.Context, limit int64) ([]model.StatusCheck, error) {
	opts := options.Find().
		SetLimit(limit).
		SetProjection(bson.D{{Key: "_id", Value: 0}})

	cursor, err := s.db.Collection(statusCollection).Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("mongodb: listing status checks: %w", err)
	}

	// cursor.All decodes every document and closes the cursor.
	checks := []model.StatusCheck{}
	if err := cursor.All(ctx, &checks); err != nil {
		return nil, fmt.Errorf("mongodb: decoding status checks: %w", err)
	}
	return checks, nil
}
