package db

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"debatecoach/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const statusChecksCollection = "status_checks"

// MongoStore persists status checks in MongoDB
type MongoStore struct {
	client       *mongo.Client
	database     *mongo.Database
	statusChecks *mongo.Collection
}

// extractDBName parses the database name from the URI, defaulting to "test"
func extractDBName(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return "test"
	}
	if u.Path != "" && u.Path != "/" {
		return u.Path[1:]
	}
	return "test"
}

// ConnectMongoDB establishes a connection to MongoDB using the provided URI.
// An empty dbName falls back to the database named in the URI path.
func ConnectMongoDB(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	if dbName == "" {
		dbName = extractDBName(uri)
	}
	database := client.Database(dbName)
	return &MongoStore{
		client:       client,
		database:     database,
		statusChecks: database.Collection(statusChecksCollection),
	}, nil
}

// DatabaseName returns the name of the database in use
func (s *MongoStore) DatabaseName() string {
	return s.database.Name()
}

func (s *MongoStore) InsertStatusCheck(ctx context.Context, check models.StatusCheck) error {
	if _, err := s.statusChecks.InsertOne(ctx, check); err != nil {
		return fmt.Errorf("insert status check: %w", err)
	}
	return nil
}

func (s *MongoStore) ListStatusChecks(ctx context.Context, limit int) ([]models.StatusCheck, error) {
	opts := options.Find().SetLimit(int64(limit))
	cursor, err := s.statusChecks.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find status checks: %w", err)
	}
	defer cursor.Close(ctx)

	var checks []models.StatusCheck
	if err := cursor.All(ctx, &checks); err != nil {
		return nil, fmt.Errorf("decode status checks: %w", err)
	}
	return checks, nil
}

// Close disconnects the client
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
