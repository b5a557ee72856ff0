package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/geepay-ngn/wallet/internal/config"
)

// mongoDocumentID keys the single wallet document within the collection.
const mongoDocumentID = "wallet"

// MongoStore persists the wallet document as a single upserted record in a
// MongoDB collection. ReplaceOne is atomic for a single document, which gives
// Save the same all-or-nothing guarantee as the file store's rename.
type MongoStore struct {
	logger     *slog.Logger
	client     *mongo.Client
	collection *mongo.Collection
}

type mongoEnvelope struct {
	ID       string   `bson:"_id"`
	Document Document `bson:"document"`
}

// NewMongoStore connects to MongoDB and returns a document store over the
// configured collection
func NewMongoStore(ctx context.Context, logger *slog.Logger, cfg *config.MongoDBConfig) (*MongoStore, error) {
	clientOptions := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	collection := client.Database(cfg.Database).Collection(cfg.Collection)

	return &MongoStore{
		logger:     logger,
		client:     client,
		collection: collection,
	}, nil
}

// Load fetches the wallet document. Returns ErrNotExist when it has never
// been saved.
func (s *MongoStore) Load(ctx context.Context) (*Document, error) {
	var envelope mongoEnvelope
	err := s.collection.FindOne(ctx, bson.M{"_id": mongoDocumentID}).Decode(&envelope)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotExist
		}
		return nil, &IOError{Op: "load", Err: err}
	}
	return &envelope.Document, nil
}

// Save upserts the wallet document. Meta is stamped on the envelope's copy;
// the caller's document is left untouched.
func (s *MongoStore) Save(ctx context.Context, doc *Document) error {
	envelope := mongoEnvelope{ID: mongoDocumentID, Document: *doc}
	envelope.Document.Meta = Meta{
		Storage:   "mongo",
		Version:   DocumentVersion,
		Timestamp: time.Now(),
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.collection.ReplaceOne(ctx, bson.M{"_id": mongoDocumentID}, envelope, opts); err != nil {
		return &IOError{Op: "save", Err: err}
	}

	s.logger.Debug("wallet document saved", "collection", s.collection.Name())
	return nil
}

// Close disconnects the underlying client
func (s *MongoStore) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}
	s.logger.Info("Closed MongoDB connection")
	return nil
}

var _ Store = (*MongoStore)(nil)
