package mongodb

import (
	"context"
	"fmt"
	"regexp"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pricepulse/backend/internal/domain"
)

// Repository persists annotated products in MongoDB, keyed by (date, name)
// with a secondary (date, source) index for per-supplier lookups.
type Repository struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewRepository connects to MongoDB and prepares the product collection.
func NewRepository(ctx context.Context, uri, database, collection string) (*Repository, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongodb connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongodb ping: %w", err)
	}

	repo := &Repository{
		client:     client,
		collection: client.Database(database).Collection(collection),
	}

	if err := repo.ensureIndexes(ctx); err != nil {
		// Queries still work unindexed, just slower
		log.Warnf("[MONGO] failed to create indexes: %v", err)
	}

	log.Infof("[MONGO] repository initialized: %s.%s", database, collection)
	return repo, nil
}

func (r *Repository) ensureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: 1}, {Key: "name", Value: 1}}},
		{Keys: bson.D{{Key: "date", Value: 1}, {Key: "source", Value: 1}}},
	})
	return err
}

// InsertBatch stores a batch of annotated products and returns the number
// of inserted documents.
func (r *Repository) InsertBatch(ctx context.Context, products []domain.AnnotatedProduct) (int, error) {
	if len(products) == 0 {
		return 0, nil
	}

	docs := make([]any, len(products))
	for i, p := range products {
		docs[i] = p
	}

	result, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrStorageFailure, err)
	}

	log.Infof("[MONGO] inserted %d products", len(result.InsertedIDs))
	return len(result.InsertedIDs), nil
}

// FindByDateSource returns every product stored for one supplier on one day.
func (r *Repository) FindByDateSource(ctx context.Context, date, source string) ([]domain.AnnotatedProduct, error) {
	return r.find(ctx, bson.M{"date": date, "source": source})
}

// FindByProductSince returns every record for a product name (matched
// case-insensitively) on or after sinceDate; an empty sinceDate means the
// full history.
func (r *Repository) FindByProductSince(ctx context.Context, productName, sinceDate string) ([]domain.AnnotatedProduct, error) {
	filter := bson.M{
		"name": primitive.Regex{
			Pattern: "^" + regexp.QuoteMeta(productName) + "$",
			Options: "i",
		},
	}
	if sinceDate != "" {
		filter["date"] = bson.M{"$gte": sinceDate}
	}
	return r.find(ctx, filter)
}

func (r *Repository) find(ctx context.Context, filter bson.M) ([]domain.AnnotatedProduct, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("mongodb find: %w", err)
	}
	defer cursor.Close(ctx)

	var products []domain.AnnotatedProduct
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("mongodb decode: %w", err)
	}
	return products, nil
}

// Close disconnects from MongoDB.
func (r *Repository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
