package courtRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"turfbook/database"
	"turfbook/models"
)

// MongoCourtRepo implements CourtRepository using MongoDB.
type MongoCourtRepo struct {
	coll *mongo.Collection
}

// NewMongoCourtRepo creates a new instance of CourtRepository using MongoDB.
func NewMongoCourtRepo() CourtRepository {
	coll := database.MongoClient.Database("turfbook").Collection("courts")
	repo := &MongoCourtRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create court indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCourtRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetAll retrieves courts, optionally restricted to active ones.
func (r *MongoCourtRepo) GetAll(activeOnly bool) ([]models.Court, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch courts: %w", err)
	}
	defer cursor.Close(ctx)

	var courts []models.Court
	if err := cursor.All(ctx, &courts); err != nil {
		return nil, fmt.Errorf("error decoding courts: %w", err)
	}
	return courts, nil
}

// GetByID retrieves a court by its numeric ID.
func (r *MongoCourtRepo) GetByID(id int) (*models.Court, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var court models.Court
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&court); err != nil {
		return nil, fmt.Errorf("failed to fetch court with id %d: %w", id, err)
	}
	return &court, nil
}

// Create inserts a new court document.
func (r *MongoCourtRepo) Create(court *models.Court) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, court)
	if err != nil {
		return fmt.Errorf("failed to create court: %w", err)
	}
	return nil
}
