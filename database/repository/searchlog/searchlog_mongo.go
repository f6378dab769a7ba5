package searchlogRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/fierogr/findfarewells-sub000/database"
	"github.com/fierogr/findfarewells-sub000/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSearchLogRepo implements SearchLogRepository using MongoDB.
type MongoSearchLogRepo struct {
	searches   *mongo.Collection
	selections *mongo.Collection
}

// NewMongoSearchLogRepo creates a new instance of SearchLogRepository using MongoDB.
func NewMongoSearchLogRepo() SearchLogRepository {
	db := database.DB()
	return &MongoSearchLogRepo{
		searches:   db.Collection("search_requests"),
		selections: db.Collection("package_selections"),
	}
}

func (r *MongoSearchLogRepo) LogSearch(req *models.SearchRequest) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := r.searches.InsertOne(ctx, req); err != nil {
		return fmt.Errorf("failed to log search request: %w", err)
	}
	return nil
}

func (r *MongoSearchLogRepo) GetSearches() ([]models.SearchRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.searches.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve search requests: %w", err)
	}
	defer cursor.Close(ctx)
	var requests []models.SearchRequest
	for cursor.Next(ctx) {
		var req models.SearchRequest
		if err := cursor.Decode(&req); err != nil {
			return nil, fmt.Errorf("failed to decode search request: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, nil
}

func (r *MongoSearchLogRepo) DeleteSearch(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := r.searches.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete search request %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("search request %s not found", id)
	}
	return nil
}

func (r *MongoSearchLogRepo) LogPackageSelection(sel *models.PackageSelection) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := r.selections.InsertOne(ctx, sel); err != nil {
		return fmt.Errorf("failed to log package selection: %w", err)
	}
	return nil
}
