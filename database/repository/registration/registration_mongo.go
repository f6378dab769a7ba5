package registrationRepo

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

// MongoRegistrationRepo implements RegistrationRepository using MongoDB.
type MongoRegistrationRepo struct {
	coll *mongo.Collection
}

// NewMongoRegistrationRepo creates a new instance of RegistrationRepository using MongoDB.
func NewMongoRegistrationRepo() RegistrationRepository {
	coll := database.DB().Collection("registration_requests")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, _ = coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})
	return &MongoRegistrationRepo{coll: coll}
}

func (r *MongoRegistrationRepo) GetByID(id string) (*models.RegistrationRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var req models.RegistrationRequest
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&req); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch registration request %s: %w", id, err)
	}
	if req.Regions == nil {
		req.Regions = []string{}
	}
	return &req, nil
}

func (r *MongoRegistrationRepo) GetAll() ([]models.RegistrationRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve registration requests: %w", err)
	}
	defer cursor.Close(ctx)
	var requests []models.RegistrationRequest
	for cursor.Next(ctx) {
		var req models.RegistrationRequest
		if err := cursor.Decode(&req); err != nil {
			return nil, fmt.Errorf("failed to decode registration request: %w", err)
		}
		if req.Regions == nil {
			req.Regions = []string{}
		}
		requests = append(requests, req)
	}
	return requests, nil
}

func (r *MongoRegistrationRepo) Create(req *models.RegistrationRequest) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if req.Regions == nil {
		req.Regions = []string{}
	}
	if _, err := r.coll.InsertOne(ctx, req); err != nil {
		return fmt.Errorf("failed to create registration request: %w", err)
	}
	return nil
}

func (r *MongoRegistrationRepo) UpdateStatus(id, status string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return fmt.Errorf("failed to update registration request %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("registration request %s not found", id)
	}
	return nil
}
