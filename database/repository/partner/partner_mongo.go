package partnerRepo

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/fierogr/findfarewells-sub000/database"
	"github.com/fierogr/findfarewells-sub000/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPartnerRepo implements PartnerRepository using MongoDB.
//
// Partner ids are a numeric sequence kept in a counters collection; the
// application layer only ever sees them as opaque strings.
type MongoPartnerRepo struct {
	coll     *mongo.Collection
	counters *mongo.Collection
}

// NewMongoPartnerRepo creates a new instance of PartnerRepository using MongoDB.
func NewMongoPartnerRepo() PartnerRepository {
	db := database.DB()
	repo := &MongoPartnerRepo{
		coll:     db.Collection("partners"),
		counters: db.Collection("counters"),
	}
	if err := repo.ensureIndexes(); err != nil {
		panic(fmt.Sprintf("partner repo: %v", err))
	}
	return repo
}

// nextID atomically increments and returns the partner id sequence.
func (r *MongoPartnerRepo) nextID(ctx context.Context) (string, error) {
	var doc struct {
		Seq int64 `bson:"seq"`
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": "partners"},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		opts,
	).Decode(&doc)
	if err != nil {
		return "", fmt.Errorf("failed to allocate partner id: %w", err)
	}
	return strconv.FormatInt(doc.Seq, 10), nil
}

func (r *MongoPartnerRepo) GetByID(id string) (*models.Partner, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var partner models.Partner
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&partner); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch partner with id %s: %w", id, err)
	}
	partner.NormalizeRegions()
	return &partner, nil
}

func (r *MongoPartnerRepo) GetAll() ([]models.Partner, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve partners: %w", err)
	}
	defer cursor.Close(ctx)
	var partners []models.Partner
	for cursor.Next(ctx) {
		var p models.Partner
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode partner: %w", err)
		}
		p.NormalizeRegions()
		partners = append(partners, p)
	}
	return partners, nil
}

func (r *MongoPartnerRepo) Create(partner *models.Partner) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if partner.ID == "" {
		id, err := r.nextID(ctx)
		if err != nil {
			return err
		}
		partner.ID = id
	}
	partner.NormalizeRegions()
	now := time.Now()
	partner.CreatedAt = now
	partner.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, partner); err != nil {
		return fmt.Errorf("failed to create partner: %w", err)
	}
	return nil
}

func (r *MongoPartnerRepo) Update(partner *models.Partner) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	// A stored nil regions list must never be written back; the filtering
	// layer relies on "explicitly empty" round-tripping as an array.
	partner.NormalizeRegions()
	partner.UpdatedAt = time.Now()
	filter := bson.M{"id": partner.ID}
	update := bson.M{"$set": partner}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update partner with id %s: %w", partner.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("partner with id %s not found", partner.ID)
	}
	return nil
}

func (r *MongoPartnerRepo) UpdateFields(id string, fields map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if regions, ok := fields["regions"]; ok && regions == nil {
		fields["regions"] = []string{}
	}
	fields["updatedAt"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to patch partner with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("partner with id %s not found", id)
	}
	return nil
}

func (r *MongoPartnerRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete partner with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("partner with id %s not found", id)
	}
	return nil
}
