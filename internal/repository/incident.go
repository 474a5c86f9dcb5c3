package repository

import (
	"context"
	"time"

	"rental-backend/internal/apperrors"
	"rental-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type IncidentRepository struct {
	collection *mongo.Collection
	sequences  *SequenceRepository
}

func NewIncidentRepository(db *mongo.Database, sequences *SequenceRepository) *IncidentRepository {
	return &IncidentRepository{
		collection: db.Collection("incidents"),
		sequences:  sequences,
	}
}

func (r *IncidentRepository) Create(incident *models.Incident) (*models.Incident, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := r.sequences.NextID("incidents")
	if err != nil {
		return nil, err
	}
	incident.ID = id

	if _, err := r.collection.InsertOne(ctx, incident); err != nil {
		return nil, apperrors.Persistence(err, "failed to create incident")
	}

	return incident, nil
}

func (r *IncidentRepository) FindByID(id int64) (*models.Incident, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var incident models.Incident
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&incident)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("incident %d not found", id)
		}
		return nil, apperrors.Persistence(err, "failed to load incident %d", id)
	}

	return &incident, nil
}

func (r *IncidentRepository) FindByRental(rentalID int64) ([]*models.Incident, error) {
	return r.find(bson.M{"rental_id": rentalID})
}

func (r *IncidentRepository) FindAll() ([]*models.Incident, error) {
	return r.find(bson.M{})
}

func (r *IncidentRepository) find(filter bson.M) ([]*models.Incident, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperrors.Persistence(err, "failed to list incidents")
	}
	defer cursor.Close(ctx)

	var incidents []*models.Incident
	for cursor.Next(ctx) {
		var incident models.Incident
		if err := cursor.Decode(&incident); err != nil {
			return nil, apperrors.Persistence(err, "failed to decode incident")
		}
		incidents = append(incidents, &incident)
	}

	return incidents, nil
}

func (r *IncidentRepository) Update(incident *models.Incident) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	incident.UpdatedAt = time.Now()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": incident.ID}, incident)
	if err != nil {
		return apperrors.Persistence(err, "failed to update incident %d", incident.ID)
	}
	if result.MatchedCount == 0 {
		return apperrors.NotFound("incident %d not found", incident.ID)
	}

	return nil
}

// SumPendingByRental totals the unpaid incident amounts for one rental.
func (r *IncidentRepository) SumPendingByRental(rentalID int64) (float64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{
			"$match": bson.M{
				"rental_id": rentalID,
				"status":    models.IncidentStatusPending,
			},
		},
		{
			"$group": bson.M{
				"_id":   nil,
				"total": bson.M{"$sum": "$amount"},
			},
		},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, apperrors.Persistence(err, "failed to total pending incidents")
	}
	defer cursor.Close(ctx)

	var result struct {
		Total float64 `bson:"total"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return 0, apperrors.Persistence(err, "failed to decode incident total")
		}
	}

	return result.Total, nil
}
