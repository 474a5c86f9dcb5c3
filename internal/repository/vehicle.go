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

type VehicleRepository struct {
	collection *mongo.Collection
	sequences  *SequenceRepository
}

func NewVehicleRepository(db *mongo.Database, sequences *SequenceRepository) *VehicleRepository {
	return &VehicleRepository{
		collection: db.Collection("vehicles"),
		sequences:  sequences,
	}
}

func (r *VehicleRepository) Create(vehicle *models.Vehicle) (*models.Vehicle, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := r.sequences.NextID("vehicles")
	if err != nil {
		return nil, err
	}
	vehicle.ID = id

	if _, err := r.collection.InsertOne(ctx, vehicle); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.Persistence(err, "plate number %s already exists", vehicle.PlateNumber)
		}
		return nil, apperrors.Persistence(err, "failed to create vehicle")
	}

	return vehicle, nil
}

func (r *VehicleRepository) FindByID(id int64) (*models.Vehicle, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var vehicle models.Vehicle
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&vehicle)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("vehicle %d not found", id)
		}
		return nil, apperrors.Persistence(err, "failed to load vehicle %d", id)
	}

	return &vehicle, nil
}

func (r *VehicleRepository) FindByPlateNumber(plateNumber string) (*models.Vehicle, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var vehicle models.Vehicle
	err := r.collection.FindOne(ctx, bson.M{"plate_number": plateNumber}).Decode(&vehicle)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("vehicle with plate %s not found", plateNumber)
		}
		return nil, apperrors.Persistence(err, "failed to load vehicle by plate")
	}

	return &vehicle, nil
}

func (r *VehicleRepository) FindAll() ([]*models.Vehicle, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, apperrors.Persistence(err, "failed to list vehicles")
	}
	defer cursor.Close(ctx)

	var vehicles []*models.Vehicle
	for cursor.Next(ctx) {
		var vehicle models.Vehicle
		if err := cursor.Decode(&vehicle); err != nil {
			return nil, apperrors.Persistence(err, "failed to decode vehicle")
		}
		vehicles = append(vehicles, &vehicle)
	}

	return vehicles, nil
}

func (r *VehicleRepository) Update(vehicle *models.Vehicle) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	vehicle.UpdatedAt = time.Now()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": vehicle.ID}, vehicle)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.Persistence(err, "plate number %s already exists", vehicle.PlateNumber)
		}
		return apperrors.Persistence(err, "failed to update vehicle %d", vehicle.ID)
	}
	if result.MatchedCount == 0 {
		return apperrors.NotFound("vehicle %d not found", vehicle.ID)
	}

	return nil
}

func (r *VehicleRepository) SetActive(id int64, active bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"active":     active,
			"updated_at": time.Now(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return apperrors.Persistence(err, "failed to update vehicle %d", id)
	}
	if result.MatchedCount == 0 {
		return apperrors.NotFound("vehicle %d not found", id)
	}

	return nil
}
