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

type MaintenanceRepository struct {
	collection *mongo.Collection
	sequences  *SequenceRepository
}

func NewMaintenanceRepository(db *mongo.Database, sequences *SequenceRepository) *MaintenanceRepository {
	return &MaintenanceRepository{
		collection: db.Collection("maintenance_windows"),
		sequences:  sequences,
	}
}

func (r *MaintenanceRepository) Create(window *models.MaintenanceWindow) (*models.MaintenanceWindow, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := r.sequences.NextID("maintenance_windows")
	if err != nil {
		return nil, err
	}
	window.ID = id

	if _, err := r.collection.InsertOne(ctx, window); err != nil {
		return nil, apperrors.Persistence(err, "failed to create maintenance window")
	}

	return window, nil
}

func (r *MaintenanceRepository) FindByID(id int64) (*models.MaintenanceWindow, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var window models.MaintenanceWindow
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&window)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("maintenance window %d not found", id)
		}
		return nil, apperrors.Persistence(err, "failed to load maintenance window %d", id)
	}

	return &window, nil
}

func (r *MaintenanceRepository) FindByVehicle(vehicleID int64) ([]*models.MaintenanceWindow, error) {
	return r.find(bson.M{"vehicle_id": vehicleID})
}

func (r *MaintenanceRepository) FindAll() ([]*models.MaintenanceWindow, error) {
	return r.find(bson.M{})
}

func (r *MaintenanceRepository) find(filter bson.M) ([]*models.MaintenanceWindow, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperrors.Persistence(err, "failed to list maintenance windows")
	}
	defer cursor.Close(ctx)

	var windows []*models.MaintenanceWindow
	for cursor.Next(ctx) {
		var window models.MaintenanceWindow
		if err := cursor.Decode(&window); err != nil {
			return nil, apperrors.Persistence(err, "failed to decode maintenance window")
		}
		windows = append(windows, &window)
	}

	return windows, nil
}

func (r *MaintenanceRepository) Delete(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperrors.Persistence(err, "failed to delete maintenance window %d", id)
	}
	if result.DeletedCount == 0 {
		return apperrors.NotFound("maintenance window %d not found", id)
	}

	return nil
}
