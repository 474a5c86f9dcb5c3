package repository

import (
	"context"
	"time"

	"rental-backend/internal/apperrors"
	"rental-backend/internal/models"
	"rental-backend/pkg/dates"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RentalRepository struct {
	collection *mongo.Collection
	sequences  *SequenceRepository
}

func NewRentalRepository(db *mongo.Database, sequences *SequenceRepository) *RentalRepository {
	return &RentalRepository{
		collection: db.Collection("rentals"),
		sequences:  sequences,
	}
}

// Create inserts a new rental. The partial unique index on
// {vehicle_id, status: OPEN} backs the one-open-rental-per-vehicle
// invariant at the storage layer; a duplicate-key rejection here means a
// concurrent writer won the race and nothing was committed.
func (r *RentalRepository) Create(rental *models.Rental) (*models.Rental, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := r.sequences.NextID("rentals")
	if err != nil {
		return nil, err
	}
	rental.ID = id

	if _, err := r.collection.InsertOne(ctx, rental); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.Persistence(err, "vehicle %d already has an open rental", rental.VehicleID)
		}
		return nil, apperrors.Persistence(err, "failed to create rental")
	}

	return rental, nil
}

func (r *RentalRepository) FindByID(id int64) (*models.Rental, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var rental models.Rental
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&rental)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("rental %d not found", id)
		}
		return nil, apperrors.Persistence(err, "failed to load rental %d", id)
	}

	return &rental, nil
}

func (r *RentalRepository) FindOpenByVehicle(vehicleID int64) ([]*models.Rental, error) {
	filter := bson.M{
		"vehicle_id": vehicleID,
		"status":     models.RentalStatusOpen,
	}
	return r.find(filter)
}

func (r *RentalRepository) FindByVehicle(vehicleID int64) ([]*models.Rental, error) {
	return r.find(bson.M{"vehicle_id": vehicleID})
}

func (r *RentalRepository) FindByCustomer(customerID int64) ([]*models.Rental, error) {
	return r.find(bson.M{"customer_id": customerID})
}

func (r *RentalRepository) FindAll() ([]*models.Rental, error) {
	return r.find(bson.M{})
}

// FindStartedBetween returns rentals whose start date falls inside the
// inclusive range [from, to]. Dates are stored as "2006-01-02" strings, so
// lexicographic comparison matches chronological order.
func (r *RentalRepository) FindStartedBetween(from, to dates.Date) ([]*models.Rental, error) {
	filter := bson.M{
		"start_date": bson.M{
			"$gte": from.String(),
			"$lte": to.String(),
		},
	}
	return r.find(filter)
}

func (r *RentalRepository) find(filter bson.M) ([]*models.Rental, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperrors.Persistence(err, "failed to list rentals")
	}
	defer cursor.Close(ctx)

	var rentals []*models.Rental
	for cursor.Next(ctx) {
		var rental models.Rental
		if err := cursor.Decode(&rental); err != nil {
			return nil, apperrors.Persistence(err, "failed to decode rental")
		}
		rentals = append(rentals, &rental)
	}

	return rentals, nil
}

func (r *RentalRepository) Update(rental *models.Rental) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rental.UpdatedAt = time.Now()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": rental.ID}, rental)
	if err != nil {
		return apperrors.Persistence(err, "failed to update rental %d", rental.ID)
	}
	if result.MatchedCount == 0 {
		return apperrors.NotFound("rental %d not found", rental.ID)
	}

	return nil
}
