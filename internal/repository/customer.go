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

type CustomerRepository struct {
	collection *mongo.Collection
	sequences  *SequenceRepository
}

func NewCustomerRepository(db *mongo.Database, sequences *SequenceRepository) *CustomerRepository {
	return &CustomerRepository{
		collection: db.Collection("customers"),
		sequences:  sequences,
	}
}

func (r *CustomerRepository) Create(customer *models.Customer) (*models.Customer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := r.sequences.NextID("customers")
	if err != nil {
		return nil, err
	}
	customer.ID = id

	if _, err := r.collection.InsertOne(ctx, customer); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.Persistence(err, "document id %s already registered", customer.DocumentID)
		}
		return nil, apperrors.Persistence(err, "failed to create customer")
	}

	return customer, nil
}

func (r *CustomerRepository) FindByID(id int64) (*models.Customer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var customer models.Customer
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&customer)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("customer %d not found", id)
		}
		return nil, apperrors.Persistence(err, "failed to load customer %d", id)
	}

	return &customer, nil
}

func (r *CustomerRepository) FindAll() ([]*models.Customer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, apperrors.Persistence(err, "failed to list customers")
	}
	defer cursor.Close(ctx)

	var customers []*models.Customer
	for cursor.Next(ctx) {
		var customer models.Customer
		if err := cursor.Decode(&customer); err != nil {
			return nil, apperrors.Persistence(err, "failed to decode customer")
		}
		customers = append(customers, &customer)
	}

	return customers, nil
}

func (r *CustomerRepository) Update(customer *models.Customer) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	customer.UpdatedAt = time.Now()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": customer.ID}, customer)
	if err != nil {
		return apperrors.Persistence(err, "failed to update customer %d", customer.ID)
	}
	if result.MatchedCount == 0 {
		return apperrors.NotFound("customer %d not found", customer.ID)
	}

	return nil
}

func (r *CustomerRepository) SetActive(id int64, active bool) error {
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
		return apperrors.Persistence(err, "failed to update customer %d", id)
	}
	if result.MatchedCount == 0 {
		return apperrors.NotFound("customer %d not found", id)
	}

	return nil
}
