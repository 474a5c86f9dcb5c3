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

type EmployeeRepository struct {
	collection *mongo.Collection
	sequences  *SequenceRepository
}

func NewEmployeeRepository(db *mongo.Database, sequences *SequenceRepository) *EmployeeRepository {
	return &EmployeeRepository{
		collection: db.Collection("employees"),
		sequences:  sequences,
	}
}

func (r *EmployeeRepository) Create(employee *models.Employee) (*models.Employee, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := r.sequences.NextID("employees")
	if err != nil {
		return nil, err
	}
	employee.ID = id

	if _, err := r.collection.InsertOne(ctx, employee); err != nil {
		return nil, apperrors.Persistence(err, "failed to create employee")
	}

	return employee, nil
}

func (r *EmployeeRepository) FindByID(id int64) (*models.Employee, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var employee models.Employee
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&employee)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("employee %d not found", id)
		}
		return nil, apperrors.Persistence(err, "failed to load employee %d", id)
	}

	return &employee, nil
}

func (r *EmployeeRepository) FindAll() ([]*models.Employee, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, apperrors.Persistence(err, "failed to list employees")
	}
	defer cursor.Close(ctx)

	var employees []*models.Employee
	for cursor.Next(ctx) {
		var employee models.Employee
		if err := cursor.Decode(&employee); err != nil {
			return nil, apperrors.Persistence(err, "failed to decode employee")
		}
		employees = append(employees, &employee)
	}

	return employees, nil
}

func (r *EmployeeRepository) Update(employee *models.Employee) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	employee.UpdatedAt = time.Now()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": employee.ID}, employee)
	if err != nil {
		return apperrors.Persistence(err, "failed to update employee %d", employee.ID)
	}
	if result.MatchedCount == 0 {
		return apperrors.NotFound("employee %d not found", employee.ID)
	}

	return nil
}

func (r *EmployeeRepository) SetActive(id int64, active bool) error {
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
		return apperrors.Persistence(err, "failed to update employee %d", id)
	}
	if result.MatchedCount == 0 {
		return apperrors.NotFound("employee %d not found", id)
	}

	return nil
}
