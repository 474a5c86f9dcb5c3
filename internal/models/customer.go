package models

import "time"

type Customer struct {
	ID         int64     `bson:"_id" json:"id"`
	FirstName  string    `bson:"first_name" json:"firstName" validate:"required"`
	LastName   string    `bson:"last_name" json:"lastName" validate:"required"`
	DocumentID string    `bson:"document_id" json:"documentId" validate:"required"`
	Email      string    `bson:"email" json:"email" validate:"omitempty,email"`
	Phone      string    `bson:"phone" json:"phone"`
	Active     bool      `bson:"active" json:"active"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updatedAt"`
}
