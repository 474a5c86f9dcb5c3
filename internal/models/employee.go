package models

import "time"

type Employee struct {
	ID        int64     `bson:"_id" json:"id"`
	FirstName string    `bson:"first_name" json:"firstName" validate:"required"`
	LastName  string    `bson:"last_name" json:"lastName" validate:"required"`
	Role      string    `bson:"role" json:"role"`
	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
