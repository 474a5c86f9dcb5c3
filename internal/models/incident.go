package models

import "time"

type IncidentType string

const (
	IncidentTypeFine   IncidentType = "FINE"
	IncidentTypeDamage IncidentType = "DAMAGE"
	IncidentTypeOther  IncidentType = "OTHER"
)

func ValidIncidentType(t IncidentType) bool {
	switch t {
	case IncidentTypeFine, IncidentTypeDamage, IncidentTypeOther:
		return true
	}
	return false
}

type IncidentStatus string

const (
	IncidentStatusPending IncidentStatus = "PENDING"
	IncidentStatusPaid    IncidentStatus = "PAID"
)

// Incident is a billable event (fine, damage, other) attached to a rental.
// It never affects conflict detection; it only feeds billing reports.
type Incident struct {
	ID          int64          `bson:"_id" json:"id"`
	RentalID    int64          `bson:"rental_id" json:"rentalId"`
	Type        IncidentType   `bson:"type" json:"type"`
	Description string         `bson:"description" json:"description"`
	Amount      float64        `bson:"amount" json:"amount"`
	Status      IncidentStatus `bson:"status" json:"status"`
	CreatedAt   time.Time      `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time      `bson:"updated_at" json:"updatedAt"`
}
