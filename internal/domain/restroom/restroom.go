package restroom

import (
	"fmt"

	"github.com/google/uuid"
)

// PaymentType indicates whether a restroom charges a fee.
type PaymentType string

const (
	PaymentFree PaymentType = "Free"
	PaymentPaid PaymentType = "Paid"
)

// IsValid returns true if the payment type is recognized.
func (p PaymentType) IsValid() bool {
	return p == PaymentFree || p == PaymentPaid
}

// Type classifies who operates the restroom.
type Type string

const (
	TypePublic  Type = "Public"
	TypePrivate Type = "Private"
)

// IsValid returns true if the restroom type is recognized.
func (t Type) IsValid() bool {
	return t == TypePublic || t == TypePrivate
}

// AccessibilityFeatures is the fixed vocabulary of feature tags.
var AccessibilityFeatures = []string{
	"Wheelchair Accessible",
	"Hand Dryer",
	"Paper Towels",
	"Soap Available",
	"Tabo",
	"Bidet",
}

// GenderOptions is the fixed vocabulary of gender-access tags.
var GenderOptions = []string{
	"Male",
	"Female",
	"Gender-Neutral",
	"All-Gender",
	"Unisex",
}

// Position is a geographic coordinate in [lat,lng] convention.
type Position struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Restroom is the catalog record. Identity is immutable once assigned;
// Distance is derived from the current user location and may be absent.
type Restroom struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Position    Position    `json:"position"`
	Cleanliness int         `json:"cleanliness"`
	Features    []string    `json:"features"`
	PaymentType PaymentType `json:"payment_type"`
	Type        Type        `json:"type"`
	Gender      []string    `json:"gender"`
	Distance    *float64    `json:"distance_km,omitempty"`
}

// Draft holds the caller-supplied fields for a new restroom; the catalog
// assigns the id and leaves the distance unset.
type Draft struct {
	Name        string      `json:"name" binding:"required"`
	Position    Position    `json:"position" binding:"required"`
	Cleanliness int         `json:"cleanliness" binding:"required"`
	Features    []string    `json:"features"`
	PaymentType PaymentType `json:"payment_type" binding:"required"`
	Type        Type        `json:"type" binding:"required"`
	Gender      []string    `json:"gender" binding:"required"`
}

// Validate checks a draft against the creation-form rules. The catalog
// itself trusts its caller; validation belongs to the intake surface.
func (d Draft) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("name is required")
	}
	if d.Position.Lat < -90 || d.Position.Lat > 90 {
		return fmt.Errorf("latitude out of range: %v", d.Position.Lat)
	}
	if d.Position.Lng < -180 || d.Position.Lng > 180 {
		return fmt.Errorf("longitude out of range: %v", d.Position.Lng)
	}
	if d.Cleanliness < 1 || d.Cleanliness > 5 {
		return fmt.Errorf("cleanliness must be between 1 and 5")
	}
	if !d.PaymentType.IsValid() {
		return fmt.Errorf("invalid payment type: %s", d.PaymentType)
	}
	if !d.Type.IsValid() {
		return fmt.Errorf("invalid restroom type: %s", d.Type)
	}
	if len(d.Gender) == 0 {
		return fmt.Errorf("at least one gender option must be selected")
	}
	return nil
}
