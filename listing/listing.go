package listing

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Condition is the new/used state of a vehicle.
type Condition string

const (
	ConditionNew  Condition = "new"
	ConditionUsed Condition = "used"
)

// Valid reports whether c is one of the two known conditions.
func (c Condition) Valid() bool {
	return c == ConditionNew || c == ConditionUsed
}

// Label is the badge text shown on cards.
func (c Condition) Label() string {
	switch c {
	case ConditionNew:
		return "NEW"
	case ConditionUsed:
		return "USED"
	default:
		return ""
	}
}

// Listing is one vehicle record in the catalog. Listings are read-only snapshots
// on the browsing side; only the store creates them.
type Listing struct {
	ID            string    `json:"id" db:"id"`
	Make          string    `json:"make" db:"make"`
	Model         string    `json:"model" db:"model"`
	Year          int       `json:"year" db:"year"`
	Price         float64   `json:"price" db:"price"`
	Mileage       int       `json:"mileage" db:"mileage"`
	Condition     Condition `json:"condition" db:"condition"`
	Transmission  string    `json:"transmission" db:"transmission"`
	FuelType      string    `json:"fuel_type" db:"fuel_type"`
	BodyType      string    `json:"body_type" db:"body_type"`
	ExteriorColor string    `json:"exterior_color" db:"exterior_color"`
	InteriorColor string    `json:"interior_color" db:"interior_color"`
	Description   string    `json:"description" db:"description"`
	Features      []string  `json:"features" db:"features"`
	ImageURL      string    `json:"image_url" db:"image_url"`
	Location      string    `json:"location" db:"location"`
	VIN           *string   `json:"vin,omitempty" db:"vin"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

var (
	ErrNotFound         = errors.New("listing not found")
	ErrInvalidCondition = errors.New("condition must be new or used")
)

// Title is the "year make model" heading used on cards and the detail panel.
func (l Listing) Title() string {
	return fmt.Sprintf("%d %s %s", l.Year, l.Make, l.Model)
}

// Validate checks the invariants the store enforces on insert.
func (l Listing) Validate() error {
	if l.Make == "" {
		return errors.New("make is required")
	}
	if l.Model == "" {
		return errors.New("model is required")
	}
	if !l.Condition.Valid() {
		return fmt.Errorf("%w: got %q", ErrInvalidCondition, l.Condition)
	}
	if l.Price < 0 {
		return fmt.Errorf("price must be non-negative, got %v", l.Price)
	}
	if l.Mileage < 0 {
		return fmt.Errorf("mileage must be non-negative, got %d", l.Mileage)
	}
	for _, f := range l.Features {
		if strings.TrimSpace(f) == "" {
			return errors.New("features must not be blank")
		}
		if strings.Contains(f, featureSeparator) {
			return fmt.Errorf("feature %q must not contain %q", f, featureSeparator)
		}
	}
	return nil
}
