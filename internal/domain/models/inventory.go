package models

import "time"

// Section is a pantry storage section.
type Section string

const (
	SectionFridge  Section = "fridge"
	SectionPantry  Section = "pantry"
	SectionFreezer Section = "freezer"
	SectionSpices  Section = "spices"
)

// ValidSection reports whether s is one of the known storage sections.
func ValidSection(s Section) bool {
	switch s {
	case SectionFridge, SectionPantry, SectionFreezer, SectionSpices:
		return true
	}
	return false
}

// InventoryItem is a single on-hand pantry item. Items are independent of each
// other; the only cross-item invariant is id uniqueness.
type InventoryItem struct {
	ID          string  `bson:"_id,omitempty" json:"id"`
	UserID      string  `bson:"user_id" json:"-"`
	Name        string  `bson:"name" json:"name"` // lowercase canonical
	DisplayName string  `bson:"display_name,omitempty" json:"displayName,omitempty"`
	Section     Section `bson:"section" json:"section"`
	FoodGroup   string  `bson:"food_group,omitempty" json:"foodGroup,omitempty"`
	// Amount is nil when the quantity on hand is unknown.
	Amount              *float64   `bson:"amount,omitempty" json:"amount"`
	Unit                string     `bson:"unit,omitempty" json:"unit,omitempty"`
	ExpirationDate      *time.Time `bson:"expiration_date,omitempty" json:"expirationDate,omitempty"`
	PurchasedDate       *time.Time `bson:"purchased_date,omitempty" json:"purchasedDate,omitempty"`
	ExpirationEstimated bool       `bson:"expiration_estimated" json:"expirationEstimated"`
	CreatedAt           time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt           time.Time  `bson:"updated_at" json:"updatedAt"`
}

// FreshnessStatus classifies an item relative to its expiration date.
type FreshnessStatus string

const (
	FreshnessFresh        FreshnessStatus = "fresh"
	FreshnessExpiringSoon FreshnessStatus = "expiring-soon"
	FreshnessExpired      FreshnessStatus = "expired"
	FreshnessUnknown      FreshnessStatus = "unknown"
)
