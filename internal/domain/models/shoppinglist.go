package models

// ShoppingListItem is one aggregated line of a shopping list. The
// reconciliation fields are only populated after the list has been checked
// against pantry inventory; reconciliation annotates, it never removes items.
type ShoppingListItem struct {
	ID      string   `bson:"id" json:"id"`
	Name    string   `bson:"name" json:"name"`
	Amount  float64  `bson:"amount" json:"amount"`
	Unit    string   `bson:"unit,omitempty" json:"unit,omitempty"`
	Aisle   string   `bson:"aisle" json:"aisle"`
	Recipes []string `bson:"recipes" json:"recipes"` // titles that contributed
	Checked bool     `bson:"checked" json:"checked"`

	// Reconciliation annotations.
	OnHand             bool     `bson:"on_hand,omitempty" json:"onHand,omitempty"`
	OnHandNote         string   `bson:"on_hand_note,omitempty" json:"onHandNote,omitempty"`
	OnHandAmount       *float64 `bson:"on_hand_amount,omitempty" json:"onHandAmount,omitempty"`
	OnHandUnit         string   `bson:"on_hand_unit,omitempty" json:"onHandUnit,omitempty"`
	CoveredByInventory bool     `bson:"covered_by_inventory,omitempty" json:"coveredByInventory,omitempty"`
	OriginalAmount     *float64 `bson:"original_amount,omitempty" json:"originalAmount,omitempty"`
	AdjustedAmount     *float64 `bson:"adjusted_amount,omitempty" json:"adjustedAmount,omitempty"`
}
