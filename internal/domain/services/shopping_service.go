package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/mealwise/mws/internal/domain/models"
)

// ShoppingService folds recipes into a consolidated shopping list and
// reconciles that list against on-hand pantry inventory.
type ShoppingService interface {
	// Generate aggregates the ingredients of the given meals into a
	// deduplicated list, grouped and sorted by aisle.
	Generate(meals []*models.Recipe) []models.ShoppingListItem
	// Reconcile annotates the list with pantry coverage. It never removes
	// items; hiding covered items is the caller's decision.
	Reconcile(items []models.ShoppingListItem, inventory []*models.InventoryItem) []models.ShoppingListItem
}

type shoppingService struct{}

// NewShoppingService creates a ShoppingService.
func NewShoppingService() ShoppingService {
	return &shoppingService{}
}

const defaultAisle = "Other"

func (s *shoppingService) Generate(meals []*models.Recipe) []models.ShoppingListItem {
	byName := make(map[string]*models.ShoppingListItem)
	var order []string

	for _, meal := range meals {
		if meal == nil {
			continue
		}
		for _, ing := range meal.ExtendedIngredients {
			key := strings.ToLower(ing.Name)
			if key == "" {
				continue
			}
			if existing, ok := byName[key]; ok {
				// Amounts combine only when the unit strings match exactly.
				// A mismatched unit keeps the stored amount untouched but the
				// contributing recipe is still credited.
				if existing.Unit == ing.Unit {
					existing.Amount += ing.Amount
				}
				existing.Recipes = append(existing.Recipes, meal.Title)
				continue
			}
			aisle := ing.Aisle
			if aisle == "" {
				aisle = defaultAisle
			}
			id := uuid.NewString()
			if ing.ID != 0 {
				id = fmt.Sprintf("%d", ing.ID)
			}
			byName[key] = &models.ShoppingListItem{
				ID:      id,
				Name:    ing.Name,
				Amount:  ing.Amount,
				Unit:    ing.Unit,
				Aisle:   aisle,
				Recipes: []string{meal.Title},
				Checked: false,
			}
			order = append(order, key)
		}
	}

	items := make([]models.ShoppingListItem, 0, len(order))
	for _, key := range order {
		items = append(items, *byName[key])
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Aisle != items[j].Aisle {
			return items[i].Aisle < items[j].Aisle
		}
		return items[i].Name < items[j].Name
	})
	return items
}

// unitAliases normalizes common unit spellings for inventory comparison. This
// is an alias table, not a measurement converter: "cup" and "cups" compare
// equal, "cup" and "g" never do.
var unitAliases = map[string]string{
	"lb": "lbs", "pound": "lbs", "pounds": "lbs",
	"oz": "oz", "ounce": "oz", "ounces": "oz",
	"cup": "cups", "c": "cups",
	"tbsp": "tbsp", "tablespoon": "tbsp", "tablespoons": "tbsp",
	"tsp": "tsp", "teaspoon": "tsp", "teaspoons": "tsp",
	"clove": "cloves",
	"piece": "count", "pieces": "count", "count": "count",
	"can": "cans", "jar": "jars",
}

func normalizeUnit(unit string) string {
	lower := strings.ToLower(strings.TrimSpace(unit))
	if lower == "" {
		return ""
	}
	if norm, ok := unitAliases[lower]; ok {
		return norm
	}
	return lower
}

func (s *shoppingService) Reconcile(items []models.ShoppingListItem, inventory []*models.InventoryItem) []models.ShoppingListItem {
	out := make([]models.ShoppingListItem, len(items))
	for i, item := range items {
		out[i] = s.reconcileItem(item, inventory)
	}
	return out
}

func (s *shoppingService) reconcileItem(item models.ShoppingListItem, inventory []*models.InventoryItem) models.ShoppingListItem {
	itemName := strings.ToLower(item.Name)

	// First match in inventory order wins; no best-match ranking.
	var match *models.InventoryItem
	for _, inv := range inventory {
		if inv == nil {
			continue
		}
		invName := strings.ToLower(inv.Name)
		if invName == itemName || strings.Contains(invName, itemName) || strings.Contains(itemName, invName) {
			match = inv
			break
		}
	}
	if match == nil {
		return item
	}

	label := match.DisplayName
	if label == "" {
		label = match.Name
	}

	// Quantity on hand unknown: flag it, nothing to subtract.
	if match.Amount == nil {
		item.OnHand = true
		item.OnHandNote = fmt.Sprintf("You may have %s in your pantry", label)
		return item
	}

	itemUnit := normalizeUnit(item.Unit)
	invUnit := normalizeUnit(match.Unit)
	if itemUnit != "" && invUnit != "" && itemUnit != invUnit {
		item.OnHand = true
		item.OnHandNote = fmt.Sprintf("You have %v %s of %s", *match.Amount, match.Unit, label)
		return item
	}

	if item.Amount > 0 && *match.Amount > 0 {
		needed := item.Amount
		onHand := *match.Amount
		adjusted := needed - onHand

		item.OnHand = true
		item.OriginalAmount = &needed
		if adjusted <= 0 {
			zero := 0.0
			item.CoveredByInventory = true
			item.AdjustedAmount = &zero
			return item
		}
		item.AdjustedAmount = &adjusted
		item.OnHandAmount = &onHand
		item.OnHandUnit = match.Unit
		return item
	}

	item.OnHand = true
	item.OnHandNote = fmt.Sprintf("You have some %s on hand", label)
	return item
}
