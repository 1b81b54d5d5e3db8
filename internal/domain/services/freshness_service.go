package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/mealwise/mws/internal/domain/models"
)

// FreshnessService estimates shelf life for pantry items and classifies their
// freshness. All date arithmetic is date-only; time of day never matters.
type FreshnessService interface {
	// EstimateExpiration returns purchased + shelf-life for a known food name,
	// or nil when the name has no table match.
	EstimateExpiration(name string, purchased time.Time) *time.Time
	// SuggestSection returns the storage section for a food name, defaulting
	// to the pantry for unknown names.
	SuggestSection(name string) models.Section
	// Status classifies an item as fresh, expiring-soon, expired, or unknown.
	Status(item *models.InventoryItem) models.FreshnessStatus
	// FormatRelativeDate renders a date relative to today ("tomorrow",
	// "in 3 days", ...), falling back to an absolute date far out.
	FormatRelativeDate(date time.Time) string
}

type freshnessService struct {
	// now is split out so tests can pin the clock.
	now func() time.Time
}

// NewFreshnessService creates a FreshnessService using the wall clock.
func NewFreshnessService() FreshnessService {
	return &freshnessService{now: time.Now}
}

// expiringSoonWindowDays is the inclusive look-ahead for "expiring-soon".
const expiringSoonWindowDays = 3

// lookupShelfLife resolves a food name against the shelf-life table using
// three tiers: exact match, table key contained in the name, then name
// contained in a table key. First match wins within each tier.
func lookupShelfLife(name string) *shelfLifeEntry {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return nil
	}
	for i := range shelfLifeTable {
		if shelfLifeTable[i].name == lower {
			return &shelfLifeTable[i]
		}
	}
	for i := range shelfLifeTable {
		if strings.Contains(lower, shelfLifeTable[i].name) {
			return &shelfLifeTable[i]
		}
	}
	for i := range shelfLifeTable {
		if strings.Contains(shelfLifeTable[i].name, lower) {
			return &shelfLifeTable[i]
		}
	}
	return nil
}

func (s *freshnessService) EstimateExpiration(name string, purchased time.Time) *time.Time {
	entry := lookupShelfLife(name)
	if entry == nil || purchased.IsZero() {
		return nil
	}
	exp := truncateToDay(purchased).AddDate(0, 0, entry.days)
	return &exp
}

func (s *freshnessService) SuggestSection(name string) models.Section {
	if entry := lookupShelfLife(name); entry != nil {
		return entry.section
	}
	return models.SectionPantry
}

func (s *freshnessService) Status(item *models.InventoryItem) models.FreshnessStatus {
	if item == nil || item.ExpirationDate == nil {
		return models.FreshnessUnknown
	}
	diff := daysBetween(truncateToDay(s.now()), truncateToDay(*item.ExpirationDate))
	switch {
	case diff < 0:
		return models.FreshnessExpired
	case diff <= expiringSoonWindowDays:
		return models.FreshnessExpiringSoon
	default:
		return models.FreshnessFresh
	}
}

func (s *freshnessService) FormatRelativeDate(date time.Time) string {
	if date.IsZero() {
		return "Unknown"
	}
	diff := daysBetween(truncateToDay(s.now()), truncateToDay(date))
	switch {
	case diff < -1:
		return fmt.Sprintf("%d days ago", -diff)
	case diff == -1:
		return "yesterday"
	case diff == 0:
		return "today"
	case diff == 1:
		return "tomorrow"
	case diff <= 7:
		return fmt.Sprintf("in %d days", diff)
	case diff <= 14:
		return "in about a week"
	case diff <= 30:
		return fmt.Sprintf("in %d weeks", (diff+3)/7)
	default:
		return date.Format("1/2/2006")
	}
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
