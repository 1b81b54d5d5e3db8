package services

import (
	"testing"
	"time"

	"github.com/mealwise/mws/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) *freshnessService {
	return &freshnessService{now: func() time.Time { return t }}
}

var testNow = time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

func daysFromNow(days int) *time.Time {
	d := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC).AddDate(0, 0, days)
	return &d
}

func TestStatusBoundaries(t *testing.T) {
	svc := fixedClock(testNow)

	tests := []struct {
		name string
		item *models.InventoryItem
		want models.FreshnessStatus
	}{
		{"no expiration date", &models.InventoryItem{}, models.FreshnessUnknown},
		{"nil item", nil, models.FreshnessUnknown},
		{"expired yesterday", &models.InventoryItem{ExpirationDate: daysFromNow(-1)}, models.FreshnessExpired},
		{"expires today", &models.InventoryItem{ExpirationDate: daysFromNow(0)}, models.FreshnessExpiringSoon},
		{"expires in three days", &models.InventoryItem{ExpirationDate: daysFromNow(3)}, models.FreshnessExpiringSoon},
		{"expires in four days", &models.InventoryItem{ExpirationDate: daysFromNow(4)}, models.FreshnessFresh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.Status(tt.item))
		})
	}
}

func TestStatusIgnoresTimeOfDay(t *testing.T) {
	svc := fixedClock(time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC))

	// Expiring at 00:01 today is still "today", not expired.
	exp := time.Date(2025, 6, 15, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, models.FreshnessExpiringSoon, svc.Status(&models.InventoryItem{ExpirationDate: &exp}))
}

func TestEstimateExpiration(t *testing.T) {
	svc := fixedClock(testNow)

	purchased := time.Date(2025, 6, 10, 18, 0, 0, 0, time.UTC)

	exp := svc.EstimateExpiration("chicken breast", purchased)
	require.NotNil(t, exp)
	assert.Equal(t, time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC), *exp)

	assert.Nil(t, svc.EstimateExpiration("unobtanium", purchased))
	assert.Nil(t, svc.EstimateExpiration("", purchased))
}

func TestShelfLifeNameMatching(t *testing.T) {
	// Exact match.
	entry := lookupShelfLife("lettuce")
	require.NotNil(t, entry)
	assert.Equal(t, 7, entry.days)

	// Table key contained in the queried name.
	entry = lookupShelfLife("boneless chicken breast fillets")
	require.NotNil(t, entry)
	assert.Equal(t, "chicken breast", entry.name)

	// Queried name contained in a table key.
	entry = lookupShelfLife("greens")
	require.NotNil(t, entry)

	// Case and whitespace insensitive.
	entry = lookupShelfLife("  Lettuce ")
	require.NotNil(t, entry)
	assert.Equal(t, "lettuce", entry.name)

	assert.Nil(t, lookupShelfLife("unobtanium"))
}

func TestSuggestSection(t *testing.T) {
	svc := NewFreshnessService()

	assert.Equal(t, models.SectionFridge, svc.SuggestSection("lettuce"))
	assert.Equal(t, models.SectionPantry, svc.SuggestSection("unobtanium"))
}

func TestFormatRelativeDate(t *testing.T) {
	svc := fixedClock(testNow)

	tests := []struct {
		days int
		want string
	}{
		{-3, "3 days ago"},
		{-1, "yesterday"},
		{0, "today"},
		{1, "tomorrow"},
		{5, "in 5 days"},
		{10, "in about a week"},
		{20, "in 3 weeks"},
		{28, "in 4 weeks"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, svc.FormatRelativeDate(*daysFromNow(tt.days)), "days=%d", tt.days)
	}

	// Far out dates render as an absolute date.
	far := daysFromNow(60)
	assert.Equal(t, far.Format("1/2/2006"), svc.FormatRelativeDate(*far))

	assert.Equal(t, "Unknown", svc.FormatRelativeDate(time.Time{}))
}
