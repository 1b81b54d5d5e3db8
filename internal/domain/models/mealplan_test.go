package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreferencesNormalize(t *testing.T) {
	var p Preferences
	p.Normalize()
	assert.Equal(t, 5, p.MealsPerWeek)
	assert.Equal(t, 1, p.MealSlots)

	p = Preferences{MealsPerWeek: 7, MealSlots: 3, MaxPrepTimeMinutes: -10}
	p.Normalize()
	assert.Equal(t, 7, p.MealsPerWeek)
	assert.Equal(t, 3, p.MealSlots)
	assert.Zero(t, p.MaxPrepTimeMinutes)
}

func TestActiveSlots(t *testing.T) {
	assert.Equal(t, []string{SlotDinner}, Preferences{MealSlots: 1}.ActiveSlots())
	assert.Equal(t, []string{SlotLunch, SlotDinner}, Preferences{MealSlots: 2}.ActiveSlots())
	assert.Equal(t, []string{SlotBreakfast, SlotLunch, SlotDinner}, Preferences{MealSlots: 3}.ActiveSlots())
	assert.Equal(t, []string{SlotDinner}, Preferences{}.ActiveSlots())
}

func TestEligibleForSlot(t *testing.T) {
	untagged := &Recipe{ID: 1}
	assert.True(t, untagged.EligibleForSlot(SlotDinner))
	assert.False(t, untagged.EligibleForSlot(SlotLunch))

	tagged := &Recipe{ID: 2, MealTypes: []string{"breakfast", "lunch"}}
	assert.True(t, tagged.EligibleForSlot(SlotBreakfast))
	assert.True(t, tagged.EligibleForSlot(SlotLunch))
	assert.False(t, tagged.EligibleForSlot(SlotDinner))
}

func TestCalories(t *testing.T) {
	r := &Recipe{Nutrition: &Nutrition{Nutrients: []Nutrient{
		{Name: "Protein", Amount: 30, Unit: "g"},
		{Name: "Calories", Amount: 420, Unit: "kcal"},
	}}}
	assert.Equal(t, 420.0, r.Calories())

	assert.Zero(t, (&Recipe{}).Calories())
}

func TestValidSection(t *testing.T) {
	assert.True(t, ValidSection(SectionFridge))
	assert.True(t, ValidSection(SectionSpices))
	assert.False(t, ValidSection(Section("garage")))
}
