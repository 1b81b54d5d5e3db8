package services

import (
	"testing"

	"github.com/mealwise/mws/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainRecipe(id, readyInMinutes int) *models.Recipe {
	return &models.Recipe{ID: id, Title: "r", ReadyInMinutes: readyInMinutes}
}

func TestArrangeSlotAvoidsConsecutiveRepeats(t *testing.T) {
	selected := []*models.Recipe{plainRecipe(1, 20), plainRecipe(2, 20), plainRecipe(3, 20)}

	arranged := ArrangeSlot(selected, 7)
	require.Len(t, arranged, 7)
	for i := 1; i < len(arranged); i++ {
		assert.NotEqual(t, arranged[i-1].ID, arranged[i].ID, "day %d repeats day %d", i, i-1)
	}
}

func TestArrangeSlotSingleRecipeRepeats(t *testing.T) {
	arranged := ArrangeSlot([]*models.Recipe{plainRecipe(1, 20)}, 4)
	require.Len(t, arranged, 4)
	for _, r := range arranged {
		assert.Equal(t, 1, r.ID)
	}
}

func TestArrangeSlotEmptySelection(t *testing.T) {
	arranged := ArrangeSlot(nil, 3)
	require.Len(t, arranged, 3)
	for _, r := range arranged {
		assert.Nil(t, r)
	}
}

func TestArrangeSlotSpreadsRepeats(t *testing.T) {
	// Two recipes over five days alternate rather than clumping.
	arranged := ArrangeSlot([]*models.Recipe{plainRecipe(1, 20), plainRecipe(2, 20)}, 5)
	ids := make([]int, len(arranged))
	for i, r := range arranged {
		ids[i] = r.ID
	}
	assert.Equal(t, []int{1, 2, 1, 2, 1}, ids)
}

func TestBuildScheduleDayCountCapped(t *testing.T) {
	selected := map[string][]*models.Recipe{
		models.SlotDinner: {plainRecipe(1, 20), plainRecipe(2, 20)},
	}

	schedule := BuildSchedule(selected, 10, []string{models.SlotDinner})
	require.Len(t, schedule, 7)
	assert.Equal(t, "Monday", schedule[0].Day)
	assert.Equal(t, "Sunday", schedule[6].Day)
}

func TestBuildSchedulePrepDay(t *testing.T) {
	selected := map[string][]*models.Recipe{
		models.SlotDinner: {plainRecipe(1, 45), plainRecipe(2, 20)},
	}

	schedule := BuildSchedule(selected, 2, []string{models.SlotDinner})
	require.Len(t, schedule, 2)

	first := schedule[0].Slots[models.SlotDinner]
	require.NotNil(t, first.Meal)
	assert.Equal(t, 1, first.Meal.ID)
	assert.Equal(t, "Monday", first.PrepDay)

	second := schedule[1].Slots[models.SlotDinner]
	require.NotNil(t, second.Meal)
	assert.Empty(t, second.PrepDay)
}

func TestBuildScheduleMultiSlot(t *testing.T) {
	selected := map[string][]*models.Recipe{
		models.SlotLunch:  {plainRecipe(1, 20), plainRecipe(2, 20)},
		models.SlotDinner: {plainRecipe(3, 20), plainRecipe(4, 20)},
	}
	slots := []string{models.SlotLunch, models.SlotDinner}

	schedule := BuildSchedule(selected, 3, slots)
	require.Len(t, schedule, 3)
	for _, day := range schedule {
		assert.Len(t, day.Slots, 2)
		assert.NotNil(t, day.Slots[models.SlotLunch].Meal)
		assert.NotNil(t, day.Slots[models.SlotDinner].Meal)
	}
}
