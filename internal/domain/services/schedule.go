package services

import "github.com/mealwise/mws/internal/domain/models"

// prepAheadThresholdMinutes marks meals worth prepping on their scheduled day.
const prepAheadThresholdMinutes = 40

// ArrangeSlot spreads the selected recipes for one slot across dayCount days,
// avoiding the same recipe on consecutive days where possible. The rotation
// moves each used recipe to the back of a local pool so repeats are spread
// maximally across the week. A single selected recipe repeats every day;
// when every remaining candidate equals the previous day's pick, the repeat
// is accepted rather than stalling.
func ArrangeSlot(selected []*models.Recipe, dayCount int) []*models.Recipe {
	result := make([]*models.Recipe, dayCount)
	if len(selected) == 0 {
		return result
	}
	if len(selected) == 1 {
		for i := range result {
			result[i] = selected[0]
		}
		return result
	}

	available := make([]*models.Recipe, len(selected))
	copy(available, selected)

	for i := 0; i < dayCount; i++ {
		var prev *models.Recipe
		if i > 0 {
			prev = result[i-1]
		}

		pickIdx := 0
		for j, candidate := range available {
			if prev == nil || candidate.ID != prev.ID {
				pickIdx = j
				break
			}
		}

		picked := available[pickIdx]
		result[i] = picked

		// Round-robin: move the used recipe to the back.
		available = append(available[:pickIdx], available[pickIdx+1:]...)
		available = append(available, picked)
	}

	return result
}

// BuildSchedule arranges each slot independently and zips the per-slot
// arrangements into day rows. Day count is min(mealsPerWeek, 7).
func BuildSchedule(selectedBySlot map[string][]*models.Recipe, mealsPerWeek int, activeSlots []string) []models.ScheduleDay {
	dayCount := mealsPerWeek
	if dayCount > len(models.WeekDays) {
		dayCount = len(models.WeekDays)
	}

	arranged := make(map[string][]*models.Recipe, len(activeSlots))
	for _, slot := range activeSlots {
		arranged[slot] = ArrangeSlot(selectedBySlot[slot], dayCount)
	}

	schedule := make([]models.ScheduleDay, 0, dayCount)
	for i := 0; i < dayCount; i++ {
		day := models.WeekDays[i]
		slots := make(map[string]models.ScheduledMeal, len(activeSlots))
		for _, slot := range activeSlots {
			meal := arranged[slot][i]
			sm := models.ScheduledMeal{Meal: meal}
			if meal != nil && meal.ReadyInMinutes > prepAheadThresholdMinutes {
				sm.PrepDay = day
			}
			slots[slot] = sm
		}
		schedule = append(schedule, models.ScheduleDay{Day: day, Slots: slots})
	}

	return schedule
}
