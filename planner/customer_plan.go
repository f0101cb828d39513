package planner

import (
	"sync"

	"meal-planner-api/catalog"
	"meal-planner-api/models"
	"meal-planner-api/store"
)

// plansMu serializes read-modify-write sequences against the user_plans
// table, which holds every customer's entries keyed by customer id.
var plansMu sync.Mutex

// CustomerPlan is a handle on one customer's weekly plan. Every mutation
// commits to the store immediately.
type CustomerPlan struct {
	userID string
}

// PlanFor returns the plan document for the given customer id.
func PlanFor(userID string) *CustomerPlan {
	return &CustomerPlan{userID: userID}
}

func readPlans() (map[string][]models.PlanEntry, error) {
	var plans map[string][]models.PlanEntry
	if err := store.Read(store.TableUserPlans, &plans); err != nil {
		return nil, err
	}
	if plans == nil {
		plans = map[string][]models.PlanEntry{}
	}
	return plans, nil
}

// Append adds a placement for the meal under day and returns the new entry.
func (p *CustomerPlan) Append(day models.Weekday, meal models.MealItem) (models.PlanEntry, error) {
	if !models.ValidWeekday(day) {
		return models.PlanEntry{}, ErrInvalidDay
	}

	plansMu.Lock()
	defer plansMu.Unlock()

	plans, err := readPlans()
	if err != nil {
		return models.PlanEntry{}, err
	}
	entry := models.PlanEntry{
		ID:     nextEntryID(),
		Day:    day,
		MealID: meal.ID,
		Name:   meal.Name,
		Qty:    1,
	}
	plans[p.userID] = append(plans[p.userID], entry)
	if err := store.Write(store.TableUserPlans, plans); err != nil {
		return models.PlanEntry{}, err
	}
	return entry, nil
}

// AddEntry implements Document.
func (p *CustomerPlan) AddEntry(day models.Weekday, meal models.MealItem) error {
	_, err := p.Append(day, meal)
	return err
}

// RemoveEntry implements Document: it removes the placement at ordinal
// position index within day's sequence and commits.
func (p *CustomerPlan) RemoveEntry(day models.Weekday, index int) error {
	if index < 0 {
		return nil
	}

	plansMu.Lock()
	defer plansMu.Unlock()

	plans, err := readPlans()
	if err != nil {
		return err
	}
	entries := plans[p.userID]
	seen := 0
	for i, e := range entries {
		if e.Day != day {
			continue
		}
		if seen == index {
			plans[p.userID] = append(entries[:i], entries[i+1:]...)
			return store.Write(store.TableUserPlans, plans)
		}
		seen++
	}
	return nil
}

// RemoveEntryByID removes the entry with the given plan id, if present.
func (p *CustomerPlan) RemoveEntryByID(id int64) error {
	plansMu.Lock()
	defer plansMu.Unlock()

	plans, err := readPlans()
	if err != nil {
		return err
	}
	entries := plans[p.userID]
	kept := entries[:0]
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		return nil
	}
	plans[p.userID] = kept
	return store.Write(store.TableUserPlans, plans)
}

// Entries returns the customer's placements in insertion order.
func (p *CustomerPlan) Entries() ([]models.PlanEntry, error) {
	plansMu.Lock()
	defer plansMu.Unlock()

	plans, err := readPlans()
	if err != nil {
		return nil, err
	}
	return plans[p.userID], nil
}

// Days groups the customer's placements by weekday. Days with no
// placements are absent from the result.
func (p *CustomerPlan) Days() (map[models.Weekday][]models.PlanEntry, error) {
	entries, err := p.Entries()
	if err != nil {
		return nil, err
	}
	days := map[models.Weekday][]models.PlanEntry{}
	for _, e := range entries {
		days[e.Day] = append(days[e.Day], e)
	}
	return days, nil
}

// Summary is the calorie aggregation over a whole plan.
type Summary struct {
	TotalCalories int `json:"totalCalories"`
}

// Aggregate sums calories across all placements, resolving each meal
// reference against the current catalog. Placements whose meal was deleted
// contribute zero.
func (p *CustomerPlan) Aggregate() (Summary, error) {
	entries, err := p.Entries()
	if err != nil {
		return Summary{}, err
	}
	meals, err := catalog.List()
	if err != nil {
		return Summary{}, err
	}
	byID := map[int]models.MealItem{}
	for _, m := range meals {
		byID[m.ID] = m
	}

	var sum Summary
	for _, e := range entries {
		if meal, ok := byID[e.MealID]; ok {
			sum.TotalCalories += meal.Calories * e.Qty
		}
	}
	return sum, nil
}

// ResolvedEntry is a placement joined against the current catalog for
// rendering. Unresolved references keep the plan entry but show the
// placeholder name and no calories.
type ResolvedEntry struct {
	models.PlanEntry
	MealName string `json:"mealName"`
	Calories int    `json:"calories"`
	Resolved bool   `json:"resolved"`
}

// UnknownMealName is the rendering placeholder for a placement whose meal
// was deleted from the catalog.
const UnknownMealName = "Unknown Meal"

// Resolved returns the plan grouped by day with each placement joined
// against the catalog.
func (p *CustomerPlan) Resolved() (map[models.Weekday][]ResolvedEntry, error) {
	entries, err := p.Entries()
	if err != nil {
		return nil, err
	}
	meals, err := catalog.List()
	if err != nil {
		return nil, err
	}
	byID := map[int]models.MealItem{}
	for _, m := range meals {
		byID[m.ID] = m
	}

	days := map[models.Weekday][]ResolvedEntry{}
	for _, e := range entries {
		re := ResolvedEntry{PlanEntry: e, MealName: UnknownMealName}
		if meal, ok := byID[e.MealID]; ok {
			re.MealName = meal.Name
			re.Calories = meal.Calories
			re.Resolved = true
		}
		days[e.Day] = append(days[e.Day], re)
	}
	return days, nil
}

// AllPlans returns every customer's entries keyed by customer id, skipping
// customers with no placements. Used by the admin overview.
func AllPlans() (map[string][]models.PlanEntry, error) {
	plansMu.Lock()
	defer plansMu.Unlock()

	plans, err := readPlans()
	if err != nil {
		return nil, err
	}
	out := map[string][]models.PlanEntry{}
	for userID, entries := range plans {
		if len(entries) > 0 {
			out[userID] = entries
		}
	}
	return out, nil
}
