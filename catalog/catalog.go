// Package catalog is the CRUD repository over the recipe table. It only
// guarantees id uniqueness and persistence after each mutating call; field
// validation happens (if at all) at the request-binding edge.
package catalog

import (
	"errors"
	"sync"

	"meal-planner-api/models"
	"meal-planner-api/store"
)

// ErrMealNotFound is returned by Update when no record matches the id.
var ErrMealNotFound = errors.New("meal not found")

// mu serializes read-modify-write sequences against the recipes table.
var mu sync.Mutex

// List returns every catalog item.
func List() ([]models.MealItem, error) {
	var meals []models.MealItem
	if err := store.Read(store.TableRecipes, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

// Get returns the catalog item with the given id, or ErrMealNotFound.
func Get(id int) (models.MealItem, error) {
	meals, err := List()
	if err != nil {
		return models.MealItem{}, err
	}
	for _, m := range meals {
		if m.ID == id {
			return m, nil
		}
	}
	return models.MealItem{}, ErrMealNotFound
}

// Fields carries the mutable attributes of a catalog item.
type Fields struct {
	Name     string
	Calories int
	Protein  int
	Fat      int
	Carbs    int
	Price    float64
	PrepTime string
}

// Create appends a new catalog item with id = max existing id + 1 (1 when
// the catalog is empty) and persists.
func Create(f Fields) (models.MealItem, error) {
	mu.Lock()
	defer mu.Unlock()

	meals, err := List()
	if err != nil {
		return models.MealItem{}, err
	}
	nextID := 1
	for _, m := range meals {
		if m.ID >= nextID {
			nextID = m.ID + 1
		}
	}
	meal := models.MealItem{
		ID:       nextID,
		Name:     f.Name,
		Calories: f.Calories,
		Protein:  f.Protein,
		Fat:      f.Fat,
		Carbs:    f.Carbs,
		Price:    f.Price,
		PrepTime: f.PrepTime,
	}
	meals = append(meals, meal)
	if err := store.Write(store.TableRecipes, meals); err != nil {
		return models.MealItem{}, err
	}
	return meal, nil
}

// Update replaces the fields of the item with the given id, preserving the
// id, and persists. Returns ErrMealNotFound when the id is absent.
func Update(id int, f Fields) (models.MealItem, error) {
	mu.Lock()
	defer mu.Unlock()

	meals, err := List()
	if err != nil {
		return models.MealItem{}, err
	}
	for i, m := range meals {
		if m.ID != id {
			continue
		}
		meals[i] = models.MealItem{
			ID:       id,
			Name:     f.Name,
			Calories: f.Calories,
			Protein:  f.Protein,
			Fat:      f.Fat,
			Carbs:    f.Carbs,
			Price:    f.Price,
			PrepTime: f.PrepTime,
		}
		if err := store.Write(store.TableRecipes, meals); err != nil {
			return models.MealItem{}, err
		}
		return meals[i], nil
	}
	return models.MealItem{}, ErrMealNotFound
}

// Delete removes the item with the given id if present; absent ids are a
// silent no-op. Plan entries and carts referencing the id are left dangling
// on purpose (no cascade).
func Delete(id int) error {
	mu.Lock()
	defer mu.Unlock()

	meals, err := List()
	if err != nil {
		return err
	}
	kept := meals[:0]
	for _, m := range meals {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(meals) {
		return nil
	}
	return store.Write(store.TableRecipes, kept)
}
