package planner

import (
	"sync"

	"meal-planner-api/models"
	"meal-planner-api/store"
)

// AdminMenu is the singleton published weekly menu document. Mutations edit
// an in-memory draft; nothing reaches the store until Save. Placements are
// bare {mealId, name} snapshots without a day-scoped id.
type AdminMenu struct {
	mu   sync.Mutex
	days map[models.Weekday][]models.MenuSlot
}

// LoadAdminMenu loads the published menu into a fresh draft.
func LoadAdminMenu() (*AdminMenu, error) {
	days, err := PublishedMenu()
	if err != nil {
		return nil, err
	}
	return &AdminMenu{days: days}, nil
}

// PublishedMenu reads the last saved menu straight from the store.
func PublishedMenu() (map[models.Weekday][]models.MenuSlot, error) {
	var days map[models.Weekday][]models.MenuSlot
	if err := store.Read(store.TableAdminMenu, &days); err != nil {
		return nil, err
	}
	if days == nil {
		days = map[models.Weekday][]models.MenuSlot{}
	}
	return days, nil
}

// AddEntry implements Document: it appends a snapshot of the meal under day
// in the draft.
func (m *AdminMenu) AddEntry(day models.Weekday, meal models.MealItem) error {
	if !models.ValidWeekday(day) {
		return ErrInvalidDay
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.days[day] = append(m.days[day], models.MenuSlot{MealID: meal.ID, Name: meal.Name})
	return nil
}

// RemoveEntry implements Document: it removes the slot at ordinal position
// index within day's sequence in the draft. A day whose sequence becomes
// empty is dropped from the mapping.
func (m *AdminMenu) RemoveEntry(day models.Weekday, index int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	slots := m.days[day]
	if index < 0 || index >= len(slots) {
		return nil
	}
	slots = append(slots[:index], slots[index+1:]...)
	if len(slots) == 0 {
		delete(m.days, day)
	} else {
		m.days[day] = slots
	}
	return nil
}

// Days returns a copy of the draft mapping.
func (m *AdminMenu) Days() map[models.Weekday][]models.MenuSlot {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[models.Weekday][]models.MenuSlot, len(m.days))
	for day, slots := range m.days {
		out[day] = append([]models.MenuSlot(nil), slots...)
	}
	return out
}

// Save publishes the draft, replacing the stored menu.
func (m *AdminMenu) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return store.Write(store.TableAdminMenu, m.days)
}
