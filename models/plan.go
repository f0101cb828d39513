package models

// Weekday is a day key in a plan document.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// AllDays lists the weekday keys in display order.
var AllDays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ValidWeekday reports whether d is one of the seven recognized day keys.
func ValidWeekday(d Weekday) bool {
	for _, day := range AllDays {
		if d == day {
			return true
		}
	}
	return false
}

// PlanEntry is one meal placement in a customer's weekly plan. ID is unique
// within the plan; MealID references the catalog and may dangle after a
// catalog delete (no cascade).
type PlanEntry struct {
	ID     int64   `json:"id"`
	Day    Weekday `json:"day"`
	MealID int     `json:"mealId"`
	Name   string  `json:"name"`
	Qty    int     `json:"qty"`
}

// MenuSlot is one meal placement in the admin's published weekly menu.
// Unlike PlanEntry it carries no placement id, only a catalog snapshot.
type MenuSlot struct {
	MealID int    `json:"mealId"`
	Name   string `json:"name"`
}
