package models

// MealItem is a catalog entry (recipe/food item). Ids are integers assigned
// by the catalog repository; all other fields are free-form admin input.
type MealItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Calories int     `json:"calories"`
	Protein  int     `json:"protein"`
	Fat      int     `json:"fat"`
	Carbs    int     `json:"carbs"`
	Price    float64 `json:"price"`
	PrepTime string  `json:"prepTime"`
}
