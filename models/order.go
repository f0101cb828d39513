package models

import "time"

// CartItem is a value-copy snapshot of a MealItem taken when the customer
// adds it to the cart. Later catalog edits never alter it.
type CartItem struct {
	MealID   int     `json:"mealId"`
	Name     string  `json:"name"`
	Calories int     `json:"calories"`
	Price    float64 `json:"price"` // snapshot price at time of adding
}

// Order is an append-only ledger record. Never mutated or deleted once
// created.
type Order struct {
	ID         string     `json:"id"`
	CustomerID string     `json:"customerId"`
	Items      []CartItem `json:"items"`
	Total      float64    `json:"total"`
	Date       time.Time  `json:"date"`
}
