package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"meal-planner-api/catalog"
	"meal-planner-api/middleware"
	"meal-planner-api/models"
	"meal-planner-api/orders"
	"meal-planner-api/planner"

	"github.com/gin-gonic/gin"
)

// ── Weekly Plan ─────────────────────────────────────────────────────────────

// GetPlan returns the customer's weekly plan joined against the catalog,
// with the "Unknown Meal" placeholder for deleted meals
func GetPlan(c *gin.Context) {
	plan := planner.PlanFor(middleware.GetUserID(c))
	days, err := plan.Resolved()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plan"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": days})
}

type AddPlanEntryRequest struct {
	Day    models.Weekday `json:"day" binding:"required"`
	MealID int            `json:"mealId" binding:"required"`
}

// AddPlanEntry places a meal on a day of the customer's plan
func AddPlanEntry(c *gin.Context) {
	var req AddPlanEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := catalog.Get(req.MealID)
	if errors.Is(err, catalog.ErrMealNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load meal"})
		return
	}

	plan := planner.PlanFor(middleware.GetUserID(c))
	entry, err := plan.Append(req.Day, meal)
	if errors.Is(err, planner.ErrInvalidDay) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid day"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update plan"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Meal added to plan", "entry": entry})
}

// RemovePlanEntry removes a placement by its plan entry id
func RemovePlanEntry(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entry id"})
		return
	}
	plan := planner.PlanFor(middleware.GetUserID(c))
	if err := plan.RemoveEntryByID(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update plan"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Entry removed"})
}

// RemovePlanDayEntry removes the placement at a position within a day
func RemovePlanDayEntry(c *gin.Context) {
	day := models.Weekday(c.Param("day"))
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid index"})
		return
	}
	plan := planner.PlanFor(middleware.GetUserID(c))
	if err := plan.RemoveEntry(day, index); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update plan"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Entry removed"})
}

// GetPlanSummary returns the weekly calorie aggregation
func GetPlanSummary(c *gin.Context) {
	plan := planner.PlanFor(middleware.GetUserID(c))
	summary, err := plan.Aggregate()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to aggregate plan"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// ── Cart & Orders ───────────────────────────────────────────────────────────

// GetCart returns the session cart contents and running total
func GetCart(c *gin.Context) {
	cart := orders.CartFor(middleware.GetUserID(c))
	c.JSON(http.StatusOK, gin.H{"items": cart.Items(), "total": cart.Total()})
}

type AddToCartRequest struct {
	MealID int `json:"mealId" binding:"required"`
}

// AddToCart snapshots a catalog item into the session cart
func AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := catalog.Get(req.MealID)
	if errors.Is(err, catalog.ErrMealNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load meal"})
		return
	}

	cart := orders.CartFor(middleware.GetUserID(c))
	item := cart.Add(meal)
	c.JSON(http.StatusOK, gin.H{"message": "Added to cart", "item": item, "total": cart.Total()})
}

// RemoveFromCart drops the item at a position in the session cart
func RemoveFromCart(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid index"})
		return
	}
	cart := orders.CartFor(middleware.GetUserID(c))
	cart.Remove(index)
	c.JSON(http.StatusOK, gin.H{"items": cart.Items(), "total": cart.Total()})
}

// PlaceOrder turns the session cart into a ledger order
func PlaceOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)
	cart := orders.CartFor(userID)

	order, err := orders.Place(userID, cart)
	if errors.Is(err, orders.ErrEmptyCart) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Your cart is empty"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": order})
}

// GetMyOrders returns the customer's orders, most recent first
func GetMyOrders(c *gin.Context) {
	mine, err := orders.ForCustomer(middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(mine), "orders": mine})
}
