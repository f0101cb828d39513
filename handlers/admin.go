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
	"meal-planner-api/users"

	"github.com/gin-gonic/gin"
)

// ── Catalog Management ──────────────────────────────────────────────────────

type CreateMealRequest struct {
	Name     string  `json:"name" binding:"required"`
	Calories int     `json:"calories" binding:"required,gt=0"`
	Protein  int     `json:"protein"`
	Fat      int     `json:"fat"`
	Carbs    int     `json:"carbs"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	PrepTime string  `json:"prepTime"`
}

// CreateMeal adds a new item to the catalog
func CreateMeal(c *gin.Context) {
	var req CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := catalog.Create(catalog.Fields{
		Name:     req.Name,
		Calories: req.Calories,
		Protein:  req.Protein,
		Fat:      req.Fat,
		Carbs:    req.Carbs,
		Price:    req.Price,
		PrepTime: req.PrepTime,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create meal"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Meal created", "meal": meal})
}

type UpdateMealRequest struct {
	Name     *string  `json:"name"`
	Calories *int     `json:"calories"`
	Protein  *int     `json:"protein"`
	Fat      *int     `json:"fat"`
	Carbs    *int     `json:"carbs"`
	Price    *float64 `json:"price"`
	PrepTime *string  `json:"prepTime"`
}

// UpdateMeal updates a catalog item, preserving fields the request omits
func UpdateMeal(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meal id"})
		return
	}

	var req UpdateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := catalog.Get(id)
	if errors.Is(err, catalog.ErrMealNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load meal"})
		return
	}

	fields := catalog.Fields{
		Name:     existing.Name,
		Calories: existing.Calories,
		Protein:  existing.Protein,
		Fat:      existing.Fat,
		Carbs:    existing.Carbs,
		Price:    existing.Price,
		PrepTime: existing.PrepTime,
	}
	if req.Name != nil {
		fields.Name = *req.Name
	}
	if req.Calories != nil {
		fields.Calories = *req.Calories
	}
	if req.Protein != nil {
		fields.Protein = *req.Protein
	}
	if req.Fat != nil {
		fields.Fat = *req.Fat
	}
	if req.Carbs != nil {
		fields.Carbs = *req.Carbs
	}
	if req.Price != nil {
		fields.Price = *req.Price
	}
	if req.PrepTime != nil {
		fields.PrepTime = *req.PrepTime
	}

	meal, err := catalog.Update(id, fields)
	if errors.Is(err, catalog.ErrMealNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update meal"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal updated", "meal": meal})
}

// DeleteMeal removes a catalog item. Absent ids are a no-op, matching the
// repository contract. Plan entries referencing the meal are left dangling.
func DeleteMeal(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meal id"})
		return
	}
	if err := catalog.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete meal"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal deleted"})
}

// ── Weekly Menu Draft ───────────────────────────────────────────────────────

// GetMenuDraft returns the admin's working draft of the weekly menu
func GetMenuDraft(c *gin.Context) {
	draft, err := adminDraft(middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu draft"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu": draft.Days()})
}

type MenuEntryRequest struct {
	Day    models.Weekday `json:"day" binding:"required"`
	MealID int            `json:"mealId" binding:"required"`
}

// AddMenuEntry appends a meal to a day of the menu draft
func AddMenuEntry(c *gin.Context) {
	var req MenuEntryRequest
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

	draft, err := adminDraft(middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu draft"})
		return
	}
	if err := draft.AddEntry(req.Day, meal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu": draft.Days()})
}

// RemoveMenuEntry removes the slot at a position within a day of the draft
func RemoveMenuEntry(c *gin.Context) {
	day := models.Weekday(c.Param("day"))
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid index"})
		return
	}

	draft, err := adminDraft(middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu draft"})
		return
	}
	if err := draft.RemoveEntry(day, index); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu draft"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu": draft.Days()})
}

// SaveMenu publishes the draft as the weekly menu — the explicit save the
// admin document requires
func SaveMenu(c *gin.Context) {
	draft, err := adminDraft(middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu draft"})
		return
	}
	if err := draft.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save menu"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Weekly menu published", "menu": draft.Days()})
}

// ── Orders & Plans Overview ─────────────────────────────────────────────────

// RecentOrders returns the last n orders, most recent first (default 5)
func RecentOrders(c *gin.Context) {
	n := 5
	if raw := c.Query("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid n"})
			return
		}
		n = parsed
	}

	recent, err := orders.Recent(n)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(recent), "orders": recent})
}

// CustomerPlansOverview returns every customer's weekly plan grouped by day
func CustomerPlansOverview(c *gin.Context) {
	plans, err := planner.AllPlans()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plans"})
		return
	}
	all, err := users.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}
	names := map[string]string{}
	for _, u := range all {
		names[u.ID] = u.Username
	}

	overview := make([]gin.H, 0, len(plans))
	for userID, entries := range plans {
		days := map[models.Weekday][]string{}
		for _, e := range entries {
			days[e.Day] = append(days[e.Day], e.Name)
		}
		username, ok := names[userID]
		if !ok {
			username = "Unknown User"
		}
		overview = append(overview, gin.H{
			"userId":   userID,
			"username": username,
			"days":     days,
		})
	}
	c.JSON(http.StatusOK, gin.H{"count": len(overview), "plans": overview})
}

// AdminGetAllUsers returns all registered users — admin only
func AdminGetAllUsers(c *gin.Context) {
	all, err := users.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}
	payload := make([]gin.H, 0, len(all))
	for _, u := range all {
		if role := c.Query("role"); role != "" && role != string(u.Role) {
			continue
		}
		payload = append(payload, userPayload(u))
	}
	c.JSON(http.StatusOK, gin.H{"count": len(payload), "users": payload})
}
