package handlers

import (
	"net/http"

	"meal-planner-api/catalog"
	"meal-planner-api/planner"

	"github.com/gin-gonic/gin"
)

// ListMeals returns the full meal catalog (public)
func ListMeals(c *gin.Context) {
	meals, err := catalog.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load catalog"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(meals), "meals": meals})
}

// GetWeeklyMenu returns the admin's last published weekly menu (public)
func GetWeeklyMenu(c *gin.Context) {
	menu, err := planner.PublishedMenu()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load weekly menu"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu": menu})
}
