package handlers

import (
	"errors"
	"net/http"

	"meal-planner-api/catalog"
	"meal-planner-api/dragdrop"
	"meal-planner-api/middleware"
	"meal-planner-api/models"

	"github.com/gin-gonic/gin"
)

// Drag endpoints drive a view's drag-placement protocol instance. They are
// the server-side hook points the original page wired to dragstart /
// dragover / dragleave / drop events.

type DragStartRequest struct {
	MealID int `json:"mealId" binding:"required"`
}

type DragZoneRequest struct {
	Day models.Weekday `json:"day" binding:"required"`
}

func dragStart(c *gin.Context, p *dragdrop.Protocol) {
	var req DragStartRequest
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
	p.DragStart(meal.ID, meal.Name)
	c.JSON(http.StatusOK, gin.H{"state": p.State()})
}

func dragEnter(c *gin.Context, p *dragdrop.Protocol) {
	var req DragZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p.DragEnter(req.Day)
	c.JSON(http.StatusOK, gin.H{"activeZone": p.ActiveZone()})
}

func dragLeave(c *gin.Context, p *dragdrop.Protocol) {
	p.DragLeave()
	c.JSON(http.StatusOK, gin.H{"activeZone": p.ActiveZone()})
}

func dragDrop(c *gin.Context, p *dragdrop.Protocol) {
	var req DragZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	placed, err := p.Drop(req.Day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place meal"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"placed": placed, "state": p.State()})
}

func dragCancel(c *gin.Context, p *dragdrop.Protocol) {
	p.Cancel()
	c.JSON(http.StatusOK, gin.H{"state": p.State()})
}

// ── Customer view ───────────────────────────────────────────────────────────

func CustomerDragStart(c *gin.Context) {
	dragStart(c, customerDrag(middleware.GetUserID(c)))
}

func CustomerDragEnter(c *gin.Context) {
	dragEnter(c, customerDrag(middleware.GetUserID(c)))
}

func CustomerDragLeave(c *gin.Context) {
	dragLeave(c, customerDrag(middleware.GetUserID(c)))
}

func CustomerDragDrop(c *gin.Context) {
	dragDrop(c, customerDrag(middleware.GetUserID(c)))
}

func CustomerDragCancel(c *gin.Context) {
	dragCancel(c, customerDrag(middleware.GetUserID(c)))
}

// ── Admin view ──────────────────────────────────────────────────────────────

func adminProtocol(c *gin.Context) (*dragdrop.Protocol, bool) {
	p, err := adminDrag(middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu draft"})
		return nil, false
	}
	return p, true
}

func AdminDragStart(c *gin.Context) {
	if p, ok := adminProtocol(c); ok {
		dragStart(c, p)
	}
}

func AdminDragEnter(c *gin.Context) {
	if p, ok := adminProtocol(c); ok {
		dragEnter(c, p)
	}
}

func AdminDragLeave(c *gin.Context) {
	if p, ok := adminProtocol(c); ok {
		dragLeave(c, p)
	}
}

func AdminDragDrop(c *gin.Context) {
	if p, ok := adminProtocol(c); ok {
		dragDrop(c, p)
	}
}

func AdminDragCancel(c *gin.Context) {
	if p, ok := adminProtocol(c); ok {
		dragCancel(c, p)
	}
}
