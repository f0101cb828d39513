package routes

import (
	"meal-planner-api/handlers"
	"meal-planner-api/middleware"
	"meal-planner-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Catalog & published menu (no auth needed)
		public.GET("/meals", handlers.ListMeals)
		public.GET("/menu", handlers.GetWeeklyMenu)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
	}

	// ── Customer routes ────────────────────────────────────────────
	customer := r.Group("/api/customer")
	customer.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleCustomer))
	{
		// Weekly plan
		customer.GET("/plan", handlers.GetPlan)
		customer.POST("/plan/entries", handlers.AddPlanEntry)
		customer.DELETE("/plan/entries/:id", handlers.RemovePlanEntry)
		customer.DELETE("/plan/:day/:index", handlers.RemovePlanDayEntry)
		customer.GET("/plan/summary", handlers.GetPlanSummary)

		// Drag placement
		customer.POST("/drag/start", handlers.CustomerDragStart)
		customer.POST("/drag/enter", handlers.CustomerDragEnter)
		customer.POST("/drag/leave", handlers.CustomerDragLeave)
		customer.POST("/drag/drop", handlers.CustomerDragDrop)
		customer.POST("/drag/cancel", handlers.CustomerDragCancel)

		// Cart & orders
		customer.GET("/cart", handlers.GetCart)
		customer.POST("/cart", handlers.AddToCart)
		customer.DELETE("/cart/:index", handlers.RemoveFromCart)
		customer.POST("/orders", handlers.PlaceOrder)
		customer.GET("/orders", handlers.GetMyOrders)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		// Catalog management
		admin.POST("/meals", handlers.CreateMeal)
		admin.PUT("/meals/:id", handlers.UpdateMeal)
		admin.DELETE("/meals/:id", handlers.DeleteMeal)

		// Weekly menu draft (published only on explicit save)
		admin.GET("/menu", handlers.GetMenuDraft)
		admin.POST("/menu/entries", handlers.AddMenuEntry)
		admin.DELETE("/menu/:day/:index", handlers.RemoveMenuEntry)
		admin.PUT("/menu/save", handlers.SaveMenu)

		// Drag placement
		admin.POST("/drag/start", handlers.AdminDragStart)
		admin.POST("/drag/enter", handlers.AdminDragEnter)
		admin.POST("/drag/leave", handlers.AdminDragLeave)
		admin.POST("/drag/drop", handlers.AdminDragDrop)
		admin.POST("/drag/cancel", handlers.AdminDragCancel)

		// Dashboards
		admin.GET("/orders/recent", handlers.RecentOrders)
		admin.GET("/plans", handlers.CustomerPlansOverview)
		admin.GET("/users", handlers.AdminGetAllUsers)
	}
}
