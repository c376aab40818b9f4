package routes

import (
	"github.com/gin-gonic/gin"

	"gymdesk/internal/interfaces/http/handlers"
	"gymdesk/internal/interfaces/http/middleware"
)

// ExpenseRouteConfig holds dependencies for expense routes.
type ExpenseRouteConfig struct {
	ExpenseHandler *handlers.ExpenseHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupExpenseRoutes configures expense routes.
func SetupExpenseRoutes(engine *gin.Engine, cfg *ExpenseRouteConfig) {
	expenses := engine.Group("/expenses")
	expenses.Use(cfg.AuthMiddleware.RequireAuth())
	{
		expenses.POST("", cfg.ExpenseHandler.CreateExpense)
		expenses.GET("", cfg.ExpenseHandler.ListExpenses)
		expenses.PUT("/:id", cfg.ExpenseHandler.UpdateExpense)
		expenses.DELETE("/:id", cfg.ExpenseHandler.DeleteExpense)
	}
}
