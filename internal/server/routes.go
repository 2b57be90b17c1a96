package server

import (
	"github.com/labstack/echo/v4"

	"example.com/finance-tracker/backend/internal/handlers"
)

func registerRoutes(
	e *echo.Echo,
	authHandler *handlers.AuthHandler,
	expenseHandler *handlers.ExpenseHandler,
	incomeHandler *handlers.IncomeHandler,
	debtHandler *handlers.DebtHandler,
	investmentHandler *handlers.InvestmentHandler,
	budgetHandler *handlers.BudgetHandler,
	dashboardHandler *handlers.DashboardHandler,
	profileHandler *handlers.ProfileHandler,
	notificationHandler *handlers.NotificationHandler,
	adminHandler *handlers.AdminHandler,
	authMiddleware echo.MiddlewareFunc,
	adminMiddleware echo.MiddlewareFunc,
	authRateLimiter echo.MiddlewareFunc,
) {
	e.GET("/health", handlers.Health)

	api := e.Group("/api/v1")
	authGroup := api.Group("/auth", authRateLimiter)

	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/refresh", authHandler.Refresh)
	authGroup.POST("/logout", authHandler.Logout)
	authGroup.GET("/me", authHandler.Me, authMiddleware)

	expenses := api.Group("/expenses", authMiddleware)
	expenses.GET("", expenseHandler.List)
	expenses.POST("", expenseHandler.Create)
	expenses.GET("/analytics", expenseHandler.Analytics)
	expenses.GET("/export/json", expenseHandler.ExportJSON)
	expenses.GET("/export/csv", expenseHandler.ExportCSV)
	expenses.PUT("/:id", expenseHandler.Update)
	expenses.DELETE("/:id", expenseHandler.Delete)

	incomes := api.Group("/incomes", authMiddleware)
	incomes.GET("", incomeHandler.List)
	incomes.POST("", incomeHandler.Create)
	incomes.PUT("/:id", incomeHandler.Update)
	incomes.DELETE("/:id", incomeHandler.Delete)

	debts := api.Group("/debts", authMiddleware)
	debts.GET("", debtHandler.List)
	debts.POST("", debtHandler.Create)
	debts.PUT("/:id", debtHandler.Update)
	debts.DELETE("/:id", debtHandler.Delete)

	investments := api.Group("/investments", authMiddleware)
	investments.GET("", investmentHandler.List)
	investments.POST("", investmentHandler.Create)
	investments.GET("/summary", investmentHandler.Summary)
	investments.POST("/:id/sip-transactions", investmentHandler.CreateSIPTransaction)
	investments.GET("/:id/sip-metrics", investmentHandler.SIPMetrics)
	investments.PUT("/:id", investmentHandler.Update)
	investments.DELETE("/:id", investmentHandler.Delete)

	budgets := api.Group("/budgets", authMiddleware)
	budgets.GET("", budgetHandler.List)
	budgets.POST("", budgetHandler.Create)
	budgets.GET("/summary", budgetHandler.Summary)
	budgets.POST("/process-renewals", budgetHandler.ProcessRenewals)
	budgets.PUT("/:id", budgetHandler.Update)
	budgets.PATCH("/:id/spent", budgetHandler.UpdateSpent)
	budgets.DELETE("/:id", budgetHandler.Delete)

	dashboard := api.Group("/dashboard", authMiddleware)
	dashboard.GET("/overview", dashboardHandler.Overview)
	dashboard.GET("/trends", dashboardHandler.Trends)

	profileGroup := api.Group("/profile", authMiddleware)
	profileGroup.GET("", profileHandler.Get)
	profileGroup.PUT("", profileHandler.Update)
	profileGroup.GET("/completion", profileHandler.Completion)

	notificationsGroup := api.Group("/notifications", authMiddleware)
	notificationsGroup.GET("/stream", notificationHandler.Stream)

	admin := api.Group("/admin", authMiddleware, adminMiddleware)
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/usage", adminHandler.Usage)
}
