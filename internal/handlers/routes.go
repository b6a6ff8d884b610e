package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator adapts the validation package to Echo's Validator interface
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator wraps a configured validator for Echo
func NewRequestValidator(validate *validator.Validate) *RequestValidator {
	return &RequestValidator{validate: validate}
}

func (v *RequestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// Registry bundles every handler for route registration
type Registry struct {
	Users        *UserHandler
	Categories   *CategoryHandler
	Transactions *TransactionHandler
	Templates    *TemplateHandler
	View         *ViewHandler
	Health       *HealthCheckHandler
	Dev          *DevHandler
}

// RegisterRoutes wires every endpoint under /api/v1
func RegisterRoutes(e *echo.Echo, r *Registry) {
	e.GET("/health", r.Health.HealthCheck)

	api := e.Group("/api/v1")

	api.GET("/users", r.Users.ListUsers)
	api.POST("/users", r.Users.CreateUser)
	api.GET("/users/active", r.Users.GetActiveUser)
	api.PUT("/users/active", r.Users.ActivateUser)
	api.GET("/users/:id", r.Users.GetUser)
	api.PUT("/users/:id", r.Users.UpdateUser)
	api.DELETE("/users/:id", r.Users.DeleteUser)
	api.GET("/currencies", r.Users.ListCurrencies)

	api.GET("/categories", r.Categories.ListCategories)
	api.POST("/categories", r.Categories.CreateCategory)
	api.GET("/categories/summary", r.Categories.GetCategorySummaries)
	api.PUT("/categories/:id", r.Categories.UpdateCategory)
	api.DELETE("/categories/:id", r.Categories.DeleteCategory)

	api.GET("/transactions", r.Transactions.ListTransactions)
	api.POST("/transactions", r.Transactions.CreateTransaction)
	api.GET("/transactions/all", r.Transactions.ListAllTransactions)
	api.GET("/transactions/stream", r.Transactions.StreamTransactions)
	api.PUT("/transactions/:id", r.Transactions.UpdateTransaction)
	api.DELETE("/transactions/:id", r.Transactions.DeleteTransaction)

	api.GET("/templates", r.Templates.ListTemplates)
	api.POST("/templates", r.Templates.CreateTemplate)
	api.PUT("/templates/:id", r.Templates.UpdateTemplate)
	api.DELETE("/templates/:id", r.Templates.DeleteTemplate)
	api.POST("/templates/:id/apply", r.Templates.ApplyTemplate)

	api.GET("/view", r.View.GetView)
	api.DELETE("/view", r.View.ResetView)
	api.PUT("/view/type", r.View.SetTypeFilter)
	api.PUT("/view/start-date", r.View.SetStartDate)
	api.PUT("/view/end-date", r.View.SetEndDate)
	api.PUT("/view/category", r.View.SetCategoryFilter)

	if r.Dev != nil {
		api.POST("/dev/seed", r.Dev.SeedSampleData)
	}
}
