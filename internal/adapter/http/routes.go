package http

import "github.com/labstack/echo/v4"

// Handlers bundles everything Register mounts.
type Handlers struct {
	Health    *Handler
	Leaves    *LeaveHandler
	Approvals *ApprovalHandler
	Balances  *BalanceHandler
	Settings  *SettingsHandler
	Directory *DirectoryHandler
}

// Register mounts the API on e. session resolves the caller; idempotency may be nil
// when no redis is configured.
func Register(e *echo.Echo, h Handlers, session, idempotency echo.MiddlewareFunc) {
	e.GET("/health", h.Health.Health)

	mws := []echo.MiddlewareFunc{session}
	if idempotency != nil {
		mws = append(mws, idempotency)
	}
	api := e.Group("/api/v1", mws...)

	api.POST("/leaves", h.Leaves.Submit)
	api.GET("/leaves", h.Leaves.List)
	api.GET("/leaves/mine", h.Leaves.Mine)
	api.GET("/leaves/pending", h.Leaves.Pending)
	api.GET("/dashboard", h.Leaves.Dashboard)
	api.POST("/leaves/:id/decision", h.Approvals.Decide)

	api.GET("/balances/me", h.Balances.Mine)

	api.GET("/settings/leave-policy", h.Settings.Get)
	api.PUT("/settings/leave-policy", h.Settings.Update)

	api.GET("/employees", h.Directory.ListEmployees)
	api.POST("/employees", h.Directory.AddEmployee)
	api.PUT("/employees/:id", h.Directory.UpdateEmployee)
	api.DELETE("/employees/:id", h.Directory.DeleteEmployee)
	api.GET("/users", h.Directory.ListUsers)
	api.PUT("/users/:username", h.Directory.LinkUser)
	api.DELETE("/users/:username", h.Directory.DeleteUser)
}
