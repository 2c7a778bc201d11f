package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/visitor-entry-system/internal/handler"    // import the handlers that implement business logic
	"github.com/iliyamo/visitor-entry-system/internal/middleware" // import middleware for JWT authentication and role enforcement
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check, used
// by load balancers to verify that the service is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the registration and login endpoints.  Both are
// unauthenticated: register is also the target of the one-shot admin
// seeding client, and login is where tokens come from in the first place.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	e.POST("/register", a.Register)
	e.POST("/login", a.Login)
}

// RegisterBuildings registers the public building registry endpoints.  The
// listing is wrapped in the provided cache middleware (a pass-through when
// Redis is not configured); creation is never cached.
func RegisterBuildings(e *echo.Echo, b *handler.BuildingHandler, cache echo.MiddlewareFunc) {
	e.GET("/buildings", b.ListBuildings, cache)
	e.POST("/buildings", b.CreateBuilding)
}

// RegisterVisitors registers the protected visitor ledger endpoints.  Every
// route runs the JWTAuth middleware followed by the role allow-list, then
// scopes its storage operations to the building claim the middleware
// extracted.
func RegisterVisitors(e *echo.Echo, v *handler.VisitorHandler, jwtSecret string) {
	g := e.Group("")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole("super_admin", "admin", "guard"))
	g.POST("/visitor", v.AddVisitor)
	g.GET("/visitors", v.ListVisitors)
	g.PUT("/visitor/:id/checkout", v.CheckoutVisitor)
}
