package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/fitness-tracker/internal/handler"    // import the handlers that implement business logic
	"github.com/iliyamo/fitness-tracker/internal/middleware" // import middleware for session authentication
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance. Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// The health endpoint can be used by load balancers or monitoring
	// systems to verify that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication routes. Unauthenticated
// operations live under /v1/auth; everything session-bound is registered by
// RegisterAPI.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	g := e.Group("/v1/auth")
	// Registration is gated by the shared registration code carried in the
	// request body; there is no per-user invite.
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
}

// RegisterAPI registers all record endpoints under /v1 behind the session
// middleware. Every handler in this group sees the caller's session bound
// into the request context; there is no ambient global session anywhere.
func RegisterAPI(e *echo.Echo, jwtSecret string,
	a *handler.AuthHandler,
	w *handler.WorkoutHandler,
	m *handler.MealHandler,
	p *handler.ProgressHandler,
	s *handler.ShoppingHandler,
	n *handler.NutritionHandler,
	coach *handler.CoachHandler,
) {
	api := e.Group("/v1")
	api.Use(middleware.SessionAuth(jwtSecret))

	api.GET("/me", a.Me)

	api.POST("/workouts", w.Create)
	api.GET("/workouts", w.List)
	api.POST("/workouts/:id/complete", w.Complete)

	api.POST("/meals", m.Create)
	api.GET("/meals", m.List)
	api.POST("/meals/:id/complete", m.Complete)

	api.POST("/progress", p.Create)
	api.GET("/progress", p.List)
	api.POST("/progress/:id/complete", p.Complete)

	api.POST("/shopping", s.Create)
	api.GET("/shopping", s.List)
	api.POST("/shopping/:id/purchase", s.Purchase)

	// Pass-through food lookup; no record is created here.
	api.GET("/nutrition/search", n.Search)

	api.GET("/coach", coach.Respond)
}
