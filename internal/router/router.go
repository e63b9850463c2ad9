package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	"github.com/redis/go-redis/v9"

	"github.com/wildlens/wildlens-api/internal/auth"
	"github.com/wildlens/wildlens-api/internal/config"
	"github.com/wildlens/wildlens-api/internal/handler"    // import the handlers that implement business logic
	"github.com/wildlens/wildlens-api/internal/middleware" // import middleware for session resolution and role enforcement
	"github.com/wildlens/wildlens-api/internal/repository"
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// The /healthz endpoint can be used by load balancers or monitoring
	// systems to verify that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes and applies the
// necessary middleware.  Unauthenticated operations live under /v1/auth,
// while the profile endpoint lives under the protected /v1 group.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, users *repository.UserRepo, jwtSecret string) {
	// Operations that do not require an existing session: register, login,
	// refresh and logout.  Each of these handlers is responsible for
	// generating, exchanging or revoking tokens.
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	// Refresh rotates the presented refresh token and issues a new pair.
	g.POST("/refresh", a.Refresh)
	// Logout accepts a JSON body containing a `refresh_token` and
	// invalidates that token.  It does not require a JWT so that clients
	// with an expired access token can still end their session.
	g.POST("/logout", a.Logout)

	// Routes that require a valid access token.  SessionAuth resolves the
	// actor (id + role, loaded from the users table) before any handler
	// runs.
	v1 := e.Group("/v1")
	v1.Use(middleware.SessionAuth(jwtSecret, users))
	v1.GET("/me", a.Me)
}

// RegisterPublic registers unauthenticated browse endpoints on the provided
// Echo instance. The provided PublicHandler exposes handlers that return
// sanitized camera data. These routes do not apply any session or role
// middleware; the optional response cache serves repeat guests from Redis.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, cacheCfg config.CacheConfig, rdb *redis.Client) {
	g := e.Group("/v1", middleware.BrowseCache(cacheCfg, rdb))
	// Browse active cameras, featured first; ?region= and ?animal_type=
	// narrow the listing.
	g.GET("/cameras", p.GetCameras)
	// Camera detail with stream source and active alerts.
	g.GET("/cameras/:id", p.GetCamera)
}

// RegisterAccount registers the authenticated user's library routes:
// favorites, subscriptions, camera access checks and transaction history.
// All roles may use their own library.
func RegisterAccount(e *echo.Echo, v *handler.ViewerHandler, users *repository.UserRepo, jwtSecret string) {
	g := e.Group("/v1/account")
	g.Use(middleware.SessionAuth(jwtSecret, users))
	g.GET("/favorites", v.GetFavorites)
	g.POST("/favorites", v.AddFavorite)
	g.DELETE("/favorites/:id", v.RemoveFavorite)
	g.GET("/subscriptions", v.GetSubscriptions)
	g.GET("/transactions", v.GetTransactions)
	g.GET("/access/:id", v.GetCameraAccess)
}

// RegisterCreator registers the creator dashboard routes.  The role gate
// admits creators and admins; ownership of individual cameras is enforced
// by the repository layer.
func RegisterCreator(e *echo.Echo, h *handler.CreatorHandler, users *repository.UserRepo, jwtSecret string) {
	g := e.Group("/v1/creator")
	g.Use(middleware.SessionAuth(jwtSecret, users))
	g.Use(middleware.RequireRole(auth.RoleCreator, auth.RoleAdmin))
	g.GET("/cameras", h.GetMyCameras)
	g.POST("/cameras", h.SubmitCamera)
	g.PATCH("/cameras/:id/enabled", h.ToggleCamera)
	g.GET("/analytics", h.GetAnalytics)
}

// RegisterAdmin registers the platform dashboard and moderation routes.
// Only admins pass the role gate.
func RegisterAdmin(e *echo.Echo, h *handler.AdminHandler, users *repository.UserRepo, jwtSecret string) {
	g := e.Group("/v1/admin")
	g.Use(middleware.SessionAuth(jwtSecret, users))
	g.Use(middleware.RequireRole(auth.RoleAdmin))
	g.GET("/stats", h.GetStats)
	g.GET("/cameras/pending", h.GetPendingCameras)
	g.POST("/cameras/:id/approve", h.ApproveCamera)
	g.POST("/cameras/:id/reject", h.RejectCamera)
}
