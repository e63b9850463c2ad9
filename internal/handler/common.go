package handler // handler defines http handlers

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/wildlens/wildlens-api/internal/auth"
    "github.com/wildlens/wildlens-api/internal/middleware"
)

// requireCapability resolves the acting user and checks a capability.
// Every gated handler goes through this one function so Unauthenticated
// and Forbidden are mapped to 401/403 uniformly. On failure the response
// has already been written and the second return is false; the handler
// must return nil immediately.
func requireCapability(c echo.Context, cap auth.Capability) (auth.Actor, bool) {
    actor, ok := middleware.ActorFrom(c)
    if !ok {
        _ = c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
        return auth.Actor{}, false
    }
    if err := auth.Authorize(actor, cap); err != nil {
        _ = c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
        return auth.Actor{}, false
    }
    return actor, true
}
