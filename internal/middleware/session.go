package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "context"
    "errors"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/wildlens/wildlens-api/internal/auth"
    "github.com/wildlens/wildlens-api/internal/repository"
)

// actorKey is the context key under which the resolved actor is stored.
const actorKey = "actor"

// SessionAuth returns an Echo middleware that resolves the current actor
// from a Bearer access token. The token only proves the subject; the
// actor's role is loaded from the users table on every request so role
// changes and deleted accounts take effect immediately. Requests without
// a valid session are rejected with 401; gated routes never fall back
// to anonymous.
func SessionAuth(secret string, users *repository.UserRepo) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            // Read the Authorization header. A valid header starts with
            // "Bearer " followed by the JWT.
            header := c.Request().Header.Get("Authorization")
            if !strings.HasPrefix(header, "Bearer ") {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
            }
            raw := strings.TrimPrefix(header, "Bearer ")

            subject, err := auth.ParseSubject(secret, raw)
            if err != nil {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
            }

            // Look up the subject. A token whose user no longer exists is
            // an unauthenticated session, not a 500.
            ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
            defer cancel()
            u, err := users.GetByID(ctx, subject)
            if err != nil {
                if errors.Is(err, repository.ErrUserNotFound) {
                    return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unknown session subject"})
                }
                return c.JSON(http.StatusInternalServerError, echo.Map{"error": "session lookup failed"})
            }

            // The actor binding is request-scoped: it lives on this
            // request's context only and is discarded with it, so
            // concurrent requests never observe each other's actor.
            c.Set(actorKey, auth.Actor{ID: u.ID, Role: u.Role})
            return next(c)
        }
    }
}

// ActorFrom extracts the resolved actor placed in the context by
// SessionAuth. The boolean is false when no actor was resolved.
func ActorFrom(c echo.Context) (auth.Actor, bool) {
    a, ok := c.Get(actorKey).(auth.Actor)
    return a, ok && a.ID != ""
}
