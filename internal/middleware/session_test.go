package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/wildlens/wildlens-api/internal/auth"
)

func newContext(t *testing.T, header string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/stats", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error { return c.String(http.StatusOK, "ok") }

// The user repo is only consulted after the token itself verifies, so
// the rejection paths below run with a nil repo.

func TestSessionAuthMissingHeader(t *testing.T) {
	c, rec := newContext(t, "")
	if err := SessionAuth("secret", nil)(okHandler)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want 401", rec.Code)
	}
}

func TestSessionAuthMalformedHeader(t *testing.T) {
	c, rec := newContext(t, "Token abc")
	if err := SessionAuth("secret", nil)(okHandler)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want 401", rec.Code)
	}
}

func TestSessionAuthInvalidToken(t *testing.T) {
	c, rec := newContext(t, "Bearer not-a-jwt")
	if err := SessionAuth("secret", nil)(okHandler)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want 401", rec.Code)
	}
}

func TestSessionAuthWrongSecret(t *testing.T) {
	tok, err := auth.NewAccessToken("other-secret", "user-1", auth.RoleViewer, 15)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	c, rec := newContext(t, "Bearer "+tok.Token)
	if err := SessionAuth("secret", nil)(okHandler)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want 401", rec.Code)
	}
}

func TestRequireRoleDeniesMissingActor(t *testing.T) {
	c, rec := newContext(t, "")
	if err := RequireRole(auth.RoleAdmin)(okHandler)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Errorf("status: got %d, want 403", rec.Code)
	}
}

func TestRequireRoleDeniesOtherRoles(t *testing.T) {
	for _, role := range []string{auth.RoleViewer, auth.RoleCreator} {
		c, rec := newContext(t, "")
		c.Set(actorKey, auth.Actor{ID: "u-1", Role: role})
		if err := RequireRole(auth.RoleAdmin)(okHandler)(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusForbidden {
			t.Errorf("role %s: status got %d, want 403", role, rec.Code)
		}
	}
}

func TestRequireRoleAllowsListedRole(t *testing.T) {
	c, rec := newContext(t, "")
	c.Set(actorKey, auth.Actor{ID: "u-1", Role: auth.RoleAdmin})
	if err := RequireRole(auth.RoleAdmin)(okHandler)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rec.Code)
	}
}

func TestActorFrom(t *testing.T) {
	c, _ := newContext(t, "")
	if _, ok := ActorFrom(c); ok {
		t.Error("actor resolved from empty context")
	}
	want := auth.Actor{ID: "u-9", Role: auth.RoleCreator}
	c.Set(actorKey, want)
	got, ok := ActorFrom(c)
	if !ok || got != want {
		t.Errorf("ActorFrom: got %+v ok=%v", got, ok)
	}
}
