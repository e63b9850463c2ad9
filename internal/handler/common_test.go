package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/wildlens/wildlens-api/internal/auth"
)

func gatedContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/stats", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRequireCapabilityNoActor(t *testing.T) {
	c, rec := gatedContext(t)
	if _, ok := requireCapability(c, auth.CapViewPlatformStats); ok {
		t.Fatal("capability granted without a session")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want 401", rec.Code)
	}
}

func TestRequireCapabilityWrongRole(t *testing.T) {
	for _, role := range []string{auth.RoleViewer, auth.RoleCreator} {
		c, rec := gatedContext(t)
		c.Set("actor", auth.Actor{ID: "u-1", Role: role})
		if _, ok := requireCapability(c, auth.CapViewPlatformStats); ok {
			t.Fatalf("%s granted platform stats", role)
		}
		if rec.Code != http.StatusForbidden {
			t.Errorf("role %s: status got %d, want 403", role, rec.Code)
		}
	}
}

func TestRequireCapabilityGranted(t *testing.T) {
	c, rec := gatedContext(t)
	want := auth.Actor{ID: "u-1", Role: auth.RoleAdmin}
	c.Set("actor", want)
	actor, ok := requireCapability(c, auth.CapViewPlatformStats)
	if !ok {
		t.Fatalf("admin denied platform stats, status %d", rec.Code)
	}
	if actor != want {
		t.Errorf("actor: got %+v, want %+v", actor, want)
	}
}
