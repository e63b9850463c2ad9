package auth

import (
	"errors"
	"testing"
)

func TestAuthorizeAdminOnlyCapabilities(t *testing.T) {
	// Platform stats and camera review are admin-only: every other role
	// must get ErrForbidden.
	for _, cap := range []Capability{CapViewPlatformStats, CapReviewCameras} {
		for _, role := range []string{RoleViewer, RoleCreator} {
			a := Actor{ID: "u-1", Role: role}
			if err := Authorize(a, cap); !errors.Is(err, ErrForbidden) {
				t.Errorf("Authorize(%s, %s): got %v, want ErrForbidden", role, cap, err)
			}
		}
		admin := Actor{ID: "u-2", Role: RoleAdmin}
		if err := Authorize(admin, cap); err != nil {
			t.Errorf("Authorize(admin, %s): got %v, want nil", cap, err)
		}
	}
}

func TestAuthorizeCameraManagement(t *testing.T) {
	if err := Authorize(Actor{ID: "u-1", Role: RoleViewer}, CapManageOwnCameras); !errors.Is(err, ErrForbidden) {
		t.Errorf("viewer managing cameras: got %v, want ErrForbidden", err)
	}
	for _, role := range []string{RoleCreator, RoleAdmin} {
		if err := Authorize(Actor{ID: "u-1", Role: role}, CapManageOwnCameras); err != nil {
			t.Errorf("%s managing cameras: got %v, want nil", role, err)
		}
	}
}

func TestAuthorizeLibraryForAllRoles(t *testing.T) {
	for _, role := range []string{RoleViewer, RoleCreator, RoleAdmin} {
		if err := Authorize(Actor{ID: "u-1", Role: role}, CapUseLibrary); err != nil {
			t.Errorf("%s using library: got %v, want nil", role, err)
		}
	}
}

func TestAuthorizeZeroActor(t *testing.T) {
	if err := Authorize(Actor{}, CapUseLibrary); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("zero actor: got %v, want ErrUnauthenticated", err)
	}
}

func TestAuthorizeUnknownRole(t *testing.T) {
	if err := Authorize(Actor{ID: "u-1", Role: "superuser"}, CapUseLibrary); !errors.Is(err, ErrForbidden) {
		t.Errorf("unknown role: got %v, want ErrForbidden", err)
	}
}

func TestValidRole(t *testing.T) {
	if !ValidRole(RoleViewer) || !ValidRole(RoleCreator) {
		t.Error("viewer and creator must be valid signup roles")
	}
	// Admin accounts are never self-registered.
	if ValidRole(RoleAdmin) {
		t.Error("admin must not be a valid signup role")
	}
	if ValidRole("") || ValidRole("owner") {
		t.Error("unknown roles must be rejected")
	}
}
