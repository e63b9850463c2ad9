package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wildlens/wildlens-api/internal/auth"
	"github.com/wildlens/wildlens-api/internal/repository"
	"github.com/wildlens/wildlens-api/internal/view"
)

// CreatorHandler bundles repositories for creators to manage their
// cameras and read their dashboard analytics.
type CreatorHandler struct {
	Cameras *repository.CameraRepo
	Revenue view.RevenueModel
}

// NewCreatorHandler constructs a CreatorHandler. The revenue model is
// injected so the flat-rate estimate can be replaced by a ledger-backed
// model without touching the handler.
func NewCreatorHandler(cameras *repository.CameraRepo, revenue view.RevenueModel) *CreatorHandler {
	if cameras == nil {
		panic("nil repository passed to NewCreatorHandler")
	}
	if revenue == nil {
		revenue = view.DefaultRevenueModel
	}
	return &CreatorHandler{Cameras: cameras, Revenue: revenue}
}

type submitCameraReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	LodgeName   string `json:"lodge_name"`
	Region      string `json:"region"`
	AnimalType  string `json:"animal_type"`
	RTMPURL     string `json:"rtmp_url"`
	BookingURL  string `json:"booking_url"`
}

// creatorCamera includes moderation state and counters that the public
// payload hides.
type creatorCamera struct {
	PublicCamera
	Status    string    `json:"status"`
	RTMPURL   string    `json:"rtmp_url"`
	CreatedAt time.Time `json:"created_at"`
}

func toCreatorCamera(cam repository.Camera) creatorCamera {
	return creatorCamera{
		PublicCamera: toPublicCamera(cam),
		Status:       cam.Status,
		RTMPURL:      cam.RTMPURL,
		CreatedAt:    cam.CreatedAt,
	}
}

// GetMyCameras lists the actor's own cameras, newest first.
func (h *CreatorHandler) GetMyCameras(c echo.Context) error {
	actor, ok := requireCapability(c, auth.CapManageOwnCameras)
	if !ok {
		return nil
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	cams, err := h.Cameras.ListByCreator(ctx, actor.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list cameras failed"})
	}
	out := make([]creatorCamera, 0, len(cams))
	for _, cam := range cams {
		out = append(out, toCreatorCamera(cam))
	}
	return c.JSON(http.StatusOK, echo.Map{"cameras": out})
}

// SubmitCamera registers a new camera in pending status for admin
// review.
func (h *CreatorHandler) SubmitCamera(c echo.Context) error {
	actor, ok := requireCapability(c, auth.CapManageOwnCameras)
	if !ok {
		return nil
	}
	var req submitCameraReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.Region == "" || req.AnimalType == "" || req.RTMPURL == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, region, animal_type and rtmp_url are required"})
	}

	cam := repository.Camera{
		CreatorID:   actor.ID,
		Name:        req.Name,
		Description: req.Description,
		LodgeName:   req.LodgeName,
		Region:      req.Region,
		AnimalType:  req.AnimalType,
		RTMPURL:     req.RTMPURL,
	}
	if b := strings.TrimSpace(req.BookingURL); b != "" {
		cam.BookingURL = &b
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Cameras.Create(ctx, &cam); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "submit camera failed"})
	}
	return c.JSON(http.StatusCreated, toCreatorCamera(cam))
}

type toggleReq struct {
	Enabled bool `json:"enabled"`
}

// ToggleCamera switches one of the actor's cameras between active and
// inactive. Admins may toggle any camera.
func (h *CreatorHandler) ToggleCamera(c echo.Context) error {
	actor, ok := requireCapability(c, auth.CapManageOwnCameras)
	if !ok {
		return nil
	}
	var req toggleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	err := h.Cameras.SetEnabled(ctx, c.Param("id"), actor.ID, actor.Role == auth.RoleAdmin, req.Enabled)
	switch {
	case err == nil:
		return c.NoContent(http.StatusNoContent)
	case errors.Is(err, repository.ErrCameraNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "camera not found"})
	case errors.Is(err, repository.ErrForbidden):
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	case errors.Is(err, repository.ErrInvalidTransition):
		return c.JSON(http.StatusConflict, echo.Map{"error": "invalid status transition"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "toggle camera failed"})
}

// GetAnalytics returns the creator dashboard figures aggregated from the
// actor's cameras. Revenue numbers come from the configured model; the
// default is a flat per-camera estimate, not the transaction ledger.
func (h *CreatorHandler) GetAnalytics(c echo.Context) error {
	actor, ok := requireCapability(c, auth.CapManageOwnCameras)
	if !ok {
		return nil
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	cams, err := h.Cameras.ListByCreator(ctx, actor.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load analytics failed"})
	}
	return c.JSON(http.StatusOK, view.NewCreatorAnalytics(cams, h.Revenue))
}
