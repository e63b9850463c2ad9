package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wildlens/wildlens-api/internal/auth"
	"github.com/wildlens/wildlens-api/internal/queue"
	"github.com/wildlens/wildlens-api/internal/repository"
	queuepublisher "github.com/wildlens/wildlens-api/internal/service"
	"github.com/wildlens/wildlens-api/internal/view"
)

// AdminHandler bundles repositories for the platform dashboard and the
// camera moderation queue.
type AdminHandler struct {
	Stats   *repository.StatsRepo
	Cameras *repository.CameraRepo
}

func NewAdminHandler(stats *repository.StatsRepo, cameras *repository.CameraRepo) *AdminHandler {
	if stats == nil || cameras == nil {
		panic("nil repository passed to NewAdminHandler")
	}
	return &AdminHandler{Stats: stats, Cameras: cameras}
}

// GetStats returns the platform-wide dashboard counts. The four counts
// run concurrently; if any fail, the response still carries the others
// with partial_data set so the dashboard can show an indicator instead
// of an error page.
func (h *AdminHandler) GetStats(c echo.Context) error {
	if _, ok := requireCapability(c, auth.CapViewPlatformStats); !ok {
		return nil
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	counts, partial := h.Stats.PlatformCounts(ctx)
	return c.JSON(http.StatusOK, view.NewAdminStats(counts, partial))
}

type pendingCameraPart struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	LodgeName    string    `json:"lodge_name"`
	Region       string    `json:"region"`
	AnimalType   string    `json:"animal_type"`
	CreatorName  *string   `json:"creator_name,omitempty"`
	CreatorEmail string    `json:"creator_email"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

// GetPendingCameras lists cameras awaiting review with their creator's
// contact details, newest submissions first.
func (h *AdminHandler) GetPendingCameras(c echo.Context) error {
	if _, ok := requireCapability(c, auth.CapReviewCameras); !ok {
		return nil
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	pending, err := h.Cameras.ListPendingWithCreator(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list pending cameras failed"})
	}
	out := make([]pendingCameraPart, 0, len(pending))
	for _, pc := range pending {
		out = append(out, pendingCameraPart{
			ID:           pc.ID,
			Name:         pc.Name,
			Description:  pc.Description,
			LodgeName:    pc.LodgeName,
			Region:       pc.Region,
			AnimalType:   pc.AnimalType,
			CreatorName:  pc.CreatorName,
			CreatorEmail: pc.CreatorEmail,
			SubmittedAt:  pc.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"pending": out})
}

// ApproveCamera resolves a pending camera to active.
func (h *AdminHandler) ApproveCamera(c echo.Context) error {
	return h.review(c, repository.StatusActive)
}

// RejectCamera resolves a pending camera to rejected.
func (h *AdminHandler) RejectCamera(c echo.Context) error {
	return h.review(c, repository.StatusRejected)
}

func (h *AdminHandler) review(c echo.Context, decision string) error {
	actor, ok := requireCapability(c, auth.CapReviewCameras)
	if !ok {
		return nil
	}
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	err := h.Cameras.Review(ctx, id, decision)
	switch {
	case err == nil:
		// fall through to publish
	case errors.Is(err, repository.ErrCameraNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "camera not found"})
	case errors.Is(err, repository.ErrInvalidTransition):
		return c.JSON(http.StatusConflict, echo.Map{"error": "camera is not pending review"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "review failed"})
	}

	// Publishing the moderation event is best-effort: the decision is
	// already persisted and must not be rolled back by a broker outage.
	event := queue.CameraReviewedEvent{
		CameraID:   id,
		Decision:   decision,
		ReviewerID: actor.ID,
		ReviewedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := queuepublisher.PublishCameraReviewed(ctx, event); err != nil {
		log.Printf("camera review event publish failed: %v", err)
	}

	return c.JSON(http.StatusOK, echo.Map{"id": id, "status": decision})
}
