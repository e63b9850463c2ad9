// Package handler exposes HTTP handlers for both authenticated and public
// endpoints. This file defines handlers for the public browsing API. These
// routes allow unauthenticated users to browse active cameras without
// requiring authentication. Sensitive fields (creator IDs, RTMP ingest
// URLs) are filtered from responses.

package handler

import (
    "context"
    "errors"
    "fmt"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/wildlens/wildlens-api/internal/repository"
)

// PublicHandler aggregates repositories needed for unauthenticated
// browsing. It produces sanitized responses suitable for public
// consumption.
type PublicHandler struct {
    CameraRepo *repository.CameraRepo // provides access to camera data
    AlertRepo  *repository.AlertRepo  // provides access to camera alerts
}

func NewPublicHandler(cameras *repository.CameraRepo, alerts *repository.AlertRepo) *PublicHandler {
    return &PublicHandler{CameraRepo: cameras, AlertRepo: alerts}
}

// PublicCamera represents a camera in browse responses. It contains only
// safe fields.
type PublicCamera struct {
    ID           string  `json:"id"`
    Name         string  `json:"name"`
    Description  string  `json:"description"`
    LodgeName    string  `json:"lodge_name"`
    Region       string  `json:"region"`
    AnimalType   string  `json:"animal_type"`
    ThumbnailURL *string `json:"thumbnail_url,omitempty"`
    BookingURL   *string `json:"booking_url,omitempty"`
    Featured     bool    `json:"featured"`
    ViewerCount  int64   `json:"viewer_count"`
    TotalViews   int64   `json:"total_views"`
}

// PublicAlert represents an active alert on a camera detail page.
type PublicAlert struct {
    ID        string     `json:"id"`
    Type      string     `json:"type"`
    Message   string     `json:"message"`
    CreatedAt time.Time  `json:"created_at"`
    ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// streamPart carries what the player component consumes. Src is the
// HLS manifest served by the streaming CDN; it is absent while the
// camera has no provisioned stream.
type streamPart struct {
    Src    string  `json:"src,omitempty"`
    Poster *string `json:"poster,omitempty"`
}

// PublicCameraDetail is the camera page payload: the camera, its player
// source and any active alerts.
type PublicCameraDetail struct {
    PublicCamera
    Stream streamPart    `json:"stream"`
    Alerts []PublicAlert `json:"alerts"`
}

func toPublicCamera(cam repository.Camera) PublicCamera {
    return PublicCamera{
        ID:           cam.ID,
        Name:         cam.Name,
        Description:  cam.Description,
        LodgeName:    cam.LodgeName,
        Region:       cam.Region,
        AnimalType:   cam.AnimalType,
        ThumbnailURL: cam.ThumbnailURL,
        BookingURL:   cam.BookingURL,
        Featured:     cam.Featured,
        ViewerCount:  cam.ViewerCount,
        TotalViews:   cam.TotalViews,
    }
}

// GetCameras lists active cameras, featured first. Optional ?region= and
// ?animal_type= query parameters narrow the listing.
func (h *PublicHandler) GetCameras(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    cams, err := h.CameraRepo.ListActive(ctx, c.QueryParam("region"), c.QueryParam("animal_type"))
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list cameras failed"})
    }
    out := make([]PublicCamera, 0, len(cams))
    for _, cam := range cams {
        out = append(out, toPublicCamera(cam))
    }
    return c.JSON(http.StatusOK, echo.Map{"cameras": out})
}

// GetCamera returns the detail payload for one active camera, including
// the player source and active alerts. Cameras that are not active are
// reported as not found to the public. Each hit bumps the all-time view
// counter, best-effort.
func (h *PublicHandler) GetCamera(c echo.Context) error {
    id := c.Param("id")

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    cam, err := h.CameraRepo.GetByID(ctx, id)
    if err != nil {
        if errors.Is(err, repository.ErrCameraNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "camera not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load camera failed"})
    }
    if cam.Status != repository.StatusActive {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "camera not found"})
    }

    alerts, err := h.AlertRepo.ListActiveByCamera(ctx, cam.ID)
    if err != nil {
        // Alerts are decoration on the camera page; a failed alert query
        // degrades to an empty list rather than failing the whole page.
        alerts = nil
    }
    outAlerts := make([]PublicAlert, 0, len(alerts))
    for _, a := range alerts {
        outAlerts = append(outAlerts, PublicAlert{
            ID: a.ID, Type: a.Type, Message: a.Message,
            CreatedAt: a.CreatedAt, ExpiresAt: a.ExpiresAt,
        })
    }

    detail := PublicCameraDetail{
        PublicCamera: toPublicCamera(*cam),
        Stream:       streamPart{Poster: cam.ThumbnailURL},
        Alerts:       outAlerts,
    }
    if cam.CloudflareStreamID != nil && *cam.CloudflareStreamID != "" {
        detail.Stream.Src = fmt.Sprintf("https://videodelivery.net/%s/manifest/video.m3u8", *cam.CloudflareStreamID)
    }

    if err := h.CameraRepo.IncrementViews(ctx, cam.ID); err != nil {
        c.Logger().Warnf("increment views for %s: %v", cam.ID, err)
    }

    return c.JSON(http.StatusOK, detail)
}
