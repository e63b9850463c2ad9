package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wildlens/wildlens-api/internal/auth"
	"github.com/wildlens/wildlens-api/internal/repository"
	"github.com/wildlens/wildlens-api/internal/view"
)

// ViewerHandler bundles repositories for an authenticated user's own
// library: favorites, subscriptions and transaction history. Every query
// is scoped to the acting user at the repository boundary.
type ViewerHandler struct {
	Favorites     *repository.FavoriteRepo
	Subscriptions *repository.SubscriptionRepo
	Transactions  *repository.TransactionRepo
}

func NewViewerHandler(f *repository.FavoriteRepo, s *repository.SubscriptionRepo, t *repository.TransactionRepo) *ViewerHandler {
	return &ViewerHandler{Favorites: f, Subscriptions: s, Transactions: t}
}

type favoriteEntry struct {
	ID        string       `json:"id"`
	CreatedAt time.Time    `json:"created_at"`
	Camera    PublicCamera `json:"camera"`
}

type addFavoriteReq struct {
	CameraID string `json:"camera_id"`
}

// GetFavorites returns the actor's favorites joined to their cameras,
// newest first. Favorites whose camera was deleted are filtered out by
// the view layer.
func (h *ViewerHandler) GetFavorites(c echo.Context) error {
	actor, ok := requireCapability(c, auth.CapUseLibrary)
	if !ok {
		return nil
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rows, err := h.Favorites.ListWithCamera(ctx, actor.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list favorites failed"})
	}

	page := view.FavoritesPage(rows)
	out := make([]favoriteEntry, 0, len(page))
	for _, row := range page {
		out = append(out, favoriteEntry{
			ID:        row.ID,
			CreatedAt: row.CreatedAt,
			Camera:    toPublicCamera(*row.Camera),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"favorites": out})
}

// AddFavorite bookmarks a camera for the actor.
func (h *ViewerHandler) AddFavorite(c echo.Context) error {
	actor, ok := requireCapability(c, auth.CapUseLibrary)
	if !ok {
		return nil
	}
	var req addFavoriteReq
	if err := c.Bind(&req); err != nil || req.CameraID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "camera_id required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Favorites.Add(ctx, actor.ID, req.CameraID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrAlreadyFavorited):
			return c.JSON(http.StatusConflict, echo.Map{"error": "already favorited"})
		case errors.Is(err, repository.ErrCameraNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "camera not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "add favorite failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

// RemoveFavorite deletes the actor's favorite for a camera.
func (h *ViewerHandler) RemoveFavorite(c echo.Context) error {
	actor, ok := requireCapability(c, auth.CapUseLibrary)
	if !ok {
		return nil
	}
	cameraID := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Favorites.Remove(ctx, actor.ID, cameraID); err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "favorite not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "remove favorite failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

type subscriptionPart struct {
	ID          string    `json:"id"`
	CameraID    *string   `json:"camera_id,omitempty"`
	Tier        string    `json:"tier"`
	Status      string    `json:"status"`
	PeriodStart time.Time `json:"current_period_start"`
	PeriodEnd   time.Time `json:"current_period_end"`
}

// GetSubscriptions lists the actor's subscriptions.
func (h *ViewerHandler) GetSubscriptions(c echo.Context) error {
	actor, ok := requireCapability(c, auth.CapUseLibrary)
	if !ok {
		return nil
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	subs, err := h.Subscriptions.ListByUser(ctx, actor.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list subscriptions failed"})
	}
	out := make([]subscriptionPart, 0, len(subs))
	for _, s := range subs {
		out = append(out, subscriptionPart{
			ID: s.ID, CameraID: s.CameraID, Tier: s.Tier, Status: s.Status,
			PeriodStart: s.CurrentPeriodStart, PeriodEnd: s.CurrentPeriodEnd,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"subscriptions": out})
}

// GetCameraAccess reports whether the actor's subscriptions cover the
// given camera. The player uses this to decide between the live stream
// and the upgrade prompt.
func (h *ViewerHandler) GetCameraAccess(c echo.Context) error {
	actor, ok := requireCapability(c, auth.CapUseLibrary)
	if !ok {
		return nil
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	ok, err := h.Subscriptions.HasAccess(ctx, actor.ID, c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "access check failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"has_access": ok})
}

type transactionPart struct {
	ID        string    `json:"id"`
	CameraID  *string   `json:"camera_id,omitempty"`
	Type      string    `json:"type"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// GetTransactions lists the actor's payment history, newest first.
func (h *ViewerHandler) GetTransactions(c echo.Context) error {
	actor, ok := requireCapability(c, auth.CapUseLibrary)
	if !ok {
		return nil
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	txs, err := h.Transactions.ListByUser(ctx, actor.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list transactions failed"})
	}
	out := make([]transactionPart, 0, len(txs))
	for _, t := range txs {
		out = append(out, transactionPart{
			ID: t.ID, CameraID: t.CameraID, Type: t.Type,
			Amount: t.Amount, Status: t.Status, CreatedAt: t.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"transactions": out})
}
