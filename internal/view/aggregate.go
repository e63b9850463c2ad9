// Package view composes repository results into page-shaped read models.
// Everything in this package is pure: no I/O, no clock, no store access.
// Handlers fetch rows through the repositories and pass them in.
package view

import "github.com/wildlens/wildlens-api/internal/repository"

// FavoritesPage drops favorites whose camera has been deleted and keeps
// the repository's ordering (newest favorite first). A favorite without
// a camera is display noise, not an error.
func FavoritesPage(rows []repository.FavoriteWithCamera) []repository.FavoriteWithCamera {
	out := make([]repository.FavoriteWithCamera, 0, len(rows))
	for _, row := range rows {
		if row.Camera != nil {
			out = append(out, row)
		}
	}
	return out
}

// AdminStats is the admin dashboard read model. PartialData is set when
// one or more of the underlying counts failed and was degraded to zero.
type AdminStats struct {
	TotalUsers     int64 `json:"total_users"`
	TotalCameras   int64 `json:"total_cameras"`
	ActiveCameras  int64 `json:"active_cameras"`
	PendingCameras int64 `json:"pending_cameras"`
	PartialData    bool  `json:"partial_data"`
}

// NewAdminStats shapes platform counts for display.
func NewAdminStats(counts repository.PlatformCounts, partial bool) AdminStats {
	return AdminStats{
		TotalUsers:     counts.TotalUsers,
		TotalCameras:   counts.TotalCameras,
		ActiveCameras:  counts.ActiveCameras,
		PendingCameras: counts.PendingCameras,
		PartialData:    partial,
	}
}

// RevenueModel estimates a creator's revenue and pending payout from
// their cameras. It exists so the flat-rate placeholder below can be
// replaced by a model that sums the transaction ledger once payout data
// is wired through.
type RevenueModel interface {
	Estimate(cameras []repository.Camera) (totalRevenue, pendingPayout float64)
}

// FlatRateModel is a placeholder revenue model: a flat monthly figure
// per registered camera with a fixed creator share. It is deliberately
// not derived from transactions.
type FlatRateModel struct {
	PerCameraMonthly float64
	CreatorShare     float64
}

// DefaultRevenueModel mirrors the launch assumptions: $120 per camera
// per month with a 60% creator split.
var DefaultRevenueModel = FlatRateModel{PerCameraMonthly: 120, CreatorShare: 0.6}

func (m FlatRateModel) Estimate(cameras []repository.Camera) (float64, float64) {
	total := float64(len(cameras)) * m.PerCameraMonthly
	return total, total * m.CreatorShare
}

// CreatorAnalytics is the creator dashboard read model.
type CreatorAnalytics struct {
	ActiveCameras int     `json:"active_cameras"`
	TotalCameras  int     `json:"total_cameras"`
	TotalViewers  int64   `json:"total_viewers"`
	TotalViews    int64   `json:"total_views"`
	TotalRevenue  float64 `json:"total_revenue"`
	PendingPayout float64 `json:"pending_payout"`
}

// NewCreatorAnalytics derives dashboard figures from the creator's
// cameras: live viewer and all-time view sums, the active camera count,
// and revenue figures from the given model.
func NewCreatorAnalytics(cameras []repository.Camera, model RevenueModel) CreatorAnalytics {
	a := CreatorAnalytics{TotalCameras: len(cameras)}
	for _, cam := range cameras {
		if cam.Status == repository.StatusActive {
			a.ActiveCameras++
		}
		a.TotalViewers += cam.ViewerCount
		a.TotalViews += cam.TotalViews
	}
	a.TotalRevenue, a.PendingPayout = model.Estimate(cameras)
	return a
}
