package view

import (
	"testing"

	"github.com/wildlens/wildlens-api/internal/repository"
)

func TestFavoritesPageFiltersDeletedCameras(t *testing.T) {
	cam1 := &repository.Camera{ID: "cam-1", Name: "Lion Pride"}
	cam3 := &repository.Camera{ID: "cam-3", Name: "Reef East"}
	rows := []repository.FavoriteWithCamera{
		{Favorite: repository.Favorite{ID: "f1", CameraID: "cam-1"}, Camera: cam1},
		{Favorite: repository.Favorite{ID: "f2", CameraID: "cam-2"}, Camera: nil},
		{Favorite: repository.Favorite{ID: "f3", CameraID: "cam-3"}, Camera: cam3},
	}

	page := FavoritesPage(rows)

	if len(page) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(page))
	}
	for _, e := range page {
		if e.Camera == nil {
			t.Errorf("entry %s has nil camera", e.ID)
		}
	}
	// Order is preserved.
	if page[0].ID != "f1" || page[1].ID != "f3" {
		t.Errorf("order not preserved: got %s, %s", page[0].ID, page[1].ID)
	}
}

func TestFavoritesPageEmpty(t *testing.T) {
	if got := FavoritesPage(nil); len(got) != 0 {
		t.Errorf("expected empty page, got %d entries", len(got))
	}
}

func TestNewAdminStatsCarriesPartialFlag(t *testing.T) {
	counts := repository.PlatformCounts{TotalUsers: 10, TotalCameras: 4, ActiveCameras: 3, PendingCameras: 1}

	stats := NewAdminStats(counts, true)

	if stats.TotalUsers != 10 || stats.TotalCameras != 4 || stats.ActiveCameras != 3 || stats.PendingCameras != 1 {
		t.Errorf("counts not passed through: %+v", stats)
	}
	if !stats.PartialData {
		t.Error("partial flag lost")
	}
	if NewAdminStats(counts, false).PartialData {
		t.Error("partial flag set without failure")
	}
}

func TestNewCreatorAnalyticsEmpty(t *testing.T) {
	a := NewCreatorAnalytics(nil, DefaultRevenueModel)

	if a.ActiveCameras != 0 || a.TotalViewers != 0 || a.TotalViews != 0 {
		t.Errorf("expected zero counters, got %+v", a)
	}
	if a.TotalRevenue != 0 || a.PendingPayout != 0 {
		t.Errorf("expected zero revenue, got %+v", a)
	}
}

func TestNewCreatorAnalyticsSums(t *testing.T) {
	cameras := []repository.Camera{
		{Status: repository.StatusActive, ViewerCount: 5, TotalViews: 100},
		{Status: repository.StatusInactive, ViewerCount: 0, TotalViews: 50},
		{Status: repository.StatusActive, ViewerCount: 10, TotalViews: 0},
	}

	a := NewCreatorAnalytics(cameras, DefaultRevenueModel)

	if a.ActiveCameras != 2 {
		t.Errorf("active cameras: got %d, want 2", a.ActiveCameras)
	}
	if a.TotalViewers != 15 {
		t.Errorf("total viewers: got %d, want 15", a.TotalViewers)
	}
	if a.TotalViews != 150 {
		t.Errorf("total views: got %d, want 150", a.TotalViews)
	}
	if a.TotalRevenue != 360 {
		t.Errorf("total revenue: got %v, want 360", a.TotalRevenue)
	}
	if a.PendingPayout != 216 {
		t.Errorf("pending payout: got %v, want 216", a.PendingPayout)
	}
}

// A ledger-backed model can be swapped in without touching the
// aggregation.
type fixedModel struct{ revenue, payout float64 }

func (m fixedModel) Estimate([]repository.Camera) (float64, float64) {
	return m.revenue, m.payout
}

func TestNewCreatorAnalyticsCustomModel(t *testing.T) {
	cameras := []repository.Camera{{Status: repository.StatusActive}}

	a := NewCreatorAnalytics(cameras, fixedModel{revenue: 99.5, payout: 42})

	if a.TotalRevenue != 99.5 || a.PendingPayout != 42 {
		t.Errorf("model not used: %+v", a)
	}
}
