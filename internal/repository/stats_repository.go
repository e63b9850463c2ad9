package repository

import (
	"context"
	"database/sql"
	"log"
	"sync"
)

// PlatformCounts is the admin dashboard's headline numbers. The four
// counts are independent reads and may reflect slightly different
// instants; that skew is accepted.
type PlatformCounts struct {
	TotalUsers     int64
	TotalCameras   int64
	ActiveCameras  int64
	PendingCameras int64
}

// StatsRepo issues the counting queries behind the admin dashboard.
type StatsRepo struct {
	db *sql.DB
}

func NewStatsRepo(db *sql.DB) *StatsRepo { return &StatsRepo{db: db} }

func (r *StatsRepo) count(ctx context.Context, q string, args ...any) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, q, args...).Scan(&n)
	return n, err
}

// PlatformCounts runs the four dashboard counts concurrently and joins on
// all of them. A failing count degrades its field to 0 instead of failing
// the aggregate; the returned flag reports whether any count was lost so
// the caller can surface a partial-data indicator.
func (r *StatsRepo) PlatformCounts(ctx context.Context) (PlatformCounts, bool) {
	vals, partial := gatherCounts(ctx,
		func(ctx context.Context) (int64, error) {
			return r.count(ctx, "SELECT COUNT(*) FROM users")
		},
		func(ctx context.Context) (int64, error) {
			return r.count(ctx, "SELECT COUNT(*) FROM cameras")
		},
		func(ctx context.Context) (int64, error) {
			return r.count(ctx, "SELECT COUNT(*) FROM cameras WHERE status = $1", StatusActive)
		},
		func(ctx context.Context) (int64, error) {
			return r.count(ctx, "SELECT COUNT(*) FROM cameras WHERE status = $1", StatusPending)
		},
	)
	return PlatformCounts{
		TotalUsers:     vals[0],
		TotalCameras:   vals[1],
		ActiveCameras:  vals[2],
		PendingCameras: vals[3],
	}, partial
}

// gatherCounts runs each count in its own goroutine and waits for all of
// them. Failures never block or cancel the siblings: the failed slot is
// left at 0, the error is logged, and the partial flag is set.
func gatherCounts(ctx context.Context, fns ...func(context.Context) (int64, error)) ([]int64, bool) {
	vals := make([]int64, len(fns))
	errs := make([]error, len(fns))
	var wg sync.WaitGroup
	for i, fn := range fns {
		wg.Add(1)
		go func(i int, fn func(context.Context) (int64, error)) {
			defer wg.Done()
			n, err := fn(ctx)
			if err != nil {
				errs[i] = err
				return
			}
			vals[i] = n
		}(i, fn)
	}
	wg.Wait()
	partial := false
	for i, err := range errs {
		if err != nil {
			partial = true
			log.Printf("stats: count %d failed: %v", i, err)
		}
	}
	return vals, partial
}
