package repository

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fixedCount(n int64) func(context.Context) (int64, error) {
	return func(context.Context) (int64, error) { return n, nil }
}

func failingCount(err error) func(context.Context) (int64, error) {
	return func(context.Context) (int64, error) { return 0, err }
}

func TestGatherCountsAllSucceed(t *testing.T) {
	vals, partial := gatherCounts(context.Background(),
		fixedCount(10), fixedCount(4), fixedCount(3), fixedCount(1))

	if partial {
		t.Error("partial flag set without failures")
	}
	want := []int64{10, 4, 3, 1}
	for i, w := range want {
		if vals[i] != w {
			t.Errorf("count %d: got %d, want %d", i, vals[i], w)
		}
	}
}

func TestGatherCountsOneFailure(t *testing.T) {
	// One failing count must not disturb the other three; its slot
	// degrades to 0 and the partial flag is set.
	vals, partial := gatherCounts(context.Background(),
		fixedCount(10), failingCount(errors.New("store unavailable")), fixedCount(3), fixedCount(1))

	if !partial {
		t.Error("partial flag not set")
	}
	if vals[0] != 10 || vals[2] != 3 || vals[3] != 1 {
		t.Errorf("healthy counts disturbed: %v", vals)
	}
	if vals[1] != 0 {
		t.Errorf("failed count: got %d, want 0", vals[1])
	}
}

func TestGatherCountsAllFail(t *testing.T) {
	err := errors.New("store unavailable")
	vals, partial := gatherCounts(context.Background(),
		failingCount(err), failingCount(err), failingCount(err), failingCount(err))

	if !partial {
		t.Error("partial flag not set")
	}
	for i, v := range vals {
		if v != 0 {
			t.Errorf("count %d: got %d, want 0", i, v)
		}
	}
}

func TestGatherCountsSlowSiblingDoesNotBlockResult(t *testing.T) {
	// Counts run concurrently: total wall time must be near the slowest
	// single count, not the sum.
	slow := func(ctx context.Context) (int64, error) {
		time.Sleep(50 * time.Millisecond)
		return 7, nil
	}
	start := time.Now()
	vals, partial := gatherCounts(context.Background(), slow, slow, slow, slow)
	elapsed := time.Since(start)

	if partial {
		t.Error("unexpected partial flag")
	}
	for i, v := range vals {
		if v != 7 {
			t.Errorf("count %d: got %d, want 7", i, v)
		}
	}
	if elapsed > 150*time.Millisecond {
		t.Errorf("counts appear sequential: took %s", elapsed)
	}
}
