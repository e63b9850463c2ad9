package repository

import "testing"

func TestValidStatusChange(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		// review resolutions
		{StatusPending, StatusActive, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusInactive, false},
		// creator toggle
		{StatusActive, StatusInactive, true},
		{StatusInactive, StatusActive, true},
		// approving a camera that is not pending
		{StatusActive, StatusActive, false},
		{StatusInactive, StatusRejected, false},
		// rejected is terminal
		{StatusRejected, StatusActive, false},
		{StatusRejected, StatusPending, false},
		{StatusActive, StatusPending, false},
	}
	for _, c := range cases {
		if got := validStatusChange(c.from, c.to); got != c.want {
			t.Errorf("validStatusChange(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestOppositeOf(t *testing.T) {
	if oppositeOf(StatusActive) != StatusInactive {
		t.Error("enabling must require an inactive camera")
	}
	if oppositeOf(StatusInactive) != StatusActive {
		t.Error("disabling must require an active camera")
	}
}
