package repository

import (
	"context"
	"database/sql"
	"time"
)

// Subscription tiers. A single-camera subscription references one camera;
// an all-access subscription carries a NULL camera_id and covers every
// camera on the platform.
const (
	TierFree      = "free"
	TierSingle    = "single"
	TierAllAccess = "all-access"
)

// Subscription mirrors the 'subscriptions' table. Rows are written by the
// payment processor's webhook pipeline; this layer only reads them.
type Subscription struct {
	ID                   string
	UserID               string
	CameraID             *string
	Tier                 string
	StripeSubscriptionID *string
	StripeCustomerID     *string
	Status               string
	CurrentPeriodStart   time.Time
	CurrentPeriodEnd     time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type SubscriptionRepo struct{ DB *sql.DB }

func NewSubscriptionRepo(db *sql.DB) *SubscriptionRepo { return &SubscriptionRepo{DB: db} }

// ListByUser returns the user's subscriptions, newest first.
func (r *SubscriptionRepo) ListByUser(ctx context.Context, userID string) ([]Subscription, error) {
	const q = `SELECT id, user_id, camera_id, tier, stripe_subscription_id, stripe_customer_id,
			status, current_period_start, current_period_end, created_at, updated_at
		FROM subscriptions WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []Subscription
	for rows.Next() {
		var s Subscription
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.CameraID, &s.Tier, &s.StripeSubscriptionID,
			&s.StripeCustomerID, &s.Status, &s.CurrentPeriodStart,
			&s.CurrentPeriodEnd, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

// HasAccess reports whether the user holds an active subscription covering
// the camera: either a single-camera subscription for that camera or an
// all-access subscription (NULL camera_id).
func (r *SubscriptionRepo) HasAccess(ctx context.Context, userID, cameraID string) (bool, error) {
	const q = `SELECT EXISTS (
		SELECT 1 FROM subscriptions
		WHERE user_id = $1 AND status = 'active'
		  AND (camera_id = $2 OR (tier = 'all-access' AND camera_id IS NULL))
	)`
	var ok bool
	err := r.DB.QueryRowContext(ctx, q, userID, cameraID).Scan(&ok)
	return ok, err
}
