package repository

import (
	"context"
	"database/sql"
	"time"
)

// Alert mirrors the 'alerts' table. Alerts announce sightings or stream
// notices on a camera and expire automatically once expires_at passes.
type Alert struct {
	ID        string
	CameraID  string
	Type      string
	Message   string
	IsActive  bool
	CreatedAt time.Time
	ExpiresAt *time.Time
}

type AlertRepo struct{ DB *sql.DB }

func NewAlertRepo(db *sql.DB) *AlertRepo { return &AlertRepo{DB: db} }

// ListActiveByCamera returns the camera's alerts that are flagged active
// and not yet expired, newest first. Expiry is evaluated in the query so
// stale alerts drop out without a cleanup job.
func (r *AlertRepo) ListActiveByCamera(ctx context.Context, cameraID string) ([]Alert, error) {
	const q = `SELECT id, camera_id, type, message, is_active, created_at, expires_at
		FROM alerts
		WHERE camera_id = $1 AND is_active = TRUE
		  AND (expires_at IS NULL OR expires_at > NOW())
		ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, q, cameraID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []Alert
	for rows.Next() {
		var a Alert
		if err := rows.Scan(&a.ID, &a.CameraID, &a.Type, &a.Message, &a.IsActive, &a.CreatedAt, &a.ExpiresAt); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, rows.Err()
}
