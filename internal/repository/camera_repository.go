// Package repository contains data access logic separated from HTTP handlers.
// This file defines the Camera model and repository methods for browsing,
// creator management and moderation. A Camera represents a live wildlife
// stream registered by a creator. Internal fields such as RTMPURL and
// CreatorID should not be exposed via public API responses.

package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"       // errors is used to define custom error values
	"time"

	"github.com/google/uuid"
)

// Camera status lifecycle values. A newly submitted camera starts as
// StatusPending and is moved to StatusActive or StatusRejected by an
// admin review. Creators toggle their own cameras between StatusActive
// and StatusInactive.
const (
	StatusPending  = "pending"
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusRejected = "rejected"
)

// Camera represents a camera entity persisted in the database. Each camera
// belongs to a single creator.
type Camera struct {
	ID                 string
	CreatorID          string
	Name               string
	Description        string
	LodgeName          string
	Region             string
	AnimalType         string
	RTMPURL            string
	CloudflareStreamID *string
	ThumbnailURL       *string
	Status             string
	BookingURL         *string
	Featured           bool
	ViewerCount        int64
	TotalViews         int64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// PendingCamera is a camera joined with its creator's contact fields for
// the moderation queue.
type PendingCamera struct {
	Camera
	CreatorName  *string
	CreatorEmail string
}

// ErrCameraNotFound is returned when a camera cannot be found in the DB.
var ErrCameraNotFound = errors.New("camera not found")

const cameraCols = `id, creator_id, name, description, lodge_name, region, animal_type,
	rtmp_url, cloudflare_stream_id, thumbnail_url, status, booking_url, featured,
	viewer_count, total_views, created_at, updated_at`

// CameraRepo encapsulates all database queries related to cameras.
type CameraRepo struct {
	db *sql.DB
}

// NewCameraRepo constructs a CameraRepo with the provided DB handle.
func NewCameraRepo(db *sql.DB) *CameraRepo {
	return &CameraRepo{db: db}
}

func scanCamera(row interface{ Scan(...any) error }, cam *Camera) error {
	return row.Scan(
		&cam.ID, &cam.CreatorID, &cam.Name, &cam.Description, &cam.LodgeName,
		&cam.Region, &cam.AnimalType, &cam.RTMPURL, &cam.CloudflareStreamID,
		&cam.ThumbnailURL, &cam.Status, &cam.BookingURL, &cam.Featured,
		&cam.ViewerCount, &cam.TotalViews, &cam.CreatedAt, &cam.UpdatedAt,
	)
}

// Create inserts a new camera in pending status and assigns the generated
// ID back to the camera struct. Status, counters and timestamps are set by
// DB defaults; a follow-up SELECT populates them so callers receive a
// fully populated record.
func (r *CameraRepo) Create(ctx context.Context, cam *Camera) error {
	cam.ID = uuid.NewString()
	const qInsert = `INSERT INTO cameras
		(id, creator_id, name, description, lodge_name, region, animal_type, rtmp_url, booking_url)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`
	if _, err := r.db.ExecContext(ctx, qInsert,
		cam.ID, cam.CreatorID, cam.Name, cam.Description, cam.LodgeName,
		cam.Region, cam.AnimalType, cam.RTMPURL, cam.BookingURL); err != nil {
		return err
	}
	const qSelect = `SELECT ` + cameraCols + ` FROM cameras WHERE id = $1`
	return scanCamera(r.db.QueryRowContext(ctx, qSelect, cam.ID), cam)
}

// GetByID retrieves a camera by its ID. It returns ErrCameraNotFound if
// there is no matching row.
func (r *CameraRepo) GetByID(ctx context.Context, id string) (*Camera, error) {
	const q = `SELECT ` + cameraCols + ` FROM cameras WHERE id = $1`
	var cam Camera
	if err := scanCamera(r.db.QueryRowContext(ctx, q, id), &cam); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCameraNotFound
		}
		return nil, err
	}
	return &cam, nil
}

// ListActive returns active cameras for the public browse view, featured
// first and newest within each group. Region and animal filters are
// optional; empty strings disable them.
func (r *CameraRepo) ListActive(ctx context.Context, region, animalType string) ([]Camera, error) {
	const q = `SELECT ` + cameraCols + ` FROM cameras
		WHERE status = 'active'
		  AND ($1 = '' OR region = $1)
		  AND ($2 = '' OR animal_type = $2)
		ORDER BY featured DESC, created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, region, animalType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []Camera
	for rows.Next() {
		var cam Camera
		if err := scanCamera(rows, &cam); err != nil {
			return nil, err
		}
		result = append(result, cam)
	}
	return result, rows.Err()
}

// ListByCreator returns all cameras belonging to the given creator,
// newest first. Used by the creator dashboard and analytics.
func (r *CameraRepo) ListByCreator(ctx context.Context, creatorID string) ([]Camera, error) {
	const q = `SELECT ` + cameraCols + ` FROM cameras WHERE creator_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, creatorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []Camera
	for rows.Next() {
		var cam Camera
		if err := scanCamera(rows, &cam); err != nil {
			return nil, err
		}
		result = append(result, cam)
	}
	return result, rows.Err()
}

// ListPendingWithCreator returns cameras awaiting review joined with the
// submitting creator's name and email, newest submissions first. The
// status filter lives in the query so the moderation view can never leak
// non-pending cameras.
func (r *CameraRepo) ListPendingWithCreator(ctx context.Context) ([]PendingCamera, error) {
	const q = `SELECT c.id, c.creator_id, c.name, c.description, c.lodge_name, c.region, c.animal_type,
			c.rtmp_url, c.cloudflare_stream_id, c.thumbnail_url, c.status, c.booking_url, c.featured,
			c.viewer_count, c.total_views, c.created_at, c.updated_at,
			u.full_name, u.email
		FROM cameras c
		JOIN users u ON u.id = c.creator_id
		WHERE c.status = 'pending'
		ORDER BY c.created_at DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []PendingCamera
	for rows.Next() {
		var pc PendingCamera
		if err := rows.Scan(
			&pc.ID, &pc.CreatorID, &pc.Name, &pc.Description, &pc.LodgeName,
			&pc.Region, &pc.AnimalType, &pc.RTMPURL, &pc.CloudflareStreamID,
			&pc.ThumbnailURL, &pc.Status, &pc.BookingURL, &pc.Featured,
			&pc.ViewerCount, &pc.TotalViews, &pc.CreatedAt, &pc.UpdatedAt,
			&pc.CreatorName, &pc.CreatorEmail,
		); err != nil {
			return nil, err
		}
		result = append(result, pc)
	}
	return result, rows.Err()
}

// validStatusChange reports whether a camera may move from one status to
// another: pending is resolved to active or rejected by review, and
// active/inactive toggle. Everything else is rejected.
func validStatusChange(from, to string) bool {
	switch from {
	case StatusPending:
		return to == StatusActive || to == StatusRejected
	case StatusActive:
		return to == StatusInactive
	case StatusInactive:
		return to == StatusActive
	}
	return false
}

// Review resolves a pending camera to active or rejected. The pending
// precondition is part of the UPDATE predicate; when no row is updated a
// probe distinguishes a missing camera from an illegal transition.
func (r *CameraRepo) Review(ctx context.Context, id, decision string) error {
	if !validStatusChange(StatusPending, decision) {
		return ErrInvalidTransition
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE cameras SET status = $2, updated_at = NOW() WHERE id = $1 AND status = 'pending'`,
		id, decision)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	var status string
	err = r.db.QueryRowContext(ctx, `SELECT status FROM cameras WHERE id = $1`, id).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrCameraNotFound
	}
	if err != nil {
		return err
	}
	return ErrInvalidTransition
}

// SetEnabled toggles a camera between active and inactive. Creators may
// only toggle their own cameras; admins may toggle any. Ownership and the
// current-status precondition are enforced in the UPDATE predicate, with
// a follow-up probe to report the precise failure.
func (r *CameraRepo) SetEnabled(ctx context.Context, id, actorID string, admin bool, enable bool) error {
	target := StatusInactive
	if enable {
		target = StatusActive
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE cameras SET status = $2, updated_at = NOW()
		 WHERE id = $1 AND (creator_id = $3 OR $4) AND status = $5`,
		id, target, actorID, admin, oppositeOf(target))
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	var creatorID, status string
	err = r.db.QueryRowContext(ctx, `SELECT creator_id, status FROM cameras WHERE id = $1`, id).
		Scan(&creatorID, &status)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrCameraNotFound
	}
	if err != nil {
		return err
	}
	if !admin && creatorID != actorID {
		return ErrForbidden
	}
	// The toggle only moves between active and inactive; any other current
	// status (pending, rejected, or already at the target) is an invalid
	// transition rather than a silent no-op.
	return ErrInvalidTransition
}

func oppositeOf(target string) string {
	if target == StatusActive {
		return StatusInactive
	}
	return StatusActive
}

// CountAll returns the total number of cameras on the platform.
func (r *CameraRepo) CountAll(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM cameras").Scan(&n)
	return n, err
}

// CountByStatus returns the number of cameras in the given status.
func (r *CameraRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM cameras WHERE status = $1", status).Scan(&n)
	return n, err
}

// IncrementViews bumps the all-time view counter for a camera. Missing
// rows are ignored; view counting is best-effort.
func (r *CameraRepo) IncrementViews(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE cameras SET total_views = total_views + 1 WHERE id = $1", id)
	return err
}
