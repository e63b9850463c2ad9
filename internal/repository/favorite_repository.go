package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Favorite mirrors the 'favorite_cameras' table. The (user_id, camera_id)
// pair is unique.
type Favorite struct {
	ID        string
	UserID    string
	CameraID  string
	CreatedAt time.Time
}

// FavoriteWithCamera joins a favorite to its camera. Camera is nil when
// the referenced camera has been deleted; callers filter such entries
// instead of treating them as an error.
type FavoriteWithCamera struct {
	Favorite
	Camera *Camera
}

var ErrAlreadyFavorited = errors.New("camera already favorited")

// ErrFavoriteNotFound indicates that no favorite row matched the lookup.
var ErrFavoriteNotFound = errors.New("favorite not found")

type FavoriteRepo struct{ DB *sql.DB }

func NewFavoriteRepo(db *sql.DB) *FavoriteRepo { return &FavoriteRepo{DB: db} }

// Add records a favorite for the given user. Duplicate pairs surface as
// ErrAlreadyFavorited via the unique constraint.
func (r *FavoriteRepo) Add(ctx context.Context, userID, cameraID string) (string, error) {
	id := uuid.NewString()
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO favorite_cameras (id, user_id, camera_id) VALUES ($1,$2,$3)",
		id, userID, cameraID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case "23505": // unique_violation on (user_id, camera_id)
				return "", ErrAlreadyFavorited
			case "23503": // foreign_key_violation: camera does not exist
				return "", ErrCameraNotFound
			}
		}
		return "", err
	}
	return id, nil
}

// Remove deletes a favorite scoped to the owning user, so one user can
// never unfavorite on behalf of another.
func (r *FavoriteRepo) Remove(ctx context.Context, userID, cameraID string) error {
	res, err := r.DB.ExecContext(ctx,
		"DELETE FROM favorite_cameras WHERE user_id=$1 AND camera_id=$2",
		userID, cameraID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

// ListWithCamera returns the user's favorites joined to their cameras,
// newest favorite first. The user scope lives in the query; a LEFT JOIN
// keeps favorites whose camera has vanished, reported with a nil Camera.
func (r *FavoriteRepo) ListWithCamera(ctx context.Context, userID string) ([]FavoriteWithCamera, error) {
	const q = `SELECT f.id, f.user_id, f.camera_id, f.created_at,
			c.id, c.creator_id, c.name, c.description, c.lodge_name, c.region, c.animal_type,
			c.rtmp_url, c.cloudflare_stream_id, c.thumbnail_url, c.status, c.booking_url, c.featured,
			c.viewer_count, c.total_views, c.created_at, c.updated_at
		FROM favorite_cameras f
		LEFT JOIN cameras c ON c.id = f.camera_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC`
	rows, err := r.DB.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []FavoriteWithCamera
	for rows.Next() {
		var (
			fw FavoriteWithCamera
			// camera columns are all nullable through the LEFT JOIN
			camID, camCreator, camName, camDesc, camLodge   sql.NullString
			camRegion, camAnimal, camRTMP, camStatus        sql.NullString
			camStream, camThumb, camBooking                 sql.NullString
			camFeatured                                     sql.NullBool
			camViewers, camViews                            sql.NullInt64
			camCreated, camUpdated                          sql.NullTime
		)
		if err := rows.Scan(
			&fw.ID, &fw.UserID, &fw.CameraID, &fw.CreatedAt,
			&camID, &camCreator, &camName, &camDesc, &camLodge,
			&camRegion, &camAnimal, &camRTMP, &camStream,
			&camThumb, &camStatus, &camBooking, &camFeatured,
			&camViewers, &camViews, &camCreated, &camUpdated,
		); err != nil {
			return nil, err
		}
		if camID.Valid {
			cam := Camera{
				ID:          camID.String,
				CreatorID:   camCreator.String,
				Name:        camName.String,
				Description: camDesc.String,
				LodgeName:   camLodge.String,
				Region:      camRegion.String,
				AnimalType:  camAnimal.String,
				RTMPURL:     camRTMP.String,
				Status:      camStatus.String,
				Featured:    camFeatured.Bool,
				ViewerCount: camViewers.Int64,
				TotalViews:  camViews.Int64,
				CreatedAt:   camCreated.Time,
				UpdatedAt:   camUpdated.Time,
			}
			if camStream.Valid {
				cam.CloudflareStreamID = &camStream.String
			}
			if camThumb.Valid {
				cam.ThumbnailURL = &camThumb.String
			}
			if camBooking.Valid {
				cam.BookingURL = &camBooking.String
			}
			fw.Camera = &cam
		}
		result = append(result, fw)
	}
	return result, rows.Err()
}
