// Package queue defines message payloads exchanged over the message broker.
package queue

// CameraReviewedEvent is published when an admin resolves a pending
// camera. It carries enough information for downstream consumers to log,
// notify the creator, or trigger stream provisioning without querying
// the primary database.
type CameraReviewedEvent struct {
    CameraID   string `json:"camera_id"`
    Decision   string `json:"decision"` // "active" or "rejected"
    ReviewerID string `json:"reviewer_id"`
    ReviewedAt string `json:"reviewed_at"`
}
