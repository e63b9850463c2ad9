package repository

import (
	"context"
	"database/sql"
	"time"
)

// Transaction mirrors the 'transactions' table. Rows are produced by
// payment webhooks and payout runs; once completed or failed they are
// immutable, so this repository is read-only.
type Transaction struct {
	ID                    string
	UserID                string
	CameraID              *string
	Type                  string // "subscription" or "payout"
	Amount                float64
	StripePaymentIntentID *string
	Status                string // "pending", "completed" or "failed"
	CreatedAt             time.Time
}

type TransactionRepo struct{ DB *sql.DB }

func NewTransactionRepo(db *sql.DB) *TransactionRepo { return &TransactionRepo{DB: db} }

// ListByUser returns the user's transaction history, newest first.
func (r *TransactionRepo) ListByUser(ctx context.Context, userID string) ([]Transaction, error) {
	const q = `SELECT id, user_id, camera_id, type, amount, stripe_payment_intent_id, status, created_at
		FROM transactions WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []Transaction
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.CameraID, &t.Type, &t.Amount,
			&t.StripePaymentIntentID, &t.Status, &t.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, rows.Err()
}
