package facades

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/finledger/wallet-ledger/internal/logger"
	"github.com/finledger/wallet-ledger/internal/models"
)

// ReviewQueueKey is the Redis list holding audit events awaiting manual review.
const ReviewQueueKey = "audit:review"

// ReviewQueueFacade pushes risk-flagged audit events onto a Redis list for
// downstream review tooling.
type ReviewQueueFacade struct {
	client *redis.Client
}

// NewReviewQueueFacade creates a new facade with a Redis client.
func NewReviewQueueFacade(client *redis.Client) *ReviewQueueFacade {
	return &ReviewQueueFacade{client: client}
}

// Push appends one audit event to the review queue.
func (f *ReviewQueueFacade) Push(ctx context.Context, event *models.AuditEventDB) error {
	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal audit event for review queue", "audit_id", event.AuditID, "error", err)
		return err
	}

	if err := f.client.RPush(ctx, ReviewQueueKey, data).Err(); err != nil {
		logger.Log.Errorw("failed to push audit event to review queue", "audit_id", event.AuditID, "error", err)
		return err
	}

	return nil
}
