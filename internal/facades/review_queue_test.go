package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/finledger/wallet-ledger/internal/models"
)

func setupRedisContainer(t *testing.T) (*redis.Client, func()) {
	t.Helper()
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(ctx)
	port, _ := container.MappedPort(ctx, "6379")

	client := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%d", host, port.Int())})
	assert.NoError(t, client.Ping(ctx).Err())

	teardown := func() {
		client.Close()
		container.Terminate(ctx)
	}

	return client, teardown
}

func TestReviewQueueFacade_Push(t *testing.T) {
	client, teardown := setupRedisContainer(t)
	defer teardown()

	facade := NewReviewQueueFacade(client)
	ctx := context.Background()

	walletID := uuid.New()
	event := &models.AuditEventDB{
		AuditID:     uuid.New(),
		WalletID:    &walletID,
		UserID:      uuid.New(),
		EventType:   models.AuditIntegrityViolation,
		Description: "stored hash mismatch",
		RiskScore:   90,
	}

	assert.NoError(t, facade.Push(ctx, event))

	length, err := client.LLen(ctx, ReviewQueueKey).Result()
	assert.NoError(t, err)
	assert.Equal(t, int64(1), length)

	raw, err := client.LPop(ctx, ReviewQueueKey).Result()
	assert.NoError(t, err)

	var got models.AuditEventDB
	assert.NoError(t, json.Unmarshal([]byte(raw), &got))
	assert.Equal(t, event.AuditID, got.AuditID)
	assert.Equal(t, models.AuditIntegrityViolation, got.EventType)
	assert.Equal(t, 90, got.RiskScore)
}

func TestReviewQueueFacade_PushPreservesOrder(t *testing.T) {
	client, teardown := setupRedisContainer(t)
	defer teardown()

	facade := NewReviewQueueFacade(client)
	ctx := context.Background()

	first := &models.AuditEventDB{AuditID: uuid.New(), UserID: uuid.New(), EventType: models.AuditIntegrityViolation, RiskScore: 90}
	second := &models.AuditEventDB{AuditID: uuid.New(), UserID: uuid.New(), EventType: models.AuditTransactionRejected, RiskScore: 80}

	assert.NoError(t, facade.Push(ctx, first))
	assert.NoError(t, facade.Push(ctx, second))

	// Events are consumed oldest first.
	raw, err := client.LPop(ctx, ReviewQueueKey).Result()
	assert.NoError(t, err)
	var got models.AuditEventDB
	assert.NoError(t, json.Unmarshal([]byte(raw), &got))
	assert.Equal(t, first.AuditID, got.AuditID)
}
