package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// Publisher publishes fan-out events. Persistent events are stored in
// the events table then broadcast via NOTIFY in the same transaction
// (pg_notify is transactional — held until COMMIT). Transient signals
// (queue wakeups, rule-cache busts) are NOTIFY only.
//
// Publish never returns an error: fan-out is best-effort by contract,
// and no caller should fail a committed write because a notification
// could not be delivered.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a new Publisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewPublisher(db *sql.DB) *Publisher {
	if db == nil {
		panic("NewPublisher: db must not be nil")
	}
	return &Publisher{db: db}
}

// Publish persists an event and broadcasts it on the fan-out channel.
// The payload is enriched with type and timestamp before storage so
// SSE frames and catchup rows carry identical envelopes.
func (p *Publisher) Publish(ctx context.Context, eventType string, payload map[string]any) {
	if payload == nil {
		payload = map[string]any{}
	}
	payload["type"] = eventType
	payload["timestamp"] = time.Now().UTC().Format(time.RFC3339Nano)

	if err := p.persistAndNotify(ctx, eventType, payload); err != nil {
		slog.Error("Failed to publish fan-out event", "event_type", eventType, "error", err)
	}
}

// WakeQueue broadcasts a transient wakeup to queue workers on all pods.
func (p *Publisher) WakeQueue(ctx context.Context) {
	if err := p.notifyOnly(ctx, ChannelQueue, []byte(`{"type":"wake"}`)); err != nil {
		slog.Warn("Failed to notify queue channel", "error", err)
	}
}

// BustRuleCache broadcasts a transient rule-cache invalidation to all
// pods. Called after rule writes; the local cache is invalidated
// directly, this covers the other replicas.
func (p *Publisher) BustRuleCache(ctx context.Context) {
	if err := p.notifyOnly(ctx, ChannelRules, []byte(`{"type":"rules_changed"}`)); err != nil {
		slog.Warn("Failed to notify rules channel", "error", err)
	}
}

// persistAndNotify inserts the event row and fires pg_notify in one
// transaction.
func (p *Publisher) persistAndNotify(ctx context.Context, eventType string, payload map[string]any) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin event transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (channel, event_type, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		ChannelEvents, eventType, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	// NOTIFY payload carries db_event_id so subscribers can track their
	// catchup position.
	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", ChannelEvents, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}
	return nil
}

// notifyOnly broadcasts via NOTIFY without persisting.
func (p *Publisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// injectDBEventIDAndTruncate adds db_event_id to the JSON payload for
// NOTIFY delivery and applies truncation if the result exceeds
// PostgreSQL's limit.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enrichedBytes, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}

	return truncateIfNeeded(string(enrichedBytes))
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal
// truncation envelope with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload creates a minimal truncation envelope from the
// full JSON payload bytes, extracting only the routing fields a client
// needs to fetch the complete event from the database.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type       string `json:"type"`
		InstanceID string `json:"instance_id"`
		DBEventID  *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":        routing.Type,
		"instance_id": routing.InstanceID,
		"truncated":   true,
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
