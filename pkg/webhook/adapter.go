package webhook

import (
	"context"
	"errors"
	"log/slog"

	"github.com/reflexhq/reflex/ent/instance"
	"github.com/reflexhq/reflex/pkg/services"
)

// Publisher pushes fan-out events after a successful write. The
// concrete implementation persists + pg_notify's in one transaction;
// failures there never fail the webhook.
type Publisher interface {
	Publish(ctx context.Context, eventType string, payload map[string]any)
}

// Fan-out event types emitted by the adapter.
const (
	EventNewMessage  = "new_message"
	EventNewReaction = "new_reaction"
)

// Adapter translates provider webhook envelopes into storage gateway
// calls, queue items, and fan-out events. It never lets a failure
// escape to the HTTP response — errors are recorded in the recovery
// bucket and the endpoint answers 200 regardless.
type Adapter struct {
	messaging  *services.MessagingService
	queue      *services.QueueService
	recovery   *services.RecoveryService
	publisher  Publisher
	maxRetries int
}

// NewAdapter creates a new Adapter. publisher may be nil in tests.
// maxRetries caps sweeper attempts per recorded failure; zero keeps
// the storage default.
func NewAdapter(
	messaging *services.MessagingService,
	queue *services.QueueService,
	recovery *services.RecoveryService,
	publisher Publisher,
	maxRetries int,
) *Adapter {
	if messaging == nil {
		panic("NewAdapter: messaging must not be nil")
	}
	if queue == nil {
		panic("NewAdapter: queue must not be nil")
	}
	if recovery == nil {
		panic("NewAdapter: recovery must not be nil")
	}
	return &Adapter{
		messaging:  messaging,
		queue:      queue,
		recovery:   recovery,
		publisher:  publisher,
		maxRetries: maxRetries,
	}
}

// ProcessIncomingEvent dispatches one envelope. The returned error is
// informational for logging and metrics: by the time it surfaces the
// failure is already in the recovery bucket, and the HTTP layer
// answers 200 either way.
func (a *Adapter) ProcessIncomingEvent(ctx context.Context, instanceID string, env *Envelope) error {
	eventType := NormalizeEventType(env.Event)
	log := slog.With("instance_id", instanceID, "event_type", eventType)

	err := a.dispatch(ctx, instanceID, eventType, env)
	if err != nil {
		log.Warn("Webhook event processing failed", "error", err)
		a.recordFailure(ctx, instanceID, eventType, env, err)
		return err
	}
	return nil
}

// Replay re-runs a stored envelope without recording a fresh failure:
// the recovery sweeper owns the bookkeeping for replayed events.
func (a *Adapter) Replay(ctx context.Context, instanceID string, env *Envelope) error {
	return a.dispatch(ctx, instanceID, NormalizeEventType(env.Event), env)
}

func (a *Adapter) dispatch(ctx context.Context, instanceID, eventType string, env *Envelope) error {
	var err error
	switch eventType {
	case "messages.upsert":
		err = a.handleMessagesUpsert(ctx, instanceID, env)
	case "messages.update":
		err = a.handleMessagesUpdate(ctx, instanceID, env)
	case "messages.delete":
		err = a.handleMessagesDelete(ctx, instanceID, env)
	case "contacts.upsert", "contacts.update":
		err = a.handleContacts(ctx, instanceID, env)
	case "chats.upsert", "chats.update":
		err = a.handleChats(ctx, instanceID, env)
	case "groups.upsert", "groups.update":
		err = a.handleGroups(ctx, instanceID, env)
	case "group.participants.update":
		err = a.handleParticipantsUpdate(ctx, instanceID, env)
	case "call":
		err = a.handleCall(ctx, instanceID, env)
	case "connection.update":
		err = a.handleConnectionUpdate(ctx, instanceID, env)
	default:
		slog.Warn("Ignoring unrecognized webhook event type",
			"instance_id", instanceID, "event_type", eventType)
		return nil
	}
	return err
}

// recordFailure stores the redacted envelope in the recovery bucket
// with its classified error kind. Transient and fk_dependency entries
// are retried by the recovery sweeper; the rest wait for a human.
func (a *Adapter) recordFailure(ctx context.Context, instanceID, eventType string, env *Envelope, cause error) {
	kind := services.ErrorKindFor(classifyAdapterError(cause))

	_, recErr := a.recovery.Record(ctx, services.FailedEventInput{
		InstanceID:    instanceID,
		EventType:     eventType,
		RawPayload:    RedactedEnvelope(env),
		FailureReason: cause.Error(),
		ErrorKind:     kind,
		MaxRetries:    a.maxRetries,
	})
	if recErr != nil {
		slog.Error("Failed to record webhook failure",
			"instance_id", instanceID,
			"event_type", eventType,
			"error", recErr,
			"original_error", cause)
	}
}

// classifyAdapterError folds adapter-level sentinels into the storage
// error taxonomy before kind mapping.
func classifyAdapterError(err error) services.ErrorClass {
	if errors.Is(err, ErrUnresolvableJID) || errors.Is(err, ErrMalformedPayload) {
		return services.ClassValidation
	}
	return services.Classify(err)
}

// ownerJID resolves the connected account's JID for from-me detection.
// Missing instances degrade to key.fromMe only.
func (a *Adapter) ownerJID(ctx context.Context, instanceID string) string {
	inst, err := a.messaging.GetInstance(ctx, instanceID)
	if err != nil {
		return ""
	}
	return inst.OwnerJid
}

// publish forwards a fan-out event when a publisher is wired.
func (a *Adapter) publish(ctx context.Context, eventType string, payload map[string]any) {
	if a.publisher == nil {
		return
	}
	a.publisher.Publish(ctx, eventType, payload)
}

func (a *Adapter) handleConnectionUpdate(ctx context.Context, instanceID string, env *Envelope) error {
	var data ConnectionUpdateData
	if err := decodeData(env, &data); err != nil {
		return err
	}

	state := data.State
	if state == "" {
		state = data.Status
	}
	switch state {
	case "open", "close", "connecting", "qr":
	default:
		slog.Warn("Ignoring unknown connection state", "instance_id", instanceID, "state", state)
		return nil
	}
	return a.messaging.SetConnectionState(ctx, instanceID, instance.ConnectionState(state))
}
