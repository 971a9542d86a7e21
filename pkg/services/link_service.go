package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/reflexhq/reflex/ent"
	"github.com/reflexhq/reflex/ent/messageeventlink"
	"github.com/reflexhq/reflex/ent/messagetasklink"
)

// LinkService maintains provenance links between messages and the
// entities created from them. The unique `trigger` link per
// (message, rule) is what makes repeated executions update the
// existing entity instead of creating another one.
type LinkService struct {
	client *ent.Client
}

// NewLinkService creates a new LinkService.
func NewLinkService(client *ent.Client) *LinkService {
	if client == nil {
		panic("NewLinkService: client must not be nil")
	}
	return &LinkService{client: client}
}

// LinkTask records a message→task link. Racing a duplicate trigger link
// surfaces as ErrConflict via the unique (message, rule, type) index.
func (s *LinkService) LinkTask(ctx context.Context, tx *ent.Tx, messageID, taskID, ruleID, instanceID string, linkType messagetasklink.LinkType) (*ent.MessageTaskLink, error) {
	create := tx.MessageTaskLink.Create().
		SetID(uuid.New().String()).
		SetMessageID(messageID).
		SetTaskID(taskID).
		SetLinkType(linkType)
	if ruleID != "" {
		create.SetRuleID(ruleID)
	}
	if instanceID != "" {
		create.SetInstanceID(instanceID)
	}

	link, err := create.Save(ctx)
	if err != nil {
		if Classify(err) == ClassConflict {
			return nil, fmt.Errorf("task link for message %s already exists: %w", messageID, ErrConflict)
		}
		return nil, fmt.Errorf("failed to link task %s to message %s: %w", taskID, messageID, err)
	}
	return link, nil
}

// LinkCalendarEvent records a message→calendar-event link.
func (s *LinkService) LinkCalendarEvent(ctx context.Context, tx *ent.Tx, messageID, eventID, ruleID, instanceID string, linkType messageeventlink.LinkType) (*ent.MessageEventLink, error) {
	create := tx.MessageEventLink.Create().
		SetID(uuid.New().String()).
		SetMessageID(messageID).
		SetCalendarEventID(eventID).
		SetLinkType(linkType)
	if ruleID != "" {
		create.SetRuleID(ruleID)
	}
	if instanceID != "" {
		create.SetInstanceID(instanceID)
	}

	link, err := create.Save(ctx)
	if err != nil {
		if Classify(err) == ClassConflict {
			return nil, fmt.Errorf("event link for message %s already exists: %w", messageID, ErrConflict)
		}
		return nil, fmt.Errorf("failed to link event %s to message %s: %w", eventID, messageID, err)
	}
	return link, nil
}

// FindTriggerTaskLink returns the trigger link a (message, rule) pair
// already produced, or nil when the executor should create a new task.
func (s *LinkService) FindTriggerTaskLink(ctx context.Context, messageID, ruleID string) (*ent.MessageTaskLink, error) {
	q := s.client.MessageTaskLink.Query().
		Where(
			messagetasklink.MessageID(messageID),
			messagetasklink.LinkTypeEQ(messagetasklink.LinkTypeTrigger),
		)
	if ruleID != "" {
		q = q.Where(messagetasklink.RuleID(ruleID))
	}

	link, err := q.First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query trigger task link for message %s: %w", messageID, err)
	}
	return link, nil
}

// FindTriggerEventLink is the calendar-event counterpart of
// FindTriggerTaskLink.
func (s *LinkService) FindTriggerEventLink(ctx context.Context, messageID, ruleID string) (*ent.MessageEventLink, error) {
	q := s.client.MessageEventLink.Query().
		Where(
			messageeventlink.MessageID(messageID),
			messageeventlink.LinkTypeEQ(messageeventlink.LinkTypeTrigger),
		)
	if ruleID != "" {
		q = q.Where(messageeventlink.RuleID(ruleID))
	}

	link, err := q.First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query trigger event link for message %s: %w", messageID, err)
	}
	return link, nil
}

// TaskLinksForMessage lists every link rooted at a message.
func (s *LinkService) TaskLinksForMessage(ctx context.Context, messageID string) ([]*ent.MessageTaskLink, error) {
	return s.client.MessageTaskLink.Query().
		Where(messagetasklink.MessageID(messageID)).
		Order(ent.Asc(messagetasklink.FieldCreatedAt)).
		All(ctx)
}
