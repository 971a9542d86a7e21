package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/reflexhq/reflex/ent"
	"github.com/reflexhq/reflex/ent/bill"
	"github.com/reflexhq/reflex/ent/entitychange"
	"github.com/reflexhq/reflex/ent/task"
)

// TaskInput carries task creation/update data. Nil pointers leave the
// stored value untouched on update.
type TaskInput struct {
	Title       string
	Description string
	Priority    task.Priority
	Status      task.Status
	DueDate     *time.Time
	Tags        []string
	Assignee    string
	SpaceID     string
	CreatedBy   string
	Metadata    map[string]any
}

// EventInput carries calendar-event creation/update data.
type EventInput struct {
	Title         string
	StartTime     time.Time
	EndTime       *time.Time
	Location      string
	ConferenceURL string
	Attendees     []string
	Recurrence    string
	SpaceID       string
	CreatedBy     string
	Metadata      map[string]any
}

// BillInput carries bill creation data.
type BillInput struct {
	Vendor             string
	Amount             decimal.Decimal
	Currency           string
	DueDate            *time.Time
	Category           string
	Priority           bill.Priority
	IsRecurring        bool
	RecurrenceType     string
	RecurrenceInterval int
	RecurrenceEndDate  *time.Time
	Tags               []string
	SpaceID            string
	CreatedBy          string
	Metadata           map[string]any
}

// NoteInput carries note creation data.
type NoteInput struct {
	Title     string
	Content   string
	Tags      []string
	SpaceID   string
	CreatedBy string
	Metadata  map[string]any
}

// EntityService creates the entities actions produce (tasks, calendar
// events, bills, notes). All writes run in the caller's transaction so
// the executor can bundle entity + link + change row atomically, and
// every mutation appends a change-capture row.
type EntityService struct {
	client *ent.Client
}

// NewEntityService creates a new EntityService.
func NewEntityService(client *ent.Client) *EntityService {
	if client == nil {
		panic("NewEntityService: client must not be nil")
	}
	return &EntityService{client: client}
}

// CreateTask inserts a task and captures the change.
func (s *EntityService) CreateTask(ctx context.Context, tx *ent.Tx, in TaskInput) (*ent.Task, error) {
	if in.Title == "" {
		return nil, NewValidationError("title", "task title is required")
	}

	create := tx.Task.Create().
		SetID(uuid.New().String()).
		SetTitle(in.Title)
	if in.Description != "" {
		create.SetDescription(in.Description)
	}
	if in.Priority != "" {
		create.SetPriority(in.Priority)
	}
	if in.Status != "" {
		create.SetStatus(in.Status)
	}
	if in.DueDate != nil {
		create.SetDueDate(*in.DueDate)
	}
	if in.Tags != nil {
		create.SetTags(in.Tags)
	}
	if in.Assignee != "" {
		create.SetAssignee(in.Assignee)
	}
	if in.SpaceID != "" {
		create.SetSpaceID(in.SpaceID)
	}
	if in.CreatedBy != "" {
		create.SetCreatedBy(in.CreatedBy)
	}
	if in.Metadata != nil {
		create.SetMetadata(in.Metadata)
	}

	t, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	err = captureChange(ctx, tx, ChangeInput{
		TableName:  TableTasks,
		Operation:  entitychange.OperationINSERT,
		EntityID:   t.ID,
		EntityType: "task",
		NewData:    map[string]any{"title": t.Title, "status": string(t.Status), "priority": string(t.Priority)},
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// UpdateTask applies a partial update to an existing task and captures
// the change. The executor takes this path when a trigger link shows
// the task was already created from the same message and rule.
func (s *EntityService) UpdateTask(ctx context.Context, tx *ent.Tx, taskID string, in TaskInput) (*ent.Task, error) {
	existing, err := tx.Task.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("task %q: %w", taskID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load task %s: %w", taskID, err)
	}

	update := existing.Update()
	if in.Title != "" {
		update.SetTitle(in.Title)
	}
	if in.Description != "" {
		update.SetDescription(in.Description)
	}
	if in.Priority != "" {
		update.SetPriority(in.Priority)
	}
	if in.Status != "" {
		update.SetStatus(in.Status)
	}
	if in.DueDate != nil {
		update.SetDueDate(*in.DueDate)
	}
	if in.Tags != nil {
		update.SetTags(in.Tags)
	}
	if in.Assignee != "" {
		update.SetAssignee(in.Assignee)
	}
	if in.Metadata != nil {
		update.SetMetadata(in.Metadata)
	}

	t, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update task %s: %w", taskID, err)
	}

	err = captureChange(ctx, tx, ChangeInput{
		TableName:  TableTasks,
		Operation:  entitychange.OperationUPDATE,
		EntityID:   t.ID,
		EntityType: "task",
		OldData:    map[string]any{"title": existing.Title, "status": string(existing.Status), "priority": string(existing.Priority)},
		NewData:    map[string]any{"title": t.Title, "status": string(t.Status), "priority": string(t.Priority)},
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// SetTaskStatus moves a task to a new status (the update_task_status
// action type) and captures the change.
func (s *EntityService) SetTaskStatus(ctx context.Context, tx *ent.Tx, taskID string, status task.Status) (*ent.Task, error) {
	return s.UpdateTask(ctx, tx, taskID, TaskInput{Status: status})
}

// CreateCalendarEvent inserts a calendar event and captures the change.
func (s *EntityService) CreateCalendarEvent(ctx context.Context, tx *ent.Tx, in EventInput) (*ent.CalendarEvent, error) {
	if in.Title == "" {
		return nil, NewValidationError("title", "event title is required")
	}
	if in.StartTime.IsZero() {
		return nil, NewValidationError("start_time", "event start time is required")
	}

	create := tx.CalendarEvent.Create().
		SetID(uuid.New().String()).
		SetTitle(in.Title).
		SetStartTime(in.StartTime)
	if in.EndTime != nil {
		create.SetEndTime(*in.EndTime)
	}
	if in.Location != "" {
		create.SetLocation(in.Location)
	}
	if in.ConferenceURL != "" {
		create.SetConferenceURL(in.ConferenceURL)
	}
	if in.Attendees != nil {
		create.SetAttendees(in.Attendees)
	}
	if in.Recurrence != "" {
		create.SetRecurrence(in.Recurrence)
	}
	if in.SpaceID != "" {
		create.SetSpaceID(in.SpaceID)
	}
	if in.CreatedBy != "" {
		create.SetCreatedBy(in.CreatedBy)
	}
	if in.Metadata != nil {
		create.SetMetadata(in.Metadata)
	}

	ev, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	err = captureChange(ctx, tx, ChangeInput{
		TableName:  TableEvents,
		Operation:  entitychange.OperationINSERT,
		EntityID:   ev.ID,
		EntityType: "calendar_event",
		NewData:    map[string]any{"title": ev.Title, "start_time": ev.StartTime},
	})
	if err != nil {
		return nil, err
	}
	return ev, nil
}

// UpdateCalendarEvent applies a partial update and captures the change.
func (s *EntityService) UpdateCalendarEvent(ctx context.Context, tx *ent.Tx, eventID string, in EventInput) (*ent.CalendarEvent, error) {
	existing, err := tx.CalendarEvent.Get(ctx, eventID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("calendar event %q: %w", eventID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load calendar event %s: %w", eventID, err)
	}

	update := existing.Update()
	if in.Title != "" {
		update.SetTitle(in.Title)
	}
	if !in.StartTime.IsZero() {
		update.SetStartTime(in.StartTime)
	}
	if in.EndTime != nil {
		update.SetEndTime(*in.EndTime)
	}
	if in.Location != "" {
		update.SetLocation(in.Location)
	}
	if in.ConferenceURL != "" {
		update.SetConferenceURL(in.ConferenceURL)
	}
	if in.Attendees != nil {
		update.SetAttendees(in.Attendees)
	}
	if in.Metadata != nil {
		update.SetMetadata(in.Metadata)
	}

	ev, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update calendar event %s: %w", eventID, err)
	}

	err = captureChange(ctx, tx, ChangeInput{
		TableName:  TableEvents,
		Operation:  entitychange.OperationUPDATE,
		EntityID:   ev.ID,
		EntityType: "calendar_event",
		OldData:    map[string]any{"title": existing.Title, "start_time": existing.StartTime},
		NewData:    map[string]any{"title": ev.Title, "start_time": ev.StartTime},
	})
	if err != nil {
		return nil, err
	}
	return ev, nil
}

// CreateBill inserts a bill and captures the change. Amounts are exact
// decimals; the parser never hands over floats.
func (s *EntityService) CreateBill(ctx context.Context, tx *ent.Tx, in BillInput) (*ent.Bill, error) {
	if in.Vendor == "" {
		return nil, NewValidationError("vendor", "bill vendor is required")
	}
	if in.Amount.IsNegative() || in.Amount.IsZero() {
		return nil, NewValidationError("amount", "bill amount must be positive")
	}

	create := tx.Bill.Create().
		SetID(uuid.New().String()).
		SetVendor(in.Vendor).
		SetAmount(in.Amount).
		SetIsRecurring(in.IsRecurring)
	if in.Currency != "" {
		create.SetCurrency(in.Currency)
	}
	if in.DueDate != nil {
		create.SetDueDate(*in.DueDate)
		if in.IsRecurring {
			create.SetNextDueDate(*in.DueDate)
		}
	}
	if in.Category != "" {
		create.SetCategory(in.Category)
	}
	if in.Priority != "" {
		create.SetPriority(in.Priority)
	}
	if in.RecurrenceType != "" {
		create.SetRecurrenceType(in.RecurrenceType)
	}
	if in.RecurrenceInterval > 0 {
		create.SetRecurrenceInterval(in.RecurrenceInterval)
	}
	if in.RecurrenceEndDate != nil {
		create.SetRecurrenceEndDate(*in.RecurrenceEndDate)
	}
	if in.Tags != nil {
		create.SetTags(in.Tags)
	}
	if in.SpaceID != "" {
		create.SetSpaceID(in.SpaceID)
	}
	if in.CreatedBy != "" {
		create.SetCreatedBy(in.CreatedBy)
	}
	if in.Metadata != nil {
		create.SetMetadata(in.Metadata)
	}

	b, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create bill: %w", err)
	}

	err = captureChange(ctx, tx, ChangeInput{
		TableName:  TableBills,
		Operation:  entitychange.OperationINSERT,
		EntityID:   b.ID,
		EntityType: "bill",
		NewData:    map[string]any{"vendor": b.Vendor, "amount": b.Amount.String(), "currency": b.Currency},
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

// CreateNote inserts a note and captures the change.
func (s *EntityService) CreateNote(ctx context.Context, tx *ent.Tx, in NoteInput) (*ent.Note, error) {
	if in.Title == "" {
		return nil, NewValidationError("title", "note title is required")
	}

	create := tx.Note.Create().
		SetID(uuid.New().String()).
		SetTitle(in.Title)
	if in.Content != "" {
		create.SetContent(in.Content)
	}
	if in.Tags != nil {
		create.SetTags(in.Tags)
	}
	if in.SpaceID != "" {
		create.SetSpaceID(in.SpaceID)
	}
	if in.CreatedBy != "" {
		create.SetCreatedBy(in.CreatedBy)
	}
	if in.Metadata != nil {
		create.SetMetadata(in.Metadata)
	}

	n, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	err = captureChange(ctx, tx, ChangeInput{
		TableName:  TableNotes,
		Operation:  entitychange.OperationINSERT,
		EntityID:   n.ID,
		EntityType: "note",
		NewData:    map[string]any{"title": n.Title},
	})
	if err != nil {
		return nil, err
	}
	return n, nil
}

// GetTask loads one task by ID.
func (s *EntityService) GetTask(ctx context.Context, taskID string) (*ent.Task, error) {
	t, err := s.client.Task.Query().Where(task.ID(taskID)).Only(ctx)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("task %q: %w", taskID, ErrNotFound)
	}
	return t, err
}

// GetBill loads one bill by ID.
func (s *EntityService) GetBill(ctx context.Context, billID string) (*ent.Bill, error) {
	b, err := s.client.Bill.Query().Where(bill.ID(billID)).Only(ctx)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("bill %q: %w", billID, ErrNotFound)
	}
	return b, err
}
