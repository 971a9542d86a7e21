// Package nlp parses message text into structured task, calendar,
// bill, and note data.
package nlp

import (
	"time"

	"github.com/shopspring/decimal"
)

// Parser types.
const (
	ParserTask     = "task"
	ParserCalendar = "calendar"
	ParserBill     = "bill"
	ParserNote     = "note"
)

// Result types. A bill parse that finds several vendor+amount pairs
// reports TypeMultipleBills.
const (
	TypeTask          = "task"
	TypeCalendarEvent = "calendar_event"
	TypeBill          = "bill"
	TypeMultipleBills = "multiple_bills"
	TypeNote          = "note"
)

// Error codes for failed parses; the executor maps them to localized
// help templates.
const (
	ErrCodeMissingTitle    = "missing_title"
	ErrCodeMissingDateTime = "missing_datetime"
	ErrCodeNoBills         = "no_bills"
	ErrCodeUnknownParser   = "unknown_parser"
	ErrCodeEmptyText       = "empty_text"
)

// TaskData is the structured output of the task parser.
type TaskData struct {
	Title       string
	Description string
	Priority    string
	DueDate     *time.Time
	Tags        []string
	Assignee    string
}

// EventData is the structured output of the calendar parser.
// Location is the videocall sentinel when platform keywords matched.
type EventData struct {
	Title           string
	DateTime        time.Time
	DurationMinutes int
	Location        string
	Attendees       []string
	Recurrence      string
}

// VideocallLocation is the sentinel location for detected video calls.
const VideocallLocation = "videocall"

// BillData is one vendor+amount pair from the bill parser. Priority is
// derived from due-date proximity at parse time.
type BillData struct {
	Vendor   string
	Amount   decimal.Decimal
	Currency string
	DueDate  *time.Time
	Category string
	Priority string
}

// MultiBillData aggregates several bills found in one message.
type MultiBillData struct {
	Items []BillData
	Total decimal.Decimal
}

// NoteData is the structured output of the note parser.
type NoteData struct {
	Title   string
	Content string
	Tags    []string
}

// ParseResult carries one parse outcome. Exactly one of the typed data
// fields is set on success; on failure the same field holds whatever
// partial data was extracted, so the caller can show the user what was
// understood.
type ParseResult struct {
	Success    bool
	Type       string
	Language   string
	Confidence float64
	ErrorCode  string

	Task  *TaskData
	Event *EventData
	Bill  *BillData
	Bills *MultiBillData
	Note  *NoteData
}
