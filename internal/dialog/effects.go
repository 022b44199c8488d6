package dialog

import (
	"context"

	"github.com/asccclass/jadualbot/internal/schedule"
)

// Effect is a store or calendar mutation requested by a transition. The
// transition function never touches the network itself: it returns effects as
// data and the Engine executes them afterwards, folding failures into the
// outbound reply.
type Effect interface {
	isEffect()
}

// AppendRecord persists one finished row.
type AppendRecord struct {
	Record schedule.Record
}

// CreateTimedEvent mirrors a KENINGAU submission into the officer's calendar.
type CreateTimedEvent struct {
	Date    string
	Start   string
	End     string
	Officer string
	Details string
}

// CreateAllDayEvent mirrors a LUAR DAERAH submission as an all-day event.
type CreateAllDayEvent struct {
	Date    string
	Officer string
	Details string
}

// DeleteRecords removes every row matching (date, officer, business) exactly.
type DeleteRecords struct {
	Date     string
	Officer  string
	Business string
}

// DeleteEvents removes every calendar event on the officer's calendar within
// the day whose description contains Match. Substring matching is the only
// correlation between rows and events; no event identifier is persisted, so
// an ambiguous match deletes every hit.
type DeleteEvents struct {
	Date    string
	Officer string
	Match   string
}

func (AppendRecord) isEffect()      {}
func (CreateTimedEvent) isEffect()  {}
func (CreateAllDayEvent) isEffect() {}
func (DeleteRecords) isEffect()     {}
func (DeleteEvents) isEffect()      {}

// RecordStore is the tabular persistence collaborator (Google Sheets in
// production). All three calls are narrow, all-or-nothing operations.
type RecordStore interface {
	Append(ctx context.Context, rec schedule.Record) error
	Query(ctx context.Context, date, officer string) ([]schedule.Record, error)
	Delete(ctx context.Context, date, officer, business string) (bool, error)
}

// EventCalendar is the calendar collaborator. Create and delete report
// success as a bool and never fail the caller; errors are logged inside the
// adapter.
type EventCalendar interface {
	CreateTimed(ctx context.Context, date, start, end, officer, details string) bool
	CreateAllDay(ctx context.Context, date, officer, details string) bool
	DeleteMatching(ctx context.Context, date, officer, match string) bool
}
