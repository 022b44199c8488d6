package dialog

import (
	"context"
	"log"
	"time"

	"github.com/asccclass/jadualbot/internal/schedule"
)

// AuditSink receives one entry per executed effect. Implemented by the
// sqlite audit log; a nil sink disables auditing.
type AuditSink interface {
	Record(action, date, officer, detail, actor string, ok bool)
}

// Engine binds the pure transition function to the real collaborators. Every
// adapter call site is defensive: a failing store or calendar call is logged,
// reported in the reply, and never aborts the session.
type Engine struct {
	store    RecordStore
	cal      EventCalendar
	admins   []Credential
	officers []schedule.Officer
	audit    AuditSink
	now      func() time.Time
}

// Option configures optional Engine collaborators.
type Option func(*Engine)

// WithAudit attaches an audit sink.
func WithAudit(sink AuditSink) Option {
	return func(e *Engine) { e.audit = sink }
}

// WithClock overrides the engine clock (tests).
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine wires the engine. admins and officers are treated as immutable
// after this call.
func NewEngine(store RecordStore, cal EventCalendar, admins []Credential, officers []schedule.Officer, opts ...Option) *Engine {
	e := &Engine{
		store:    store,
		cal:      cal,
		admins:   admins,
		officers: officers,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start begins a fresh conversation for the session.
func (e *Engine) Start(sess *Session) Reply {
	sess.Reset()
	sess.State = StateChooseRole
	return Reply{Text: msgChooseRole, Keyboard: roleKeyboard()}
}

// Cancel aborts whatever is in flight.
func (e *Engine) Cancel(sess *Session) Reply {
	sess.Reset()
	return Reply{Text: msgCancelled, RemoveKeyboard: true, End: true}
}

// Handle advances the session one message: run the transition, execute the
// returned effects, and fold effect outcomes into the reply text.
func (e *Engine) Handle(ctx context.Context, sess *Session, text string) Reply {
	env := Env{
		Now:      e.now(),
		Admins:   e.admins,
		Officers: e.officers,
		Query: func(date, officer string) ([]schedule.Record, error) {
			return e.store.Query(ctx, date, officer)
		},
	}

	reply, effects := Step(sess, text, env)
	if len(effects) == 0 {
		return reply
	}

	notes := e.run(ctx, sess, effects)
	if notes != "" {
		reply.Text = notes + "\n\n" + reply.Text
	}
	return reply
}

// run executes effects sequentially, best effort, and returns the status
// note to prepend to the reply.
func (e *Engine) run(ctx context.Context, sess *Session, effects []Effect) string {
	var (
		appended, appendTried bool
		calOK, calTried       bool
		rowGone, rowTried     bool
		evGone, evTried       bool
	)

	for _, eff := range effects {
		switch ef := eff.(type) {
		case AppendRecord:
			appendTried = true
			err := e.store.Append(ctx, ef.Record)
			appended = err == nil
			if err != nil {
				log.Printf("⚠️ [Store] append failed for %s/%s: %v", ef.Record.Date, ef.Record.Officer, err)
			}
			e.note(sess, "append_record", ef.Record.Date, ef.Record.Officer, ef.Record.Business, appended)
		case CreateTimedEvent:
			calTried = true
			calOK = e.cal.CreateTimed(ctx, ef.Date, ef.Start, ef.End, ef.Officer, ef.Details)
			e.note(sess, "create_timed_event", ef.Date, ef.Officer, ef.Details, calOK)
		case CreateAllDayEvent:
			calTried = true
			calOK = e.cal.CreateAllDay(ctx, ef.Date, ef.Officer, ef.Details)
			e.note(sess, "create_allday_event", ef.Date, ef.Officer, ef.Details, calOK)
		case DeleteRecords:
			rowTried = true
			removed, err := e.store.Delete(ctx, ef.Date, ef.Officer, ef.Business)
			rowGone = removed && err == nil
			if err != nil {
				log.Printf("⚠️ [Store] delete failed for %s/%s: %v", ef.Date, ef.Officer, err)
			}
			e.note(sess, "delete_records", ef.Date, ef.Officer, ef.Business, rowGone)
		case DeleteEvents:
			evTried = true
			evGone = e.cal.DeleteMatching(ctx, ef.Date, ef.Officer, ef.Match)
			e.note(sess, "delete_events", ef.Date, ef.Officer, ef.Match, evGone)
		}
	}

	switch {
	case appendTried && !appended:
		return msgSaveFailed
	case appendTried && calTried && calOK:
		return msgSavedCalendarOK
	case appendTried && calTried && !calOK:
		return msgSavedCalendarFail
	case rowTried:
		note := msgDeletedOK
		if !rowGone {
			note = msgDeleteFailed
		}
		if evTried {
			if evGone {
				note += "\n" + msgDeletedCalOK
			} else {
				note += "\n" + msgDeletedCalNone
			}
		}
		return note
	}
	return ""
}

func (e *Engine) note(sess *Session, action, date, officer, detail string, ok bool) {
	if e.audit == nil {
		return
	}
	actor := sess.Username
	if actor == "" {
		actor = "staff"
	}
	e.audit.Record(action, date, officer, detail, actor, ok)
}
