package dialog

import (
	"testing"

	"github.com/asccclass/jadualbot/internal/schedule"
)

// Transitions are pure: effects come back as data and nothing touches the
// store, so no collaborator is needed here at all.
func TestStepReturnsEffectsAsData(t *testing.T) {
	sess := &Session{
		ChatID:   1,
		State:    StateAdminMembership,
		Role:     "admin",
		Username: "admin1",
		Date:     "07/09/2026",
		Officer:  "DO",
		Location: schedule.LocationLuarDaerah,
		Business: "Lawatan tapak",
	}
	env := Env{Now: testToday, Officers: schedule.DefaultOfficers()}

	reply, effects := Step(sess, "AHLI", env)

	if len(effects) != 2 {
		t.Fatalf("effects = %d, want 2", len(effects))
	}
	app, ok := effects[0].(AppendRecord)
	if !ok {
		t.Fatalf("first effect = %T, want AppendRecord", effects[0])
	}
	if app.Record.StartTime != "" || app.Record.EndTime != "" {
		t.Errorf("all-day record carries times %q-%q", app.Record.StartTime, app.Record.EndTime)
	}
	if _, ok := effects[1].(CreateAllDayEvent); !ok {
		t.Fatalf("second effect = %T, want CreateAllDayEvent", effects[1])
	}
	if reply.Text != msgAskContinue {
		t.Errorf("reply = %q, want continue prompt", reply.Text)
	}
	if sess.State != StateAdminContinueDecision {
		t.Errorf("state = %v", sess.State)
	}
}

func TestStepIdleHint(t *testing.T) {
	sess := &Session{ChatID: 1}
	reply, effects := Step(sess, "hello", Env{Now: testToday})
	if reply.Text != msgIdleHint {
		t.Errorf("reply = %q, want idle hint", reply.Text)
	}
	if len(effects) != 0 {
		t.Errorf("idle input produced %d effects", len(effects))
	}
}

func TestSessionResetKeepsChatID(t *testing.T) {
	sess := &Session{ChatID: 99, State: StateAdminDate, Username: "admin1", Date: "07/09/2026"}
	sess.Reset()
	if sess.ChatID != 99 {
		t.Errorf("ChatID = %d, want 99", sess.ChatID)
	}
	if sess.State != StateIdle || sess.Username != "" || sess.Date != "" {
		t.Errorf("reset left residue: %+v", sess)
	}
}
