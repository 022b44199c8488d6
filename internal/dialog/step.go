package dialog

import (
	"fmt"
	"strings"
	"time"

	"github.com/asccclass/jadualbot/internal/schedule"
)

// Credential is one configured admin (username, password) pair. The set is
// loaded once at startup and injected here; nothing mutates it afterwards.
type Credential struct {
	Name string
	Pass string
}

// Env carries everything a transition may read: the clock, the immutable
// credential set, the officer roster, and a read-only record lookup. Writes
// never happen inside Step; they come back as effects.
type Env struct {
	Now      time.Time
	Admins   []Credential
	Officers []schedule.Officer
	Query    func(date, officer string) ([]schedule.Record, error)
}

func (e Env) checkLogin(name, pass string) bool {
	for _, c := range e.Admins {
		if c.Name == name && c.Pass == pass {
			return true
		}
	}
	return false
}

// Reply is the outbound message for one step.
type Reply struct {
	Text           string
	Keyboard       [][]string
	RemoveKeyboard bool
	// End marks the session as finished; the dispatcher drops it.
	End bool
}

// Step advances the conversation one message. It mutates only the session,
// returns the reply to send and the side effects to run. Effects that fail
// do not rewind the state: the Engine reports the failure in the reply and
// the conversation moves on regardless.
func Step(sess *Session, input string, env Env) (Reply, []Effect) {
	text := strings.TrimSpace(input)

	switch sess.State {
	case StateChooseRole:
		return stepChooseRole(sess, text)
	case StateAdminUsername:
		sess.Username = text
		sess.State = StateAdminPassword
		return Reply{Text: msgAskPassword}, nil
	case StateAdminPassword:
		return stepAdminPassword(sess, text, env)
	case StateAdminMainMenu:
		return stepAdminMainMenu(sess, text)
	case StateAdminDate:
		return stepAdminDate(sess, text, env)
	case StateAdminOfficer:
		return stepAdminOfficer(sess, text, env)
	case StateAdminLocation:
		return stepAdminLocation(sess, text)
	case StateAdminBusiness:
		sess.Business = text
		sess.State = StateAdminMembership
		return Reply{Text: msgAskMembership, Keyboard: membershipKeyboard()}, nil
	case StateAdminMembership:
		return stepAdminMembership(sess, text)
	case StateAdminStartTime:
		return stepAdminStartTime(sess, text)
	case StateAdminEndTime:
		return stepAdminEndTime(sess, text)
	case StateAdminContinueDecision:
		return stepAdminContinue(sess, text)
	case StateAdminDeleteDate:
		return stepAdminDeleteDate(sess, text)
	case StateAdminDeleteOfficer:
		return stepAdminDeleteOfficer(sess, text, env)
	case StateAdminDeletePick:
		return stepAdminDeletePick(sess, text, env)
	case StateAdminDeleteConfirm:
		return stepAdminDeleteConfirm(sess, text)
	case StateStaffDate:
		return stepStaffDate(sess, text, env)
	case StateStaffOfficer:
		return stepStaffOfficer(sess, text, env)
	default:
		return Reply{Text: msgIdleHint}, nil
	}
}

func stepChooseRole(sess *Session, text string) (Reply, []Effect) {
	switch text {
	case labelRoleAdmin:
		sess.Reset()
		sess.Role = "admin"
		sess.State = StateAdminUsername
		return Reply{Text: msgAskUsername, RemoveKeyboard: true}, nil
	case labelRoleStaff:
		sess.Reset()
		sess.Role = "staff"
		sess.State = StateStaffDate
		return Reply{Text: msgAskDate, RemoveKeyboard: true}, nil
	default:
		return Reply{Text: msgRoleRetry, Keyboard: roleKeyboard()}, nil
	}
}

func stepAdminPassword(sess *Session, text string, env Env) (Reply, []Effect) {
	// Single-attempt gate: a mismatch ends the session, there is no retry.
	if !env.checkLogin(sess.Username, text) {
		sess.Reset()
		return Reply{Text: msgBadLogin, RemoveKeyboard: true, End: true}, nil
	}
	sess.State = StateAdminMainMenu
	return Reply{Text: msgMainMenu, Keyboard: menuKeyboard()}, nil
}

func stepAdminMainMenu(sess *Session, text string) (Reply, []Effect) {
	switch text {
	case labelMenuUpdate:
		sess.State = StateAdminDate
		return Reply{Text: msgAskDate, RemoveKeyboard: true}, nil
	case labelMenuDelete:
		sess.beginDelete()
		sess.State = StateAdminDeleteDate
		return Reply{Text: msgAskDeleteDate, RemoveKeyboard: true}, nil
	case labelMenuDone:
		sess.Reset()
		return Reply{Text: msgUpdateDone, RemoveKeyboard: true, End: true}, nil
	default:
		return Reply{Text: msgMainMenuRetry, Keyboard: menuKeyboard()}, nil
	}
}

func stepAdminDate(sess *Session, text string, env Env) (Reply, []Effect) {
	date, verdict := CheckWorkDate(text, env.Now)
	switch verdict {
	case DateBadFormat:
		return Reply{Text: msgDateBadFormat}, nil
	case DatePast:
		return Reply{Text: msgAdminDatePast}, nil
	case DateWeekend:
		return Reply{Text: msgAdminDateWkend}, nil
	}
	sess.Date = date
	sess.State = StateAdminOfficer
	return Reply{Text: msgAskOfficerUpdate, Keyboard: officerKeyboard(env.Officers)}, nil
}

func stepAdminOfficer(sess *Session, text string, env Env) (Reply, []Effect) {
	code, ok := schedule.CodeForLabel(env.Officers, text)
	if !ok {
		return Reply{Text: msgOfficerRetry, Keyboard: officerKeyboard(env.Officers)}, nil
	}
	sess.Officer = code
	sess.State = StateAdminLocation
	return Reply{Text: msgAskLocation, Keyboard: locationKeyboard()}, nil
}

func stepAdminLocation(sess *Session, text string) (Reply, []Effect) {
	if text != schedule.LocationKeningau && text != schedule.LocationLuarDaerah {
		return Reply{Text: msgLocationRetry, Keyboard: locationKeyboard()}, nil
	}
	sess.Location = text
	sess.State = StateAdminBusiness
	return Reply{Text: msgAskBusiness, RemoveKeyboard: true}, nil
}

func stepAdminMembership(sess *Session, text string) (Reply, []Effect) {
	if text != schedule.MembershipMember && text != schedule.MembershipNonMember {
		return Reply{Text: msgMembershipRetry, Keyboard: membershipKeyboard()}, nil
	}
	sess.Membership = text

	if sess.Location == schedule.LocationLuarDaerah {
		// All-day business: persist immediately with empty times.
		sess.StartTime = ""
		sess.EndTime = ""
		effects := []Effect{
			AppendRecord{Record: sess.record()},
			CreateAllDayEvent{Date: sess.Date, Officer: sess.Officer, Details: sess.Business},
		}
		sess.State = StateAdminContinueDecision
		return Reply{Text: msgAskContinue, Keyboard: yesNoKeyboard()}, effects
	}

	sess.State = StateAdminStartTime
	return Reply{Text: msgAskStartTime, RemoveKeyboard: true}, nil
}

func stepAdminStartTime(sess *Session, text string) (Reply, []Effect) {
	t, ok := ParseTime(text)
	if !ok {
		return Reply{Text: msgBadStartTime}, nil
	}
	sess.StartTime = t
	sess.State = StateAdminEndTime
	return Reply{Text: msgAskEndTime}, nil
}

func stepAdminEndTime(sess *Session, text string) (Reply, []Effect) {
	t, ok := ParseTime(text)
	if !ok {
		return Reply{Text: msgBadEndTime}, nil
	}
	sess.EndTime = t
	effects := []Effect{
		AppendRecord{Record: sess.record()},
		CreateTimedEvent{
			Date:    sess.Date,
			Start:   sess.StartTime,
			End:     sess.EndTime,
			Officer: sess.Officer,
			Details: sess.Business,
		},
	}
	sess.State = StateAdminContinueDecision
	return Reply{Text: msgAskContinue, Keyboard: yesNoKeyboard()}, effects
}

func stepAdminContinue(sess *Session, text string) (Reply, []Effect) {
	switch strings.ToUpper(text) {
	case labelYes:
		sess.State = StateAdminDate
		return Reply{Text: msgAskDate, RemoveKeyboard: true}, nil
	case labelNo:
		sess.State = StateAdminMainMenu
		return Reply{Text: msgMainMenu, Keyboard: menuKeyboard()}, nil
	default:
		return Reply{Text: msgContinueRetry, Keyboard: yesNoKeyboard()}, nil
	}
}

func stepAdminDeleteDate(sess *Session, text string) (Reply, []Effect) {
	// The delete flow intentionally skips the past/weekend filter: admins
	// may need to remove rows for any date that ever got written.
	date, ok := ParseDate(text)
	if !ok {
		return Reply{Text: msgDateBadFormat}, nil
	}
	sess.DeleteDate = date
	sess.State = StateAdminDeleteOfficer
	return Reply{Text: msgAskDeleteOfficer}, nil
}

func stepAdminDeleteOfficer(sess *Session, text string, env Env) (Reply, []Effect) {
	code, ok := schedule.CodeForLabel(env.Officers, text)
	if !ok {
		return Reply{Text: msgOfficerRetry, Keyboard: officerKeyboard(env.Officers)}, nil
	}
	sess.DeleteOfficer = code

	recs, err := env.Query(sess.DeleteDate, code)
	if err != nil {
		sess.State = StateAdminMainMenu
		return Reply{Text: msgQueryFailed + "\n\n" + msgMainMenu, Keyboard: menuKeyboard()}, nil
	}
	if len(recs) == 0 {
		sess.State = StateAdminMainMenu
		return Reply{Text: msgNoRecords + "\n\n" + msgMainMenu, Keyboard: menuKeyboard()}, nil
	}

	sess.Candidates = recs
	sess.State = StateAdminDeletePick
	return Reply{Text: msgAskDeletePick, Keyboard: candidateKeyboard(recs)}, nil
}

func stepAdminDeletePick(sess *Session, text string, env Env) (Reply, []Effect) {
	idx := -1
	for i, r := range sess.Candidates {
		if r.DeleteLabel() == text {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Reply{Text: msgDeletePickRetry, Keyboard: candidateKeyboard(sess.Candidates)}, nil
	}
	sess.PickedIdx = idx
	sess.State = StateAdminDeleteConfirm

	rec := sess.Candidates[idx]
	summary := fmt.Sprintf(msgDeleteConfirm,
		sess.DeleteDate,
		schedule.LabelForCode(env.Officers, sess.DeleteOfficer),
		rec.DeleteLabel(),
	)
	return Reply{Text: summary, Keyboard: yesNoKeyboard()}, nil
}

func stepAdminDeleteConfirm(sess *Session, text string) (Reply, []Effect) {
	switch strings.ToUpper(text) {
	case labelYes:
		rec := sess.Candidates[sess.PickedIdx]
		// Row and event deletion run independently: a failure in one never
		// blocks or rolls back the other.
		effects := []Effect{
			DeleteRecords{Date: sess.DeleteDate, Officer: sess.DeleteOfficer, Business: rec.Business},
			DeleteEvents{Date: sess.DeleteDate, Officer: sess.DeleteOfficer, Match: rec.Business},
		}
		sess.beginDelete()
		sess.State = StateAdminMainMenu
		return Reply{Text: msgMainMenu, Keyboard: menuKeyboard()}, effects
	case labelNo:
		sess.beginDelete()
		sess.State = StateAdminMainMenu
		return Reply{Text: msgDeleteAborted + "\n\n" + msgMainMenu, Keyboard: menuKeyboard()}, nil
	default:
		return Reply{Text: msgContinueRetry, Keyboard: yesNoKeyboard()}, nil
	}
}

func stepStaffDate(sess *Session, text string, env Env) (Reply, []Effect) {
	date, verdict := CheckWorkDate(text, env.Now)
	switch verdict {
	case DateBadFormat:
		return Reply{Text: msgDateBadFormat}, nil
	case DatePast:
		return Reply{Text: msgStaffDatePast}, nil
	case DateWeekend:
		return Reply{Text: msgStaffDateWkend}, nil
	}
	sess.Date = date
	sess.CheckedOnce = false
	sess.State = StateStaffOfficer
	return Reply{
		Text:     fmt.Sprintf(msgStaffDateSet, date),
		Keyboard: officerKeyboard(env.Officers),
	}, nil
}

func stepStaffOfficer(sess *Session, text string, env Env) (Reply, []Effect) {
	switch text {
	case labelCheckOther:
		return Reply{Text: msgAskOfficerCheck, Keyboard: officerKeyboard(env.Officers)}, nil
	case labelChangeDate:
		sess.State = StateStaffDate
		return Reply{Text: msgAskNewDate, RemoveKeyboard: true}, nil
	case labelCheckFinish:
		sess.Reset()
		return Reply{Text: msgCheckDone, RemoveKeyboard: true, End: true}, nil
	}

	code, ok := schedule.CodeForLabel(env.Officers, text)
	if !ok {
		if sess.CheckedOnce {
			return Reply{Text: msgOfficerRetryKbd, Keyboard: postCheckKeyboard()}, nil
		}
		return Reply{Text: msgOfficerRetryKbd, Keyboard: officerKeyboard(env.Officers)}, nil
	}

	sess.Officer = code
	sess.CheckedOnce = true

	recs, err := env.Query(sess.Date, code)
	if err != nil {
		return Reply{Text: msgQueryFailed, Keyboard: postCheckKeyboard()}, nil
	}
	if len(recs) == 0 {
		return Reply{Text: msgNoRecords, Keyboard: postCheckKeyboard()}, nil
	}

	blocks := make([]string, 0, len(recs))
	for _, r := range recs {
		blocks = append(blocks, r.Summary())
	}
	return Reply{Text: strings.Join(blocks, recordDelimiter), Keyboard: postCheckKeyboard()}, nil
}

// record builds the row for the current submission. updated_at stays empty;
// the store stamps it at append time.
func (s *Session) record() schedule.Record {
	return schedule.Record{
		Date:       s.Date,
		Officer:    s.Officer,
		Location:   s.Location,
		Business:   s.Business,
		Membership: s.Membership,
		StartTime:  s.StartTime,
		EndTime:    s.EndTime,
		UpdatedBy:  s.Username,
	}
}
