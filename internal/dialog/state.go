package dialog

import "github.com/asccclass/jadualbot/internal/schedule"

// State enumerates every stop in the conversation. The zero value is Idle so
// a fresh Session starts outside any flow.
type State int

const (
	StateIdle State = iota
	StateChooseRole

	// Admin branch
	StateAdminUsername
	StateAdminPassword
	StateAdminMainMenu
	StateAdminDate
	StateAdminOfficer
	StateAdminLocation
	StateAdminBusiness
	StateAdminMembership
	StateAdminStartTime
	StateAdminEndTime
	StateAdminContinueDecision

	// Admin delete branch
	StateAdminDeleteDate
	StateAdminDeleteOfficer
	StateAdminDeletePick
	StateAdminDeleteConfirm

	// Staff branch
	StateStaffDate
	StateStaffOfficer
)

var stateNames = map[State]string{
	StateIdle:                  "Idle",
	StateChooseRole:            "ChooseRole",
	StateAdminUsername:         "AdminUsername",
	StateAdminPassword:         "AdminPassword",
	StateAdminMainMenu:         "AdminMainMenu",
	StateAdminDate:             "AdminDate",
	StateAdminOfficer:          "AdminOfficer",
	StateAdminLocation:         "AdminLocation",
	StateAdminBusiness:         "AdminBusiness",
	StateAdminMembership:       "AdminMembership",
	StateAdminStartTime:        "AdminStartTime",
	StateAdminEndTime:          "AdminEndTime",
	StateAdminContinueDecision: "AdminContinueDecision",
	StateAdminDeleteDate:       "AdminDeleteDate",
	StateAdminDeleteOfficer:    "AdminDeleteOfficer",
	StateAdminDeletePick:       "AdminDeletePick",
	StateAdminDeleteConfirm:    "AdminDeleteConfirm",
	StateStaffDate:             "StaffDate",
	StateStaffOfficer:          "StaffOfficer",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "Unknown"
}

// Session is the ephemeral per-conversation state, one per chat. It lives in
// memory only: a restart loses every in-flight conversation.
type Session struct {
	ChatID int64
	State  State

	Role     string // "admin" or "staff"
	Username string // authenticated admin username

	Date       string // DD/MM/YYYY
	Officer    string // officer code
	Location   string
	Business   string
	Membership string
	StartTime  string
	EndTime    string

	// CheckedOnce flips after the first staff query so that invalid officer
	// input re-prompts with the post-check keyboard instead of the roster.
	CheckedOnce bool

	// Delete flow scratch space.
	DeleteDate    string
	DeleteOfficer string
	Candidates    []schedule.Record
	PickedIdx     int
}

// Reset wipes everything except the chat key. Used on role selection,
// cancellation and session end.
func (s *Session) Reset() {
	*s = Session{ChatID: s.ChatID}
}

// beginDelete clears previous delete scratch state.
func (s *Session) beginDelete() {
	s.DeleteDate = ""
	s.DeleteOfficer = ""
	s.Candidates = nil
	s.PickedIdx = -1
}
