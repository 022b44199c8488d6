package schedule

import "fmt"

// Operator-facing layouts: DD/MM/YYYY dates and 24-hour HH:MM times.
const (
	DateLayout = "02/01/2006"
	TimeLayout = "15:04"
)

// Location categories. LUAR DAERAH entries are all-day and carry no times;
// KENINGAU entries always carry both a start and an end time.
const (
	LocationKeningau   = "KENINGAU"
	LocationLuarDaerah = "LUAR DAERAH"
)

// Membership status keyboard labels.
const (
	MembershipMember    = "AHLI"
	MembershipNonMember = "BUKAN AHLI"
)

// Officer maps a keyboard label (typed back verbatim by the operator) to a
// stable code used in the worksheet and the calendar ID map.
type Officer struct {
	Label string `yaml:"label"`
	Code  string `yaml:"code"`
}

// DefaultOfficers is the built-in roster. It can be overridden with an
// OFFICERS_FILE yaml file, see internal/config.
func DefaultOfficers() []Officer {
	return []Officer{
		{Label: "Pegawai Daerah", Code: "DO"},
		{Label: "Penolong Pegawai Daerah (Pentadbiran)", Code: "ADO_PENTADBIRAN"},
		{Label: "Penolong Pegawai Daerah (Pembangunan)", Code: "ADO_PEMBANGUNAN"},
	}
}

// CodeForLabel resolves a keyboard label to the officer code.
func CodeForLabel(officers []Officer, label string) (string, bool) {
	for _, o := range officers {
		if o.Label == label {
			return o.Code, true
		}
	}
	return "", false
}

// LabelForCode resolves an officer code back to its display label. Unknown
// codes fall through to the code itself so old rows still render.
func LabelForCode(officers []Officer, code string) string {
	for _, o := range officers {
		if o.Code == code {
			return o.Label
		}
	}
	return code
}

// Record is one persisted worksheet row. Field order mirrors the fixed
// column order: date, officer, lokasi, urusan rasmi, status keahlian,
// start_time, end_time, updated_by, updated_at.
type Record struct {
	Date       string
	Officer    string
	Location   string
	Business   string
	Membership string
	StartTime  string
	EndTime    string
	UpdatedBy  string
	UpdatedAt  string
}

// TimeLine renders the human-readable time portion of a record.
func (r Record) TimeLine() string {
	if r.Location == LocationLuarDaerah {
		return "Sepanjang hari"
	}
	switch {
	case r.StartTime != "" && r.EndTime != "":
		return fmt.Sprintf("%s - %s", r.StartTime, r.EndTime)
	case r.StartTime != "":
		return fmt.Sprintf("Mula %s", r.StartTime)
	case r.EndTime != "":
		return fmt.Sprintf("Tamat %s", r.EndTime)
	default:
		return "Tidak dinyatakan"
	}
}

// Summary renders one record as the staff-query block.
func (r Record) Summary() string {
	return fmt.Sprintf(
		"Jadual %s:\nLokasi: %s\nUrusan: %s\nStatus Keahlian: %s\nMasa: %s",
		r.Date, r.Location, r.Business, r.Membership, r.TimeLine(),
	)
}

// DeleteLabel renders the selectable keyboard label used by the delete flow.
func (r Record) DeleteLabel() string {
	if r.Location == LocationLuarDaerah {
		return fmt.Sprintf("LUAR DAERAH: %s", r.Business)
	}
	return fmt.Sprintf("%s-%s: %s", r.StartTime, r.EndTime, r.Business)
}
