package schedule

import "testing"

func TestTimeLine(t *testing.T) {
	cases := []struct {
		name string
		rec  Record
		want string
	}{
		{"out of district is all day", Record{Location: LocationLuarDaerah, StartTime: "09:00", EndTime: "10:00"}, "Sepanjang hari"},
		{"both times", Record{Location: LocationKeningau, StartTime: "09:00", EndTime: "10:30"}, "09:00 - 10:30"},
		{"start only", Record{Location: LocationKeningau, StartTime: "14:00"}, "Mula 14:00"},
		{"end only", Record{Location: LocationKeningau, EndTime: "17:00"}, "Tamat 17:00"},
		{"no times", Record{Location: LocationKeningau}, "Tidak dinyatakan"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.rec.TimeLine(); got != tc.want {
				t.Errorf("TimeLine() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSummary(t *testing.T) {
	rec := Record{
		Date:       "07/09/2026",
		Officer:    "DO",
		Location:   LocationKeningau,
		Business:   "Mesyuarat pagi",
		Membership: MembershipMember,
		StartTime:  "09:00",
		EndTime:    "10:00",
	}
	want := "Jadual 07/09/2026:\nLokasi: KENINGAU\nUrusan: Mesyuarat pagi\nStatus Keahlian: AHLI\nMasa: 09:00 - 10:00"
	if got := rec.Summary(); got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}

func TestDeleteLabel(t *testing.T) {
	timed := Record{Location: LocationKeningau, Business: "Mesyuarat", StartTime: "09:00", EndTime: "10:00"}
	if got := timed.DeleteLabel(); got != "09:00-10:00: Mesyuarat" {
		t.Errorf("DeleteLabel() = %q", got)
	}
	allDay := Record{Location: LocationLuarDaerah, Business: "Lawatan KK"}
	if got := allDay.DeleteLabel(); got != "LUAR DAERAH: Lawatan KK" {
		t.Errorf("DeleteLabel() = %q", got)
	}
}

func TestOfficerLookup(t *testing.T) {
	officers := DefaultOfficers()

	code, ok := CodeForLabel(officers, "Pegawai Daerah")
	if !ok || code != "DO" {
		t.Errorf("CodeForLabel = %q, %v", code, ok)
	}
	if _, ok := CodeForLabel(officers, "Pegawai Tadbir"); ok {
		t.Error("unknown label resolved")
	}

	if got := LabelForCode(officers, "ADO_PEMBANGUNAN"); got != "Penolong Pegawai Daerah (Pembangunan)" {
		t.Errorf("LabelForCode = %q", got)
	}
	// Unknown codes fall back to the code so historical rows still render.
	if got := LabelForCode(officers, "PT_KANAN"); got != "PT_KANAN" {
		t.Errorf("LabelForCode fallback = %q", got)
	}
}
