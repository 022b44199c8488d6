package sheets

import (
	"reflect"
	"testing"

	"github.com/asccclass/jadualbot/internal/schedule"
)

func TestRecordRowOrder(t *testing.T) {
	rec := schedule.Record{
		Date:       "07/09/2026",
		Officer:    "DO",
		Location:   "KENINGAU",
		Business:   "Mesyuarat pagi",
		Membership: "AHLI",
		StartTime:  "09:00",
		EndTime:    "10:00",
		UpdatedBy:  "admin1",
		UpdatedAt:  "2026-09-02 10:30:00",
	}
	row := recordRow(rec)
	if len(row) != len(Header) {
		t.Fatalf("row width = %d, header width = %d", len(row), len(Header))
	}
	want := []interface{}{
		"07/09/2026", "DO", "KENINGAU", "Mesyuarat pagi", "AHLI",
		"09:00", "10:00", "admin1", "2026-09-02 10:30:00",
	}
	if !reflect.DeepEqual(row, want) {
		t.Errorf("recordRow = %v, want %v", row, want)
	}
	if got := parseRow(row); got != rec {
		t.Errorf("parseRow(recordRow(rec)) = %+v, want %+v", got, rec)
	}
}

func TestParseRowPadsShortRows(t *testing.T) {
	// The Sheets API drops trailing empty cells.
	rec := parseRow([]interface{}{"07/09/2026", "DO", "LUAR DAERAH", "Lawatan", "AHLI"})
	if rec.StartTime != "" || rec.EndTime != "" || rec.UpdatedBy != "" || rec.UpdatedAt != "" {
		t.Errorf("short row not padded: %+v", rec)
	}
	if rec.Business != "Lawatan" {
		t.Errorf("business = %q", rec.Business)
	}
}

func TestMatchesDelete(t *testing.T) {
	rec := schedule.Record{Date: "07/09/2026", Officer: "DO", Business: "Mesyuarat"}

	if !matchesDelete(rec, "07/09/2026", "DO", "Mesyuarat") {
		t.Error("exact triple did not match")
	}
	if matchesDelete(rec, "07/09/2026", "DO", "Mesyuarat pagi") {
		t.Error("business match must be exact, not a prefix")
	}
	if matchesDelete(rec, "08/09/2026", "DO", "Mesyuarat") {
		t.Error("date mismatch matched")
	}
	if matchesDelete(rec, "07/09/2026", "ADO_PENTADBIRAN", "Mesyuarat") {
		t.Error("officer mismatch matched")
	}
}

func TestMapLegacyRow(t *testing.T) {
	legacy := func(hadir, mtype, start, end, details string) []interface{} {
		return []interface{}{"07/09/2026", "DO", hadir, "", mtype, start, end, details, "admin1", "2026-01-05 08:00:00"}
	}

	t.Run("meeting keeps times", func(t *testing.T) {
		rec, ok := MapLegacyRow(legacy("YA", "MESYUARAT", "09:00", "10:00", ""))
		if !ok {
			t.Fatal("meeting row skipped")
		}
		if rec.Location != schedule.LocationKeningau || rec.Business != "Mesyuarat" {
			t.Errorf("mapped = %+v", rec)
		}
		if rec.StartTime != "09:00" || rec.EndTime != "10:00" {
			t.Errorf("times = %q-%q", rec.StartTime, rec.EndTime)
		}
		if rec.UpdatedBy != "admin1" || rec.UpdatedAt != "2026-01-05 08:00:00" {
			t.Errorf("provenance = %q/%q", rec.UpdatedBy, rec.UpdatedAt)
		}
	})

	t.Run("official business drops times", func(t *testing.T) {
		rec, ok := MapLegacyRow(legacy("YA", "URUSAN_RASMI", "08:00", "17:00", "Lawatan KK"))
		if !ok {
			t.Fatal("official-business row skipped")
		}
		if rec.Location != schedule.LocationLuarDaerah || rec.Business != "Lawatan KK" {
			t.Errorf("mapped = %+v", rec)
		}
		if rec.StartTime != "" || rec.EndTime != "" {
			t.Errorf("all-day row kept times %q-%q", rec.StartTime, rec.EndTime)
		}
	})

	skips := map[string][]interface{}{
		"absent":          legacy("TIDAK", "MESYUARAT", "09:00", "10:00", ""),
		"nothing planned": legacy("YA", "TIADA", "", "", ""),
		"empty type":      legacy("YA", "", "", "", ""),
		"unknown type":    legacy("YA", "CUTI", "", "", ""),
	}
	for name, row := range skips {
		if _, ok := MapLegacyRow(row); ok {
			t.Errorf("%s row was mapped, want skip", name)
		}
	}
}
