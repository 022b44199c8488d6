package dialog

import (
	"testing"
	"time"
)

// 02/09/2026 is a Wednesday; 05/09 and 06/09 fall on the weekend.
var testToday = time.Date(2026, time.September, 2, 10, 30, 0, 0, time.UTC)

func TestCheckWorkDate(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		verdict DateVerdict
	}{
		{"today is valid", "02/09/2026", DateOK},
		{"future weekday is valid", "07/09/2026", DateOK},
		{"unpadded input is normalized", "7/9/2026", DateOK},
		{"yesterday is past", "01/09/2026", DatePast},
		{"long past is past", "15/01/2020", DatePast},
		{"saturday rejected", "05/09/2026", DateWeekend},
		{"sunday rejected", "06/09/2026", DateWeekend},
		{"wrong layout", "2026-09-07", DateBadFormat},
		{"garbage", "esok", DateBadFormat},
		{"empty", "", DateBadFormat},
		{"impossible day", "32/01/2026", DateBadFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			date, verdict := CheckWorkDate(tc.input, testToday)
			if verdict != tc.verdict {
				t.Fatalf("verdict = %v, want %v", verdict, tc.verdict)
			}
			if verdict == DateOK && date == "" {
				t.Fatal("valid date returned empty normalized string")
			}
		})
	}
}

func TestCheckWorkDateNormalizes(t *testing.T) {
	date, verdict := CheckWorkDate(" 7/9/2026 ", testToday)
	if verdict != DateOK {
		t.Fatalf("verdict = %v, want DateOK", verdict)
	}
	if date != "07/09/2026" {
		t.Fatalf("normalized = %q, want 07/09/2026", date)
	}
}

func TestParseTime(t *testing.T) {
	valid := map[string]string{
		"09:00":   "09:00",
		"00:00":   "00:00",
		"23:59":   "23:59",
		" 10:30 ": "10:30",
	}
	for in, want := range valid {
		got, ok := ParseTime(in)
		if !ok || got != want {
			t.Errorf("ParseTime(%q) = %q, %v; want %q, true", in, got, ok, want)
		}
	}

	invalid := []string{
		"25:61", "24:00", "12:60", "9:00", "09:0", "0900", "09.00", "", "pagi", "09:00 ptg",
	}
	for _, in := range invalid {
		if _, ok := ParseTime(in); ok {
			t.Errorf("ParseTime(%q) accepted, want rejection", in)
		}
	}
}

func TestParseDate(t *testing.T) {
	if _, ok := ParseDate("29/02/2025"); ok {
		t.Error("non-leap 29 Feb accepted")
	}
	got, ok := ParseDate("29/02/2028")
	if !ok || got != "29/02/2028" {
		t.Errorf("leap 29 Feb: got %q, %v", got, ok)
	}
}
