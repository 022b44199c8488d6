package sheets

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/api/sheets/v4"

	"github.com/asccclass/jadualbot/internal/schedule"
)

// Legacy schema of the first bot revision:
// date, officer, hadir, reason, meeting_type, start_time, end_time,
// official_details, updated_by, updated_at.
// The two schemas are not interchangeable at runtime; migration is an
// explicit one-shot mapping step, never a parallel code path.

// MapLegacyRow converts one legacy row into the current schema. The second
// return is false for rows with no equivalent in the new schema (absences
// and attended-with-nothing rows), which are skipped.
func MapLegacyRow(row []interface{}) (schedule.Record, bool) {
	cell := func(i int) string {
		if i >= len(row) || row[i] == nil {
			return ""
		}
		return fmt.Sprintf("%v", row[i])
	}

	hadir := cell(2)
	meetingType := cell(4)
	if hadir == "TIDAK" || meetingType == "TIADA" || meetingType == "" {
		return schedule.Record{}, false
	}

	rec := schedule.Record{
		Date:      cell(0),
		Officer:   cell(1),
		UpdatedBy: cell(8),
		UpdatedAt: cell(9),
	}
	switch meetingType {
	case "MESYUARAT":
		rec.Location = schedule.LocationKeningau
		rec.Business = "Mesyuarat"
		rec.StartTime = cell(5)
		rec.EndTime = cell(6)
	case "URUSAN", "URUSAN_RASMI":
		rec.Location = schedule.LocationLuarDaerah
		rec.Business = cell(7)
		// All-day rows never carry times, even if the legacy row did.
		rec.StartTime = ""
		rec.EndTime = ""
	default:
		return schedule.Record{}, false
	}
	return rec, true
}

// MigrateLegacy copies every mappable row from the legacy worksheet into the
// current one and returns the number of rows migrated. The legacy sheet is
// left untouched.
func (s *Store) MigrateLegacy(ctx context.Context, legacySheet string) (int, error) {
	resp, err := s.srv.Spreadsheets.Values.Get(s.spreadsheetID, legacySheet+"!A2:J").Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("read legacy sheet %q: %w", legacySheet, err)
	}

	var out [][]interface{}
	skipped := 0
	for _, row := range resp.Values {
		rec, ok := MapLegacyRow(row)
		if !ok {
			skipped++
			continue
		}
		out = append(out, recordRow(rec))
	}
	if len(out) == 0 {
		log.Printf("[Sheets] nothing to migrate from %q (%d rows skipped)", legacySheet, skipped)
		return 0, nil
	}

	vr := &sheets.ValueRange{Values: out}
	_, err = s.srv.Spreadsheets.Values.Append(s.spreadsheetID, s.sheetName+"!A1", vr).
		ValueInputOption("USER_ENTERED").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("append migrated rows: %w", err)
	}
	log.Printf("✅ [Sheets] migrated %d rows from %q (%d skipped)", len(out), legacySheet, skipped)
	return len(out), nil
}
