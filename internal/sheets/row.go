package sheets

import (
	"fmt"

	"github.com/asccclass/jadualbot/internal/schedule"
)

// Header is the fixed column order of the worksheet. Column positions are
// load-bearing: Query and Delete match by index, not by header lookup.
var Header = []interface{}{
	"date",
	"officer",
	"lokasi",
	"urusan rasmi",
	"status keahlian",
	"start_time",
	"end_time",
	"updated_by",
	"updated_at",
}

const columnCount = 9

// recordRow serializes a record in header order.
func recordRow(rec schedule.Record) []interface{} {
	return []interface{}{
		rec.Date,
		rec.Officer,
		rec.Location,
		rec.Business,
		rec.Membership,
		rec.StartTime,
		rec.EndTime,
		rec.UpdatedBy,
		rec.UpdatedAt,
	}
}

// parseRow deserializes one worksheet row. Short rows are padded: the Sheets
// API drops trailing empty cells.
func parseRow(row []interface{}) schedule.Record {
	cell := func(i int) string {
		if i >= len(row) || row[i] == nil {
			return ""
		}
		return fmt.Sprintf("%v", row[i])
	}
	return schedule.Record{
		Date:       cell(0),
		Officer:    cell(1),
		Location:   cell(2),
		Business:   cell(3),
		Membership: cell(4),
		StartTime:  cell(5),
		EndTime:    cell(6),
		UpdatedBy:  cell(7),
		UpdatedAt:  cell(8),
	}
}

// matches reports whether a row hits the exact (date, officer) key.
func matches(rec schedule.Record, date, officer string) bool {
	return rec.Date == date && rec.Officer == officer
}

// matchesDelete reports whether a row hits the exact delete key. The
// (date, officer, urusan) triple is not guaranteed unique; every hit goes.
func matchesDelete(rec schedule.Record, date, officer, business string) bool {
	return matches(rec, date, officer) && rec.Business == business
}
