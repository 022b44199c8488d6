package sheets

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/asccclass/jadualbot/internal/schedule"
)

// DefaultSheetName is the worksheet tab holding the schedule rows.
const DefaultSheetName = "jadual_log"

// Store is the Google Sheets record store. Append assigns updated_at,
// duplicates are legal, Query matches (date, officer) exactly in storage
// order, and Delete removes every row matching the (date, officer, urusan)
// triple.
type Store struct {
	srv           *sheets.Service
	spreadsheetID string
	sheetName     string
	loc           *time.Location
}

// NewStore builds a store from a service-account credential file.
func NewStore(ctx context.Context, credFile, spreadsheetID, sheetName string, loc *time.Location) (*Store, error) {
	b, err := os.ReadFile(credFile)
	if err != nil {
		return nil, fmt.Errorf("read service account file: %w", err)
	}
	cfg, err := google.JWTConfigFromJSON(b, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parse service account credentials: %w", err)
	}
	srv, err := sheets.NewService(ctx, option.WithHTTPClient(cfg.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("init sheets service: %w", err)
	}
	if sheetName == "" {
		sheetName = DefaultSheetName
	}
	if loc == nil {
		loc = time.Local
	}
	return &Store{srv: srv, spreadsheetID: spreadsheetID, sheetName: sheetName, loc: loc}, nil
}

// EnsureWorksheet creates the tab and header row when missing.
func (s *Store) EnsureWorksheet(ctx context.Context) error {
	_, err := s.sheetID(ctx)
	if err == nil {
		return nil
	}
	// A read failure is not "tab missing": creating on top of it would
	// mask the real error behind an already-exists complaint.
	if !errors.Is(err, errWorksheetMissing) {
		return fmt.Errorf("check worksheet: %w", err)
	}

	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: s.sheetName},
			},
		}},
	}
	if _, err := s.srv.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("add worksheet %q: %w", s.sheetName, err)
	}

	vr := &sheets.ValueRange{Values: [][]interface{}{Header}}
	_, err = s.srv.Spreadsheets.Values.Append(s.spreadsheetID, s.sheetName+"!A1", vr).
		ValueInputOption("USER_ENTERED").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("write header row: %w", err)
	}
	log.Printf("✅ [Sheets] worksheet %q created", s.sheetName)
	return nil
}

// Append adds one row, stamping updated_at.
func (s *Store) Append(ctx context.Context, rec schedule.Record) error {
	rec.UpdatedAt = time.Now().In(s.loc).Format("2006-01-02 15:04:05")
	vr := &sheets.ValueRange{Values: [][]interface{}{recordRow(rec)}}
	_, err := s.srv.Spreadsheets.Values.Append(s.spreadsheetID, s.sheetName+"!A1", vr).
		ValueInputOption("USER_ENTERED").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append row: %w", err)
	}
	return nil
}

// Query returns every row matching (date, officer) exactly, in storage order.
func (s *Store) Query(ctx context.Context, date, officer string) ([]schedule.Record, error) {
	rows, err := s.allRows(ctx)
	if err != nil {
		return nil, err
	}
	var out []schedule.Record
	for _, row := range rows {
		rec := parseRow(row)
		if matches(rec, date, officer) {
			out = append(out, rec)
		}
	}
	return out, nil
}

// Delete removes every row whose (date, officer, urusan) matches exactly and
// reports whether at least one row went.
func (s *Store) Delete(ctx context.Context, date, officer, business string) (bool, error) {
	rows, err := s.allRows(ctx)
	if err != nil {
		return false, err
	}

	// Worksheet row index 0 is the header; data row i lives at index i+1.
	var hits []int64
	for i, row := range rows {
		if matchesDelete(parseRow(row), date, officer, business) {
			hits = append(hits, int64(i+1))
		}
	}
	if len(hits) == 0 {
		return false, nil
	}

	sheetID, err := s.sheetID(ctx)
	if err != nil {
		return false, err
	}

	// Delete bottom-up so earlier removals do not shift later indexes.
	reqs := make([]*sheets.Request, 0, len(hits))
	for i := len(hits) - 1; i >= 0; i-- {
		reqs = append(reqs, &sheets.Request{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: hits[i],
					EndIndex:   hits[i] + 1,
				},
			},
		})
	}
	_, err = s.srv.Spreadsheets.BatchUpdate(s.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: reqs,
	}).Context(ctx).Do()
	if err != nil {
		return false, fmt.Errorf("delete rows: %w", err)
	}
	return true, nil
}

// allRows reads every data row below the header.
func (s *Store) allRows(ctx context.Context) ([][]interface{}, error) {
	resp, err := s.srv.Spreadsheets.Values.Get(s.spreadsheetID, s.sheetName+"!A2:I").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	return resp.Values, nil
}

// errWorksheetMissing marks a successful spreadsheet read that found no tab
// with the configured name, as opposed to a failed read.
var errWorksheetMissing = errors.New("worksheet not found")

// sheetID resolves the numeric sheet ID of the worksheet tab.
func (s *Store) sheetID(ctx context.Context) (int64, error) {
	ss, err := s.srv.Spreadsheets.Get(s.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return -1, fmt.Errorf("get spreadsheet: %w", err)
	}
	id, ok := findSheetID(ss, s.sheetName)
	if !ok {
		return -1, fmt.Errorf("%w: %q", errWorksheetMissing, s.sheetName)
	}
	return id, nil
}

// findSheetID looks the tab up by title in spreadsheet metadata.
func findSheetID(ss *sheets.Spreadsheet, name string) (int64, bool) {
	for _, sh := range ss.Sheets {
		if sh.Properties != nil && sh.Properties.Title == name {
			return sh.Properties.SheetId, true
		}
	}
	return -1, false
}
