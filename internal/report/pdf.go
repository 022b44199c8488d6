// Package report renders one day's schedule across all officers to PDF.
package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/asccclass/jadualbot/internal/digest"
	"github.com/asccclass/jadualbot/internal/schedule"
)

// Compose builds the report text for one date.
func Compose(ctx context.Context, store digest.Store, officers []schedule.Officer, date string) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Jadual Pegawai — %s\n", date)
	for _, o := range officers {
		fmt.Fprintf(&b, "\n%s\n", o.Label)
		recs, err := store.Query(ctx, date, o.Code)
		if err != nil {
			return "", fmt.Errorf("query %s: %w", o.Code, err)
		}
		if len(recs) == 0 {
			b.WriteString("  Tiada rekod.\n")
			continue
		}
		for _, r := range recs {
			fmt.Fprintf(&b, "  %s | %s | %s | %s\n", r.TimeLine(), r.Location, r.Business, r.Membership)
		}
	}
	return b.String(), nil
}

// SaveAsPDF writes the report content to filename. Core fonts cover the
// Malay text; non-cp1252 runes are transliterated by gofpdf's translator.
func SaveAsPDF(filename, content string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	// 0 extends to the page edge, 6 is the line height.
	pdf.MultiCell(0, 6, tr(content), "", "L", false)
	return pdf.OutputFileAndClose(filename)
}
