package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/asccclass/jadualbot/internal/config"
	"github.com/asccclass/jadualbot/internal/report"
	"github.com/asccclass/jadualbot/internal/schedule"
	"github.com/asccclass/jadualbot/internal/sheets"
)

var (
	reportDate string
	reportOut  string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Jana laporan PDF jadual semua pegawai untuk satu tarikh",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		cfg, err := config.Load()
		if err != nil {
			fmt.Printf("❌ %v\n", err)
			os.Exit(1)
		}

		date := reportDate
		if date == "" {
			date = time.Now().In(cfg.Location).Format(schedule.DateLayout)
		}
		if _, err := time.Parse(schedule.DateLayout, date); err != nil {
			fmt.Printf("❌ tarikh tidak sah %q (gunakan DD/MM/YYYY)\n", date)
			os.Exit(1)
		}

		store, err := sheets.NewStore(ctx, cfg.ServiceAccountFile, cfg.SpreadsheetID, cfg.SheetName, cfg.Location)
		if err != nil {
			fmt.Printf("❌ %v\n", err)
			os.Exit(1)
		}

		content, err := report.Compose(ctx, store, cfg.Officers, date)
		if err != nil {
			fmt.Printf("❌ %v\n", err)
			os.Exit(1)
		}

		out := reportOut
		if out == "" {
			out = "jadual_" + strings.ReplaceAll(date, "/", "-") + ".pdf"
		}
		if err := report.SaveAsPDF(out, content); err != nil {
			fmt.Printf("❌ %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✅ laporan disimpan ke %s\n", out)
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportDate, "date", "", "tarikh laporan (DD/MM/YYYY, lalai hari ini)")
	reportCmd.Flags().StringVar(&reportOut, "out", "", "nama fail PDF keluaran")
	rootCmd.AddCommand(reportCmd)
}
