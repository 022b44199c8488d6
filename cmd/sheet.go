package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/asccclass/jadualbot/internal/config"
	"github.com/asccclass/jadualbot/internal/sheets"
)

var migrateFrom string

var sheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Urus lembaran Google Sheets",
}

var sheetInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Cipta tab lembaran dan baris pengepala jika belum wujud",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		store := mustStore(ctx)
		if err := store.EnsureWorksheet(ctx); err != nil {
			fmt.Printf("❌ %v\n", err)
			os.Exit(1)
		}
		fmt.Println("✅ lembaran sedia digunakan")
	},
}

var sheetMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Salin rekod skema lama (revisi pertama) ke skema semasa",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		store := mustStore(ctx)
		if err := store.EnsureWorksheet(ctx); err != nil {
			fmt.Printf("❌ %v\n", err)
			os.Exit(1)
		}
		n, err := store.MigrateLegacy(ctx, migrateFrom)
		if err != nil {
			fmt.Printf("❌ %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✅ %d rekod dipindahkan dari %q\n", n, migrateFrom)
	},
}

func mustStore(ctx context.Context) *sheets.Store {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	store, err := sheets.NewStore(ctx, cfg.ServiceAccountFile, cfg.SpreadsheetID, cfg.SheetName, cfg.Location)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	return store
}

func init() {
	sheetMigrateCmd.Flags().StringVar(&migrateFrom, "from", "status_log", "nama tab skema lama")
	sheetCmd.AddCommand(sheetInitCmd)
	sheetCmd.AddCommand(sheetMigrateCmd)
	rootCmd.AddCommand(sheetCmd)
}
