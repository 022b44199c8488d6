package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/asccclass/jadualbot/internal/audit"
	"github.com/asccclass/jadualbot/internal/config"
)

var auditTailN int

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Urus jejak audit tempatan",
}

var auditTailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Papar entri audit terkini",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Printf("❌ %v\n", err)
			os.Exit(1)
		}
		db, err := audit.NewSQLite(cfg.AuditDBPath)
		if err != nil {
			fmt.Printf("❌ %v\n", err)
			os.Exit(1)
		}
		defer db.Close()

		entries, err := db.Recent(context.Background(), auditTailN)
		if err != nil {
			fmt.Printf("❌ %v\n", err)
			os.Exit(1)
		}
		if len(entries) == 0 {
			fmt.Println("(tiada entri)")
			return
		}
		for _, e := range entries {
			status := "OK"
			if !e.OK {
				status = "FAIL"
			}
			fmt.Printf("%s  %-20s %-4s %s/%s  %s  oleh %s\n",
				e.CreatedAt, e.Action, status, e.Date, e.Officer, e.Detail, e.Actor)
		}
	},
}

func init() {
	auditTailCmd.Flags().IntVarP(&auditTailN, "lines", "n", 20, "bilangan entri")
	auditCmd.AddCommand(auditTailCmd)
	rootCmd.AddCommand(auditCmd)
}
