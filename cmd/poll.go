package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/asccclass/jadualbot/internal/digest"
)

func init() {
	rootCmd.AddCommand(pollCmd)
}

var pollCmd = &cobra.Command{
	Use:   "poll",
	Short: "Jalankan bot dalam mod long polling (untuk pembangunan)",
	Run:   runPoll,
}

func runPoll(cmd *cobra.Command, args []string) {
	a, err := newApp(context.Background())
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	if a.cfg.DigestChatID != 0 {
		d := digest.New(a.store, a.channel, a.cfg.DigestChatID, a.cfg.Officers, a.cfg.Location)
		if err := d.Start(a.cfg.DigestSpec); err != nil {
			fmt.Printf("⚠️ digest disabled: %v\n", err)
		}
		defer d.Stop()
	}

	// Blocks until the update stream closes.
	a.channel.Listen(a.dispatcher.Handle)
}
