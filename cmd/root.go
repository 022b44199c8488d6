package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base command, triggered when no subcommand is given.
var rootCmd = &cobra.Command{
	Use:   "jadualbot",
	Short: "Telegram bot untuk kemaskini dan semakan jadual pegawai",
	Long:  `Bot perbualan yang merekod jadual pegawai ke Google Sheets dan Google Calendar, serta membenarkan semakan oleh kakitangan.`,
}

// Execute registers every subcommand on the root and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
