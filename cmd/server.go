package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"

	SherryServer "github.com/asccclass/sherryserver"
	"github.com/spf13/cobra"

	"github.com/asccclass/jadualbot/internal/digest"
	"github.com/asccclass/jadualbot/internal/keepalive"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Jalankan bot dalam mod webhook",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	a, err := newApp(ctx)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	if a.cfg.WebhookBaseURL == "" {
		fmt.Println("❌ WEBHOOK_BASE_URL (atau RENDER_EXTERNAL_URL) diperlukan untuk mod webhook")
		os.Exit(1)
	}

	documentRoot := os.Getenv("DocumentRoot")
	if documentRoot == "" {
		documentRoot = "www/html"
	}
	templateRoot := os.Getenv("TemplateRoot")
	if templateRoot == "" {
		templateRoot = "www/template"
	}

	server, err := SherryServer.NewServer(":"+a.cfg.Port, documentRoot, templateRoot)
	if err != nil {
		fmt.Printf("❌ cannot create server: %v\n", err)
		os.Exit(1)
	}

	router := http.NewServeMux()

	// Stateless probes: / for uptime checks, /health for liveness.
	ok := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "ok")
	}
	router.HandleFunc("/", ok)
	router.HandleFunc("/health", ok)

	// The delivery platform POSTs updates here, one at a time per session.
	router.Handle("/"+a.cfg.WebhookPath, a.channel.WebhookHandler(a.dispatcher.Handle))

	if err := a.channel.SetWebhook(ctx, a.cfg.WebhookURL()); err != nil {
		fmt.Printf("❌ set webhook: %v\n", err)
		os.Exit(1)
	}

	if a.cfg.DigestChatID != 0 {
		d := digest.New(a.store, a.channel, a.cfg.DigestChatID, a.cfg.Officers, a.cfg.Location)
		if err := d.Start(a.cfg.DigestSpec); err != nil {
			fmt.Printf("⚠️ digest disabled: %v\n", err)
		}
		defer d.Stop()
	}

	if a.cfg.KeepaliveInterval > 0 {
		p := keepalive.New(a.cfg.WebhookBaseURL, a.cfg.KeepaliveInterval)
		p.Start()
		defer p.Stop()
	}

	server.Server.Handler = router
	fmt.Printf("🚀 Bot is running on 0.0.0.0:%s with path /%s\n", a.cfg.Port, a.cfg.WebhookPath)
	server.Start()
}
