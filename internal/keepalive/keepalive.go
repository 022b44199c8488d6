// Package keepalive pings the bot's own public URL so free-tier hosting
// (Render and friends) does not idle the webhook process out.
package keepalive

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

type Pinger struct {
	client   *resty.Client
	url      string
	interval time.Duration
	stop     chan struct{}
}

// New builds a pinger against baseURL's /health endpoint.
func New(baseURL string, interval time.Duration) *Pinger {
	return &Pinger{
		client:   resty.New().SetTimeout(30 * time.Second),
		url:      strings.TrimRight(baseURL, "/") + "/health",
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Start launches the ping loop in the background.
func (p *Pinger) Start() {
	go p.loop()
	log.Printf("✅ [Keepalive] pinging %s every %s", p.url, p.interval)
}

func (p *Pinger) Stop() {
	close(p.stop)
}

func (p *Pinger) loop() {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			p.ping()
		case <-p.stop:
			return
		}
	}
}

func (p *Pinger) ping() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, err := p.client.R().SetContext(ctx).Get(p.url)
	if err != nil {
		log.Printf("⚠️ [Keepalive] ping failed: %v", err)
		return
	}
	if resp.IsError() {
		log.Printf("⚠️ [Keepalive] ping returned HTTP %d", resp.StatusCode())
	}
}
