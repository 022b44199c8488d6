// Package digest pushes a cron-scheduled morning summary of every officer's
// schedule to a configured chat.
package digest

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/asccclass/jadualbot/internal/schedule"
)

// Sender pushes one message to a chat (the Telegram channel in production).
type Sender interface {
	SendTo(chatID int64, text string) error
}

// Store is the read side of the record store.
type Store interface {
	Query(ctx context.Context, date, officer string) ([]schedule.Record, error)
}

type Digest struct {
	cron     *cron.Cron
	store    Store
	sender   Sender
	chatID   int64
	officers []schedule.Officer
	loc      *time.Location
}

func New(store Store, sender Sender, chatID int64, officers []schedule.Officer, loc *time.Location) *Digest {
	if loc == nil {
		loc = time.Local
	}
	return &Digest{
		cron:     cron.New(cron.WithLocation(loc)),
		store:    store,
		sender:   sender,
		chatID:   chatID,
		officers: officers,
		loc:      loc,
	}
}

// Start schedules the digest on the given cron spec (e.g. "0 7 * * 1-5").
func (d *Digest) Start(spec string) error {
	if _, err := d.cron.AddFunc(spec, d.run); err != nil {
		return fmt.Errorf("add digest job: %w", err)
	}
	d.cron.Start()
	log.Printf("✅ [Digest] scheduled (%s)", spec)
	return nil
}

func (d *Digest) Stop() {
	d.cron.Stop()
}

func (d *Digest) run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	text, err := d.Compose(ctx, time.Now().In(d.loc))
	if err != nil {
		log.Printf("⚠️ [Digest] compose failed: %v", err)
		return
	}
	if err := d.sender.SendTo(d.chatID, text); err != nil {
		log.Printf("⚠️ [Digest] send failed: %v", err)
	}
}

// Compose renders the digest for one day across all officers.
func (d *Digest) Compose(ctx context.Context, day time.Time) (string, error) {
	date := day.Format(schedule.DateLayout)

	var b strings.Builder
	fmt.Fprintf(&b, "Ringkasan jadual %s\n", date)
	for _, o := range d.officers {
		fmt.Fprintf(&b, "\n%s:\n", o.Label)
		recs, err := d.store.Query(ctx, date, o.Code)
		if err != nil {
			return "", fmt.Errorf("query %s: %w", o.Code, err)
		}
		if len(recs) == 0 {
			b.WriteString("Tiada rekod.\n")
			continue
		}
		for _, r := range recs {
			fmt.Fprintf(&b, "- %s (%s): %s\n", r.TimeLine(), r.Location, r.Business)
		}
	}
	return b.String(), nil
}
