package bot

import (
	"context"
	"sync"
	"testing"

	"github.com/asccclass/jadualbot/internal/channel"
	"github.com/asccclass/jadualbot/internal/dialog"
	"github.com/asccclass/jadualbot/internal/schedule"
)

type nopStore struct{}

func (nopStore) Append(ctx context.Context, rec schedule.Record) error { return nil }
func (nopStore) Query(ctx context.Context, date, officer string) ([]schedule.Record, error) {
	return nil, nil
}
func (nopStore) Delete(ctx context.Context, date, officer, business string) (bool, error) {
	return false, nil
}

type nopCalendar struct{}

func (nopCalendar) CreateTimed(ctx context.Context, date, start, end, officer, details string) bool {
	return true
}
func (nopCalendar) CreateAllDay(ctx context.Context, date, officer, details string) bool { return true }
func (nopCalendar) DeleteMatching(ctx context.Context, date, officer, match string) bool {
	return false
}

func testDispatcher() *Dispatcher {
	eng := dialog.NewEngine(nopStore{}, nopCalendar{}, nil, schedule.DefaultOfficers())
	return New(eng)
}

type capture struct {
	mu      sync.Mutex
	replies []channel.Outgoing
}

func (c *capture) envelope(chatID int64, text string) channel.Envelope {
	return channel.Envelope{
		ChatID: chatID,
		Text:   text,
		Reply: func(out channel.Outgoing) error {
			c.mu.Lock()
			defer c.mu.Unlock()
			c.replies = append(c.replies, out)
			return nil
		},
	}
}

func TestCommand(t *testing.T) {
	cases := map[string]string{
		"/start":             "start",
		"/start@JadualBot":   "start",
		"/cancel":            "cancel",
		"  /start extra arg": "start",
		"start":              "",
		"hello":              "",
		"":                   "",
	}
	for in, want := range cases {
		if got := command(in); got != want {
			t.Errorf("command(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStartBeginsConversation(t *testing.T) {
	d := testDispatcher()
	var c capture

	d.Handle(c.envelope(1, "/start"))

	if len(c.replies) != 1 {
		t.Fatalf("replies = %d, want 1", len(c.replies))
	}
	if len(c.replies[0].Keyboard) == 0 {
		t.Error("role keyboard missing from /start reply")
	}
	if _, ok := d.slots[1]; !ok {
		t.Error("session slot not registered")
	}
}

func TestCancelDropsSession(t *testing.T) {
	d := testDispatcher()
	var c capture

	d.Handle(c.envelope(1, "/start"))
	d.Handle(c.envelope(1, "/cancel"))

	if _, ok := d.slots[1]; ok {
		t.Error("session slot kept after cancel")
	}
	last := c.replies[len(c.replies)-1]
	if !last.RemoveKeyboard {
		t.Error("cancel reply should remove the keyboard")
	}
}

func TestChatsAreIndependent(t *testing.T) {
	d := testDispatcher()
	var c capture

	d.Handle(c.envelope(1, "/start"))
	d.Handle(c.envelope(2, "/start"))
	d.Handle(c.envelope(1, "Kakitangan Biasa"))

	s1 := d.slots[1].sess
	s2 := d.slots[2].sess
	if s1.State == s2.State {
		t.Errorf("chats share state: %v / %v", s1.State, s2.State)
	}
}

func TestConcurrentHandlesDoNotRace(t *testing.T) {
	d := testDispatcher()
	var c capture
	var wg sync.WaitGroup

	for chat := int64(1); chat <= 8; chat++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			d.Handle(c.envelope(id, "/start"))
			d.Handle(c.envelope(id, "Kakitangan Biasa"))
		}(chat)
	}
	wg.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.replies) != 16 {
		t.Errorf("replies = %d, want 16", len(c.replies))
	}
}
