// Package bot routes inbound messages into the dialogue engine, one
// serialized conversation per chat.
package bot

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/asccclass/jadualbot/internal/channel"
	"github.com/asccclass/jadualbot/internal/dialog"
)

// slot holds one chat's session. Its mutex serializes handling per chat:
// no two handlers for the same session ever run concurrently, while
// independent sessions proceed in parallel.
type slot struct {
	mu   sync.Mutex
	sess *dialog.Session
}

// Dispatcher owns the session registry.
type Dispatcher struct {
	engine *dialog.Engine

	mu    sync.RWMutex
	slots map[int64]*slot
}

func New(engine *dialog.Engine) *Dispatcher {
	return &Dispatcher{
		engine: engine,
		slots:  make(map[int64]*slot),
	}
}

// Handle processes one envelope. Safe to call from concurrent goroutines.
func (d *Dispatcher) Handle(env channel.Envelope) {
	s := d.slot(env.ChatID)
	s.mu.Lock()
	defer s.mu.Unlock()

	var reply dialog.Reply
	switch command(env.Text) {
	case "start":
		reply = d.engine.Start(s.sess)
	case "cancel":
		reply = d.engine.Cancel(s.sess)
	default:
		reply = d.engine.Handle(context.Background(), s.sess, env.Text)
	}

	if err := env.Reply(channel.Outgoing{
		Text:           reply.Text,
		Keyboard:       reply.Keyboard,
		RemoveKeyboard: reply.RemoveKeyboard,
	}); err != nil {
		log.Printf("⚠️ [Bot] reply to chat %d failed: %v", env.ChatID, err)
	}

	if reply.End {
		d.drop(env.ChatID)
	}
}

func (d *Dispatcher) slot(chatID int64) *slot {
	d.mu.RLock()
	s, ok := d.slots[chatID]
	d.mu.RUnlock()
	if ok {
		return s
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if s, ok = d.slots[chatID]; ok {
		return s
	}
	s = &slot{sess: &dialog.Session{ChatID: chatID}}
	d.slots[chatID] = s
	return s
}

func (d *Dispatcher) drop(chatID int64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.slots, chatID)
}

// command extracts a bot command name from "/start" or "/start@BotName".
func command(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	cmd := strings.Fields(text)[0][1:]
	if at := strings.Index(cmd, "@"); at >= 0 {
		cmd = cmd[:at]
	}
	return cmd
}
