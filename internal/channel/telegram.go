package channel

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
	"github.com/valyala/fasthttp"
)

// Outgoing is one reply: text plus an optional one-time reply keyboard, or
// an explicit keyboard removal.
type Outgoing struct {
	Text           string
	Keyboard       [][]string
	RemoveKeyboard bool
}

// Envelope wraps one inbound text message with a reply closure, so the
// dispatcher never touches the Telegram API directly.
type Envelope struct {
	ChatID int64
	Text   string
	Reply  func(Outgoing) error
}

// TelegramChannel owns the bot connection in either long-polling or webhook
// mode.
type TelegramChannel struct {
	bot         *telego.Bot
	stopPolling context.CancelFunc
}

// customLogger intercepts specific errors (like 409 Conflict from a second
// running instance).
type customLogger struct {
	debug bool
}

func (l *customLogger) Debugf(format string, args ...interface{}) {
	if l.debug {
		log.Printf("[Telego Debug] "+format, args...)
	}
}

func (l *customLogger) Errorf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if strings.Contains(msg, "Conflict: terminated by other getUpdates request") {
		fmt.Println("\n⚠️  [Telegram] another instance is polling this bot; stopping to avoid the conflict.")
		os.Exit(0)
	}
	log.Printf("⚠️ [Telego Error] %s", msg)
}

// NewTelegramChannel initializes the bot.
func NewTelegramChannel(token string, debug bool) (*TelegramChannel, error) {
	options := []telego.BotOption{
		telego.WithLogger(&customLogger{debug: debug}),
	}

	// Custom fasthttp client: the default client's ReadTimeout can be
	// shorter than the long-polling timeout, which closes connections
	// before the first response byte.
	fastHttpClient := &fasthttp.Client{
		ReadTimeout:                   90 * time.Second,
		WriteTimeout:                  90 * time.Second,
		MaxIdleConnDuration:           90 * time.Second,
		NoDefaultUserAgentHeader:      true,
		DisableHeaderNamesNormalizing: true,
		Dial: (&fasthttp.TCPDialer{
			Concurrency:      4096,
			DNSCacheDuration: time.Hour,
		}).Dial,
	}
	options = append(options, telego.WithFastHTTPClient(fastHttpClient))

	bot, err := telego.NewBot(token, options...)
	if err != nil {
		return nil, err
	}
	return &TelegramChannel{bot: bot}, nil
}

// Listen starts long polling and hands every text message to the handler.
func (t *TelegramChannel) Listen(handler func(Envelope)) {
	ctx, cancel := context.WithCancel(context.Background())
	t.stopPolling = cancel

	// A leftover webhook blocks getUpdates.
	if err := t.bot.DeleteWebhook(ctx, &telego.DeleteWebhookParams{}); err != nil {
		log.Printf("⚠️ [Telegram] delete webhook: %v", err)
	}

	updates, err := t.bot.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
		Timeout: 60,
	})
	if err != nil {
		log.Fatalf("⚠️ [Telegram] cannot start long polling: %v", err)
	}

	fmt.Println("✅ [Telegram] channel started, listening...")

	for update := range updates {
		if env, ok := t.envelope(update); ok {
			go handler(env)
		}
	}
	fmt.Println("🛑 [Telegram] long polling stopped")
}

// SetWebhook registers the externally reachable webhook URL.
func (t *TelegramChannel) SetWebhook(ctx context.Context, url string) error {
	return t.bot.SetWebhook(ctx, &telego.SetWebhookParams{URL: url})
}

// WebhookHandler returns an http.HandlerFunc that decodes a Telegram update
// POSTed to the configured path and hands it to the handler.
func (t *TelegramChannel) WebhookHandler(handler func(Envelope)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		var update telego.Update
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if env, ok := t.envelope(update); ok {
			go handler(env)
		}
		w.WriteHeader(http.StatusOK)
	}
}

// SendTo pushes a plain text message outside any conversation (digest).
func (t *TelegramChannel) SendTo(chatID int64, text string) error {
	return t.send(chatID, Outgoing{Text: text})
}

// Stop stops long polling.
func (t *TelegramChannel) Stop() {
	if t.stopPolling != nil {
		fmt.Println("🛑 [Telegram] stopping channel...")
		t.stopPolling()
	}
}

// envelope converts an update into an Envelope; only text messages count.
func (t *TelegramChannel) envelope(update telego.Update) (Envelope, bool) {
	if update.Message == nil || update.Message.Text == "" {
		return Envelope{}, false
	}
	chatID := update.Message.Chat.ID
	return Envelope{
		ChatID: chatID,
		Text:   update.Message.Text,
		Reply: func(out Outgoing) error {
			return t.send(chatID, out)
		},
	}, true
}

func (t *TelegramChannel) send(chatID int64, out Outgoing) error {
	params := tu.Message(tu.ID(chatID), out.Text)
	switch {
	case len(out.Keyboard) > 0:
		rows := make([][]telego.KeyboardButton, 0, len(out.Keyboard))
		for _, labels := range out.Keyboard {
			row := make([]telego.KeyboardButton, 0, len(labels))
			for _, label := range labels {
				row = append(row, tu.KeyboardButton(label))
			}
			rows = append(rows, row)
		}
		markup := &telego.ReplyKeyboardMarkup{
			Keyboard:        rows,
			ResizeKeyboard:  true,
			OneTimeKeyboard: true,
		}
		params = params.WithReplyMarkup(markup)
	case out.RemoveKeyboard:
		params = params.WithReplyMarkup(&telego.ReplyKeyboardRemove{RemoveKeyboard: true})
	}
	_, err := t.bot.SendMessage(context.Background(), params)
	return err
}
