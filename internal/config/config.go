package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/asccclass/jadualbot/internal/dialog"
	"github.com/asccclass/jadualbot/internal/schedule"
)

// Config holds every process setting. It is built once at startup and never
// mutated afterwards; the credential set and officer roster are injected
// into the dialogue engine as immutable values.
type Config struct {
	BotToken           string
	SpreadsheetID      string
	SheetName          string
	ServiceAccountFile string

	Admins   []dialog.Credential
	Officers []schedule.Officer

	// Officer code -> Google Calendar ID.
	CalendarIDs map[string]string

	TimezoneName string
	Location     *time.Location

	// Webhook serving.
	Port           string
	WebhookBaseURL string
	WebhookPath    string

	// Supporting services.
	AuditDBPath       string
	DigestChatID      int64
	DigestSpec        string
	KeepaliveInterval time.Duration

	Debug bool
}

// Load reads the environment (an envfile is honoured when present, matching
// the deployment layout) and assembles the configuration.
func Load() (*Config, error) {
	_ = godotenv.Load("envfile")

	cfg := &Config{
		BotToken:           os.Getenv("BOT_TOKEN"),
		SpreadsheetID:      os.Getenv("SPREADSHEET_ID"),
		SheetName:          getEnv("SHEET_NAME", "jadual_log"),
		ServiceAccountFile: getEnv("SERVICE_ACCOUNT_FILE", "service_account.json"),
		TimezoneName:       getEnv("TIMEZONE", "Asia/Kuching"),
		Port:               getEnv("PORT", "10000"),
		AuditDBPath:        getEnv("AUDIT_DB_PATH", "jadualbot.db"),
		DigestSpec:         getEnv("DIGEST_SPEC", "0 7 * * 1-5"),
		Debug:              os.Getenv("DEBUG") != "",
	}

	if cfg.BotToken == "" || cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("BOT_TOKEN and SPREADSHEET_ID environment variables must be set")
	}

	loc, err := time.LoadLocation(cfg.TimezoneName)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.TimezoneName, err)
	}
	cfg.Location = loc

	// Render injects the public base URL as RENDER_EXTERNAL_URL; honour it
	// as a fallback.
	cfg.WebhookBaseURL = getEnv("WEBHOOK_BASE_URL", os.Getenv("RENDER_EXTERNAL_URL"))
	cfg.WebhookPath = getEnv("WEBHOOK_PATH", cfg.BotToken)

	cfg.Admins = loadAdmins()
	cfg.Officers, err = loadOfficers()
	if err != nil {
		return nil, err
	}

	cfg.CalendarIDs = make(map[string]string, len(cfg.Officers))
	for _, o := range cfg.Officers {
		cfg.CalendarIDs[o.Code] = os.Getenv("CAL_" + o.Code)
	}

	if raw := os.Getenv("DIGEST_CHAT_ID"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse DIGEST_CHAT_ID: %w", err)
		}
		cfg.DigestChatID = id
	}

	if raw := os.Getenv("KEEPALIVE_MINUTES"); raw != "" {
		mins, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("parse KEEPALIVE_MINUTES: %w", err)
		}
		cfg.KeepaliveInterval = time.Duration(mins) * time.Minute
	}

	return cfg, nil
}

// WebhookURL joins the base URL and the inbound path.
func (c *Config) WebhookURL() string {
	base := c.WebhookBaseURL
	for len(base) > 0 && base[len(base)-1] == '/' {
		base = base[:len(base)-1]
	}
	return base + "/" + c.WebhookPath
}

// loadAdmins reads up to three (username, password) pairs. Pairs with a
// missing half are skipped.
func loadAdmins() []dialog.Credential {
	var out []dialog.Credential
	for i := 1; i <= 3; i++ {
		name := os.Getenv(fmt.Sprintf("ADMIN%d_NAME", i))
		pass := os.Getenv(fmt.Sprintf("ADMIN%d_PASS", i))
		if name != "" && pass != "" {
			out = append(out, dialog.Credential{Name: name, Pass: pass})
		}
	}
	return out
}

// loadOfficers returns the built-in roster, or the OFFICERS_FILE yaml list
// when configured.
func loadOfficers() ([]schedule.Officer, error) {
	path := os.Getenv("OFFICERS_FILE")
	if path == "" {
		return schedule.DefaultOfficers(), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read officers file: %w", err)
	}
	var officers []schedule.Officer
	if err := yaml.Unmarshal(b, &officers); err != nil {
		return nil, fmt.Errorf("parse officers file: %w", err)
	}
	if len(officers) == 0 {
		return nil, fmt.Errorf("officers file %q is empty", path)
	}
	return officers, nil
}

// getEnv reads an environment variable with a default.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
