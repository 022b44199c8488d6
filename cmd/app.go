package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/asccclass/jadualbot/internal/audit"
	"github.com/asccclass/jadualbot/internal/bot"
	"github.com/asccclass/jadualbot/internal/calendar"
	"github.com/asccclass/jadualbot/internal/channel"
	"github.com/asccclass/jadualbot/internal/config"
	"github.com/asccclass/jadualbot/internal/dialog"
	"github.com/asccclass/jadualbot/internal/sheets"
)

// app bundles the wired collaborators shared by the serve and poll commands.
type app struct {
	cfg        *config.Config
	store      *sheets.Store
	cal        *calendar.Client
	auditDB    *audit.DB
	engine     *dialog.Engine
	dispatcher *bot.Dispatcher
	channel    *channel.TelegramChannel
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	store, err := sheets.NewStore(ctx, cfg.ServiceAccountFile, cfg.SpreadsheetID, cfg.SheetName, cfg.Location)
	if err != nil {
		return nil, fmt.Errorf("sheets store: %w", err)
	}
	if err := store.EnsureWorksheet(ctx); err != nil {
		// Non-fatal: the tab usually already exists; appends surface their
		// own errors later.
		log.Printf("⚠️ [Sheets] ensure worksheet: %v", err)
	}

	cal, err := calendar.NewClient(ctx, cfg.ServiceAccountFile, cfg.CalendarIDs, cfg.Officers, cfg.TimezoneName)
	if err != nil {
		return nil, fmt.Errorf("calendar client: %w", err)
	}

	opts := []dialog.Option{
		dialog.WithClock(func() time.Time { return time.Now().In(cfg.Location) }),
	}
	auditDB, err := audit.NewSQLite(cfg.AuditDBPath)
	if err != nil {
		log.Printf("⚠️ [Audit] disabled: %v", err)
	} else {
		opts = append(opts, dialog.WithAudit(auditDB))
	}

	engine := dialog.NewEngine(store, cal, cfg.Admins, cfg.Officers, opts...)

	ch, err := channel.NewTelegramChannel(cfg.BotToken, cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("telegram channel: %w", err)
	}

	return &app{
		cfg:        cfg,
		store:      store,
		cal:        cal,
		auditDB:    auditDB,
		engine:     engine,
		dispatcher: bot.New(engine),
		channel:    ch,
	}, nil
}
