// Package calendar mirrors schedule rows into per-officer Google Calendars.
//
// There is no persisted link between a worksheet row and its calendar event:
// DeleteMatching correlates purely by description substring, so an ambiguous
// description removes every hit.
package calendar

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2/google"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/asccclass/jadualbot/internal/schedule"
)

// Client is the calendar collaborator. Every call reports success as a bool
// and only logs on failure; the dialogue never crashes on a calendar error.
type Client struct {
	srv      *calendar.Service
	ids      map[string]string // officer code -> calendar ID
	officers []schedule.Officer
	loc      *time.Location
	tzName   string
}

// NewClient builds a client from a service-account credential file.
func NewClient(ctx context.Context, credFile string, ids map[string]string, officers []schedule.Officer, tzName string) (*Client, error) {
	b, err := os.ReadFile(credFile)
	if err != nil {
		return nil, fmt.Errorf("read service account file: %w", err)
	}
	cfg, err := google.JWTConfigFromJSON(b, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("parse service account credentials: %w", err)
	}
	srv, err := calendar.NewService(ctx, option.WithHTTPClient(cfg.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("init calendar service: %w", err)
	}
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", tzName, err)
	}
	return &Client{srv: srv, ids: ids, officers: officers, loc: loc, tzName: tzName}, nil
}

func (c *Client) calendarID(officer string) (string, bool) {
	id, ok := c.ids[officer]
	if !ok || id == "" {
		log.Printf("⚠️ [Calendar] no calendar configured for officer %s", officer)
		return "", false
	}
	return id, true
}

func (c *Client) summary(officer string) string {
	return "Urusan Rasmi — " + schedule.LabelForCode(c.officers, officer)
}

// CreateTimed creates a timed event on the officer's calendar.
func (c *Client) CreateTimed(ctx context.Context, date, start, end, officer, details string) bool {
	calID, ok := c.calendarID(officer)
	if !ok {
		return false
	}

	layout := schedule.DateLayout + " " + schedule.TimeLayout
	dtStart, err1 := time.ParseInLocation(layout, date+" "+start, c.loc)
	dtEnd, err2 := time.ParseInLocation(layout, date+" "+end, c.loc)
	if err1 != nil || err2 != nil {
		log.Printf("⚠️ [Calendar] bad date/time %q %q-%q: %v %v", date, start, end, err1, err2)
		return false
	}

	event := &calendar.Event{
		Summary:     c.summary(officer),
		Description: details,
		Start:       &calendar.EventDateTime{DateTime: dtStart.Format(time.RFC3339), TimeZone: c.tzName},
		End:         &calendar.EventDateTime{DateTime: dtEnd.Format(time.RFC3339), TimeZone: c.tzName},
		Reminders:   &calendar.EventReminders{UseDefault: true, ForceSendFields: []string{"UseDefault"}},
	}
	created, err := c.srv.Events.Insert(calID, event).Context(ctx).Do()
	if err != nil {
		log.Printf("⚠️ [Calendar] insert timed event failed: %v", err)
		return false
	}
	log.Printf("✅ [Calendar] created timed event %s", created.Id)
	return true
}

// CreateAllDay creates a one-day event spanning [date, date+1); the end date
// is exclusive per the Calendar API's all-day semantics.
func (c *Client) CreateAllDay(ctx context.Context, date, officer, details string) bool {
	calID, ok := c.calendarID(officer)
	if !ok {
		return false
	}

	d, err := time.ParseInLocation(schedule.DateLayout, date, c.loc)
	if err != nil {
		log.Printf("⚠️ [Calendar] bad date %q: %v", date, err)
		return false
	}

	event := &calendar.Event{
		Summary:     c.summary(officer),
		Description: details,
		Start:       &calendar.EventDateTime{Date: d.Format("2006-01-02")},
		End:         &calendar.EventDateTime{Date: d.AddDate(0, 0, 1).Format("2006-01-02")},
		Reminders:   &calendar.EventReminders{UseDefault: true, ForceSendFields: []string{"UseDefault"}},
	}
	created, err := c.srv.Events.Insert(calID, event).Context(ctx).Do()
	if err != nil {
		log.Printf("⚠️ [Calendar] insert all-day event failed: %v", err)
		return false
	}
	log.Printf("✅ [Calendar] created all-day event %s", created.Id)
	return true
}

// DeleteMatching removes every event within the 24-hour window of date whose
// description contains match, and reports whether at least one was deleted.
func (c *Client) DeleteMatching(ctx context.Context, date, officer, match string) bool {
	calID, ok := c.calendarID(officer)
	if !ok {
		return false
	}
	if match == "" {
		return false
	}

	dayStart, err := time.ParseInLocation(schedule.DateLayout, date, c.loc)
	if err != nil {
		log.Printf("⚠️ [Calendar] bad date %q: %v", date, err)
		return false
	}
	dayEnd := dayStart.Add(24 * time.Hour)

	events, err := c.srv.Events.List(calID).
		TimeMin(dayStart.Format(time.RFC3339)).
		TimeMax(dayEnd.Format(time.RFC3339)).
		SingleEvents(true).
		Context(ctx).Do()
	if err != nil {
		log.Printf("⚠️ [Calendar] list events failed: %v", err)
		return false
	}

	deleted := 0
	for _, ev := range events.Items {
		if !strings.Contains(ev.Description, match) {
			continue
		}
		if err := c.srv.Events.Delete(calID, ev.Id).Context(ctx).Do(); err != nil {
			log.Printf("⚠️ [Calendar] delete event %s failed: %v", ev.Id, err)
			continue
		}
		deleted++
	}
	if deleted > 0 {
		log.Printf("✅ [Calendar] deleted %d matching event(s) on %s", deleted, date)
	}
	return deleted > 0
}
