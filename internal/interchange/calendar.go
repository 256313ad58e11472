package interchange

import (
	"bytes"
	"fmt"
	"iter"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/assistant-bot/internal/addressbook"
	"github.com/tartampluch/assistant-bot/internal/config"
)

// Calendar renders the next birthday of every record as an all-day event.
type Calendar struct {
	Clock addressbook.Clock

	// ReminderTrigger is an ISO 8601 duration such as "-P1D". Empty disables alarms.
	ReminderTrigger string

	// FormatSummary lets the caller localize event titles. Age is only
	// meaningful when yearKnown is true.
	FormatSummary func(name string, age int, yearKnown bool) string
}

// Render returns the iCalendar document and how many birthdays fall today.
func (c *Calendar) Render(records iter.Seq[*addressbook.Record]) ([]byte, int, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ProductID)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	now := c.Clock.Now()
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	stats := struct{ processed, withBday, today int }{}
	for r := range records {
		stats.processed++
		next, ok := r.NextBirthday(now)
		if !ok {
			continue
		}
		stats.withBday++

		days, _ := r.DaysToNextBirthday(now)
		if days == 0 {
			stats.today++
		}

		event := c.createEvent(r, next)
		event.Props.Set(dtStampProp)
		cal.Children = append(cal.Children, event.Component)
	}

	slog.Info(config.MsgGenSuccess,
		config.LogKeyComponent, config.CompInterchange,
		slog.Group(config.LogKeyStats,
			slog.Int(config.LogKeyTotal, stats.processed),
			slog.Int(config.LogKeyFound, stats.withBday),
			slog.Int(config.LogKeyCount, stats.today),
		),
	)

	// An empty VCALENDAR still has to be valid for calendar clients.
	if len(cal.Children) == 0 {
		return []byte(config.StubVCalendar), 0, nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	return buf.Bytes(), stats.today, nil
}

func (c *Calendar) createEvent(r *addressbook.Record, next time.Time) *ical.Event {
	name := r.Name().String()
	birthDate := r.Birthday().Date()

	event := ical.NewEvent()
	event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, UID(name), next.Year(), config.ICalDomain))

	age := next.Year() - birthDate.Year()
	var summary string
	switch {
	case age < 0:
		summary = fmt.Sprintf(config.FallbackSummary, name)
	case age == 0:
		summary = fmt.Sprintf(config.FallbackSummaryBirth, name)
	default:
		summary = fmt.Sprintf(config.FallbackSummaryAge, name, age)
	}
	if c.FormatSummary != nil {
		summary = c.FormatSummary(name, age, age >= 0)
	}
	event.Props.SetText(config.PropSummary, summary)

	dtStartProp := ical.NewProp(config.PropDTStart)
	dtStartProp.SetDate(next)
	event.Props.Set(dtStartProp)

	if c.ReminderTrigger != "" {
		addAlarm(event, c.ReminderTrigger, summary)
	}
	return event
}

// addAlarm appends a DISPLAY alarm to the event.
func addAlarm(event *ical.Event, trigger, description string) {
	alarm := ical.NewComponent(config.ICalComponent)
	alarm.Props.SetText(config.PropAction, config.ICalAction)
	alarm.Props.SetText(config.PropDescription, description)

	// Set the raw value so the encoder does not add VALUE=TEXT.
	triggerProp := ical.NewProp(config.PropTrigger)
	triggerProp.Value = trigger
	alarm.Props.Set(triggerProp)

	event.Children = append(event.Children, alarm)
}
