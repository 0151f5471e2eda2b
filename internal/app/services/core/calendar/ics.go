package calendar

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"booking-service/internal/app/models"

	"github.com/emersion/go-ical"
)

const (
	icsVersion = "2.0"
	icsScale   = "GREGORIAN"

	propCalendarName = "X-WR-CALNAME"
)

type ICSOptions struct {
	ProductID    string
	CalendarName string
	// UIDDomain is appended to every event UID, e.g. "booking.example.com".
	UIDDomain string
	Stamp     time.Time
	Viewer    models.Identity
	Prefs     models.PreferenceSet
	Labeler   *Labeler
	// ExposeUsers names the holder of slots booked by someone else.
	ExposeUsers bool
}

// EncodeICS writes every projected slot of week as a VEVENT. An empty week
// still yields a valid, event-less VCALENDAR.
func EncodeICS(w io.Writer, week Week, opts ICSOptions) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, icsVersion)
	cal.Props.SetText(ical.PropProductID, opts.ProductID)
	cal.Props.SetText(ical.PropCalendarScale, icsScale)
	if opts.CalendarName != "" {
		cal.Props.SetText(propCalendarName, opts.CalendarName)
	}

	stamp := ical.NewProp(ical.PropDateTimeStamp)
	stamp.SetDateTime(opts.Stamp.UTC())

	for _, day := range week.Days {
		for _, slot := range day.Slots {
			event := ical.NewEvent()
			event.Props.SetText(ical.PropUID, fmt.Sprintf("slot-%d@%s", slot.ID, opts.UIDDomain))
			event.Props.Set(stamp)
			event.Props.SetText(ical.PropSummary, slot.Category.Name)

			start := ical.NewProp(ical.PropDateTimeStart)
			start.SetDateTime(slot.Start.UTC())
			event.Props.Set(start)
			if !slot.End.IsZero() {
				end := ical.NewProp(ical.PropDateTimeEnd)
				end.SetDateTime(slot.End.UTC())
				event.Props.Set(end)
			}

			state := Classify(slot.Slot, opts.Viewer, opts.Prefs)
			event.Props.SetText(ical.PropDescription, describe(slot, state, opts))
			if state.IsFree() {
				event.Props.SetText(ical.PropTransparency, "TRANSPARENT")
			} else {
				event.Props.SetText(ical.PropTransparency, "OPAQUE")
			}
			event.Props.SetText(ical.PropCategories, string(state))

			cal.Children = append(cal.Children, event.Component)
		}
	}

	if len(cal.Children) == 0 {
		return writeEmptyCalendar(w, cal)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

// writeEmptyCalendar writes cal without children. The go-ical encoder
// refuses a VCALENDAR with no components, so the properties are written the
// way it would write them: sorted by name, values as escaped by SetText.
func writeEmptyCalendar(w io.Writer, cal *ical.Calendar) error {
	var buf bytes.Buffer
	buf.WriteString("BEGIN:" + ical.CompCalendar + "\r\n")

	names := make([]string, 0, len(cal.Props))
	for name := range cal.Props {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, prop := range cal.Props[name] {
			writeProp(&buf, prop)
		}
	}

	buf.WriteString("END:" + ical.CompCalendar + "\r\n")
	_, err := buf.WriteTo(w)
	return err
}

func writeProp(buf *bytes.Buffer, prop ical.Prop) {
	buf.WriteString(prop.Name)

	params := make([]string, 0, len(prop.Params))
	for name := range prop.Params {
		params = append(params, name)
	}
	sort.Strings(params)
	for _, name := range params {
		buf.WriteString(";" + name + "=")
		for i, value := range prop.Params[name] {
			if i > 0 {
				buf.WriteString(",")
			}
			if strings.ContainsAny(value, ";:,") {
				value = `"` + value + `"`
			}
			buf.WriteString(value)
		}
	}

	buf.WriteString(":" + prop.Value + "\r\n")
}

func describe(slot ProjectedSlot, state SlotState, opts ICSOptions) string {
	when := opts.Labeler.FullDate(slot.Start)
	switch state {
	case StateBookedByMe:
		return fmt.Sprintf("%s, booked by you", when)
	case StateBookedByOther:
		if opts.ExposeUsers {
			return fmt.Sprintf("%s, booked by %s", when, *slot.User)
		}
		return fmt.Sprintf("%s, booked", when)
	default:
		return fmt.Sprintf("%s, free", when)
	}
}
