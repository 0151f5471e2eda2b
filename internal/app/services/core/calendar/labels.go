package calendar

import (
	"embed"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

var weekdayMessageIDs = map[time.Weekday]string{
	time.Monday:    "weekday_monday",
	time.Tuesday:   "weekday_tuesday",
	time.Wednesday: "weekday_wednesday",
	time.Thursday:  "weekday_thursday",
	time.Friday:    "weekday_friday",
	time.Saturday:  "weekday_saturday",
	time.Sunday:    "weekday_sunday",
}

// Labeler renders the date labels shown next to days and slots.
type Labeler struct {
	localizer *i18n.Localizer
}

// NewLabeler loads the embedded translations and selects locale, e.g. "pl".
// Unknown locales fall back to English.
func NewLabeler(locale string) (*Labeler, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), "active.") {
			continue
		}
		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+entry.Name()); err != nil {
			return nil, fmt.Errorf("load %s: %w", entry.Name(), err)
		}
	}

	return &Labeler{localizer: i18n.NewLocalizer(bundle, tag.String())}, nil
}

func (l *Labeler) Weekday(day time.Weekday) string {
	if l != nil && l.localizer != nil {
		msg, err := l.localizer.Localize(&i18n.LocalizeConfig{MessageID: weekdayMessageIDs[day]})
		if err == nil {
			return msg
		}
	}
	return day.String()
}

// Day formats t as "DD.MM (weekday)".
func (l *Labeler) Day(t time.Time) string {
	return fmt.Sprintf("%02d.%02d (%s)", t.Day(), int(t.Month()), l.Weekday(t.Weekday()))
}

// FullDate formats t as "DD.MM (weekday) HH:MM".
func (l *Labeler) FullDate(t time.Time) string {
	return fmt.Sprintf("%s %02d:%02d", l.Day(t), t.Hour(), t.Minute())
}
