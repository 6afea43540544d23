package content

import (
	"fmt"
	"time"
)

// EventKind filters the seasonal events
type EventKind uint8

const (
	AnyEvent EventKind = iota
	Equinox
	Solstice
)

func (k EventKind) String() string {
	switch k {
	case Equinox:
		return "equinox"
	case Solstice:
		return "solstice"
	default:
		return "any"
	}
}

// ParseEventKind accepts "equinox", "solstice" or "" / "any"
func ParseEventKind(s string) (EventKind, error) {
	switch s {
	case "", "any":
		return AnyEvent, nil
	case "equinox":
		return Equinox, nil
	case "solstice":
		return Solstice, nil
	}
	return AnyEvent, fmt.Errorf("unknown event kind %q", s)
}

// Event is a seasonal marker recurring on a fixed calendar day
type Event struct {
	Name        string
	Kind        EventKind
	Month       time.Month
	Day         int
	Description string
}

// Occurrence is an event resolved to a concrete date
type Occurrence struct {
	Event
	Date time.Time
}

var events = []Event{
	{
		Name:        "Spring Equinox",
		Kind:        Equinox,
		Month:       time.March,
		Day:         20,
		Description: "Day and night are of approximately equal length. The Sun crosses the celestial equator going northward.",
	},
	{
		Name:        "Summer Solstice",
		Kind:        Solstice,
		Month:       time.June,
		Day:         21,
		Description: "The longest day of the year in the Northern Hemisphere. The Sun reaches its highest position in the sky.",
	},
	{
		Name:        "Autumn Equinox",
		Kind:        Equinox,
		Month:       time.September,
		Day:         23,
		Description: "Day and night are of approximately equal length. The Sun crosses the celestial equator going southward.",
	},
	{
		Name:        "Winter Solstice",
		Kind:        Solstice,
		Month:       time.December,
		Day:         21,
		Description: "The shortest day of the year in the Northern Hemisphere. The Sun reaches its lowest position in the sky.",
	},
}

// Events returns the seasonal events in calendar order
func Events() []Event {
	return events
}

// On resolves the event to midnight of its day in the given year
func (e Event) On(year int, loc *time.Location) time.Time {
	return time.Date(year, e.Month, e.Day, 0, 0, 0, 0, loc)
}

// NextEvent returns the first event of the kind strictly after now
// When none remain this year the first matching event of next year is returned
func NextEvent(kind EventKind, now time.Time) Occurrence {
	year := now.Year()
	var first *Event
	for i := range events {
		e := &events[i]
		if kind != AnyEvent && e.Kind != kind {
			continue
		}
		if first == nil {
			first = e
		}
		if d := e.On(year, now.Location()); d.After(now) {
			return Occurrence{Event: *e, Date: d}
		}
	}
	return Occurrence{Event: *first, Date: first.On(year+1, now.Location())}
}
