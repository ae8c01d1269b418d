// Package datefmt formats date strings for display.
//
// Every helper reads its input, takes the wall clock it finds and treats that
// wall clock as UTC. Inputs that carry a zone are first converted into the
// Formatter's Location, so with the default UTC location a zoned input keeps
// its instant.
package datefmt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

const (
	// JSONLayout matches the JSON form of a date-time value.
	JSONLayout = "2006-01-02T15:04:05.000Z"
	// DateLayout is the calendar date only.
	DateLayout = "2006-01-02"
	// ShortLayout is the abbreviated display date, e.g. "Oct 5, 2023".
	ShortLayout = "Jan 2, 2006"
	// ShortTimeLayout is the abbreviated display date with time, e.g.
	// "Oct 5, 2023 2:48 PM".
	ShortTimeLayout = "Jan 2, 2006 3:04 PM"
)

var (
	ErrEmptyDate   = errors.New("empty date")
	ErrInvalidDate = errors.New("invalid date")
)

// zonedLayouts carry an offset; localLayouts are plain wall clocks.
var (
	zonedLayouts = []string{time.RFC3339Nano}
	localLayouts = []string{
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		DateLayout,
		ShortTimeLayout,
		ShortLayout,
	}
)

// Formatter holds the environment the helpers depend on.
type Formatter struct {
	// Location is the zone zoned inputs are converted into before their wall
	// clock is read as UTC.
	Location *time.Location
	// Now returns the current time for relative phrases.
	Now func() time.Time
}

// Default is used by the package-level helpers.
var Default = &Formatter{Location: time.UTC, Now: time.Now}

func (f *Formatter) location() *time.Location {
	if f.Location == nil {
		return time.UTC
	}
	return f.Location
}

func (f *Formatter) now() time.Time {
	if f.Now == nil {
		return time.Now()
	}
	return f.Now()
}

// parse reads s and returns its wall clock in UTC after moving zoned inputs
// into the formatter's location.
func (f *Formatter) parse(s string) (time.Time, error) {
	return read(s, f.location())
}

// parseUTC reads s as UTC: zoned inputs are converted, plain ones taken as-is.
func (f *Formatter) parseUTC(s string) (time.Time, error) {
	return read(s, time.UTC)
}

func read(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrEmptyDate
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return keepWallClock(t.In(loc)), nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

func keepWallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatDate renders the day of s as "Oct 5, 2023". Empty or unreadable input
// gives an empty string.
func (f *Formatter) FormatDate(s string) string {
	t, err := f.parse(s)
	if err != nil {
		return ""
	}
	return startOfDay(t).Format(ShortLayout)
}

// UTCJSONDate returns the start of the day of s, e.g. "2022-01-01T00:00:00.000Z".
func (f *Formatter) UTCJSONDate(s string) (string, error) {
	t, err := f.parse(s)
	if err != nil {
		return "", err
	}
	return startOfDay(t).Format(JSONLayout), nil
}

// UTCOnlyDate returns the calendar date of s, e.g. "2022-01-01".
func (f *Formatter) UTCOnlyDate(s string) (string, error) {
	t, err := f.parse(s)
	if err != nil {
		return "", err
	}
	return t.Format(DateLayout), nil
}

// UTCDateAndTime returns s as "Jan 1, 2022 12:00 AM".
func (f *Formatter) UTCDateAndTime(s string) (string, error) {
	t, err := f.parse(s)
	if err != nil {
		return "", err
	}
	return t.Format(ShortTimeLayout), nil
}

// DateAndTime is UTCDateAndTime under the name the date pickers use.
func (f *Formatter) DateAndTime(s string) (string, error) {
	return f.UTCDateAndTime(s)
}

// DateFromNow describes s relative to now ("3 hours ago") when it lies at most
// 24 whole hours in the past or anywhere in the future, and falls back to the
// "Jan 1, 2022 12:00 AM" form for anything older.
func (f *Formatter) DateFromNow(s string) (string, error) {
	t, err := f.parseUTC(s)
	if err != nil {
		return "", err
	}
	now := f.now()
	if hours := int64(now.Sub(t) / time.Hour); hours <= 24 {
		return humanize.RelTime(t, now, "ago", "from now"), nil
	}
	return t.Format(ShortTimeLayout), nil
}

// NextSaturdayByWeek moves weeks weeks past the day of start and returns the
// Saturday closing that week: the day itself when it is a Saturday, otherwise
// the Saturday of the Sunday-based week before it.
func (f *Formatter) NextSaturdayByWeek(start string, weeks int) (string, error) {
	t, err := f.parse(start)
	if err != nil {
		return "", err
	}
	d := startOfDay(t).AddDate(0, 0, 7*weeks)
	if d.Weekday() != time.Saturday {
		d = d.AddDate(0, 0, -7)
		d = d.AddDate(0, 0, int(time.Saturday-d.Weekday()))
	}
	return d.Format(JSONLayout), nil
}

func FormatDate(s string) string { return Default.FormatDate(s) }
func UTCJSONDate(s string) (string, error) { return Default.UTCJSONDate(s) }
func UTCOnlyDate(s string) (string, error) { return Default.UTCOnlyDate(s) }
func UTCDateAndTime(s string) (string, error) { return Default.UTCDateAndTime(s) }
func DateAndTime(s string) (string, error) { return Default.DateAndTime(s) }
func DateFromNow(s string) (string, error) { return Default.DateFromNow(s) }
func NextSaturdayByWeek(s string, weeks int) (string, error) {
	return Default.NextSaturdayByWeek(s, weeks)
}
