// Package caldate normalizes transcript timestamps into a canonical
// time.Time and maps them back into the calendar the transcript was
// written in. Exactly two calendars are supported: Gregorian and the
// Persian (Jalali) solar calendar.
//
// The canonical representation is a UTC time.Time at minute precision,
// which gives ordering, day-granularity equality, and field extraction
// regardless of the source calendar. Weekday numbering follows the week
// start of the hinted calendar: Monday for Gregorian, Saturday for Jalali.
package caldate

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"

	errs "github.com/alizand/chatstat/internal/errors"
)

// Calendar identifies one of the two supported calendar systems.
type Calendar int

const (
	Gregorian Calendar = iota
	Jalali
)

// CalendarFromString resolves a configuration hint into a Calendar.
func CalendarFromString(s string) (Calendar, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gregorian", "":
		return Gregorian, nil
	case "jalali", "persian", "shamsi":
		return Jalali, nil
	default:
		return Gregorian, errs.NewValidationError(fmt.Sprintf("unknown calendar %q", s), nil)
	}
}

func (c Calendar) String() string {
	if c == Jalali {
		return "jalali"
	}
	return "gregorian"
}

var gregorianLayouts = []string{
	"1/2/06, 3:04 PM",
	"2/1/06, 3:04 PM",
	"1/2/06, 15:04",
	"2/1/06, 15:04",
	"1/2/2006, 3:04 PM",
	"2/1/2006, 3:04 PM",
	"1/2/2006, 15:04",
	"2/1/2006, 15:04",
	"1/2/06, 3:04:05 PM",
	"2/1/06, 3:04:05 PM",
	"1/2/06, 15:04:05",
	"2/1/06, 15:04:05",
	"2006/01/02, 15:04",
	"2006-01-02, 15:04",
	"2006/01/02, 3:04 PM",
}

var weekdayLabels = map[Calendar][]string{
	Gregorian: {"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
	Jalali: {"Shanbeh", "Yekshanbeh", "Doshanbeh", "Seshanbeh",
		"Chaharshanbeh", "Panjshanbeh", "Jomeh"},
}

var monthLabels = map[Calendar][]string{
	Gregorian: {"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	Jalali: {"Farvardin", "Ordibehesht", "Khordad", "Tir", "Mordad",
		"Shahrivar", "Mehr", "Aban", "Azar", "Dey", "Bahman", "Esfand"},
}

// Converter parses and renders timestamps for one calendar. It is built
// once per analysis run; the whole transcript is assumed to use a single
// calendar consistently.
type Converter struct {
	cal Calendar
}

func NewConverter(cal Calendar) *Converter {
	return &Converter{cal: cal}
}

func (c *Converter) Calendar() Calendar {
	return c.cal
}

// Parse converts a transcript date and time into the canonical time.Time.
// Gregorian dates accept day-first and month-first two- and four-digit-year
// forms plus yyyy/mm/dd; Jalali dates accept yyyy/mm/dd and dd/mm/yyyy with
// "/", "-" or "." separators. Times may be 24h or 12h with AM/PM.
func (c *Converter) Parse(dateText, timeText string) (time.Time, error) {
	dateText = strings.TrimSpace(dateText)
	timeText = normalizeClockText(timeText)

	if c.cal == Jalali {
		return parseJalali(dateText, timeText)
	}
	return parseGregorian(dateText, timeText)
}

func parseGregorian(dateText, timeText string) (time.Time, error) {
	combined := dateText + ", " + timeText
	for _, layout := range gregorianLayouts {
		if t, err := time.Parse(layout, combined); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errs.NewParseError(fmt.Sprintf("unparseable gregorian timestamp %q", combined), nil)
}

func parseJalali(dateText, timeText string) (time.Time, error) {
	year, month, day, err := splitJalaliDate(dateText)
	if err != nil {
		return time.Time{}, err
	}

	hour, minute, err := parseClock(timeText)
	if err != nil {
		return time.Time{}, err
	}

	pt := ptime.Date(year, ptime.Month(month), day, hour, minute, 0, 0, time.UTC)
	// ptime normalizes overflow (e.g. 30 Esfand in a common year rolls
	// into Farvardin); reject anything that didn't survive unchanged.
	if pt.Year() != year || int(pt.Month()) != month || pt.Day() != day {
		return time.Time{}, errs.NewParseError(fmt.Sprintf("invalid jalali date %q", dateText), nil)
	}

	return pt.Time().UTC(), nil
}

func splitJalaliDate(dateText string) (year, month, day int, err error) {
	parts := strings.FieldsFunc(dateText, func(r rune) bool {
		return r == '/' || r == '-' || r == '.'
	})
	if len(parts) != 3 {
		return 0, 0, 0, errs.NewParseError(fmt.Sprintf("malformed jalali date %q", dateText), nil)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, convErr := strconv.Atoi(strings.TrimSpace(p))
		if convErr != nil {
			return 0, 0, 0, errs.NewParseError(fmt.Sprintf("malformed jalali date %q", dateText), convErr)
		}
		nums[i] = n
	}

	switch {
	case nums[0] > 31: // yyyy/mm/dd
		year, month, day = nums[0], nums[1], nums[2]
	case nums[2] > 31: // dd/mm/yyyy
		year, month, day = nums[2], nums[1], nums[0]
	default: // dd/mm/yy with a two-digit Jalali year
		year, month, day = expandJalaliYear(nums[2]), nums[1], nums[0]
	}

	if month < 1 || month > 12 || day < 1 || day > 31 || year < 1 {
		return 0, 0, 0, errs.NewParseError(fmt.Sprintf("invalid jalali date %q", dateText), nil)
	}

	return year, month, day, nil
}

// expandJalaliYear maps a two-digit year onto the 1300/1400 century
// boundary the same way exports abbreviate them.
func expandJalaliYear(yy int) int {
	if yy < 50 {
		return 1400 + yy
	}
	return 1300 + yy
}

// parseClock reads "15:04" or "3:04 PM" style times.
func parseClock(timeText string) (hour, minute int, err error) {
	s := timeText
	meridiem := ""
	for _, suffix := range []string{" AM", " PM", "AM", "PM"} {
		if strings.HasSuffix(s, suffix) {
			meridiem = strings.TrimSpace(suffix)
			s = strings.TrimSpace(strings.TrimSuffix(s, suffix))
			break
		}
	}

	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return 0, 0, errs.NewParseError(fmt.Sprintf("malformed time %q", timeText), nil)
	}

	hour, err = strconv.Atoi(parts[0])
	if err == nil {
		minute, err = strconv.Atoi(parts[1])
	}
	if err != nil {
		return 0, 0, errs.NewParseError(fmt.Sprintf("malformed time %q", timeText), err)
	}

	switch meridiem {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, errs.NewParseError(fmt.Sprintf("invalid time %q", timeText), nil)
	}

	return hour, minute, nil
}

// normalizeClockText upper-cases the meridiem and replaces the narrow
// no-break spaces some exports put before AM/PM with plain spaces.
func normalizeClockText(timeText string) string {
	s := strings.ReplaceAll(timeText, "\u202f", " ")
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.ToUpper(strings.TrimSpace(s))
}

// FormatDay renders the canonical timestamp as a zero-padded yyyy/mm/dd
// string in the hinted calendar. The result doubles as the day bucket
// key: lexicographic order equals chronological order.
func (c *Converter) FormatDay(t time.Time) string {
	if c.cal == Jalali {
		pt := ptime.New(t.UTC())
		return fmt.Sprintf("%04d/%02d/%02d", pt.Year(), int(pt.Month()), pt.Day())
	}
	y, m, d := t.UTC().Date()
	return fmt.Sprintf("%04d/%02d/%02d", y, int(m), d)
}

// Weekday returns the 0-based weekday index under the hinted calendar's
// week-start convention: Monday=0 for Gregorian, Saturday=0 for Jalali.
func (c *Converter) Weekday(t time.Time) int {
	if c.cal == Jalali {
		return int(ptime.New(t.UTC()).Weekday())
	}
	return (int(t.UTC().Weekday()) + 6) % 7
}

// Month returns the 1..12 month number in the hinted calendar.
func (c *Converter) Month(t time.Time) int {
	if c.cal == Jalali {
		return int(ptime.New(t.UTC()).Month())
	}
	return int(t.UTC().Month())
}

// WeekdayLabel returns the fixed label for a weekday index from Weekday.
func (c *Converter) WeekdayLabel(i int) string {
	labels := weekdayLabels[c.cal]
	if i < 0 || i >= len(labels) {
		return "?"
	}
	return labels[i]
}

// MonthLabel returns the fixed label for a 1..12 month number.
func (c *Converter) MonthLabel(m int) string {
	labels := monthLabels[c.cal]
	if m < 1 || m > len(labels) {
		return "?"
	}
	return labels[m-1]
}

// Hour returns the 0..23 hour of the canonical timestamp. Hours are
// calendar-independent.
func (c *Converter) Hour(t time.Time) int {
	return t.UTC().Hour()
}
