// Package caldate_test tests timestamp parsing and calendar bucketing.
package caldate_test

import (
	"testing"
	"time"

	"github.com/alizand/chatstat/internal/caldate"
)

func TestParseGregorian(t *testing.T) {
	t.Parallel()

	conv := caldate.NewConverter(caldate.Gregorian)

	testCases := []struct {
		name     string
		date     string
		clock    string
		expected time.Time
		wantErr  bool
	}{
		{
			name:     "24h month-day-year",
			date:     "01/01/24",
			clock:    "10:00",
			expected: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:     "day-first resolves when month slot is invalid",
			date:     "25/12/23",
			clock:    "21:53",
			expected: time.Date(2023, 12, 25, 21, 53, 0, 0, time.UTC),
		},
		{
			name:     "12h PM",
			date:     "11/4/20",
			clock:    "9:53 PM",
			expected: time.Date(2020, 11, 4, 21, 53, 0, 0, time.UTC),
		},
		{
			name:     "12h midnight",
			date:     "1/1/24",
			clock:    "12:05 AM",
			expected: time.Date(2024, 1, 1, 0, 5, 0, 0, time.UTC),
		},
		{
			name:     "narrow no-break space before meridiem",
			date:     "1/1/24",
			clock:    "9:53 AM",
			expected: time.Date(2024, 1, 1, 9, 53, 0, 0, time.UTC),
		},
		{
			name:     "four-digit year canonical form",
			date:     "2024/02/29",
			clock:    "23:59",
			expected: time.Date(2024, 2, 29, 23, 59, 0, 0, time.UTC),
		},
		{
			name:    "nonexistent leap day",
			date:    "2023/02/29",
			clock:   "10:00",
			wantErr: true,
		},
		{
			name:    "garbage date",
			date:    "??/??/??",
			clock:   "10:00",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := conv.Parse(tc.date, tc.clock)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q, %q) expected error, got %v", tc.date, tc.clock, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q, %q) unexpected error: %v", tc.date, tc.clock, err)
			}
			if !got.Equal(tc.expected) {
				t.Errorf("Parse(%q, %q) = %v, want %v", tc.date, tc.clock, got, tc.expected)
			}
		})
	}
}

func TestParseJalali(t *testing.T) {
	t.Parallel()

	conv := caldate.NewConverter(caldate.Jalali)

	testCases := []struct {
		name    string
		date    string
		clock   string
		wantDay string
		wantErr bool
	}{
		{
			name:    "year-first",
			date:    "1403/01/15",
			clock:   "10:30",
			wantDay: "1403/01/15",
		},
		{
			name:    "day-first with four-digit year",
			date:    "15/01/1403",
			clock:   "10:30",
			wantDay: "1403/01/15",
		},
		{
			name:    "two-digit year",
			date:    "15/1/03",
			clock:   "10:30",
			wantDay: "1403/01/15",
		},
		{
			name:    "dash separators",
			date:    "1403-07-01",
			clock:   "08:00",
			wantDay: "1403/07/01",
		},
		{
			name:    "leap year Esfand 30",
			date:    "1403/12/30",
			clock:   "23:59",
			wantDay: "1403/12/30",
		},
		{
			name:    "Esfand 30 in a common year",
			date:    "1402/12/30",
			clock:   "10:00",
			wantErr: true,
		},
		{
			name:    "month out of range",
			date:    "1403/13/01",
			clock:   "10:00",
			wantErr: true,
		},
		{
			name:    "two components only",
			date:    "1403/12",
			clock:   "10:00",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := conv.Parse(tc.date, tc.clock)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q, %q) expected error, got %v", tc.date, tc.clock, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q, %q) unexpected error: %v", tc.date, tc.clock, err)
			}
			if day := conv.FormatDay(got); day != tc.wantDay {
				t.Errorf("FormatDay(Parse(%q)) = %q, want %q", tc.date, day, tc.wantDay)
			}
		})
	}
}

// TestDayRoundTrip checks format(parse(d)) == d at day granularity for
// canonical-form dates in both calendars, including leap boundaries.
func TestDayRoundTrip(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		cal  caldate.Calendar
		day  string
	}{
		{name: "gregorian ordinary day", cal: caldate.Gregorian, day: "2023/06/15"},
		{name: "gregorian leap day", cal: caldate.Gregorian, day: "2024/02/29"},
		{name: "gregorian year boundary", cal: caldate.Gregorian, day: "2023/12/31"},
		{name: "jalali ordinary day", cal: caldate.Jalali, day: "1402/06/15"},
		{name: "jalali leap day", cal: caldate.Jalali, day: "1403/12/30"},
		{name: "jalali year boundary", cal: caldate.Jalali, day: "1402/12/29"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			conv := caldate.NewConverter(tc.cal)
			ts, err := conv.Parse(tc.day, "12:00")
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tc.day, err)
			}
			if got := conv.FormatDay(ts); got != tc.day {
				t.Errorf("round trip of %q gave %q", tc.day, got)
			}
		})
	}
}

func TestWeekdayConventions(t *testing.T) {
	t.Parallel()

	// 2024-01-01 was a Monday; 2024-03-20 (1403/01/01) a Wednesday.
	monday := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	wednesday := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

	greg := caldate.NewConverter(caldate.Gregorian)
	if got := greg.Weekday(monday); got != 0 {
		t.Errorf("gregorian Weekday(Monday) = %d, want 0", got)
	}
	if label := greg.WeekdayLabel(greg.Weekday(monday)); label != "Mon" {
		t.Errorf("gregorian label = %q, want Mon", label)
	}
	if got := greg.Weekday(wednesday); got != 2 {
		t.Errorf("gregorian Weekday(Wednesday) = %d, want 2", got)
	}

	// Jalali weeks start on Saturday: Wednesday is index 4.
	jal := caldate.NewConverter(caldate.Jalali)
	if got := jal.Weekday(wednesday); got != 4 {
		t.Errorf("jalali Weekday(Wednesday) = %d, want 4", got)
	}
	if label := jal.WeekdayLabel(jal.Weekday(wednesday)); label != "Chaharshanbeh" {
		t.Errorf("jalali label = %q, want Chaharshanbeh", label)
	}
}

func TestMonthBuckets(t *testing.T) {
	t.Parallel()

	// 2024-03-20 is Farvardin 1st, 1403: month 3 in Gregorian, month 1 in Jalali.
	ts := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

	greg := caldate.NewConverter(caldate.Gregorian)
	if got := greg.Month(ts); got != 3 {
		t.Errorf("gregorian Month = %d, want 3", got)
	}
	if label := greg.MonthLabel(3); label != "Mar" {
		t.Errorf("gregorian month label = %q, want Mar", label)
	}

	jal := caldate.NewConverter(caldate.Jalali)
	if got := jal.Month(ts); got != 1 {
		t.Errorf("jalali Month = %d, want 1", got)
	}
	if label := jal.MonthLabel(1); label != "Farvardin" {
		t.Errorf("jalali month label = %q, want Farvardin", label)
	}
}

func TestCalendarFromString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input    string
		expected caldate.Calendar
		wantErr  bool
	}{
		{input: "gregorian", expected: caldate.Gregorian},
		{input: "jalali", expected: caldate.Jalali},
		{input: "Persian", expected: caldate.Jalali},
		{input: "shamsi", expected: caldate.Jalali},
		{input: "", expected: caldate.Gregorian},
		{input: "mayan", wantErr: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run("input "+tc.input, func(t *testing.T) {
			t.Parallel()

			got, err := caldate.CalendarFromString(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("CalendarFromString(%q) expected error", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("CalendarFromString(%q) unexpected error: %v", tc.input, err)
			}
			if got != tc.expected {
				t.Errorf("CalendarFromString(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}
