// Package report renders an analysis Result as the human-readable text
// report. Formatting only; every number here was computed by the stats
// package.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/alizand/chatstat/internal/caldate"
	"github.com/alizand/chatstat/internal/chatlog"
	"github.com/alizand/chatstat/internal/stats"
)

const rule = "════════════════════════════════════════════════════════════════════"

// Render writes the full report to w.
func Render(w io.Writer, res *stats.Result, conv *caldate.Converter) {
	fmt.Fprintln(w, rule)
	renderUsers(w, res)
	renderTimeline(w, res, conv)
	renderDaily(w, res)
	renderHours(w, res)
	renderWeekdays(w, res, conv)
	renderMonths(w, res, conv)
	renderTop(w, "Top words (ex stop words)", res.TopWords)
	renderTop(w, "Top emoji", res.TopEmoji)
	renderParseStats(w, res)
	fmt.Fprintln(w, rule)
}

func renderUsers(w io.Writer, res *stats.Result) {
	fmt.Fprintln(w, "USER SUMMARY (sorted by messages)")
	fmt.Fprintln(w)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Msgs", "Media", "Del", "Bad", "AvgChars", "AvgWords"})
	for _, u := range res.Users {
		table.Append([]string{
			u.Name,
			fmt.Sprintf("%d", u.Messages),
			fmt.Sprintf("%d", u.Media),
			fmt.Sprintf("%d", u.Deleted),
			fmt.Sprintf("%d", u.BadWords),
			fmt.Sprintf("%.1f", u.AvgChars()),
			fmt.Sprintf("%.1f", u.AvgWords()),
		})
	}
	table.Render()
}

func renderTimeline(w io.Writer, res *stats.Result, conv *caldate.Converter) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Group timeline:")
	if len(res.Timeline) == 0 {
		fmt.Fprintln(w, "  no creation or rename events detected")
		return
	}
	for _, ev := range res.Timeline {
		day := conv.FormatDay(ev.Timestamp)
		switch ev.Kind {
		case chatlog.EventGroupCreated:
			fmt.Fprintf(w, "  %s  %s created group %q\n", day, ev.Actor, ev.GroupName)
		case chatlog.EventGroupRenamed:
			fmt.Fprintf(w, "  %s  %s renamed %q to %q\n", day, ev.Actor, ev.OldName, ev.NewName)
		}
	}
}

func renderDaily(w io.Writer, res *stats.Result) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Overall message stats:")
	fmt.Fprintf(w, "  Total messages      : %d\n", res.TotalCounted)
	if res.MostMediaDay != nil {
		fmt.Fprintf(w, "  Day with most media : %s (%d files)\n", res.MostMediaDay.Day, res.MostMediaDay.Count)
	}
	if res.BusiestDay != nil {
		fmt.Fprintf(w, "  Most active day     : %s (%d messages)\n", res.BusiestDay.Day, res.BusiestDay.Count)
	}
	if res.QuietestDay != nil {
		fmt.Fprintf(w, "  Least active day    : %s (%d messages)\n", res.QuietestDay.Day, res.QuietestDay.Count)
	}
	if res.AvgPerDay > 0 {
		fmt.Fprintf(w, "  Average per day     : %.2f\n", res.AvgPerDay)
	}
}

func renderHours(w io.Writer, res *stats.Result) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Hourly distribution (0-23):")
	var line strings.Builder
	for h, n := range res.Hours {
		fmt.Fprintf(&line, "%02d: %-6d", h, n)
		if h%6 == 5 {
			fmt.Fprintln(w, "  "+line.String())
			line.Reset()
		}
	}
}

func renderWeekdays(w io.Writer, res *stats.Result, conv *caldate.Converter) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Weekday distribution:")
	for i, n := range res.Weekdays {
		fmt.Fprintf(w, "  %-14s: %d\n", conv.WeekdayLabel(i), n)
	}
}

func renderMonths(w io.Writer, res *stats.Result, conv *caldate.Converter) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Monthly distribution:")
	for i, n := range res.Months {
		fmt.Fprintf(w, "  %-12s: %d\n", conv.MonthLabel(i+1), n)
	}
}

func renderTop(w io.Writer, title string, entries []stats.TopEntry) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", title)
	if len(entries) == 0 {
		fmt.Fprintln(w, "  none")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(w, "  %-16s %d\n", e.Token, e.Count)
	}
}

func renderParseStats(w io.Writer, res *stats.Result) {
	if res.Parse.SkippedLines == 0 && res.Parse.DroppedMessages == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Input warnings: %d lines skipped, %d messages dropped\n",
		res.Parse.SkippedLines, res.Parse.DroppedMessages)
}
