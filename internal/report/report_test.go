package report_test

import (
	"strings"
	"testing"

	"github.com/alizand/chatstat/internal/caldate"
	"github.com/alizand/chatstat/internal/chatlog"
	"github.com/alizand/chatstat/internal/report"
	"github.com/alizand/chatstat/internal/stats"
)

func analyze(t *testing.T, lines []string) (*stats.Result, *caldate.Converter) {
	t.Helper()

	conv := caldate.NewConverter(caldate.Gregorian)
	msgs, parseStats := chatlog.NewParser(conv).Parse(lines)

	agg := stats.NewAggregator(conv, stats.Options{TopN: 20, CountMediaInActivity: true})
	for _, m := range msgs {
		agg.Ingest(m)
	}
	res := agg.Finalize()
	res.Parse = parseStats
	return res, conv
}

func TestRender(t *testing.T) {
	t.Parallel()

	res, conv := analyze(t, []string{
		"[01/01/24, 09:00] Dana created group \"Plans\"",
		"[01/01/24, 10:00] Alice: hello world",
		"[01/01/24, 10:05] Bob: <Media omitted>",
	})

	var buf strings.Builder
	report.Render(&buf, res, conv)
	out := buf.String()

	for _, want := range []string{
		"USER SUMMARY",
		"Alice",
		"Bob",
		"Dana created group \"Plans\"",
		"Hourly distribution",
		"Weekday distribution",
		"Monthly distribution",
		"Top words",
		"hello",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}

	// Clean input: no warnings section.
	if strings.Contains(out, "Input warnings") {
		t.Error("report shows input warnings for a clean transcript")
	}
}

func TestRenderEmptyResult(t *testing.T) {
	t.Parallel()

	res, conv := analyze(t, nil)

	var buf strings.Builder
	report.Render(&buf, res, conv)
	out := buf.String()

	if !strings.Contains(out, "no creation or rename events detected") {
		t.Error("empty report missing timeline placeholder")
	}
	if strings.Contains(out, "Most active day") {
		t.Error("empty report should not name a most active day")
	}
}

func TestRenderParseWarnings(t *testing.T) {
	t.Parallel()

	res, conv := analyze(t, []string{
		"stray line before any message",
		"[01/01/24, 10:00] Alice: hello",
	})

	var buf strings.Builder
	report.Render(&buf, res, conv)

	if !strings.Contains(buf.String(), "Input warnings: 1 lines skipped, 0 messages dropped") {
		t.Errorf("report missing input warnings, got:\n%s", buf.String())
	}
}
