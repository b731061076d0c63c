package chatlog

import "regexp"

// The two accepted start-line shapes. Dates keep their raw text here;
// interpretation is the calendar converter's job.
//
//	[03/04/24, 10:15] Alice: hello     (bracketed, iOS-style)
//	03/04/24, 10:15 - Alice: hello     (dash, Android-style)
const (
	datePattern = `\d{1,4}[./-]\d{1,2}[./-]\d{1,4}`
	timePattern = `\d{1,2}:\d{2}(?::\d{2})?(?:[ \x{00A0}\x{202F}]?[APap][Mm])?`
)

var (
	bracketStart = regexp.MustCompile(`^\[(` + datePattern + `),? (` + timePattern + `)\] ?(.*)$`)
	dashStart    = regexp.MustCompile(`^(` + datePattern + `),? (` + timePattern + `) - (.*)$`)
)

// logical is one grouped message before field extraction: the matched
// start-line pieces plus any continuation lines.
type logical struct {
	date  string
	clock string
	rest  string
	cont  []string
}

// splitStart matches line against both start-line variants. ok reports
// whether the line begins a new message.
func splitStart(line string) (date, clock, rest string, ok bool) {
	if m := bracketStart.FindStringSubmatch(line); m != nil {
		return m[1], m[2], m[3], true
	}
	if m := dashStart.FindStringSubmatch(line); m != nil {
		return m[1], m[2], m[3], true
	}
	return "", "", "", false
}

// StartsNewMessage reports whether a raw line begins a new timestamped
// message. Any non-matching line continues the previous message's body.
func StartsNewMessage(line string) bool {
	_, _, _, ok := splitStart(line)
	return ok
}

// group folds raw lines into logical messages. Continuation lines before
// the first start line are malformed input: skipped, counted, not fatal.
func group(lines []string) (msgs []logical, skipped int) {
	for _, line := range lines {
		date, clock, rest, ok := splitStart(line)
		if ok {
			msgs = append(msgs, logical{date: date, clock: clock, rest: rest})
			continue
		}
		if len(msgs) == 0 {
			skipped++
			continue
		}
		last := &msgs[len(msgs)-1]
		last.cont = append(last.cont, line)
	}
	return msgs, skipped
}
