package chatlog

import (
	"regexp"
	"strings"
	"time"

	"github.com/alizand/chatstat/internal/caldate"
)

// Platform placeholders. Matched by exact equality on the trimmed body;
// "You deleted this message" is what exports emit for the exporter's own
// deletions.
const (
	mediaOmittedTag = "<Media omitted>"
	deletedTag      = "This message was deleted"
	deletedOwnTag   = "You deleted this message"
)

var (
	createdRe = regexp.MustCompile(`(?i)^(.+?) created (?:group|this group) "?(.*?)"?$`)
	renamedRe = regexp.MustCompile(`(?i)^(.+?) changed the group name from "(.+?)" to "(.+?)"$`)
)

// Parser converts raw transcript lines into Messages using one calendar
// converter for the whole run.
type Parser struct {
	conv *caldate.Converter
}

func NewParser(conv *caldate.Converter) *Parser {
	return &Parser{conv: conv}
}

// Parse groups lines into logical messages and extracts their fields.
// Malformed lines and messages with unparseable timestamps are dropped
// and counted; the returned messages preserve input order, which the
// export format guarantees to be chronological.
func (p *Parser) Parse(lines []string) ([]Message, ParseStats) {
	logicals, skipped := group(lines)
	stats := ParseStats{SkippedLines: skipped}

	msgs := make([]Message, 0, len(logicals))
	for _, lg := range logicals {
		ts, err := p.conv.Parse(lg.date, lg.clock)
		if err != nil {
			stats.DroppedMessages++
			continue
		}
		msgs = append(msgs, buildMessage(ts, lg))
	}

	return msgs, stats
}

// buildMessage extracts sender and body and classifies the message kind.
// Detection priority: media placeholder, deleted placeholder, group
// creation, group rename, regular. Senderless lines that match no system
// phrase stay system events of kind EventOther.
func buildMessage(ts time.Time, lg logical) Message {
	sender, body := splitSender(lg.rest)
	if len(lg.cont) > 0 {
		body = strings.Join(append([]string{body}, lg.cont...), "\n")
	}

	msg := Message{Timestamp: ts, Sender: sender, Body: body, Kind: KindRegular}

	trimmed := strings.TrimSpace(body)
	switch {
	case trimmed == mediaOmittedTag:
		msg.Kind = KindMediaOmitted
	case trimmed == deletedTag || trimmed == deletedOwnTag:
		msg.Kind = KindDeleted
	case sender == "":
		msg.Kind = KindSystemEvent
		msg.Event = classifySystemEvent(ts, trimmed)
	}

	return msg
}

func classifySystemEvent(ts time.Time, body string) *GroupEvent {
	if m := createdRe.FindStringSubmatch(body); m != nil {
		name := strings.TrimSpace(m[2])
		if name == "" {
			name = "(unnamed)"
		}
		return &GroupEvent{
			Kind:      EventGroupCreated,
			Timestamp: ts,
			Actor:     strings.TrimSpace(m[1]),
			GroupName: name,
		}
	}

	if m := renamedRe.FindStringSubmatch(body); m != nil {
		return &GroupEvent{
			Kind:      EventGroupRenamed,
			Timestamp: ts,
			Actor:     strings.TrimSpace(m[1]),
			OldName:   strings.TrimSpace(m[2]),
			NewName:   strings.TrimSpace(m[3]),
		}
	}

	return &GroupEvent{Kind: EventOther, Timestamp: ts}
}

// splitSender cuts "Alice: hello" into sender and body. System lines
// carry no ": " separator and yield an empty sender.
func splitSender(rest string) (sender, body string) {
	if s, b, found := strings.Cut(rest, ": "); found {
		return strings.TrimSpace(s), b
	}
	return "", rest
}
