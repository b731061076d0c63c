// Package chatlog turns the raw lines of an exported group chat
// transcript into structured Message values. It handles both known
// export variants (bracketed and dash-separated timestamps), multi-line
// message bodies, and the platform's system lines for group metadata.
package chatlog

import "time"

// Kind classifies a parsed message. It is a closed set; every consumer
// is expected to handle all four cases.
type Kind int

const (
	KindRegular Kind = iota
	KindMediaOmitted
	KindDeleted
	KindSystemEvent
)

func (k Kind) String() string {
	switch k {
	case KindRegular:
		return "regular"
	case KindMediaOmitted:
		return "media_omitted"
	case KindDeleted:
		return "deleted"
	case KindSystemEvent:
		return "system_event"
	default:
		return "unknown"
	}
}

// EventKind distinguishes the recognized system events.
type EventKind int

const (
	EventGroupCreated EventKind = iota
	EventGroupRenamed
	EventOther
)

// GroupEvent carries the payload of a system line. GroupName is set for
// creations; OldName/NewName for renames.
type GroupEvent struct {
	Kind      EventKind
	Timestamp time.Time
	Actor     string
	GroupName string
	OldName   string
	NewName   string
}

// Message is one logical transcript entry: a start line plus any
// continuation lines, with a canonical UTC timestamp. Sender is empty
// for system events. Event is non-nil only when Kind is KindSystemEvent.
type Message struct {
	Timestamp time.Time
	Sender    string
	Body      string
	Kind      Kind
	Event     *GroupEvent
}

// ParseStats counts the input the parser could not use. Neither count is
// fatal; the analysis always produces a best-effort result.
type ParseStats struct {
	// SkippedLines are continuation lines seen before any message started.
	SkippedLines int
	// DroppedMessages are start lines whose timestamp failed to parse
	// under the hinted calendar; the whole logical message is discarded.
	DroppedMessages int
}
