package stats

import (
	"time"

	"github.com/alizand/chatstat/internal/chatlog"
)

// UserStats holds the running counters for one sender. Messages counts
// every authored entry (regular, media, deleted); Media and Deleted
// additionally count their own kinds. Chars and Words accumulate over
// regular bodies only, so placeholder text never skews averages.
type UserStats struct {
	Name     string
	Messages int
	Media    int
	Deleted  int
	BadWords int
	Chars    int
	Words    int
	First    time.Time
	Last     time.Time
}

// AvgChars returns the mean character count per authored message.
func (u *UserStats) AvgChars() float64 {
	if u.Messages == 0 {
		return 0
	}
	return float64(u.Chars) / float64(u.Messages)
}

// AvgWords returns the mean word count per authored message.
func (u *UserStats) AvgWords() float64 {
	if u.Messages == 0 {
		return 0
	}
	return float64(u.Words) / float64(u.Messages)
}

// DayTally names one calendar day (hinted-calendar yyyy/mm/dd key) and
// its count.
type DayTally struct {
	Day   string
	Count int
}

// TopEntry is one row of a most-common list.
type TopEntry struct {
	Token string
	Count int
}

// Result is the finished output of one analysis run. Day maps are keyed
// by the hinted-calendar day string; Months is indexed by month-1.
type Result struct {
	Users []*UserStats

	Hours    [24]int
	Weekdays [7]int
	Months   [12]int

	MessagesPerDay map[string]int
	MediaPerDay    map[string]int

	TotalCounted int
	AvgPerDay    float64

	// Nil when the input had no counted messages.
	BusiestDay   *DayTally
	QuietestDay  *DayTally
	MostMediaDay *DayTally

	Timeline []chatlog.GroupEvent

	TopWords []TopEntry
	TopEmoji []TopEntry

	Parse chatlog.ParseStats
}
