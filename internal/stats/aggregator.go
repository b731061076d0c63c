// Package stats folds parsed messages into the per-user, per-bucket and
// frequency statistics the report is built from. The whole run's state
// lives in one Aggregator value; there is no package-level state, so
// concurrent independent runs cannot interfere.
package stats

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/alizand/chatstat/internal/caldate"
	"github.com/alizand/chatstat/internal/chatlog"
	"github.com/alizand/chatstat/internal/text"
)

// Options configures one analysis run.
type Options struct {
	// TopN is the length of the most-common word and emoji lists.
	TopN int

	// CountMediaInActivity includes media-omitted messages in the
	// temporal buckets. Regular and deleted messages always count;
	// system events never do.
	CountMediaInActivity bool

	// StopWords are excluded from the word frequency table. BadWords
	// are tallied per occurrence into the sender's counter. Both sets
	// must be lowercased.
	StopWords map[string]struct{}
	BadWords  map[string]struct{}
}

// freqTable counts token occurrences and remembers the order tokens were
// first seen, which breaks ties in the top-N lists deterministically.
type freqTable struct {
	counts map[string]int
	first  map[string]int
	seq    int
}

func newFreqTable() *freqTable {
	return &freqTable{counts: make(map[string]int), first: make(map[string]int)}
}

func (f *freqTable) add(tok string) {
	if _, seen := f.counts[tok]; !seen {
		f.first[tok] = f.seq
		f.seq++
	}
	f.counts[tok]++
}

func (f *freqTable) top(n int) []TopEntry {
	entries := make([]TopEntry, 0, len(f.counts))
	for tok, cnt := range f.counts {
		entries = append(entries, TopEntry{Token: tok, Count: cnt})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return f.first[entries[i].Token] < f.first[entries[j].Token]
	})

	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// Aggregator accumulates one run's statistics. Ingest folds messages in
// input order; Finalize computes the derived values and hands the state
// off as a Result.
type Aggregator struct {
	conv *caldate.Converter
	opts Options

	users          map[string]*UserStats
	hours          [24]int
	weekdays       [7]int
	months         [12]int
	messagesPerDay map[string]int
	mediaPerDay    map[string]int
	totalCounted   int
	timeline       []chatlog.GroupEvent
	words          *freqTable
	emoji          *freqTable
}

func NewAggregator(conv *caldate.Converter, opts Options) *Aggregator {
	return &Aggregator{
		conv:           conv,
		opts:           opts,
		users:          make(map[string]*UserStats),
		messagesPerDay: make(map[string]int),
		mediaPerDay:    make(map[string]int),
		words:          newFreqTable(),
		emoji:          newFreqTable(),
	}
}

// Ingest folds one message into the run state.
func (a *Aggregator) Ingest(msg chatlog.Message) {
	if msg.Kind == chatlog.KindSystemEvent {
		if msg.Event != nil && msg.Event.Kind != chatlog.EventOther {
			a.timeline = append(a.timeline, *msg.Event)
		}
		return
	}

	day := a.conv.FormatDay(msg.Timestamp)

	if msg.Sender != "" {
		a.ingestUser(msg)
	}

	if msg.Kind == chatlog.KindMediaOmitted {
		a.mediaPerDay[day]++
	}

	if msg.Kind != chatlog.KindMediaOmitted || a.opts.CountMediaInActivity {
		a.hours[a.conv.Hour(msg.Timestamp)]++
		a.weekdays[a.conv.Weekday(msg.Timestamp)]++
		a.months[a.conv.Month(msg.Timestamp)-1]++
		a.messagesPerDay[day]++
		a.totalCounted++
	}
}

func (a *Aggregator) ingestUser(msg chatlog.Message) {
	u, ok := a.users[msg.Sender]
	if !ok {
		u = &UserStats{Name: msg.Sender, First: msg.Timestamp}
		a.users[msg.Sender] = u
	}

	u.Messages++
	if msg.Timestamp.Before(u.First) {
		u.First = msg.Timestamp
	}
	if msg.Timestamp.After(u.Last) {
		u.Last = msg.Timestamp
	}

	switch msg.Kind {
	case chatlog.KindMediaOmitted:
		u.Media++
	case chatlog.KindDeleted:
		u.Deleted++
	case chatlog.KindRegular:
		u.Chars += utf8.RuneCountInString(msg.Body)
		u.Words += len(strings.Fields(msg.Body))

		tokens := text.Tokenize(msg.Body)
		u.BadWords += text.CountBadWords(tokens, a.opts.BadWords)
		for _, w := range text.FilterStopWords(tokens, a.opts.StopWords) {
			a.words.add(w)
		}
		for _, e := range text.ExtractEmoji(msg.Body) {
			a.emoji.add(e)
		}
	}
}

// Finalize computes the derived values and returns the run's Result.
// An empty input yields a zero Result with absent day tallies.
func (a *Aggregator) Finalize() *Result {
	res := &Result{
		Hours:          a.hours,
		Weekdays:       a.weekdays,
		Months:         a.months,
		MessagesPerDay: a.messagesPerDay,
		MediaPerDay:    a.mediaPerDay,
		TotalCounted:   a.totalCounted,
		Timeline:       a.timeline,
		TopWords:       a.words.top(a.opts.TopN),
		TopEmoji:       a.emoji.top(a.opts.TopN),
	}

	res.Users = make([]*UserStats, 0, len(a.users))
	for _, u := range a.users {
		res.Users = append(res.Users, u)
	}
	sort.Slice(res.Users, func(i, j int) bool {
		if res.Users[i].Messages != res.Users[j].Messages {
			return res.Users[i].Messages > res.Users[j].Messages
		}
		return res.Users[i].Name < res.Users[j].Name
	})

	res.BusiestDay = argDay(a.messagesPerDay, func(best, c int) bool { return c > best })
	res.QuietestDay = argDay(a.messagesPerDay, func(best, c int) bool { return c < best })
	res.MostMediaDay = argDay(a.mediaPerDay, func(best, c int) bool { return c > best })

	if len(a.messagesPerDay) > 0 {
		res.AvgPerDay = float64(a.totalCounted) / float64(len(a.messagesPerDay))
	}

	return res
}

// argDay scans the per-day map in chronological key order so equal
// counts resolve to the earliest date. Returns nil for an empty map.
func argDay(perDay map[string]int, better func(best, candidate int) bool) *DayTally {
	if len(perDay) == 0 {
		return nil
	}

	days := make([]string, 0, len(perDay))
	for d := range perDay {
		days = append(days, d)
	}
	sort.Strings(days)

	best := &DayTally{Day: days[0], Count: perDay[days[0]]}
	for _, d := range days[1:] {
		if better(best.Count, perDay[d]) {
			best = &DayTally{Day: d, Count: perDay[d]}
		}
	}
	return best
}
