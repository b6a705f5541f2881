package transcript

import (
	"errors"
	"regexp"
	"strings"
)

// ParsedMessage is a single message lifted out of a raw transcript export.
// Sender is the display text exactly as scanned; Timestamp is the raw
// timestamp string, empty when the line carried none.
type ParsedMessage struct {
	Sender    string
	Text      string
	Timestamp string
}

// ErrUnknownFormat is returned when no dialect matcher accepts the input.
var ErrUnknownFormat = errors.New("no known transcript format matched")

// A dialect must produce more than this many messages to be accepted.
const minDialectMessages = 2

// matcher is one transcript dialect: a pure function over the raw text.
type matcher struct {
	name  string
	parse func(text string) []ParsedMessage
}

// Matchers are tried strictly in this order; the first one that yields more
// than minDialectMessages wins, even if a later dialect would have produced
// more usable records. Known limitation, kept for predictability.
var matchers = []matcher{
	{"labeled", parseLabeled},
	{"header-block", parseHeaderBlock},
	{"generic", parseGeneric},
}

// Parse turns raw export text into an ordered message sequence by trying each
// dialect in priority order.
func Parse(text string) ([]ParsedMessage, error) {
	for _, m := range matchers {
		msgs := m.parse(text)
		if len(msgs) > minDialectMessages {
			return msgs, nil
		}
	}
	return nil, ErrUnknownFormat
}

// timestampRe covers M/D/YY[YY][, ]H:MM[:SS][ AM/PM] — the format WhatsApp
// and most Android SMS export apps emit.
var timestampRe = regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{2,4},?\s+\d{1,2}:\d{2}(?::\d{2})?(?:\s?[AaPp][Mm])?`)

// labeledLineRe matches "[ts] sender: text" and "ts - sender: text" as well
// as plain "sender: text" lines inside a labeled export.
var labeledLineRe = regexp.MustCompile(
	`^(?:\[?(\d{1,2}/\d{1,2}/\d{2,4},?\s+\d{1,2}:\d{2}(?::\d{2})?(?:\s?[AaPp][Mm])?)\]?\s*[-–—]?\s*)?([^:\n]+?):\s*(.+)$`)

// parseLabeled handles the label-delimited dialect: one message per line,
// optional leading timestamp (bracketed or dash-separated).
func parseLabeled(text string) []ParsedMessage {
	var msgs []ParsedMessage
	timestamped := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := labeledLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		ts, sender, body := m[1], strings.TrimSpace(m[2]), strings.TrimSpace(m[3])
		if sender == "" || body == "" {
			continue
		}
		if ts == "" {
			// A bare timestamp line backtracks into a bogus sender split, and
			// URL colons are never sender delimiters. Neither is a message.
			if startsWithTimestamp(line) || containsURL(line) {
				continue
			}
		} else {
			timestamped++
		}
		msgs = append(msgs, ParsedMessage{Sender: sender, Text: body, Timestamp: ts})
	}
	// The timestamp is optional per line, but a transcript with none at all
	// is not this dialect: leave it for a later matcher.
	if timestamped == 0 {
		return nil
	}
	return msgs
}

func startsWithTimestamp(line string) bool {
	loc := timestampRe.FindStringIndex(line)
	return loc != nil && loc[0] == 0
}

// headerMarkerRe matches dialect-B sender markers: "From:", "To:", "Me:",
// "You:", optionally followed by inline text on the same line.
var headerMarkerRe = regexp.MustCompile(`^(From|To|Me|You):\s*(.*)$`)

// parseHeaderBlock handles the header + freeform block dialect: a marker line
// opens a block, and following lines belong to that sender until the next
// marker or a line that itself looks like a timestamp.
func parseHeaderBlock(text string) []ParsedMessage {
	var msgs []ParsedMessage
	sender := ""
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if m := headerMarkerRe.FindStringSubmatch(line); m != nil {
			sender = m[1]
			if body := strings.TrimSpace(m[2]); body != "" {
				msgs = append(msgs, ParsedMessage{Sender: sender, Text: body})
			}
			continue
		}
		// A bare timestamp line closes the current block.
		if timestampRe.MatchString(line) && len(line) < 40 {
			sender = ""
			continue
		}
		if sender != "" {
			msgs = append(msgs, ParsedMessage{Sender: sender, Text: line})
		}
	}
	return msgs
}

const genericMaxSenderLen = 50

// parseGeneric is the last-resort dialect: any "shortname: text" line with a
// sender under 50 characters, skipping lines that carry a URL (those colons
// are almost never sender delimiters).
func parseGeneric(text string) []ParsedMessage {
	var msgs []ParsedMessage
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || containsURL(line) {
			continue
		}
		idx := strings.Index(line, ":")
		if idx <= 0 || idx >= genericMaxSenderLen {
			continue
		}
		sender := strings.TrimSpace(line[:idx])
		body := strings.TrimSpace(line[idx+1:])
		if sender == "" || body == "" {
			continue
		}
		msgs = append(msgs, ParsedMessage{Sender: sender, Text: body})
	}
	return msgs
}

func containsURL(line string) bool {
	lower := strings.ToLower(line)
	return strings.Contains(lower, "http://") ||
		strings.Contains(lower, "https://") ||
		strings.Contains(lower, "www.")
}
