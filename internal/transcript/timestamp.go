package transcript

import (
	"strings"
	"time"
)

// timestampLayouts lists every timestamp shape the dialects emit, plus
// RFC3339 for pre-parsed (OCR) records. Tried in order.
var timestampLayouts = []string{
	time.RFC3339,
	"1/2/06, 3:04 PM",
	"1/2/2006, 3:04 PM",
	"1/2/06, 3:04:05 PM",
	"1/2/2006, 3:04:05 PM",
	"1/2/06, 3:04PM",
	"1/2/2006, 3:04PM",
	"1/2/06, 15:04",
	"1/2/2006, 15:04",
	"1/2/06, 15:04:05",
	"1/2/2006, 15:04:05",
	"1/2/06 3:04 PM",
	"1/2/2006 3:04 PM",
	"1/2/06 15:04",
	"1/2/2006 15:04",
}

// ParseTimestamp parses a raw transcript timestamp. The second return is
// false when no known layout matches; callers treat that as "no timestamp",
// never as an error.
func ParseTimestamp(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	upper := strings.ToUpper(raw)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, upper); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
