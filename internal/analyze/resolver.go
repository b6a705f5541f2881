package analyze

import (
	"sort"
	"strings"
	"time"

	"github.com/MikeSquared-Agency/libra/internal/transcript"
)

// selfMarkers are sender names that unambiguously identify the uploader.
var selfMarkers = map[string]bool{
	"me":     true,
	"you":    true,
	"i":      true,
	"myself": true,
}

// Resolve maps raw sender names onto self/other for 1-on-1 analysis.
//
// Senders are grouped case-insensitively and ranked by message count. A
// marker name ("me", "(you)", ...) wins outright. Without a marker the most
// frequent sender is assumed to be the other party and the second most
// frequent the uploader — exports are usually uploaded by whoever is asking
// about the chattier side. With a single sender everything is attributed to
// other and self is left empty.
func Resolve(parsed []transcript.ParsedMessage) []Message {
	type senderCount struct {
		key   string
		count int
		first int
	}
	counts := make(map[string]*senderCount)
	for i, pm := range parsed {
		key := strings.ToLower(strings.TrimSpace(pm.Sender))
		if sc, ok := counts[key]; ok {
			sc.count++
		} else {
			counts[key] = &senderCount{key: key, count: 1, first: i}
		}
	}

	ranked := make([]*senderCount, 0, len(counts))
	for _, sc := range counts {
		ranked = append(ranked, sc)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].first < ranked[j].first
	})

	selfKey := ""
	for _, sc := range ranked {
		if isSelfMarker(sc.key) {
			selfKey = sc.key
			break
		}
	}
	if selfKey == "" && len(ranked) >= 2 {
		selfKey = ranked[1].key
	}
	// Single sender with no marker: selfKey stays empty and every message
	// resolves to other; self simply has zero messages.

	msgs := make([]Message, 0, len(parsed))
	for _, pm := range parsed {
		side := SideOther
		if strings.ToLower(strings.TrimSpace(pm.Sender)) == selfKey && selfKey != "" {
			side = SideSelf
		}
		msgs = append(msgs, NewMessage(pm.Text, side, parseOptionalTime(pm.Timestamp)))
	}
	return msgs
}

func isSelfMarker(key string) bool {
	if selfMarkers[key] {
		return true
	}
	return strings.Contains(key, "(you)") || strings.Contains(key, "(me)")
}

func parseOptionalTime(raw string) *time.Time {
	if t, ok := transcript.ParseTimestamp(raw); ok {
		return &t
	}
	return nil
}
