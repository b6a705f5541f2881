package analyze

import "strings"

// Category scoring weights and acceptance thresholds. Each category must
// clear its own minimum before it can win.
const (
	flirtyEmojiWeight   = 2.0
	flirtyKeywordWeight = 1.5
	flirtyMinScore      = 3.0

	engagedWordBonus    = 2.0
	engagedAvgWordsOver = 6.0
	engagedMinScore     = 3.0

	dryShareWeight   = 6.0
	dryWordBonus     = 2.0
	dryAvgWordsUnder = 3.0
	dryMinScore      = 4.0

	coldEmojiWeight  = 2.0
	coldLatencyBonus = 3.0
	coldLatencyOver  = 60.0 // minutes
	coldMinScore     = 3.0

	lowEnergyMaxScore = 2.0
	lowEnergyMsgRatio = 1.5

	fallbackBalancedLo = 0.8
	fallbackBalancedHi = 1.2
)

var flirtyEmoji = runeSet("😘😍🥰😏💕❤🔥😉💋😻💖")

var flirtyKeywords = []string{
	"cutie", "beautiful", "handsome", "gorgeous", "babe", "baby",
	"miss you", "thinking of you", "date", "wyd", "can't stop thinking",
	"cant stop thinking", "dream about",
}

var happyEmoji = runeSet("😂🤣😊😁😄🎉🙌💀")

var engagedPhrases = []string{
	"tell me more", "that's awesome", "thats awesome", "no way",
	"really?", "what about you", "how was", "omg", "haha", "lol",
	"lmao", "so true", "same!",
}

var terseReplies = map[string]bool{
	"ok": true, "k": true, "kk": true, "okay": true, "fine": true,
	"sure": true, "yeah": true, "yea": true, "yep": true, "nah": true,
	"no": true, "cool": true, "nm": true, "idk": true,
}

var coldEmoji = runeSet("🙄😒😐😑💀🖕")

// ClassifyVibe scores the other side's messages against four tone categories
// and picks a single label.
func ClassifyVibe(msgs []Message, stats Stats) Vibe {
	var other []Message
	for _, m := range msgs {
		if m.Side == SideOther {
			other = append(other, m)
		}
	}

	scores := map[string]float64{
		"flirty":  flirtyScore(other),
		"engaged": engagedScore(other, stats),
		"dry":     dryScore(other, stats),
		"cold":    coldScore(other, stats),
	}
	minimums := map[string]float64{
		"flirty":  flirtyMinScore,
		"engaged": engagedMinScore,
		"dry":     dryMinScore,
		"cold":    coldMinScore,
	}

	maxScore := 0.0
	for _, s := range scores {
		if s > maxScore {
			maxScore = s
		}
	}

	// A quiet counterpart with a chatty uploader reads as low energy before
	// any category label applies.
	if maxScore < lowEnergyMaxScore && stats.MessageRatio > lowEnergyMsgRatio {
		return Vibe{Label: "Low Energy", Emoji: "😴", Description: "They're barely bringing anything to the conversation."}
	}

	// Pick the best category that clears its own minimum; tie goes to the
	// earlier category in this fixed order.
	best := ""
	bestScore := 0.0
	for _, name := range []string{"flirty", "engaged", "dry", "cold"} {
		if scores[name] >= minimums[name] && scores[name] > bestScore {
			best = name
			bestScore = scores[name]
		}
	}

	switch best {
	case "flirty":
		return Vibe{Label: "Flirty", Emoji: "😘", Description: "There's definite chemistry in their messages."}
	case "engaged":
		return Vibe{Label: "Engaged", Emoji: "💬", Description: "They're genuinely into this conversation."}
	case "dry":
		return Vibe{Label: "Dry", Emoji: "🏜️", Description: "Their replies are short and flat."}
	case "cold":
		return Vibe{Label: "Cold", Emoji: "🧊", Description: "They're keeping you at a distance."}
	}

	switch {
	case stats.MessageRatio >= fallbackBalancedLo && stats.MessageRatio <= fallbackBalancedHi:
		return Vibe{Label: "Balanced", Emoji: "⚖️", Description: "A steady, even back and forth."}
	case stats.MessageRatio < fallbackBalancedLo:
		return Vibe{Label: "Interested", Emoji: "🤗", Description: "They're putting in more than you are."}
	default:
		return Vibe{Label: "Mixed", Emoji: "🤷", Description: "Hard to read — the signals go both ways."}
	}
}

func flirtyScore(other []Message) float64 {
	emoji, keywords := 0, 0
	for _, m := range other {
		emoji += countRunes(m.Text, flirtyEmoji)
		lower := strings.ToLower(m.Text)
		for _, kw := range flirtyKeywords {
			if strings.Contains(lower, kw) {
				keywords++
			}
		}
	}
	return flirtyEmojiWeight*float64(emoji) + flirtyKeywordWeight*float64(keywords)
}

func engagedScore(other []Message, stats Stats) float64 {
	emoji, phrases := 0, 0
	for _, m := range other {
		emoji += countRunes(m.Text, happyEmoji)
		lower := strings.ToLower(m.Text)
		for _, p := range engagedPhrases {
			if strings.Contains(lower, p) {
				phrases++
			}
		}
	}
	score := float64(emoji + phrases)
	if avgWords(stats.Other) > engagedAvgWordsOver {
		score += engagedWordBonus
	}
	return score
}

func dryScore(other []Message, stats Stats) float64 {
	if len(other) == 0 {
		return 0
	}
	terse, emoji := 0, 0
	for _, m := range other {
		if terseReplies[canonical(m.Text)] {
			terse++
		}
		emoji += countRunes(m.Text, coldEmoji)
	}
	score := dryShareWeight*float64(terse)/float64(len(other)) + float64(emoji)
	if avgWords(stats.Other) < dryAvgWordsUnder {
		score += dryWordBonus
	}
	return score
}

func coldScore(other []Message, stats Stats) float64 {
	emoji := 0
	for _, m := range other {
		emoji += countRunes(m.Text, coldEmoji)
	}
	score := coldEmojiWeight * float64(emoji)
	if stats.Other.AvgReplyMinutes != nil && *stats.Other.AvgReplyMinutes > coldLatencyOver {
		score += coldLatencyBonus
	}
	return score
}

// canonical lowercases and strips trailing punctuation so "Ok." and "ok"
// count as the same terse reply.
func canonical(text string) string {
	return strings.Trim(strings.ToLower(strings.TrimSpace(text)), ".!… ")
}

func runeSet(s string) map[rune]bool {
	set := make(map[rune]bool)
	for _, r := range s {
		set[r] = true
	}
	return set
}

func countRunes(text string, set map[rune]bool) int {
	n := 0
	for _, r := range text {
		if set[r] {
			n++
		}
	}
	return n
}
