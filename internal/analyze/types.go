package analyze

import (
	"strings"
	"time"
)

// Side identifies which party of a 1-on-1 conversation a message belongs to.
type Side int

const (
	SideSelf Side = iota
	SideOther
)

func (s Side) String() string {
	if s == SideSelf {
		return "self"
	}
	return "other"
}

// Message is a resolved conversation message.
type Message struct {
	Text        string
	Side        Side
	HasQuestion bool
	Timestamp   *time.Time // nil when the source carried none or it was unparseable
	WordCount   int
}

// NewMessage builds a Message, deriving HasQuestion and WordCount from text.
func NewMessage(text string, side Side, ts *time.Time) Message {
	return Message{
		Text:        text,
		Side:        side,
		HasQuestion: strings.Contains(text, "?"),
		Timestamp:   ts,
		WordCount:   len(strings.Fields(text)),
	}
}

// SideStats are the per-side aggregates.
type SideStats struct {
	Messages        int      `json:"messages"`
	Words           int      `json:"words"`
	Questions       int      `json:"questions"`
	AvgReplyMinutes *float64 `json:"avg_reply_minutes"` // nil when no qualifying reply pair
}

// Stats holds both sides plus the three comparison ratios. When the other
// side has a zero count, the corresponding ratio falls back to the raw self
// count — not a true ratio, but downstream thresholds depend on it.
type Stats struct {
	Self          SideStats `json:"self"`
	Other         SideStats `json:"other"`
	MessageRatio  float64   `json:"message_ratio"`
	WordRatio     float64   `json:"word_ratio"`
	QuestionRatio float64   `json:"question_ratio"`
}

// Sentiment classifies a pattern finding.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// Pattern is one behavioral finding surfaced to the end user.
type Pattern struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Sentiment   Sentiment `json:"sentiment"`
}

// Vibe is the single tone label summarizing the other side's style.
type Vibe struct {
	Label       string `json:"label"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
}

// Result is the complete 1-on-1 analysis.
type Result struct {
	Score     int       `json:"score"`
	Label     string    `json:"label"`
	Summary   string    `json:"summary"`
	Patterns  []Pattern `json:"patterns"`
	Breakdown Stats     `json:"breakdown"`
	Vibe      Vibe      `json:"vibe"`
}
