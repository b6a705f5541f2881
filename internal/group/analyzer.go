package group

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/MikeSquared-Agency/libra/internal/analyze"
	"github.com/MikeSquared-Agency/libra/internal/transcript"
)

// MinGroupMessages is the floor below which a group analysis is refused.
const MinGroupMessages = 5

// MemberStats are the raw per-participant counters plus two derived fields.
type MemberStats struct {
	Messages      int     `json:"messages"`
	Words         int     `json:"words"`
	Questions     int     `json:"questions"`
	MediaMentions int     `json:"media_mentions"`
	EmojiCount    int     `json:"emoji_count"`
	AvgWords      float64 `json:"avg_words"`
	Percentage    float64 `json:"percentage"` // share of total messages
}

// Tag is a descriptive label assigned to a member.
type Tag struct {
	Label       string            `json:"label"`
	Emoji       string            `json:"emoji"`
	Description string            `json:"description"`
	Sentiment   analyze.Sentiment `json:"sentiment"`
}

// Member is one ranked, tagged participant.
type Member struct {
	Name  string      `json:"name"`
	Rank  int         `json:"rank"` // 1 = most messages
	Stats MemberStats `json:"stats"`
	Tags  []Tag       `json:"tags"` // 1..3 entries
}

// Result is the complete group analysis.
type Result struct {
	TotalMessages     int      `json:"total_messages"`
	TotalParticipants int      `json:"total_participants"`
	Members           []Member `json:"members"`
	Summary           string   `json:"summary"`
	Highlights        []string `json:"highlights"`
}

// cohort holds the cross-member averages the tag rules compare against.
type cohort struct {
	size         int
	avgMessages  float64
	avgMedia     float64
	avgQuestions float64
}

// AnalyzeTranscript parses a group export (sender names kept as-is) and
// produces the ranked, tagged member report.
func AnalyzeTranscript(text string) (*Result, error) {
	parsed, err := transcript.Parse(text)
	if err != nil {
		if errors.Is(err, transcript.ErrUnknownFormat) {
			return nil, &analyze.InsufficientDataError{Mode: "group", Got: 0, Need: MinGroupMessages}
		}
		return nil, fmt.Errorf("parse transcript: %w", err)
	}
	return Analyze(parsed)
}

// Analyze runs the group pipeline over already-parsed messages.
func Analyze(parsed []transcript.ParsedMessage) (*Result, error) {
	if len(parsed) < MinGroupMessages {
		return nil, &analyze.InsufficientDataError{Mode: "group", Got: len(parsed), Need: MinGroupMessages}
	}

	members := accumulate(parsed)
	total := len(parsed)

	ch := cohort{size: len(members)}
	for i := range members {
		ch.avgMessages += float64(members[i].Stats.Messages)
		ch.avgMedia += float64(members[i].Stats.MediaMentions)
		ch.avgQuestions += float64(members[i].Stats.Questions)
	}
	ch.avgMessages /= float64(ch.size)
	ch.avgMedia /= float64(ch.size)
	ch.avgQuestions /= float64(ch.size)

	for i := range members {
		m := &members[i]
		if m.Stats.Messages > 0 {
			m.Stats.AvgWords = round1(float64(m.Stats.Words) / float64(m.Stats.Messages))
		}
		m.Stats.Percentage = round1(100 * float64(m.Stats.Messages) / float64(total))
		m.Tags = assignTags(m.Stats, ch)
	}

	sort.SliceStable(members, func(i, j int) bool {
		return members[i].Stats.Messages > members[j].Stats.Messages
	})
	for i := range members {
		members[i].Rank = i + 1
	}

	return &Result{
		TotalMessages:     total,
		TotalParticipants: len(members),
		Members:           members,
		Summary:           buildSummary(members),
		Highlights:        buildHighlights(members),
	}, nil
}

// accumulate builds one counter struct per distinct sender, preserving
// first-appearance order so ties rank deterministically.
func accumulate(parsed []transcript.ParsedMessage) []Member {
	index := make(map[string]int)
	var members []Member
	for _, pm := range parsed {
		i, ok := index[pm.Sender]
		if !ok {
			i = len(members)
			index[pm.Sender] = i
			members = append(members, Member{Name: pm.Sender})
		}
		s := &members[i].Stats
		s.Messages++
		s.Words += wordCount(pm.Text)
		if hasQuestion(pm.Text) {
			s.Questions++
		}
		if mentionsMedia(pm.Text) {
			s.MediaMentions++
		}
		s.EmojiCount += countEmoji(pm.Text)
	}
	return members
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
