package group

import (
	"strings"

	"github.com/MikeSquared-Agency/libra/internal/analyze"
)

// Tag rule thresholds.
const (
	maxTagsPerMember = 3

	carryingShare = 30.0

	lurkerShare     = 5.0
	lurkerMinCohort = 3 // cohort must be larger than this

	memeLordMediaFactor = 2.0
	memeLordMinMedia    = 3

	oneLinerMaxAvgWords = 4.0
	oneLinerMinMessages = 5

	essayMinAvgWords = 20.0
	essayMinMessages = 3

	curiousQuestionFactor = 2.0
	curiousMinQuestions   = 3

	emojiFanMinCount   = 10
	emojiFanPerMessage = 1.0

	ghostMessageFactor = 0.2
	ghostMinCohort     = 2 // cohort must be larger than this

	activeShareLo = 15.0
	activeShareHi = 30.0
)

// assignTags evaluates the rule table in order and keeps at most three tags.
// Every member gets at least one tag; Casual is the catch-all.
func assignTags(s MemberStats, ch cohort) []Tag {
	var tags []Tag
	add := func(t Tag) {
		if len(tags) < maxTagsPerMember {
			tags = append(tags, t)
		}
	}

	if s.Percentage > carryingShare {
		add(Tag{Label: "Carrying", Emoji: "🏋️", Description: "Keeps the whole chat alive.", Sentiment: analyze.SentimentPositive})
	}
	if s.Percentage < lurkerShare && ch.size > lurkerMinCohort {
		add(Tag{Label: "Lurker", Emoji: "👀", Description: "Reads everything, says almost nothing.", Sentiment: analyze.SentimentNeutral})
	}
	if float64(s.MediaMentions) > memeLordMediaFactor*ch.avgMedia && s.MediaMentions >= memeLordMinMedia {
		add(Tag{Label: "Meme Lord", Emoji: "😂", Description: "Communicates primarily in memes and links.", Sentiment: analyze.SentimentPositive})
	}
	if s.AvgWords < oneLinerMaxAvgWords && s.Messages >= oneLinerMinMessages {
		add(Tag{Label: "One-liner", Emoji: "🎯", Description: "Short and to the point, every time.", Sentiment: analyze.SentimentNeutral})
	}
	if s.AvgWords > essayMinAvgWords && s.Messages >= essayMinMessages {
		add(Tag{Label: "Essay Writer", Emoji: "📝", Description: "Sends paragraphs where others send words.", Sentiment: analyze.SentimentPositive})
	}
	if float64(s.Questions) > curiousQuestionFactor*ch.avgQuestions && s.Questions >= curiousMinQuestions {
		add(Tag{Label: "Curious", Emoji: "🤔", Description: "Always asking, always digging deeper.", Sentiment: analyze.SentimentPositive})
	}
	if s.EmojiCount > emojiFanMinCount && s.Messages > 0 &&
		float64(s.EmojiCount)/float64(s.Messages) > emojiFanPerMessage {
		add(Tag{Label: "Emoji Fan", Emoji: "🎨", Description: "Why use words when emoji exist?", Sentiment: analyze.SentimentPositive})
	}
	if float64(s.Messages) < ghostMessageFactor*ch.avgMessages && ch.size > ghostMinCohort {
		add(Tag{Label: "Ghost", Emoji: "👻", Description: "Barely shows up at all.", Sentiment: analyze.SentimentNegative})
	}
	if len(tags) == 0 && s.Percentage >= activeShareLo && s.Percentage <= activeShareHi {
		add(Tag{Label: "Active", Emoji: "⚡", Description: "A steady, reliable presence.", Sentiment: analyze.SentimentPositive})
	}
	if len(tags) == 0 {
		add(Tag{Label: "Casual", Emoji: "🙂", Description: "Drops in now and then.", Sentiment: analyze.SentimentNeutral})
	}
	return tags
}

// mediaExtensions are file suffixes that indicate a shared attachment.
var mediaExtensions = []string{
	".jpg", ".jpeg", ".png", ".gif", ".webp", ".heic",
	".mp4", ".mov", ".mp3", ".pdf",
}

// mediaPlaceholders are the strings messaging apps substitute for stripped
// attachments in text exports.
var mediaPlaceholders = []string{
	"<media omitted>", "image omitted", "video omitted", "audio omitted",
	"sticker omitted", "gif omitted", "document omitted", "[photo]",
	"[video]", "[sticker]", "attached:",
}

// mentionsMedia reports whether a message carries (or stands in for) shared
// media: a URL, an export placeholder, or a known file extension.
func mentionsMedia(text string) bool {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "http://") || strings.Contains(lower, "https://") || strings.Contains(lower, "www.") {
		return true
	}
	for _, p := range mediaPlaceholders {
		if strings.Contains(lower, p) {
			return true
		}
	}
	for _, ext := range mediaExtensions {
		if strings.Contains(lower, ext) {
			return true
		}
	}
	return false
}

func wordCount(text string) int {
	return len(strings.Fields(text))
}

func hasQuestion(text string) bool {
	return strings.Contains(text, "?")
}

// countEmoji counts runes in the common emoji blocks: misc symbols,
// dingbats, and the supplemental pictographs.
func countEmoji(text string) int {
	n := 0
	for _, r := range text {
		switch {
		case r >= 0x1F300 && r <= 0x1FAFF:
			n++
		case r >= 0x2600 && r <= 0x27BF:
			n++
		}
	}
	return n
}
