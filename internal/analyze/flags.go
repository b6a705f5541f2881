package analyze

import "fmt"

// Rule thresholds, named so each rule is testable on its own.
const (
	maxPatterns = 4

	doubleTextMinRun      = 3
	shortReplyMaxWords    = 2
	shortReplyShare       = 0.5
	shortReplyMinMessages = 3 // other must have more than this many messages

	oneWayQuestionMin = 3

	slowReplyTimeRatio = 0.3

	carryingMessageRatio = 2.5

	lateNightShare    = 0.7
	lateNightMinCount = 3
	lateNightStartHr  = 22
	lateNightEndHr    = 5

	balancedMsgRatioLo  = 0.8
	balancedMsgRatioHi  = 1.2
	balancedWordRatioLo = 0.7
	balancedWordRatioHi = 1.4

	mutualQuestionMin     = 2
	mutualQuestionRatioLo = 0.5
	mutualQuestionRatioHi = 2.0

	theyTextMoreRatio = 0.7

	quickReplyMinutes = 10

	thoughtfulMinAvgWords = 8
	thoughtfulMinMessages = 3

	questionImbalanceRatio = 2.0
)

// DetectPatterns evaluates every rule and returns at most maxPatterns
// findings, red flags first, then green, then neutral. Within each bucket the
// rule listing order is the priority order.
func DetectPatterns(msgs []Message, stats Stats) []Pattern {
	var red, green, neutral []Pattern

	if run := longestSelfRun(msgs); run >= doubleTextMinRun {
		red = append(red, Pattern{
			Title:       "Double-texting",
			Description: fmt.Sprintf("You sent %d messages in a row without a reply.", run),
			Sentiment:   SentimentNegative,
		})
	}
	if stats.Other.Messages > shortReplyMinMessages {
		short := 0
		for _, m := range msgs {
			if m.Side == SideOther && m.WordCount <= shortReplyMaxWords {
				short++
			}
		}
		if float64(short)/float64(stats.Other.Messages) > shortReplyShare {
			red = append(red, Pattern{
				Title:       "Short responses",
				Description: "Most of their replies are two words or less.",
				Sentiment:   SentimentNegative,
			})
		}
	}
	if stats.Self.Questions >= oneWayQuestionMin && stats.Other.Questions == 0 {
		red = append(red, Pattern{
			Title:       "One-way curiosity",
			Description: fmt.Sprintf("You asked %d questions; they asked none back.", stats.Self.Questions),
			Sentiment:   SentimentNegative,
		})
	}
	if stats.Self.AvgReplyMinutes != nil && stats.Other.AvgReplyMinutes != nil &&
		*stats.Other.AvgReplyMinutes > 0 &&
		*stats.Self.AvgReplyMinutes / *stats.Other.AvgReplyMinutes < slowReplyTimeRatio {
		red = append(red, Pattern{
			Title:       "Slow replies",
			Description: fmt.Sprintf("They take around %s to reply; you answer much faster.", formatMinutes(*stats.Other.AvgReplyMinutes)),
			Sentiment:   SentimentNegative,
		})
	}
	if stats.MessageRatio > carryingMessageRatio {
		red = append(red, Pattern{
			Title:       "Carrying the conversation",
			Description: "You send well over twice as many messages as they do.",
			Sentiment:   SentimentNegative,
		})
	}
	if late, total := lateNightCounts(msgs); late >= lateNightMinCount && total > 0 &&
		float64(late)/float64(total) >= lateNightShare {
		red = append(red, Pattern{
			Title:       "Late-night texter",
			Description: "Most of their messages arrive between 10 PM and 5 AM.",
			Sentiment:   SentimentNegative,
		})
	}

	if stats.MessageRatio >= balancedMsgRatioLo && stats.MessageRatio <= balancedMsgRatioHi &&
		stats.WordRatio >= balancedWordRatioLo && stats.WordRatio <= balancedWordRatioHi {
		green = append(green, Pattern{
			Title:       "Balanced effort",
			Description: "You both put in a similar amount of effort.",
			Sentiment:   SentimentPositive,
		})
	}
	if stats.Other.Questions >= mutualQuestionMin &&
		stats.QuestionRatio >= mutualQuestionRatioLo && stats.QuestionRatio <= mutualQuestionRatioHi {
		green = append(green, Pattern{
			Title:       "They ask back",
			Description: "They show real curiosity about you, not just answers.",
			Sentiment:   SentimentPositive,
		})
	}
	if stats.MessageRatio < theyTextMoreRatio {
		green = append(green, Pattern{
			Title:       "They text more",
			Description: "They send more messages than you do.",
			Sentiment:   SentimentPositive,
		})
	}
	if stats.Other.AvgReplyMinutes != nil && *stats.Other.AvgReplyMinutes < quickReplyMinutes {
		green = append(green, Pattern{
			Title:       "Quick replies",
			Description: fmt.Sprintf("They usually reply within %s.", formatMinutes(*stats.Other.AvgReplyMinutes)),
			Sentiment:   SentimentPositive,
		})
	}
	if stats.Other.Messages >= thoughtfulMinMessages &&
		avgWords(stats.Other) >= thoughtfulMinAvgWords {
		green = append(green, Pattern{
			Title:       "Thoughtful messages",
			Description: "Their messages are long and considered.",
			Sentiment:   SentimentPositive,
		})
	}

	if stats.QuestionRatio > questionImbalanceRatio && stats.Other.Questions > 0 {
		neutral = append(neutral, Pattern{
			Title:       "Question imbalance",
			Description: "You ask a lot more questions than they do.",
			Sentiment:   SentimentNeutral,
		})
	}

	patterns := append(red, green...)
	patterns = append(patterns, neutral...)
	if len(patterns) > maxPatterns {
		patterns = patterns[:maxPatterns]
	}
	return patterns
}

// longestSelfRun returns the longest streak of consecutive self messages.
func longestSelfRun(msgs []Message) int {
	longest, run := 0, 0
	for _, m := range msgs {
		if m.Side == SideSelf {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	return longest
}

// lateNightCounts counts the other side's timestamped messages and how many
// of them land in the 22:00–05:00 window.
func lateNightCounts(msgs []Message) (late, total int) {
	for _, m := range msgs {
		if m.Side != SideOther || m.Timestamp == nil {
			continue
		}
		total++
		hr := m.Timestamp.Hour()
		if hr >= lateNightStartHr || hr < lateNightEndHr {
			late++
		}
	}
	return
}

func avgWords(s SideStats) float64 {
	if s.Messages == 0 {
		return 0
	}
	return float64(s.Words) / float64(s.Messages)
}

// formatMinutes renders a latency in minutes or hours, whichever reads
// better.
func formatMinutes(minutes float64) string {
	if minutes < 1 {
		return "under a minute"
	}
	if minutes < 60 {
		return fmt.Sprintf("%.0f minutes", minutes)
	}
	return fmt.Sprintf("%.1f hours", minutes/60)
}
