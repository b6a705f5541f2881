package analyze

// Reply deltas outside (0, 24h] are treated as conversation breaks, not real
// response times.
const maxReplyGapMinutes = 24 * 60

// ComputeStats derives per-side aggregates and ratios from a resolved
// message sequence.
func ComputeStats(msgs []Message) Stats {
	var stats Stats
	for _, m := range msgs {
		side := &stats.Self
		if m.Side == SideOther {
			side = &stats.Other
		}
		side.Messages++
		side.Words += m.WordCount
		if m.HasQuestion {
			side.Questions++
		}
	}

	selfMinutes, selfReplies, otherMinutes, otherReplies := replyLatency(msgs)
	if selfReplies > 0 {
		avg := selfMinutes / float64(selfReplies)
		stats.Self.AvgReplyMinutes = &avg
	}
	if otherReplies > 0 {
		avg := otherMinutes / float64(otherReplies)
		stats.Other.AvgReplyMinutes = &avg
	}

	stats.MessageRatio = ratio(stats.Self.Messages, stats.Other.Messages)
	stats.WordRatio = ratio(stats.Self.Words, stats.Other.Words)
	stats.QuestionRatio = ratio(stats.Self.Questions, stats.Other.Questions)
	return stats
}

// replyLatency walks consecutive message pairs and attributes each qualifying
// delta to the replying side. Same-side pairs, missing timestamps, and gaps
// outside (0, 24h] are skipped.
func replyLatency(msgs []Message) (selfMinutes float64, selfReplies int, otherMinutes float64, otherReplies int) {
	for i := 1; i < len(msgs); i++ {
		prev, cur := msgs[i-1], msgs[i]
		if prev.Side == cur.Side {
			continue
		}
		if prev.Timestamp == nil || cur.Timestamp == nil {
			continue
		}
		delta := cur.Timestamp.Sub(*prev.Timestamp).Minutes()
		if delta <= 0 || delta > maxReplyGapMinutes {
			continue
		}
		if cur.Side == SideSelf {
			selfMinutes += delta
			selfReplies++
		} else {
			otherMinutes += delta
			otherReplies++
		}
	}
	return
}

// ratio is self/other, except when other is zero: then the raw self count is
// returned as-is. Asymmetric on purpose — the rule thresholds were tuned
// against this behavior.
func ratio(self, other int) float64 {
	if other == 0 {
		return float64(self)
	}
	return float64(self) / float64(other)
}
