package analyze

import (
	"context"
	"errors"
	"fmt"

	"github.com/MikeSquared-Agency/libra/internal/transcript"
)

// MinOneOnOneMessages is the floor below which a 1-on-1 analysis is refused.
const MinOneOnOneMessages = 3

// InsufficientDataError is returned when a conversation is too small to
// analyze. It is not retryable and is surfaced to the caller verbatim.
type InsufficientDataError struct {
	Mode string
	Got  int
	Need int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("not enough messages for %s analysis: got %d, need at least %d", e.Mode, e.Got, e.Need)
}

// TaglineGenerator produces a one-line natural-language summary of the
// conversation. Implementations may call out to an LLM; failures are always
// swallowed in favor of the deterministic fallback.
type TaglineGenerator interface {
	Generate(ctx context.Context, msgs []Message, stats Stats, patternTitles []string) (string, error)
}

// Options configures a single analysis run.
type Options struct {
	Tagline TaglineGenerator // optional
}

// AnalyzeMessages runs the full 1-on-1 pipeline over already-resolved
// messages (the OCR path).
func AnalyzeMessages(ctx context.Context, msgs []Message, opts Options) (*Result, error) {
	if len(msgs) < MinOneOnOneMessages {
		return nil, &InsufficientDataError{Mode: "1-on-1", Got: len(msgs), Need: MinOneOnOneMessages}
	}

	stats := ComputeStats(msgs)
	patterns := DetectPatterns(msgs, stats)
	vibe := ClassifyVibe(msgs, stats)
	score := BalanceScore(stats)

	return &Result{
		Score:     score,
		Label:     ScoreLabel(score),
		Summary:   summarize(ctx, opts.Tagline, msgs, stats, patterns),
		Patterns:  patterns,
		Breakdown: stats,
		Vibe:      vibe,
	}, nil
}

// AnalyzeTranscript parses a raw export, resolves the two parties, and runs
// the 1-on-1 pipeline.
func AnalyzeTranscript(ctx context.Context, text string, opts Options) (*Result, error) {
	parsed, err := transcript.Parse(text)
	if err != nil {
		if errors.Is(err, transcript.ErrUnknownFormat) {
			return nil, &InsufficientDataError{Mode: "1-on-1", Got: 0, Need: MinOneOnOneMessages}
		}
		return nil, fmt.Errorf("parse transcript: %w", err)
	}
	return AnalyzeMessages(ctx, Resolve(parsed), opts)
}

// summarize asks the tagline collaborator first and falls back to the
// ratio-band table on any failure. Callers cannot tell the two apart.
func summarize(ctx context.Context, gen TaglineGenerator, msgs []Message, stats Stats, patterns []Pattern) string {
	if gen != nil {
		titles := make([]string, 0, len(patterns))
		for _, p := range patterns {
			titles = append(titles, p.Title)
		}
		if line, err := gen.Generate(ctx, msgs, stats, titles); err == nil && line != "" {
			return line
		}
	}
	return FallbackSummary(stats)
}

// FallbackSummary maps the message ratio onto a fixed tagline table.
func FallbackSummary(stats Stats) string {
	switch r := stats.MessageRatio; {
	case r > 3:
		return "You're carrying this conversation"
	case r > 2:
		return "You're putting in most of the effort"
	case r > 1.5:
		return "You're a bit more invested than they are"
	case r < 0.33:
		return "They're really carrying this one"
	case r < 0.5:
		return "They're doing most of the heavy lifting"
	case r < 0.67:
		return "They're a bit more invested than you are"
	default:
		return "A pretty even back and forth"
	}
}
