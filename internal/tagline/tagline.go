// Package tagline implements the LLM-backed one-line summary collaborator.
package tagline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/shared"

	"github.com/MikeSquared-Agency/libra/internal/analyze"
)

const (
	requestTimeout = 15 * time.Second
	maxTokens      = 60
	// Keep the prompt small: the model only needs counts and titles, not the
	// raw conversation.
	systemPrompt = "You summarize the effort balance of a text conversation in one short, " +
		"punchy line addressed to the person who uploaded it (\"you\"). No quotes, no emoji, " +
		"under 15 words."
)

// Generator calls the OpenAI chat completions API to produce a tagline. It
// satisfies analyze.TaglineGenerator.
type Generator struct {
	client oai.Client
	model  string
	logger *slog.Logger
}

// New builds a Generator. The caller decides whether to wire it at all; a nil
// generator means the engine uses its deterministic fallback table.
func New(apiKey, model string, logger *slog.Logger) *Generator {
	return &Generator{
		client: oai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
		logger: logger,
	}
}

// Generate produces the one-line summary. Errors propagate to the engine,
// which swallows them and falls back — they never reach the caller.
func (g *Generator) Generate(ctx context.Context, msgs []analyze.Message, stats analyze.Stats, patternTitles []string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := g.client.Chat.Completions.New(ctx, oai.ChatCompletionNewParams{
		Model: shared.ChatModel(g.model),
		Messages: []oai.ChatCompletionMessageParamUnion{
			oai.SystemMessage(systemPrompt),
			oai.UserMessage(buildPrompt(stats, patternTitles)),
		},
		MaxCompletionTokens: param.NewOpt(int64(maxTokens)),
	})
	if err != nil {
		g.logger.Warn("tagline generation failed, falling back", "error", err)
		return "", fmt.Errorf("tagline completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("tagline completion: empty response")
	}

	line := strings.TrimSpace(resp.Choices[0].Message.Content)
	line = strings.Trim(line, `"`)
	if line == "" {
		return "", fmt.Errorf("tagline completion: blank line")
	}
	return line, nil
}

func buildPrompt(stats analyze.Stats, patternTitles []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You sent %d messages (%d words, %d questions). ",
		stats.Self.Messages, stats.Self.Words, stats.Self.Questions)
	fmt.Fprintf(&b, "They sent %d messages (%d words, %d questions). ",
		stats.Other.Messages, stats.Other.Words, stats.Other.Questions)
	fmt.Fprintf(&b, "Message ratio you:them is %.2f.", stats.MessageRatio)
	if len(patternTitles) > 0 {
		fmt.Fprintf(&b, " Detected patterns: %s.", strings.Join(patternTitles, ", "))
	}
	return b.String()
}
