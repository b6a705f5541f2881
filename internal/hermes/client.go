package hermes

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

// SubjectAnalysisCompleted carries one event per finished analysis so
// downstream agents (usage metering, trend dashboards) can react without
// polling the API.
const SubjectAnalysisCompleted = "swarm.libra.analysis.completed"

// SubjectRegistered announces the service on startup.
const SubjectRegistered = "swarm.agent.libra.registered"

// AnalysisEvent is emitted after each successful analysis call.
type AnalysisEvent struct {
	AnalysisID    string   `json:"analysis_id"`
	Mode          string   `json:"mode"` // "1on1", "group", "compare"
	Score         int      `json:"score,omitempty"`
	Label         string   `json:"label,omitempty"`
	Participants  int      `json:"participants,omitempty"`
	PatternTitles []string `json:"pattern_titles,omitempty"`
}

type Client struct {
	conn   *nats.Conn
	logger *slog.Logger
}

func NewClient(ctx context.Context, url, token string, logger *slog.Logger) (*Client, error) {
	opts := []nats.Option{
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info("nats reconnected")
		}),
	}
	if token != "" {
		opts = append(opts, nats.Token(token))
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	return &Client{conn: nc, logger: logger}, nil
}

func (c *Client) Publish(subject string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	return c.conn.Publish(subject, payload)
}

func (c *Client) Close() {
	c.conn.Close()
}
