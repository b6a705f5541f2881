package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/libra/internal/analyze"
	"github.com/MikeSquared-Agency/libra/internal/group"
	"github.com/MikeSquared-Agency/libra/internal/hermes"
	"github.com/MikeSquared-Agency/libra/internal/transcript"
)

// MessageInput is one pre-resolved message from the OCR path. HasQuestion and
// WordCount are recomputed from the text when the envelope omits them.
type MessageInput struct {
	Text        string `json:"text"`
	Side        string `json:"side"` // "self" or "other"
	Timestamp   string `json:"timestamp,omitempty"`
	HasQuestion *bool  `json:"has_question,omitempty"`
	WordCount   *int   `json:"word_count,omitempty"`
}

// AnalyzeRequest carries either pre-resolved messages (screenshot/OCR path)
// or a raw transcript export. Messages win when both are present.
type AnalyzeRequest struct {
	Messages   []MessageInput `json:"messages,omitempty"`
	Transcript string         `json:"transcript,omitempty"`
}

// AnalyzeResponse is a Result with a request-scoped id attached.
type AnalyzeResponse struct {
	ID string `json:"id"`
	*analyze.Result
}

// GroupRequest carries a raw group chat export.
type GroupRequest struct {
	Transcript string `json:"transcript"`
}

// GroupResponse is a group Result with a request-scoped id attached.
type GroupResponse struct {
	ID string `json:"id"`
	*group.Result
}

// CompareRequest carries two transcripts analyzed independently.
type CompareRequest struct {
	A string `json:"a"`
	B string `json:"b"`
}

// CompareResponse pairs the two independent results.
type CompareResponse struct {
	ID string          `json:"id"`
	A  *analyze.Result `json:"a"`
	B  *analyze.Result `json:"b"`
}

// analyzeOneOnOne handles POST /api/v1/analyze.
func (s *Server) analyzeOneOnOne(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %v", err))
		return
	}

	opts := analyze.Options{Tagline: s.tagline}
	var result *analyze.Result
	var err error
	switch {
	case len(req.Messages) > 0:
		msgs, convErr := toMessages(req.Messages)
		if convErr != nil {
			writeError(w, http.StatusBadRequest, convErr.Error())
			return
		}
		result, err = analyze.AnalyzeMessages(r.Context(), msgs, opts)
	case req.Transcript != "":
		result, err = analyze.AnalyzeTranscript(r.Context(), req.Transcript, opts)
	default:
		writeError(w, http.StatusBadRequest, "either messages or transcript is required")
		return
	}
	if err != nil {
		s.writeAnalysisError(w, err)
		return
	}

	id := uuid.NewString()
	s.publishEvent(hermes.AnalysisEvent{
		AnalysisID:    id,
		Mode:          "1on1",
		Score:         result.Score,
		Label:         result.Label,
		PatternTitles: patternTitles(result.Patterns),
	})
	writeJSON(w, http.StatusOK, AnalyzeResponse{ID: id, Result: result})
}

// analyzeGroup handles POST /api/v1/analyze/group.
func (s *Server) analyzeGroup(w http.ResponseWriter, r *http.Request) {
	var req GroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %v", err))
		return
	}
	if req.Transcript == "" {
		writeError(w, http.StatusBadRequest, "transcript is required")
		return
	}

	result, err := group.AnalyzeTranscript(req.Transcript)
	if err != nil {
		s.writeAnalysisError(w, err)
		return
	}

	id := uuid.NewString()
	s.publishEvent(hermes.AnalysisEvent{
		AnalysisID:   id,
		Mode:         "group",
		Participants: result.TotalParticipants,
	})
	writeJSON(w, http.StatusOK, GroupResponse{ID: id, Result: result})
}

// analyzeCompare handles POST /api/v1/analyze/compare. The two transcripts
// are analyzed in independent engine runs, fork-joined here.
func (s *Server) analyzeCompare(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %v", err))
		return
	}
	if req.A == "" || req.B == "" {
		writeError(w, http.StatusBadRequest, "both transcripts are required")
		return
	}

	opts := analyze.Options{Tagline: s.tagline}
	type outcome struct {
		result *analyze.Result
		err    error
	}
	run := func(text string, ch chan<- outcome) {
		res, err := analyze.AnalyzeTranscript(r.Context(), text, opts)
		ch <- outcome{res, err}
	}
	chA := make(chan outcome, 1)
	chB := make(chan outcome, 1)
	go run(req.A, chA)
	go run(req.B, chB)
	outA, outB := <-chA, <-chB

	if outA.err != nil {
		s.writeAnalysisError(w, outA.err)
		return
	}
	if outB.err != nil {
		s.writeAnalysisError(w, outB.err)
		return
	}

	id := uuid.NewString()
	s.publishEvent(hermes.AnalysisEvent{AnalysisID: id, Mode: "compare"})
	writeJSON(w, http.StatusOK, CompareResponse{ID: id, A: outA.result, B: outB.result})
}

// writeAnalysisError maps engine errors onto HTTP statuses: too little data
// is the caller's problem, anything else is ours.
func (s *Server) writeAnalysisError(w http.ResponseWriter, err error) {
	var insufficient *analyze.InsufficientDataError
	if errors.As(err, &insufficient) {
		writeError(w, http.StatusUnprocessableEntity, insufficient.Error())
		return
	}
	s.logger.Error("analysis failed", "error", err)
	writeError(w, http.StatusInternalServerError, "analysis failed")
}

func (s *Server) publishEvent(ev hermes.AnalysisEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(hermes.SubjectAnalysisCompleted, ev); err != nil {
		s.logger.Warn("failed to publish analysis event", "error", err)
	}
}

// toMessages converts the OCR envelope into engine messages.
func toMessages(inputs []MessageInput) ([]analyze.Message, error) {
	msgs := make([]analyze.Message, 0, len(inputs))
	for i, in := range inputs {
		var side analyze.Side
		switch in.Side {
		case "self":
			side = analyze.SideSelf
		case "other":
			side = analyze.SideOther
		default:
			return nil, fmt.Errorf("message %d: unknown side %q", i, in.Side)
		}
		if in.Text == "" {
			return nil, fmt.Errorf("message %d: text must not be empty", i)
		}

		msg := analyze.NewMessage(in.Text, side, nil)
		if t, ok := transcript.ParseTimestamp(in.Timestamp); ok {
			msg.Timestamp = &t
		}
		if in.HasQuestion != nil {
			msg.HasQuestion = *in.HasQuestion
		}
		if in.WordCount != nil {
			msg.WordCount = *in.WordCount
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}

func patternTitles(patterns []analyze.Pattern) []string {
	titles := make([]string, 0, len(patterns))
	for _, p := range patterns {
		titles = append(titles, p.Title)
	}
	return titles
}
