package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/onneile/molemi/internal/domain"
	"github.com/onneile/molemi/internal/pipeline"
	"github.com/onneile/molemi/internal/sms"
)

const (
	defaultTurnsLimit = 50
	maxTurnsLimit     = 200
)

// MessageHandler processes one inbound farmer message.
type MessageHandler interface {
	Handle(ctx context.Context, phone, text string) (*pipeline.Result, error)
}

type dbPinger interface {
	PingContext(ctx context.Context) error
}

// llmChecker reports whether the model endpoint is reachable.
type llmChecker interface {
	Available(ctx context.Context) bool
}

// handleSMSInbound is the Twilio webhook: form-encoded From/Body in,
// TwiML out.
func (s *Server) handleSMSInbound(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form payload")
		return
	}
	from := r.PostForm.Get("From")
	body := r.PostForm.Get("Body")
	if from == "" || body == "" {
		writeError(w, http.StatusBadRequest, "missing 'From' or 'Body' in webhook payload")
		return
	}

	result, err := s.handler.Handle(r.Context(), from, body)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to process message")
		return
	}

	twiml, err := sms.RenderTwiML(result.Reply)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to render reply")
		return
	}
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(twiml))
}

// inboundRequest is the JSON body accepted by the local test endpoint.
type inboundRequest struct {
	Phone string `json:"phone"`
	Text  string `json:"text"`
}

type inboundResponse struct {
	Status string `json:"status"`
	TurnID string `json:"turn_id"`
	Reply  string `json:"reply"`
}

// handleTestInbound mirrors the webhook for local testing with JSON
// instead of Twilio form encoding.
func (s *Server) handleTestInbound(w http.ResponseWriter, r *http.Request) {
	var req inboundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Phone == "" || req.Text == "" {
		writeError(w, http.StatusBadRequest, "phone and text are required")
		return
	}

	result, err := s.handler.Handle(r.Context(), req.Phone, req.Text)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to process message")
		return
	}

	writeJSON(w, http.StatusOK, inboundResponse{
		Status: "ok",
		TurnID: result.Turn.ID,
		Reply:  result.Reply,
	})
}

// turnView is the admin JSON shape for one turn.
type turnView struct {
	ID               string             `json:"id"`
	Phone            string             `json:"phone"`
	CreatedAt        time.Time          `json:"created_at"`
	LangDetected     string             `json:"lang_detected"`
	QuestionRaw      string             `json:"question_raw"`
	QuestionEN       string             `json:"question_en"`
	AnswerEN         string             `json:"answer_en"`
	AnswerFinal      string             `json:"answer_final"`
	Intent           string             `json:"intent"`
	LLMModel         string             `json:"llm_model"`
	Backend          string             `json:"translation_backend"`
	ReasoningSummary string             `json:"reasoning_summary"`
	SafetyFlags      domain.SafetyFlags `json:"safety_flags"`
}

// handleAdminTurns lists recent turns, newest first. The limit query
// parameter is clamped to [1, 200].
func (s *Server) handleAdminTurns(w http.ResponseWriter, r *http.Request) {
	limit := defaultTurnsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = parsed
	}
	limit = max(1, min(limit, maxTurnsLimit))

	turns, err := s.turns.ListRecent(r.Context(), limit)
	if err != nil {
		s.log.Error("admin.turns", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "failed to list turns")
		return
	}

	views := make([]turnView, 0, len(turns))
	for _, t := range turns {
		views = append(views, newTurnView(t))
	}
	writeJSON(w, http.StatusOK, views)
}

func newTurnView(t *domain.Turn) turnView {
	return turnView{
		ID:               t.ID,
		Phone:            t.Phone,
		CreatedAt:        t.CreatedAt,
		LangDetected:     string(t.LangDetected),
		QuestionRaw:      t.QuestionRaw,
		QuestionEN:       t.QuestionEN,
		AnswerEN:         t.AnswerEN,
		AnswerFinal:      t.AnswerFinal,
		Intent:           t.Intent,
		LLMModel:         t.LLMModel,
		Backend:          t.TranslationBackend,
		ReasoningSummary: t.ReasoningSummary,
		SafetyFlags:      t.SafetyFlags,
	}
}

type healthResponse struct {
	Status    string    `json:"status"`
	LLM       string    `json:"llm,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// handleHealthz pings the database: 200 if reachable, 503 if not. Model
// endpoint reachability is reported alongside but does not fail the
// check; the pipeline surfaces model errors per request.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	resp := healthResponse{Status: "ok", Timestamp: time.Now()}
	if s.llm != nil {
		resp.LLM = "unreachable"
		if s.llm.Available(ctx) {
			resp.LLM = "ok"
		}
	}

	if err := s.db.PingContext(ctx); err != nil {
		resp.Status = "down"
		writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
