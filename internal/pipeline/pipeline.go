// Package pipeline orchestrates one farmer exchange: it stores the
// inbound message, produces an answer in the farmer's language, and
// records the outbound message and the full turn.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/onneile/molemi/internal/agent"
	"github.com/onneile/molemi/internal/domain"
	"github.com/onneile/molemi/internal/repository"
)

// AgentRunner answers a farmer message end to end.
type AgentRunner interface {
	Run(ctx context.Context, userText string) (*agent.Response, error)
}

// Translator converts text between English and Setswana.
type Translator interface {
	Translate(ctx context.Context, text string, source, target domain.Language) (string, error)
}

// Advisor answers English questions with English advice.
type Advisor interface {
	Advise(ctx context.Context, questionEN string) (string, error)
}

// Result is what the transport layer sends back to the farmer.
type Result struct {
	Reply string
	Turn  *domain.Turn
}

// Pipeline handles inbound farmer messages. When an agent is
// configured it answers in a single structured call; otherwise it
// falls back to the staged translate/advise/translate path, which
// assumes Setswana input.
type Pipeline struct {
	messages   repository.MessageRepo
	turns      repository.TurnRepo
	agent      AgentRunner
	translator Translator
	advisor    Advisor
	model      string
	log        *slog.Logger
}

// Config wires a Pipeline. Messages, Turns and Log are required; at
// least one of Agent or Translator+Advisor must be set.
type Config struct {
	Messages   repository.MessageRepo
	Turns      repository.TurnRepo
	Agent      AgentRunner
	Translator Translator
	Advisor    Advisor
	Model      string
	Log        *slog.Logger
}

func New(cfg Config) *Pipeline {
	return &Pipeline{
		messages:   cfg.Messages,
		turns:      cfg.Turns,
		agent:      cfg.Agent,
		translator: cfg.Translator,
		advisor:    cfg.Advisor,
		model:      cfg.Model,
		log:        cfg.Log,
	}
}

// Handle processes one inbound message and returns the reply. The
// inbound message is stored before any model call so it survives
// downstream failures.
func (p *Pipeline) Handle(ctx context.Context, phone, text string) (*Result, error) {
	incoming := &domain.Message{
		ID:        uuid.NewString(),
		Phone:     phone,
		Direction: domain.DirectionIn,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	if err := p.messages.Create(ctx, incoming); err != nil {
		return nil, fmt.Errorf("storing inbound message: %w", err)
	}

	turn, err := p.answer(ctx, text)
	if err != nil {
		p.log.Error("pipeline.answer", slog.String("phone", phone), slog.String("error", err.Error()))
		return nil, err
	}

	outgoing := &domain.Message{
		ID:        uuid.NewString(),
		Phone:     phone,
		Direction: domain.DirectionOut,
		Text:      turn.AnswerFinal,
		CreatedAt: time.Now().UTC(),
	}
	if err := p.messages.Create(ctx, outgoing); err != nil {
		return nil, fmt.Errorf("storing outbound message: %w", err)
	}

	turn.ID = uuid.NewString()
	turn.Phone = phone
	turn.IncomingID = incoming.ID
	turn.OutgoingID = outgoing.ID
	turn.QuestionRaw = text
	turn.CreatedAt = time.Now().UTC()
	if err := p.turns.Create(ctx, turn); err != nil {
		return nil, fmt.Errorf("storing turn: %w", err)
	}

	p.log.Info("pipeline.turn",
		slog.String("turn_id", turn.ID),
		slog.String("phone", phone),
		slog.String("lang", string(turn.LangDetected)),
		slog.String("intent", turn.Intent),
		slog.Bool("needs_human_review", turn.SafetyFlags.NeedsHumanReview),
	)

	return &Result{Reply: turn.AnswerFinal, Turn: turn}, nil
}

func (p *Pipeline) answer(ctx context.Context, text string) (*domain.Turn, error) {
	if p.agent != nil {
		turn, err := p.answerWithAgent(ctx, text)
		if err == nil {
			return turn, nil
		}
		if p.translator == nil || p.advisor == nil {
			return nil, err
		}
		p.log.Warn("pipeline.agent_fallback", slog.String("error", err.Error()))
	}
	if p.translator == nil || p.advisor == nil {
		return nil, fmt.Errorf("pipeline has no answering backend configured")
	}
	return p.answerStaged(ctx, text)
}

func (p *Pipeline) answerWithAgent(ctx context.Context, text string) (*domain.Turn, error) {
	resp, err := p.agent.Run(ctx, text)
	if err != nil {
		return nil, err
	}
	return &domain.Turn{
		LangDetected:       resp.DetectedLanguage,
		QuestionEN:         resp.EnglishTranslation,
		AnswerEN:           resp.AnswerEnglish,
		AnswerFinal:        resp.FinalAnswerUserLanguage,
		Intent:             resp.Intent,
		LLMModel:           p.model,
		TranslationBackend: "agent",
		ReasoningSummary:   resp.ReasoningSummary,
		SafetyFlags:        resp.SafetyFlags,
	}, nil
}

// answerStaged runs the three-step path: translate the question to
// English, get English advice, translate the advice back. Input is
// assumed to be Setswana.
func (p *Pipeline) answerStaged(ctx context.Context, text string) (*domain.Turn, error) {
	questionEN, err := p.translator.Translate(ctx, text, domain.LangSetswana, domain.LangEnglish)
	if err != nil {
		return nil, fmt.Errorf("translating question: %w", err)
	}

	answerEN, err := p.advisor.Advise(ctx, questionEN)
	if err != nil {
		return nil, fmt.Errorf("advising: %w", err)
	}

	answerFinal, err := p.translator.Translate(ctx, answerEN, domain.LangEnglish, domain.LangSetswana)
	if err != nil {
		return nil, fmt.Errorf("translating answer: %w", err)
	}

	return &domain.Turn{
		LangDetected:       domain.LangSetswana,
		QuestionEN:         questionEN,
		AnswerEN:           answerEN,
		AnswerFinal:        answerFinal,
		LLMModel:           p.model,
		TranslationBackend: "staged",
	}, nil
}
