package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/onneile/molemi/internal/domain"
)

// NewMessage builds an inbound test message.
func NewMessage(phone, text string) *domain.Message {
	return &domain.Message{
		ID:        uuid.New().String(),
		Phone:     phone,
		Direction: domain.DirectionIn,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
}

// TurnOption mutates a test turn.
type TurnOption func(*domain.Turn)

func WithLang(l domain.Language) TurnOption {
	return func(t *domain.Turn) { t.LangDetected = l }
}

func WithAnswer(en, final string) TurnOption {
	return func(t *domain.Turn) {
		t.AnswerEN = en
		t.AnswerFinal = final
	}
}

func WithCreatedAt(at time.Time) TurnOption {
	return func(t *domain.Turn) { t.CreatedAt = at }
}

// NewTurn builds a complete test turn for the given phone.
func NewTurn(phone string, opts ...TurnOption) *domain.Turn {
	turn := &domain.Turn{
		ID:                 uuid.New().String(),
		Phone:              phone,
		LangDetected:       domain.LangSetswana,
		QuestionRaw:        "mpa ya kgomo e botlhoko",
		QuestionEN:         "the cow's stomach is sore",
		AnswerEN:           "Keep the cow hydrated and call an extension officer.",
		AnswerFinal:        "Nosetsa kgomo metsi mme o bitse moeletsi wa temothuo.",
		Intent:             "livestock_health",
		LLMModel:           "test-model",
		TranslationBackend: "test-backend",
		CreatedAt:          time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(turn)
	}
	return turn
}
