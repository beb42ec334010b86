package domain

import "time"

// SafetyFlags records the agent's self-assessment of a reply.
type SafetyFlags struct {
	MentionsDosage   bool `json:"mentions_dosage"`
	NeedsHumanReview bool `json:"needs_human_review"`
}

// Turn is one complete question/answer exchange with a farmer, linking the
// inbound and outbound messages to everything the pipeline derived in
// between. It is the unit of record for manual review and export.
type Turn struct {
	ID                 string
	Phone              string
	IncomingID         string
	OutgoingID         string
	LangDetected       Language
	QuestionRaw        string
	QuestionEN         string
	AnswerEN           string
	AnswerFinal        string
	Intent             string
	LLMModel           string
	TranslationBackend string
	ReasoningSummary   string
	SafetyFlags        SafetyFlags
	CreatedAt          time.Time
}
