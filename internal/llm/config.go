package llm

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskTranslate TaskType = "translate"
	TaskAdvise    TaskType = "advise"
	TaskAgent     TaskType = "agent"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the LLM subsystem.
type Config struct {
	Endpoint   string
	APIKey     string
	Model      string
	TimeoutMs  int
	MaxRetries int
	LogCalls   bool
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults for an
// OpenAI-compatible chat completions endpoint.
func DefaultConfig() Config {
	return Config{
		Endpoint:   "https://api.openai.com/v1",
		Model:      "gpt-4o-mini",
		TimeoutMs:  30000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			// Translations must be faithful, not creative.
			TaskTranslate: {Temperature: 0.0, MaxTokens: 256, TimeoutMs: 20000},
			TaskAdvise:    {Temperature: 0.2, MaxTokens: 256, TimeoutMs: 20000},
			// The agent emits structured JSON and may run tool rounds.
			TaskAgent: {Temperature: 0.4, MaxTokens: 1024, TimeoutMs: 60000},
		},
	}
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}
