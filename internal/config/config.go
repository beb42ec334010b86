// Package config loads application configuration from a YAML file and
// environment variables.
package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Glossary GlossaryConfig `yaml:"glossary"`
	LLM      LLMConfig      `yaml:"llm"`
	Search   SearchConfig   `yaml:"search"`
	Twilio   TwilioConfig   `yaml:"twilio"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds SQLite settings.
type DatabaseConfig struct {
	Path string `yaml:"path" env:"DATABASE_PATH" env-default:"molemi.db"`
}

// GlossaryConfig holds glossary matching settings.
type GlossaryConfig struct {
	CSVPath        string  `yaml:"csv_path"        env:"GLOSSARY_CSV_PATH"        env-default:"glossary.csv"`
	FuzzyThreshold float64 `yaml:"fuzzy_threshold" env:"GLOSSARY_FUZZY_THRESHOLD" env-default:"80"`
	MaxTerms       int     `yaml:"max_terms"       env:"GLOSSARY_MAX_TERMS"       env-default:"30"`
	ExactOnly      bool    `yaml:"exact_only"      env:"GLOSSARY_EXACT_ONLY"      env-default:"false"`
}

// LLMConfig holds language model settings.
type LLMConfig struct {
	Endpoint   string `yaml:"endpoint"    env:"LLM_ENDPOINT"    env-default:"https://api.openai.com/v1"`
	APIKey     string `yaml:"api_key"     env:"OPENAI_API_KEY"`
	Model      string `yaml:"model"       env:"LLM_MODEL"       env-default:"gpt-4o-mini"`
	TimeoutMs  int    `yaml:"timeout_ms"  env:"LLM_TIMEOUT_MS"  env-default:"30000"`
	MaxRetries int    `yaml:"max_retries" env:"LLM_MAX_RETRIES" env-default:"1"`
	LogCalls   bool   `yaml:"log_calls"   env:"LLM_LOG_CALLS"   env-default:"true"`
	AgentMode  bool   `yaml:"agent_mode"  env:"LLM_AGENT_MODE"  env-default:"true"`
}

// SearchConfig holds web search settings.
type SearchConfig struct {
	Enabled    bool   `yaml:"enabled"     env:"SEARCH_ENABLED"    env-default:"true"`
	APIKey     string `yaml:"api_key"     env:"TAVILY_API_KEY"`
	MaxResults int    `yaml:"max_results" env:"SEARCH_MAX_RESULTS" env-default:"5"`
}

// TwilioConfig holds SMS provider credentials. All fields optional:
// without them the webhook still answers via TwiML, but outbound
// sending is disabled.
type TwilioConfig struct {
	AccountSID string `yaml:"account_sid" env:"TWILIO_ACCOUNT_SID"`
	AuthToken  string `yaml:"auth_token"  env:"TWILIO_AUTH_TOKEN"`
	FromNumber string `yaml:"from_number" env:"TWILIO_FROM_NUMBER"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
