// Package app wires configuration, storage, model clients and the
// pipeline into a runnable application.
package app

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"

	"github.com/onneile/molemi/internal/advisor"
	"github.com/onneile/molemi/internal/agent"
	"github.com/onneile/molemi/internal/config"
	"github.com/onneile/molemi/internal/db"
	"github.com/onneile/molemi/internal/glossary"
	"github.com/onneile/molemi/internal/llm"
	"github.com/onneile/molemi/internal/pipeline"
	"github.com/onneile/molemi/internal/repository"
	"github.com/onneile/molemi/internal/search"
	"github.com/onneile/molemi/internal/server"
	"github.com/onneile/molemi/internal/sms"
	"github.com/onneile/molemi/internal/translate"
)

// App holds the wired application components.
type App struct {
	Config   *config.Config
	Log      *slog.Logger
	DB       *sql.DB
	Glossary *glossary.Glossary
	Messages repository.MessageRepo
	Turns    repository.TurnRepo
	Pipeline *pipeline.Pipeline
	Server   *server.Server
	SMS      sms.Sender
}

// New builds the application from configuration. The caller owns
// Close.
func New(cfg *config.Config) (*App, error) {
	log := NewLogger(cfg.Log)

	database, err := db.OpenDB(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	messages := repository.NewSQLiteMessageRepo(database)
	turns := repository.NewSQLiteTurnRepo(database)

	gl := newGlossary(cfg.Glossary)
	llmClient := newLLMClient(cfg.LLM, log)

	var searchClient search.Client
	if cfg.Search.Enabled && cfg.Search.APIKey != "" {
		searchCfg := search.DefaultConfig()
		searchCfg.APIKey = cfg.Search.APIKey
		searchCfg.MaxResults = cfg.Search.MaxResults
		searchClient = search.NewTavilyClient(searchCfg)
	}

	pipeCfg := pipeline.Config{
		Messages:   messages,
		Turns:      turns,
		Translator: translate.NewTranslator(llmClient, gl),
		Advisor:    advisor.NewAdvisor(llmClient),
		Model:      cfg.LLM.Model,
		Log:        log,
	}
	if cfg.LLM.AgentMode {
		pipeCfg.Agent = agent.NewAgent(llmClient, searchClient)
	}
	pipe := pipeline.New(pipeCfg)

	srvCfg := server.Config{
		Addr:            net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}
	srv := server.New(srvCfg, pipe, turns, database, llmClient, log)

	var sender sms.Sender
	twilioCfg := sms.DefaultTwilioConfig()
	twilioCfg.AccountSID = cfg.Twilio.AccountSID
	twilioCfg.AuthToken = cfg.Twilio.AuthToken
	twilioCfg.FromNumber = cfg.Twilio.FromNumber
	switch s, err := sms.NewTwilioSender(twilioCfg); {
	case err == nil:
		sender = s
	case errors.Is(err, sms.ErrNotConfigured):
		log.Info("app.sms_disabled", slog.String("reason", "missing twilio credentials"))
	default:
		return nil, fmt.Errorf("building sms sender: %w", err)
	}

	return &App{
		Config:   cfg,
		Log:      log,
		DB:       database,
		Glossary: gl,
		Messages: messages,
		Turns:    turns,
		Pipeline: pipe,
		Server:   srv,
		SMS:      sender,
	}, nil
}

// Close releases held resources.
func (a *App) Close() error {
	return a.DB.Close()
}

func newGlossary(cfg config.GlossaryConfig) *glossary.Glossary {
	opts := []glossary.Option{
		glossary.WithThreshold(cfg.FuzzyThreshold),
		glossary.WithMaxTerms(cfg.MaxTerms),
	}
	if cfg.ExactOnly {
		opts = append(opts, glossary.WithScorer(glossary.ExactScorer{}))
	}
	return glossary.New(cfg.CSVPath, opts...)
}

func newLLMClient(cfg config.LLMConfig, log *slog.Logger) llm.Client {
	llmCfg := llm.DefaultConfig()
	llmCfg.Endpoint = cfg.Endpoint
	llmCfg.APIKey = cfg.APIKey
	llmCfg.Model = cfg.Model
	llmCfg.TimeoutMs = cfg.TimeoutMs
	llmCfg.MaxRetries = cfg.MaxRetries

	var observer llm.Observer = llm.NoopObserver{}
	if cfg.LogCalls {
		observer = llm.NewSlogObserver(log)
	}
	return llm.NewChatClient(llmCfg, observer)
}
