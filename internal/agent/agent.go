// Package agent runs the single-call assistant: it detects the
// farmer's language, translates, reasons with optional web search, and
// returns a structured answer in the farmer's language.
package agent

import (
	"context"
	"fmt"

	"github.com/onneile/molemi/internal/domain"
	"github.com/onneile/molemi/internal/llm"
	"github.com/onneile/molemi/internal/search"
)

// Response is the structured output for one farmer message.
type Response struct {
	DetectedLanguage        domain.Language    `json:"detected_language"`
	SourceText              string             `json:"source_text"`
	EnglishTranslation      string             `json:"english_translation"`
	Intent                  string             `json:"intent"`
	AnswerEnglish           string             `json:"answer_english"`
	FinalAnswerUserLanguage string             `json:"final_answer_user_language"`
	SafetyFlags             domain.SafetyFlags `json:"safety_flags"`
	ReasoningSummary        string             `json:"reasoning_summary"`
}

// searchCall is the JSON shape the model emits to request a web search.
type searchCall struct {
	Action string `json:"action"`
	Query  string `json:"query"`
}

const maxToolRounds = 3

// Agent answers farmer messages end to end in one structured model
// call, with up to maxToolRounds web searches in between.
type Agent struct {
	client llm.Client
	search search.Client // nil disables the search tool
}

// NewAgent creates an Agent. Pass a nil search client to run without
// web search.
func NewAgent(client llm.Client, searchClient search.Client) *Agent {
	return &Agent{client: client, search: searchClient}
}

// Run processes one farmer message and returns the structured answer.
func (a *Agent) Run(ctx context.Context, userText string) (*Response, error) {
	history := []llm.ChatMessage{{Role: llm.RoleUser, Content: userText}}
	prompt := a.systemPrompt()

	for round := 0; round < maxToolRounds; round++ {
		resp, err := a.client.Generate(ctx, llm.GenerateRequest{
			Task:         llm.TaskAgent,
			SystemPrompt: prompt,
			Messages:     history,
		})
		if err != nil {
			return nil, fmt.Errorf("agent round %d: %w", round+1, err)
		}

		if call, ok := a.parseSearchCall(resp.Text); ok {
			history = append(history, llm.ChatMessage{Role: llm.RoleAssistant, Content: resp.Text})
			history = append(history, llm.ChatMessage{Role: llm.RoleUser, Content: a.runSearch(ctx, call.Query)})
			continue
		}

		return parseResponse(resp.Text)
	}

	// Out of tool rounds: force a final answer without more searches.
	history = append(history, llm.ChatMessage{
		Role: llm.RoleUser,
		Content: "You have already used the search tool several times. " +
			"Now stop requesting searches and respond with your FINAL JSON object only.",
	})
	resp, err := a.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskAgent,
		SystemPrompt: prompt,
		Messages:     history,
	})
	if err != nil {
		return nil, fmt.Errorf("agent final round: %w", err)
	}
	return parseResponse(resp.Text)
}

// parseSearchCall reports whether the model output is a search request.
func (a *Agent) parseSearchCall(text string) (searchCall, bool) {
	if a.search == nil {
		return searchCall{}, false
	}
	call, err := llm.ExtractJSON[searchCall](text, nil)
	if err != nil || call.Action != "search" || call.Query == "" {
		return searchCall{}, false
	}
	return call, true
}

// runSearch executes the query and renders results for the model. A
// failed search becomes a plain-text note so the agent can still
// answer from its own knowledge.
func (a *Agent) runSearch(ctx context.Context, query string) string {
	results, err := a.search.Search(ctx, query)
	if err != nil {
		return fmt.Sprintf("The search for %q failed (%v). Answer from your own knowledge, "+
			"and if you are not sure, say so and recommend a local extension officer.", query, err)
	}
	return results.FormatForPrompt()
}

func parseResponse(text string) (*Response, error) {
	validator := llm.ValidatorFunc[Response](func(r Response) error {
		if !domain.ValidLanguages[r.DetectedLanguage] {
			return fmt.Errorf("invalid detected_language %q", r.DetectedLanguage)
		}
		if r.FinalAnswerUserLanguage == "" {
			return fmt.Errorf("empty final_answer_user_language")
		}
		return nil
	})

	resp, err := llm.ExtractJSON[Response](text, validator)
	if err != nil {
		return nil, fmt.Errorf("parsing agent output: %w", err)
	}
	return &resp, nil
}

func (a *Agent) systemPrompt() string {
	prompt := basePrompt
	if a.search != nil {
		prompt += searchToolPrompt
	}
	prompt += outputPrompt
	return prompt
}
