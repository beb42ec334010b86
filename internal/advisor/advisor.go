// Package advisor answers English farming questions with short,
// safety-constrained advice.
package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/onneile/molemi/internal/llm"
)

const systemPrompt = "You are an agricultural assistant helping smallholder farmers near " +
	"Johannesburg, South Africa. Farmers send you brief questions by SMS " +
	"about crops and livestock. Reply in simple English with short, clear, " +
	"practical advice: ideally 2-4 short sentences at most. Focus on low-cost, " +
	"low-risk actions the farmer can take. If you are not sure, or the problem " +
	"sounds serious or life-threatening for people or animals, say that you are " +
	"not sure and recommend talking to a local agricultural extension officer " +
	"or an experienced farmer. Do NOT give exact chemical or medicine dosages, " +
	"spray recipes, or injection instructions. Do NOT pretend to be completely " +
	"certain when you are not."

// Advisor produces English answers to English farming questions.
type Advisor struct {
	client llm.Client
}

// NewAdvisor creates an Advisor backed by the given model client.
func NewAdvisor(client llm.Client) *Advisor {
	return &Advisor{client: client}
}

// Advise answers an English question with a short English answer.
func (a *Advisor) Advise(ctx context.Context, questionEN string) (string, error) {
	resp, err := a.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskAdvise,
		SystemPrompt: systemPrompt,
		Messages:     []llm.ChatMessage{{Role: llm.RoleUser, Content: questionEN}},
	})
	if err != nil {
		return "", fmt.Errorf("generating advice: %w", err)
	}
	return strings.TrimSpace(resp.Text), nil
}
