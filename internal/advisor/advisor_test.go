package advisor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onneile/molemi/internal/llm"
)

type fakeClient struct {
	lastReq llm.GenerateRequest
	reply   string
	err     error
}

func (f *fakeClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &llm.GenerateResponse{Text: f.reply, Model: "fake"}, nil
}

func (f *fakeClient) Available(context.Context) bool { return true }

func TestAdvise_ReturnsTrimmedAnswer(t *testing.T) {
	client := &fakeClient{reply: "  Rotate your crops and check soil drainage.  "}
	adv := NewAdvisor(client)

	out, err := adv.Advise(context.Background(), "Why are my maize leaves yellow?")

	require.NoError(t, err)
	assert.Equal(t, "Rotate your crops and check soil drainage.", out)
	assert.Equal(t, llm.TaskAdvise, client.lastReq.Task)
	require.Len(t, client.lastReq.Messages, 1)
	assert.Equal(t, "Why are my maize leaves yellow?", client.lastReq.Messages[0].Content)
}

func TestAdvise_PromptCarriesSafetyRules(t *testing.T) {
	client := &fakeClient{reply: "ok"}
	adv := NewAdvisor(client)

	_, err := adv.Advise(context.Background(), "test")

	require.NoError(t, err)
	prompt := client.lastReq.SystemPrompt
	assert.Contains(t, prompt, "Do NOT give exact chemical or medicine dosages")
	assert.Contains(t, prompt, "extension officer")
}

func TestAdvise_ErrorPropagates(t *testing.T) {
	client := &fakeClient{err: llm.ErrTimeout}
	adv := NewAdvisor(client)

	_, err := adv.Advise(context.Background(), "test")

	assert.ErrorIs(t, err, llm.ErrTimeout)
}
