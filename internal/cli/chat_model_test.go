package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onneile/molemi/internal/pipeline"
	"github.com/onneile/molemi/internal/teatest"
)

type recordingPipeline struct {
	phones []string
	texts  []string
	reply  string
	err    error
}

func (r *recordingPipeline) Handle(_ context.Context, phone, text string) (*pipeline.Result, error) {
	r.phones = append(r.phones, phone)
	r.texts = append(r.texts, text)
	if r.err != nil {
		return nil, r.err
	}
	return &pipeline.Result{Reply: r.reply}, nil
}

func newChatDriver(t *testing.T, p MessageHandler) *teatest.Driver {
	t.Helper()
	app := &App{
		Pipeline: p,
		Log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	d := teatest.New(t, newChatModel(app))
	d.DrainInit()
	return d
}

func TestChatModel_SendsMessageThroughPipeline(t *testing.T) {
	p := &recordingPipeline{reply: "Tlhatlhoba matlhare."}
	d := newChatDriver(t, p)

	d.Type("dinawa di a swa")
	d.PressEnter()

	require.Equal(t, []string{"dinawa di a swa"}, p.texts)
	assert.Equal(t, []string{chatPhone}, p.phones)
	assert.Contains(t, d.Output(), "you> dinawa di a swa")
	assert.Contains(t, d.Output(), "bot> Tlhatlhoba matlhare.")
}

func TestChatModel_ShowsWelcome(t *testing.T) {
	d := newChatDriver(t, &recordingPipeline{reply: "x"})
	assert.Contains(t, d.Output(), "/quit")
}

func TestChatModel_EmptyInputIgnored(t *testing.T) {
	p := &recordingPipeline{reply: "x"}
	d := newChatDriver(t, p)

	d.PressEnter()

	assert.Empty(t, p.texts)
}

func TestChatModel_QuitCommand(t *testing.T) {
	p := &recordingPipeline{reply: "x"}
	d := newChatDriver(t, p)

	d.Type("/quit")
	d.PressEnter()

	assert.True(t, d.Quitting)
	assert.Empty(t, p.texts)
}

func TestChatModel_CtrlCQuits(t *testing.T) {
	d := newChatDriver(t, &recordingPipeline{reply: "x"})

	d.PressCtrlC()

	assert.True(t, d.Quitting)
	assert.Contains(t, d.View(), "Sala sentle.")
}

func TestChatModel_PipelineErrorShown(t *testing.T) {
	p := &recordingPipeline{err: errors.New("backend down")}
	d := newChatDriver(t, p)

	d.Type("potso")
	d.PressEnter()

	assert.Contains(t, d.Output(), "backend down")
}
