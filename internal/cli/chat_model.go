package cli

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/onneile/molemi/internal/cli/formatter"
)

// chatPhone is the pseudo phone number used for CLI conversations so
// they are stored and reviewable like real farmer traffic.
const chatPhone = "+999000000-cli"

const chatTimeout = 2 * time.Minute

// chatModel is the bubbletea Model for the interactive chat REPL.
type chatModel struct {
	input    textinput.Model
	app      *App
	waiting  bool
	quitting bool
}

// replyMsg carries the pipeline result back into the update loop.
type replyMsg struct {
	reply string
	err   error
}

func newChatModel(app *App) chatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500

	return chatModel{input: ti, app: app}
}

func (m chatModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.Println(formatter.FormatChatWelcome()),
	)
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if m.waiting {
			return m, nil
		}
		if msg.Type == tea.KeyEnter {
			return m.submit()
		}

	case replyMsg:
		m.waiting = false
		if msg.err != nil {
			return m, tea.Println(formatter.FormatChatError(msg.err))
		}
		return m, tea.Println(formatter.FormatChatReply(msg.reply))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	m.input.Reset()

	if text == "" {
		return m, nil
	}
	switch strings.ToLower(text) {
	case "/q", "/quit", "/exit":
		m.quitting = true
		return m, tea.Quit
	}

	m.waiting = true
	echo := tea.Println(formatter.FormatChatQuestion(text))
	ask := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), chatTimeout)
		defer cancel()

		result, err := m.app.Pipeline.Handle(ctx, chatPhone, text)
		if err != nil {
			return replyMsg{err: err}
		}
		return replyMsg{reply: result.Reply}
	}
	return m, tea.Batch(echo, ask)
}

func (m chatModel) View() string {
	if m.quitting {
		return formatter.Dim("Sala sentle.") + "\n"
	}
	if m.waiting {
		return formatter.Dim("thinking...")
	}
	return formatter.ChatPrompt() + m.input.View()
}
