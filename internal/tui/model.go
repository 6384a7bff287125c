package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ResumePort is the TUI-facing subset of the resume service.
type ResumePort interface {
	AnswerQuestion(ctx context.Context, question string, topK int) string
	Summary(ctx context.Context) string
	ListSections() []string
}

// SampleQuestions are offered in the chat for quick access.
var SampleQuestions = []string{
	"What programming languages do you know?",
	"Tell me about your work experience at Optum",
	"What is your educational background?",
	"What are your key achievements?",
	"What projects have you worked on?",
	"What tools and technologies are you familiar with?",
	"What certifications do you have?",
	"Tell me about your experience with Machine Learning",
}

type message struct {
	fromUser bool
	text     string
}

type answerMsg struct {
	question string
	reply    string
}

type summaryMsg struct {
	text string
}

// Model is the Bubble Tea model for the resume chat.
type Model struct {
	service    ResumePort
	input      textinput.Model
	viewport   viewport.Model
	transcript []message
	sections   []string
	status     string
	thinking   bool
	sampleIdx  int
	ready      bool
}

// New creates a chat model over a loaded resume service.
func New(service ResumePort) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask a question about the resume (tab cycles samples)"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{
		service:  service,
		input:    ti,
		viewport: vp,
		sections: service.ListSections(),
		status:   "Loaded. Enter asks, ctrl+s summarizes, ctrl+c quits.",
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key, window, and completion events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, th := transcriptStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 3 + qh + 1 // header + sections + status + input frame + spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-th)
		m.viewport.SetContent(m.renderTranscript())
		return m, nil

	case answerMsg:
		m.thinking = false
		m.transcript = append(m.transcript, message{text: msg.reply})
		m.status = fmt.Sprintf("Answered %q", msg.question)
		m.viewport.SetContent(m.renderTranscript())
		m.viewport.GotoBottom()
		return m, nil

	case summaryMsg:
		m.thinking = false
		m.transcript = append(m.transcript, message{text: msg.text})
		m.status = "Summary generated"
		m.viewport.SetContent(m.renderTranscript())
		m.viewport.GotoBottom()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			q := strings.TrimSpace(m.input.Value())
			if q == "" || m.thinking {
				return m, nil
			}
			m.transcript = append(m.transcript, message{fromUser: true, text: q})
			m.input.SetValue("")
			m.thinking = true
			m.status = "Thinking..."
			m.viewport.SetContent(m.renderTranscript())
			m.viewport.GotoBottom()
			return m, m.ask(q)
		case "ctrl+s":
			if m.thinking {
				return m, nil
			}
			m.transcript = append(m.transcript, message{fromUser: true, text: "Summarize this resume."})
			m.thinking = true
			m.status = "Summarizing..."
			m.viewport.SetContent(m.renderTranscript())
			m.viewport.GotoBottom()
			return m, m.summarize()
		case "tab":
			m.input.SetValue(SampleQuestions[m.sampleIdx])
			m.input.CursorEnd()
			m.sampleIdx = (m.sampleIdx + 1) % len(SampleQuestions)
			return m, nil
		case "up":
			m.viewport.LineUp(1)
			return m, nil
		case "down":
			m.viewport.LineDown(1)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the chat layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := headerStyle.Render("Resume Chat")
	sections := sectionsStyle.Render("Sections: " + strings.Join(m.sections, " • "))
	transcript := transcriptStyle.Render(m.viewport.View())
	input := queryBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + sections + "\n" + transcript + "\n" + input + "\n" + status
}

// ask runs the question through the service off the event loop. Answers
// never fail: service errors arrive as apology text in the reply.
func (m Model) ask(question string) tea.Cmd {
	svc := m.service
	return func() tea.Msg {
		return answerMsg{question: question, reply: svc.AnswerQuestion(context.Background(), question, 0)}
	}
}

func (m Model) summarize() tea.Cmd {
	svc := m.service
	return func() tea.Msg {
		return summaryMsg{text: svc.Summary(context.Background())}
	}
}

func (m Model) renderTranscript() string {
	if len(m.transcript) == 0 {
		return "Ask anything about the resume."
	}
	var sb strings.Builder
	for i, msg := range m.transcript {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		if msg.fromUser {
			sb.WriteString(userStyle.Render("You: ") + msg.text)
		} else {
			sb.WriteString(botStyle.Render("Resume: ") + msg.text)
		}
	}
	if m.thinking {
		sb.WriteString("\n\n" + botStyle.Render("Resume: ") + "...")
	}
	return sb.String()
}

var (
	headerStyle     = lipgloss.NewStyle().Bold(true)
	sectionsStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	transcriptStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	userStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	botStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
