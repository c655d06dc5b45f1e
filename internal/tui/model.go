// Package tui is the full-screen terminal front end for the chat widget.
//
// The bubbletea event loop plays the part of the single UI thread: the
// widget is only ever touched from Update, and the network call runs as a
// tea.Cmd whose result comes back to Update as a replyMsg.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"chat-widget/internal/chat"
)

const (
	sendLabel = "Send"
	// title, status and input rows plus the help line
	chromeHeight = 5
)

// replyMsg carries the outcome of a request back to the event loop.
type replyMsg struct {
	reply chat.Reply
}

// Model is the bubbletea model. It is used through a pointer so the
// widget's UI elements can write into it.
type Model struct {
	ctx    context.Context
	widget *chat.Widget
	styles Styles

	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model

	messages     []chat.Message
	loading      bool
	sendDisabled bool

	ready  bool
	width  int
	height int
}

// New creates the model and binds a widget to it. ctx bounds every
// request the widget makes.
func New(ctx context.Context, client chat.ChatClient, logger *zap.Logger) (*Model, error) {
	ti := textinput.New()
	ti.Placeholder = "Type a message and press Enter..."
	ti.Prompt = "> "
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		ctx:     ctx,
		styles:  DefaultStyles(),
		input:   ti,
		spinner: sp,
	}
	m.spinner.Style = m.styles.Loading

	w, err := chat.NewWidget(chat.Elements{
		Panel:   panelElement{m},
		Input:   inputElement{m},
		Send:    sendElement{m},
		Loading: loadingElement{m},
	}, client, logger)
	if err != nil {
		return nil, fmt.Errorf("could not create widget: %w", err)
	}
	m.widget = w
	return m, nil
}

// Widget exposes the underlying widget.
func (m *Model) Widget() *chat.Widget {
	return m.widget
}

// Run starts the program full screen and blocks until the user quits.
func Run(ctx context.Context, client chat.ChatClient, logger *zap.Logger, opts ...tea.ProgramOption) error {
	m, err := New(ctx, client, logger)
	if err != nil {
		return err
	}
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("chat ui failed: %w", err)
	}
	return nil
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m, m.submit()
		case tea.KeyPgUp, tea.KeyPgDown, tea.KeyUp, tea.KeyDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case replyMsg:
		m.widget.Complete(msg.reply)
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit is the Enter handler. Enter only counts while the input has focus.
func (m *Model) submit() tea.Cmd {
	if !m.input.Focused() {
		return nil
	}
	p := m.widget.StartSend()
	if p == nil {
		return nil
	}
	ctx := m.ctx
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg { return replyMsg{reply: p.Do(ctx)} },
	)
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	vpHeight := height - chromeHeight
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.viewport = viewport.New(width, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = vpHeight
	}

	inputWidth := width - lipgloss.Width(m.renderSend()) - len(m.input.Prompt) - 2
	if inputWidth < 1 {
		inputWidth = 1
	}
	m.input.Width = inputWidth

	m.refresh()
	m.viewport.GotoBottom()
}

func (m *Model) refresh() {
	m.viewport.SetContent(m.renderHistory())
}

func (m *Model) renderHistory() string {
	if len(m.messages) == 0 {
		return m.styles.Help.Render("No messages yet.")
	}

	bodyWidth := m.width - 6
	if bodyWidth < 10 {
		bodyWidth = 10
	}

	var b strings.Builder
	for i, msg := range m.messages {
		if i > 0 {
			b.WriteString("\n\n")
		}
		label := m.styles.BotLabel.Render("Bot")
		body := m.styles.Body
		if msg.IsUser() {
			label = m.styles.UserLabel.Render("You")
		} else if strings.HasPrefix(msg.Text, chat.ErrorMarker) {
			body = m.styles.ErrorBody
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(body.Width(bodyWidth).Render(msg.Text))
	}
	return b.String()
}

func (m *Model) renderSend() string {
	if m.sendDisabled {
		return m.styles.SendDisabled.Render(sendLabel)
	}
	return m.styles.SendEnabled.Render(sendLabel)
}

func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	status := ""
	if m.loading {
		status = m.spinner.View() + m.styles.Loading.Render(" Thinking...")
	}

	return strings.Join([]string{
		m.styles.Title.Render("Chat"),
		m.viewport.View(),
		status,
		m.input.View() + "  " + m.renderSend(),
		m.styles.Help.Render("enter: send • pgup/pgdn: scroll • esc: quit"),
	}, "\n")
}

// UI elements handed to the widget. Each writes straight into the model,
// which is safe because the widget only calls them from Update.

type panelElement struct{ m *Model }

func (p panelElement) Append(msg chat.Message) {
	p.m.messages = append(p.m.messages, msg)
	p.m.refresh()
}

func (p panelElement) ScrollToBottom() {
	p.m.viewport.GotoBottom()
}

type inputElement struct{ m *Model }

func (i inputElement) Value() string {
	return i.m.input.Value()
}

func (i inputElement) SetValue(v string) {
	i.m.input.SetValue(v)
}

// SetDisabled blurs the input; a blurred textinput ignores keystrokes.
func (i inputElement) SetDisabled(disabled bool) {
	if disabled {
		i.m.input.Blur()
		return
	}
	i.m.input.Focus()
}

type sendElement struct{ m *Model }

func (s sendElement) SetDisabled(disabled bool) {
	s.m.sendDisabled = disabled
}

type loadingElement struct{ m *Model }

func (l loadingElement) SetVisible(visible bool) {
	l.m.loading = visible
}
