// Package console is the line-mode front end: one line of input is one
// press of Enter, and messages are printed as they are added.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"chat-widget/internal/chat"
)

const prompt = "> "

// Console drives a chat.Widget from an input stream.
type Console struct {
	in     *bufio.Scanner
	out    io.Writer
	input  *lineInput
	widget *chat.Widget
}

// New binds a widget to console elements reading from in and writing to out.
func New(in io.Reader, out io.Writer, client chat.ChatClient, logger *zap.Logger) (*Console, error) {
	input := &lineInput{}
	el := chat.Elements{
		Panel:   newTranscript(out),
		Input:   input,
		Send:    &sendKey{},
		Loading: &dots{out: out, style: color.New(color.Faint).SprintFunc()},
	}
	w, err := chat.NewWidget(el, client, logger)
	if err != nil {
		return nil, fmt.Errorf("could not create widget: %w", err)
	}
	return &Console{
		in:     bufio.NewScanner(in),
		out:    out,
		input:  input,
		widget: w,
	}, nil
}

// Widget exposes the underlying widget.
func (c *Console) Widget() *chat.Widget {
	return c.widget
}

// Run reads lines until EOF, "exit", or ctx is done.
func (c *Console) Run(ctx context.Context) error {
	title := color.New(color.FgGreen, color.Bold).SprintFunc()
	fmt.Fprintln(c.out, title("Chat"))
	fmt.Fprintln(c.out, "Type your message and press Enter. Type 'exit' or press Ctrl+D to quit.")
	fmt.Fprintln(c.out)

	for {
		if ctx.Err() != nil {
			return nil
		}
		fmt.Fprint(c.out, prompt)
		if !c.in.Scan() {
			break
		}
		line := c.in.Text()
		if strings.EqualFold(strings.TrimSpace(line), "exit") {
			break
		}

		c.input.SetValue(line)
		c.widget.OnKeyPress(ctx, chat.KeyEnter)
	}

	if err := c.in.Err(); err != nil {
		return fmt.Errorf("could not read input: %w", err)
	}
	return nil
}

// transcript prints each message with a colored origin label.
type transcript struct {
	out  io.Writer
	user func(a ...interface{}) string
	bot  func(a ...interface{}) string
}

func newTranscript(out io.Writer) *transcript {
	return &transcript{
		out:  out,
		user: color.New(color.FgGreen, color.Bold).SprintFunc(),
		bot:  color.New(color.FgCyan, color.Bold).SprintFunc(),
	}
}

func (t *transcript) Append(msg chat.Message) {
	label := t.bot("Bot:")
	if msg.IsUser() {
		label = t.user("You:")
	}
	fmt.Fprintf(t.out, "%s %s\n", label, msg.Text)
}

// ScrollToBottom is a no-op; the terminal scrolls on its own.
func (t *transcript) ScrollToBottom() {}

type lineInput struct {
	value    string
	disabled bool
}

func (i *lineInput) Value() string { return i.value }
func (i *lineInput) SetValue(v string) { i.value = v }
func (i *lineInput) SetDisabled(d bool) { i.disabled = d }

// sendKey stands in for the send button. Enter is the only way to send.
type sendKey struct{ disabled bool }

func (s *sendKey) SetDisabled(d bool) { s.disabled = d }

// dots prints a single "..." line when loading starts.
type dots struct {
	out     io.Writer
	style   func(a ...interface{}) string
	visible bool
}

func (d *dots) SetVisible(v bool) {
	if v && !d.visible {
		fmt.Fprintln(d.out, d.style("..."))
	}
	d.visible = v
}
