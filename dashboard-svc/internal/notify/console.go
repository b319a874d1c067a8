package notify

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"menuqr-dashboard/dashboard-svc/internal/controller"

	"github.com/fatih/color"
)

var (
	_ controller.Notifier  = (*Console)(nil)
	_ controller.Confirmer = (*Prompt)(nil)
)

// Console prints toasts as single colored lines.
type Console struct {
	mu  sync.Mutex
	out io.Writer
}

func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) Notify(toast controller.Toast) {
	c.mu.Lock()
	defer c.mu.Unlock()

	label := color.New(color.FgGreen, color.Bold)
	if toast.Variant == controller.ToastError {
		label = color.New(color.FgRed, color.Bold)
	}
	label.Fprint(c.out, toast.Title)
	if toast.Message != "" {
		fmt.Fprintf(c.out, ": %s", toast.Message)
	}
	fmt.Fprintln(c.out)
}

// Prompt asks yes/no questions on a terminal. Anything but y or yes is a no.
type Prompt struct {
	mu      sync.Mutex
	scanner *bufio.Scanner
	out     io.Writer

	AutoConfirm bool
}

func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{scanner: bufio.NewScanner(in), out: out}
}

func (p *Prompt) Confirm(ctx context.Context, prompt string) bool {
	if p.AutoConfirm {
		return true
	}
	if ctx.Err() != nil {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	color.New(color.FgYellow).Fprintf(p.out, "%s [y/N] ", prompt)
	if !p.scanner.Scan() {
		fmt.Fprintln(p.out)
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(p.scanner.Text()))
	return answer == "y" || answer == "yes"
}
