// Package notify shows short user-facing messages, the CLI's toasts.
package notify

import (
	"io"

	"github.com/fatih/color"
)

//go:generate mockgen -source=notifier.go -destination=../mocks/notify/mock_notifier.go -package=mock_notify

type Notifier interface {
	Success(message string)
	Error(message string)
	Info(message string)
}

// Console writes colored one-line messages to a writer.
type Console struct {
	out     io.Writer
	success *color.Color
	failure *color.Color
	info    *color.Color
}

func NewConsole(out io.Writer) *Console {
	return &Console{
		out:     out,
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed, color.Bold),
		info:    color.New(color.FgCyan),
	}
}

func (c *Console) Success(message string) {
	_, _ = c.success.Fprintln(c.out, "✓ "+message)
}

func (c *Console) Error(message string) {
	_, _ = c.failure.Fprintln(c.out, "✗ "+message)
}

func (c *Console) Info(message string) {
	_, _ = c.info.Fprintln(c.out, message)
}
