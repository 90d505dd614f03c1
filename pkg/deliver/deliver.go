// Package deliver hands a finished report to the user: the system clipboard
// and, optionally, an external share command.
package deliver

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/rs/zerolog"
)

// ErrDelivery reports that the text could not be handed over. The report it
// carries is already stored.
var ErrDelivery = errors.New("deliver: delivery failed")

// Deliverer hands text to the user.
type Deliverer interface {
	Deliver(ctx context.Context, text string) error
}

// Func adapts a function to Deliverer.
type Func func(ctx context.Context, text string) error

func (f Func) Deliver(ctx context.Context, text string) error {
	return f(ctx, text)
}

// Discard accepts every text and does nothing with it.
var Discard Deliverer = Func(func(context.Context, string) error { return nil })

// Clipboard writes text to the system clipboard.
type Clipboard struct {
	// Write replaces the clipboard writer in tests.
	Write func(string) error
}

func (c Clipboard) Deliver(_ context.Context, text string) error {
	write := c.Write
	if write == nil {
		if clipboard.Unsupported {
			return fmt.Errorf("%w: clipboard unsupported on this system", ErrDelivery)
		}
		write = clipboard.WriteAll
	}
	if err := write(text); err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}
	return nil
}

// Share pipes text to an external command such as a messenger CLI. It is best
// effort: failures are logged and never returned.
type Share struct {
	Command string
	Logger  zerolog.Logger
}

func (s Share) Deliver(ctx context.Context, text string) error {
	args := strings.Fields(s.Command)
	if len(args) == 0 {
		return nil
	}
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdin = strings.NewReader(text)
	if out, err := cmd.CombinedOutput(); err != nil {
		s.Logger.Warn().Err(err).Str("command", args[0]).Bytes("output", out).Msg("deliver: share failed")
	}
	return nil
}

// Chain delivers to every Deliverer in order and returns the first error.
// Later deliverers still run after a failure.
type Chain []Deliverer

func (c Chain) Deliver(ctx context.Context, text string) error {
	var first error
	for _, d := range c {
		if d == nil {
			continue
		}
		if err := d.Deliver(ctx, text); err != nil && first == nil {
			first = err
		}
	}
	return first
}
