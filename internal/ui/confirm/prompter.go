package confirm

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

// ErrDeclined is returned when the operator does not approve the plan.
var ErrDeclined = errors.New("aborted by operator")

// Prompter asks a yes/no question.
type Prompter interface {
	Confirm(ctx context.Context, question string) (bool, error)
}

// NewPrompter returns an interactive prompt when in is a terminal and a
// line based prompt otherwise (pipes, CI).
func NewPrompter(in *os.File, out io.Writer) Prompter {
	if isTerminal(in) {
		return &HuhPrompter{}
	}
	return NewLinePrompter(in, out)
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// HuhPrompter asks with a huh confirm field.
type HuhPrompter struct{}

// Confirm implements Prompter. Ctrl+C counts as no.
func (p *HuhPrompter) Confirm(ctx context.Context, question string) (bool, error) {
	var ok bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(question).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	).RunWithContext(ctx)

	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("prompt failed: %w", err)
	}
	return ok, nil
}

// LinePrompter reads one answer line per question. Only a lowercase "y" is a yes.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a prompter reading answers from in.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Confirm implements Prompter. End of input counts as no.
func (p *LinePrompter) Confirm(ctx context.Context, question string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	fmt.Fprintf(p.out, "%s [y/N]: ", question)

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(p.out)
	}

	answer := strings.TrimSpace(line)
	return answer == "y", nil
}
