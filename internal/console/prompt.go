package console

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"
)

// Prompter reads validated line input from the player.
type Prompter struct {
	r      *bufio.Reader
	w      io.Writer
	styles Styles
}

// NewPrompter creates a prompter reading from r and echoing prompts to w.
func NewPrompter(r io.Reader, w io.Writer, styles Styles) *Prompter {
	return &Prompter{
		r:      bufio.NewReader(r),
		w:      w,
		styles: styles,
	}
}

// Ask displays prompt and reads lines until the input, lowercased, is one
// of the valid options. Invalid input re-prompts with errMsg, or with a
// default listing the valid options when errMsg is empty. A read failure
// (including a closed input stream) is returned as an error rather than
// re-prompted; prompting against a closed stream never terminates.
func (p *Prompter) Ask(prompt string, valid []string, errMsg string) (string, error) {
	for {
		fmt.Fprint(p.w, p.styles.Prompt.Render(prompt))

		line, err := p.r.ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("read input: %w", err)
		}

		input := strings.ToLower(strings.TrimRight(line, "\r\n"))
		if slices.Contains(valid, input) {
			return input, nil
		}
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}

		msg := errMsg
		if msg == "" {
			msg = "Invalid choice. Choose: " + strings.Join(valid, ", ")
		}
		fmt.Fprintln(p.w, p.styles.Error.Render(msg))
	}
}

// ReadLine displays prompt and returns a single raw line of input with the
// line ending stripped. No validation or case folding is applied.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.w, p.styles.Prompt.Render(prompt))

	line, err := p.r.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
