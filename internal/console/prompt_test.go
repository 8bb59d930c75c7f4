package console

import (
	"bytes"
	"strings"
	"testing"
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewPrompter(strings.NewReader(input), &buf, PlainStyles()), &buf
}

func TestAskNormalizesInput(t *testing.T) {
	p, _ := newTestPrompter("Y\n")

	got, err := p.Ask("Will you do it? (Y/N): ", []string{"y", "n"}, "")
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if got != "y" {
		t.Errorf("Expected lowercased %q, got %q", "y", got)
	}
}

func TestAskRepromptsUntilValid(t *testing.T) {
	p, buf := newTestPrompter("maybe\n3\n2\n")

	got, err := p.Ask("> ", []string{"1", "2"}, "")
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if got != "2" {
		t.Errorf("Expected %q, got %q", "2", got)
	}

	out := buf.String()
	if count := strings.Count(out, "Invalid choice. Choose: 1, 2"); count != 2 {
		t.Errorf("Expected 2 default error messages, got %d in %q", count, out)
	}
	if count := strings.Count(out, "> "); count != 3 {
		t.Errorf("Expected prompt re-displayed 3 times, got %d", count)
	}
}

func TestAskCustomErrorMessage(t *testing.T) {
	p, buf := newTestPrompter("x\na\n")

	if _, err := p.Ask("> ", []string{"a", "b", "c"}, "Pick a letter!"); err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Pick a letter!") {
		t.Errorf("Expected custom error message, got %q", buf.String())
	}
}

func TestAskBlankCountsWhenAllowed(t *testing.T) {
	p, _ := newTestPrompter("\n")

	got, err := p.Ask("Play again? ", []string{"y", "n", ""}, "")
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if got != "" {
		t.Errorf("Expected empty input to be accepted, got %q", got)
	}
}

func TestAskClosedStreamIsError(t *testing.T) {
	p, _ := newTestPrompter("")

	if _, err := p.Ask("> ", []string{"1", "2"}, ""); err == nil {
		t.Fatal("Expected error on closed input stream")
	}
}

func TestAskInvalidThenClosedStreamIsError(t *testing.T) {
	p, _ := newTestPrompter("nope\n")

	if _, err := p.Ask("> ", []string{"1", "2"}, ""); err == nil {
		t.Fatal("Expected error when stream closes during re-prompt")
	}
}

func TestAskFinalLineWithoutNewline(t *testing.T) {
	// A valid token on the stream's last, unterminated line still counts.
	p, _ := newTestPrompter("n")

	got, err := p.Ask("> ", []string{"y", "n"}, "")
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if got != "n" {
		t.Errorf("Expected %q, got %q", "n", got)
	}
}

func TestReadLinePreservesCase(t *testing.T) {
	p, _ := newTestPrompter("jUmP\n")

	got, err := p.ReadLine("> ")
	if err != nil {
		t.Fatalf("ReadLine failed: %v", err)
	}
	if got != "jUmP" {
		t.Errorf("Expected raw %q, got %q", "jUmP", got)
	}
}

func TestReadLineStripsCRLF(t *testing.T) {
	p, _ := newTestPrompter("JUMP\r\n")

	got, err := p.ReadLine("> ")
	if err != nil {
		t.Fatalf("ReadLine failed: %v", err)
	}
	if got != "JUMP" {
		t.Errorf("Expected %q, got %q", "JUMP", got)
	}
}

func TestReadLineClosedStreamIsError(t *testing.T) {
	p, _ := newTestPrompter("")

	if _, err := p.ReadLine("> "); err == nil {
		t.Fatal("Expected error on closed input stream")
	}
}
