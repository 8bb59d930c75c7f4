// Package console provides paced terminal output and validated line input.
package console

import (
	"fmt"
	"io"
	"time"
)

// Default pacing values, matching the feel of a slow terminal.
const (
	DefaultCharDelay = 50 * time.Millisecond
	DefaultLinePause = 1500 * time.Millisecond

	// beatDuration is the short dramatic pause between a resolved action
	// and whatever comes next.
	beatDuration = 500 * time.Millisecond
)

// Typewriter writes text with a character-by-character pacing effect.
// The sleep function is injected so tests run without real delays.
type Typewriter struct {
	w         io.Writer
	charDelay time.Duration
	linePause time.Duration
	sleep     func(time.Duration)
}

// NewTypewriter creates a typewriter over w with the given pacing.
func NewTypewriter(w io.Writer, charDelay, linePause time.Duration) *Typewriter {
	return &Typewriter{
		w:         w,
		charDelay: charDelay,
		linePause: linePause,
		sleep:     time.Sleep,
	}
}

// NewInstant creates a typewriter with no delays at all. Output is
// byte-for-byte identical to the paced version.
func NewInstant(w io.Writer) *Typewriter {
	return &Typewriter{
		w:     w,
		sleep: func(time.Duration) {},
	}
}

// Type emits text one character at a time, followed by a newline.
func (t *Typewriter) Type(text string) {
	for _, ch := range text {
		fmt.Fprintf(t.w, "%c", ch)
		t.sleep(t.charDelay)
	}
	fmt.Fprintln(t.w)
}

// Pause emits text via Type, then holds for the line pause.
func (t *Typewriter) Pause(text string) {
	t.Type(text)
	t.sleep(t.linePause)
}

// Lines emits each line via Type, pausing after each one.
func (t *Typewriter) Lines(lines []string) {
	for _, line := range lines {
		t.Pause(line)
	}
}

// Raw emits text immediately with no pacing, followed by a newline.
func (t *Typewriter) Raw(text string) {
	fmt.Fprintln(t.w, text)
}

// Beat holds briefly between a resolved action and the next scene.
func (t *Typewriter) Beat() {
	t.sleep(beatDuration)
}

// Hold suspends output for the given duration.
func (t *Typewriter) Hold(d time.Duration) {
	t.sleep(d)
}

// Clear erases the terminal and homes the cursor. Harmless when output
// is not a terminal; the escape sequence simply passes through.
func (t *Typewriter) Clear() {
	fmt.Fprint(t.w, "\x1b[2J\x1b[H")
}
