// Package tui renders engine results for the terminal: colored verdicts and
// a step table with the consumed position highlighted. The original of this
// surface is the color-coded result label of the desktop simulator; here it
// lives host-side so the engine stays free of presentation.
package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/finitolabs/finito/pkg/simulate"
)

// Renderer formats verdicts and traces using the terminal's color profile.
type Renderer struct {
	profile termenv.Profile
}

// NewRenderer detects the terminal capabilities once and reuses them.
func NewRenderer() *Renderer {
	return &Renderer{profile: termenv.ColorProfile()}
}

// Verdict renders the accepted/rejected line for an input.
func (r *Renderer) Verdict(input string, accepted bool) string {
	if accepted {
		ok := termenv.String("ACCEPTED").Foreground(r.profile.Color("#22c55e")).Bold()
		return fmt.Sprintf("string %q is %s", input, ok)
	}
	bad := termenv.String("REJECTED").Foreground(r.profile.Color("#ef4444")).Bold()
	return fmt.Sprintf("string %q is %s", input, bad)
}

// Trace renders the full step table of a trace.
func (r *Renderer) Trace(trace *simulate.Trace) string {
	var b strings.Builder
	for _, cfg := range trace.Configs {
		b.WriteString(r.Step(trace, cfg.Step, false))
		b.WriteByte('\n')
	}
	b.WriteString(r.Verdict(trace.Input, trace.Accepted))
	b.WriteByte('\n')
	return b.String()
}

// Step renders a single configuration. When current is true the line gets a
// pointer marker, and the next symbol to consume is bracketed in the input.
func (r *Renderer) Step(trace *simulate.Trace, index int, current bool) string {
	cfg := trace.Configs[index]

	marker := "  "
	if current {
		marker = "→ "
	}
	state := termenv.String(cfg.StateID).Foreground(r.profile.Color("#818cf8"))
	line := fmt.Sprintf("%sstep %d: state %s", marker, cfg.Step, state)
	if cfg.Stuck {
		stuck := termenv.String("stuck").Foreground(r.profile.Color("#ef4444"))
		line += fmt.Sprintf("  (%s: no transition for next symbol)", stuck)
	}
	if current {
		line += "  " + r.position(trace.Input, cfg.Consumed)
	}
	return line
}

// position shows the input with the next symbol to consume bracketed.
func (r *Renderer) position(input string, consumed int) string {
	runes := []rune(input)
	if consumed >= len(runes) {
		return input + "·"
	}
	head := string(runes[:consumed])
	next := termenv.String("[" + string(runes[consumed]) + "]").Bold()
	tail := string(runes[consumed+1:])
	return fmt.Sprintf("%s%s%s", head, next, tail)
}
