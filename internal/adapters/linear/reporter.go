// Package linear provides a synchronous, line-oriented progress reporter.
package linear

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/muesli/termenv"
	"github.com/swapnilraj/purescript-native/internal/core/domain"
	"github.com/swapnilraj/purescript-native/internal/core/ports"
	"github.com/swapnilraj/purescript-native/internal/ui/output"
	"github.com/swapnilraj/purescript-native/internal/ui/style"
)

var _ ports.ProgressReporter = (*Reporter)(nil)

// Reporter writes one line per progress event.
type Reporter struct {
	out *termenv.Output

	mu sync.Mutex
	// quiet suppresses the up-to-date lines.
	quiet bool
}

// NewReporter creates a Reporter writing to w. A nil w means os.Stderr.
func NewReporter(w io.Writer) *Reporter {
	if w == nil {
		w = os.Stderr
	}
	return &Reporter{out: output.New(w)}
}

// SetQuiet hides modules that are already up to date.
func (r *Reporter) SetQuiet(quiet bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.quiet = quiet
}

// Report prints the line for ev.
func (r *Reporter) Report(_ context.Context, ev domain.ProgressEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := ev.Module.String()
	var line string

	switch ev.Kind {
	case domain.EventCompiling:
		line = r.out.String("Compiling " + name).Foreground(termenv.RGBColor(string(style.Iris))).String()
	case domain.EventUpToDate:
		if r.quiet {
			return
		}
		line = r.out.String("Up to date " + name).Faint().String()
	case domain.EventCompiled:
		line = r.out.String("Compiled " + name).Foreground(termenv.RGBColor(string(style.Green))).String()
	case domain.EventFailed:
		msg := "Failed " + name
		if ev.Err != nil {
			msg = fmt.Sprintf("%s: %v", msg, ev.Err)
		}
		line = r.out.String(msg).Foreground(termenv.RGBColor(string(style.Red))).String()
	default:
		return
	}

	_, _ = r.out.WriteString(line + "\n")
}
