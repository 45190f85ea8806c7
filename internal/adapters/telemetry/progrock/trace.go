package progrock

import (
	"fmt"
	"io"
	"sync"

	"github.com/vito/progrock"
)

var _ progrock.Writer = (*TraceWriter)(nil)

// TraceWriter prints one line per completed vertex.
type TraceWriter struct {
	mu   sync.Mutex
	out  io.Writer
	seen map[string]struct{}
}

// NewTraceWriter creates a TraceWriter printing to out.
func NewTraceWriter(out io.Writer) *TraceWriter {
	return &TraceWriter{out: out, seen: make(map[string]struct{})}
}

// WriteStatus implements progrock.Writer.
func (w *TraceWriter) WriteStatus(update *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, v := range update.GetVertexes() {
		if v.GetCompleted() == nil {
			continue
		}
		if _, ok := w.seen[v.GetId()]; ok {
			continue
		}
		w.seen[v.GetId()] = struct{}{}

		var line string
		switch {
		case v.GetError() != "":
			line = fmt.Sprintf("trace: %s failed: %s\n", v.GetName(), v.GetError())
		case v.GetCached():
			line = fmt.Sprintf("trace: %s cached\n", v.GetName())
		default:
			took := v.GetCompleted().AsTime().Sub(v.GetStarted().AsTime())
			line = fmt.Sprintf("trace: %s done in %s\n", v.GetName(), took)
		}
		if _, err := io.WriteString(w.out, line); err != nil {
			return err
		}
	}
	return nil
}

// Close implements progrock.Writer.
func (w *TraceWriter) Close() error {
	return nil
}
