// Package progrock records build progress as progrock vertices.
package progrock

import (
	"context"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/swapnilraj/purescript-native/internal/core/domain"
	"github.com/swapnilraj/purescript-native/internal/core/ports"
	"github.com/vito/progrock"
)

var _ ports.ProgressReporter = (*Reporter)(nil)

// Reporter records one progrock vertex per module.
type Reporter struct {
	w   progrock.Writer
	rec *progrock.Recorder

	mu       sync.Mutex
	vertices map[domain.ModuleName]*Vertex
}

// NewReporter creates a Reporter with the given writer.
func NewReporter(w progrock.Writer) *Reporter {
	return &Reporter{
		w:        w,
		rec:      progrock.NewRecorder(w),
		vertices: make(map[domain.ModuleName]*Vertex),
	}
}

// Report starts the module's vertex on compiling and completes it on a
// terminal event. Up-to-date modules get a vertex marked cached.
func (r *Reporter) Report(_ context.Context, ev domain.ProgressEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v := r.vertexLocked(ev.Module)
	switch ev.Kind {
	case domain.EventUpToDate:
		v.Cached()
		v.Complete(nil)
	case domain.EventCompiled:
		v.Complete(nil)
	case domain.EventFailed:
		if ev.Err != nil {
			v.Log(domain.LogLevelError, ev.Err.Error())
		}
		v.Complete(ev.Err)
	}

	if ev.Kind.IsTerminal() {
		delete(r.vertices, ev.Module)
	}
}

func (r *Reporter) vertexLocked(name domain.ModuleName) *Vertex {
	if v, ok := r.vertices[name]; ok {
		return v
	}
	label := "compile " + name.String()
	v := &Vertex{vertex: r.rec.Vertex(digest.FromString(label), label)}
	r.vertices[name] = v
	return v
}

// Close completes any vertex still open and closes the writer when it supports it.
func (r *Reporter) Close() error {
	r.mu.Lock()
	for name, v := range r.vertices {
		v.Complete(nil)
		delete(r.vertices, name)
	}
	r.mu.Unlock()

	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
