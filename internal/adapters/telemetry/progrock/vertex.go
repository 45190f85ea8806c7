package progrock

import (
	"fmt"

	"github.com/swapnilraj/purescript-native/internal/core/domain"
	"github.com/vito/progrock"
)

// Vertex wraps *progrock.VertexRecorder for one module.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Log writes a leveled message to the vertex's stderr.
func (v *Vertex) Log(level domain.LogLevel, msg string) {
	_, _ = fmt.Fprintf(v.vertex.Stderr(), "[%s] %s\n", level.String(), msg)
}

// Complete marks the vertex as finished, successfully or with an error.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}

// Cached marks the vertex as a cache hit.
func (v *Vertex) Cached() {
	v.vertex.Cached()
}
