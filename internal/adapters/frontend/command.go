// Package frontend drives the external compiler frontend over a JSON protocol.
package frontend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/swapnilraj/purescript-native/internal/core/domain"
	"github.com/swapnilraj/purescript-native/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Frontend = (*Command)(nil)

// Request is written to the frontend's stdin.
type Request struct {
	Module string `json:"module"`
	// Source is the module text, empty for virtual modules.
	Source  string                     `json:"source"`
	Virtual bool                       `json:"virtual,omitempty"`
	Externs map[string]json.RawMessage `json:"externs"`
}

// Response is read from the frontend's stdout.
type Response struct {
	Declarations   []domain.Decl   `json:"declarations"`
	Environment    json.RawMessage `json:"environment,omitempty"`
	Externs        json.RawMessage `json:"externs"`
	ForeignImports []string        `json:"foreignImports,omitempty"`
}

// Command implements ports.Frontend by running the configured command once per module.
type Command struct {
	executor ports.Executor
	cfg      domain.FrontendConfig
	dir      string
}

// NewCommand creates a new Command running in dir.
func NewCommand(executor ports.Executor, cfg domain.FrontendConfig, dir string) *Command {
	return &Command{executor: executor, cfg: cfg, dir: dir}
}

// Compile sends req to the frontend and decodes its answer.
func (c *Command) Compile(ctx context.Context, req *domain.CompileRequest) (*domain.CompiledModule, error) {
	if len(c.cfg.Command) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrFrontendNotConfigured, "cannot compile module"), "hint", "set frontend.cmd in pscpp.yaml")
	}

	name := req.Module.Name.String()
	payload, err := json.Marshal(newRequest(req))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to encode frontend request"), "module", name)
	}

	cmd := &domain.Command{
		Label:       "frontend " + name,
		Args:        c.cfg.Command,
		Environment: c.cfg.Environment,
		WorkingDir:  c.dir,
	}

	var stdout, stderr bytes.Buffer
	if err := c.executor.Execute(ctx, cmd, bytes.NewReader(payload), &stdout, &stderr); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrFrontendFailed, err), "module", name)
	}

	var resp Response
	if err := json.Unmarshal(stdout.Bytes(), &resp); err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrFrontendOutputInvalid, err), "module", name)
	}
	if len(resp.Externs) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrFrontendOutputInvalid, "response has no externs"), "module", name)
	}

	return &domain.CompiledModule{
		Name:           req.Module.Name,
		Decls:          resp.Declarations,
		Environment:    resp.Environment,
		Externs:        resp.Externs,
		ForeignImports: resp.ForeignImports,
	}, nil
}

func newRequest(req *domain.CompileRequest) Request {
	out := Request{
		Module:  req.Module.Name.String(),
		Source:  string(req.Source),
		Externs: make(map[string]json.RawMessage, len(req.Externs)),
	}
	_, isFile := req.Module.SourcePath()
	out.Virtual = !isFile

	for n, data := range req.Externs {
		if json.Valid(data) {
			out.Externs[n.String()] = json.RawMessage(data)
			continue
		}
		quoted, _ := json.Marshal(string(data))
		out.Externs[n.String()] = quoted
	}
	return out
}
