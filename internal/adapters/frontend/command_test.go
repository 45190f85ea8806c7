package frontend_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swapnilraj/purescript-native/internal/adapters/frontend"
	"github.com/swapnilraj/purescript-native/internal/adapters/shell"
	"github.com/swapnilraj/purescript-native/internal/core/domain"
	"github.com/swapnilraj/purescript-native/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const cannedResponse = `{
  "declarations": [
    {"kind": "code", "text": "namespace Main { auto main() -> boxed; }"},
    {"kind": "end-of-header"},
    {"kind": "code", "text": "namespace Main { auto main() -> boxed { return 0; } }"}
  ],
  "externs": {"exports": ["main"]},
  "foreignImports": ["log"]
}`

func request() *domain.CompileRequest {
	return &domain.CompileRequest{
		Module: domain.NewFileModule(domain.MustParseModuleName("Main"), "src/Main.purs"),
		Source: []byte("module Main where\nimport Effect\n"),
		Externs: map[domain.ModuleName][]byte{
			domain.MustParseModuleName("Effect"): []byte(`{"exports":["pure"]}`),
		},
	}
}

func TestCompile_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)

	cfg := domain.FrontendConfig{Command: []string{"purs-frontend"}, Environment: map[string]string{"LANG": "C"}}
	executor.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd *domain.Command, stdin io.Reader, stdout, _ io.Writer) error {
			assert.Equal(t, []string{"purs-frontend"}, cmd.Args)
			assert.Equal(t, "/project", cmd.WorkingDir)
			assert.Equal(t, "C", cmd.Environment["LANG"])

			var req frontend.Request
			require.NoError(t, json.NewDecoder(stdin).Decode(&req))
			assert.Equal(t, "Main", req.Module)
			assert.False(t, req.Virtual)
			assert.Contains(t, req.Source, "import Effect")
			assert.JSONEq(t, `{"exports":["pure"]}`, string(req.Externs["Effect"]))

			_, err := io.WriteString(stdout, cannedResponse)
			return err
		})

	compiled, err := frontend.NewCommand(executor, cfg, "/project").Compile(context.Background(), request())
	require.NoError(t, err)

	assert.Equal(t, "Main", compiled.Name.String())
	require.Len(t, compiled.Decls, 3)
	assert.Equal(t, domain.DeclEndOfHeader, compiled.Decls[1].Kind)
	assert.JSONEq(t, `{"exports":["main"]}`, string(compiled.Externs))
	assert.True(t, compiled.HasForeignImports())
}

func TestCompile_NotConfigured(t *testing.T) {
	c := frontend.NewCommand(mocks.NewMockExecutor(gomock.NewController(t)), domain.FrontendConfig{}, "")

	_, err := c.Compile(context.Background(), request())
	assert.ErrorIs(t, err, domain.ErrFrontendNotConfigured)
}

func TestCompile_CommandFails(t *testing.T) {
	executor := mocks.NewMockExecutor(gomock.NewController(t))
	executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("exit status 2"))

	c := frontend.NewCommand(executor, domain.FrontendConfig{Command: []string{"false"}}, "")
	_, err := c.Compile(context.Background(), request())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFrontendFailed)
	assert.Contains(t, err.Error(), "exit status 2")
}

func TestCompile_InvalidOutput(t *testing.T) {
	tests := []struct {
		name   string
		output string
	}{
		{"not json", "error: parse failed"},
		{"unknown declaration kind", `{"declarations":[{"kind":"footer"}],"externs":{}}`},
		{"missing externs", `{"declarations":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			executor := mocks.NewMockExecutor(gomock.NewController(t))
			executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ *domain.Command, _ io.Reader, stdout, _ io.Writer) error {
					_, err := io.WriteString(stdout, tt.output)
					return err
				})

			c := frontend.NewCommand(executor, domain.FrontendConfig{Command: []string{"fe"}}, "")
			_, err := c.Compile(context.Background(), request())
			assert.ErrorIs(t, err, domain.ErrFrontendOutputInvalid)
		})
	}
}

func TestCompile_ThroughShell(t *testing.T) {
	logger := mocks.NewMockLogger(gomock.NewController(t))
	cfg := domain.FrontendConfig{
		Command: []string{"sh", "-c", "cat >/dev/null; printf '%s' \"$RESPONSE\""},
		Environment: map[string]string{
			"RESPONSE": cannedResponse,
		},
	}

	c := frontend.NewCommand(shell.NewExecutor(logger), cfg, t.TempDir())
	compiled, err := c.Compile(context.Background(), request())
	require.NoError(t, err)
	assert.Len(t, compiled.Decls, 3)
	assert.Equal(t, []string{"log"}, compiled.ForeignImports)
}

func TestCompile_ThroughShellExitCode(t *testing.T) {
	logger := mocks.NewMockLogger(gomock.NewController(t))
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	cfg := domain.FrontendConfig{Command: []string{"sh", "-c", "echo 'type error' >&2; exit 2"}}
	_, err := frontend.NewCommand(shell.NewExecutor(logger), cfg, t.TempDir()).Compile(context.Background(), request())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFrontendFailed)
}
