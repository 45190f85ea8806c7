// Package shell runs external commands.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/swapnilraj/purescript-native/internal/core/domain"
	"github.com/swapnilraj/purescript-native/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{logger: logger}
}

// Execute runs cmd and waits for it to complete. Every stderr line is also
// forwarded to the logger as a warning.
func (e *Executor) Execute(
	ctx context.Context,
	cmd *domain.Command,
	stdin io.Reader,
	stdout, stderr io.Writer,
) error {
	if cmd == nil || len(cmd.Args) == 0 {
		return nil
	}

	name := cmd.Args[0]
	env := resolveEnvironment(os.Environ(), cmd.Environment)

	executable := name
	if !filepath.IsAbs(name) && !strings.ContainsRune(name, filepath.Separator) {
		if lp, err := lookPath(name, env); err == nil {
			executable = lp
		}
	}

	c := exec.CommandContext(ctx, executable, cmd.Args[1:]...) //nolint:gosec // configured command
	c.Args[0] = name
	c.Dir = cmd.WorkingDir
	c.Env = env
	c.Stdin = stdin

	stderrLog := &logWriter{logger: e.logger, prefix: label(cmd)}
	defer func() { _ = stderrLog.Close() }()

	c.Stdout = orDiscard(stdout)
	c.Stderr = io.MultiWriter(stderrLog, orDiscard(stderr))

	if err := c.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		err = zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
		return zerr.With(err, "command", label(cmd))
	}

	return nil
}

func label(cmd *domain.Command) string {
	if cmd.Label != "" {
		return cmd.Label
	}
	return cmd.Args[0]
}

func orDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}

// logWriter forwards complete lines to the logger.
type logWriter struct {
	logger ports.Logger
	prefix string
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	if w.logger == nil {
		return
	}
	msg := strings.TrimSuffix(string(line), "\r")
	if msg == "" {
		return
	}
	w.logger.Warn("[" + w.prefix + "] " + msg)
}

// allowListedEnvVars are the system variables inherited by external commands.
var allowListedEnvVars = map[string]struct{}{
	"HOME":   {},
	"TERM":   {},
	"USER":   {},
	"PATH":   {},
	"TMPDIR": {},
}

// resolveEnvironment keeps the allow-listed system variables and applies the
// command's own environment on top.
func resolveEnvironment(sysEnv []string, cmdEnv map[string]string) []string {
	envMap := make(map[string]string)
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, allowed := allowListedEnvVars[k]; allowed {
			envMap[k] = v
		}
	}

	for k, v := range cmdEnv {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	return result
}

// lookPath searches for an executable in the PATH of env rather than the
// current process.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if v, ok := strings.CutPrefix(e, "PATH="); ok {
			path = v
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
