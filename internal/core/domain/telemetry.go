package domain

// EventKind identifies a step in a module's build lifecycle.
type EventKind string

const (
	// EventCompiling is emitted when a stale module enters compilation.
	EventCompiling EventKind = "compiling"
	// EventUpToDate is emitted when a module is skipped because its outputs are fresh.
	EventUpToDate EventKind = "up-to-date"
	// EventCompiled is emitted when a module's artifacts have all been written.
	EventCompiled EventKind = "compiled"
	// EventFailed is emitted when a module's build aborts.
	EventFailed EventKind = "failed"
)

// IsTerminal reports whether no further event follows for the module.
func (k EventKind) IsTerminal() bool {
	switch k {
	case EventUpToDate, EventCompiled, EventFailed:
		return true
	default:
		return false
	}
}

// ProgressEvent is a single lifecycle event for one module.
type ProgressEvent struct {
	Kind   EventKind
	Module ModuleName
	// Err is set for EventFailed.
	Err error
}

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}
