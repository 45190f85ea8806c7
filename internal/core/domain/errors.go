package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrCannotReadFile is returned when a file that must be read cannot be read.
	ErrCannotReadFile = zerr.New("cannot read file")

	// ErrCannotWriteFile is returned when an artifact, directory or companion cannot be written.
	ErrCannotWriteFile = zerr.New("cannot write file")

	// ErrCannotGetFileInfo is returned when stat fails for a reason other than the file being absent.
	ErrCannotGetFileInfo = zerr.New("cannot get file info")

	// ErrInvalidModuleName is returned when a module name is empty or has an invalid segment.
	ErrInvalidModuleName = zerr.New("invalid module name")

	// ErrModuleAlreadyPlanned is returned when the same module is added to a plan twice.
	ErrModuleAlreadyPlanned = zerr.New("module already planned")

	// ErrModuleNotFound is returned when a requested module matches no discovered source.
	ErrModuleNotFound = zerr.New("module not found")

	// ErrNoModulesSelected is returned when a build resolves to an empty plan.
	ErrNoModulesSelected = zerr.New("no modules selected")

	// ErrBuildExecutionFailed is returned when at least one module fails to build.
	ErrBuildExecutionFailed = zerr.New("build execution failed")

	// ErrFrontendNotConfigured is returned when a build needs a frontend but none is configured.
	ErrFrontendNotConfigured = zerr.New("frontend command not configured")

	// ErrFrontendFailed is returned when the frontend command exits with a non-zero status.
	ErrFrontendFailed = zerr.New("frontend command failed")

	// ErrFrontendOutputInvalid is returned when the frontend response cannot be decoded.
	ErrFrontendOutputInvalid = zerr.New("frontend output invalid")

	// ErrConfigNotFound is returned when an explicitly requested configuration file does not exist.
	ErrConfigNotFound = zerr.New("configuration file not found")

	// ErrConfigInvalid is returned when a configuration file cannot be parsed or validated.
	ErrConfigInvalid = zerr.New("configuration invalid")

	// ErrRuntimeOutOfDate is returned when runtime files differ from the embedded payloads.
	ErrRuntimeOutOfDate = zerr.New("runtime files out of date")
)

// CannotReadFile classifies err as a read failure on path.
func CannotReadFile(path string, err error) error {
	return fileError(ErrCannotReadFile, path, err)
}

// CannotWriteFile classifies err as a write failure on path.
func CannotWriteFile(path string, err error) error {
	return fileError(ErrCannotWriteFile, path, err)
}

// CannotGetFileInfo classifies err as a stat failure on path.
func CannotGetFileInfo(path string, err error) error {
	return fileError(ErrCannotGetFileInfo, path, err)
}

// fileError keeps both the sentinel and the OS cause reachable through errors.Is.
func fileError(kind error, path string, err error) error {
	return zerr.With(fmt.Errorf("%w: %w", kind, err), "path", path)
}
