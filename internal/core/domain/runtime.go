package domain

// RuntimeFileState is the result of comparing an on-disk runtime file with its payload.
type RuntimeFileState string

const (
	// RuntimeFileOK means the file matches the embedded payload.
	RuntimeFileOK RuntimeFileState = "ok"
	// RuntimeFileMissing means the file is absent.
	RuntimeFileMissing RuntimeFileState = "missing"
	// RuntimeFileModified means the file differs from the embedded payload.
	RuntimeFileModified RuntimeFileState = "modified"
)

// RuntimeFileStatus is one entry of a runtime verification report.
type RuntimeFileStatus struct {
	Path  string
	State RuntimeFileState
}
