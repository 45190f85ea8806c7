// Package build holds build-time information.
package build

// Name is the tool name used in generated banners and version output.
const Name = "pscpp"

// Version is the application version.
// It defaults to a development version and can be overwritten by linker flags.
var Version = "0.1.0-dev"

// Commit is the git commit the binary was built from.
var Commit = "none"

// Date is the build date.
var Date = "unknown"
