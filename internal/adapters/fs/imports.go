package fs

import (
	"bufio"
	"os"
	"regexp"

	"github.com/swapnilraj/purescript-native/internal/core/domain"
	"github.com/swapnilraj/purescript-native/internal/core/ports"
)

var _ ports.ImportScanner = (*ImportScanner)(nil)

// importLine matches `import A.B.C` at the start of a line, ignoring what follows
// the module name (qualification, import lists, hiding clauses).
var importLine = regexp.MustCompile(`^import\s+([A-Z][A-Za-z0-9_']*(?:\.[A-Z][A-Za-z0-9_']*)*)`)

// maxLineSize bounds a single source line. Generated sources can carry very
// long literal lines.
const maxLineSize = 16 << 20

// ImportScanner lists imports by scanning source lines. It does not parse the
// module and ignores imports that do not start a line.
type ImportScanner struct{}

// NewImportScanner creates a new ImportScanner.
func NewImportScanner() *ImportScanner {
	return &ImportScanner{}
}

// Imports returns the distinct imported module names in source order.
func (s *ImportScanner) Imports(sourcePath string) ([]domain.ModuleName, error) {
	f, err := os.Open(sourcePath) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return nil, domain.CannotReadFile(sourcePath, err)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	seen := make(map[domain.ModuleName]bool)
	var names []domain.ModuleName

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	for sc.Scan() {
		m := importLine.FindStringSubmatch(sc.Text())
		if m == nil {
			continue
		}
		name, err := domain.ParseModuleName(m[1])
		if err != nil || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	if err := sc.Err(); err != nil {
		return nil, domain.CannotReadFile(sourcePath, err)
	}

	return names, nil
}
