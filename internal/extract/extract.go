// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract locates the shared-object version block in a build
// configuration file (conventionally http-parser's Makefile):
//
//	SOMAJOR = 2
//	SOMINOR = 9
//	SOREV   = 4
//
// The three assignments must sit on consecutive lines in that order. The
// block may appear anywhere in the file; surrounding content is ignored.
package extract

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"

	"github.com/pdiddy/soversion/pkg/types"
)

// Pattern matches the version block. Each side of "=" needs at least one
// whitespace character (vertical tab included), and the digit groups may be
// empty.
var Pattern = regexp.MustCompile(`SOMAJOR[\s\v]+=[\s\v]+([0-9]*)\nSOMINOR[\s\v]+=[\s\v]+([0-9]*)\nSOREV[\s\v]+=[\s\v]+([0-9]*)`)

// ErrNotFound is matched by every ExtractionError.
var ErrNotFound = errors.New("version block not found")

// ExtractionError reports that no version block was found in Path.
// Unreadable and missing files produce this error too.
type ExtractionError struct {
	Path string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("Unable to extract version information from '%s'", e.Path)
}

// Is reports whether target is ErrNotFound.
func (e *ExtractionError) Is(target error) bool {
	return target == ErrNotFound
}

// UsageError reports a wrong number of positional arguments.
type UsageError struct {
	// Program is the invocation name shown in the example line.
	Program string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("ERR: Must specify Makefile path.\nEG: `%s http-parser/http-parser-VERS/Makefile`", e.Program)
}

// Match holds the result of one successful pattern search.
type Match struct {
	// Groups is the whole match followed by the three sub-captures.
	Groups []string
}

// Count returns the number of captured groups, including the whole match.
func (m Match) Count() int {
	return len(m.Groups)
}

// Captures returns the sub-captures without the whole match.
func (m Match) Captures() []string {
	if len(m.Groups) == 0 {
		return nil
	}
	return m.Groups[1:]
}

// Triple returns the sub-captures as major, minor, and revision.
func (m Match) Triple() types.VersionTriple {
	var v types.VersionTriple
	c := m.Captures()
	if len(c) > 0 {
		v.Major = c[0]
	}
	if len(c) > 1 {
		v.Minor = c[1]
	}
	if len(c) > 2 {
		v.Revision = c[2]
	}
	return v
}

// Find searches content for the first version block.
func Find(content string) (Match, bool) {
	groups := Pattern.FindStringSubmatch(content)
	if groups == nil {
		return Match{}, false
	}
	return Match{Groups: groups}, true
}

// ReadContent returns the full contents of path. A file that cannot be
// opened or read yields empty content.
func ReadContent(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Debug("treating unreadable build config as empty", "path", path, "error", err)
		return ""
	}
	return string(data)
}

// File reads path and searches it for the version block.
func File(path string) (Match, error) {
	content := ReadContent(path)
	slog.Debug("searching build config", "path", path, "bytes", len(content))

	m, ok := Find(content)
	if !ok {
		return Match{}, &ExtractionError{Path: path}
	}
	slog.Debug("version block found", "path", path, "groups", m.Count())
	return m, nil
}
