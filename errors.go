package gapi

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeUnknownType   = "unknown_type"
	CodeDuplicateType = "duplicate_type"
	CodeUnknownKey    = "unknown_key"
	CodeReservedName  = "reserved_name"
	CodeInvalidShape  = "invalid_shape"
	CodeParseError    = "parse_error"
)

// Issue represents a single construction/dispatch entry.
type Issue struct {
	Path    string // Slash-separated property path (for example: /Fin/color).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, expected declarations, etc.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"type":"Fin"}) for
	// message rendering and observability.
	Params map[string]any
}

// Issues is a collection of plumbing errors that implements error.
//
// Errors raised by user-declared operations are never converted into Issues;
// they propagate unmodified.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. unknown_type at /Fin
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
