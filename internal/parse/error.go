// internal/parse/error.go
package parse

import "fmt"

// Error is a malformed-response failure. Both response grammars are
// fixed: any deviation means the server is not speaking the expected
// format, so the whole response is rejected rather than skipped over.
type Error struct {
	Cmd  string // four-letter command whose output failed
	Line string // offending line, empty at unexpected end of input
	Msg  string
}

func (e *Error) Error() string {
	if e.Line == "" {
		return fmt.Sprintf("parse %s: %s", e.Cmd, e.Msg)
	}
	return fmt.Sprintf("parse %s: %s: %q", e.Cmd, e.Msg, e.Line)
}
