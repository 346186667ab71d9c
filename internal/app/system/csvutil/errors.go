// internal/app/system/csvutil/errors.go
package csvutil

import (
	"fmt"
	"strconv"
	"strings"
)

// RowError describes one rejected data row. Line is the 1-based line in
// the file; 0 means the error is not tied to a row.
type RowError struct {
	Line   int      `json:"line"`
	Reason string   `json:"reason"`
	Raw    []string `json:"raw,omitempty"`
}

func (e RowError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
	}
	return e.Reason
}

// FormatParseErrors renders up to maxShow row errors as one message.
// If maxShow is <= 0, it defaults to 5.
func FormatParseErrors(errs []RowError, maxShow int) string {
	if len(errs) == 0 {
		return ""
	}
	if maxShow <= 0 {
		maxShow = 5
	}
	if len(errs) < maxShow {
		maxShow = len(errs)
	}

	var b strings.Builder
	b.WriteString(strconv.Itoa(len(errs)))
	b.WriteString(" row(s) are invalid: ")
	for i := 0; i < maxShow; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(errs[i].Error())
	}
	if len(errs) > maxShow {
		b.WriteString("; ... and ")
		b.WriteString(strconv.Itoa(len(errs) - maxShow))
		b.WriteString(" more")
	}
	return b.String()
}
