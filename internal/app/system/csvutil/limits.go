// internal/app/system/csvutil/limits.go
package csvutil

import "errors"

// Upload size and row limits for CSV processing.
const (
	MaxUploadSize = 5 << 20 // 5 MB
	MaxRows       = 20000
)

// ErrTooManyRows is returned when a file has more data rows than
// ParseOptions.MaxRows allows.
var ErrTooManyRows = errors.New("csv has too many rows")

// ErrMissingHeader is returned when the first row names none of the
// recognised columns.
var ErrMissingHeader = errors.New("csv header row not recognised")

// ParseOptions controls roster parsing.
type ParseOptions struct {
	MaxRows int // 0 = unlimited
}

// DefaultParseOptions returns options with no row limit. Handlers pass
// ParseOptions{MaxRows: MaxRows} for uploads.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{}
}
