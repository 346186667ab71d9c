// internal/app/system/limits/limits.go
package limits

// Request body size limits for the JSON endpoints. CSV uploads use
// csvutil.MaxUploadSize.
const (
	// MaxJSONBody bounds link and attendance edits.
	MaxJSONBody = 64 << 10 // 64 KB

	// MaxLinkLength is the longest session link accepted after trimming.
	MaxLinkLength = 500
)
