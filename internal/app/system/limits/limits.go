// internal/app/system/limits/limits.go
package limits

// Request body size limits.
const (
	// MaxFormSize bounds an add or edit form submission. The largest form
	// (student) is a handful of short fields.
	MaxFormSize = 64 << 10 // 64 KB
)
