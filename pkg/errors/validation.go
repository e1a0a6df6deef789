package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateGraphName validates a graph resource name (node or topic) for
// safety and correctness. It rejects names that could be used for path
// traversal or injection attacks when echoed back through the API.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path traversal sequences (.., //)
//   - No null bytes
//   - Maximum length of 256 characters
//
// Full ROS naming rules are enforced separately by the name-specific
// validators below.
func ValidateGraphName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidName, "name too long (max 256 characters)")
	}

	// Check for control characters and null bytes
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "name contains invalid control characters")
		}
	}

	// Check for path traversal patterns
	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidName, "name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// rosNameRegex matches fully qualified ROS graph names: slash-separated
// segments where each segment starts with a letter or underscore.
var rosNameRegex = regexp.MustCompile(`^~?/?[A-Za-z_][A-Za-z0-9_]*(/[A-Za-z_][A-Za-z0-9_]*)*$`)

// ValidateNodeName validates a ROS node name.
func ValidateNodeName(name string) error {
	if err := ValidateGraphName(name); err != nil {
		return err
	}

	if !rosNameRegex.MatchString(name) {
		return New(ErrCodeInvalidName, "invalid node name: %q", name)
	}

	return nil
}

// ValidateTopicName validates a ROS topic name.
func ValidateTopicName(name string) error {
	if err := ValidateGraphName(name); err != nil {
		return err
	}

	if !rosNameRegex.MatchString(name) {
		return New(ErrCodeInvalidName, "invalid topic name: %q", name)
	}

	return nil
}

// ValidateOutputPath validates a file path supplied for export output.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	// Check for path traversal
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	return nil
}

// exportFormats lists the supported export formats.
var exportFormats = map[string]bool{
	"json": true,
	"dot":  true,
	"svg":  true,
	"png":  true,
}

// ValidateExportFormat validates an export format string.
func ValidateExportFormat(format string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}

	if !exportFormats[format] {
		return New(ErrCodeInvalidFormat, "unsupported format: %q (supported: json, dot, svg, png)", format)
	}

	return nil
}
