// Package util provides common utility functions used across the codebase.
package util

import "strings"

// ShellQuote wraps a string in single quotes, escaping any existing single quotes.
// This is safe for use in shell commands where the string should be treated literally.
func ShellQuote(s string) string {
	// Replace ' with '\'' (end quote, escaped quote, start quote)
	escaped := strings.ReplaceAll(s, "'", "'\\''")
	return "'" + escaped + "'"
}

// EscapeDoubleQuotes escapes double quotes and backslashes for embedding a
// string inside a double-quoted shell argument, as used when nesting a remote
// command inside an ssh -t invocation.
func EscapeDoubleQuotes(s string) string {
	escaped := strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(escaped, `"`, `\"`)
}
