// Package output classifies lines of check output for display.
package output

import "strings"

// errorPrefixes are matched case-insensitively against the trimmed line.
var errorPrefixes = []string{
	"error:",
	"error ",
	"fatal:",
	"fatal ",
	"panic:",
	"exception:",
	"fail:",
	"failed:",
	"--- fail:",
}

// IsErrorLine reports whether a line of check output looks like an error
// message. Compiler errors in "file:line:col: msg" form count too.
func IsErrorLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	lower := strings.ToLower(trimmed)

	for _, prefix := range errorPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}

	if strings.Contains(line, "ERROR") {
		return true
	}
	if strings.HasPrefix(trimmed, "FAILED") || strings.HasPrefix(trimmed, "FAIL\t") {
		return true
	}
	return isLocationLine(trimmed)
}

// isLocationLine matches "path.go:12:5: message" and "path.go:12: message".
func isLocationLine(s string) bool {
	parts := strings.SplitN(s, ":", 4)
	if len(parts) < 3 || parts[0] == "" || strings.ContainsAny(parts[0], " \t") {
		return false
	}
	if !strings.Contains(parts[0], ".") || !isDigits(parts[1]) {
		return false
	}
	if len(parts) == 4 && isDigits(parts[2]) {
		return strings.HasPrefix(parts[3], " ")
	}
	return strings.HasPrefix(parts[2], " ")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
