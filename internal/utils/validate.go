package utils

// ValidInput reports whether s is non-empty and contains only ASCII letters,
// digits, whitespace, or one of . , ? !
//
// This is deliberately strict: it rejects '@', so real email addresses fail
// registration. That matches the deployed behavior and must not be loosened
// without changing the clients that depend on the same pattern.
func ValidInput(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f':
		case r == '.' || r == ',' || r == '?' || r == '!':
		default:
			return false
		}
	}
	return true
}
