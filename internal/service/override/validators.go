package override

// isValidCode accepts exactly six ASCII digits, the only shape Issue ever
// produces.
func isValidCode(code string) bool {
	if len(code) != 6 {
		return false
	}
	for _, char := range code {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}
