package unit

import "strings"

func isValidUnitNumber(unitNumber string) bool {
	return strings.TrimSpace(unitNumber) != ""
}

func isValidCompanyName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidInterval(km float64) bool {
	return km >= 0
}
