package domain

import "strings"

// IsCASNumber reports whether a synonym string is shaped like a CAS registry
// number: hyphen-separated groups of digits, exactly three groups, with the
// final check-digit group exactly one digit long.
func IsCASNumber(s string) bool {
	if !strings.Contains(s, "-") {
		return false
	}
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return false
	}
	for _, part := range parts {
		if part == "" {
			return false
		}
		for _, r := range part {
			if r < '0' || r > '9' {
				return false
			}
		}
	}
	return len(parts[2]) == 1
}

// FindCASNumber scans candidate synonym strings in order and returns the
// first one that qualifies as a CAS number, or NotAvailable if none do.
func FindCASNumber(synonyms []string) string {
	for _, syn := range synonyms {
		if IsCASNumber(syn) {
			return syn
		}
	}
	return NotAvailable
}
