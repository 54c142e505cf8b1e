package util

import "strings"

// ContainsFold reports whether any element of src equals v ignoring case.
func ContainsFold(src []string, v string) bool {
	for _, s := range src {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}

// ContainsAnySubstring reports whether s contains any of the given
// substrings.
func ContainsAnySubstring(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
