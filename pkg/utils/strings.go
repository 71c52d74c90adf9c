package utils

import "strings"

// SplitCSV splits a comma-separated list, trimming each item and dropping empty ones.
func SplitCSV(s string) []string {
	var result []string

	for _, part := range strings.Split(s, ",") {
		if item := strings.TrimSpace(part); item != "" {
			result = append(result, item)
		}
	}

	return result
}
