package usecase

import (
	"fmt"
	"strings"
)

// encodeWordAlignment flattens per-word scoring tuples into the stored
// alignment string: 1-indexed, comma-joined "<position>-<tag>" pairs.
// The tag is the first tuple element, passed through unvalidated; an
// empty input yields the empty string.
func encodeWordAlignment(wordScores [][]any) string {
	if len(wordScores) == 0 {
		return ""
	}

	entries := make([]string, 0, len(wordScores))
	for i, tuple := range wordScores {
		tag := ""
		if len(tuple) > 0 {
			tag = fmt.Sprint(tuple[0])
		}
		entries = append(entries, fmt.Sprintf("%d-%s", i+1, tag))
	}

	return strings.Join(entries, ",")
}
