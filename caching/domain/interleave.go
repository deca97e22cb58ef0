package domain

import (
	"strings"
)

// Interleave merges two equal-length ordered lists by alternating elements
// at each position, joined by ", ":
//
//	Interleave([A, B, C], [X, Y, Z]) == "A, X, B, Y, C, Z"
//
// The caller guarantees equal lengths; extra elements in either list are
// ignored.
func Interleave(list1, list2 []string) string {
	n := len(list1)
	if len(list2) < n {
		n = len(list2)
	}

	interleaved := make([]string, 0, 2*n)
	for i := 0; i < n; i++ {
		interleaved = append(interleaved, list1[i], list2[i])
	}

	return strings.Join(interleaved, ", ")
}
