package bstr

import "github.com/charlievieth/strcase"

// FindFold returns the index of the first occurrence of needle in haystack
// under Unicode simple case folding, or -1. All invalid UTF-8 sequences
// compare equal to each other, as in [strings.EqualFold].
func FindFold(haystack, needle []byte) int {
	return strcase.Index(viewString(haystack), viewString(needle))
}

// RFindFold is like [FindFold] but returns the last occurrence.
func RFindFold(haystack, needle []byte) int {
	return strcase.LastIndex(viewString(haystack), viewString(needle))
}

// ContainsFold reports whether needle occurs in haystack under simple case
// folding.
func ContainsFold(haystack, needle []byte) bool {
	return strcase.Contains(viewString(haystack), viewString(needle))
}

// EqualFold reports whether a and b are equal under simple case folding.
func EqualFold(a, b []byte) bool {
	return strcase.EqualFold(viewString(a), viewString(b))
}

// HasPrefixFold reports whether b begins with prefix under simple case
// folding.
func HasPrefixFold(b, prefix []byte) bool {
	return strcase.HasPrefix(viewString(b), viewString(prefix))
}
