// Package slhalex implements the lexical and row-level parsing primitives
// shared by the segment tokenizer and the block value parsers: word
// splitting, comment stripping, and generic word/row decoding into Go
// scalars, tuples and slices.
package slhalex

import "strings"

// NextWord skips leading whitespace in s and returns the first
// whitespace-delimited word together with the remainder of the string. ok is
// false if s contains no non-whitespace content.
func NextWord(s string) (word, rest string, ok bool) {
	s = strings.TrimLeft(s, " \t\r\n\v\f")
	if s == "" {
		return "", "", false
	}
	idx := strings.IndexAny(s, " \t\r\n\v\f")
	if idx < 0 {
		return s, "", true
	}
	return s[:idx], s[idx:], true
}

// SplitComment splits s at the first '#'. data is everything before it;
// comment is the '#' and everything after it. If s has no '#', comment is
// empty.
func SplitComment(s string) (data, comment string) {
	idx := strings.IndexByte(s, '#')
	if idx < 0 {
		return s, ""
	}
	return s[:idx], s[idx:]
}

// IsBlankOrComment reports whether the trimmed line is empty or begins with
// '#'.
func IsBlankOrComment(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}
