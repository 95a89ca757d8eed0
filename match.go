package main

import "strings"

// matcher tests tripcodes against the query. It is immutable after
// construction and shared read-only across all workers.
type matcher struct {
	query    string
	agnostic bool
}

func newMatcher(query string, agnostic bool) *matcher {
	m := &matcher{query: query, agnostic: agnostic}
	if agnostic {
		m.query = foldASCII(query)
	}
	return m
}

func (m *matcher) match(trip string) bool {
	if m.agnostic {
		return containsFold(trip, m.query)
	}
	return strings.Contains(trip, m.query)
}

// foldASCII lowercases ASCII letters only. Tripcodes and queries never
// leave the crypt alphabet, so full Unicode folding is wasted work.
func foldASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		b[i] = lowerASCII(c)
	}
	return string(b)
}

func lowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 0x20
	}
	return c
}

// containsFold reports whether needle occurs in haystack ignoring ASCII
// case. The haystack and the needle fold independently; needle must
// already be folded.
func containsFold(haystack, needle string) bool {
	if len(needle) == 0 {
		return true
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		j := 0
		for j < len(needle) && lowerASCII(haystack[i+j]) == needle[j] {
			j++
		}
		if j == len(needle) {
			return true
		}
	}
	return false
}
