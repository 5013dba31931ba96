// Package typematch decides whether an exported identifier "looks like" a
// type-level binding based on naming conventions.
//
// UI component libraries routinely export props/config objects as plain
// value bindings (export const ButtonProps = ...). Without full type
// inference the name is the only available signal, so classification is a
// best-effort heuristic over a configurable pattern set.
package typematch

import (
	"fmt"
	"regexp"
)

// DefaultPatterns are the naming conventions treated as type-level exports.
// All patterns are case-insensitive.
var DefaultPatterns = []string{
	`(?i)Api$`,
	`(?i)Props$`,
	`(?i)Config$`,
	`(?i)Context$`,
	`(?i)Provider$`,
	`(?i)Store$`,
	`(?i)Ref$`,
	`(?i)Options$`,
	`(?i)^Use`,
}

// Matcher reports whether an identifier name matches any of its patterns.
type Matcher struct {
	patterns []*regexp.Regexp
}

// New compiles the given patterns into a Matcher. A nil slice selects
// DefaultPatterns; an explicit empty slice yields a matcher that never
// matches.
func New(patterns []string) (*Matcher, error) {
	if patterns == nil {
		patterns = DefaultPatterns
	}

	compiled := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("compile type pattern %q: %w", pattern, err)
		}

		compiled = append(compiled, re)
	}

	return &Matcher{patterns: compiled}, nil
}

// Default returns a Matcher over DefaultPatterns.
func Default() *Matcher {
	m, err := New(nil)
	if err != nil {
		panic(err) // DefaultPatterns are compile-checked by tests
	}

	return m
}

// Match reports whether name matches any configured pattern.
func (m *Matcher) Match(name string) bool {
	for _, re := range m.patterns {
		if re.MatchString(name) {
			return true
		}
	}

	return false
}
