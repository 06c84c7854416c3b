// Package label assigns short keyboard labels to an ordered document
// list. Labels are mnemonic where possible (first letter of the
// filename), unique always, and deterministic for a given input.
package label

import (
	"strings"
	"unicode"

	"tableflip.dev/docket/pkg/name"
)

// Alphabet is the ordered set of single-character keys available for
// labels. Order matters: fallback assignment consumes keys strictly in
// alphabet order, and two-character labels are generated row-major from
// the same order.
type Alphabet []string

// DefaultAlphabet returns lowercase a-z, then uppercase A-Z, then 0-9.
func DefaultAlphabet() Alphabet {
	keys := make(Alphabet, 0, 62)
	for r := 'a'; r <= 'z'; r++ {
		keys = append(keys, string(r))
	}
	for r := 'A'; r <= 'Z'; r++ {
		keys = append(keys, string(r))
	}
	for r := '0'; r <= '9'; r++ {
		keys = append(keys, string(r))
	}
	return keys
}

// Assignment maps 1-based item positions to labels. Unlabeled lists the
// positions left without a label because every candidate was exhausted;
// callers render those items without a selectable key.
type Assignment struct {
	Labels    map[int]string
	Unlabeled []int
}

// Option adjusts a single Assign call.
type Option func(*options)

type options struct {
	reservedIndex int
	reservedKey   string
}

// WithReservation pins key to the 1-based index before any other
// assignment happens. The reserved key is never given to another index.
func WithReservation(index int, key string) Option {
	return func(o *options) {
		o.reservedIndex = index
		o.reservedKey = key
	}
}

// charGroup collects the items sharing a first character, in first-seen
// order. A slice (not a map) carries the groups so iteration order is
// the scan order; see Assign.
type charGroup struct {
	char    rune
	indices []int
}

// Assign labels every path in order. paths are document paths; the
// mnemonic phase keys off the first alphanumeric character of each base
// filename. The result is recomputed from scratch on every call.
func Assign(paths []string, alphabet Alphabet, opts ...Option) Assignment {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	asn := Assignment{Labels: make(map[int]string, len(paths))}
	used := make(map[string]bool, len(paths))

	reserved := o.reservedKey != "" && o.reservedIndex >= 1 && o.reservedIndex <= len(paths)
	if reserved {
		asn.Labels[o.reservedIndex] = o.reservedKey
		used[o.reservedKey] = true
	}

	// Single scan: bucket items by lowercased first character. Groups
	// live in a slice so later phases iterate them in first-seen order;
	// iterating a map here would make assignments run-dependent.
	groupAt := make(map[rune]int)
	var groups []charGroup
	for i, p := range paths {
		idx := i + 1
		if reserved && idx == o.reservedIndex {
			continue
		}
		r, ok := name.FirstAlnum(p)
		if !ok {
			continue
		}
		r = unicode.ToLower(r)
		g, seen := groupAt[r]
		if !seen {
			g = len(groups)
			groupAt[r] = g
			groups = append(groups, charGroup{char: r})
		}
		groups[g].indices = append(groups[g].indices, idx)
	}

	// Mnemonic phase: a singleton claims whichever case of its character
	// is free. In a shared group the first member to succeed burns both
	// cases, so at most one member keeps the mnemonic and the rest wait
	// for the fallback phase. Second letters are never tried.
	for _, g := range groups {
		if len(g.indices) == 1 {
			tryCharacter(g.char, alphabet, used, asn.Labels, g.indices[0], false)
			continue
		}
		for _, idx := range g.indices {
			if tryCharacter(g.char, alphabet, used, asn.Labels, idx, true) {
				break
			}
		}
	}

	// Fallback phase: unused keys in fixed alphabet order.
	next := 0
	for i := range paths {
		idx := i + 1
		if _, done := asn.Labels[idx]; done || (reserved && idx == o.reservedIndex) {
			continue
		}
		for next < len(alphabet) && used[alphabet[next]] {
			next++
		}
		if next < len(alphabet) {
			asn.Labels[idx] = alphabet[next]
			used[alphabet[next]] = true
			continue
		}
		key, ok := nextPair(alphabet, used)
		if !ok {
			asn.Unlabeled = append(asn.Unlabeled, idx)
			continue
		}
		asn.Labels[idx] = key
		used[key] = true
	}

	return asn
}

// tryCharacter attempts lowercase then uppercase of c against the
// alphabet, claiming the first available form. With burnBoth set, a
// success also retires the other case so no later phase hands it out.
func tryCharacter(c rune, alphabet Alphabet, used map[string]bool, labels map[int]string, idx int, burnBoth bool) bool {
	lower := string(unicode.ToLower(c))
	upper := string(unicode.ToUpper(c))
	for _, key := range []string{lower, upper} {
		if !contains(alphabet, key) || used[key] {
			continue
		}
		labels[idx] = key
		used[key] = true
		if burnBoth {
			used[lower] = true
			used[upper] = true
		}
		return true
	}
	return false
}

// nextPair yields the first unused two-character label in row-major
// order over the alphabet. Candidates are bounded by M*M, so exhaustion
// terminates rather than spinning.
func nextPair(alphabet Alphabet, used map[string]bool) (string, bool) {
	m := len(alphabet)
	for n := 0; n < m*m; n++ {
		key := alphabet[n/m] + alphabet[n%m]
		if !used[key] {
			return key, true
		}
	}
	return "", false
}

func contains(alphabet Alphabet, key string) bool {
	for _, k := range alphabet {
		if k == key {
			return true
		}
	}
	return false
}

// ParseAlphabet builds an Alphabet from a string of keys, one label key
// per rune, dropping whitespace and duplicates.
func ParseAlphabet(s string) Alphabet {
	var keys Alphabet
	seen := make(map[rune]bool)
	for _, r := range s {
		if unicode.IsSpace(r) || seen[r] {
			continue
		}
		seen[r] = true
		keys = append(keys, string(r))
	}
	return keys
}

// String renders the alphabet as one compact run of keys.
func (a Alphabet) String() string {
	return strings.Join(a, "")
}
