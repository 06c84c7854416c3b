package name

import (
	"strings"

	"github.com/mitchellh/go-homedir"
)

// Resolve computes the shortest display name that distinguishes every
// path from the others it is shown with. Paths whose filenames are unique
// map to the bare filename; colliding filenames grow backwards through
// their directory components until each member of the group is unique.
// A home-directory prefix is contracted to "~" after uniqueness is
// established, so contraction can never reintroduce a collision of its own.
func Resolve(paths []string) map[string]string {
	groups := groupByFilename(paths)

	out := make(map[string]string, len(paths))
	for _, g := range groups {
		if len(g.members) == 1 {
			out[g.members[0]] = contractHome(g.filename)
			continue
		}
		for path, candidate := range disambiguate(g.members) {
			out[path] = contractHome(candidate)
		}
	}
	return out
}

type group struct {
	filename string
	members  []string
}

// groupByFilename buckets paths by trailing component, preserving
// first-seen group order and member order. Duplicate input paths collapse
// to one member since the result is keyed by path.
func groupByFilename(paths []string) []group {
	index := make(map[string]int, len(paths))
	var groups []group
	seen := make(map[string]bool, len(paths))
	for _, p := range paths {
		if seen[p] {
			continue
		}
		seen[p] = true
		fname := Filename(p)
		i, ok := index[fname]
		if !ok {
			i = len(groups)
			index[fname] = i
			groups = append(groups, group{filename: fname})
		}
		groups[i].members = append(groups[i].members, p)
	}
	return groups
}

// disambiguate assigns each member of a filename-colliding group its
// minimal unique trailing suffix. Uniqueness at a depth is judged against
// the whole group, not just members resolved so far.
func disambiguate(members []string) map[string]string {
	split := make([][]string, len(members))
	for i, p := range members {
		split[i] = Components(p)
	}

	out := make(map[string]string, len(members))
	for i, p := range members {
		out[p] = uniqueSuffix(i, split, p)
	}
	return out
}

func uniqueSuffix(self int, split [][]string, original string) string {
	own := split[self]
	for depth := 1; depth <= len(own); depth++ {
		candidate := suffix(own, depth)
		unique := true
		for j, other := range split {
			if j == self {
				continue
			}
			if suffix(other, depth) == candidate {
				unique = false
				break
			}
		}
		if unique {
			return candidate
		}
	}
	// Two literally identical paths; nothing distinguishes them.
	return original
}

func suffix(components []string, depth int) string {
	if depth >= len(components) {
		return strings.Join(components, "/")
	}
	return strings.Join(components[len(components)-depth:], "/")
}

// Components splits a path on both separator styles, dropping empty
// segments from doubled or leading separators.
func Components(path string) []string {
	parts := strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	if len(parts) == 0 {
		return []string{path}
	}
	return parts
}

// Filename returns the trailing path component. Malformed or empty paths
// degrade to the raw string.
func Filename(path string) string {
	parts := Components(path)
	return parts[len(parts)-1]
}

func contractHome(s string) string {
	home, err := homedir.Dir()
	if err != nil || home == "" {
		return s
	}
	if strings.HasPrefix(s, home) {
		return "~" + s[len(home):]
	}
	return s
}
