package name

import "unicode"

// FirstAlnum returns the first alphanumeric character of the base
// filename of path, scanning left to right. The second result is false
// when the filename has no alphanumeric character at all.
func FirstAlnum(path string) (rune, bool) {
	for _, r := range Filename(path) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r, true
		}
	}
	return 0, false
}
