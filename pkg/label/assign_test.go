package label

import (
	"fmt"
	"reflect"
	"testing"
)

func TestAssignMnemonicFirstLetters(t *testing.T) {
	asn := Assign([]string{"a/foo.txt", "b/foo.txt", "bar.txt"}, ParseAlphabet("abcdefghijklmnopqrstuvwxyz"))
	if asn.Labels[3] != "b" {
		t.Errorf("bar.txt label = %q, want b", asn.Labels[3])
	}
	if asn.Labels[1] != "f" {
		t.Errorf("first foo.txt label = %q, want f", asn.Labels[1])
	}
	// The losing group member falls back to the next unused key; it must
	// not receive the uppercase form of the contested character.
	if asn.Labels[2] == "f" || asn.Labels[2] == "F" {
		t.Errorf("second foo.txt label = %q, want a fallback key", asn.Labels[2])
	}
	if len(asn.Unlabeled) != 0 {
		t.Errorf("unexpected unlabeled indices %v", asn.Unlabeled)
	}
	assertDistinct(t, asn)
}

func TestAssignSingletonFallsBackToUppercase(t *testing.T) {
	// "m" is reserved away, so the singleton m-group takes "M".
	asn := Assign([]string{"main.go", "other.go"}, DefaultAlphabet(), WithReservation(2, "m"))
	if asn.Labels[2] != "m" {
		t.Fatalf("reserved index label = %q, want m", asn.Labels[2])
	}
	if asn.Labels[1] != "M" {
		t.Errorf("main.go label = %q, want M", asn.Labels[1])
	}
}

func TestAssignReservationExcludesKey(t *testing.T) {
	paths := []string{"x.txt", "y.txt", "z.txt"}
	asn := Assign(paths, DefaultAlphabet(), WithReservation(2, "z"))
	if asn.Labels[2] != "z" {
		t.Fatalf("reserved index label = %q, want z", asn.Labels[2])
	}
	for idx, l := range asn.Labels {
		if idx != 2 && l == "z" {
			t.Errorf("reserved key leaked to index %d", idx)
		}
	}
	// z.txt cannot take its mnemonic lowercase; uppercase is next.
	if asn.Labels[3] != "Z" {
		t.Errorf("z.txt label = %q, want Z", asn.Labels[3])
	}
	assertDistinct(t, asn)
}

func TestAssignNonAlnumFilenames(t *testing.T) {
	asn := Assign([]string{"!!!", "###", "a.txt"}, ParseAlphabet("abc"))
	if asn.Labels[3] != "a" {
		t.Errorf("a.txt label = %q, want a", asn.Labels[3])
	}
	got := []string{asn.Labels[1], asn.Labels[2]}
	want := []string{"b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("fallback labels = %v, want %v", got, want)
	}
}

func TestAssignTwoCharacterOverflow(t *testing.T) {
	alphabet := ParseAlphabet("abcdefghijklmnopqrstuvwxyz")
	paths := make([]string, 30)
	for i := range paths {
		paths[i] = fmt.Sprintf("dir/file%02d.txt", i)
	}
	asn := Assign(paths, alphabet)
	if len(asn.Unlabeled) != 0 {
		t.Fatalf("unexpected unlabeled indices %v", asn.Unlabeled)
	}
	pairs := 0
	for _, l := range asn.Labels {
		switch len(l) {
		case 1:
		case 2:
			pairs++
		default:
			t.Errorf("unexpected label %q", l)
		}
	}
	if pairs != 4 {
		t.Errorf("expected 4 two-character labels for 30 items over 26 keys, got %d", pairs)
	}
	for _, want := range []string{"aa", "ab", "ac", "ad"} {
		found := false
		for _, l := range asn.Labels {
			if l == want {
				found = true
			}
		}
		if !found {
			t.Errorf("expected row-major pair %q to be assigned", want)
		}
	}
	assertDistinct(t, asn)
}

func TestAssignExhaustionReportsUnlabeled(t *testing.T) {
	alphabet := ParseAlphabet("ab")
	paths := make([]string, 8) // capacity is 2 + 4
	for i := range paths {
		paths[i] = fmt.Sprintf("f%d", i)
	}
	asn := Assign(paths, alphabet)
	if len(asn.Labels) != 6 {
		t.Errorf("labeled %d items, want 6", len(asn.Labels))
	}
	if len(asn.Unlabeled) != 2 {
		t.Errorf("unlabeled = %v, want 2 indices", asn.Unlabeled)
	}
	assertDistinct(t, asn)
}

func TestAssignDeterministic(t *testing.T) {
	paths := []string{"zeta.go", "zone.go", "zip.go", "alpha.go", "axe.go", "!sym"}
	a := Assign(paths, DefaultAlphabet())
	for i := 0; i < 20; i++ {
		b := Assign(paths, DefaultAlphabet())
		if !reflect.DeepEqual(a.Labels, b.Labels) || !reflect.DeepEqual(a.Unlabeled, b.Unlabeled) {
			t.Fatalf("assignment differed between runs: %v vs %v", a.Labels, b.Labels)
		}
	}
}

func assertDistinct(t *testing.T, asn Assignment) {
	t.Helper()
	seen := make(map[string]int)
	for idx, l := range asn.Labels {
		if prev, dup := seen[l]; dup {
			t.Errorf("label %q assigned to both %d and %d", l, prev, idx)
		}
		seen[l] = idx
	}
}
