package glyph

import "fmt"

// Glyph pairs a marker symbol with the state it flags next to a
// document, plus the legend text shown by `docket keys`.
type Glyph struct {
	Key       string
	Symbol    string
	Meaning   string
	Indicator bool
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
)

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

// DefaultGlyphs returns the marker and indicator legend.
func DefaultGlyphs() []Glyph {
	g := make([]Glyph, 0, 7)

	g = append(g, Glyph{
		Key:     "+",
		Symbol:  "+",
		Meaning: "document has unsaved changes",
	}, Glyph{
		Key:     "=",
		Symbol:  "=",
		Meaning: "document is locked (never evicted)",
	}, Glyph{
		Key:     "o",
		Symbol:  "●",
		Meaning: "document is visible in a window",
	}, Glyph{
		Key:     " ",
		Symbol:  " ",
		Meaning: "no state",
	}, Glyph{
		Key:       "<",
		Symbol:    "‹",
		Meaning:   "more documents before this page",
		Indicator: true,
	}, Glyph{
		Key:       ">",
		Symbol:    "›",
		Meaning:   "more documents after this page",
		Indicator: true,
	}, Glyph{
		Key:       "..",
		Symbol:    "…",
		Meaning:   "name truncated to fit the strip",
		Indicator: true,
	})

	return g
}

func (g Glyph) String() string {
	return g.Symbol
}

type Marker int

const (
	Modified Marker = iota
	Locked
	Visible
	Plain
	MoreBefore
	MoreAfter
	Truncated
)

func (m Marker) Glyph() Glyph {
	return DefaultGlyphs()[m]
}

func (m Marker) String() string {
	return m.Glyph().Symbol
}

// ForState picks the roster marker for a document's flags; modified wins
// over locked, locked over visible.
func ForState(modified, locked, visible bool) Marker {
	switch {
	case modified:
		return Modified
	case locked:
		return Locked
	case visible:
		return Visible
	}
	return Plain
}
