package encode

import (
	"github.com/fatih/color"

	"github.com/vellumjson/vellum/value"
)

// ColorAttr names a syntactic role within an encoded document, independent
// of the value.Kind it happens to be coloring (a Kind x ColorAttr pair
// keys into a Colors table).
type ColorAttr int

const (
	ValueColor ColorAttr = iota
	KeyColor
	PunctColor
)

type colorable struct {
	kind value.Kind
	attr ColorAttr
}

// Colors maps a (Kind, ColorAttr) pair to a string decorator. It mirrors
// the structure of a terminal syntax highlighter: most pairs fall back to
// Default, and only the combinations worth distinguishing get an entry.
type Colors struct {
	Default func(string, ...interface{}) string
	entries map[colorable]func(string, ...interface{}) string
}

// NewColors builds a reasonable default palette for an ANSI-capable
// terminal.
func NewColors() *Colors {
	c := &Colors{
		Default: passthrough,
		entries: map[colorable]func(string, ...interface{}) string{},
	}
	c.entries[colorable{value.String, ValueColor}] = color.GreenString
	c.entries[colorable{value.Int, ValueColor}] = color.CyanString
	c.entries[colorable{value.Uint, ValueColor}] = color.CyanString
	c.entries[colorable{value.Float, ValueColor}] = color.CyanString
	c.entries[colorable{value.Bool, ValueColor}] = color.YellowString
	c.entries[colorable{value.Null, ValueColor}] = color.MagentaString
	c.entries[colorable{value.Object, KeyColor}] = color.New(color.FgBlue, color.Bold).SprintfFunc()
	for k := range c.entries {
		if k.attr == ValueColor {
			c.entries[colorable{k.kind, PunctColor}] = color.New(color.Faint).SprintfFunc()
		}
	}
	return c
}

func passthrough(v string, _ ...interface{}) string { return v }

// Color applies the decorator registered for (kind, attr) to s, or returns
// s unchanged when c is nil or has no entry for the pair.
func (c *Colors) Color(kind value.Kind, attr ColorAttr, s string) string {
	if c == nil {
		return s
	}
	f := c.entries[colorable{kind, attr}]
	if f == nil {
		f = c.Default
	}
	return f(s)
}
