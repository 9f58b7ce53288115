// seehuhn.de/go/pdffont - single-byte font support for PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package encoding

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"seehuhn.de/go/postscript/type1/names"
)

// Table is the encoding table of a simple font.
//
// The glyph name of a code is taken from the Differences overlay if the
// code has an override, and from the base encoding otherwise.  Once a table
// is frozen, any attempt to modify it panics.
type Table struct {
	base  Base
	names [256]string
	diff  [256]string

	unicode [256]rune
	mapped  [256]bool

	numDiff  int
	dingbats bool
	frozen   bool

	// rev maps Unicode values to codes.  It is built on demand and
	// cleared whenever the table changes.
	rev map[rune]byte
}

// New creates a table for the named encoding.
//
// The following names are recognised, ignoring case: "", "WinAnsiEncoding"
// and "Cp1252" for WinAnsiEncoding; "MacRomanEncoding" and "MacRoman";
// "MacExpertEncoding"; "StandardEncoding"; "Symbol"; "ZapfDingbats";
// "FontSpecific".  In addition, a custom encoding can be given in the form
// "# simple <code> <glyph name> ...", which assigns the glyph names to
// consecutive codes, starting at the given code.  Glyph names in this form
// may be followed by "=<hex>" to give an explicit Unicode value.
func New(name string) (*Table, error) {
	if strings.HasPrefix(name, "#") {
		return parseCustom(name)
	}
	switch strings.ToLower(name) {
	case "", "winansiencoding", "winansi", "cp1252":
		return NewBase(WinAnsi), nil
	case "macromanencoding", "macroman":
		return NewBase(MacRoman), nil
	case "macexpertencoding", "macexpert":
		return NewBase(MacExpert), nil
	case "standardencoding", "standard":
		return NewBase(Standard), nil
	case "symbol":
		return NewBase(Symbol), nil
	case "zapfdingbats":
		return NewBase(ZapfDingbats), nil
	case "fontspecific":
		return NewFontSpecific(), nil
	}
	return nil, fmt.Errorf("unknown encoding %q", name)
}

// NewBase creates a table for one of the predefined base encodings.
func NewBase(b Base) *Table {
	if b == FontSpecific {
		return NewFontSpecific()
	}
	t := &Table{
		base:     b,
		dingbats: b == ZapfDingbats,
	}
	for code := range t.names {
		t.names[code] = NotDef
	}

	enc := b.glyphNames()
	if enc == nil {
		return t
	}
	var cm *charmap.Charmap
	switch b {
	case WinAnsi:
		cm = charmap.Windows1252
	case MacRoman:
		cm = charmap.Macintosh
	}
	for code, name := range enc.Encoding {
		t.names[code] = name
		if r, ok := baseUnicode(cm, byte(code), name, t.dingbats); ok {
			t.unicode[code] = r
			t.mapped[code] = true
		}
	}
	return t
}

// NewFontSpecific creates a font-specific table.  Such a table maps every
// code directly to the glyph with this code in the font program.
func NewFontSpecific() *Table {
	t := &Table{base: FontSpecific}
	for code := range t.names {
		t.names[code] = NotDef
	}
	return t
}

// FromToUnicode creates a custom table, where the Unicode values of the
// codes are taken from a ToUnicode mapping.  Only codes which map to a
// single Unicode character are used.
func FromToUnicode(m map[byte]string) *Table {
	t := NewBase(Custom)
	for code, text := range m {
		r, ok := singleRune(text)
		if !ok {
			continue
		}
		t.unicode[code] = r
		t.mapped[code] = true
	}
	return t
}

// baseUnicode returns the Unicode value for a code of one of the base
// encodings.  Where a character set is available, its value is used, so
// that for example WinAnsiEncoding maps code 0o240 to the non-breaking
// space.  The glyph name wins where it names a different character.
func baseUnicode(cm *charmap.Charmap, code byte, name string, dingbats bool) (rune, bool) {
	if name == NotDef {
		return 0, false
	}
	if cm != nil {
		r := cm.DecodeByte(code)
		if r != utf8.RuneError && (r != '€' || name == "Euro") {
			return r, true
		}
	}
	return glyphUnicode(name, dingbats)
}

// glyphUnicode resolves a glyph name using the Adobe Glyph List.
func glyphUnicode(name string, dingbats bool) (rune, bool) {
	if name == "" || name == NotDef {
		return 0, false
	}
	fontName := ""
	if dingbats {
		fontName = "ZapfDingbats"
	}
	rr := []rune(names.ToUnicode(name, fontName))
	if len(rr) != 1 || rr[0] == utf8.RuneError || rr[0] == 0 {
		return 0, false
	}
	return rr[0], true
}

// parseCustom parses an encoding of the form "# simple <code> <name> ...".
func parseCustom(desc string) (*Table, error) {
	ff := strings.Fields(strings.TrimPrefix(desc, "#"))
	if len(ff) < 2 || ff[0] != "simple" {
		return nil, fmt.Errorf("invalid custom encoding %q", desc)
	}
	first, err := strconv.ParseUint(ff[1], 0, 8)
	if err != nil {
		return nil, fmt.Errorf("invalid custom encoding %q: %w", desc, err)
	}

	t := NewBase(Custom)
	code := int(first)
	for _, f := range ff[2:] {
		if code > 255 {
			return nil, fmt.Errorf("invalid custom encoding %q: too many glyphs", desc)
		}
		name, hex, hasHex := strings.Cut(f, "=")
		r := rune(-1)
		if hasHex {
			x, err := strconv.ParseUint(hex, 16, 32)
			if err != nil || !utf8.ValidRune(rune(x)) {
				return nil, fmt.Errorf("invalid Unicode value %q in custom encoding", hex)
			}
			r = rune(x)
		}
		t.SetDifference(byte(code), name, r)
		code++
	}
	return t, nil
}

// Base returns the base encoding of the table.
func (t *Table) Base() Base {
	return t.base
}

// IsFontSpecific reports whether codes map directly to glyphs of the font
// program.
func (t *Table) IsFontSpecific() bool {
	return t.base == FontSpecific
}

// HasDifferences reports whether at least one code has a glyph name
// override.
func (t *Table) HasDifferences() bool {
	return t.numDiff > 0
}

// Difference returns the glyph name override for the given code,
// or the empty string if the code has no override.
func (t *Table) Difference(code byte) string {
	return t.diff[code]
}

// GlyphName returns the glyph name for a code.  Codes without a glyph
// map to [NotDef].
func (t *Table) GlyphName(code byte) string {
	if name := t.diff[code]; name != "" {
		return name
	}
	return t.names[code]
}

// Unicode returns the Unicode value for a code.  Font-specific tables
// have no Unicode values.
func (t *Table) Unicode(code byte) (rune, bool) {
	if t.IsFontSpecific() {
		return 0, false
	}
	return t.unicode[code], t.mapped[code]
}

// CanEncode reports whether r can be encoded using this table.
// Font-specific tables can encode every value.
func (t *Table) CanEncode(r rune) bool {
	if t.IsFontSpecific() {
		return true
	}
	_, ok := t.reverse()[r]
	return ok
}

// ConvertToByte returns the code for r.  If several codes map to r, the
// smallest code is used.  Font-specific tables use the low byte of r.
func (t *Table) ConvertToByte(r rune) (byte, bool) {
	if t.IsFontSpecific() {
		return byte(r), true
	}
	code, ok := t.reverse()[r]
	return code, ok
}

// SetDifference overrides the glyph name of a code.  The Unicode value of
// the code is set to r; if r is negative, the value is looked up in the
// Adobe Glyph List.  Setting a name equal to [NotDef] makes the code
// unmapped.
//
// A font-specific table turns into a custom table.
func (t *Table) SetDifference(code byte, name string, r rune) {
	if t.frozen {
		panic("encoding: table modified after the font was flushed")
	}
	if t.base == FontSpecific {
		t.base = Custom
	}
	if name == "" {
		name = NotDef
	}

	if t.diff[code] == "" {
		t.numDiff++
	}
	t.diff[code] = name

	if r < 0 {
		r, t.mapped[code] = glyphUnicode(name, t.dingbats)
	} else {
		t.mapped[code] = name != NotDef
	}
	if !t.mapped[code] {
		r = 0
	}
	t.unicode[code] = r
	t.rev = nil
}

// Freeze marks the table as read-only.
func (t *Table) Freeze() {
	t.frozen = true
}

// IsFrozen reports whether the table has been frozen.
func (t *Table) IsFrozen() bool {
	return t.frozen
}

func (t *Table) reverse() map[rune]byte {
	if t.rev != nil {
		return t.rev
	}
	rev := make(map[rune]byte, 256)
	for code := 255; code >= 0; code-- {
		if t.mapped[code] {
			rev[t.unicode[code]] = byte(code)
		}
	}
	t.rev = rev
	return rev
}
