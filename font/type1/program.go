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

package type1

import (
	"bytes"
	"math"
	"slices"
	"unicode/utf8"

	"golang.org/x/exp/maps"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/postscript/afm"
	"seehuhn.de/go/postscript/psenc"
	pst1 "seehuhn.de/go/postscript/type1"
	"seehuhn.de/go/postscript/type1/names"
	"seehuhn.de/go/sfnt/os2"

	"seehuhn.de/go/pdffont/font"
	"seehuhn.de/go/pdffont/pdf"
)

// Program is a Type 1 font program.
//
// Programs are created from PostScript Type 1 fonts using
// [FromPostScript], from font metrics alone using [FromAFM], or from the
// font dictionary of an existing PDF file using [Import].
type Program struct {
	byCode [256]*font.Glyph
	byRune map[rune]*font.Glyph

	metrics font.Metrics
	names   font.Names
	id      font.Identification
	flags   font.Flags

	builtIn      bool
	fontSpecific bool

	psFont  *pst1.Font
	data    []byte
	lengths []int

	// the font file of an imported font
	fontFileKey pdf.Name
	fontFile    pdf.Reference
}

var _ font.Program = (*Program)(nil)

func newProgram(fontName string) *Program {
	return &Program{
		byRune: make(map[rune]*font.Glyph),
		names:  font.Names{FontName: fontName},
	}
}

// FromPostScript creates a font program for embedding a PostScript Type 1
// font.  The font metrics are optional.  If they are given, they are used
// for glyph widths and for the vertical metrics of the font.
func FromPostScript(psFont *pst1.Font, metrics *afm.Metrics) (*Program, error) {
	if !isConsistent(psFont, metrics) {
		return nil, &font.InvalidFontError{
			SubSystem: "font/type1",
			Reason:    "inconsistent Type 1 font metrics",
		}
	}

	p := newProgram(psFont.FontName)
	p.psFont = psFont
	p.fontSpecific = isFontSpecific(psFont.Encoding)

	glyphNames := maps.Keys(psFont.Glyphs)
	slices.Sort(glyphNames)
	for _, name := range glyphNames {
		var width float64
		if metrics != nil {
			width = metrics.GlyphWidthPDF(name)
		} else {
			width = psFont.GlyphWidthPDF(name)
		}
		var bbox *rect.Rect
		if b := psFont.GlyphBBoxPDF(name); b != (rect.Rect{}) {
			bbox = &b
		}
		p.addGlyph(name, codeOf(psFont.Encoding, name), width, bbox)
	}

	q := 1000 * psFont.FontMatrix[0]
	m := &p.metrics
	m.BBox = psFont.FontBBoxPDF()
	m.ItalicAngle = psFont.ItalicAngle
	m.StemV = psFont.Private.StdVW * q
	m.StemH = psFont.Private.StdHW * q
	if metrics != nil {
		m.TypoAscender = metrics.Ascent
		m.TypoDescender = metrics.Descent
		m.CapHeight = metrics.CapHeight
		m.XHeight = metrics.XHeight
	} else {
		m.TypoAscender = m.BBox.URy
		m.TypoDescender = m.BBox.LLy
		m.CapHeight = p.glyphTop('H', m.TypoAscender)
		m.XHeight = p.glyphTop('x', 0)
	}

	if psFont.FamilyName != "" {
		p.names.FamilyName = [][]string{{"3", "1", "1033", psFont.FamilyName}}
	}
	p.names.Weight = os2.WeightFromString(psFont.Weight)

	var flags font.Flags
	if psFont.IsFixedPitch {
		flags |= font.FlagFixedPitch
	}
	if psFont.ItalicAngle != 0 {
		flags |= font.FlagItalic
	}
	if psFont.Private.ForceBold {
		flags |= font.FlagForceBold
	}
	p.flags = flags.Symbolic(p.fontSpecific)

	return p, nil
}

// isConsistent checks whether the font metrics are compatible with the
// given font.
func isConsistent(F *pst1.Font, M *afm.Metrics) bool {
	if M == nil {
		return true
	}
	qh := F.FontMatrix[0] * 1000
	for name, glyph := range F.Glyphs {
		metrics, ok := M.Glyphs[name]
		if !ok {
			return false
		}
		if math.Abs(glyph.WidthX*qh-metrics.WidthX) > 0.5 {
			return false
		}
	}
	return true
}

// FromAFM creates a font program from font metrics alone.  Such programs
// cannot be embedded.  If the font is one of the standard 14 fonts, the
// program is marked as built-in.
func FromAFM(metrics *afm.Metrics) *Program {
	p := newProgram(metrics.FontName)
	p.fontSpecific = isFontSpecific(metrics.Encoding)
	p.builtIn = font.IsStandard(metrics.FontName)

	glyphNames := maps.Keys(metrics.Glyphs)
	slices.Sort(glyphNames)
	for _, name := range glyphNames {
		gi := metrics.Glyphs[name]
		var bbox *rect.Rect
		if b := gi.BBox; b != (rect.Rect{}) {
			bbox = &b
		}
		p.addGlyph(name, codeOf(metrics.Encoding, name), gi.WidthX, bbox)
	}

	p.metrics = font.Metrics{
		TypoAscender:  metrics.Ascent,
		TypoDescender: metrics.Descent,
		CapHeight:     metrics.CapHeight,
		XHeight:       metrics.XHeight,
		ItalicAngle:   metrics.ItalicAngle,
		BBox:          metrics.FontBBoxPDF(),
	}

	var flags font.Flags
	if metrics.IsFixedPitch {
		flags |= font.FlagFixedPitch
	}
	if metrics.ItalicAngle != 0 {
		flags |= font.FlagItalic
	}
	p.flags = flags.Symbolic(p.fontSpecific)

	return p
}

// addGlyph adds a glyph to the program.  If several glyphs have the same
// code or Unicode value, the first one is kept.
func (p *Program) addGlyph(name string, code int, width float64, bbox *rect.Rect) *font.Glyph {
	g := &font.Glyph{
		Code:  code,
		Name:  name,
		Width: width,
		BBox:  bbox,
	}
	rr := []rune(names.ToUnicode(name, p.names.FontName))
	if len(rr) == 1 && rr[0] != utf8.RuneError {
		g.Unicode = rr[0]
		if _, seen := p.byRune[g.Unicode]; !seen {
			p.byRune[g.Unicode] = g
		}
	}
	if g.HasCode() && p.byCode[code] == nil {
		p.byCode[code] = g
	}
	return g
}

// glyphTop returns the top of the bounding box of the glyph for r.
func (p *Program) glyphTop(r rune, fallback float64) float64 {
	if g := p.byRune[r]; g != nil && g.BBox != nil {
		return g.BBox.URy
	}
	return fallback
}

// codeOf returns the first code of a glyph in an encoding vector, or -1.
func codeOf(encoding []string, name string) int {
	for code, n := range encoding {
		if n == name && code < 256 {
			return code
		}
	}
	return -1
}

// isFontSpecific reports whether a built-in encoding differs from the
// Adobe standard encoding.
func isFontSpecific(encoding []string) bool {
	return !slices.Equal(encoding, psenc.StandardEncoding[:])
}

// Glyph implements the [font.Program] interface.
func (p *Program) Glyph(r rune) *font.Glyph {
	return p.byRune[r]
}

// GlyphByCode implements the [font.Program] interface.
func (p *Program) GlyphByCode(code int) *font.Glyph {
	if code < 0 || code > 255 {
		return nil
	}
	return p.byCode[code]
}

// Metrics implements the [font.Program] interface.
func (p *Program) Metrics() *font.Metrics {
	return &p.metrics
}

// Names implements the [font.Program] interface.
func (p *Program) Names() *font.Names {
	return &p.names
}

// Identification implements the [font.Program] interface.
func (p *Program) Identification() *font.Identification {
	return &p.id
}

// PDFFlags implements the [font.Program] interface.
func (p *Program) PDFFlags() font.Flags {
	return p.flags
}

// IsBuiltIn implements the [font.Program] interface.
func (p *Program) IsBuiltIn() bool {
	return p.builtIn
}

// IsFontSpecific implements the [font.Program] interface.
func (p *Program) IsFontSpecific() bool {
	return p.fontSpecific
}

// StreamBytes returns the font file data in the format used by PDF
// FontFile streams: the clear text part followed by the binary part.
// The result is nil if the program has no font data.
func (p *Program) StreamBytes() ([]byte, error) {
	if p.psFont == nil {
		return nil, nil
	}
	if p.data == nil {
		buf := &bytes.Buffer{}
		l1, l2, err := p.psFont.WritePDF(buf)
		if err != nil {
			return nil, err
		}
		p.data = buf.Bytes()
		p.lengths = []int{l1, l2, 0}
	}
	return p.data, nil
}

// StreamLengths returns the values of the Length1, Length2 and Length3
// entries of the font file stream.
func (p *Program) StreamLengths() []int {
	_, err := p.StreamBytes()
	if err != nil {
		return nil
	}
	return p.lengths
}
