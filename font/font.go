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

package font

import (
	"github.com/npillmayer/schuko/tracing"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/sfnt/os2"
)

// Glyph describes one glyph of a font program.
// Widths and bounding boxes are given in PDF glyph space units,
// i.e. 1/1000 of the text space unit.
type Glyph struct {
	// Code is the code of the glyph in the built-in encoding of the font
	// program, or -1 if the glyph is not encoded.
	Code int

	// Name is the PostScript name of the glyph.
	Name string

	// Unicode is the character represented by the glyph, or 0 if this is
	// not known.
	Unicode rune

	Width float64

	// BBox is the bounding box of the glyph, or nil if this is not known.
	BBox *rect.Rect
}

// HasCode reports whether the glyph has a code in the built-in encoding.
func (g *Glyph) HasCode() bool {
	return g.Code >= 0 && g.Code < 256
}

// Placeholder returns a zero-width glyph for a character which has no glyph
// in the font program.  Placeholders are never shown.
func Placeholder(r rune) *Glyph {
	return &Glyph{Code: -1, Unicode: r}
}

// IsPlaceholder reports whether g has been created by [Placeholder].
func (g *Glyph) IsPlaceholder() bool {
	return g.Code < 0 && g.Name == ""
}

// Metrics contains the global metrics of a font program.
// All values are given in PDF glyph space units.
type Metrics struct {
	TypoAscender  float64
	TypoDescender float64
	CapHeight     float64
	XHeight       float64
	ItalicAngle   float64
	StemV         float64
	StemH         float64
	BBox          rect.Rect
}

// Names contains the naming information of a font program.
type Names struct {
	FontName string

	// FamilyName lists the family name records of the font.  Each record
	// has the form platform ID, encoding ID, language ID, name.
	FamilyName [][]string

	Weight os2.Weight
	Width  os2.Width
}

// Family returns the family name from the first family name record,
// or the empty string if no complete record is present.
func (n *Names) Family() string {
	if len(n.FamilyName) == 0 || len(n.FamilyName[0]) < 4 {
		return ""
	}
	return n.FamilyName[0][3]
}

// Identification contains classification data for a font program.
type Identification struct {
	// Panose is the 12-byte PANOSE classification, as used in the Style
	// dictionary of PDF font descriptors.
	Panose []byte
}

// Program represents a font program, which provides glyphs and metrics for
// a simple font.
//
// The values returned by Metrics, Names and Identification are owned by the
// program and may be modified by the caller, for example to reflect values
// read from an existing font descriptor.
type Program interface {
	// Glyph returns the glyph for the given character, or nil if the font
	// has no such glyph.
	Glyph(r rune) *Glyph

	// GlyphByCode returns the glyph with the given code in the built-in
	// encoding of the font, or nil if no glyph has this code.
	GlyphByCode(code int) *Glyph

	Metrics() *Metrics
	Names() *Names
	Identification() *Identification

	// PDFFlags returns the font descriptor flags of the font program.
	PDFFlags() Flags

	// StreamBytes returns the data of the font file to embed.
	// The result is nil if the font cannot be embedded.
	StreamBytes() ([]byte, error)

	// StreamLengths returns the lengths of the segments of the font file,
	// as used for the Length1, Length2, ... entries of the font file
	// stream.
	StreamLengths() []int

	// IsBuiltIn reports whether the font is one of the standard 14 fonts,
	// without embedded data.
	IsBuiltIn() bool

	// IsFontSpecific reports whether the built-in encoding of the font is
	// a font-specific one, i.e. whether the glyphs are not identified by
	// standard glyph names.
	IsFontSpecific() bool
}

func tracer() tracing.Trace {
	return tracing.Select("pdffont.font")
}
