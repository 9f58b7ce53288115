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

// Package simple implements the parts of simple PDF fonts which do not
// depend on the type of the font program.
//
// Simple fonts use single-byte character codes.  A [Font] converts text
// to codes using an [encoding.Table], keeps track of the codes used, and
// writes the font dictionary with the FirstChar, LastChar, Widths and
// Encoding entries derived from the used codes.  The behaviour specific to
// the different kinds of font programs is provided by a [Variant].
package simple

import (
	"io"

	"github.com/npillmayer/schuko/tracing"

	"seehuhn.de/go/pdffont/font"
	"seehuhn.de/go/pdffont/font/encoding"
	"seehuhn.de/go/pdffont/pdf"
)

// Variant is implemented by the concrete kinds of simple fonts.
type Variant interface {
	// IsBuiltIn reports whether the font is one of the standard 14 fonts.
	// For these fonts, the Widths array and the font descriptor are
	// omitted where possible.
	IsBuiltIn() bool

	// AddFontStream adds the font file entry to the font descriptor fd.
	AddFontStream(fd pdf.Dict) error

	// Glyph returns the glyph used to show the character r, or nil if r
	// cannot be encoded.
	Glyph(r rune) *font.Glyph
}

// Font is a simple font, which is being written to a PDF document.
//
// A Font must not be used concurrently.  After [Font.Flush] has been
// called, the font must no longer be used to encode text.
type Font[P font.Program] struct {
	Program  P
	Encoding *encoding.Table

	variant Variant
	w       *pdf.Data
	ref     pdf.Reference

	used [256]bool

	embedded    bool
	subset      bool
	forceWidths bool
	flushed     bool
	imported    bool

	// entries taken from an imported font dictionary
	descriptor pdf.Dict
	toUnicode  pdf.Object
}

// New creates a new simple font, which will be written to w.
// The font is embedded and subset by default.
func New[P font.Program](w *pdf.Data, prog P, enc *encoding.Table, v Variant) *Font[P] {
	return &Font[P]{
		Program:  prog,
		Encoding: enc,
		variant:  v,
		w:        w,
		ref:      w.Alloc(),
		embedded: true,
		subset:   true,
	}
}

// Reference returns the reference of the font dictionary.
func (f *Font[P]) Reference() pdf.Reference {
	return f.ref
}

// SetImported sets the font descriptor and the ToUnicode entry of a font
// which has been copied from another PDF document.  If fd is not nil, it is
// written in place of a newly generated descriptor.  Both arguments may
// be nil.
func (f *Font[P]) SetImported(fd pdf.Dict, toUnicode pdf.Object) {
	f.descriptor = fd
	f.toUnicode = toUnicode
	f.imported = true
}

// IsEmbedded reports whether the font program is embedded.
func (f *Font[P]) IsEmbedded() bool {
	return f.embedded
}

// SetEmbedded sets whether the font program is embedded.
func (f *Font[P]) SetEmbedded(embedded bool) {
	f.embedded = embedded
}

// IsSubset reports whether only the used codes are described.
func (f *Font[P]) IsSubset() bool {
	return f.subset
}

// SetSubset sets whether only the used codes are described.  This has an
// effect only for embedded fonts.
func (f *Font[P]) SetSubset(subset bool) {
	f.subset = subset
}

// ForceWidthsOutput reports whether the Widths array is always written.
func (f *Font[P]) ForceWidthsOutput() bool {
	return f.forceWidths
}

// SetForceWidthsOutput sets whether the Widths array is written even for
// the standard 14 fonts.
func (f *Font[P]) SetForceWidthsOutput(force bool) {
	f.forceWidths = force
}

// Glyph returns the glyph used to show the character r, or nil if r
// cannot be encoded.
func (f *Font[P]) Glyph(r rune) *font.Glyph {
	return f.variant.Glyph(r)
}

// IsUsed reports whether the code has been emitted by one of the
// conversion methods.
func (f *Font[P]) IsUsed(code byte) bool {
	return f.used[code]
}

// UsedCodes returns the used codes in increasing order.
func (f *Font[P]) UsedCodes() []byte {
	var res []byte
	for code, used := range f.used {
		if used {
			res = append(res, byte(code))
		}
	}
	return res
}

func (f *Font[P]) mark(codes []byte) {
	if f.flushed {
		panic("simple: font used after flush")
	}
	for _, c := range codes {
		f.used[c] = true
	}
}

// CreateGlyphLine converts a string into the sequence of glyphs used to
// show it.  Characters without a glyph are left out.
func (f *Font[P]) CreateGlyphLine(text string) []*font.Glyph {
	var res []*font.Glyph
	for _, r := range text {
		var g *font.Glyph
		if f.Encoding.IsFontSpecific() {
			g = f.Program.GlyphByCode(int(r & 0xFF))
		} else {
			g = f.variant.Glyph(r)
		}
		if g != nil {
			res = append(res, g)
		}
	}
	return res
}

// ConvertToBytes converts text into character codes, and marks the codes
// as used.  Characters which cannot be encoded are silently dropped.
func (f *Font[P]) ConvertToBytes(text string) []byte {
	var res []byte
	for _, r := range text {
		c, ok := f.encodeRune(r)
		if !ok {
			tracer().Debugf("dropping unencodable character %q", r)
			continue
		}
		res = append(res, c)
	}
	f.mark(res)
	return res
}

func (f *Font[P]) encodeRune(r rune) (byte, bool) {
	if f.Encoding.IsFontSpecific() {
		c := int(r & 0xFF)
		if f.Program.GlyphByCode(c) == nil {
			return 0, false
		}
		return byte(c), true
	}
	g := f.variant.Glyph(r)
	if g == nil || g.IsPlaceholder() {
		return 0, false
	}
	return f.Encoding.ConvertToByte(r)
}

// encodeGlyph returns the code for a glyph.  Font-specific encodings use
// the code of the glyph in the font program, all other encodings use the
// Unicode value of the glyph.
func (f *Font[P]) encodeGlyph(g *font.Glyph) (byte, bool) {
	if f.Encoding.IsFontSpecific() {
		if !g.HasCode() {
			return 0, false
		}
		return byte(g.Code), true
	}
	if g.IsPlaceholder() || !f.Encoding.CanEncode(g.Unicode) {
		return 0, false
	}
	return f.Encoding.ConvertToByte(g.Unicode)
}

// ConvertGlyphs converts a sequence of glyphs into character codes, and
// marks the codes as used.  Glyphs which cannot be encoded are silently
// dropped.
func (f *Font[P]) ConvertGlyphs(glyphs []*font.Glyph) []byte {
	res := make([]byte, 0, len(glyphs))
	for _, g := range glyphs {
		if c, ok := f.encodeGlyph(g); ok {
			res = append(res, c)
		}
	}
	f.mark(res)
	return res
}

// ConvertGlyph converts a single glyph into a character code.  The result
// is empty if the glyph cannot be encoded.
func (f *Font[P]) ConvertGlyph(g *font.Glyph) []byte {
	c, ok := f.encodeGlyph(g)
	if !ok {
		return nil
	}
	res := []byte{c}
	f.mark(res)
	return res
}

// WriteText encodes glyphs[from], ..., glyphs[to] and writes the result to
// w as a PDF string.
func (f *Font[P]) WriteText(glyphs []*font.Glyph, from, to int, w io.Writer) error {
	return pdf.String(f.ConvertGlyphs(glyphs[from : to+1])).PDF(w)
}

// WriteString encodes text and writes the result to w as a PDF string.
func (f *Font[P]) WriteString(text string, w io.Writer) error {
	return pdf.String(f.ConvertToBytes(text)).PDF(w)
}

// Width returns the width of the glyph used for r, in PDF glyph space
// units.  The width is 0 if r cannot be encoded.
func (f *Font[P]) Width(r rune) float64 {
	g := f.variant.Glyph(r)
	if g == nil {
		return 0
	}
	return g.Width
}

// TextWidth returns the total width of the glyphs used for text.
// Characters which cannot be encoded do not contribute to the width.
func (f *Font[P]) TextWidth(text string) float64 {
	var total float64
	for _, r := range text {
		total += f.Width(r)
	}
	return total
}

// Ascent returns the height of the glyph used for r above the baseline.
// The result is never negative.  If the glyph has no bounding box, the
// typographic ascender of the font is used.
func (f *Font[P]) Ascent(r rune) float64 {
	g := f.variant.Glyph(r)
	if g != nil && g.BBox != nil {
		return max(0, g.BBox.URy)
	}
	return max(0, f.Program.Metrics().TypoAscender)
}

// Descent returns the depth of the glyph used for r below the baseline,
// as a negative number.  The result is never positive.  If the glyph has no
// bounding box, the typographic descender of the font is used.
func (f *Font[P]) Descent(r rune) float64 {
	g := f.variant.Glyph(r)
	if g != nil && g.BBox != nil {
		return min(0, g.BBox.LLy)
	}
	return min(0, f.Program.Metrics().TypoDescender)
}

// TextAscent returns the maximum of [Font.Ascent] over all characters of
// text, or 0 for the empty string.
func (f *Font[P]) TextAscent(text string) float64 {
	var res float64
	for _, r := range text {
		res = max(res, f.Ascent(r))
	}
	return res
}

// TextDescent returns the minimum of [Font.Descent] over all characters of
// text, or 0 for the empty string.
func (f *Font[P]) TextDescent(text string) float64 {
	var res float64
	for _, r := range text {
		res = min(res, f.Descent(r))
	}
	return res
}

func tracer() tracing.Trace {
	return tracing.Select("pdffont.font")
}
