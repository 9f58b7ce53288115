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

// Package type1 implements simple PDF fonts based on Type 1 font programs.
//
// New fonts are created with [New] from a [Program], which in turn is
// created from a PostScript Type 1 font or from AFM font metrics.  Fonts
// found in existing PDF files can be copied into a new document using
// [Import].
package type1

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"

	"seehuhn.de/go/pdffont/font"
	"seehuhn.de/go/pdffont/font/encoding"
	"seehuhn.de/go/pdffont/font/simple"
	"seehuhn.de/go/pdffont/pdf"
)

// Options control the creation of new Type 1 fonts.
type Options struct {
	// Encoding names the encoding of the font, see [encoding.New] for the
	// recognised values.  If this is empty, font-specific programs use
	// their built-in encoding and all other programs use WinAnsiEncoding.
	Encoding string

	// Embed requests that the font program is embedded.  The standard 14
	// fonts are never embedded.
	Embed bool
}

// Font is a Type 1 font, which is being written to a PDF document.
type Font struct {
	*simple.Font[*Program]

	w            *pdf.Data
	placeholders map[rune]*font.Glyph
}

var _ simple.Variant = (*Font)(nil)

// New creates a new Type 1 font, which will be written to w.
// If opt is nil, default options are used.
func New(w *pdf.Data, prog *Program, opt *Options) (*Font, error) {
	if opt == nil {
		opt = &Options{}
	}

	encName := opt.Encoding
	if encName == "" && prog.IsFontSpecific() {
		encName = "FontSpecific"
	}
	enc, err := encoding.New(encName)
	if err != nil {
		return nil, err
	}

	f := newFont(w)
	f.Font = simple.New(w, prog, enc, f)
	f.SetEmbedded(opt.Embed && !prog.IsBuiltIn())
	return f, nil
}

func newFont(w *pdf.Data) *Font {
	return &Font{
		w:            w,
		placeholders: make(map[rune]*font.Glyph),
	}
}

// IsBuiltIn reports whether the font is one of the standard 14 fonts.
func (f *Font) IsBuiltIn() bool {
	return f.Program.IsBuiltIn()
}

// Glyph returns the glyph used to show the character r, or nil if r
// cannot be encoded.
//
// For font-specific encodings, the low byte of r is used as the character
// code.
// Characters which can be encoded but have no glyph in the font program,
// for example the soft hyphen, are represented by zero-width placeholders.
func (f *Font) Glyph(r rune) *font.Glyph {
	enc := f.Encoding
	if !enc.CanEncode(r) {
		return nil
	}
	if enc.IsFontSpecific() {
		return f.Program.GlyphByCode(int(r & 0xFF))
	}
	if g := f.Program.Glyph(r); g != nil {
		return g
	}
	g, ok := f.placeholders[r]
	if !ok {
		g = font.Placeholder(r)
		f.placeholders[r] = g
	}
	return g
}

// AddFontStream adds the font file to the font descriptor fd.
//
// Imported fonts reuse the copied font file of the original document,
// under its original key.  For new fonts, a FontFile stream is created
// from the font program.
func (f *Font) AddFontStream(fd pdf.Dict) error {
	prog := f.Program
	if prog.fontFile != 0 {
		fd[prog.fontFileKey] = prog.fontFile
		return nil
	}

	data, err := prog.StreamBytes()
	if err != nil {
		return fmt.Errorf("font %q: %w", prog.names.FontName, err)
	}
	if data == nil {
		return nil
	}
	dict := pdf.Dict{}
	for i, l := range prog.StreamLengths() {
		dict[pdf.Name(fmt.Sprintf("Length%d", i+1))] = pdf.Integer(l)
	}
	ref := f.w.Alloc()
	stm, err := pdf.NewFilteredStream(dict, data, pdf.FilterCompress{})
	if err != nil {
		return err
	}
	err = f.w.Put(ref, stm)
	if err != nil {
		return err
	}
	fd["FontFile"] = ref
	return nil
}

// Flush writes the font dictionary to the PDF document.
// This must be called exactly once, after all text has been encoded.
func (f *Font) Flush() error {
	return f.Font.Flush(f.Program.Names().FontName, "Type1")
}

func tracer() tracing.Trace {
	return tracing.Select("pdffont.font")
}
