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

package simple

import (
	"math"

	"seehuhn.de/go/pdffont/font"
	"seehuhn.de/go/pdffont/font/encoding"
	"seehuhn.de/go/pdffont/font/tounicode"
	"seehuhn.de/go/pdffont/pdf"
)

// Flush writes the font dictionary, together with the font descriptor and
// the embedded font program, to the PDF document.
//
// The arguments fontName and subtype give the BaseFont and Subtype entries
// of the font dictionary.  Flush must be called exactly once.  After the
// call, the encoding table is frozen and the font must no longer be used to
// encode text.
func (f *Font[P]) Flush(fontName string, subtype pdf.Name) error {
	if f.flushed {
		panic("simple: font flushed twice")
	}
	f.flushed = true
	f.Encoding.Freeze()

	dict := pdf.Dict{
		"Type":     pdf.Name("Font"),
		"Subtype":  subtype,
		"BaseFont": pdf.Name(fontName),
	}

	enc := f.Encoding
	used := f.used
	firstChar, lastChar := usedRange(&used)
	if !f.subset || !f.embedded {
		// Describe all codes the encoding knows about, so that widths are
		// available for text which was not written through this font.
		firstChar, lastChar = 0, 255
		for code := range used {
			_, hasUnicode := enc.Unicode(byte(code))
			used[code] = hasUnicode ||
				!enc.HasDifferences() && f.Program.GlyphByCode(code) != nil
		}
	}

	builtIn := f.variant.IsBuiltIn()
	if enc.HasDifferences() {
		for code := firstChar; code <= lastChar; code++ {
			if enc.Difference(byte(code)) != encoding.NotDef {
				firstChar = code
				break
			}
		}
		for code := lastChar; code >= firstChar; code-- {
			if enc.Difference(byte(code)) != encoding.NotDef {
				lastChar = code
				break
			}
		}
		encDict := pdf.Dict{
			"Type":        pdf.Name("Encoding"),
			"Differences": differences(enc, &used, firstChar, lastChar),
		}
		if base := enc.Base().PDFName(); base != "" {
			encDict["BaseEncoding"] = base
		}
		dict["Encoding"] = encDict
	} else if obj := enc.AsPDF(); obj != nil {
		dict["Encoding"] = obj
	}

	if f.forceWidths || !builtIn || enc.HasDifferences() {
		widths := make(pdf.Array, 0, lastChar-firstChar+1)
		for code := firstChar; code <= lastChar; code++ {
			widths = append(widths, pdf.Integer(math.Round(f.codeWidth(&used, code))))
		}
		dict["FirstChar"] = pdf.Integer(firstChar)
		dict["LastChar"] = pdf.Integer(lastChar)
		dict["Widths"] = widths
	}

	toUnicode, err := f.writeToUnicode(&used)
	if err != nil {
		return err
	}
	if toUnicode != nil {
		dict["ToUnicode"] = toUnicode
	}

	if !builtIn {
		fd, err := f.makeDescriptor(fontName)
		if err != nil {
			return err
		}
		fdRef := f.w.Alloc()
		err = f.w.Put(fdRef, fd)
		if err != nil {
			return err
		}
		dict["FontDescriptor"] = fdRef
	}

	return f.w.Put(f.ref, dict)
}

// usedRange returns the smallest and largest used code.  If no code is
// used, both values are 255.
func usedRange(used *[256]bool) (int, int) {
	first := 0
	for first < 256 && !used[first] {
		first++
	}
	if first > 255 {
		return 255, 255
	}
	last := 255
	for !used[last] {
		last--
	}
	return first, last
}

// differences returns the Differences array for the used codes in the
// range from firstChar to lastChar.  Each run of consecutive used codes is
// introduced by its first code.
func differences(enc *encoding.Table, used *[256]bool, firstChar, lastChar int) pdf.Array {
	var res pdf.Array
	gap := true
	for code := firstChar; code <= lastChar; code++ {
		if !used[code] {
			gap = true
			continue
		}
		if gap {
			res = append(res, pdf.Integer(code))
			gap = false
		}
		res = append(res, pdf.Name(enc.GlyphName(byte(code))))
	}
	return res
}

// codeWidth returns the width written to the Widths array for a code.
func (f *Font[P]) codeWidth(used *[256]bool, code int) float64 {
	if !used[code] {
		return 0
	}
	var g *font.Glyph
	if r, ok := f.Encoding.Unicode(byte(code)); ok {
		g = f.variant.Glyph(r)
	} else {
		g = f.Program.GlyphByCode(code)
	}
	if g == nil {
		return 0
	}
	return g.Width
}

// writeToUnicode returns the ToUnicode entry of the font dictionary.
// Imported fonts keep their mapping.  For new fonts, a mapping is only
// written if the encoding has differences, since otherwise text
// extraction can use the glyph names of the standard encodings.
func (f *Font[P]) writeToUnicode(used *[256]bool) (pdf.Object, error) {
	if f.imported {
		return f.toUnicode, nil
	}
	enc := f.Encoding
	if !enc.HasDifferences() {
		return nil, nil
	}
	m := make(map[byte]string)
	for code, isUsed := range used {
		if !isUsed {
			continue
		}
		if r, ok := enc.Unicode(byte(code)); ok {
			m[byte(code)] = string(r)
		}
	}
	if len(m) == 0 {
		return nil, nil
	}
	ref, err := tounicode.FromMapping(m).Embed(f.w)
	if err != nil {
		return nil, err
	}
	return ref, nil
}

func (f *Font[P]) makeDescriptor(fontName string) (pdf.Dict, error) {
	addStream := func(fd pdf.Dict) error {
		if !f.embedded {
			return nil
		}
		return f.variant.AddFontStream(fd)
	}

	if f.descriptor == nil {
		return font.BuildDescriptor(f.Program, fontName, f.Encoding.IsFontSpecific(), addStream)
	}

	fd := make(pdf.Dict, len(f.descriptor)+1)
	for key, val := range f.descriptor {
		fd[key] = val
	}
	err := addStream(fd)
	if err != nil {
		return nil, err
	}
	return fd, nil
}
