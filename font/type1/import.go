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
	"fmt"

	"seehuhn.de/go/pdffont/font"
	"seehuhn.de/go/pdffont/font/encoding"
	"seehuhn.de/go/pdffont/font/simple"
	"seehuhn.de/go/pdffont/font/tounicode"
	"seehuhn.de/go/pdffont/pdf"
)

// Import copies a Type 1 font dictionary from the document r into the
// document w.  The returned font can be used to show text in w; the font
// dictionary is written when [Font.Flush] is called.
//
// The character widths, the encoding and the font descriptor are taken
// from the dictionary.  An embedded font file is copied, and the font is
// embedded if and only if such a file is present.  Imported fonts are
// never subset.
func Import(w *pdf.Data, r pdf.Getter, obj pdf.Object) (*Font, error) {
	dict, err := pdf.GetDictTyped(r, obj, "Font")
	if err != nil {
		return nil, pdf.Wrap(err, "font dict")
	} else if dict == nil {
		return nil, pdf.Error("missing font dictionary")
	}
	subtype, err := pdf.GetName(r, dict["Subtype"])
	if err != nil {
		return nil, pdf.Wrap(err, "Subtype")
	}
	if subtype != "Type1" {
		return nil, &font.NotSupportedError{
			SubSystem: "font/type1",
			Feature:   fmt.Sprintf("font type %q", subtype),
		}
	}
	baseFont, err := pdf.GetName(r, dict["BaseFont"])
	if err != nil {
		return nil, pdf.Wrap(err, "BaseFont")
	}
	fontName := string(baseFont)

	c := pdf.NewCopier(w, r)

	var toUnicode map[byte]string
	var toUnicodeObj pdf.Object
	info, err := tounicode.Extract(r, dict["ToUnicode"])
	if err != nil {
		tracer().Infof("font %q: ignoring malformed ToUnicode CMap: %v", fontName, err)
	} else if info != nil {
		toUnicode = info.SingleByte()
		toUnicodeObj, err = c.CopyIndirect(dict["ToUnicode"])
		if err != nil {
			return nil, pdf.Wrap(err, "ToUnicode")
		}
	}

	donor, err := pdf.GetDictTyped(r, dict["FontDescriptor"], "FontDescriptor")
	if err != nil {
		tracer().Infof("font %q: ignoring malformed font descriptor: %v", fontName, err)
		donor = nil
	}
	var flags font.Flags
	if donor != nil {
		x, err := pdf.GetInteger(r, donor["Flags"])
		if err != nil {
			tracer().Infof("font %q: malformed Flags: %v", fontName, err)
		}
		flags = font.Flags(x)
	}
	if flags == 0 {
		flags = font.StandardFlags(fontName)
	}

	enc, err := encoding.Extract(r, dict["Encoding"], builtinEncoding(fontName, flags, toUnicode), toUnicode)
	if err != nil {
		return nil, pdf.Wrap(err, "Encoding")
	}

	prog := newProgram(fontName)
	prog.fontSpecific = enc.IsFontSpecific()
	prog.flags = flags
	if flags&(font.FlagSymbolic|font.FlagNonsymbolic) == 0 {
		prog.flags = flags.Symbolic(prog.fontSpecific)
	}
	prog.readWidths(r, dict, enc)

	var fd pdf.Dict
	if donor != nil {
		fd, err = font.ImportDescriptor(c, r, donor, prog)
		if err != nil {
			return nil, pdf.Wrap(err, "FontDescriptor")
		}
		for _, key := range font.FontFileKeys {
			ref, ok := fd[key].(pdf.Reference)
			if ok && prog.fontFile == 0 {
				prog.fontFileKey = key
				prog.fontFile = ref
			}
			delete(fd, key)
		}
	}
	prog.builtIn = font.IsStandard(fontName) && prog.fontFile == 0

	f := newFont(w)
	f.Font = simple.New(w, prog, enc, f)
	f.SetSubset(false)
	f.SetEmbedded(prog.fontFile != 0)
	f.SetImported(fd, toUnicodeObj)
	return f, nil
}

// builtinEncoding returns the encoding used by a font dictionary without
// an /Encoding entry.
func builtinEncoding(fontName string, flags font.Flags, toUnicode map[byte]string) encoding.Base {
	switch {
	case fontName == "Symbol":
		return encoding.Symbol
	case fontName == "ZapfDingbats":
		return encoding.ZapfDingbats
	case font.IsStandard(fontName):
		return encoding.Standard
	case flags&font.FlagSymbolic != 0:
		return encoding.FontSpecific
	case toUnicode != nil:
		return encoding.Custom
	default:
		return encoding.Standard
	}
}

// readWidths creates the glyphs of an imported font from the FirstChar,
// LastChar and Widths entries of the font dictionary.  Malformed entries
// leave the widths at zero.
func (p *Program) readWidths(r pdf.Getter, dict pdf.Dict, enc *encoding.Table) {
	firstChar, err1 := pdf.GetInteger(r, dict["FirstChar"])
	lastChar, err2 := pdf.GetInteger(r, dict["LastChar"])
	widths, err3 := pdf.GetArray(r, dict["Widths"])
	switch {
	case err1 != nil || err2 != nil || err3 != nil:
		tracer().Infof("font %q: malformed widths", p.names.FontName)
		widths = nil
	case dict["FirstChar"] == nil || dict["LastChar"] == nil:
		widths = nil
	case firstChar < 0 || lastChar > 255 || lastChar < firstChar:
		tracer().Infof("font %q: invalid character range %d..%d",
			p.names.FontName, firstChar, lastChar)
		widths = nil
	}

	for code := range 256 {
		var width float64
		if i := code - int(firstChar); widths != nil && i >= 0 && i < len(widths) && code <= int(lastChar) {
			x, err := pdf.GetNumber(r, widths[i])
			if err != nil {
				tracer().Infof("font %q: Widths[%d]: %v", p.names.FontName, i, err)
			}
			width = float64(x)
		}

		name := enc.GlyphName(byte(code))
		rr, hasUnicode := enc.Unicode(byte(code))
		if name == encoding.NotDef && !hasUnicode && width == 0 {
			continue
		}
		g := &font.Glyph{
			Code:  code,
			Name:  name,
			Width: width,
		}
		if hasUnicode {
			g.Unicode = rr
			if _, seen := p.byRune[rr]; !seen {
				p.byRune[rr] = g
			}
		}
		p.byCode[code] = g
	}
}
