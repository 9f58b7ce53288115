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

// Package encoding implements the encoding table of simple PDF fonts.
//
// A [Table] maps the 256 single-byte character codes to Unicode values and
// to glyph names.  It is based on one of the predefined PDF encodings,
// optionally modified by a Differences overlay.  A font-specific table maps
// codes directly to the glyphs of the font program, bypassing Unicode.
package encoding

import (
	"strconv"

	"github.com/npillmayer/schuko/tracing"

	"seehuhn.de/go/pdffont/font/pdfenc"
	"seehuhn.de/go/pdffont/pdf"
)

// NotDef is the glyph name used for unmapped codes.
const NotDef = ".notdef"

// Base identifies the base encoding of a [Table].
type Base int

// These are the supported base encodings.
const (
	// Custom tables start empty; all glyphs are set explicitly, for
	// example from a ToUnicode CMap or a Differences array.
	Custom Base = iota
	WinAnsi
	MacRoman
	MacExpert
	Standard
	Symbol
	ZapfDingbats
	FontSpecific
)

func (b Base) String() string {
	switch b {
	case Custom:
		return "Custom"
	case WinAnsi:
		return "WinAnsiEncoding"
	case MacRoman:
		return "MacRomanEncoding"
	case MacExpert:
		return "MacExpertEncoding"
	case Standard:
		return "StandardEncoding"
	case Symbol:
		return "Symbol"
	case ZapfDingbats:
		return "ZapfDingbats"
	case FontSpecific:
		return "FontSpecific"
	default:
		return "Base(" + strconv.Itoa(int(b)) + ")"
	}
}

// PDFName returns the name which selects the base encoding in a PDF font
// dictionary.  For encodings which cannot be selected by name, the empty
// name is returned.
func (b Base) PDFName() pdf.Name {
	switch b {
	case WinAnsi, MacRoman, MacExpert:
		return pdf.Name(b.String())
	default:
		return ""
	}
}

// glyphNames returns the glyph name table of the base encoding,
// or nil if the base has no table.
func (b Base) glyphNames() *pdfenc.Encoding {
	switch b {
	case WinAnsi:
		return pdfenc.WinAnsi
	case MacRoman:
		return pdfenc.MacRoman
	case MacExpert:
		return pdfenc.MacExpert
	case Standard:
		return pdfenc.Standard
	case Symbol:
		return pdfenc.Symbol
	case ZapfDingbats:
		return pdfenc.ZapfDingbats
	default:
		return nil
	}
}

func tracer() tracing.Trace {
	return tracing.Select("pdffont.font")
}
