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

// Package pdfenc holds the glyph name tables of the single-byte encodings
// predefined by the PDF specification.
//
// The tables are described in Appendix D of PDF 32000-1:2008.
package pdfenc

import (
	"strings"

	"seehuhn.de/go/postscript/psenc"
)

// An Encoding is a mapping from single byte codes to glyph names.
// Unused codes map to ".notdef".
type Encoding struct {
	Encoding [256]string
	Has      map[string]bool
}

// Code returns the smallest code which maps to the given glyph name.
func (e *Encoding) Code(name string) (byte, bool) {
	if !e.Has[name] {
		return 0, false
	}
	for c, n := range e.Encoding {
		if n == name {
			return byte(c), true
		}
	}
	return 0, false
}

// Standard is the Adobe Standard Encoding for Latin text.
//
// See Appendix D.2 of PDF 32000-1:2008.
var Standard = fromTable(psenc.StandardEncoding[:])

// WinAnsi is the PDF version of the standard Microsoft Windows specific
// encoding for Latin text in Western writing systems.
var WinAnsi = fromRuns(winAnsiRuns)

// MacRoman is the PDF version of the MacOS standard encoding for Latin
// text in Western writing systems.
var MacRoman = fromRuns(macRomanRuns)

// MacExpert is an encoding for "expert fonts" which contain additional
// characters useful for sophisticated typography.
var MacExpert = fromRuns(macExpertRuns)

// Symbol is the built-in encoding of the Symbol font.
var Symbol = fromRuns(symbolRuns)

// ZapfDingbats is the built-in encoding of the ZapfDingbats font.
var ZapfDingbats = fromRuns(zapfDingbatsRuns)

// run describes glyph names for consecutive codes, starting at code.
type run struct {
	code  int
	names string
}

func fromRuns(runs []run) *Encoding {
	enc := &Encoding{Has: map[string]bool{}}
	for i := range enc.Encoding {
		enc.Encoding[i] = ".notdef"
	}
	for _, r := range runs {
		for i, name := range strings.Fields(r.names) {
			enc.Encoding[r.code+i] = name
			enc.Has[name] = true
		}
	}
	return enc
}

func fromTable(names []string) *Encoding {
	enc := &Encoding{Has: map[string]bool{}}
	for i := range enc.Encoding {
		name := ".notdef"
		if i < len(names) && names[i] != "" {
			name = names[i]
		}
		enc.Encoding[i] = name
		if name != ".notdef" {
			enc.Has[name] = true
		}
	}
	return enc
}
