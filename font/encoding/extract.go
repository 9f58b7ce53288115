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
	"unicode/utf8"

	"seehuhn.de/go/pdffont/pdf"
)

// Extract reads the /Encoding entry of a simple font dictionary.
//
// The argument builtin describes the encoding used where the dictionary
// does not specify one: one of [Standard], [Symbol] or [ZapfDingbats] for
// the standard 14 fonts, [FontSpecific] for other symbolic fonts, and
// [Custom] otherwise.  The ToUnicode mapping, which may be nil, is used to
// construct custom tables and to resolve glyph names not listed in the
// Adobe Glyph List.
//
// Malformed /Encoding entries are replaced by the implicit encoding.
func Extract(r pdf.Getter, obj pdf.Object, builtin Base, toUnicode map[byte]string) (*Table, error) {
	obj, err := pdf.Resolve(r, obj)
	if err != nil {
		return nil, err
	}

	switch obj := obj.(type) {
	case nil:
		return implicit(builtin, toUnicode), nil
	case pdf.Name:
		if b, ok := baseFromName(obj); ok {
			return NewBase(b), nil
		}
		tracer().Infof("unknown encoding %q, using the implicit encoding", obj)
		return implicit(builtin, toUnicode), nil
	case pdf.Dict:
		return extractDict(r, obj, builtin, toUnicode)
	default:
		tracer().Infof("malformed /Encoding entry of type %T", obj)
		return implicit(builtin, toUnicode), nil
	}
}

func extractDict(r pdf.Getter, dict pdf.Dict, builtin Base, toUnicode map[byte]string) (*Table, error) {
	var t *Table
	baseName, err := pdf.GetName(r, dict["BaseEncoding"])
	if err != nil {
		return nil, pdf.Wrap(err, "BaseEncoding")
	}
	if b, ok := baseFromName(baseName); ok {
		t = NewBase(b)
	} else {
		if baseName != "" {
			tracer().Infof("unknown base encoding %q", baseName)
		}
		t = implicit(builtin, toUnicode)
	}

	diffs, err := pdf.GetArray(r, dict["Differences"])
	if err != nil {
		return nil, pdf.Wrap(err, "Differences")
	}
	code := pdf.Integer(-1)
	for _, item := range diffs {
		item, err = pdf.Resolve(r, item)
		if err != nil {
			return nil, err
		}
		switch item := item.(type) {
		case pdf.Integer:
			code = item
		case pdf.Name:
			if code < 0 || code > 255 {
				continue
			}
			name := string(item)
			rr, ok := glyphUnicode(name, t.dingbats)
			if !ok {
				rr, ok = singleRune(toUnicode[byte(code)])
			}
			if !ok {
				tracer().Debugf("no Unicode value for glyph %q at code %d", name, code)
				rr = 0
			}
			t.SetDifference(byte(code), name, rr)
			if !ok {
				t.mapped[code] = false
			}
			code++
		}
	}
	return t, nil
}

// implicit returns the table used when a font dictionary has no usable
// /Encoding entry.
func implicit(builtin Base, toUnicode map[byte]string) *Table {
	switch builtin {
	case Custom:
		if toUnicode != nil {
			return FromToUnicode(toUnicode)
		}
		return NewBase(Custom)
	default:
		return NewBase(builtin)
	}
}

func baseFromName(name pdf.Name) (Base, bool) {
	switch name {
	case "WinAnsiEncoding":
		return WinAnsi, true
	case "MacRomanEncoding":
		return MacRoman, true
	case "MacExpertEncoding":
		return MacExpert, true
	case "StandardEncoding":
		return Standard, true
	}
	return Custom, false
}

func singleRune(text string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(text)
	if size == 0 || size != len(text) || r == utf8.RuneError {
		return 0, false
	}
	return r, true
}

// AsPDF returns the /Encoding entry which describes the table.
// This is a name for unmodified named base encodings, an encoding
// dictionary if the table has differences, and nil otherwise.
// Differences are given for all overridden codes.
func (t *Table) AsPDF() pdf.Object {
	base := t.base.PDFName()
	if !t.HasDifferences() {
		if base == "" {
			return nil
		}
		return base
	}

	var diffs pdf.Array
	prev := -2
	for code := range 256 {
		name := t.diff[code]
		if name == "" {
			continue
		}
		if code != prev+1 {
			diffs = append(diffs, pdf.Integer(code))
		}
		diffs = append(diffs, pdf.Name(name))
		prev = code
	}

	dict := pdf.Dict{
		"Type":        pdf.Name("Encoding"),
		"Differences": diffs,
	}
	if base != "" {
		dict["BaseEncoding"] = base
	}
	return dict
}
