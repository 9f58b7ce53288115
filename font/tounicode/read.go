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

package tounicode

import (
	"bytes"
	"errors"
	"io"
	"regexp"
	"strconv"
	"unicode/utf16"

	"seehuhn.de/go/pdffont/pdf"
)

// Extract reads a ToUnicode CMap from a PDF stream.
// If obj is null, nil is returned without an error.
func Extract(r pdf.Getter, obj pdf.Object) (*Info, error) {
	data, err := pdf.ReadAll(r, obj)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}
	return Read(bytes.NewReader(data))
}

// Read decodes a ToUnicode CMap.
// Mappings for codes outside the code space ranges are ignored.
func Read(r io.Reader) (*Info, error) {
	outer, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	m := bodyRegexp.FindSubmatch(outer)
	if len(m) != 2 {
		return nil, ErrInvalid
	}
	body := m[1]

	m = typeRegexp.FindSubmatch(body)
	if len(m) == 2 && string(m[1]) != "2" {
		return nil, ErrInvalid
	}

	info := &Info{}

	for _, m := range codespaceRegexp.FindAllSubmatch(body, -1) {
		inner := m[1]
		for {
			var first, last CharCode

			inner = skipComments(inner)
			if len(inner) == 0 {
				break
			}
			inner, first, err = parseCharCode(inner)
			if err != nil {
				return nil, err
			}
			inner = skipComments(inner)
			inner, last, err = parseCharCode(inner)
			if err != nil {
				return nil, err
			}

			info.CodeSpace = append(info.CodeSpace, CodeSpaceRange{
				First: first,
				Last:  last,
			})
		}
	}

	for _, m := range bfcharRegexp.FindAllSubmatch(body, -1) {
		inner := m[1]
		for {
			var code CharCode
			var text string

			inner = skipComments(inner)
			if len(inner) == 0 {
				break
			}
			inner, code, err = parseCharCode(inner)
			if err != nil {
				return nil, err
			}
			inner = skipComments(inner)
			inner, text, err = parseString(inner)
			if err != nil {
				return nil, err
			}

			if info.ContainsCode(code) {
				info.Singles = append(info.Singles, Single{
					Code: code,
					Text: text,
				})
			}
		}
	}

	for _, m := range bfrangeRegexp.FindAllSubmatch(body, -1) {
		inner := m[1]
		for {
			var first, last CharCode
			var text string

			inner = skipComments(inner)
			if len(inner) == 0 {
				break
			}
			inner, first, err = parseCharCode(inner)
			if err != nil {
				return nil, err
			}
			inner = skipComments(inner)
			inner, last, err = parseCharCode(inner)
			if err != nil {
				return nil, err
			}
			inner = skipComments(inner)

			next := Range{
				First: first,
				Last:  last,
			}
			if m := arrayRegexp.FindSubmatch(inner); m != nil {
				inner = inner[len(m[0]):]
				array := m[1]
				for {
					array = skipComments(array)
					if len(array) == 0 {
						break
					}
					array, text, err = parseString(array)
					if err != nil {
						return nil, err
					}
					next.Text = append(next.Text, text)
				}
			} else {
				inner, text, err = parseString(inner)
				if err != nil {
					return nil, err
				}
				next.Text = []string{text}
			}

			if next.First <= next.Last && info.ContainsRange(next.First, next.Last) {
				info.Ranges = append(info.Ranges, next)
			}
		}
	}

	if m := nameRegexp.FindSubmatch(body); len(m) == 2 {
		info.Name = string(m[1])
	}
	if m := registryRegexp.FindSubmatch(body); len(m) == 2 {
		info.Registry = string(m[1])
	}
	if m := orderingRegexp.FindSubmatch(body); len(m) == 2 {
		info.Ordering = string(m[1])
	}
	if m := supplementRegexp.FindSubmatch(body); len(m) == 2 {
		x, err := strconv.Atoi(string(m[1]))
		if err == nil {
			info.Supplement = x
		}
	}

	return info, nil
}

func skipComments(buf []byte) []byte {
	for {
		m := commentRegexp.FindSubmatch(buf)
		if m == nil {
			return buf
		}
		buf = buf[len(m[0]):]
	}
}

func parseCharCode(buf []byte) ([]byte, CharCode, error) {
	m := charCodeRegexp.FindSubmatch(buf)
	if m == nil {
		return nil, 0, ErrInvalid
	}
	x, err := strconv.ParseUint(string(m[1]), 16, 32)
	if err != nil {
		return nil, 0, ErrInvalid
	}
	return buf[len(m[0]):], CharCode(x), nil
}

func parseString(buf []byte) ([]byte, string, error) {
	m := stringRegexp.FindSubmatch(buf)
	if m == nil {
		return nil, "", ErrInvalid
	}

	q := bytes.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '\r' || r == '\n' {
			return -1
		}
		return r
	}, m[1])
	if len(q)%4 != 0 {
		return nil, "", ErrInvalid
	}

	var s []uint16
	for len(q) > 0 {
		x, err := strconv.ParseUint(string(q[:4]), 16, 16)
		if err != nil {
			return nil, "", ErrInvalid
		}
		s = append(s, uint16(x))
		q = q[4:]
	}

	return buf[len(m[0]):], string(utf16.Decode(s)), nil
}

var (
	bodyRegexp = regexp.MustCompile(`(?is)\bbegincmap\b\s*(.+?)\s*\bendcmap\b`)
	typeRegexp = regexp.MustCompile(`(?is)/CMapType\b\s*(.+?)\s*\bdef\b`)

	codespaceRegexp = regexp.MustCompile(`(?is)\bbegincodespacerange\b\s*(.*?)\bendcodespacerange\b`)
	bfcharRegexp    = regexp.MustCompile(`(?is)\bbeginbfchar\b\s*(.*?)\bendbfchar\b`)
	bfrangeRegexp   = regexp.MustCompile(`(?is)\bbeginbfrange\b\s*(.*?)\bendbfrange\b`)

	commentRegexp  = regexp.MustCompile(`^%.*?(?:\n|\r)\s*`)
	charCodeRegexp = regexp.MustCompile(`^<([0-9a-fA-F]+)>\s*`)
	stringRegexp   = regexp.MustCompile(`^<([0-9a-fA-F \t\r\n]*)>\s*`)
	arrayRegexp    = regexp.MustCompile(`(?s)^\[(.*?)\]\s*`)

	nameRegexp       = regexp.MustCompile(`(?is)/CMapName\b\s*/(\S+?)\s*\bdef\b`)
	registryRegexp   = regexp.MustCompile(`(?is)/CIDSystemInfo\s*<<.*?/Registry\s*\((.*?)\)`)
	orderingRegexp   = regexp.MustCompile(`(?is)/CIDSystemInfo\s*<<.*?/Ordering\s*\((.*?)\)`)
	supplementRegexp = regexp.MustCompile(`(?is)/CIDSystemInfo\s*<<.*?/Supplement\s*([0-9]+)`)
)

// ErrInvalid is returned by [Read] if the data is not a valid ToUnicode
// CMap.
var ErrInvalid = errors.New("invalid ToUnicode CMap")
