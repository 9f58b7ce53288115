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

// Package tounicode reads and writes ToUnicode CMaps for simple fonts.
//
// A ToUnicode CMap gives the text content of character codes.  For simple
// fonts every code is a single byte; [Info.SingleByte] returns the mapping
// in this form.
package tounicode

import (
	"fmt"
	"slices"
)

// CharCode is a character code as it appears in a PDF string.
type CharCode uint32

// Info holds the information from a ToUnicode CMap.
type Info struct {
	Name       string
	Registry   string
	Ordering   string
	Supplement int

	CodeSpace []CodeSpaceRange
	Singles   []Single
	Ranges    []Range
}

// CodeSpaceRange describes the valid codes of a CMap.
type CodeSpaceRange struct {
	First CharCode
	Last  CharCode
}

func (r CodeSpaceRange) String() string {
	n := 2
	for x := r.Last >> 8; x > 0; x >>= 8 {
		n += 2
	}
	return fmt.Sprintf("<%0*x> <%0*x>", n, r.First, n, r.Last)
}

// Single specifies that character code Code represents the given text.
type Single struct {
	Code CharCode
	Text string
}

func (s Single) String() string {
	return fmt.Sprintf("%d: %q", s.Code, s.Text)
}

// Range describes a range of character codes.
// First and Last are the first and last code in the range.
// If Text has length one, the last rune of the text is incremented by one
// for each code in the range.  Otherwise, Text must have length
// Last-First+1 and gives the text for each code.
type Range struct {
	First CharCode
	Last  CharCode
	Text  []string
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d: %q", r.First, r.Last, r.Text)
}

// ContainsCode returns true if the code is inside the code space.
func (info *Info) ContainsCode(code CharCode) bool {
	for _, r := range info.CodeSpace {
		if code >= r.First && code <= r.Last {
			return true
		}
	}
	return false
}

// ContainsRange returns true if all codes first, ..., last are inside a
// single code space range.
func (info *Info) ContainsRange(first, last CharCode) bool {
	for _, r := range info.CodeSpace {
		if first >= r.First && last <= r.Last {
			return true
		}
	}
	return false
}

// Lookup returns the text for a character code.
// Later entries in the CMap take precedence; ranges take precedence over
// single mappings.
func (info *Info) Lookup(code CharCode) (string, bool) {
	for i := len(info.Ranges) - 1; i >= 0; i-- {
		r := info.Ranges[i]
		if code < r.First || code > r.Last {
			continue
		}
		if len(r.Text) == int(r.Last-r.First)+1 {
			return r.Text[code-r.First], true
		}
		if len(r.Text) == 0 {
			continue
		}
		rr := []rune(r.Text[0])
		if len(rr) == 0 {
			return "", true
		}
		rr[len(rr)-1] += rune(code - r.First)
		return string(rr), true
	}
	for i := len(info.Singles) - 1; i >= 0; i-- {
		if info.Singles[i].Code == code {
			return info.Singles[i].Text, true
		}
	}
	return "", false
}

// SingleByte returns the mapping for all single byte codes.  Codes
// which are not mapped, or which are mapped to the empty string, are
// omitted.
func (info *Info) SingleByte() map[byte]string {
	res := make(map[byte]string)
	for code := CharCode(0); code < 256; code++ {
		text, ok := info.Lookup(code)
		if ok && text != "" {
			res[byte(code)] = text
		}
	}
	return res
}

// FromMapping constructs a ToUnicode CMap for a simple font, which maps
// each code in m to the given text.  Consecutive codes are combined into
// ranges where this gives a shorter CMap.
func FromMapping(m map[byte]string) *Info {
	codes := make([]byte, 0, len(m))
	for code, text := range m {
		if text != "" {
			codes = append(codes, code)
		}
	}
	slices.Sort(codes)

	mappings := make([]Single, len(codes))
	for i, code := range codes {
		mappings[i] = Single{Code: CharCode(code), Text: m[code]}
	}

	info := &Info{
		Name:      "Adobe-Identity-UCS",
		Registry:  "Adobe",
		Ordering:  "UCS",
		CodeSpace: []CodeSpaceRange{{First: 0x00, Last: 0xFF}},
	}
	info.Singles, info.Ranges = compact(mappings)
	return info
}
