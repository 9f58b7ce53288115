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

package pdf

import (
	"bytes"
	"io"
	"math"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in  Object
		out string
	}{
		{nil, "null"},
		{Bool(true), "true"},
		{Integer(-12), "-12"},
		{Real(1.5), "1.5"},
		{Real(2), "2."},
		{Number(3), "3"},
		{Number(-0.25), "-0.25"},
		{String("a"), "(a)"},
		{String("a (test version)"), "(a (test version))"},
		{String("a (test version"), "(a \\(test version)"},
		{String(""), "()"},
		{String("\000"), "<00>"},
		{String("x\ny"), "(x\\ny)"},
		{String("A\xe9BCD"), "(A\\351BCD)"},
		{Name("Helvetica"), "/Helvetica"},
		{Name("A B#"), "/A#20B#23"},
		{Array{Integer(1), nil, Integer(3)}, "[1 null 3]"},
		{Dict{"B": Integer(2), "A": Integer(1), "C": nil}, "<<\n/A 1\n/B 2\n>>"},
		{NewReference(12, 0), "12 0 R"},
	}
	for _, test := range cases {
		out := Format(test.in)
		if out != test.out {
			t.Errorf("wrongly formatted, expected %q but got %q",
				test.out, out)
		}
	}
}

func TestReference(t *testing.T) {
	ref := NewReference(math.MaxUint32, 7)
	if ref.Number() != math.MaxUint32 || ref.Generation() != 7 {
		t.Errorf("wrong reference %d %d", ref.Number(), ref.Generation())
	}
	if s := NewReference(5, 0).String(); s != "obj_5" {
		t.Errorf("wrong string %q", s)
	}
}

func TestStream(t *testing.T) {
	dataIn := "\nbinary stream data\000123\n   "
	stream := NewStream(Dict{"Length1": Integer(3)}, []byte(dataIn))
	if stream.Dict["Length"] != Integer(len(dataIn)) {
		t.Errorf("wrong length %v", stream.Dict["Length"])
	}

	for i := 0; i < 2; i++ {
		dataOut, err := ReadAll(nil, stream)
		if err != nil {
			t.Fatal(err)
		}
		if string(dataOut) != dataIn {
			t.Errorf("%d: wrong result:\n  %q\n  %q", i, dataIn, dataOut)
		}
	}

	buf := &bytes.Buffer{}
	err := stream.PDF(buf)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(buf.String(), "\nstream\n"+dataIn+"\nendstream") {
		t.Errorf("wrong stream encoding %q", buf.String())
	}
}

// onceReader is a reader which cannot seek.
type onceReader struct {
	r io.Reader
}

func (r *onceReader) Read(p []byte) (int, error) {
	return r.r.Read(p)
}

func TestStreamNoSeek(t *testing.T) {
	stream := &Stream{
		Dict: Dict{"Length": Integer(4)},
		R:    &onceReader{strings.NewReader("test")},
	}
	for i := 0; i < 2; i++ {
		data, err := stream.data()
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "test" {
			t.Errorf("%d: wrong data %q", i, data)
		}
	}
}
