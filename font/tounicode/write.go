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
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/template"
	"unicode/utf16"

	"seehuhn.de/go/pdffont/pdf"
)

// Embed writes the CMap as a stream into the document and returns the
// reference of the new stream.
func (info *Info) Embed(w *pdf.Data) (pdf.Reference, error) {
	buf := &bytes.Buffer{}
	err := info.Write(buf)
	if err != nil {
		return 0, err
	}
	stm, err := pdf.NewFilteredStream(nil, buf.Bytes(), pdf.FilterCompress{})
	if err != nil {
		return 0, err
	}
	ref := w.Alloc()
	err = w.Put(ref, stm)
	if err != nil {
		return 0, err
	}
	return ref, nil
}

// Write writes the CMap in the text format used inside PDF streams.
func (info *Info) Write(w io.Writer) error {
	tmpl := template.Must(template.New("tounicode").Funcs(template.FuncMap{
		"PDFString":    formatPDFString,
		"PDFName":      formatPDFName,
		"SingleChunks": chunks[Single],
		"Single":       info.formatSingle,
		"RangeChunks":  chunks[Range],
		"Range":        info.formatRange,
	}).Parse(toUnicodeTmpl))
	return tmpl.Execute(w, info)
}

func (info *Info) formatCharCode(code CharCode) (string, error) {
	for _, r := range info.CodeSpace {
		if code >= r.First && code <= r.Last {
			var format string
			switch {
			case r.Last >= 1<<24:
				format = "%08x"
			case r.Last >= 1<<16:
				format = "%06x"
			case r.Last >= 1<<8:
				format = "%04x"
			default:
				format = "%02x"
			}
			return fmt.Sprintf("<"+format+">", code), nil
		}
	}
	return "", errors.New("code not in code space")
}

func formatText(s string) string {
	var text []byte
	for _, x := range utf16.Encode([]rune(s)) {
		text = append(text, byte(x>>8), byte(x))
	}
	return "<" + hex.EncodeToString(text) + ">"
}

func (info *Info) formatSingle(s Single) (string, error) {
	code, err := info.formatCharCode(s.Code)
	if err != nil {
		return "", err
	}
	return code + " " + formatText(s.Text), nil
}

func (info *Info) formatRange(r Range) (string, error) {
	a, err := info.formatCharCode(r.First)
	if err != nil {
		return "", err
	}
	b, err := info.formatCharCode(r.Last)
	if err != nil {
		return "", err
	}

	if len(r.Text) == 1 {
		return a + " " + b + " " + formatText(r.Text[0]), nil
	}
	texts := make([]string, len(r.Text))
	for i, t := range r.Text {
		texts[i] = formatText(t)
	}
	return a + " " + b + " [" + strings.Join(texts, " ") + "]", nil
}

func formatPDFString(s string) string {
	return pdf.Format(pdf.String(s))
}

func formatPDFName(s string) string {
	if s == "" {
		s = "Adobe-Identity-UCS"
	}
	return pdf.Format(pdf.Name(s))
}

// The PDF specification limits the number of entries per
// beginbfchar/beginbfrange block.
const chunkSize = 100

func chunks[T any](x []T) [][]T {
	var res [][]T
	for len(x) >= chunkSize {
		res = append(res, x[:chunkSize])
		x = x[chunkSize:]
	}
	if len(x) > 0 {
		res = append(res, x)
	}
	return res
}

const toUnicodeTmpl = `/CIDInit /ProcSet findresource begin
12 dict begin
begincmap
/CMapName {{PDFName .Name}} def
/CMapType 2 def
/CIDSystemInfo <<
/Registry {{PDFString .Registry}}
/Ordering {{PDFString .Ordering}}
/Supplement {{.Supplement}}
>> def
{{len .CodeSpace}} begincodespacerange
{{range .CodeSpace -}}
{{.}}
{{end -}}
endcodespacerange
{{range SingleChunks .Singles -}}
{{len .}} beginbfchar
{{range . -}}
{{Single .}}
{{end -}}
endbfchar
{{end -}}
{{range RangeChunks .Ranges -}}
{{len .}} beginbfrange
{{range . -}}
{{Range .}}
{{end -}}
endbfrange
{{end -}}
endcmap
CMapName currentdict /CMap defineresource pop
end
end
`
