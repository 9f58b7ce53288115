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

package font

import (
	"bytes"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/sfnt/os2"

	"seehuhn.de/go/pdffont/pdf"
)

// BuildDescriptor creates the font descriptor for a newly written font.
//
// The argument fontName gives the FontName entry, including the subset tag
// if any.  If fontSpecific is false, the symbolic flag of the font program
// is replaced by the non-symbolic one.  If addStream is not nil, it is
// called with the new descriptor to add the font file entry.
func BuildDescriptor(prog Program, fontName string, fontSpecific bool, addStream func(pdf.Dict) error) (pdf.Dict, error) {
	m := prog.Metrics()
	names := prog.Names()

	fd := pdf.Dict{
		"Type":        pdf.Name("FontDescriptor"),
		"FontName":    pdf.Name(fontName),
		"Ascent":      pdf.Number(m.TypoAscender),
		"CapHeight":   pdf.Number(m.CapHeight),
		"Descent":     pdf.Number(m.TypoDescender),
		"FontBBox":    bboxArray(m.BBox),
		"ItalicAngle": pdf.Number(m.ItalicAngle),
		"StemV":       pdf.Number(m.StemV),
	}
	if m.XHeight > 0 {
		fd["XHeight"] = pdf.Number(m.XHeight)
	}
	if m.StemH > 0 {
		fd["StemH"] = pdf.Number(m.StemH)
	}
	if names.Weight > 0 {
		fd["FontWeight"] = pdf.Integer(names.Weight.Rounded())
	}
	if stretch := StretchName(names.Width); stretch != "" {
		fd["FontStretch"] = stretch
	}
	if family := names.Family(); family != "" {
		fd["FontFamily"] = pdf.String(family)
	}

	flags := prog.PDFFlags()
	if !fontSpecific {
		flags = flags.Symbolic(false)
	}
	fd["Flags"] = pdf.Integer(flags)

	if addStream != nil {
		err := addStream(fd)
		if err != nil {
			return nil, err
		}
	}
	return fd, nil
}

func bboxArray(b rect.Rect) pdf.Array {
	return pdf.Array{
		pdf.Integer(math.Round(b.LLx)),
		pdf.Integer(math.Round(b.LLy)),
		pdf.Integer(math.Round(b.URx)),
		pdf.Integer(math.Round(b.URy)),
	}
}

// FontFileKeys lists the font descriptor entries which can hold an embedded
// font program.
var FontFileKeys = []pdf.Name{"FontFile", "FontFile2", "FontFile3"}

// ImportDescriptor copies the font descriptor donor, read from r, into the
// document written by c.
//
// Ascent, Descent, CapHeight, ItalicAngle, StemV and XHeight values found
// in the donor overwrite the corresponding metrics of prog.  The same
// holds for the bounding box and for the PANOSE classification in the
// Style dictionary, and for the FontStretch width class.  Embedded font files are copied and stored in the
// target document at once.
//
// Malformed entries are left out of the result.  Errors are only returned
// if the embedded font files cannot be copied.
func ImportDescriptor(c *pdf.Copier, r pdf.Getter, donor pdf.Dict, prog Program) (pdf.Dict, error) {
	fd := pdf.Dict{
		"Type": pdf.Name("FontDescriptor"),
	}
	m := prog.Metrics()

	for _, key := range []pdf.Name{"FontName", "Subtype", "Flags", "Leading", "MissingWidth", "FontFamily"} {
		val := get(r, donor, key)
		if val == nil {
			continue
		}
		cp, err := c.Copy(val)
		if err != nil {
			return nil, pdf.Wrap(err, string(key))
		}
		fd[key] = cp
	}

	metrics := []struct {
		key pdf.Name
		val *float64
	}{
		{"Ascent", &m.TypoAscender},
		{"Descent", &m.TypoDescender},
		{"CapHeight", &m.CapHeight},
		{"ItalicAngle", &m.ItalicAngle},
		{"StemV", &m.StemV},
		{"XHeight", &m.XHeight},
	}
	for _, item := range metrics {
		val := get(r, donor, item.key)
		if val == nil {
			continue
		}
		x, err := pdf.GetNumber(r, val)
		if err != nil {
			tracer().Infof("font descriptor: %s: %v", item.key, err)
			continue
		}
		fd[item.key] = x
		*item.val = float64(x)
	}

	if val := get(r, donor, "FontWeight"); val != nil {
		x, err := pdf.GetNumber(r, val)
		if err != nil {
			tracer().Infof("font descriptor: FontWeight: %v", err)
		} else {
			fd["FontWeight"] = val
			prog.Names().Weight = os2.Weight(math.Round(float64(x)))
		}
	}

	if val := get(r, donor, "FontStretch"); val != nil {
		name, _ := val.(pdf.Name)
		if w, ok := fontStretch[name]; ok {
			fd["FontStretch"] = name
			prog.Names().Width = w
		} else {
			tracer().Infof("font descriptor: invalid FontStretch %s", pdf.Format(val))
		}
	}

	for _, key := range FontFileKeys {
		obj := donor[key]
		if obj == nil {
			continue
		}
		stm, err := pdf.GetStream(r, obj)
		if err != nil || stm == nil {
			tracer().Infof("font descriptor: %s is not a stream", key)
			continue
		}
		ref, err := c.CopyIndirect(obj)
		if err != nil {
			return nil, pdf.Wrap(err, string(key))
		}
		fd[key] = ref
	}

	if val := get(r, donor, "Style"); val != nil {
		style, err := pdf.GetDict(r, val)
		var panose pdf.String
		if err == nil {
			panose, err = pdf.GetString(r, style["Panose"])
		}
		if err != nil {
			tracer().Infof("font descriptor: Style: %v", err)
		} else if len(panose) > 0 {
			fd["Style"] = pdf.Dict{"Panose": pdf.String(bytes.Clone(panose))}
			prog.Identification().Panose = bytes.Clone(panose)
		}
	}

	if val := get(r, donor, "FontBBox"); val != nil {
		bbox, err := pdf.GetArray(r, val)
		if err != nil {
			tracer().Infof("font descriptor: FontBBox: %v", err)
		} else {
			cp, err := c.CopyArray(bbox)
			if err != nil {
				return nil, pdf.Wrap(err, "FontBBox")
			}
			fd["FontBBox"] = cp
			if b, ok := normalizedRect(r, bbox); ok {
				m.BBox = b
			}
		}
	}

	return fd, nil
}

// get returns the resolved value of a dictionary entry.  Unreadable
// entries are treated as missing.
func get(r pdf.Getter, dict pdf.Dict, key pdf.Name) pdf.Object {
	val, err := pdf.Resolve(r, dict[key])
	if err != nil {
		tracer().Infof("font descriptor: %s: %v", key, err)
		return nil
	}
	return val
}

// normalizedRect converts a PDF rectangle, given as an array of four
// numbers, to a rect.Rect with LLx <= URx and LLy <= URy.
func normalizedRect(r pdf.Getter, a pdf.Array) (rect.Rect, bool) {
	if len(a) != 4 {
		return rect.Rect{}, false
	}
	var x [4]float64
	for i, obj := range a {
		v, err := pdf.GetNumber(r, obj)
		if err != nil {
			return rect.Rect{}, false
		}
		x[i] = float64(v)
	}
	return rect.Rect{
		LLx: min(x[0], x[2]),
		LLy: min(x[1], x[3]),
		URx: max(x[0], x[2]),
		URy: max(x[1], x[3]),
	}, true
}

var fontStretch = map[pdf.Name]os2.Width{
	"UltraCondensed": os2.WidthUltraCondensed,
	"ExtraCondensed": os2.WidthExtraCondensed,
	"Condensed":      os2.WidthCondensed,
	"SemiCondensed":  os2.WidthSemiCondensed,
	"Normal":         os2.WidthNormal,
	"SemiExpanded":   os2.WidthSemiExpanded,
	"Expanded":       os2.WidthExpanded,
	"ExtraExpanded":  os2.WidthExtraExpanded,
	"UltraExpanded":  os2.WidthUltraExpanded,
}

// StretchName returns the FontStretch name for a width class, or the empty
// name if the width class is not set.
func StretchName(w os2.Width) pdf.Name {
	for name, width := range fontStretch {
		if width == w {
			return name
		}
	}
	return ""
}
