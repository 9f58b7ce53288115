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
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/postscript/afm"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/postscript/psenc"
	pst1 "seehuhn.de/go/postscript/type1"
	"seehuhn.de/go/sfnt/os2"

	"seehuhn.de/go/pdffont/font"
	"seehuhn.de/go/pdffont/font/tounicode"
	"seehuhn.de/go/pdffont/pdf"
)

func box(g *pst1.Glyph, left, bottom, right, top float64) {
	g.MoveTo(left, bottom)
	g.LineTo(right, bottom)
	g.LineTo(right, top)
	g.LineTo(left, top)
	g.ClosePath()
}

// testPostScriptFont returns a font with 1000 units per em, containing
// glyphs for "A", "H" and the space character.
func testPostScriptFont() *pst1.Font {
	A := &pst1.Glyph{WidthX: 600}
	box(A, 50, 0, 550, 700)
	H := &pst1.Glyph{WidthX: 620}
	box(H, 60, 0, 560, 680)

	return &pst1.Font{
		FontInfo: &pst1.FontInfo{
			FontName:   "Test-Bold",
			FullName:   "Test Bold",
			FamilyName: "Test",
			Weight:     "Bold",
			Version:    "1.0",
			FontMatrix: matrix.Matrix{0.001, 0, 0, 0.001, 0, 0},
		},
		Outlines: &pst1.Outlines{
			Glyphs: map[string]*pst1.Glyph{
				".notdef": {WidthX: 250},
				"space":   {WidthX: 278},
				"A":       A,
				"H":       H,
			},
			Private: &pst1.PrivateDict{
				BlueValues: []funit.Int16{-10, 0, 700, 710},
				BlueScale:  0.039625,
				BlueShift:  7,
				BlueFuzz:   1,
				StdHW:      40,
				StdVW:      80,
			},
			Encoding: psenc.StandardEncoding[:],
		},
	}
}

// testMetrics returns metrics for a font with glyphs for "A", "g" and the
// space character.
func testMetrics(fontName string, encoding []string) *afm.Metrics {
	return &afm.Metrics{
		Glyphs: map[string]*afm.GlyphInfo{
			".notdef": {WidthX: 250},
			"space":   {WidthX: 278},
			"A": {
				WidthX: 667,
				BBox:   rect.Rect{LLx: 14, LLy: 0, URx: 654, URy: 718},
			},
			"g": {
				WidthX: 556,
				BBox:   rect.Rect{LLx: 40, LLy: -220, URx: 499, URy: 538},
			},
		},
		Encoding:  encoding,
		FontName:  fontName,
		FullName:  fontName,
		Ascent:    718,
		Descent:   -207,
		CapHeight: 718,
		XHeight:   523,
	}
}

func customEncoding() []string {
	encoding := make([]string, 256)
	for i := range encoding {
		encoding[i] = ".notdef"
	}
	encoding[1] = "A"
	encoding[2] = "g"
	return encoding
}

func flushed(t *testing.T, f *Font, w *pdf.Data) pdf.Dict {
	t.Helper()
	err := f.Flush()
	if err != nil {
		t.Fatal(err)
	}
	dict, err := pdf.GetDict(w, f.Reference())
	if err != nil {
		t.Fatal(err)
	}
	return dict
}

func TestFromPostScript(t *testing.T) {
	prog, err := FromPostScript(testPostScriptFont(), nil)
	if err != nil {
		t.Fatal(err)
	}

	if prog.IsFontSpecific() {
		t.Error("standard encoding reported as font-specific")
	}
	if prog.IsBuiltIn() {
		t.Error("embedded font reported as built-in")
	}
	if got := prog.PDFFlags(); got != font.FlagNonsymbolic {
		t.Errorf("flags: got %d", got)
	}
	if got := prog.Names().Weight; got != os2.WeightBold {
		t.Errorf("weight: got %d", got)
	}

	g := prog.Glyph('A')
	if g == nil {
		t.Fatal("missing glyph for A")
	}
	if g.Code != 'A' || g.Name != "A" || g.Width != 600 {
		t.Errorf("wrong glyph: %+v", g)
	}
	if g.BBox == nil || g.BBox.URy != 700 {
		t.Errorf("wrong bounding box: %v", g.BBox)
	}
	if g := prog.Glyph(' '); g == nil || g.BBox != nil {
		t.Errorf("space: %+v", g)
	}

	m := prog.Metrics()
	if m.CapHeight != 680 {
		t.Errorf("CapHeight: got %g", m.CapHeight)
	}
	if m.StemV != 80 || m.StemH != 40 {
		t.Errorf("stems: got %g, %g", m.StemV, m.StemH)
	}
}

func TestInconsistentMetrics(t *testing.T) {
	psFont := testPostScriptFont()
	metrics := testMetrics("Test-Bold", psenc.StandardEncoding[:])

	_, err := FromPostScript(psFont, metrics)
	var invalid *font.InvalidFontError
	if !errors.As(err, &invalid) {
		t.Errorf("expected InvalidFontError, got %v", err)
	}
}

func TestEmbed(t *testing.T) {
	prog, err := FromPostScript(testPostScriptFont(), nil)
	if err != nil {
		t.Fatal(err)
	}
	w := pdf.NewData()
	f, err := New(w, prog, &Options{Embed: true})
	if err != nil {
		t.Fatal(err)
	}
	if !f.IsEmbedded() {
		t.Fatal("font not embedded")
	}

	got := f.ConvertToBytes("HA")
	if d := cmp.Diff([]byte("HA"), got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	dict := flushed(t, f, w)
	if d := cmp.Diff(pdf.Name("WinAnsiEncoding"), dict["Encoding"]); d != "" {
		t.Errorf("Encoding (-want +got):\n%s", d)
	}
	wantWidths := pdf.Array{
		pdf.Integer(600), pdf.Integer(0), pdf.Integer(0), pdf.Integer(0),
		pdf.Integer(0), pdf.Integer(0), pdf.Integer(0), pdf.Integer(620),
	}
	if d := cmp.Diff(wantWidths, dict["Widths"]); d != "" {
		t.Errorf("Widths (-want +got):\n%s", d)
	}
	if dict["FirstChar"] != pdf.Integer('A') || dict["LastChar"] != pdf.Integer('H') {
		t.Errorf("range: %v..%v", dict["FirstChar"], dict["LastChar"])
	}
	if dict["ToUnicode"] != nil {
		t.Error("unexpected ToUnicode CMap")
	}

	fd, err := pdf.GetDictTyped(w, dict["FontDescriptor"], "FontDescriptor")
	if err != nil {
		t.Fatal(err)
	}
	if fd["FontName"] != pdf.Name("Test-Bold") {
		t.Errorf("FontName: got %v", fd["FontName"])
	}
	if fd["FontWeight"] != pdf.Integer(700) {
		t.Errorf("FontWeight: got %v", fd["FontWeight"])
	}
	if family, _ := fd["FontFamily"].(pdf.String); string(family) != "Test" {
		t.Errorf("FontFamily: got %v", fd["FontFamily"])
	}

	stm, err := pdf.GetStream(w, fd["FontFile"])
	if err != nil {
		t.Fatal(err)
	}
	if stm == nil {
		t.Fatal("missing font file")
	}
	data, err := pdf.ReadAll(w, fd["FontFile"])
	if err != nil {
		t.Fatal(err)
	}
	l1, _ := stm.Dict["Length1"].(pdf.Integer)
	l2, _ := stm.Dict["Length2"].(pdf.Integer)
	if l1 <= 0 || l2 <= 0 || int(l1+l2) != len(data) {
		t.Errorf("wrong lengths %d+%d for %d bytes", l1, l2, len(data))
	}
	if stm.Dict["Filter"] != pdf.Name("FlateDecode") {
		t.Errorf("font file not compressed: Filter=%v", stm.Dict["Filter"])
	}
	if stm.Dict["Length3"] != pdf.Integer(0) {
		t.Errorf("Length3: got %v", stm.Dict["Length3"])
	}
}

func TestBuiltIn(t *testing.T) {
	prog := FromAFM(testMetrics("Helvetica", psenc.StandardEncoding[:]))
	if !prog.IsBuiltIn() {
		t.Fatal("Helvetica is not built-in")
	}

	w := pdf.NewData()
	f, err := New(w, prog, &Options{Embed: true})
	if err != nil {
		t.Fatal(err)
	}
	if f.IsEmbedded() {
		t.Error("built-in font marked as embedded")
	}
	f.ConvertToBytes("gA")

	dict := flushed(t, f, w)
	want := pdf.Dict{
		"Type":     pdf.Name("Font"),
		"Subtype":  pdf.Name("Type1"),
		"BaseFont": pdf.Name("Helvetica"),
		"Encoding": pdf.Name("WinAnsiEncoding"),
	}
	if d := cmp.Diff(want, dict); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestFontSpecificDefault(t *testing.T) {
	prog := FromAFM(testMetrics("Custom", customEncoding()))
	if !prog.IsFontSpecific() {
		t.Fatal("custom encoding not recognised as font-specific")
	}

	w := pdf.NewData()
	f, err := New(w, prog, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !f.Encoding.IsFontSpecific() {
		t.Fatal("font-specific program without font-specific encoding")
	}

	got := f.ConvertToBytes("\x01\x02\x03")
	if d := cmp.Diff([]byte{1, 2}, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
	if got := f.Width('\x01'); got != 667 {
		t.Errorf("width: got %g", got)
	}

	// only the low byte of a character selects the code
	got = f.ConvertToBytes("\u0101")
	if d := cmp.Diff([]byte{1}, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
	if got := f.Width('\u0101'); got != 667 {
		t.Errorf("width of U+0101: got %g", got)
	}
	if got := f.Ascent('\u0101'); got != 718 {
		t.Errorf("ascent of U+0101: got %g", got)
	}
	if got := f.Ascent('\u0102'); got != 538 {
		t.Errorf("ascent of U+0102: got %g", got)
	}

	dict := flushed(t, f, w)
	if _, ok := dict["Encoding"]; ok {
		t.Errorf("unexpected Encoding %v", dict["Encoding"])
	}
	widths, _ := dict["Widths"].(pdf.Array)
	if len(widths) != 256 || widths[1] != pdf.Integer(667) || widths[2] != pdf.Integer(556) {
		t.Errorf("wrong widths %v", widths)
	}
	fd, err := pdf.GetDict(w, dict["FontDescriptor"])
	if err != nil {
		t.Fatal(err)
	}
	if fd["Flags"] != pdf.Integer(font.FlagSymbolic) {
		t.Errorf("Flags: got %v", fd["Flags"])
	}
	if _, ok := fd["FontFile"]; ok {
		t.Error("font file for a font without font data")
	}
}

func TestUnknownEncoding(t *testing.T) {
	prog := FromAFM(testMetrics("Custom", psenc.StandardEncoding[:]))
	_, err := New(pdf.NewData(), prog, &Options{Encoding: "no-such-encoding"})
	if err == nil {
		t.Error("unknown encoding accepted")
	}
}

func TestPlaceholder(t *testing.T) {
	prog := FromAFM(testMetrics("Custom", psenc.StandardEncoding[:]))
	f, err := New(pdf.NewData(), prog, nil)
	if err != nil {
		t.Fatal(err)
	}

	g1 := f.Glyph('B')
	g2 := f.Glyph('B')
	if g1 == nil || !g1.IsPlaceholder() {
		t.Fatalf("expected a placeholder, got %+v", g1)
	}
	if g1 != g2 {
		t.Error("placeholder not reused")
	}
	if g1.Width != 0 {
		t.Errorf("placeholder width %g", g1.Width)
	}
	if g := f.Glyph('Ж'); g != nil {
		t.Errorf("glyph for a character outside the encoding: %+v", g)
	}
	if got := f.ConvertToBytes("B"); len(got) != 0 {
		t.Errorf("placeholder encoded as %v", got)
	}
	if got := f.Ascent('B'); got != 718 {
		t.Errorf("placeholder ascent %g", got)
	}
}

// writeDonor writes a Type 1 font dictionary, as found in an existing PDF
// file, to r.
func writeDonor(t *testing.T, r *pdf.Data) pdf.Reference {
	t.Helper()

	fileRef := r.Alloc()
	err := r.Put(fileRef, pdf.NewStream(pdf.Dict{"Subtype": pdf.Name("Type1C")}, []byte("font data")))
	if err != nil {
		t.Fatal(err)
	}

	fdRef := r.Alloc()
	err = r.Put(fdRef, pdf.Dict{
		"Type":        pdf.Name("FontDescriptor"),
		"FontName":    pdf.Name("ABCDEF+Donor"),
		"Flags":       pdf.Integer(font.FlagNonsymbolic),
		"FontBBox":    pdf.Array{pdf.Integer(-50), pdf.Integer(-200), pdf.Integer(1000), pdf.Integer(900)},
		"ItalicAngle": pdf.Integer(0),
		"Ascent":      pdf.Integer(700),
		"Descent":     pdf.Integer(-200),
		"CapHeight":   pdf.Integer(680),
		"StemV":       pdf.Integer(88),
		"FontFile3":   fileRef,
	})
	if err != nil {
		t.Fatal(err)
	}

	toUni := tounicode.FromMapping(map[byte]string{65: "A", 66: "ﬁ"})
	toUniRef, err := toUni.Embed(r)
	if err != nil {
		t.Fatal(err)
	}

	ref := r.Alloc()
	err = r.Put(ref, pdf.Dict{
		"Type":      pdf.Name("Font"),
		"Subtype":   pdf.Name("Type1"),
		"BaseFont":  pdf.Name("ABCDEF+Donor"),
		"FirstChar": pdf.Integer(65),
		"LastChar":  pdf.Integer(66),
		"Widths":    pdf.Array{pdf.Integer(600), pdf.Integer(650)},
		"Encoding": pdf.Dict{
			"Type":         pdf.Name("Encoding"),
			"BaseEncoding": pdf.Name("WinAnsiEncoding"),
			"Differences":  pdf.Array{pdf.Integer(66), pdf.Name("fi")},
		},
		"FontDescriptor": fdRef,
		"ToUnicode":      toUniRef,
	})
	if err != nil {
		t.Fatal(err)
	}
	return ref
}

func TestImport(t *testing.T) {
	r := pdf.NewData()
	ref := writeDonor(t, r)

	w := pdf.NewData()
	f, err := Import(w, r, ref)
	if err != nil {
		t.Fatal(err)
	}

	if !f.IsEmbedded() {
		t.Error("font with font file not embedded")
	}
	if f.IsSubset() {
		t.Error("imported font marked as subset")
	}
	if f.IsBuiltIn() {
		t.Error("imported font marked as built-in")
	}
	if got := f.Width('A'); got != 600 {
		t.Errorf("width of A: got %g", got)
	}
	if got := f.Width('ﬁ'); got != 650 {
		t.Errorf("width of fi: got %g", got)
	}
	// The glyphs have no bounding boxes, so the ascent is taken from
	// the font descriptor.
	if got := f.TextAscent("A"); got != 700 {
		t.Errorf("ascent: got %g", got)
	}
	got := f.ConvertToBytes("Aﬁ")
	if d := cmp.Diff([]byte{65, 66}, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	dict := flushed(t, f, w)
	if dict["BaseFont"] != pdf.Name("ABCDEF+Donor") {
		t.Errorf("BaseFont: got %v", dict["BaseFont"])
	}

	widths, _ := dict["Widths"].(pdf.Array)
	if dict["FirstChar"] != pdf.Integer(0) || len(widths) != 256 {
		t.Fatalf("wrong widths: FirstChar=%v, %d entries", dict["FirstChar"], len(widths))
	}
	if widths[65] != pdf.Integer(600) || widths[66] != pdf.Integer(650) {
		t.Errorf("wrong widths: %v %v", widths[65], widths[66])
	}

	encDict, err := pdf.GetDict(w, dict["Encoding"])
	if err != nil {
		t.Fatal(err)
	}
	if encDict["BaseEncoding"] != pdf.Name("WinAnsiEncoding") {
		t.Errorf("BaseEncoding: got %v", encDict["BaseEncoding"])
	}
	diffs, _ := encDict["Differences"].(pdf.Array)
	hasFi := false
	for _, obj := range diffs {
		switch obj {
		case pdf.Name("fi"):
			hasFi = true
		case pdf.Name("B"):
			t.Error("code 66 still maps to B")
		}
	}
	if !hasFi {
		t.Error("missing difference for code 66")
	}

	info, err := tounicode.Extract(w, dict["ToUnicode"])
	if err != nil {
		t.Fatal(err)
	}
	wantUni := map[byte]string{65: "A", 66: "ﬁ"}
	if d := cmp.Diff(wantUni, info.SingleByte()); d != "" {
		t.Errorf("ToUnicode (-want +got):\n%s", d)
	}

	fd, err := pdf.GetDictTyped(w, dict["FontDescriptor"], "FontDescriptor")
	if err != nil {
		t.Fatal(err)
	}
	if fd["FontName"] != pdf.Name("ABCDEF+Donor") {
		t.Errorf("FontName: got %v", fd["FontName"])
	}
	if fd["Ascent"] != pdf.Number(700) {
		t.Errorf("Ascent: got %v", fd["Ascent"])
	}
	if _, ok := fd["FontFile"]; ok {
		t.Error("font file stored under a new key")
	}
	stm, err := pdf.GetStream(w, fd["FontFile3"])
	if err != nil {
		t.Fatal(err)
	}
	if stm == nil || stm.Dict["Subtype"] != pdf.Name("Type1C") {
		t.Fatalf("wrong font file %v", stm)
	}
	data, err := pdf.ReadAll(w, fd["FontFile3"])
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "font data" {
		t.Errorf("font file data: got %q", data)
	}
}

func TestImportStandard(t *testing.T) {
	r := pdf.NewData()
	ref := r.Alloc()
	err := r.Put(ref, pdf.Dict{
		"Type":     pdf.Name("Font"),
		"Subtype":  pdf.Name("Type1"),
		"BaseFont": pdf.Name("Helvetica"),
	})
	if err != nil {
		t.Fatal(err)
	}

	w := pdf.NewData()
	f, err := Import(w, r, ref)
	if err != nil {
		t.Fatal(err)
	}
	if !f.IsBuiltIn() {
		t.Error("Helvetica not marked as built-in")
	}
	if f.IsEmbedded() {
		t.Error("font without font file marked as embedded")
	}
	if got := f.ConvertToBytes("A"); !bytes.Equal(got, []byte("A")) {
		t.Errorf("got %v", got)
	}

	dict := flushed(t, f, w)
	want := pdf.Dict{
		"Type":     pdf.Name("Font"),
		"Subtype":  pdf.Name("Type1"),
		"BaseFont": pdf.Name("Helvetica"),
	}
	if d := cmp.Diff(want, dict); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestImportToUnicodeEncoding(t *testing.T) {
	r := pdf.NewData()
	toUniRef, err := tounicode.FromMapping(map[byte]string{1: "A", 2: "B"}).Embed(r)
	if err != nil {
		t.Fatal(err)
	}
	fdRef := r.Alloc()
	err = r.Put(fdRef, pdf.Dict{
		"Type":     pdf.Name("FontDescriptor"),
		"FontName": pdf.Name("Custom"),
		"Flags":    pdf.Integer(font.FlagNonsymbolic),
	})
	if err != nil {
		t.Fatal(err)
	}
	ref := r.Alloc()
	err = r.Put(ref, pdf.Dict{
		"Type":           pdf.Name("Font"),
		"Subtype":        pdf.Name("Type1"),
		"BaseFont":       pdf.Name("Custom"),
		"FirstChar":      pdf.Integer(1),
		"LastChar":       pdf.Integer(2),
		"Widths":         pdf.Array{pdf.Integer(500), pdf.Real(600)},
		"FontDescriptor": fdRef,
		"ToUnicode":      toUniRef,
	})
	if err != nil {
		t.Fatal(err)
	}

	f, err := Import(pdf.NewData(), r, ref)
	if err != nil {
		t.Fatal(err)
	}
	got := f.ConvertToBytes("BA")
	if d := cmp.Diff([]byte{2, 1}, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
	if got := f.Width('B'); got != 600 {
		t.Errorf("width: got %g", got)
	}
}

func TestImportMalformedToUnicode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pdffont.font")
	defer teardown()

	r := pdf.NewData()
	toUniRef := r.Alloc()
	err := r.Put(toUniRef, pdf.NewStream(pdf.Dict{}, []byte("garbage")))
	if err != nil {
		t.Fatal(err)
	}
	ref := r.Alloc()
	err = r.Put(ref, pdf.Dict{
		"Type":      pdf.Name("Font"),
		"Subtype":   pdf.Name("Type1"),
		"BaseFont":  pdf.Name("Custom"),
		"FirstChar": pdf.Integer(65),
		"LastChar":  pdf.Integer(65),
		"Widths":    pdf.Array{pdf.Integer(500)},
		"ToUnicode": toUniRef,
	})
	if err != nil {
		t.Fatal(err)
	}

	w := pdf.NewData()
	f, err := Import(w, r, ref)
	if err != nil {
		t.Fatal(err)
	}
	if got := f.ConvertToBytes("A"); !bytes.Equal(got, []byte("A")) {
		t.Errorf("got %v", got)
	}
	if got := f.Width('A'); got != 500 {
		t.Errorf("width: got %g", got)
	}

	dict := flushed(t, f, w)
	if _, ok := dict["ToUnicode"]; ok {
		t.Error("malformed ToUnicode CMap was copied")
	}
}

func TestImportNotType1(t *testing.T) {
	r := pdf.NewData()
	ref := r.Alloc()
	err := r.Put(ref, pdf.Dict{
		"Type":     pdf.Name("Font"),
		"Subtype":  pdf.Name("TrueType"),
		"BaseFont": pdf.Name("Arial"),
	})
	if err != nil {
		t.Fatal(err)
	}

	_, err = Import(pdf.NewData(), r, ref)
	if !font.IsUnsupported(err) {
		t.Errorf("expected NotSupportedError, got %v", err)
	}
}
