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

// standardFonts lists the PostScript names of the 14 standard fonts, which
// every PDF viewer provides, together with their descriptor flags.
var standardFonts = map[string]Flags{
	"Courier":               FlagFixedPitch | FlagNonsymbolic,
	"Courier-Bold":          FlagFixedPitch | FlagNonsymbolic,
	"Courier-BoldOblique":   FlagFixedPitch | FlagItalic | FlagNonsymbolic,
	"Courier-Oblique":       FlagFixedPitch | FlagItalic | FlagNonsymbolic,
	"Helvetica":             FlagNonsymbolic,
	"Helvetica-Bold":        FlagNonsymbolic,
	"Helvetica-BoldOblique": FlagItalic | FlagNonsymbolic,
	"Helvetica-Oblique":     FlagItalic | FlagNonsymbolic,
	"Times-Roman":           FlagSerif | FlagNonsymbolic,
	"Times-Bold":            FlagSerif | FlagNonsymbolic,
	"Times-BoldItalic":      FlagSerif | FlagItalic | FlagNonsymbolic,
	"Times-Italic":          FlagSerif | FlagItalic | FlagNonsymbolic,
	"Symbol":                FlagSymbolic,
	"ZapfDingbats":          FlagSymbolic,
}

// IsStandard reports whether name is the PostScript name of one of the
// standard 14 fonts.  Subset tags are not recognised.
func IsStandard(name string) bool {
	_, ok := standardFonts[name]
	return ok
}

// StandardFlags returns the font descriptor flags of a standard font.
// The result is 0 for all other fonts.
func StandardFlags(name string) Flags {
	return standardFonts[name]
}
