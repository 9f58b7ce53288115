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

// Package font implements the parts of PDF font handling which are shared
// between the different kinds of simple fonts.
//
// A font program, described by the [Program] interface, provides glyphs,
// metrics and the data to embed.  The sub-packages build on this:
//
//   - [seehuhn.de/go/pdffont/font/pdfenc] has the glyph name tables of the
//     standard PDF encodings.
//   - [seehuhn.de/go/pdffont/font/encoding] maps single-byte codes to
//     glyph names and Unicode values.
//   - [seehuhn.de/go/pdffont/font/tounicode] reads and writes ToUnicode
//     CMaps.
//   - [seehuhn.de/go/pdffont/font/simple] converts text to codes and
//     writes simple font dictionaries.
//   - [seehuhn.de/go/pdffont/font/type1] implements Type 1 fonts.
//
// # Font descriptors
//
// [BuildDescriptor] creates the font descriptor of a newly embedded font
// from the metrics of the font program.  [ImportDescriptor] copies a font
// descriptor from another PDF document and updates the metrics of the font
// program to match the copied values.
package font
