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

// Package pdf implements the PDF object model used by the font packages.
//
// The nine basic object types are represented by [Bool], [Integer], [Real],
// [String], [Name], [Array], [Dict], [*Stream] and [Reference].  A [Data]
// value holds the indirect objects of an in-memory document: fonts allocate
// references with [Data.Alloc] and store their dictionaries using
// [Data.Put].  Objects can be read back through the [Getter] interface,
// using helpers like [GetDict] or [GetNumber] which resolve references and
// check types.  A [Copier] transfers objects between documents.
package pdf
