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

import "errors"

// InvalidFontError is returned when a font program is unusable, for
// example because its metrics contradict the glyph outlines.
type InvalidFontError struct {
	SubSystem string
	Reason    string
}

func (err *InvalidFontError) Error() string {
	return err.SubSystem + ": " + err.Reason
}

// IsInvalid reports whether err, or an error wrapped by err, is an
// [InvalidFontError].
func IsInvalid(err error) bool {
	var target *InvalidFontError
	return errors.As(err, &target)
}

// NotSupportedError is returned when a font dictionary is valid but
// describes a font type which is not handled by this module, for example a
// TrueType or composite font.
type NotSupportedError struct {
	SubSystem string
	Feature   string
}

func (err *NotSupportedError) Error() string {
	return err.SubSystem + ": " + err.Feature + " not supported"
}

// IsUnsupported reports whether err, or an error wrapped by err, is a
// [NotSupportedError].
func IsUnsupported(err error) bool {
	var target *NotSupportedError
	return errors.As(err, &target)
}
