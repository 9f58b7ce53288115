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
	"errors"
	"fmt"
	"strings"
)

// MalformedFileError indicates that a PDF file could not be parsed,
// or that an object read from a PDF file does not have the expected
// structure.
type MalformedFileError struct {
	Err error
	Loc []string
}

func (err *MalformedFileError) Error() string {
	parts := []string{"not a valid PDF file"}
	for i := len(err.Loc) - 1; i >= 0; i-- {
		parts = append(parts, err.Loc[i])
	}
	if err.Err != nil {
		parts = append(parts, err.Err.Error())
	}
	return strings.Join(parts, ": ")
}

func (err *MalformedFileError) Unwrap() error {
	return err.Err
}

// Error returns a [MalformedFileError] with the given message.
func Error(msg string) error {
	return &MalformedFileError{Err: errors.New(msg)}
}

// Errorf returns a [MalformedFileError] with a formatted message.
func Errorf(format string, args ...any) error {
	return &MalformedFileError{Err: fmt.Errorf(format, args...)}
}

// Wrap adds location information to a [MalformedFileError].
// Other errors are returned unchanged.  If err is nil, nil is returned.
func Wrap(err error, loc string) error {
	if err == nil {
		return nil
	}
	var e *MalformedFileError
	if errors.As(err, &e) {
		return &MalformedFileError{
			Err: e.Err,
			Loc: append(append([]string{}, e.Loc...), loc),
		}
	}
	return err
}

// IsMalformed returns true if err indicates a malformed PDF file.
func IsMalformed(err error) bool {
	var e *MalformedFileError
	return errors.As(err, &e)
}

// ErrFlushed is used in panics when an object is modified after it
// has been written to the document.
var ErrFlushed = errors.New("object already flushed")
