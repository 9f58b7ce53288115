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
	"io"
	"slices"

	"golang.org/x/exp/maps"
)

// Data is an in-memory representation of a PDF document.
//
// Objects are allocated with [Data.Alloc] and registered with [Data.Put].
// Once an object is registered it is considered flushed: its value is part
// of the document and must not be replaced.
type Data struct {
	objects map[Reference]Object
	lastRef uint32
}

// NewData returns a new, empty document.
func NewData() *Data {
	return &Data{
		objects: map[Reference]Object{},
	}
}

// Alloc allocates a new object number for an indirect object.
func (d *Data) Alloc() Reference {
	for {
		d.lastRef++
		ref := NewReference(d.lastRef, 0)
		if _, ok := d.objects[ref]; !ok {
			return ref
		}
	}
}

// Get returns the object stored under ref.  Unknown references resolve to
// null, as required for PDF files.
// This implements the [Getter] interface.
func (d *Data) Get(ref Reference) (Object, error) {
	obj := d.objects[ref]
	if s, ok := obj.(*Stream); ok {
		if ss, ok := s.R.(io.Seeker); ok {
			_, err := ss.Seek(0, io.SeekStart)
			if err != nil {
				return nil, err
			}
		}
	}
	return obj, nil
}

// Put registers obj as the value of the indirect object ref.
// Each reference can be written only once.
func (d *Data) Put(ref Reference, obj Object) error {
	if _, seen := d.objects[ref]; seen {
		return fmt.Errorf("object %s: %w", ref, ErrFlushed)
	}
	if obj == nil {
		return errors.New("cannot store null as an indirect object")
	}
	if ref.Number() > d.lastRef {
		d.lastRef = ref.Number()
	}
	d.objects[ref] = obj
	return nil
}

// IsFlushed reports whether an object has been stored under ref.
func (d *Data) IsFlushed(ref Reference) bool {
	_, ok := d.objects[ref]
	return ok
}

// Write writes the document as a PDF file body, followed by a
// cross-reference table and a trailer.  root, if non-zero, is stored as
// the /Root entry of the trailer.
func (d *Data) Write(w io.Writer, root Reference) error {
	pw := &posWriter{w: w}
	_, err := io.WriteString(pw, "%PDF-1.7\n%\x80\x80\x80\x80\n")
	if err != nil {
		return err
	}

	refs := maps.Keys(d.objects)
	slices.Sort(refs)
	pos := make(map[uint32]int64, len(refs))
	for _, ref := range refs {
		pos[ref.Number()] = pw.pos
		_, err = fmt.Fprintf(pw, "%d %d obj\n", ref.Number(), ref.Generation())
		if err != nil {
			return err
		}
		err = d.objects[ref].PDF(pw)
		if err != nil {
			return err
		}
		_, err = io.WriteString(pw, "\nendobj\n")
		if err != nil {
			return err
		}
	}

	xRefPos := pw.pos
	size := d.lastRef + 1
	_, err = fmt.Fprintf(pw, "xref\n0 %d\n0000000000 65535 f\r\n", size)
	if err != nil {
		return err
	}
	for i := uint32(1); i < size; i++ {
		p, ok := pos[i]
		if ok {
			_, err = fmt.Fprintf(pw, "%010d 00000 n\r\n", p)
		} else {
			_, err = io.WriteString(pw, "0000000000 00000 f\r\n")
		}
		if err != nil {
			return err
		}
	}

	trailer := Dict{
		"Size": Integer(size),
	}
	if root != 0 {
		trailer["Root"] = root
	}
	_, err = io.WriteString(pw, "trailer\n")
	if err != nil {
		return err
	}
	err = trailer.PDF(pw)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(pw, "\nstartxref\n%d\n%%%%EOF\n", xRefPos)
	return err
}

type posWriter struct {
	w   io.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}
