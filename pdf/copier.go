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
	"errors"
)

// A Copier copies objects from one PDF document into another.
// Each indirect object is copied only once; references are
// translated to freshly allocated objects in the target document.
type Copier struct {
	trans map[Reference]Reference
	r     Getter
	w     *Data
}

// NewCopier creates a new Copier which reads from r and writes to w.
func NewCopier(w *Data, r Getter) *Copier {
	return &Copier{
		trans: make(map[Reference]Reference),
		w:     w,
		r:     r,
	}
}

// Copy copies an object from the source document to the target document,
// recursively.
//
// The returned object has the same type as the input object.
// Stream contents are read into memory, so that the copy does not share
// a reader with the original.
func (c *Copier) Copy(obj Object) (Object, error) {
	switch x := obj.(type) {
	case Dict:
		return c.CopyDict(x)
	case Array:
		return c.CopyArray(x)
	case *Stream:
		return c.CopyStream(x)
	case Reference:
		return c.CopyReference(x)
	case String:
		return String(bytes.Clone(x)), nil
	default:
		return obj, nil
	}
}

// CopyDict copies a dictionary from the source document to the target.
func (c *Copier) CopyDict(obj Dict) (Dict, error) {
	if obj == nil {
		return nil, nil
	}
	res := make(Dict, len(obj))
	for key, val := range obj {
		repl, err := c.Copy(val)
		if err != nil {
			return nil, err
		}
		res[key] = repl
	}
	return res, nil
}

// CopyArray copies an array from the source document to the target.
func (c *Copier) CopyArray(obj Array) (Array, error) {
	if obj == nil {
		return nil, nil
	}
	res := make(Array, len(obj))
	for i, val := range obj {
		repl, err := c.Copy(val)
		if err != nil {
			return nil, err
		}
		res[i] = repl
	}
	return res, nil
}

// CopyStream copies a stream, including its contents.
func (c *Copier) CopyStream(obj *Stream) (*Stream, error) {
	dict, err := c.CopyDict(obj.Dict)
	if err != nil {
		return nil, err
	}
	data, err := obj.data()
	if err != nil {
		return nil, err
	}
	return &Stream{
		Dict: dict,
		R:    bytes.NewReader(data),
	}, nil
}

// CopyReference copies an indirect object from the source document to the
// target, and returns the reference of the copy.
//
// Chains of indirect references are shortened: the returned reference
// always points to a direct object.
func (c *Copier) CopyReference(obj Reference) (Reference, error) {
	newRef, ok := c.trans[obj]
	if ok {
		return newRef, nil
	}
	newRef = c.w.Alloc()
	c.trans[obj] = newRef

	val, err := Resolve(c.r, obj)
	if err != nil {
		return 0, err
	}
	if val == nil {
		// Null objects cannot be stored.  Keep the reference dangling,
		// which again resolves to null.
		return newRef, nil
	}
	trans, err := c.Copy(val)
	if err != nil {
		return 0, err
	}
	err = c.w.Put(newRef, trans)
	if err != nil {
		return 0, err
	}
	return newRef, nil
}

// CopyIndirect copies obj into the target document as an indirect object
// and returns its reference.  If obj already is a reference, this is the
// same as [Copier.CopyReference].
func (c *Copier) CopyIndirect(obj Object) (Reference, error) {
	if ref, ok := obj.(Reference); ok {
		return c.CopyReference(ref)
	}
	if obj == nil {
		return 0, errors.New("pdf: cannot store null object")
	}
	trans, err := c.Copy(obj)
	if err != nil {
		return 0, err
	}
	ref := c.w.Alloc()
	err = c.w.Put(ref, trans)
	if err != nil {
		return 0, err
	}
	return ref, nil
}
