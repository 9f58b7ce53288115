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
	"compress/zlib"
	"fmt"
	"io"
)

// A Filter transforms stream data for storage in a PDF file.
type Filter interface {
	// Name returns the value of the /Filter entry of the stream.
	Name() Name

	Encode(data []byte) ([]byte, error)
	Decode(data []byte) ([]byte, error)
}

// FilterCompress compresses stream data using the FlateDecode filter.
type FilterCompress struct{}

// Name implements the [Filter] interface.
func (FilterCompress) Name() Name {
	return "FlateDecode"
}

// Encode implements the [Filter] interface.
func (FilterCompress) Encode(data []byte) ([]byte, error) {
	buf := &bytes.Buffer{}
	zw, err := zlib.NewWriterLevel(buf, zlib.BestCompression)
	if err != nil {
		return nil, err
	}
	_, err = zw.Write(data)
	if err != nil {
		return nil, err
	}
	err = zw.Close()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode implements the [Filter] interface.
func (FilterCompress) Decode(data []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, &MalformedFileError{Err: err}
	}
	res, err := io.ReadAll(zr)
	if err != nil {
		return nil, &MalformedFileError{Err: err}
	}
	return res, nil
}

// NewFilteredStream returns a stream which holds data encoded with the
// given filters.  The filters are applied in reverse order, so that a PDF
// reader decodes them in the order given.
func NewFilteredStream(dict Dict, data []byte, filters ...Filter) (*Stream, error) {
	if dict == nil {
		dict = Dict{}
	}
	var names Array
	for i := len(filters) - 1; i >= 0; i-- {
		var err error
		data, err = filters[i].Encode(data)
		if err != nil {
			return nil, err
		}
	}
	for _, f := range filters {
		names = append(names, f.Name())
	}
	switch len(names) {
	case 0:
		// no filter
	case 1:
		dict["Filter"] = names[0]
	default:
		dict["Filter"] = names
	}
	return NewStream(dict, data), nil
}

// decode undoes the filters listed in the /Filter entry of a stream.
func decode(r Getter, dict Dict, data []byte) ([]byte, error) {
	obj, err := Resolve(r, dict["Filter"])
	if err != nil {
		return nil, err
	}
	var names Array
	switch obj := obj.(type) {
	case nil:
		return data, nil
	case Name:
		names = Array{obj}
	case Array:
		names = obj
	default:
		return nil, &MalformedFileError{
			Err: fmt.Errorf("invalid /Filter entry of type %T", obj),
		}
	}
	for _, item := range names {
		name, err := GetName(r, item)
		if err != nil {
			return nil, err
		}
		switch name {
		case "FlateDecode", "Fl":
			data, err = FilterCompress{}.Decode(data)
			if err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("unsupported filter %q", name)
		}
	}
	return data, nil
}
