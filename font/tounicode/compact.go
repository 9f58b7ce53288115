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

package tounicode

import (
	"unicode/utf16"

	"seehuhn.de/go/dag"
)

// compact splits a list of mappings, sorted by increasing code, into
// bfchar and bfrange entries such that the resulting CMap is short.
func compact(mappings []Single) ([]Single, []Range) {
	if len(mappings) == 0 {
		return nil, nil
	}

	g := compactGraph(mappings)
	ee, err := dag.ShortestPath[compactEdge, int](g, len(mappings))
	if err != nil {
		panic(err)
	}

	var singles []Single
	var ranges []Range
	v := 0
	for _, e := range ee {
		next := g.To(v, e)
		switch {
		case e == 0:
			singles = append(singles, mappings[v])
		case e > 0:
			ranges = append(ranges, Range{
				First: mappings[v].Code,
				Last:  mappings[next-1].Code,
				Text:  []string{mappings[v].Text},
			})
		default:
			text := make([]string, 0, next-v)
			for _, m := range mappings[v:next] {
				text = append(text, m.Text)
			}
			ranges = append(ranges, Range{
				First: mappings[v].Code,
				Last:  mappings[next-1].Code,
				Text:  text,
			})
		}
		v = next
	}
	return singles, ranges
}

type compactGraph []Single

// A compactEdge describes how the next mappings are encoded:
//
//	e=0: a single bfchar entry
//	e>0: a bfrange with incrementing text, covering e codes
//	e<0: a bfrange with an array of texts, covering -e codes
type compactEdge int16

func (g compactGraph) AppendEdges(ee []compactEdge, v int) []compactEdge {
	ee = append(ee, 0)

	// incrementing ranges
	if canIncrement(g[v].Text) {
		rr := []rune(g[v].Text)
		i := v + 1
		for i < len(g) && g[i].Code == g[i-1].Code+1 {
			rr[len(rr)-1]++
			if rr[len(rr)-1]&0xFF == 0 || string(rr) != g[i].Text {
				break
			}
			i++
		}
		if i > v+1 {
			ee = append(ee, compactEdge(i-v))
		}
	}

	// ranges with arrays
	i := v + 1
	for i < len(g) && g[i].Code == g[i-1].Code+1 {
		i++
		ee = append(ee, compactEdge(v-i))
	}
	return ee
}

func (g compactGraph) Length(v int, e compactEdge) int {
	switch {
	case e == 0:
		// "<xx> <yyyy>\n"
		return 8 + textLength(g[v].Text)
	case e > 0:
		// "<xx> <xx> <yyyy>\n"
		return 13 + textLength(g[v].Text)
	default:
		// "<xx> <xx> [<yyyy> ...]\n"
		length := 12
		for _, m := range g[v : v-int(e)] {
			length += 1 + textLength(m.Text)
		}
		return length
	}
}

func (g compactGraph) To(v int, e compactEdge) int {
	switch {
	case e == 0:
		return v + 1
	case e > 0:
		return v + int(e)
	default:
		return v - int(e)
	}
}

// canIncrement reports whether text can be used as the start of a
// bfrange entry with incrementing values.
func canIncrement(text string) bool {
	rr := []rune(text)
	return len(rr) == 1 && rr[0] < 0xFFFF && rr[0]&0xFF != 0xFF
}

func textLength(text string) int {
	return 2 + 4*len(utf16.Encode([]rune(text)))
}
