// Copyright 2023 Google LLC.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pika

import (
	"fmt"
	"strings"
)

// charRange is one inclusive, independently-invertible sub-set of a CharSet.
type charRange struct {
	lo, hi   rune // inclusive
	inverted bool
}

func (r charRange) matches(c rune) bool {
	in := c >= r.lo && c <= r.hi
	if r.inverted {
		return !in
	}
	return in
}

// CharSet is a union of independently-invertible character ranges, matched
// by the Char terminal clause kind. Union semantics is logical-OR of the
// sub-range membership tests (spec.md 4.1).
type CharSet struct {
	ranges []charRange
}

// NewCharSet builds an empty CharSet. Use AddRange/AddRune/AddInvertedRange
// to populate it before passing it to Ch.
func NewCharSet() *CharSet {
	return &CharSet{}
}

// AddRange adds an inclusive [lo, hi] range to the set.
func (cs *CharSet) AddRange(lo, hi rune) *CharSet {
	cs.ranges = append(cs.ranges, charRange{lo: lo, hi: hi})
	return cs
}

// AddInvertedRange adds a range that matches every codepoint NOT in [lo, hi].
func (cs *CharSet) AddInvertedRange(lo, hi rune) *CharSet {
	cs.ranges = append(cs.ranges, charRange{lo: lo, hi: hi, inverted: true})
	return cs
}

// AddRune adds a single codepoint to the set.
func (cs *CharSet) AddRune(c rune) *CharSet {
	return cs.AddRange(c, c)
}

// AddRunes adds every codepoint in s to the set.
func (cs *CharSet) AddRunes(s string) *CharSet {
	for _, c := range s {
		cs.AddRune(c)
	}
	return cs
}

// Matches reports whether c belongs to the union of sub-ranges.
func (cs *CharSet) Matches(c rune) bool {
	for _, r := range cs.ranges {
		if r.matches(c) {
			return true
		}
	}
	return false
}

// canonical renders the char set the way a grammar author would write it,
// e.g. "[a-zA-Z_]" or "[^0-9]". Used by interning (intern.go) to build each
// Clause's canonical string.
func (cs *CharSet) canonical() string {
	var b strings.Builder
	b.WriteByte('[')
	for _, r := range cs.ranges {
		if r.inverted {
			b.WriteByte('^')
		}
		if r.lo == r.hi {
			fmt.Fprintf(&b, "%c", r.lo)
		} else {
			fmt.Fprintf(&b, "%c-%c", r.lo, r.hi)
		}
	}
	b.WriteByte(']')
	return b.String()
}
