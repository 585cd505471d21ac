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

import "fmt"

// MemoKey identifies a (clause, start-position) pair. Because clauses are
// interned during grammar construction (intern.go), pointer equality on
// Clause already gives the structural equality the spec calls for, so
// MemoKey can be used directly as a Go map key with no custom hashing.
type MemoKey struct {
	Clause *Clause
	Pos    int
}

// Match represents a successful parse of a clause at a position.
//
// Terminal matches carry no sub-matches. OneOrMore matches are stored in
// right-recursive two-element form: SubMatches is [head, tail] where tail
// is itself a OneOrMore match, or [head] when there is no further
// repetition (spec.md 3, 4.1).
type Match struct {
	Key MemoKey

	// Length is the number of input bytes consumed; >= 0.
	Length int

	// FirstAltIndex is, for a match of a First clause, the index of the
	// alternative that matched. Zero for every other clause kind.
	FirstAltIndex int

	// SubMatches is ordered; its arity is determined by the clause kind:
	// empty for terminals, one per child for Seq, exactly one for First,
	// one or two (right-recursive) for OneOrMore, empty for
	// FollowedBy/NotFollowedBy (the lookahead result carries no content).
	SubMatches []*Match
}

// IsBetterThan implements the "better match" ordering of spec.md 4.2: for
// two matches of the same memo key, a First match is better if it chose an
// earlier (lower-index) alternative; otherwise a longer match is better;
// otherwise neither is better.
func (m *Match) IsBetterThan(existing *Match) bool {
	if existing == nil {
		return true
	}
	if m.Key.Clause.Kind == KindFirst && m.FirstAltIndex < existing.FirstAltIndex {
		return true
	}
	return m.Length > existing.Length
}

// IsZeroLength reports whether the match consumed no input.
func (m *Match) IsZeroLength() bool {
	return m.Length == 0
}

// End returns the position immediately after the matched range.
func (m *Match) End() int {
	return m.Key.Pos + m.Length
}

// FlattenOneOrMore returns the maximal sequence of child matches that make
// up a OneOrMore match's right-recursive chain, in left-to-right order
// (spec.md 8, invariant 3). It panics if m is not a match of a OneOrMore
// clause.
func (m *Match) FlattenOneOrMore() []*Match {
	if m.Key.Clause.Kind != KindOneOrMore {
		panic("FlattenOneOrMore: not a OneOrMore match")
	}
	var out []*Match
	cur := m
	for {
		out = append(out, cur.SubMatches[0])
		if len(cur.SubMatches) < 2 {
			return out
		}
		cur = cur.SubMatches[1]
	}
}

func (m *Match) String() string {
	if m == nil {
		return "<no match>"
	}
	return fmt.Sprintf("%s@%d+%d", m.Key.Clause.Canonical(), m.Key.Pos, m.Length)
}
