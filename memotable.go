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

// MemoTable maps (clause, start-position) keys to the best-known match,
// filled in by a single Grammar.Parse call. It is owned by that one parse;
// the Grammar it was built against may be shared across many concurrent
// parses, each with its own MemoTable (spec.md 5).
type MemoTable struct {
	input string
	table map[MemoKey]*Match

	// Diagnostic counters only, per spec.md 5 ("the only data structure
	// with concurrent connotations in the source is a counter, retained
	// here purely as a diagnostic"). Never read by matching logic.
	MatchesCreated  int
	MatchesMemoized int
}

// NewMemoTable creates an empty memo table over input.
func NewMemoTable(input string) *MemoTable {
	return &MemoTable{input: input, table: make(map[MemoKey]*Match)}
}

// Input returns the string this table was built over.
func (t *MemoTable) Input() string {
	return t.input
}

// LookupBestMatch implements spec.md 4.2's four-step lookup policy:
//
//  1. a stored match, if present;
//  2. otherwise, for NotFollowedBy, a top-down evaluation (never stored);
//  3. otherwise, for a clause that can match zero characters, a
//     synthesized zero-length placeholder (never stored);
//  4. otherwise nil.
//
// Consumers (Seq in particular) must tolerate the zero-length,
// sub-match-less placeholder matches synthesized by step 3.
func (t *MemoTable) LookupBestMatch(key MemoKey) *Match {
	if m, ok := t.table[key]; ok {
		return m
	}
	if key.Clause.Kind == KindNotFollowedBy {
		return key.Clause.matchNotFollowedBy(t, key)
	}
	if key.Clause.CanMatchZeroChars {
		return &Match{Key: key, Length: 0}
	}
	return nil
}

// AddMatch stores newMatch if it improves on (or fills) the slot for its
// key, then enqueues every seed-parent of key.Clause that should be
// re-examined: either because the stored match just changed, or because the
// seed-parent itself can match zero characters and therefore deserves a
// chance to match here even though its triggering child did not improve
// (spec.md 4.2). It reports whether the stored match changed.
func (t *MemoTable) AddMatch(key MemoKey, newMatch *Match, pq *priorityQueue) bool {
	if newMatch == nil {
		return false
	}
	t.MatchesCreated++
	existing, had := t.table[key]
	updated := !had || newMatch.IsBetterThan(existing)
	if updated {
		t.table[key] = newMatch
		t.MatchesMemoized++
	}
	for _, parent := range key.Clause.SeedParents {
		if updated || parent.CanMatchZeroChars {
			pq.push(parent, key.Pos)
		}
	}
	return updated
}
