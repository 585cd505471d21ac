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

import "testing"

func TestMemoTableLookupBestMatchSynthesizesZeroLength(t *testing.T) {
	nothing := &Clause{Kind: KindNothingTerminal, CanMatchZeroChars: true}
	tbl := NewMemoTable("abc")
	m := tbl.LookupBestMatch(MemoKey{Clause: nothing, Pos: 2})
	if m == nil || m.Length != 0 {
		t.Fatalf("expected a synthesized zero-length match, got %v", m)
	}
}

func TestMemoTableAddMatchKeepsBetterMatch(t *testing.T) {
	first := &Clause{Kind: KindFirst}
	tbl := NewMemoTable("abc")
	pq := newPriorityQueue()
	key := MemoKey{Clause: first, Pos: 0}

	worse := &Match{Key: key, Length: 1, FirstAltIndex: 1}
	better := &Match{Key: key, Length: 1, FirstAltIndex: 0}

	if !tbl.AddMatch(key, worse, pq) {
		t.Fatal("expected the first match stored to count as an update")
	}
	if !tbl.AddMatch(key, better, pq) {
		t.Fatal("expected a lower FirstAltIndex to count as an improvement")
	}
	if got := tbl.LookupBestMatch(key); got.FirstAltIndex != 0 {
		t.Errorf("got FirstAltIndex %d, want 0", got.FirstAltIndex)
	}
	if tbl.AddMatch(key, worse, pq) {
		t.Error("expected a worse match not to overwrite a better one")
	}
}

func TestMemoTableAddMatchPushesSeedParents(t *testing.T) {
	parent := &Clause{Kind: KindFirst, ClauseIndex: 1}
	child := &Clause{Kind: KindCharTerminal, ClauseIndex: 0, SeedParents: []*Clause{parent}}
	tbl := NewMemoTable("a")
	pq := newPriorityQueue()

	tbl.AddMatch(MemoKey{Clause: child, Pos: 0}, &Match{Length: 1}, pq)

	c, pos, ok := pq.pop()
	if !ok || c != parent || pos != 0 {
		t.Fatalf("pop() = (%v, %d, %v), want (parent, 0, true)", c, pos, ok)
	}
	if _, _, ok := pq.pop(); ok {
		t.Error("expected the queue to be empty after draining the one push")
	}
}
