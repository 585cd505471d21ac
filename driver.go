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

// Parse runs the pika algorithm (spec.md 4.3) over input and returns the
// resulting memo table. Parsing never fails: a MemoTable with no match for
// any rule at position 0 simply means the grammar didn't match, and
// Grammar.SyntaxErrors (query.go) exposes that as a syntax error, not a Go error.
func (g *Grammar) Parse(input string, opts Options) *MemoTable {
	log := opts.logger()
	tbl := NewMemoTable(input)
	pq := newPriorityQueue()

	// Nothing is excluded: its match is synthesized on demand by
	// MemoTable.LookupBestMatch, never stored, so seeding it here would be
	// wasted work (spec.md 4.3 step 1, 5).
	var terminals []*Clause
	for _, c := range g.AllClauses {
		switch c.Kind {
		case KindCharTerminal, KindCharSeqTerminal, KindStartTerminal:
			terminals = append(terminals, c)
		}
	}

	for pos := len(input); pos >= 0; pos-- {
		for _, t := range terminals {
			pq.push(t, pos)
		}
		for {
			clause, p, ok := pq.pop()
			if !ok {
				break
			}
			key := MemoKey{Clause: clause, Pos: p}
			m := clause.match(tbl, key, input)
			if m != nil {
				tbl.AddMatch(key, m, pq)
			}
		}
	}

	if opts.Trace {
		log.Debug().
			Int("matches created", tbl.MatchesCreated).
			Int("matches memoized", tbl.MatchesMemoized).
			Msg("parse complete")
	}
	return tbl
}
