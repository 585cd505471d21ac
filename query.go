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

// BestMatch returns the best-known match of clause starting at pos,
// applying the same zero-length-synthesis policy as the driver loop
// (spec.md 4.2). Unlike AllMatches and NonoverlappingMatches, it reports a
// synthesized zero-length match for a nullable clause even at a position
// the driver loop never actually stored an entry for.
func (t *MemoTable) BestMatch(clause *Clause, pos int) *Match {
	return t.LookupBestMatch(MemoKey{Clause: clause, Pos: pos})
}

// AllMatches returns every position's stored match of clause, in
// ascending position order. Unlike BestMatch, it never synthesizes a
// zero-length placeholder: only positions the driver loop actually stored
// an entry for are included.
func (t *MemoTable) AllMatches(clause *Clause) []*Match {
	var out []*Match
	for pos := 0; pos <= len(t.input); pos++ {
		if m, ok := t.table[MemoKey{Clause: clause, Pos: pos}]; ok {
			out = append(out, m)
		}
	}
	return out
}

// NonoverlappingMatches greedily scans left to right, taking the stored
// match of clause at the first position one is found, skipping past it
// (by at least one byte, so a zero-length match can't stall the scan),
// and repeating from there. It's the building block for spanning a whole
// input with one rule's matches, e.g. for syntax-error reporting.
func (t *MemoTable) NonoverlappingMatches(clause *Clause) []*Match {
	var out []*Match
	for pos := 0; pos <= len(t.input); {
		m, ok := t.table[MemoKey{Clause: clause, Pos: pos}]
		if !ok {
			pos++
			continue
		}
		out = append(out, m)
		if m.Length > 0 {
			pos += m.Length
		} else {
			pos++
		}
	}
	return out
}

// SyntaxError is a maximal byte range of the input that no match of any of
// the queried rules covers.
type SyntaxError struct {
	Start int
	End   int
	Text  string
}

// SyntaxErrors reports, as the complement of ruleNames' nonoverlapping
// matches over [0, len(input)), every stretch of input those rules failed
// to account for. An empty result means ruleNames' matches, end to end,
// cover the whole input - the usual definition of "the grammar parsed
// successfully" for a rule list that can't overlap (spec.md 7: parsing
// itself never errors, so this is the library's syntax-error surface).
func (g *Grammar) SyntaxErrors(tbl *MemoTable, ruleNames ...string) []SyntaxError {
	n := len(tbl.input)
	covered := make([]bool, n+1)
	for _, name := range ruleNames {
		rule := g.RuleByName(name)
		if rule == nil {
			continue
		}
		for _, m := range tbl.NonoverlappingMatches(rule.TopClause) {
			for p := m.Key.Pos; p < m.End(); p++ {
				covered[p] = true
			}
		}
	}
	return complementIntervals(covered, tbl.input)
}

// complementIntervals returns the maximal runs of false in covered[0:len(text)]
// as SyntaxErrors over text.
func complementIntervals(covered []bool, text string) []SyntaxError {
	var out []SyntaxError
	n := len(text)
	for i := 0; i < n; {
		if covered[i] {
			i++
			continue
		}
		start := i
		for i < n && !covered[i] {
			i++
		}
		out = append(out, SyntaxError{Start: start, End: i, Text: text[start:i]})
	}
	return out
}
