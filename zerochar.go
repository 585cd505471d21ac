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

// computeZeroChar fills in CanMatchZeroChars for every clause in clauses
// (spec.md 4.4(f)). CanMatchZeroChars means the clause is unconditionally
// guaranteed to succeed with a zero-length match at any position - not
// merely that it's capable of matching zero characters some of the time.
// That stronger guarantee is what lets MemoTable.LookupBestMatch
// synthesize a zero-length match for such a clause without consulting the
// memo table at all (spec.md 4.2 step 3), and what lets a Seq's later
// children (seedparents.go) assume an earlier child consumed nothing.
//
// Because the clause graph can contain cycles (left recursion), a single
// bottom-up pass isn't enough in general: a clause whose nullability
// depends on a not-yet-settled cyclic peer needs to be revisited once that
// peer settles. This runs to a fixed point instead, which terminates
// because CanMatchZeroChars only ever flips false->true.
func computeZeroChar(clauses []*Clause) {
	for {
		changed := false
		for _, c := range clauses {
			if zeroCharOf(c) && !c.CanMatchZeroChars {
				c.CanMatchZeroChars = true
				changed = true
			}
		}
		if !changed {
			return
		}
	}
}

func zeroCharOf(c *Clause) bool {
	switch c.Kind {
	case KindCharTerminal:
		return false
	case KindCharSeqTerminal:
		return c.Literal == ""
	case KindNothingTerminal:
		return true
	case KindStartTerminal:
		// Only unconditionally zero-width at position 0, not everywhere;
		// synthesizing a match for it at an arbitrary position would be
		// wrong, so it does not qualify.
		return false
	case KindSeq:
		for _, sub := range c.Subs {
			if !sub.Clause.CanMatchZeroChars {
				return false
			}
		}
		return true
	case KindFirst:
		for _, sub := range c.Subs {
			if sub.Clause.CanMatchZeroChars {
				return true
			}
		}
		return false
	case KindOneOrMore:
		return c.Subs[0].Clause.CanMatchZeroChars
	case KindFollowedBy:
		// Succeeds unconditionally only if its child does.
		return c.Subs[0].Clause.CanMatchZeroChars
	case KindNotFollowedBy:
		// Never unconditional: it succeeds exactly where its child fails,
		// which depends on position and input, never a given.
		return false
	default:
		panic("zeroCharOf: unhandled clause kind " + c.Kind.String())
	}
}

// checkZeroCharInvariants enforces spec.md 3/6's well-formedness
// invariants, all checked after computeZeroChar has reached its fixed
// point:
//
//   - within a First, only the last alternative may be able to match zero
//     characters (an earlier nullable alternative makes every alternative
//     after it unreachable, since First always takes the first match it
//     finds);
//   - a NotFollowedBy's child must not be able to match zero characters
//     (such a lookahead can never succeed, since the child always matches);
//   - a Nothing clause must never appear as the first sub-clause of any
//     clause - it would unhelpfully seed the entire memo table at every
//     position (spec.md 3).
func checkZeroCharInvariants(clauses []*Clause) error {
	for _, c := range clauses {
		if len(c.Subs) > 0 && c.Subs[0].Clause.Kind == KindNothingTerminal {
			return newGrammarError(ErrInvariantViolation, "",
				c.Kind.String()+" clause \""+c.canonical+"\" has Nothing as its first sub-clause")
		}
		switch c.Kind {
		case KindFirst:
			for i, sub := range c.Subs {
				if sub.Clause.CanMatchZeroChars && i != len(c.Subs)-1 {
					return newGrammarError(ErrInvariantViolation, "",
						"First clause \""+c.canonical+"\" has a nullable alternative before its last")
				}
			}
		case KindNotFollowedBy:
			if c.Subs[0].Clause.CanMatchZeroChars {
				return newGrammarError(ErrInvariantViolation, "",
					"NotFollowedBy clause \""+c.canonical+"\" can never fail: its child always matches")
			}
		}
	}
	return nil
}
