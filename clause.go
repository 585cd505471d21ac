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

import "strings"

// ClauseKind identifies the variant of PEG operator a Clause represents.
type ClauseKind int

const (
	KindCharTerminal    ClauseKind = iota // matches a single codepoint in a CharSet
	KindCharSeqTerminal                   // matches a literal string, case-optional
	KindStartTerminal                     // zero-width, matches only at position 0
	KindNothingTerminal                   // zero-width, always matches
	KindSeq                               // ordered concatenation, >= 2 children
	KindFirst                             // ordered alternative, >= 2 children
	KindOneOrMore                         // 1 child, right-recursive repetition
	KindFollowedBy                        // 1 child, zero-width positive lookahead
	KindNotFollowedBy                     // 1 child, zero-width negative lookahead

	// kindRuleRef is a transient placeholder produced by the builder API
	// (Ref) and consumed by grammar construction's reference-resolution
	// pass (resolve.go). No Clause of this kind survives into a finished
	// Grammar.
	kindRuleRef
)

func (k ClauseKind) String() string {
	switch k {
	case KindCharTerminal:
		return "Char"
	case KindCharSeqTerminal:
		return "CharSeq"
	case KindStartTerminal:
		return "Start"
	case KindNothingTerminal:
		return "Nothing"
	case KindSeq:
		return "Seq"
	case KindFirst:
		return "First"
	case KindOneOrMore:
		return "OneOrMore"
	case KindFollowedBy:
		return "FollowedBy"
	case KindNotFollowedBy:
		return "NotFollowedBy"
	case kindRuleRef:
		return "RuleRef"
	default:
		return "Unknown"
	}
}

// LabeledClause pairs a child clause with an optional AST label. The label
// is attached to the edge, not to the child clause itself, since the same
// clause can be reached through differently-labeled edges once interning
// has shared it across multiple parents.
type LabeledClause struct {
	Label string // "" means no label
	Clause *Clause
}

// Clause is a node in the (post-construction, immutable) parsing DAG.
//
// Before grammar construction finishes, a tree of Clause values may still
// contain kindRuleRef placeholders and duplicated substructure; after
// NewGrammar returns, every reachable Clause is interned (structurally
// distinct clauses are never pointer-equal to each other, and structurally
// identical clauses always are), RuleRef placeholders are gone, and the
// fields below marked "(post-construction)" are populated.
type Clause struct {
	Kind ClauseKind
	Subs []LabeledClause // children with edge labels; empty for terminals

	CharSet    *CharSet // for KindCharTerminal
	Literal    string   // for KindCharSeqTerminal
	IgnoreCase bool     // for KindCharSeqTerminal
	RefName    string   // for kindRuleRef only

	// CanMatchZeroChars is computed bottom-up during zero-char analysis
	// (zerochar.go, spec.md 4.4(f)). (post-construction)
	CanMatchZeroChars bool

	// SeedParents holds the clauses that must be re-examined when this
	// clause newly matches at a position (spec.md 4.4(g)). (post-construction)
	SeedParents []*Clause

	// ClauseIndex is this clause's position in the grammar's topological
	// order (terminals first, then non-terminals bottom-up). Used as the
	// priority-queue key in the driver loop. (post-construction)
	ClauseIndex int

	// Rules lists the zero-or-more rules of which this clause is the
	// top-level clause, for diagnostics only. (post-construction)
	Rules []*Rule

	// canonical caches the bottom-up canonical string form computed during
	// interning (intern.go). Used both for deduplication and as the
	// human-readable rendering returned by Canonical().
	canonical string
}

// Canonical returns the clause's canonical string form, as computed during
// grammar construction's interning pass. Two clauses with equal Canonical()
// strings are always the same *Clause object (spec.md 8, "Interning").
func (c *Clause) Canonical() string {
	return c.canonical
}

func (c *Clause) String() string {
	return c.canonical
}

// firstChild/secondChild are convenience accessors used throughout the
// match contract (clauses with exactly one or two children are common).
func (c *Clause) firstChild() *Clause {
	return c.Subs[0].Clause
}

func (c *Clause) secondChild() *Clause {
	return c.Subs[1].Clause
}

// match implements the per-kind matching contract of spec.md 4.1:
//
//	match(memo_table, memo_key, input) -> Match?
//
// It reads from tbl only via tbl.LookupBestMatch, never mutates tbl, and
// returns nil iff the clause cannot match at key.Pos.
func (c *Clause) match(tbl *MemoTable, key MemoKey, input string) *Match {
	switch c.Kind {
	case KindCharTerminal:
		return c.matchCharTerminal(key, input)
	case KindCharSeqTerminal:
		return c.matchCharSeqTerminal(key, input)
	case KindStartTerminal:
		return c.matchStartTerminal(key)
	case KindNothingTerminal:
		return &Match{Key: key, Length: 0}
	case KindSeq:
		return c.matchSeq(tbl, key)
	case KindFirst:
		return c.matchFirst(tbl, key)
	case KindOneOrMore:
		return c.matchOneOrMore(tbl, key, input)
	case KindFollowedBy:
		return c.matchFollowedBy(tbl, key)
	case KindNotFollowedBy:
		return c.matchNotFollowedBy(tbl, key)
	default:
		panic("match: unhandled clause kind " + c.Kind.String())
	}
}

func (c *Clause) matchCharTerminal(key MemoKey, input string) *Match {
	sc := scanChar(input, key.Pos)
	if sc.len == 0 || !sc.valid {
		return nil
	}
	if !c.CharSet.Matches(sc.rune) {
		return nil
	}
	return &Match{Key: key, Length: sc.len}
}

func (c *Clause) matchCharSeqTerminal(key MemoKey, input string) *Match {
	lit := c.Literal
	if key.Pos+len(lit) > len(input) {
		return nil
	}
	candidate := input[key.Pos : key.Pos+len(lit)]
	matched := candidate == lit
	if !matched && c.IgnoreCase {
		matched = strings.EqualFold(candidate, lit)
	}
	if !matched {
		return nil
	}
	return &Match{Key: key, Length: len(lit)}
}

func (c *Clause) matchStartTerminal(key MemoKey) *Match {
	if key.Pos != 0 {
		return nil
	}
	return &Match{Key: key, Length: 0}
}

func (c *Clause) matchSeq(tbl *MemoTable, key MemoKey) *Match {
	pos := key.Pos
	subs := make([]*Match, len(c.Subs))
	for i, lc := range c.Subs {
		m := tbl.LookupBestMatch(MemoKey{Clause: lc.Clause, Pos: pos})
		if m == nil {
			return nil
		}
		subs[i] = m
		pos += m.Length
	}
	return &Match{Key: key, Length: pos - key.Pos, SubMatches: subs}
}

func (c *Clause) matchFirst(tbl *MemoTable, key MemoKey) *Match {
	for i, lc := range c.Subs {
		m := tbl.LookupBestMatch(MemoKey{Clause: lc.Clause, Pos: key.Pos})
		if m != nil {
			return &Match{
				Key:           key,
				Length:        m.Length,
				FirstAltIndex: i,
				SubMatches:    []*Match{m},
			}
		}
	}
	return nil
}

func (c *Clause) matchOneOrMore(tbl *MemoTable, key MemoKey, input string) *Match {
	child := c.firstChild()
	head := tbl.LookupBestMatch(MemoKey{Clause: child, Pos: key.Pos})
	if head == nil {
		return nil
	}
	tailKey := MemoKey{Clause: c, Pos: key.Pos + head.Length}
	if tail := tbl.LookupBestMatch(tailKey); tail != nil {
		return &Match{
			Key:        key,
			Length:     head.Length + tail.Length,
			SubMatches: []*Match{head, tail},
		}
	}
	return &Match{Key: key, Length: head.Length, SubMatches: []*Match{head}}
}

func (c *Clause) matchFollowedBy(tbl *MemoTable, key MemoKey) *Match {
	child := c.firstChild()
	if m := tbl.LookupBestMatch(MemoKey{Clause: child, Pos: key.Pos}); m != nil {
		return &Match{Key: key, Length: 0}
	}
	return nil
}

// matchNotFollowedBy is only ever invoked top-down, directly from
// MemoTable.LookupBestMatch (spec.md 4.2 step 2), never seeded bottom-up:
// its natural result ("success" == "no memo hit for the child") can't be
// driven by the usual add-match-then-enqueue-seed-parents flow.
func (c *Clause) matchNotFollowedBy(tbl *MemoTable, key MemoKey) *Match {
	child := c.firstChild()
	if m := tbl.LookupBestMatch(MemoKey{Clause: child, Pos: key.Pos}); m != nil {
		return nil
	}
	return &Match{Key: key, Length: 0}
}
