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

// interner computes each clause's canonical string form bottom-up and
// deduplicates structurally-identical clauses into a single shared pointer,
// giving the parsing tree's DAG its pointer-identity equality (spec.md 3
// "Clause interning", 8 "Interning").
type interner struct {
	pool map[string]*Clause
}

func newInterner() *interner {
	return &interner{pool: map[string]*Clause{}}
}

// intern returns the canonical *Clause structurally equal to c, replacing
// c's children in place with their own interned forms first. kindRuleRef
// nodes must already be resolved away (resolve.go runs before interning).
//
// Reference resolution can leave behind real pointer cycles - a
// left-recursive rule's own top clause is reachable from one of its own
// descendants. intern tracks the clauses on its current recursion stack
// and, on hitting one of them again, stops without recursing further
// instead of looping forever. The clause completing the cycle is left with
// whatever canonical string its ancestors had already computed for it at
// that point (its own, not-yet-finished one), so dedup is exact for
// acyclic substructure and only approximate across the cyclic edge itself;
// since each rule's self-reference is built once, not duplicated, failing
// to dedup across that edge costs nothing but a missed merge.
func (in *interner) intern(c *Clause) *Clause {
	return in.internRec(c, map[*Clause]bool{})
}

func (in *interner) internRec(c *Clause, onStack map[*Clause]bool) *Clause {
	if onStack[c] {
		return c
	}
	if c.canonical != "" {
		if existing, ok := in.pool[c.canonical]; ok {
			return existing
		}
		return c
	}
	onStack[c] = true
	for i, sub := range c.Subs {
		c.Subs[i].Clause = in.internRec(sub.Clause, onStack)
	}
	onStack[c] = false

	c.canonical = canonicalOf(c)
	if existing, ok := in.pool[c.canonical]; ok {
		return existing
	}
	in.pool[c.canonical] = c
	return c
}

func canonicalOf(c *Clause) string {
	switch c.Kind {
	case KindCharTerminal:
		return c.CharSet.canonical()
	case KindCharSeqTerminal:
		if c.IgnoreCase {
			return quoteLiteral(c.Literal) + "i"
		}
		return quoteLiteral(c.Literal)
	case KindStartTerminal:
		return "^"
	case KindNothingTerminal:
		return "ε" // epsilon
	case KindSeq:
		return "(" + strings.Join(edgeStrings(c.Subs), " ") + ")"
	case KindFirst:
		return "(" + strings.Join(edgeStrings(c.Subs), " / ") + ")"
	case KindOneOrMore:
		return edgeString(c.Subs[0]) + "+"
	case KindFollowedBy:
		return "&" + edgeString(c.Subs[0])
	case KindNotFollowedBy:
		return "!" + edgeString(c.Subs[0])
	default:
		panic("canonicalOf: unhandled clause kind " + c.Kind.String())
	}
}

func edgeString(lc LabeledClause) string {
	if lc.Label == "" {
		return lc.Clause.canonical
	}
	return lc.Label + ":" + lc.Clause.canonical
}

func edgeStrings(subs []LabeledClause) []string {
	out := make([]string, len(subs))
	for i, lc := range subs {
		out[i] = edgeString(lc)
	}
	return out
}

func quoteLiteral(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
