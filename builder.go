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

// This file is a minimal Go-native stand-in for the textual grammar
// front-end, which spec.md 1 places out of scope ("the textual grammar
// front-end ... bootstraps itself through the core"). It lets callers (and
// this module's own tests) build RuleSpec values directly, the way
// golang.org/x/exp/peg's expressions.go lets callers build an Expression
// tree directly in Go ahead of - or instead of - parsing PEG syntax.
package pika

// Ch builds a Char terminal clause matching any codepoint in set.
func Ch(set *CharSet) *Clause {
	return &Clause{Kind: KindCharTerminal, CharSet: set}
}

// Lit builds a CharSeq terminal clause matching the literal string s.
func Lit(s string, ignoreCase bool) *Clause {
	return &Clause{Kind: KindCharSeqTerminal, Literal: s, IgnoreCase: ignoreCase}
}

// StartOfInput builds a Start terminal clause: zero-width, matches only at
// position 0.
func StartOfInput() *Clause {
	return &Clause{Kind: KindStartTerminal}
}

// Nothing builds a Nothing terminal clause: zero-width, always matches.
func Nothing() *Clause {
	return &Clause{Kind: KindNothingTerminal}
}

// Seq builds an ordered-concatenation clause. Panics if fewer than two
// children are supplied, matching spec.md 3's "Seq (..., >= 2 children)".
func Seq(children ...*Clause) *Clause {
	return SeqL(unlabeled(children)...)
}

// First builds an ordered-alternative clause. Panics if fewer than two
// children are supplied.
func First(children ...*Clause) *Clause {
	return FirstL(unlabeled(children)...)
}

// OneOrMore builds a one-or-more repetition clause.
func OneOrMore(child *Clause) *Clause {
	return &Clause{Kind: KindOneOrMore, Subs: []LabeledClause{{Clause: child}}}
}

// ZeroOrMore desugars to First(OneOrMore(child), Nothing()) per spec.md 3:
// "Optional and ZeroOrMore are not primitives".
func ZeroOrMore(child *Clause) *Clause {
	return First(OneOrMore(child), Nothing())
}

// Optional desugars to First(child, Nothing()).
func Optional(child *Clause) *Clause {
	return First(child, Nothing())
}

// FollowedBy builds a zero-width positive-lookahead clause.
func FollowedBy(child *Clause) *Clause {
	return &Clause{Kind: KindFollowedBy, Subs: []LabeledClause{{Clause: child}}}
}

// NotFollowedBy builds a zero-width negative-lookahead clause.
func NotFollowedBy(child *Clause) *Clause {
	return &Clause{Kind: KindNotFollowedBy, Subs: []LabeledClause{{Clause: child}}}
}

// Ref builds a transient reference to the named rule, resolved away during
// NewGrammar's reference-resolution pass (resolve.go).
func Ref(ruleName string) *Clause {
	return &Clause{Kind: kindRuleRef, RefName: ruleName}
}

// L attaches an AST label to the edge leading to c. The label belongs to
// the edge, not to c itself (spec.md 3) — the same clause, shared by
// interning, can be reached through differently-labeled edges.
func L(label string, c *Clause) LabeledClause {
	return LabeledClause{Label: label, Clause: c}
}

// SeqL and FirstL are the labeled-edge counterparts of Seq/First, for
// callers that need AST labels on specific children.
func SeqL(children ...LabeledClause) *Clause {
	if len(children) < 2 {
		panic("pika: Seq requires at least two children")
	}
	return &Clause{Kind: KindSeq, Subs: children}
}

func FirstL(children ...LabeledClause) *Clause {
	if len(children) < 2 {
		panic("pika: First requires at least two children")
	}
	return &Clause{Kind: KindFirst, Subs: children}
}

func unlabeled(children []*Clause) []LabeledClause {
	out := make([]LabeledClause, len(children))
	for i, c := range children {
		out[i] = LabeledClause{Clause: c}
	}
	return out
}
