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

// Associativity controls how precedence rewriting (precedence.go) handles
// a rule with two or more self-references at the same precedence level.
type Associativity int

const (
	NoAssoc Associativity = iota
	LeftAssoc
	RightAssoc
)

func (a Associativity) String() string {
	switch a {
	case LeftAssoc:
		return "left"
	case RightAssoc:
		return "right"
	default:
		return "none"
	}
}

// RuleSpec is the wire-level shape a grammar front-end (out of scope;
// stand-in is builder.go) hands to NewGrammar: a named top-level clause
// with optional precedence and associativity.
type RuleSpec struct {
	Name       string
	Precedence int // -1 = unspecified, else >= 0
	Assoc      Associativity
	Clause     *Clause // top-level clause; may contain kindRuleRef nodes
	Label      string  // AST label attached to the rule's top clause; "" = none
}

// Rule is a named top-level clause with optional precedence and
// associativity, as it exists inside a finished Grammar. After precedence
// rewriting (precedence.go), a rule that originally shared a name with
// others in a precedence group is renamed "Name[precedence]".
type Rule struct {
	Name         string
	Precedence   int
	Assoc        Associativity
	TopLabel     string
	TopClause    *Clause
	originalName string // name before precedence renaming, for diagnostics
}
