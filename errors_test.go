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

import (
	"errors"
	"testing"
)

func grammarErrorKind(t *testing.T, err error) ErrorKind {
	t.Helper()
	var ge *GrammarError
	if !errors.As(err, &ge) {
		t.Fatalf("expected a *GrammarError, got %v (%T)", err, err)
	}
	return ge.Kind
}

func TestNewGrammarEmptyRuleList(t *testing.T) {
	_, err := NewGrammar(nil, Options{})
	if err == nil {
		t.Fatal("expected an error for an empty rule list")
	}
	if got := grammarErrorKind(t, err); got != ErrEmptyRuleList {
		t.Errorf("got %v, want ErrEmptyRuleList", got)
	}
}

func TestNewGrammarSelfReferenceOnly(t *testing.T) {
	specs := []RuleSpec{{Name: "A", Clause: Ref("A")}}
	_, err := NewGrammar(specs, Options{})
	if err == nil {
		t.Fatal("expected an error for a rule that is only a self-reference")
	}
	if got := grammarErrorKind(t, err); got != ErrSelfReferenceOnly {
		t.Errorf("got %v, want ErrSelfReferenceOnly", got)
	}
}

func TestNewGrammarDuplicatePrecedence(t *testing.T) {
	specs := []RuleSpec{
		{Name: "E", Precedence: 0, Clause: Lit("a", false)},
		{Name: "E", Precedence: 0, Clause: Lit("b", false)},
	}
	_, err := NewGrammar(specs, Options{})
	if err == nil {
		t.Fatal("expected an error for duplicate precedence within a group")
	}
	if got := grammarErrorKind(t, err); got != ErrDuplicatePrecedence {
		t.Errorf("got %v, want ErrDuplicatePrecedence", got)
	}
}

func TestNewGrammarNegativePrecedence(t *testing.T) {
	specs := []RuleSpec{
		{Name: "E", Precedence: 0, Clause: Lit("a", false)},
		{Name: "E", Precedence: -2, Clause: Lit("b", false)},
	}
	_, err := NewGrammar(specs, Options{})
	if err == nil {
		t.Fatal("expected an error for a negative precedence")
	}
	if got := grammarErrorKind(t, err); got != ErrNegativePrecedence {
		t.Errorf("got %v, want ErrNegativePrecedence", got)
	}
}

func TestNewGrammarUnresolvedRuleRef(t *testing.T) {
	specs := []RuleSpec{{Name: "A", Clause: Seq(Lit("a", false), Ref("B"))}}
	_, err := NewGrammar(specs, Options{})
	if err == nil {
		t.Fatal("expected an error for a reference to an undefined rule")
	}
	if got := grammarErrorKind(t, err); got != ErrUnresolvedRuleRef {
		t.Errorf("got %v, want ErrUnresolvedRuleRef", got)
	}
}

func TestNewGrammarRuleRefCycle(t *testing.T) {
	specs := []RuleSpec{
		{Name: "A", Clause: Ref("B")},
		{Name: "B", Clause: Ref("A")},
	}
	_, err := NewGrammar(specs, Options{})
	if err == nil {
		t.Fatal("expected an error for a reference cycle")
	}
	if got := grammarErrorKind(t, err); got != ErrRuleRefCycle {
		t.Errorf("got %v, want ErrRuleRefCycle", got)
	}
}

func TestNewGrammarNullableBeforeLastAlternative(t *testing.T) {
	specs := []RuleSpec{
		{Name: "A", Clause: First(Nothing(), Lit("x", false))},
	}
	_, err := NewGrammar(specs, Options{})
	if err == nil {
		t.Fatal("expected an error for a nullable alternative before the last")
	}
	if got := grammarErrorKind(t, err); got != ErrInvariantViolation {
		t.Errorf("got %v, want ErrInvariantViolation", got)
	}
}

func TestNewGrammarNothingAsFirstSubClause(t *testing.T) {
	specs := []RuleSpec{
		{Name: "A", Clause: Seq(Nothing(), Lit("x", false))},
	}
	_, err := NewGrammar(specs, Options{})
	if err == nil {
		t.Fatal("expected an error for Nothing appearing as a first sub-clause")
	}
	if got := grammarErrorKind(t, err); got != ErrInvariantViolation {
		t.Errorf("got %v, want ErrInvariantViolation", got)
	}
}

func TestNewGrammarNotFollowedByAlwaysSucceeds(t *testing.T) {
	specs := []RuleSpec{
		{Name: "A", Clause: NotFollowedBy(Nothing())},
	}
	_, err := NewGrammar(specs, Options{})
	if err == nil {
		t.Fatal("expected an error for a NotFollowedBy whose child always matches")
	}
	if got := grammarErrorKind(t, err); got != ErrInvariantViolation {
		t.Errorf("got %v, want ErrInvariantViolation", got)
	}
}
