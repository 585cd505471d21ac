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

import "fmt"

// ErrorKind enumerates the grammar-construction error conditions of
// spec.md 6/7. Parsing itself never produces an error (spec.md 7);
// ErrorKind values are only ever carried by a GrammarError returned from
// NewGrammar.
type ErrorKind int

const (
	ErrEmptyRuleList ErrorKind = iota
	ErrSelfReferenceOnly
	ErrDuplicatePrecedence
	ErrNegativePrecedence
	ErrUnresolvedRuleRef
	ErrRuleRefCycle
	ErrInvariantViolation
)

func (k ErrorKind) String() string {
	switch k {
	case ErrEmptyRuleList:
		return "empty rule list"
	case ErrSelfReferenceOnly:
		return "rule body is only a self-reference"
	case ErrDuplicatePrecedence:
		return "duplicate (name, precedence) within a precedence group"
	case ErrNegativePrecedence:
		return "precedence specified but negative"
	case ErrUnresolvedRuleRef:
		return "unresolved rule name"
	case ErrRuleRefCycle:
		return "cycle among rule references"
	case ErrInvariantViolation:
		return "grammar invariant violation"
	default:
		return "grammar error"
	}
}

// GrammarError is the single error type NewGrammar ever returns. It wraps
// an optional underlying cause and identifies which of spec.md 6's
// enumerated conditions was hit, so callers can branch with errors.As.
type GrammarError struct {
	Kind    ErrorKind
	Rule    string // best-effort; may be empty
	Message string
	Cause   error
}

func (e *GrammarError) Error() string {
	if e.Rule != "" {
		return fmt.Sprintf("pika: %s (rule %q): %s", e.Kind, e.Rule, e.Message)
	}
	return fmt.Sprintf("pika: %s: %s", e.Kind, e.Message)
}

func (e *GrammarError) Unwrap() error {
	return e.Cause
}

func newGrammarError(kind ErrorKind, rule, message string) *GrammarError {
	return &GrammarError{Kind: kind, Rule: rule, Message: message}
}
