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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// TestInterningDeduplicatesStructurallyEqualClauses exercises spec.md 8's
// "Interning" property directly: two independently-built but structurally
// identical clause trees must intern down to the very same *Clause, not
// merely an equal-looking one.
func TestInterningDeduplicatesStructurallyEqualClauses(t *testing.T) {
	build := func() *Clause {
		digits := NewCharSet().AddRange('0', '9')
		return Seq(OneOrMore(Ch(digits)), Lit(";", false))
	}
	a, b := build(), build()
	if a == b {
		t.Fatal("two independently built clause trees should not start out pointer-equal")
	}

	in := newInterner()
	ia := in.intern(a)
	ib := in.intern(b)
	if ia != ib {
		t.Errorf("expected structurally identical clauses to intern to the same pointer, got %p and %p", ia, ib)
	}
	if diff := cmp.Diff(ia.Canonical(), ib.Canonical()); diff != "" {
		t.Errorf("canonical strings differ (-a +b):\n%s", diff)
	}
}

// TestInterningKeepsStructurallyDifferentClausesApart guards against the
// opposite failure: canonicalOf collapsing clauses that should stay
// distinct.
func TestInterningKeepsStructurallyDifferentClausesApart(t *testing.T) {
	digits := NewCharSet().AddRange('0', '9')
	letters := NewCharSet().AddRange('a', 'z')

	in := newInterner()
	a := in.intern(Ch(digits))
	b := in.intern(Ch(letters))
	if a == b {
		t.Fatal("distinct character sets must not intern to the same clause")
	}
}

// TestCanonicalStringRoundTripsOverRebuild is the one-directional
// canonical-string round trip spec.md 8 calls for (DAG -> string, not
// string -> DAG, since the textual grammar front end is out of scope):
// rebuilding the same grammar twice and interning each independently must
// produce identical canonical strings for every rule, field by field.
func TestCanonicalStringRoundTripsOverRebuild(t *testing.T) {
	g1 := mustGrammar(t, arithmeticSpecs())
	g2 := mustGrammar(t, arithmeticSpecs())

	canon := func(g *Grammar) map[string]string {
		out := map[string]string{}
		for _, r := range g.Rules {
			out[r.Name] = r.TopClause.Canonical()
		}
		return out
	}

	if diff := cmp.Diff(canon(g1), canon(g2), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("rebuilding the same grammar twice produced different canonical forms (-g1 +g2):\n%s", diff)
	}
}
