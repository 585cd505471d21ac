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

// Grammar is a finished, immutable PEG clause DAG built from a set of
// named rules (spec.md 4.4). Build one with NewGrammar and reuse it across
// any number of Parse calls; a Grammar holds no per-parse state.
type Grammar struct {
	Rules       []*Rule
	AllClauses  []*Clause // topological order: terminals first, then bottom-up
	rulesByName map[string]*Rule
	opts        Options
}

// RuleByName returns the named rule, or nil if no rule of that name exists.
// A bare name belonging to a precedence group returns that group's
// lowest-precedence rule ("Name[p]" for the smallest p) - the same rule a
// Ref to the bare name resolves to.
func (g *Grammar) RuleByName(name string) *Rule {
	return g.rulesByName[name]
}

// NewGrammar builds a Grammar from specs, running the construction
// pipeline of spec.md 4.4: precedence rewriting, rule-reference
// resolution, interning, topological ordering, zero-length-match
// analysis, and seed-parent wiring. It returns a *GrammarError for every
// malformed-grammar condition spec.md 6 enumerates; parsing itself, once a
// Grammar exists, never fails (spec.md 7).
func NewGrammar(specs []RuleSpec, opts Options) (*Grammar, error) {
	log := opts.logger()
	if len(specs) == 0 {
		return nil, newGrammarError(ErrEmptyRuleList, "", "no rules given")
	}
	specPtrs := make([]*RuleSpec, len(specs))
	for i := range specs {
		s := specs[i]
		if s.Clause.Kind == kindRuleRef && s.Clause.RefName == s.Name {
			return nil, newGrammarError(ErrSelfReferenceOnly, s.Name,
				"rule body is only a reference to itself")
		}
		specPtrs[i] = &s
	}

	rules, lowestOf, err := rewritePrecedence(specPtrs)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("rules", len(rules)).Msg("precedence rewriting complete")

	if err := resolveReferences(rules, lowestOf); err != nil {
		return nil, err
	}
	log.Debug().Msg("rule reference resolution complete")

	in := newInterner()
	for _, r := range rules {
		r.TopClause = in.intern(r.TopClause)
	}
	log.Debug().Int("distinct clauses", len(in.pool)).Msg("interning complete")

	allClauses := topoSort(rules)
	log.Debug().Int("clauses", len(allClauses)).Msg("topological ordering complete")

	computeZeroChar(allClauses)
	if err := checkZeroCharInvariants(allClauses); err != nil {
		return nil, err
	}
	computeSeedParents(allClauses)

	byName := map[string]*Rule{}
	for _, r := range rules {
		byName[r.Name] = r
	}
	for bare, lowest := range lowestOf {
		byName[bare] = byName[lowest]
	}

	g := &Grammar{Rules: rules, AllClauses: allClauses, rulesByName: byName, opts: opts}
	log.Debug().Msg("grammar construction complete")
	return g, nil
}
