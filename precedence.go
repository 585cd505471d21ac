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
	"fmt"
	"sort"
)

// rewritePrecedence implements spec.md 4.4(b). It consumes the raw
// RuleSpecs (grouped by name) and produces the final *Rule objects,
// renaming any rule that shares its name with others in the same
// precedence group to "Name[precedence]" and rewriting self-references
// inside each rewritten body per the schemas in spec.md. It also returns a
// map from each precedence group's bare name to its lowest-precedence
// rule's (rewritten) name.
func rewritePrecedence(specs []*RuleSpec) ([]*Rule, map[string]string, error) {
	groups := map[string][]*RuleSpec{}
	order := []string{} // first-seen order, for deterministic output
	for _, s := range specs {
		if _, ok := groups[s.Name]; !ok {
			order = append(order, s.Name)
		}
		groups[s.Name] = append(groups[s.Name], s)
	}

	var rules []*Rule
	lowestOf := map[string]string{}

	for _, name := range order {
		group := groups[name]
		for _, s := range group {
			if s.Precedence < -1 {
				return nil, nil, newGrammarError(ErrNegativePrecedence, s.Name,
					fmt.Sprintf("precedence %d is negative", s.Precedence))
			}
		}
		if len(group) == 1 {
			s := group[0]
			rules = append(rules, &Rule{
				Name: s.Name, Precedence: s.Precedence, Assoc: s.Assoc,
				TopLabel: s.Label, TopClause: s.Clause, originalName: s.Name,
			})
			continue
		}

		sort.Slice(group, func(i, j int) bool { return group[i].Precedence < group[j].Precedence })
		seen := map[int]bool{}
		for _, s := range group {
			if s.Precedence < 0 {
				return nil, nil, newGrammarError(ErrNegativePrecedence, s.Name,
					"rule is part of a multi-precedence group but has unspecified precedence")
			}
			if seen[s.Precedence] {
				return nil, nil, newGrammarError(ErrDuplicatePrecedence, s.Name,
					fmt.Sprintf("duplicate precedence %d", s.Precedence))
			}
			seen[s.Precedence] = true
		}

		k := len(group)
		levelName := func(i int) string {
			return fmt.Sprintf("%s[%d]", name, group[i].Precedence)
		}
		lowestOf[name] = levelName(0)

		for i, s := range group {
			curName := levelName(i)
			nextName := levelName((i + 1) % k)
			body := rewriteSelfReferences(s.Clause, name, s.Assoc, curName, nextName)

			var topLabel string
			var topClause *Clause
			if i < k-1 {
				// First(body, RuleRef(next)); original label moves onto
				// the first alternative so it doesn't apply to the
				// failover (spec.md 4.4(b)).
				topClause = FirstL(L(s.Label, body), L("", Ref(nextName)))
				topLabel = ""
			} else {
				topClause = body
				topLabel = s.Label
			}
			rules = append(rules, &Rule{
				Name: curName, Precedence: s.Precedence, Assoc: s.Assoc,
				TopLabel: topLabel, TopClause: topClause, originalName: name,
			})
		}
	}
	return rules, lowestOf, nil
}

// rewriteSelfReferences rewrites occurrences of RuleRef(ruleName) within
// body per spec.md 4.4(b):
//
//   - exactly one self-reference: it becomes (N[i] / N[i']);
//   - two or more, left-associative: leftmost becomes N[i], the rest N[i'];
//   - two or more, right-associative: rightmost becomes N[i], the rest N[i'];
//   - two or more, no associativity: all become N[i'].
func rewriteSelfReferences(body *Clause, ruleName string, assoc Associativity, curName, nextName string) *Clause {
	var refs []*Clause
	var collect func(*Clause)
	collect = func(c *Clause) {
		if c.Kind == kindRuleRef {
			if c.RefName == ruleName {
				refs = append(refs, c)
			}
			return
		}
		for _, sub := range c.Subs {
			collect(sub.Clause)
		}
	}
	collect(body)

	if len(refs) == 0 {
		return body
	}

	replacement := map[*Clause]*Clause{}
	if len(refs) == 1 {
		replacement[refs[0]] = First(Ref(curName), Ref(nextName))
	} else {
		keepCurrent := func(i int) bool {
			switch assoc {
			case LeftAssoc:
				return i == 0
			case RightAssoc:
				return i == len(refs)-1
			default:
				return false
			}
		}
		for i, r := range refs {
			if keepCurrent(i) {
				replacement[r] = Ref(curName)
			} else {
				replacement[r] = Ref(nextName)
			}
		}
	}

	var rewrite func(*Clause) *Clause
	rewrite = func(c *Clause) *Clause {
		if repl, ok := replacement[c]; ok {
			return repl
		}
		for i, sub := range c.Subs {
			c.Subs[i].Clause = rewrite(sub.Clause)
		}
		return c
	}
	return rewrite(body)
}
