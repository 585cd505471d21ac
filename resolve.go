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

// resolveReferences walks every rule's body and replaces kindRuleRef
// placeholders with a direct pointer to the referenced rule's top clause
// (spec.md 4.4(d)). A bare name that belongs to a precedence group
// resolves through lowestOf to that group's lowest-precedence rule.
//
// The result is a graph, not a tree: a left-recursive rule's reference to
// itself resolves to a clause reachable from that same clause, a real
// pointer cycle. That's the mechanism by which pika supports left
// recursion at all, and every later pass that walks the graph (interning,
// zero-char analysis, topological sort) must track visited clauses to
// avoid looping forever on it.
//
// A chain of rules that are each defined as nothing but a bare reference
// to another rule ("Foo <- Bar") is resolved by following the chain to
// its first non-reference clause. A chain that never terminates - because
// it loops back on itself - is reported as ErrSelfReferenceOnly (a rule
// referring directly to itself) or ErrRuleRefCycle (a longer loop).
//
// spec.md 4.4(d)'s final rule: if the labeled-clause edge that held the
// reference has no AST label of its own, it inherits the referenced
// rule's TopLabel. A rule defined as a bare alias ("Foo <- Bar") inherits
// the same way, onto its own TopLabel.
func resolveReferences(rules []*Rule, lowestOf map[string]string) error {
	byName := map[string]*Rule{}
	for _, r := range rules {
		byName[r.Name] = r
	}

	resolveName := func(startName string) (*Clause, string, error) {
		visited := map[string]bool{}
		name := startName
		first := true
		for {
			if lowered, ok := lowestOf[name]; ok {
				name = lowered
			}
			rule, ok := byName[name]
			if !ok {
				return nil, "", newGrammarError(ErrUnresolvedRuleRef, startName,
					"references undefined rule \""+name+"\"")
			}
			if visited[name] {
				if first && name == startName {
					return nil, "", newGrammarError(ErrSelfReferenceOnly, startName,
						"rule body is only a reference to itself")
				}
				return nil, "", newGrammarError(ErrRuleRefCycle, startName,
					"rule reference chain starting at \""+startName+"\" never reaches a real clause")
			}
			visited[name] = true
			first = false
			if rule.TopClause.Kind != kindRuleRef {
				return rule.TopClause, rule.TopLabel, nil
			}
			name = rule.TopClause.RefName
		}
	}

	for _, r := range rules {
		if r.TopClause.Kind == kindRuleRef {
			resolved, label, err := resolveName(r.TopClause.RefName)
			if err != nil {
				return err
			}
			r.TopClause = resolved
			if r.TopLabel == "" {
				r.TopLabel = label
			}
		}
	}

	visited := map[*Clause]bool{}
	var walk func(*Clause) error
	walk = func(c *Clause) error {
		if visited[c] {
			return nil
		}
		visited[c] = true
		for i, sub := range c.Subs {
			child := sub.Clause
			if child.Kind == kindRuleRef {
				resolved, label, err := resolveName(child.RefName)
				if err != nil {
					return err
				}
				c.Subs[i].Clause = resolved
				if sub.Label == "" {
					c.Subs[i].Label = label
				}
				child = resolved
			}
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	for _, r := range rules {
		if err := walk(r.TopClause); err != nil {
			return err
		}
	}
	return nil
}
