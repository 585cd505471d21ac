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

// topoSort performs a post-order traversal of the (possibly cyclic, thanks
// to left recursion) clause graph rooted at every rule's top clause.
// Because children are visited before their parent, leaves always finish
// before the clauses built from them. Terminals (which have no children)
// are then placed ahead of every non-terminal, each group keeping its
// traversal order, and each clause's ClauseIndex is its position in that
// final order (spec.md 4.4(e), "terminals first, then non-terminals
// bottom-up").
//
// A clause still on the current DFS stack when revisited is a back edge
// introduced by left recursion; dfs leaves it for its original call frame
// to finish rather than recursing into it again.
func topoSort(rules []*Rule) []*Clause {
	visited := map[*Clause]bool{}
	onStack := map[*Clause]bool{}
	var order []*Clause

	var dfs func(*Clause)
	dfs = func(c *Clause) {
		if visited[c] || onStack[c] {
			return
		}
		onStack[c] = true
		for _, sub := range c.Subs {
			dfs(sub.Clause)
		}
		onStack[c] = false
		if !visited[c] {
			visited[c] = true
			order = append(order, c)
		}
	}

	for _, r := range rules {
		dfs(r.TopClause)
		r.TopClause.Rules = append(r.TopClause.Rules, r)
	}

	sorted := make([]*Clause, 0, len(order))
	for pass := 0; pass < 2; pass++ {
		for _, c := range order {
			if (len(c.Subs) == 0) == (pass == 0) {
				c.ClauseIndex = len(sorted)
				sorted = append(sorted, c)
			}
		}
	}
	return sorted
}
