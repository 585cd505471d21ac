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

// computeSeedParents wires each clause's SeedParents (spec.md 4.4(g)): the
// set of clauses that must be re-examined, at the same position a child
// just produced or improved a match, because that child's match could be
// the start of (or contribute to) a match of the parent at that exact
// position.
//
// A child only ever qualifies if it can be evaluated starting at exactly
// its parent's own start position:
//
//   - First: every alternative starts at the First's own position, so
//     every alternative is a seed trigger.
//   - Seq: only a prefix run of children qualifies - the first child,
//     and then each subsequent child only for as long as every child
//     before it can match zero characters (so the Seq's start position
//     could reach that child). The first child that can't match zero
//     characters is the last one added. A FollowedBy/NotFollowedBy child
//     is always zero-width when it matches, so it never breaks the
//     prefix run, but it's skipped for registration: a NotFollowedBy
//     match is never recorded via AddMatch (memotable.go), and since a
//     FollowedBy is zero-width, the next non-lookahead child starts at
//     the Seq's own position and is registered in its place.
//   - OneOrMore: its child always starts at the OneOrMore's own
//     position, so it's a seed trigger; the OneOrMore clause is also its
//     own seed trigger, since clause.go's matchOneOrMore looks up its own
//     entry at a later position as the repetition's tail, and a change
//     there can improve the match starting at an earlier position.
//   - FollowedBy: its child starts at the FollowedBy's own position.
//   - NotFollowedBy: never registered. Its match contract (clause.go) is
//     only ever evaluated top-down, so seeding it bottom-up would be
//     pointless.
func computeSeedParents(clauses []*Clause) {
	for _, c := range clauses {
		switch c.Kind {
		case KindFirst:
			for _, sub := range c.Subs {
				addSeedParent(sub.Clause, c)
			}
		case KindSeq:
			for _, sub := range c.Subs {
				if sub.Clause.Kind == KindFollowedBy || sub.Clause.Kind == KindNotFollowedBy {
					continue
				}
				addSeedParent(sub.Clause, c)
				if !sub.Clause.CanMatchZeroChars {
					break
				}
			}
		case KindOneOrMore:
			addSeedParent(c.Subs[0].Clause, c)
			addSeedParent(c, c)
		case KindFollowedBy:
			addSeedParent(c.Subs[0].Clause, c)
		}
	}
}

func addSeedParent(child, parent *Clause) {
	for _, existing := range child.SeedParents {
		if existing == parent {
			return
		}
	}
	child.SeedParents = append(child.SeedParents, parent)
}
