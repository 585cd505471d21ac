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

import "container/heap"

// pqItem is one (clause, position) pair awaiting re-examination.
type pqItem struct {
	clause *Clause
	pos    int
}

// pqHeap is a binary heap keyed on Clause.ClauseIndex ascending, per
// Design Notes 9 ("A binary heap keyed on clause-index suffices ...
// duplicates should be tolerated ... re-evaluation is idempotent given the
// better-match monotonicity, so deduplication is an optimisation, not a
// requirement"). It implements container/heap.Interface.
type pqHeap []pqItem

func (h pqHeap) Len() int            { return len(h) }
func (h pqHeap) Less(i, j int) bool  { return h[i].clause.ClauseIndex < h[j].clause.ClauseIndex }
func (h pqHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *pqHeap) Push(x interface{}) { *h = append(*h, x.(pqItem)) }
func (h *pqHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// priorityQueue wraps pqHeap with the push/pop calls used by the driver
// loop and by MemoTable.AddMatch.
type priorityQueue struct {
	h pqHeap
}

func newPriorityQueue() *priorityQueue {
	return &priorityQueue{}
}

func (q *priorityQueue) push(c *Clause, pos int) {
	heap.Push(&q.h, pqItem{clause: c, pos: pos})
}

func (q *priorityQueue) pop() (*Clause, int, bool) {
	if q.h.Len() == 0 {
		return nil, 0, false
	}
	item := heap.Pop(&q.h).(pqItem)
	return item.clause, item.pos, true
}

func (q *priorityQueue) empty() bool {
	return q.h.Len() == 0
}
