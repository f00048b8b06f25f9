package astar

import (
	"container/heap"
	"sort"

	"github.com/katalvlaran/wayfind/core"
)

// openItem pairs a track with its evaluation and an insertion sequence
// number. The sequence breaks evaluation ties deterministically: the
// earlier-inserted track wins, mirroring a first-encountered min-scan.
type openItem[S any] struct {
	track *Track[S]
	eval  float64
	seq   uint64
	index int // heap index, maintained by openQueue
}

// openQueue is the container/heap backing store, ordered by (eval, seq).
type openQueue[S any] []*openItem[S]

func (q openQueue[S]) Len() int { return len(q) }

func (q openQueue[S]) Less(i, j int) bool {
	if q[i].eval != q[j].eval {
		return q[i].eval < q[j].eval
	}

	return q[i].seq < q[j].seq
}

func (q openQueue[S]) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *openQueue[S]) Push(x interface{}) {
	it := x.(*openItem[S])
	it.index = len(*q)
	*q = append(*q, it)
}

func (q *openQueue[S]) Pop() interface{} {
	old := *q
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*q = old[:n-1]

	return it
}

// openSet is the search frontier: a min-heap keyed by evaluation plus an
// end-node index for O(1) same-end-node lookup. The engine keeps at most
// one entry per end node, so the index map is single-valued.
type openSet[S any] struct {
	q      openQueue[S]
	byNode map[*core.Node[S]]*openItem[S]
	seq    uint64
}

func newOpenSet[S any]() *openSet[S] {
	return &openSet[S]{byNode: make(map[*core.Node[S]]*openItem[S])}
}

func (s *openSet[S]) len() int { return len(s.q) }

// push inserts t with the given evaluation. Any previous entry for the
// same end node must have been removed by the caller first.
func (s *openSet[S]) push(t *Track[S], eval float64) {
	it := &openItem[S]{track: t, eval: eval, seq: s.seq}
	s.seq++
	heap.Push(&s.q, it)
	s.byNode[t.end] = it
}

// popMin removes and returns the minimum-evaluation track.
// Callers must check len() > 0 first.
func (s *openSet[S]) popMin() *Track[S] {
	it := heap.Pop(&s.q).(*openItem[S])
	if s.byNode[it.track.end] == it {
		delete(s.byNode, it.track.end)
	}

	return it.track
}

// lookup returns the current entry ending at n, if any.
func (s *openSet[S]) lookup(n *core.Node[S]) (*openItem[S], bool) {
	it, ok := s.byNode[n]

	return it, ok
}

// remove deletes it from the heap and the index.
func (s *openSet[S]) remove(it *openItem[S]) {
	heap.Remove(&s.q, it.index)
	if s.byNode[it.track.end] == it {
		delete(s.byNode, it.track.end)
	}
}

// clear drops every entry.
func (s *openSet[S]) clear() {
	s.q = nil
	s.byNode = make(map[*core.Node[S]]*openItem[S])
}

// snapshot returns the entries in ascending (eval, seq) order without
// disturbing the heap.
func (s *openSet[S]) snapshot() []*openItem[S] {
	out := make([]*openItem[S], len(s.q))
	copy(out, s.q)
	sort.Slice(out, func(i, j int) bool {
		if out[i].eval != out[j].eval {
			return out[i].eval < out[j].eval
		}

		return out[i].seq < out[j].seq
	})

	return out
}
