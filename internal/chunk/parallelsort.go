package chunk

import (
	"container/heap"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/preedep/split-merge-hub-demo/internal/record"
)

// parallelSortThreshold is the batch size at or above which sortRecords shards
// the work across workers instead of sorting in a single goroutine.
const parallelSortThreshold = 100_000

// sortRecords sorts records in place under keys, using a sharded
// sort-then-merge strategy once the batch is large enough to benefit
// from it.
func sortRecords(records []*record.Record, keys record.KeyList) {
	if len(records) < parallelSortThreshold {
		sort.Slice(records, func(i, j int) bool {
			return record.Compare(records[i], records[j], keys) < 0
		})
		return
	}

	workers := runtime.GOMAXPROCS(0)
	if workers < 2 {
		sort.Slice(records, func(i, j int) bool {
			return record.Compare(records[i], records[j], keys) < 0
		})
		return
	}
	if workers > len(records) {
		workers = len(records)
	}

	shards := splitShards(records, workers)

	g := new(errgroup.Group)
	for _, shard := range shards {
		shard := shard
		g.Go(func() error {
			sort.Slice(shard, func(i, j int) bool {
				return record.Compare(shard[i], shard[j], keys) < 0
			})
			return nil
		})
	}
	_ = g.Wait() // sorting a slice in place cannot fail

	merged := mergeSortedShards(shards, keys)
	copy(records, merged)
}

// splitShards divides records into n contiguous, near-equal slices
// sharing the same backing array, so the subsequent in-place sort of
// each shard requires no extra allocation.
func splitShards(records []*record.Record, n int) [][]*record.Record {
	total := len(records)
	base := total / n
	rem := total % n
	shards := make([][]*record.Record, 0, n)
	start := 0
	for i := 0; i < n; i++ {
		size := base
		if i < rem {
			size++
		}
		if size == 0 {
			continue
		}
		shards = append(shards, records[start:start+size])
		start += size
	}
	return shards
}

// shardCursor tracks the next unread element in one sorted shard.
type shardCursor struct {
	shard []*record.Record
	pos   int
}

// mergeHeap is a min-heap over the current head of each shard,
// ordered by the same comparator used to sort each shard — the
// in-memory analogue of the k-way chunk merge in package merge. Unlike
// that merge it has no shard-index tie-break: heads that compare equal
// come out in no defined shard order.
type mergeHeap struct {
	cursors []*shardCursor
	keys    record.KeyList
}

func (h *mergeHeap) Len() int { return len(h.cursors) }
func (h *mergeHeap) Less(i, j int) bool {
	a, b := h.cursors[i], h.cursors[j]
	return record.Compare(a.shard[a.pos], b.shard[b.pos], h.keys) < 0
}
func (h *mergeHeap) Swap(i, j int) { h.cursors[i], h.cursors[j] = h.cursors[j], h.cursors[i] }
func (h *mergeHeap) Push(x interface{}) {
	h.cursors = append(h.cursors, x.(*shardCursor))
}
func (h *mergeHeap) Pop() interface{} {
	old := h.cursors
	n := len(old)
	x := old[n-1]
	h.cursors = old[:n-1]
	return x
}

// mergeSortedShards k-way merges already-sorted shards into a single
// sorted slice.
func mergeSortedShards(shards [][]*record.Record, keys record.KeyList) []*record.Record {
	total := 0
	for _, s := range shards {
		total += len(s)
	}
	out := make([]*record.Record, 0, total)

	h := &mergeHeap{keys: keys}
	heap.Init(h)
	for _, s := range shards {
		if len(s) > 0 {
			heap.Push(h, &shardCursor{shard: s})
		}
	}

	for h.Len() > 0 {
		top := heap.Pop(h).(*shardCursor)
		out = append(out, top.shard[top.pos])
		top.pos++
		if top.pos < len(top.shard) {
			heap.Push(h, top)
		}
	}
	return out
}
