// Package merge consumes K sorted chunks and produces one sorted
// output stream via a bounded min-heap.
package merge

import (
	"container/heap"
	"io"

	"go.uber.org/zap"

	"github.com/preedep/split-merge-hub-demo/internal/chunk"
	"github.com/preedep/split-merge-hub-demo/internal/obslog"
	"github.com/preedep/split-merge-hub-demo/internal/record"
	"github.com/preedep/split-merge-hub-demo/internal/sorterr"
)

var log = obslog.New("merge")

// source pairs an open reader with its position in the input list,
// used as the heap's deterministic tie-break.
type source struct {
	r     record.Reader
	index int
	ahead *record.Record
}

// entryHeap is a container/heap.Interface min-heap over (record,
// source-index) pairs, ordered by the run's comparator with
// source-index as tie-break — the file-backed analogue of the
// in-memory merge heap used by package chunk's parallel sort.
type entryHeap struct {
	sources []*source
	keys    record.KeyList
}

func (h *entryHeap) Len() int { return len(h.sources) }
func (h *entryHeap) Less(i, j int) bool {
	a, b := h.sources[i], h.sources[j]
	if c := record.Compare(a.ahead, b.ahead, h.keys); c != 0 {
		return c < 0
	}
	return a.index < b.index
}
func (h *entryHeap) Swap(i, j int) { h.sources[i], h.sources[j] = h.sources[j], h.sources[i] }
func (h *entryHeap) Push(x interface{}) {
	h.sources = append(h.sources, x.(*source))
}
func (h *entryHeap) Pop() interface{} {
	old := h.sources
	n := len(old)
	x := old[n-1]
	h.sources = old[:n-1]
	return x
}

// Merge consumes the chunk files in paths and writes their ordered
// merge to output. emitHeader controls whether a header line (for the
// delimited family) is written first; intermediate merge passes must
// still pass true because the next pass's reader expects one.
//
// Invariants upheld: output is non-decreasing under keys; every input
// record appears exactly once; at most len(paths) records are held in
// the heap at any moment; additional memory is O(K*record-size +
// per-stream buffers).
func Merge(paths []string, output string, spec chunk.Spec, keys record.KeyList, emitHeader bool, bufBytes int) error {
	sources := make([]*source, 0, len(paths))
	defer func() {
		for _, s := range sources {
			_ = s.r.Close()
		}
	}()

	for i, p := range paths {
		r, err := openSpec(spec, p, bufBytes)
		if err != nil {
			return err
		}
		if err := r.ReadHeader(); err != nil {
			_ = r.Close()
			return err
		}
		sources = append(sources, &source{r: r, index: i})
	}

	w, err := createSpec(spec, output)
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.WriteHeader(emitHeader); err != nil {
		return err
	}

	h := &entryHeap{keys: keys}
	heap.Init(h)
	for _, s := range sources {
		if err := advance(s); err != nil {
			return err
		}
		if s.ahead != nil {
			heap.Push(h, s)
		}
	}

	for h.Len() > 0 {
		top := heap.Pop(h).(*source)
		if err := w.Write(top.ahead); err != nil {
			return err
		}
		if err := advance(top); err != nil {
			return err
		}
		if top.ahead != nil {
			heap.Push(h, top)
		}
	}

	if err := w.Flush(); err != nil {
		return err
	}
	log.Info("merged chunks", zap.Int("inputs", len(paths)), zap.String("output", output))
	return nil
}

// advance reads the next decodable record from s into s.ahead, or
// leaves it nil at end of stream. A malformed record mid-merge is
// skipped with a warning, not fatal.
func advance(s *source) error {
	for {
		rec, err := s.r.Next()
		if err == io.EOF {
			s.ahead = nil
			return nil
		}
		if err != nil {
			if sorterr.Is(err, sorterr.RecordMalformed) {
				log.Warn("skipping malformed record mid-merge", zap.Int("source", s.index), zap.Error(err))
				continue
			}
			return err
		}
		s.ahead = rec
		return nil
	}
}

func openSpec(spec chunk.Spec, path string, bufBytes int) (record.Reader, error) {
	if spec.Family == chunk.Delimited {
		return record.OpenDelimitedReader(path, spec.DelimitedSchema, bufBytes)
	}
	return record.OpenFixedWidthReader(path, spec.FixedSchema, bufBytes)
}

func createSpec(spec chunk.Spec, path string) (record.Writer, error) {
	if spec.Family == chunk.Delimited {
		return record.CreateDelimitedWriter(path, spec.DelimitedSchema)
	}
	return record.CreateFixedWidthWriter(path, spec.FixedSchema)
}
