// Package chunk turns one input file into a finite ordered sequence of
// sorted chunk files, each of bounded memory footprint.
package chunk

import (
	"io"

	"go.uber.org/zap"

	"github.com/preedep/split-merge-hub-demo/internal/config"
	"github.com/preedep/split-merge-hub-demo/internal/obslog"
	"github.com/preedep/split-merge-hub-demo/internal/record"
	"github.com/preedep/split-merge-hub-demo/internal/sorterr"
	"github.com/preedep/split-merge-hub-demo/internal/tempscope"
)

var log = obslog.New("chunk")

// Family identifies which record family a Spec describes.
type Family int

const (
	Delimited Family = iota
	FixedWidth
)

// Spec carries everything the producer needs to read one input family
// and sort it under a given key list: exactly one of DelimitedSchema or
// FixedSchema is set, matching Family.
type Spec struct {
	Family          Family
	DelimitedSchema *record.DelimitedSchema
	FixedSchema     *record.FixedWidthSchema
	Keys            record.KeyList
}

func (s Spec) openReader(path string, bufBytes int) (record.Reader, error) {
	if s.Family == Delimited {
		return record.OpenDelimitedReader(path, s.DelimitedSchema, bufBytes)
	}
	return record.OpenFixedWidthReader(path, s.FixedSchema, bufBytes)
}

func (s Spec) createWriter(path string) (record.Writer, error) {
	if s.Family == Delimited {
		return record.CreateDelimitedWriter(path, s.DelimitedSchema)
	}
	return record.CreateFixedWidthWriter(path, s.FixedSchema)
}

func (s Spec) hasHeader() bool { return s.Family == Delimited }

// Produce turns input into a sequence of sorted chunk files under
// scope, respecting cfg's byte and record budgets (whichever is hit
// first flushes a chunk). The returned paths are ordered by their
// position in the input file.
//
// Failure semantics: a malformed record is counted
// and skipped. An I/O read error aborts after the chunks already
// emitted; those chunks remain on disk (the scheduler's temp scope
// will still clean them up) but Produce returns the error so the run
// fails. An I/O write error aborts immediately.
func Produce(input string, scope *tempscope.Scope, spec Spec, cfg *config.Config) ([]string, error) {
	r, err := spec.openReader(input, 0)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	if err := r.ReadHeader(); err != nil {
		return nil, err
	}

	var chunks []string
	var batch []*record.Record
	var batchBytes int64
	var malformed int

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		sortRecords(batch, spec.Keys)
		path := scope.NewPath("chunk_", ".tmp")
		if err := writeChunk(path, spec, batch); err != nil {
			return err
		}
		chunks = append(chunks, path)
		batch = batch[:0]
		batchBytes = 0
		return nil
	}

	byteBudget := cfg.ChunkBudgetBytes()
	recordBudget := cfg.ChunkRecords

	for {
		rec, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			if sorterr.Is(err, sorterr.RecordMalformed) {
				malformed++
				log.Warn("skipping malformed record", zap.String("input", input), zap.Error(err))
				continue
			}
			return chunks, err
		}

		batch = append(batch, rec)
		batchBytes += recordByteSize(rec)

		if int64(len(batch)) >= int64(recordBudget) || (byteBudget > 0 && batchBytes >= byteBudget) {
			if err := flush(); err != nil {
				return chunks, err
			}
		}
	}
	if err := flush(); err != nil {
		return chunks, err
	}

	if malformed > 0 {
		log.Warn("malformed records skipped", zap.String("input", input), zap.Int("count", malformed))
	}
	log.Info("produced chunks", zap.String("input", input), zap.Int("chunks", len(chunks)))
	return chunks, nil
}

func writeChunk(path string, spec Spec, records []*record.Record) error {
	w, err := spec.createWriter(path)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.WriteHeader(spec.hasHeader()); err != nil {
		return err
	}
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Flush()
}

// recordByteSize estimates a record's on-disk footprint for the byte
// budget: sum of field lengths plus one delimiter/terminator byte per
// field, close enough to actual encoded size for budgeting purposes.
func recordByteSize(rec *record.Record) int64 {
	var n int64
	for _, f := range rec.Fields {
		n += int64(len(f)) + 1
	}
	return n
}
