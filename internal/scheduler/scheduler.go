// Package scheduler orchestrates schema validation, parallel chunk
// production, and multi-pass parallel k-way merging to sort an
// arbitrary number of input files with bounded peak memory and bounded
// file-descriptor usage.
package scheduler

import (
	"context"
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/preedep/split-merge-hub-demo/internal/chunk"
	"github.com/preedep/split-merge-hub-demo/internal/config"
	"github.com/preedep/split-merge-hub-demo/internal/merge"
	"github.com/preedep/split-merge-hub-demo/internal/obslog"
	"github.com/preedep/split-merge-hub-demo/internal/record"
	"github.com/preedep/split-merge-hub-demo/internal/schema"
	"github.com/preedep/split-merge-hub-demo/internal/sorterr"
	"github.com/preedep/split-merge-hub-demo/internal/tempscope"
)

var log = obslog.New("scheduler")

// Run describes one sort job: the inputs to merge, the output path,
// the record family and its schema, the sort keys, and the fan-in/
// parallelism knobs.
type Run struct {
	Inputs  []string
	Output  string
	Spec    chunk.Spec
	Cfg     *config.Config
	TempDir string // parent for the scoped temp directory; "" uses the OS default
}

// Execute runs the full split-then-merge pipeline and produces Output.
//
// Protocol:
//  1. validate schema across inputs, aborting on any disagreement;
//  2. fan out chunk production over the inputs, bounded by G*K
//     concurrent producers;
//  3. sort the resulting chunk paths deterministically;
//  4. repeatedly fan out k-way merging over groups of the current
//     chunk list (wide or narrow grouping, see groupChunks) until one
//     chunk remains;
//  5. rename that chunk to Output.
func Execute(ctx context.Context, run Run) error {
	if len(run.Inputs) == 0 {
		return sorterr.New(sorterr.SchemaMismatch, "no input files given", nil)
	}

	if err := validateSchemas(run); err != nil {
		return err
	}

	scope, err := tempscope.Acquire(run.TempDir)
	if err != nil {
		return sorterr.New(sorterr.IoWrite, "acquiring temp scope", err)
	}
	defer func() {
		if err := scope.Close(); err != nil {
			log.Warn("failed to remove temp scope", zap.Error(err))
		}
	}()

	limit := run.Cfg.ParallelGroups * run.Cfg.MergeK

	chunks, err := splitPhase(ctx, run, scope, limit)
	if err != nil {
		return err
	}
	if len(chunks) == 0 {
		return sorterr.New(sorterr.RecordMalformed, "no records produced from any input", nil)
	}

	sort.Strings(chunks)

	final, err := mergePhase(ctx, run, scope, chunks, limit)
	if err != nil {
		return err
	}

	if err := finalize(final, run.Output); err != nil {
		return err
	}
	log.Info("run complete", zap.String("output", run.Output), zap.Int("inputs", len(run.Inputs)))
	return nil
}

// validateSchemas is the schema-resolution step run up front: for
// delimited inputs every file's header must agree with the first; for
// fixed-width inputs the requested sort field indices must be in range
// of the static schema.
func validateSchemas(run Run) error {
	if run.Spec.Family != chunk.Delimited {
		return schema.ValidateFixedWidthIndices(run.Spec.FixedSchema, keyIndices(run.Spec.Keys))
	}

	headers := make([][]string, len(run.Inputs))
	for i, path := range run.Inputs {
		got, err := record.PeekDelimitedHeader(path, run.Spec.DelimitedSchema.Delimiter)
		if err != nil {
			return err
		}
		headers[i] = got
	}
	return schema.ValidateDelimitedHeaders(run.Inputs, headers)
}

func keyIndices(keys record.KeyList) []int {
	idx := make([]int, len(keys))
	for i, k := range keys {
		idx[i] = k.FieldIndex
	}
	return idx
}

// splitPhase runs the Chunk Producer over every input in parallel,
// bounded by limit concurrent producers, and returns the union of
// chunk paths.
func splitPhase(ctx context.Context, run Run, scope *tempscope.Scope, limit int) ([]string, error) {
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	results := make([][]string, len(run.Inputs))
	for i, input := range run.Inputs {
		i, input := i, input
		g.Go(func() error {
			chunks, err := chunk.Produce(input, scope, run.Spec, run.Cfg)
			if err != nil {
				return fmt.Errorf("producing chunks for %s: %w", input, err)
			}
			results[i] = chunks
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []string
	for _, chunks := range results {
		all = append(all, chunks...)
	}
	log.Info("split phase complete", zap.Int("chunks", len(all)))
	return all, nil
}

// mergePhase repeatedly groups and merges the chunk list until one
// chunk remains, returning its path.
func mergePhase(ctx context.Context, run Run, scope *tempscope.Scope, chunks []string, limit int) (string, error) {
	pass := 0
	for len(chunks) > 1 {
		groups := groupChunks(chunks, run.Cfg.MergeK, run.Cfg.ParallelGroups)

		g, _ := errgroup.WithContext(ctx)
		g.SetLimit(limit)
		outputs := make([]string, len(groups))

		for i, group := range groups {
			i, group := i, group
			g.Go(func() error {
				out := scope.NewPath(fmt.Sprintf("pass%d_%d_", pass, i), ".tmp")
				if err := merge.Merge(group, out, run.Spec, run.Spec.Keys, true, run.Cfg.MergeBufBytes()); err != nil {
					return fmt.Errorf("merging pass %d group %d: %w", pass, i, err)
				}
				outputs[i] = out
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return "", err
		}

		for _, p := range chunks {
			_ = os.Remove(p)
		}

		sort.Strings(outputs)
		chunks = outputs
		pass++
		log.Info("merge pass complete", zap.Int("pass", pass), zap.Int("remaining", len(chunks)))
	}
	return chunks[0], nil
}

// groupChunks splits chunks into merge groups for one pass.
//
// Wide mode: when there are more than K*G chunks, split into G
// near-equal groups so every worker has roughly the same amount of
// work and all G slots are used.
//
// Narrow mode: otherwise, split into contiguous groups of up to K, the
// ordinary k-way fan-in.
func groupChunks(chunks []string, k, g int) [][]string {
	if len(chunks) > k*g {
		return splitIntoGroups(chunks, g)
	}
	return splitIntoRunsOf(chunks, k)
}

func splitIntoRunsOf(chunks []string, k int) [][]string {
	var groups [][]string
	for i := 0; i < len(chunks); i += k {
		end := i + k
		if end > len(chunks) {
			end = len(chunks)
		}
		groups = append(groups, chunks[i:end])
	}
	return groups
}

func splitIntoGroups(chunks []string, g int) [][]string {
	total := len(chunks)
	base := total / g
	rem := total % g
	var groups [][]string
	start := 0
	for i := 0; i < g; i++ {
		size := base
		if i < rem {
			size++
		}
		if size == 0 {
			continue
		}
		groups = append(groups, chunks[start:start+size])
		start += size
	}
	return groups
}

func finalize(final, output string) error {
	if err := os.Rename(final, output); err != nil {
		return sorterr.New(sorterr.IoWrite, "renaming final chunk to output", err)
	}
	return nil
}
