// Command mergesort is the thin CLI wrapper around the external
// merge-sort engine (package scheduler). The core engine knows nothing
// about flags or exit codes; this file is the only place that does.
package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/preedep/split-merge-hub-demo/internal/chunk"
	"github.com/preedep/split-merge-hub-demo/internal/config"
	"github.com/preedep/split-merge-hub-demo/internal/genfile"
	"github.com/preedep/split-merge-hub-demo/internal/obslog"
	"github.com/preedep/split-merge-hub-demo/internal/record"
	"github.com/preedep/split-merge-hub-demo/internal/schema"
	"github.com/preedep/split-merge-hub-demo/internal/scheduler"
	"github.com/preedep/split-merge-hub-demo/internal/tempscope"
)

var log = obslog.New("cli")

func main() {
	defer obslog.Sync()
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "mergesort",
		Short: "External merge-sort engine for delimited and fixed-width record files",
	}
	root.AddCommand(mergeCmd(), splitCmd(), genCmd())
	return root
}

func mergeCmd() *cobra.Command {
	var sortBy string
	var chunkSizeMB int
	var format string
	var delimiter string

	cmd := &cobra.Command{
		Use:   "merge <output> <inputs...>",
		Short: "Sort and merge one or more input files into output",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := args[0]
			inputs := args[1:]

			cfg := config.Load()
			if chunkSizeMB > 0 {
				cfg.ChunkSizeMB = chunkSizeMB
			}

			spec, keyList, err := buildSpec(format, delimiter, inputs[0], sortBy)
			if err != nil {
				return err
			}
			spec.Keys = keyList

			log.Info("starting merge",
				zap.String("output", output),
				zap.Int("inputs", len(inputs)),
				zap.Int("chunk_size_mb", cfg.ChunkSizeMB),
				zap.Int("merge_k", cfg.MergeK),
				zap.Int("parallel_groups", cfg.ParallelGroups),
			)

			return scheduler.Execute(context.Background(), scheduler.Run{
				Inputs: inputs,
				Output: output,
				Spec:   spec,
				Cfg:    cfg,
			})
		},
	}
	cmd.Flags().StringVar(&sortBy, "sort-by", "", "comma-separated sort column names (delimited) or field names (fixed)")
	cmd.Flags().IntVar(&chunkSizeMB, "chunk-size", 0, "override CHUNK_SIZE_MB for this run")
	cmd.Flags().StringVar(&format, "format", "csv", "record family: csv or fixed")
	cmd.Flags().StringVar(&delimiter, "delimiter", ",", "field delimiter for csv format")
	return cmd
}

func splitCmd() *cobra.Command {
	var rows int
	var sortBy string
	var format string
	var delimiter string

	cmd := &cobra.Command{
		Use:   "split <input> <output-dir>",
		Short: "Split and sort an input file into chunk files under output-dir",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, outDir := args[0], args[1]
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}

			cfg := config.Load()
			if rows > 0 {
				cfg.ChunkRecords = rows
			}

			spec, keyList, err := buildSpec(format, delimiter, input, sortBy)
			if err != nil {
				return err
			}
			spec.Keys = keyList

			// Chunks are written into a fresh splitmerge-<uuid>
			// subdirectory of outDir and kept (the scope is never
			// closed) since "split" exists to hand the caller
			// inspectable chunk files, unlike the scheduler's internal
			// temp scope which is cleaned up automatically.
			scope, err := tempscope.Acquire(outDir)
			if err != nil {
				return err
			}

			paths, err := chunk.Produce(input, scope, spec, cfg)
			if err != nil {
				return err
			}
			log.Info("split complete", zap.Int("chunks", len(paths)))
			for _, p := range paths {
				fmt.Println(p)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 0, "override CHUNK_RECORDS for this run")
	cmd.Flags().StringVar(&sortBy, "sort-by", "", "comma-separated sort column names (delimited) or field names (fixed)")
	cmd.Flags().StringVar(&format, "format", "csv", "record family: csv or fixed")
	cmd.Flags().StringVar(&delimiter, "delimiter", ",", "field delimiter for csv format")
	return cmd
}

func genCmd() *cobra.Command {
	var rows int
	var format string
	var columns string
	var delimiter string

	cmd := &cobra.Command{
		Use:   "gen <output>",
		Short: "Generate a synthetic fixture file for local testing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := args[0]
			opts := genfile.Options{Rows: rows}

			if format == "fixed" {
				opts.Family = chunk.FixedWidth
				opts.FixedSchema = record.MTLogSchema()
			} else {
				opts.Family = chunk.Delimited
				header := strings.Split(columns, ",")
				opts.DelimitedSchema = &record.DelimitedSchema{
					Header:    header,
					Delimiter: runeOf(delimiter),
				}
			}

			if err := genfile.Generate(output, opts); err != nil {
				return err
			}
			log.Info("generated fixture", zap.String("output", output), zap.Int("rows", rows))
			return nil
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 1000, "number of records to generate")
	cmd.Flags().StringVar(&format, "format", "csv", "record family: csv or fixed")
	cmd.Flags().StringVar(&columns, "columns", "id,name,address,continent", "comma-separated header for csv format")
	cmd.Flags().StringVar(&delimiter, "delimiter", ",", "field delimiter for csv format")
	return cmd
}

// buildSpec inspects sampleInput's header (for csv) to build the
// schema, resolves sortBy against it, and returns the resulting Spec
// and key list. For fixed format the schema is static.
func buildSpec(format, delimiter, sampleInput, sortBy string) (chunk.Spec, record.KeyList, error) {
	names := splitNonEmpty(sortBy)

	if format == "fixed" {
		s := record.MTLogSchema()
		keys, err := schema.BuildFixedWidthKeyList(s, names)
		if err != nil {
			return chunk.Spec{}, nil, err
		}
		return chunk.Spec{Family: chunk.FixedWidth, FixedSchema: s}, keys, nil
	}

	header, err := record.PeekDelimitedHeader(sampleInput, runeOf(delimiter))
	if err != nil {
		return chunk.Spec{}, nil, err
	}
	s := &record.DelimitedSchema{Header: header, Delimiter: runeOf(delimiter)}
	indices := schema.ResolveDelimitedSortColumns(header, names)
	kinds := sniffDelimitedKinds(sampleInput, s, indices)
	keys := make(record.KeyList, len(indices))
	for i, idx := range indices {
		keys[i] = record.Key{FieldIndex: idx, Kind: kinds[i]}
	}
	return chunk.Spec{Family: chunk.Delimited, DelimitedSchema: s}, keys, nil
}

// sniffDelimitedKinds inspects the first data row of path to decide,
// per resolved sort column, whether its values should compare as
// numeric or as plain text: a column whose first value (trimmed) parses
// as a base-10 integer gets KindNumeric, any other column KindString.
// Falls back to KindString for every column if it cannot read a sample
// row.
func sniffDelimitedKinds(path string, s *record.DelimitedSchema, indices []int) []record.CompareKind {
	kinds := make([]record.CompareKind, len(indices))
	for i := range kinds {
		kinds[i] = record.KindString
	}

	r, err := record.OpenDelimitedReader(path, s, 0)
	if err != nil {
		return kinds
	}
	defer r.Close()
	if err := r.ReadHeader(); err != nil {
		return kinds
	}
	rec, err := r.Next()
	if err != nil {
		return kinds
	}

	for i, idx := range indices {
		val := bytes.TrimSpace(rec.Field(idx))
		if _, err := strconv.ParseInt(string(val), 10, 64); err == nil {
			kinds[i] = record.KindNumeric
		}
	}
	return kinds
}

func splitNonEmpty(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func runeOf(s string) rune {
	if s == "" {
		return ','
	}
	return []rune(s)[0]
}

