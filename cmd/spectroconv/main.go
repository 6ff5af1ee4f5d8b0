// Command spectroconv converts spectrophotometer binary exports to CSV.
//
// Usage:
//
//	spectroconv [flags] <file ...>
//
// Each input file is decoded best-effort and written alongside the input
// (or into --out-dir) with its extension swapped to .csv. A file that
// cannot be read or written is logged and skipped; the batch always runs
// to completion.
//
// Examples:
//
//	spectroconv scan1.sp scan2.sp
//	spectroconv --jobs 4 --out-dir ./csv *.sp
//	spectroconv --summary scan1.sp
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	specfile "github.com/Tom-26/SpecFileDecoder"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var outDir string
	var jobs int
	var summary bool

	cmd := &cobra.Command{
		Use:          "spectroconv [flags] <file ...>",
		Short:        "Convert spectrophotometer binary exports to CSV",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := zap.NewProduction()
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			results := convertAll(args, outDir, jobs)
			failed := 0
			for _, res := range results {
				if res.err != nil {
					failed++
					logger.Error("conversion failed",
						zap.String("input", res.input),
						zap.Error(res.err))
					continue
				}
				logger.Info("converted",
					zap.String("input", res.input),
					zap.String("output", res.output),
					zap.String("format", res.spectrum.Format.String()),
					zap.Int("points", len(res.spectrum.Rows)))
			}
			if summary {
				printSummary(cmd.OutOrStdout(), results)
			}
			if failed == len(results) {
				return fmt.Errorf("all %d inputs failed", len(results))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "out-dir", "o", "", "directory for output CSV files (default: alongside each input)")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 1, "number of files to convert in parallel")
	cmd.Flags().BoolVar(&summary, "summary", false, "print a per-file statistics table")
	return cmd
}

type result struct {
	input    string
	output   string
	spectrum *specfile.Spectrum
	err      error
}

// convertAll processes every input independently; one file's failure never
// affects another. jobs bounds how many files are in flight at once.
func convertAll(inputs []string, outDir string, jobs int) []result {
	if jobs < 1 {
		jobs = 1
	}
	results := make([]result, len(inputs))
	g := new(errgroup.Group)
	g.SetLimit(jobs)
	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			results[i] = convertFile(input, outDir)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func convertFile(input, outDir string) result {
	res := result{input: input, output: outputPath(input, outDir)}
	content, err := os.ReadFile(input)
	if err != nil {
		res.err = err
		return res
	}
	res.spectrum = specfile.Decode(content, nil)
	var buf bytes.Buffer
	if err := specfile.WriteCSV(&buf, res.spectrum); err != nil {
		res.err = fmt.Errorf("rendering %s: %w", res.output, err)
		return res
	}
	if err := os.WriteFile(res.output, buf.Bytes(), 0o644); err != nil {
		res.err = err
	}
	return res
}

// outputPath swaps the input's extension for .csv, optionally redirecting
// into outDir.
func outputPath(input, outDir string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + ".csv"
	if outDir != "" {
		return filepath.Join(outDir, base)
	}
	return filepath.Join(filepath.Dir(input), base)
}
