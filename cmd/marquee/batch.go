// Marquee - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var batchRPS float64

var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Run recommendations for every title,user_id line in a CSV file",
	Long: `Reads title,user_id pairs from a CSV file ("-" for stdin) and requests
recommendations for each, paced by --rps. A header line is skipped when its
second column is not a number. Failed lines are reported and the run
continues; the command exits non-zero if any line failed.`,
	Example: `  marquee batch queries.csv --rps 5`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, closeFn, err := openInput(cmd, args[0])
		if err != nil {
			return err
		}
		defer closeFn()

		return runBatch(cmd.Context(), in, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	batchCmd.Flags().Float64Var(&batchRPS, "rps", 2, "maximum requests per second (0 = unlimited)")
	rootCmd.AddCommand(batchCmd)
}

func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(path) //nolint:gosec // user-supplied input file
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

// errBatchFailures is returned when at least one batch line failed.
var errBatchFailures = errors.New("batch completed with failures")

func runBatch(ctx context.Context, in io.Reader, out, errOut io.Writer) error {
	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	c := newClient(batchRPS)
	var total, failed int

	for line := 1; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("read line %d: %w", line, err)
		}
		if len(record) < 2 {
			_, _ = fmt.Fprintf(errOut, "line %d: expected title,user_id\n", line)
			failed++
			continue
		}

		userID, err := strconv.ParseInt(strings.TrimSpace(record[1]), 10, 64)
		if err != nil {
			if line == 1 {
				continue // header
			}
			_, _ = fmt.Fprintf(errOut, "line %d: user_id must be an integer: %q\n", line, record[1])
			failed++
			continue
		}

		total++
		reqCtx, cancel := context.WithTimeout(ctx, timeout)
		rec, err := c.Recommend(reqCtx, record[0], userID, 0)
		cancel()
		if err != nil {
			_, _ = fmt.Fprintf(errOut, "line %d: ", line)
			_ = reportError(errOut, err)
			failed++
			continue
		}

		printRecommendation(out, record[0], rec)
		_, _ = fmt.Fprintln(out)
	}

	_, _ = fmt.Fprintf(out, "Processed %d requests (%d failed)\n", total, failed)
	if failed > 0 {
		return errBatchFailures
	}
	return nil
}
