// Marquee - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tomtom215/marquee/internal/client"
	"github.com/tomtom215/marquee/internal/models"
)

var mostRatedCmd = &cobra.Command{
	Use:   "most-rated",
	Short: "Show the ten movies with the most ratings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runRanking(cmd, (*client.Client).MostRated)
	},
}

var leastRatedCmd = &cobra.Command{
	Use:   "least-rated",
	Short: "Show the ten movies with the fewest ratings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runRanking(cmd, (*client.Client).LeastRated)
	},
}

func init() {
	rootCmd.AddCommand(mostRatedCmd, leastRatedCmd)
}

func runRanking(cmd *cobra.Command, fetch func(*client.Client, context.Context) ([]models.TitleCount, error)) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	rows, err := fetch(newClient(0), ctx)
	if err != nil {
		return reportError(cmd.ErrOrStderr(), err)
	}
	printRanking(cmd.OutOrStdout(), rows)
	return nil
}

func printRanking(w io.Writer, rows []models.TitleCount) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "TITLE\tRATINGS")
	for _, row := range rows {
		_, _ = fmt.Fprintf(tw, "%s\t%d\n", row.Title, row.Count)
	}
	_ = tw.Flush()
}
