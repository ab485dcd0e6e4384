// Marquee - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tomtom215/marquee/internal/models"
)

var recommendLimit int

var recommendCmd = &cobra.Command{
	Use:   "recommend <title> <user_id>",
	Short: "Recommend movies similar to a title",
	Example: `  marquee recommend "Toy Story" 42
  marquee recommend "toy stroy" 42 --limit 10`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("user_id must be an integer: %q", args[1])
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		rec, err := newClient(0).Recommend(ctx, args[0], userID, recommendLimit)
		if err != nil {
			return reportError(cmd.ErrOrStderr(), err)
		}
		printRecommendation(cmd.OutOrStdout(), args[0], rec)
		return nil
	},
}

func init() {
	recommendCmd.Flags().IntVarP(&recommendLimit, "limit", "n", 0, "number of recommendations (default: server setting)")
	rootCmd.AddCommand(recommendCmd)
}

func printRecommendation(w io.Writer, title string, rec *models.RecommendResponse) {
	matched := rec.MatchedTitle
	if matched == "" {
		matched = title
	}
	_, _ = fmt.Fprintln(w, "Recommendations for:", matched)
	_, _ = fmt.Fprintln(w, "Method Used:", rec.Method)
	_, _ = fmt.Fprintln(w, "Recommended Movies:")
	for i, movie := range rec.Recommendations {
		_, _ = fmt.Fprintf(w, "%d. %s\n", i+1, movie)
	}
}
