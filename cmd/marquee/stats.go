// Marquee - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tomtom215/marquee/internal/models"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dataset and engine statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		stats, err := newClient(0).Statistics(ctx)
		if err != nil {
			return reportError(cmd.ErrOrStderr(), err)
		}
		printStatistics(cmd.OutOrStdout(), stats)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func printStatistics(w io.Writer, s *models.StatisticsResponse) {
	_, _ = fmt.Fprintln(w, "Collaborative Filtering Statistics:")
	_, _ = fmt.Fprintf(w, "  Users:                 %d\n", s.TotalUsers)
	_, _ = fmt.Fprintf(w, "  Most active user:      %d ratings\n", s.MostActiveUserRatings)
	_, _ = fmt.Fprintf(w, "  Least active user:     %d ratings\n", s.LeastActiveUserRatings)
	_, _ = fmt.Fprintf(w, "  Rated movies:          %d\n", s.TotalMovies)
	_, _ = fmt.Fprintf(w, "  Most rated movie:      %d ratings\n", s.MostRatedMovieRatings)
	_, _ = fmt.Fprintf(w, "  Least rated movie:     %d ratings\n", s.LeastRatedMovieRatings)
	_, _ = fmt.Fprintf(w, "Sparsity Rate: %.2f\n", s.Sparsity)
	_, _ = fmt.Fprintf(w, "Total ratings: %d\n", s.TotalRatings)
	_, _ = fmt.Fprintf(w, "Catalog size: %d (%d genres)\n", s.CatalogSize, s.Genres)
	_, _ = fmt.Fprintf(w, "Min ratings threshold: %d\n", s.MinRatingsThreshold)

	if len(s.RatingDistribution) > 0 {
		_, _ = fmt.Fprintln(w, "Rating distribution:")
		for _, rc := range s.RatingDistribution {
			_, _ = fmt.Fprintf(w, "  %.1f: %d\n", rc.Rating, rc.Count)
		}
	}
}
