// Marquee - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/marquee/internal/client"
)

var (
	// Global flags
	serverURL string
	timeout   time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "marquee",
	Short: "Command-line client for the Marquee recommendation service",
	Long: `Marquee recommends movies similar to a title for a given user.

Titles with enough ratings are answered by collaborative filtering over
user ratings; the rest fall back to genre similarity.`,
	SilenceErrors: true, // errors are reported by reportError
	SilenceUsage:  true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", client.DefaultBaseURL, "Marquee server URL")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "per-request timeout")

	rootCmd.AddCommand(versionCmd)
}

// newClient builds a client for the --server and --timeout flags.
func newClient(rps float64) *client.Client {
	return client.New(client.Config{
		BaseURL:           serverURL,
		Timeout:           timeout,
		RequestsPerSecond: rps,
	})
}

// reportedError marks an error already printed by reportError.
type reportedError struct{ err error }

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// printError prints an error message to the given writer unless
// reportError already did.
func printError(w io.Writer, err error) {
	var reported *reportedError
	if errors.As(err, &reported) {
		return
	}
	_, _ = fmt.Fprintf(w, "Error: %s\n", err)
}

// reportError prints err in the form users of the service expect. The
// returned error still fails the command.
func reportError(w io.Writer, err error) error {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		_, _ = fmt.Fprintf(w, "HTTP error occurred: %s\n", apiErr)
		switch apiErr.StatusCode {
		case http.StatusNotFound:
			_, _ = fmt.Fprintln(w, "Resource not found or invalid input.")
		case http.StatusBadRequest:
			_, _ = fmt.Fprintln(w, "Bad request. Please check your input parameters.")
		}
		return &reportedError{err: err}
	}

	_, _ = fmt.Fprintf(w, "Error occurred: %s\n", err)
	_, _ = fmt.Fprintf(w, "Could not connect to the backend. Ensure the server is running on %s.\n", serverURL)
	return &reportedError{err: err}
}
