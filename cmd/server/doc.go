// Marquee - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package main is the entry point for the Marquee recommendation server.
//
// Marquee answers "movies like this one" for a given user. Titles with
// enough ratings are answered by nearest-neighbor search over the
// user-by-movie rating matrix; the rest fall back to genre similarity.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: defaults, optional config.yaml, then environment (koanf v2)
//  2. Logging: zerolog, JSON or console
//  3. Dataset: ratings and movies through the csv or duckdb loader
//  4. Engine: collaborative and content indices built once, published via recommend.Holder
//  5. HTTP Server: chi router with CORS, per-IP rate limiting and Prometheus metrics
//  6. Supervisor: suture tree running the HTTP server and the optional reload service
//
// # Configuration
//
//	HTTP_PORT=6000
//	DATASET_DRIVER=duckdb
//	RATINGS_PATH=/data/ratings.csv
//	MOVIES_PATH=/data/movies.csv
//	DATASET_RELOAD_INTERVAL=1h
//	MIN_RATINGS_THRESHOLD=50
//
// # Signal Handling
//
// SIGINT and SIGTERM stop the supervisor tree; in-flight requests get the
// server timeout to drain. SIGHUP rebuilds the engine from the dataset
// without restarting; a failed rebuild keeps the current engine.
package main
