// Marquee - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package services

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/marquee/internal/dataset"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/recommend"
)

type stubLoader struct {
	ds    *dataset.Dataset
	err   atomic.Pointer[error]
	calls atomic.Int32
}

func (l *stubLoader) Load(context.Context) (*dataset.Dataset, error) {
	l.calls.Add(1)
	if err := l.err.Load(); err != nil {
		return nil, *err
	}
	return l.ds, nil
}

func (l *stubLoader) fail(err error) { l.err.Store(&err) }

func reloadDataset(extra ...dataset.Movie) *dataset.Dataset {
	movies := []dataset.Movie{
		{MovieID: 1, Title: "Alpha", Genres: []string{"Action"}},
		{MovieID: 2, Title: "Beta", Genres: []string{"Drama"}},
	}
	return &dataset.Dataset{
		Ratings: []dataset.Rating{{UserID: 1, MovieID: 1, Rating: 4}},
		Movies:  append(movies, extra...),
	}
}

func newTestReloadService(t *testing.T, loader dataset.Loader, cfg ReloadServiceConfig) (*ReloadService, *recommend.Holder) {
	t.Helper()
	logger := zerolog.New(io.Discard)
	initial, err := recommend.NewEngine(reloadDataset(), recommend.DefaultConfig(), logger)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	if cfg.Engine == (recommend.Config{}) {
		cfg.Engine = recommend.DefaultConfig()
	}
	holder := recommend.NewHolder(initial)
	return NewReloadService(loader, holder, cfg, logger), holder
}

func TestReloadServiceReloadSwapsEngine(t *testing.T) {
	loader := &stubLoader{ds: reloadDataset(dataset.Movie{MovieID: 3, Title: "Gamma", Genres: []string{"Drama"}})}
	svc, holder := newTestReloadService(t, loader, ReloadServiceConfig{Interval: time.Hour})
	before := holder.Load()
	successes := testutil.ToFloat64(metrics.DatasetReloads.WithLabelValues("success"))

	if err := svc.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	after := holder.Load()
	if after == before {
		t.Fatal("engine was not replaced")
	}
	if after.CatalogSize() != 3 {
		t.Errorf("CatalogSize() = %d, want 3", after.CatalogSize())
	}
	if got := testutil.ToFloat64(metrics.DatasetReloads.WithLabelValues("success")); got != successes+1 {
		t.Errorf("success reloads = %v, want %v", got, successes+1)
	}
}

func TestReloadServiceFailureKeepsEngine(t *testing.T) {
	tests := []struct {
		name   string
		loader *stubLoader
	}{
		{name: "load error", loader: func() *stubLoader {
			l := &stubLoader{}
			l.fail(errors.New("ratings file missing"))
			return l
		}()},
		{name: "empty catalog", loader: &stubLoader{ds: &dataset.Dataset{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, holder := newTestReloadService(t, tt.loader, ReloadServiceConfig{Interval: time.Hour})
			before := holder.Load()
			failures := testutil.ToFloat64(metrics.DatasetReloads.WithLabelValues("error"))

			if err := svc.Reload(context.Background()); err == nil {
				t.Fatal("Reload() expected error")
			}
			if holder.Load() != before {
				t.Error("engine replaced after failed reload")
			}
			if got := testutil.ToFloat64(metrics.DatasetReloads.WithLabelValues("error")); got != failures+1 {
				t.Errorf("error reloads = %v, want %v", got, failures+1)
			}
		})
	}

	t.Run("empty catalog error is ErrEmptyCatalog", func(t *testing.T) {
		svc, _ := newTestReloadService(t, &stubLoader{ds: &dataset.Dataset{}}, ReloadServiceConfig{Interval: time.Hour})
		if err := svc.Reload(context.Background()); !errors.Is(err, recommend.ErrEmptyCatalog) {
			t.Errorf("Reload() error = %v, want ErrEmptyCatalog", err)
		}
	})
}

func TestReloadServiceServe(t *testing.T) {
	t.Run("disabled interval does not restart", func(t *testing.T) {
		svc, _ := newTestReloadService(t, &stubLoader{ds: reloadDataset()}, ReloadServiceConfig{})
		if err := svc.Serve(context.Background()); !errors.Is(err, suture.ErrDoNotRestart) {
			t.Errorf("Serve() error = %v, want ErrDoNotRestart", err)
		}
	})

	t.Run("reloads on start and on schedule", func(t *testing.T) {
		loader := &stubLoader{ds: reloadDataset()}
		svc, _ := newTestReloadService(t, loader, ReloadServiceConfig{
			Interval:      20 * time.Millisecond,
			ReloadOnStart: true,
		})

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- svc.Serve(ctx) }()

		deadline := time.Now().Add(2 * time.Second)
		for loader.calls.Load() < 3 && time.Now().Before(deadline) {
			time.Sleep(5 * time.Millisecond)
		}
		cancel()

		if err := <-done; !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() error = %v, want context.Canceled", err)
		}
		if got := loader.calls.Load(); got < 3 {
			t.Errorf("loader calls = %d, want at least 3", got)
		}
	})

	t.Run("scheduled failure does not stop the service", func(t *testing.T) {
		loader := &stubLoader{}
		loader.fail(errors.New("transient"))
		svc, _ := newTestReloadService(t, loader, ReloadServiceConfig{Interval: 10 * time.Millisecond})

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("Serve() error = %v, want context.DeadlineExceeded", err)
		}
		if loader.calls.Load() < 2 {
			t.Errorf("loader calls = %d, want retries", loader.calls.Load())
		}
	})

	if got := (&ReloadService{name: "dataset-reload"}).String(); got != "dataset-reload" {
		t.Errorf("String() = %q", got)
	}
}
