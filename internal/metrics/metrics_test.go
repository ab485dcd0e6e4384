// Marquee - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordRecommendation(t *testing.T) {
	before := testutil.ToFloat64(RecommendationsTotal.WithLabelValues("Content Filtering"))

	RecordRecommendation("Content Filtering", 3*time.Millisecond)
	RecordRecommendation("Content Filtering", 5*time.Millisecond)

	got := testutil.ToFloat64(RecommendationsTotal.WithLabelValues("Content Filtering"))
	if got-before != 2 {
		t.Errorf("recommendations counter advanced by %v, want 2", got-before)
	}
}

func TestRecordResolutionCache(t *testing.T) {
	hits := testutil.ToFloat64(TitleResolutionCache.WithLabelValues("hit"))
	misses := testutil.ToFloat64(TitleResolutionCache.WithLabelValues("miss"))

	RecordResolutionCache(true)
	RecordResolutionCache(false)
	RecordResolutionCache(false)

	if d := testutil.ToFloat64(TitleResolutionCache.WithLabelValues("hit")) - hits; d != 1 {
		t.Errorf("hit delta = %v, want 1", d)
	}
	if d := testutil.ToFloat64(TitleResolutionCache.WithLabelValues("miss")) - misses; d != 2 {
		t.Errorf("miss delta = %v, want 2", d)
	}
}

func TestSetDatasetRecords(t *testing.T) {
	SetDatasetRecords(100, 20, 7, 5)

	tests := map[string]float64{"ratings": 100, "movies": 20, "users": 7, "genres": 5}
	for kind, want := range tests {
		if got := testutil.ToFloat64(DatasetRecords.WithLabelValues(kind)); got != want {
			t.Errorf("dataset records %s = %v, want %v", kind, got, want)
		}
	}
}

func TestRecordDatasetReload(t *testing.T) {
	ok := testutil.ToFloat64(DatasetReloads.WithLabelValues("success"))
	failed := testutil.ToFloat64(DatasetReloads.WithLabelValues("error"))

	RecordDatasetReload(nil)
	RecordDatasetReload(errors.New("read ratings: permission denied"))

	if d := testutil.ToFloat64(DatasetReloads.WithLabelValues("success")) - ok; d != 1 {
		t.Errorf("success delta = %v, want 1", d)
	}
	if d := testutil.ToFloat64(DatasetReloads.WithLabelValues("error")) - failed; d != 1 {
		t.Errorf("error delta = %v, want 1", d)
	}
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/recommend", "200"))

	RecordAPIRequest("GET", "/api/v1/recommend", "200", 10*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/recommend", "200"))
	if after-before != 1 {
		t.Errorf("api requests delta = %v, want 1", after-before)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+2 {
		t.Errorf("active requests = %v, want %v", got, before+2)
	}

	TrackActiveRequest(false)
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("active requests = %v, want %v", got, before)
	}
}

func TestRecordIndexBuildAndRateLimit(t *testing.T) {
	RecordIndexBuild("content", 250*time.Millisecond)
	if n := testutil.CollectAndCount(IndexBuildDuration); n == 0 {
		t.Error("expected index build histogram to have series")
	}

	before := testutil.ToFloat64(APIRateLimitHits.WithLabelValues("/recommend"))
	RecordRateLimitHit("/recommend")
	if d := testutil.ToFloat64(APIRateLimitHits.WithLabelValues("/recommend")) - before; d != 1 {
		t.Errorf("rate limit delta = %v, want 1", d)
	}
}
