// Marquee - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"sync/atomic"
)

// Holder publishes the current Engine. Readers always see a fully built
// engine; Store swaps in a replacement without blocking them.
type Holder struct {
	engine atomic.Pointer[Engine]
}

// NewHolder returns a Holder serving e, which may be nil.
func NewHolder(e *Engine) *Holder {
	h := &Holder{}
	if e != nil {
		h.engine.Store(e)
	}
	return h
}

// Load returns the current engine, or nil before the first Store.
func (h *Holder) Load() *Engine {
	return h.engine.Load()
}

// Store publishes e. The previous engine stays valid for callers that
// already hold it.
func (h *Holder) Store(e *Engine) {
	h.engine.Store(e)
}

// Ready reports whether an engine has been published.
func (h *Holder) Ready() bool {
	return h.engine.Load() != nil
}
