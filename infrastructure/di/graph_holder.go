package di

import (
	"sync/atomic"

	"socialgraph/domain/core/aggregates"
	pkgerrors "socialgraph/pkg/errors"
)

// GraphHolder keeps the reader-visible graph reference. Graphs are immutable
// after construction, so the holder only needs an atomic pointer: readers
// never lock, and a swap never invalidates a graph a reader already holds.
type GraphHolder struct {
	current atomic.Pointer[aggregates.Graph]
}

// NewGraphHolder creates an empty graph holder
func NewGraphHolder() *GraphHolder {
	return &GraphHolder{}
}

// Current returns the reader-visible graph
func (h *GraphHolder) Current() (*aggregates.Graph, error) {
	graph := h.current.Load()
	if graph == nil {
		return nil, pkgerrors.NewNotFoundError("graph")
	}
	return graph, nil
}

// Swap atomically replaces the reader-visible graph
func (h *GraphHolder) Swap(graph *aggregates.Graph) {
	h.current.Store(graph)
}
