package ports

import (
	"context"

	"socialgraph/domain/core/aggregates"
	"socialgraph/domain/core/entities"
)

// GraphProvider hands out the current graph reference. A dataset reload builds
// a new graph off to the side and swaps it in atomically; readers holding the
// old reference keep a valid, fully usable graph.
type GraphProvider interface {
	// Current returns the reader-visible graph, or a not-found error when no
	// build has completed yet
	Current() (*aggregates.Graph, error)
	// Swap atomically replaces the reader-visible graph
	Swap(graph *aggregates.Graph)
}

// DatasetSource loads the raw entity collections a graph is built from
type DatasetSource interface {
	Load(ctx context.Context) (entities.Dataset, error)
}
