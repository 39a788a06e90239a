package di

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialgraph/domain/core/aggregates"
	pkgerrors "socialgraph/pkg/errors"
)

func TestGraphHolder_EmptyReportsNotFound(t *testing.T) {
	holder := NewGraphHolder()

	_, err := holder.Current()
	require.Error(t, err)
	assert.True(t, pkgerrors.IsType(err, pkgerrors.ErrorTypeNotFound))
}

func TestGraphHolder_SwapReplacesCurrent(t *testing.T) {
	holder := NewGraphHolder()

	first := aggregates.NewGraph()
	holder.Swap(first)

	got, err := holder.Current()
	require.NoError(t, err)
	assert.Equal(t, first.ID(), got.ID())

	second := aggregates.NewGraph()
	holder.Swap(second)

	got, err = holder.Current()
	require.NoError(t, err)
	assert.Equal(t, second.ID(), got.ID())

	// a reader holding the old graph keeps a valid reference
	assert.Equal(t, 0, first.NodeCount())
}
