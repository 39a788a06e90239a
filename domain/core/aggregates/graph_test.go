package aggregates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialgraph/domain/core/entities"
	"socialgraph/domain/core/valueobjects"
	pkgerrors "socialgraph/pkg/errors"
)

func nodeID(t *testing.T, id string) valueobjects.NodeID {
	t.Helper()
	nid, err := valueobjects.NewNodeID(id)
	require.NoError(t, err)
	return nid
}

func TestGraph_AddNode_RejectsDuplicateID(t *testing.T) {
	g := NewGraph()

	u1 := nodeID(t, "u1")
	require.NoError(t, g.AddNode(entities.NewUser(u1, "alice", 30, "female", "Berlin", nil, nil, nil)))

	// The id namespace spans all kinds: a post reusing a user id collides
	err := g.AddNode(entities.NewPost(u1, "u2", "hello", "2024-01-01", nil, nil))
	require.Error(t, err)
	assert.True(t, pkgerrors.IsDuplicateNode(err))

	// The first insertion survives untouched
	node, ok := g.Node(u1)
	require.True(t, ok)
	assert.Equal(t, entities.KindUser, node.Kind())
}

func TestGraph_AddEdge_AutoCreatesPlaceholders(t *testing.T) {
	g := NewGraph()

	g.AddEdge(nodeID(t, "ghost"), nodeID(t, "p1"), entities.ConnectionViewed)

	for _, id := range []string{"ghost", "p1"} {
		node, ok := g.Node(nodeID(t, id))
		require.True(t, ok, "placeholder %s should exist", id)
		assert.Equal(t, entities.KindUnknown, node.Kind())

		_, hasAttr := node.Attribute("username")
		assert.False(t, hasAttr, "placeholders expose no attributes")
	}

	// Placeholders stay invisible to every typed query
	assert.Empty(t, g.NodesByKind(entities.KindUser))
	assert.Empty(t, g.NodesByKind(entities.KindPost))
	assert.Len(t, g.NodesByKind(entities.KindUnknown), 2)
}

func TestGraph_EdgesAreNotDeduplicated(t *testing.T) {
	g := NewGraph()

	from, to := nodeID(t, "u1"), nodeID(t, "p1")
	g.AddEdge(from, to, entities.ConnectionViewed)
	g.AddEdge(from, to, entities.ConnectionViewed)
	g.AddEdge(from, to, entities.ConnectionAuthored)

	assert.Equal(t, 3, g.EdgeCount())
	assert.Len(t, g.InEdges(to, entities.ConnectionViewed), 2)
	assert.Len(t, g.InEdges(to, entities.ConnectionAuthored), 1)
	assert.Len(t, g.InEdges(to), 3)
	assert.Len(t, g.OutEdges(from), 3)
}

func TestGraph_NodesPreserveInsertionOrder(t *testing.T) {
	g := NewGraph()

	ids := []string{"u2", "u1", "p9", "p1", "c5"}
	require.NoError(t, g.AddNode(entities.NewUser(nodeID(t, "u2"), "bob", 22, "male", "Oslo", nil, nil, nil)))
	require.NoError(t, g.AddNode(entities.NewUser(nodeID(t, "u1"), "alice", 30, "female", "Berlin", nil, nil, nil)))
	require.NoError(t, g.AddNode(entities.NewPost(nodeID(t, "p9"), "u2", "first", "t1", nil, nil)))
	require.NoError(t, g.AddNode(entities.NewPost(nodeID(t, "p1"), "u1", "second", "t2", nil, nil)))
	require.NoError(t, g.AddNode(entities.NewComment(nodeID(t, "c5"), "u1", "p9", "nice", "t3")))

	var got []string
	for _, node := range g.Nodes() {
		got = append(got, node.ID().String())
	}
	assert.Equal(t, ids, got)

	var posts []string
	for _, post := range g.Posts() {
		posts = append(posts, post.ID().String())
	}
	assert.Equal(t, []string{"p9", "p1"}, posts)
}

func TestGraph_ReadAccessorsCopyState(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.AddNode(entities.NewUser(nodeID(t, "u1"), "alice", 30, "female", "Berlin", nil, nil, nil)))
	g.AddEdge(nodeID(t, "u1"), nodeID(t, "p1"), entities.ConnectionAuthored)

	edges := g.Edges()
	edges[0] = nil
	require.NotNil(t, g.Edges()[0])

	in := g.InEdges(nodeID(t, "p1"))
	in[0] = nil
	require.NotNil(t, g.InEdges(nodeID(t, "p1"))[0])
}
