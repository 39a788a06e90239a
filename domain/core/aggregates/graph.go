package aggregates

import (
	"time"

	"github.com/google/uuid"

	"socialgraph/domain/core/entities"
	"socialgraph/domain/core/valueobjects"
	pkgerrors "socialgraph/pkg/errors"
)

// GraphID represents a unique graph identifier
type GraphID string

// NewGraphID creates a new random GraphID
func NewGraphID() GraphID {
	return GraphID(uuid.New().String())
}

// String returns the string representation
func (id GraphID) String() string {
	return string(id)
}

// Graph is the aggregate root for one built social graph: a node set keyed by
// identifier plus a directed edge multiset. Node insertion order is preserved
// and semantically meaningful — it is the only deterministic tie-break source
// for filtering and ranking.
//
// A Graph is populated once by the builder and is read-only afterwards; it is
// safe for unlimited concurrent readers. A changed dataset requires building a
// new Graph and atomically replacing the reference.
type Graph struct {
	id        GraphID
	nodes     map[valueobjects.NodeID]entities.Node
	order     []valueobjects.NodeID
	edges     []*Edge
	outEdges  map[valueobjects.NodeID][]*Edge
	inEdges   map[valueobjects.NodeID][]*Edge
	createdAt time.Time
}

// Edge represents a directed connection between nodes. Edges are never
// deduplicated: multiple edges between the same ordered pair are permitted,
// and one viewer produces exactly one viewed edge per occurrence in the input.
type Edge struct {
	ID        string                  `json:"id"`
	SourceID  valueobjects.NodeID     `json:"source_id"`
	TargetID  valueobjects.NodeID     `json:"target_id"`
	Type      entities.ConnectionType `json:"connection_type"`
	CreatedAt time.Time               `json:"-"`
}

// NewGraph creates an empty graph aggregate
func NewGraph() *Graph {
	return &Graph{
		id:        NewGraphID(),
		nodes:     make(map[valueobjects.NodeID]entities.Node),
		order:     []valueobjects.NodeID{},
		edges:     []*Edge{},
		outEdges:  make(map[valueobjects.NodeID][]*Edge),
		inEdges:   make(map[valueobjects.NodeID][]*Edge),
		createdAt: time.Now(),
	}
}

// ID returns the graph's unique identifier
func (g *Graph) ID() GraphID {
	return g.id
}

// CreatedAt returns when the graph was built
func (g *Graph) CreatedAt() time.Time {
	return g.createdAt
}

// AddNode adds a node to the graph. A second insertion of an existing id is a
// hard error, never a silent overwrite — the id namespace is shared across all
// node kinds, placeholders included.
func (g *Graph) AddNode(node entities.Node) error {
	if node == nil {
		return pkgerrors.NewValidationError("node cannot be nil")
	}

	nodeID := node.ID()
	if _, exists := g.nodes[nodeID]; exists {
		return pkgerrors.NewDuplicateNodeError(nodeID.String())
	}

	g.nodes[nodeID] = node
	g.order = append(g.order, nodeID)
	return nil
}

// AddEdge appends a directed edge to the multiset. An endpoint absent from the
// graph is auto-created as an unknown-kind placeholder: a referentially
// inconsistent input (a comment naming a post that was never ingested) keeps
// the build alive instead of failing it, and the placeholder stays invisible
// to every typed query.
func (g *Graph) AddEdge(from, to valueobjects.NodeID, connType entities.ConnectionType) *Edge {
	g.ensureNode(from)
	g.ensureNode(to)

	edge := &Edge{
		ID:        uuid.New().String(),
		SourceID:  from,
		TargetID:  to,
		Type:      connType,
		CreatedAt: time.Now(),
	}

	g.edges = append(g.edges, edge)
	g.outEdges[from] = append(g.outEdges[from], edge)
	g.inEdges[to] = append(g.inEdges[to], edge)
	return edge
}

func (g *Graph) ensureNode(id valueobjects.NodeID) {
	if _, exists := g.nodes[id]; !exists {
		g.nodes[id] = entities.NewPlaceholder(id)
		g.order = append(g.order, id)
	}
}

// Node retrieves a node by id
func (g *Graph) Node(id valueobjects.NodeID) (entities.Node, bool) {
	node, exists := g.nodes[id]
	return node, exists
}

// Nodes returns all nodes in insertion order
func (g *Graph) Nodes() []entities.Node {
	nodes := make([]entities.Node, 0, len(g.order))
	for _, id := range g.order {
		nodes = append(nodes, g.nodes[id])
	}
	return nodes
}

// NodesByKind returns the nodes of one kind in insertion order
func (g *Graph) NodesByKind(kind entities.NodeKind) []entities.Node {
	var nodes []entities.Node
	for _, id := range g.order {
		if node := g.nodes[id]; node.Kind() == kind {
			nodes = append(nodes, node)
		}
	}
	return nodes
}

// Posts returns the post nodes in insertion order
func (g *Graph) Posts() []*entities.Post {
	var posts []*entities.Post
	for _, id := range g.order {
		if post, ok := g.nodes[id].(*entities.Post); ok {
			posts = append(posts, post)
		}
	}
	return posts
}

// Edges returns all edges in insertion order
func (g *Graph) Edges() []*Edge {
	edges := make([]*Edge, len(g.edges))
	copy(edges, g.edges)
	return edges
}

// OutEdges returns the edges leaving a node
func (g *Graph) OutEdges(id valueobjects.NodeID) []*Edge {
	edges := make([]*Edge, len(g.outEdges[id]))
	copy(edges, g.outEdges[id])
	return edges
}

// InEdges returns the edges arriving at a node, optionally restricted to the
// given connection types
func (g *Graph) InEdges(id valueobjects.NodeID, types ...entities.ConnectionType) []*Edge {
	all := g.inEdges[id]
	if len(types) == 0 {
		edges := make([]*Edge, len(all))
		copy(edges, all)
		return edges
	}

	var edges []*Edge
	for _, edge := range all {
		for _, t := range types {
			if edge.Type == t {
				edges = append(edges, edge)
				break
			}
		}
	}
	return edges
}

// NodeCount returns the number of nodes, placeholders included
func (g *Graph) NodeCount() int {
	return len(g.order)
}

// EdgeCount returns the number of edges
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}
