package core

import (
	"fmt"
	"sort"

	"mixmem/internal/errors"
)

// Connection is a directed edge between two tracks: source may be
// followed by target. A bidirectional connection is stored as two
// independent directed connections.
type Connection struct {
	Source TrackID `json:"source"`
	Target TrackID `json:"target"`
}

// Network is a directed graph of transitions over the tracks of a
// library. The network owns its graph structure; the library is a
// replaceable reference and may be swapped when it grows.
type Network struct {
	library *Library
	edges   map[TrackID]map[TrackID]struct{}
	nEdges  int
}

// NewNetwork creates a network with one node per library track and no
// connections.
func NewNetwork(library *Library) *Network {
	edges := make(map[TrackID]map[TrackID]struct{}, library.Len())
	for _, id := range library.IDs() {
		edges[id] = make(map[TrackID]struct{})
	}
	return &Network{library: library, edges: edges}
}

// NewNetworkWithConnections creates a network from a library and a set of
// existing connections. Fails if any connection references a track absent
// from the library.
func NewNetworkWithConnections(library *Library, connections []Connection) (*Network, error) {
	n := NewNetwork(library)
	for _, c := range connections {
		if err := n.AddConnection(c.Source, c.Target, false); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// Library returns the library the network was built from.
func (n *Network) Library() *Library {
	return n.library
}

// SetLibrary swaps the library reference. Existing nodes and edges are
// unchanged; new library tracks become nodes.
func (n *Network) SetLibrary(library *Library) {
	n.library = library
	for _, id := range library.IDs() {
		if _, ok := n.edges[id]; !ok {
			n.edges[id] = make(map[TrackID]struct{})
		}
	}
}

// TrackCount returns the number of nodes.
func (n *Network) TrackCount() int {
	return len(n.edges)
}

// ConnectionCount returns the number of directed edges.
func (n *Network) ConnectionCount() int {
	return n.nEdges
}

// AddConnection adds a directed edge from source to target, and the
// reverse edge as well if bidirectional. Both endpoints are validated
// before anything is inserted, so a failed add leaves the graph
// untouched. Re-adding an existing edge is a no-op.
func (n *Network) AddConnection(source, target TrackID, bidirectional bool) error {
	for _, id := range []TrackID{source, target} {
		if _, ok := n.edges[id]; !ok {
			return fmt.Errorf("%w: id %d", errors.ErrUnknownTrack, id)
		}
	}

	n.insert(source, target)
	if bidirectional {
		n.insert(target, source)
	}
	return nil
}

func (n *Network) insert(source, target TrackID) {
	if _, ok := n.edges[source][target]; ok {
		return
	}
	n.edges[source][target] = struct{}{}
	n.nEdges++
}

// RemoveConnection removes the directed edge from source to target.
func (n *Network) RemoveConnection(source, target TrackID) error {
	for _, id := range []TrackID{source, target} {
		if _, ok := n.edges[id]; !ok {
			return fmt.Errorf("%w: id %d", errors.ErrUnknownTrack, id)
		}
	}
	if _, ok := n.edges[source][target]; !ok {
		return fmt.Errorf("%w: %d -> %d", errors.ErrNoSuchConnection, source, target)
	}
	delete(n.edges[source], target)
	n.nEdges--
	return nil
}

// Neighbors returns the tracks reachable from the given track by one
// directed hop, sorted ascending by ID.
func (n *Network) Neighbors(id TrackID) ([]TrackID, error) {
	targets, ok := n.edges[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", errors.ErrUnknownTrack, id)
	}
	out := make([]TrackID, 0, len(targets))
	for t := range targets {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// Connections returns a snapshot of all directed edges, sorted by
// (source, target).
func (n *Network) Connections() []Connection {
	out := make([]Connection, 0, n.nEdges)
	for source, targets := range n.edges {
		for target := range targets {
			out = append(out, Connection{Source: source, Target: target})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Source != out[j].Source {
			return out[i].Source < out[j].Source
		}
		return out[i].Target < out[j].Target
	})
	return out
}

// Path returns the shortest directed path from one track to another as a
// sequence of track IDs including both endpoints. Breadth-first search;
// edges are unweighted.
func (n *Network) Path(from, to TrackID) ([]TrackID, error) {
	for _, id := range []TrackID{from, to} {
		if _, ok := n.edges[id]; !ok {
			return nil, fmt.Errorf("%w: id %d", errors.ErrUnknownTrack, id)
		}
	}
	if from == to {
		return []TrackID{from}, nil
	}

	parent := map[TrackID]TrackID{from: from}
	queue := []TrackID{from}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		next, _ := n.Neighbors(current)
		for _, target := range next {
			if _, seen := parent[target]; seen {
				continue
			}
			parent[target] = current
			if target == to {
				return buildPath(parent, from, to), nil
			}
			queue = append(queue, target)
		}
	}

	return nil, fmt.Errorf("%w: %d -> %d", errors.ErrNoPath, from, to)
}

func buildPath(parent map[TrackID]TrackID, from, to TrackID) []TrackID {
	path := []TrackID{to}
	for current := to; current != from; {
		current = parent[current]
		path = append(path, current)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func (n *Network) String() string {
	return fmt.Sprintf("network of %d tracks with %d connections", n.TrackCount(), n.ConnectionCount())
}
