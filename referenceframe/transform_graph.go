// Package referenceframe relates scanner coordinate frames through a graph of rigid transforms.
package referenceframe

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"go.viam.com/beaconmap/spatialmath"
)

// transformEdge carries the pose that maps points in the To frame into the From frame.
type transformEdge struct {
	from, to graph.Node
	pose     spatialmath.Pose
}

func (e transformEdge) From() graph.Node { return e.from }

func (e transformEdge) To() graph.Node { return e.to }

// ReversedEdge returns the edge in the other direction, carrying the inverse pose.
func (e transformEdge) ReversedEdge() graph.Edge {
	return transformEdge{from: e.to, to: e.from, pose: spatialmath.PoseInverse(e.pose)}
}

// TransformGraph is a directed graph of frames. The edge u→v holds the pose p with
// point_in_u = p.Transform(point_in_v), and every edge has a reverse edge holding the inverse.
// It is not safe for concurrent mutation.
type TransformGraph struct {
	g *simple.DirectedGraph
}

// NewTransformGraph returns an empty graph.
func NewTransformGraph() *TransformGraph {
	return &TransformGraph{g: simple.NewDirectedGraph()}
}

// AddNode adds a frame with no transforms. Adding an existing frame does nothing.
func (tg *TransformGraph) AddNode(id int) {
	if tg.HasNode(id) {
		return
	}
	tg.g.AddNode(simple.Node(id))
}

// HasNode returns whether the frame is in the graph.
func (tg *TransformGraph) HasNode(id int) bool {
	return tg.g.Node(int64(id)) != nil
}

// AddTransform records that pose maps points in frame v into frame u, and the inverse from u into v.
// Frames are added as needed; an existing transform between the two frames is replaced.
func (tg *TransformGraph) AddTransform(u, v int, pose spatialmath.Pose) error {
	if u == v {
		return NewSelfTransformError(u)
	}
	tg.AddNode(u)
	tg.AddNode(v)
	edge := transformEdge{from: tg.g.Node(int64(u)), to: tg.g.Node(int64(v)), pose: pose}
	tg.g.SetEdge(edge)
	tg.g.SetEdge(edge.ReversedEdge())
	return nil
}

// Transform returns the pose mapping points in frame v into frame u, if the two are directly related.
func (tg *TransformGraph) Transform(u, v int) (spatialmath.Pose, bool) {
	e := tg.g.Edge(int64(u), int64(v))
	if e == nil {
		return spatialmath.Pose{}, false
	}
	return e.(transformEdge).pose, true
}

// Nodes returns every frame in ascending order.
func (tg *TransformGraph) Nodes() []int {
	return sortedIDs(tg.g.Nodes())
}

// Neighbors returns the frames directly related to id in ascending order.
func (tg *TransformGraph) Neighbors(id int) []int {
	return sortedIDs(tg.g.From(int64(id)))
}

// EdgeCount returns the number of directed edges, two per transform added.
func (tg *TransformGraph) EdgeCount() int {
	return tg.g.Edges().Len()
}

// WorldTransforms walks the graph depth first from root and returns, for every reachable frame, the
// pose mapping points in that frame into root's frame. Root maps to the identity. Each frame's pose is
// composed once, along the first path that reaches it; neighbors are taken in ascending order.
func (tg *TransformGraph) WorldTransforms(root int) (map[int]spatialmath.Pose, error) {
	if !tg.HasNode(root) {
		return nil, NewNodeMissingError(root)
	}
	world := map[int]spatialmath.Pose{root: spatialmath.NewZeroPose()}
	stack := []int{root}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		neighbors := tg.Neighbors(u)
		// push in reverse so the smallest neighbor is expanded first
		for i := len(neighbors) - 1; i >= 0; i-- {
			v := neighbors[i]
			if _, seen := world[v]; seen {
				continue
			}
			edge, _ := tg.Transform(u, v)
			world[v] = spatialmath.Compose(world[u], edge)
			stack = append(stack, v)
		}
	}
	return world, nil
}

func sortedIDs(nodes graph.Nodes) []int {
	var ids []int
	for _, n := range graph.NodesOf(nodes) {
		ids = append(ids, int(n.ID()))
	}
	sort.Ints(ids)
	return ids
}
