// SPDX-License-Identifier: MIT

package partition

import (
	"context"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/community"

	"github.com/katalvlaran/segimage/rag"
)

// Partitioner splits the vertices of a region-adjacency graph into communities.
type Partitioner interface {
	Partition(ctx context.Context, g *rag.Graph) (*Partition, error)
}

// DefaultResolution is the modularity resolution γ used when none is given.
const DefaultResolution = 1.0

// pcgStream is the fixed PCG stream selector; only the seed varies.
const pcgStream = 0x5e61_4a6e

// Louvain partitions a graph by modularity maximization (gonum community.Modularize).
// The zero value is not usable; construct with NewLouvain.
type Louvain struct {
	resolution float64
	seed       uint64
	affinity   rag.AffinityFunc
}

// LouvainOption configures a Louvain partitioner.
type LouvainOption func(*Louvain)

// WithResolution sets the resolution γ. Panics if r <= 0.
func WithResolution(r float64) LouvainOption {
	if r <= 0 {
		panic("partition: WithResolution(r <= 0)")
	}
	return func(l *Louvain) { l.resolution = r }
}

// WithSeed sets the seed of the per-call random source.
func WithSeed(seed uint64) LouvainOption {
	return func(l *Louvain) { l.seed = seed }
}

// WithAffinity sets how edge weights are presented to the optimizer.
// Panics if f is nil.
func WithAffinity(f rag.AffinityFunc) LouvainOption {
	if f == nil {
		panic("partition: WithAffinity(nil)")
	}
	return func(l *Louvain) { l.affinity = f }
}

// NewLouvain returns a Louvain partitioner. Defaults: resolution 1,
// seed 0, affinity rag.Similarity.
func NewLouvain(opts ...LouvainOption) *Louvain {
	l := &Louvain{resolution: DefaultResolution, affinity: rag.Similarity}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Resolution returns the configured resolution γ.
func (l *Louvain) Resolution() float64 { return l.resolution }

// Partition runs Louvain on g. Graphs with no edges, or whose affinities sum
// to zero, give one singleton community per vertex.
//
// Returns ErrNilGraph for a nil graph and ctx.Err() if ctx is already done.
func (l *Louvain) Partition(ctx context.Context, g *rag.Graph) (*Partition, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if totalAffinity(g, l.affinity) == 0 {
		return singletons(g.Order())
	}
	reduced := community.Modularize(g.Gonum(l.affinity), l.resolution, rand.NewPCG(l.seed, pcgStream))
	return FromGroups(canonicalGroups(reduced.Communities()))
}

// Modularity returns Q of p over g at the given resolution, using the same
// affinity as l. p must be valid for g.
func (l *Louvain) Modularity(g *rag.Graph, p *Partition) float64 {
	groups := p.Groups()
	comms := make([][]graph.Node, len(groups))
	gg := g.Gonum(l.affinity)
	for c, grp := range groups {
		comms[c] = make([]graph.Node, len(grp))
		for i, v := range grp {
			comms[c][i] = gg.Node(int64(v))
		}
	}
	return community.Q(gg, comms, l.resolution)
}

func totalAffinity(g *rag.Graph, affinity rag.AffinityFunc) float64 {
	var sum float64
	for _, e := range g.Edges() {
		sum += affinity(e)
	}
	return sum
}

func singletons(n int) (*Partition, error) {
	groups := make([][]int, n)
	for v := range groups {
		groups[v] = []int{v}
	}
	return FromGroups(groups)
}

// canonicalGroups sorts each community and orders communities by their
// smallest vertex, dropping empty ones.
func canonicalGroups(comms [][]graph.Node) [][]int {
	groups := make([][]int, 0, len(comms))
	for _, comm := range comms {
		if len(comm) == 0 {
			continue
		}
		grp := make([]int, len(comm))
		for i, n := range comm {
			grp[i] = int(n.ID())
		}
		sort.Ints(grp)
		groups = append(groups, grp)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i][0] < groups[j][0] })
	return groups
}
