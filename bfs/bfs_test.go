package bfs_test

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"reflect"
	"testing"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/percolate/bfs"
	"github.com/katalvlaran/percolate/core"
)

func mustGraph(t *testing.T, n int, edges [][2]int) *core.Graph {
	t.Helper()
	g, err := core.FromEdges(n, edges)
	if err != nil {
		t.Fatalf("FromEdges: %v", err)
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := mustGraph(t, 3, nil)
	for _, root := range []int{-1, 3} {
		if _, err := bfs.BFS(g, root); !errors.Is(err, bfs.ErrStartVertexNotFound) {
			t.Errorf("root %d: want ErrStartVertexNotFound, got %v", root, err)
		}
	}
	if _, err := bfs.Profile(nil); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("Profile nil graph: want ErrGraphNil, got %v", err)
	}
}

// TestBFS_Path checks distances, order and eccentricity on 0-1-2-3 plus isolated 4.
func TestBFS_Path(t *testing.T) {
	g := mustGraph(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	res, err := bfs.BFS(g, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{1, 0, 1, 2, bfs.Unreachable}; !reflect.DeepEqual(res.Dist, want) {
		t.Errorf("Dist = %v; want %v", res.Dist, want)
	}
	if want := []int{1, 0, 2, 3}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if res.Eccentricity != 2 {
		t.Errorf("Eccentricity = %d; want 2", res.Eccentricity)
	}
}

// TestProfile_Shapes covers hand-computed profiles.
func TestProfile_Shapes(t *testing.T) {
	cases := []struct {
		name  string
		n     int
		edges [][2]int
		want  bfs.DistanceProfile
	}{
		{"single", 1, nil, bfs.DistanceProfile{Nodes: 1, Connected: true}},
		{"edge", 2, [][2]int{{0, 1}}, bfs.DistanceProfile{Nodes: 2, Diameter: 1, Radius: 1, Sum: 1, Pairs: 1, Connected: true}},
		{"path4", 4, [][2]int{{0, 1}, {1, 2}, {2, 3}}, bfs.DistanceProfile{Nodes: 4, Diameter: 3, Radius: 2, Sum: 10, Pairs: 6, Connected: true}},
		{"star", 4, [][2]int{{0, 1}, {0, 2}, {0, 3}}, bfs.DistanceProfile{Nodes: 4, Diameter: 2, Radius: 1, Sum: 9, Pairs: 6, Connected: true}},
		{"cycle4", 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}, bfs.DistanceProfile{Nodes: 4, Diameter: 2, Radius: 2, Sum: 8, Pairs: 6, Connected: true}},
		{"two edges", 4, [][2]int{{0, 1}, {2, 3}}, bfs.DistanceProfile{Nodes: 4, Diameter: 1, Radius: 1, Sum: 2, Pairs: 2, Connected: false}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := bfs.Profile(mustGraph(t, tc.n, tc.edges))
			if err != nil {
				t.Fatalf("Profile: %v", err)
			}
			if got != tc.want {
				t.Errorf("Profile = %+v; want %+v", got, tc.want)
			}
		})
	}
}

func TestProfile_Mean(t *testing.T) {
	p := bfs.DistanceProfile{Sum: 10, Pairs: 6}
	if got := p.Mean(); math.Abs(got-10.0/6.0) > 1e-12 {
		t.Errorf("Mean = %v", got)
	}
	if got := (bfs.DistanceProfile{}).Mean(); got != 0 {
		t.Errorf("empty Mean = %v; want 0", got)
	}
}

func TestProfile_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := mustGraph(t, 3, [][2]int{{0, 1}})
	if _, err := bfs.Profile(g, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

// TestProfile_AgainstFloydWarshall cross-checks random graphs against gonum.
func TestProfile_AgainstFloydWarshall(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 20; trial++ {
		n := 2 + rng.Intn(25)
		p := rng.Float64() * 0.3
		g := mustGraph(t, n, nil)
		og := simple.NewUndirectedGraph()
		for i := 0; i < n; i++ {
			og.AddNode(simple.Node(i))
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if rng.Float64() < p {
					_ = g.AddEdge(i, j)
					og.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(j)})
				}
			}
		}

		all, _ := path.FloydWarshall(og)
		var want bfs.DistanceProfile
		want.Nodes = n
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				w := all.Weight(int64(i), int64(j))
				if math.IsInf(w, 1) {
					continue
				}
				d := int(w)
				want.Sum += int64(d)
				want.Pairs++
				if d > want.Diameter {
					want.Diameter = d
				}
			}
		}

		got, err := bfs.Profile(g)
		if err != nil {
			t.Fatalf("Profile: %v", err)
		}
		if got.Diameter != want.Diameter || got.Sum != want.Sum || got.Pairs != want.Pairs {
			t.Errorf("trial %d (n=%d): got %+v; want diameter=%d sum=%d pairs=%d",
				trial, n, got, want.Diameter, want.Sum, want.Pairs)
		}
	}
}
