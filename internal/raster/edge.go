package raster

import (
	"sort"

	"github.com/DougLau/footile/internal/figure"
	"github.com/DougLau/footile/internal/fixed"
)

// Edge is one side of a Figure subpath, already oriented so yTop < yBot and
// tagged with the signed direction the scan rasterizer adds to scan_buf
// when it crosses the edge (spec §4.6).
type Edge struct {
	xTop, yTop fixed.Fixed
	yBot       fixed.Fixed
	islope     fixed.Fixed // dx/dy; zero for a vertical edge
	dir        int32       // +1 or -1
}

// xAt returns the edge's x position at a given y, assumed to lie within
// [yTop, yBot].
func (e Edge) xAt(y fixed.Fixed) fixed.Fixed {
	return e.xTop + e.islope.Mul(y-e.yTop)
}

// buildEdges converts a Figure's subpaths into the Edge list the scan
// rasterizer walks. Horizontal edges (v.Y == n.Y) contribute no coverage
// and are dropped (spec §4.6). One sign convention covers the whole
// figure, taken from the winding of the subpath holding the figure's
// topmost-leftmost vertex (an outer boundary): that boundary's interior
// accumulates positive coverage, and a subpath wound the other way
// subtracts from it.
func buildEdges(fig *figure.Figure) []Edge {
	edges := make([]Edge, 0, len(fig.Points))
	base := int32(1)
	if len(fig.Sorted) > 0 {
		top := fig.Sorted[0]
		for _, sp := range fig.Subpaths {
			if top >= sp.Start && top < sp.End && sp.Wind == figure.Widdershins {
				base = -1
			}
		}
	}
	for _, sp := range fig.Subpaths {
		for v := sp.Start; v < sp.End; v++ {
			n := fig.Next(v, sp)
			p0, p1 := fig.Points[v], fig.Points[n]
			if p0.Y == p1.Y {
				continue
			}

			var top, bot figure.Pt
			var dir int32
			if p1.Y > p0.Y {
				top, bot = p0, p1
				dir = base
			} else {
				top, bot = p1, p0
				dir = -base
			}

			dy := bot.Y - top.Y
			islope := (bot.X - top.X).Div(dy)
			edges = append(edges, Edge{
				xTop: top.X, yTop: top.Y, yBot: bot.Y,
				islope: islope, dir: dir,
			})
		}
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].yTop < edges[j].yTop })
	return edges
}

// activeEdgeTable tracks the edges intersecting the row currently being
// scanned. Edges are introduced once their yTop passes the row cursor and
// dropped once the row cursor reaches their yBot (lower-endpoint
// exclusion, spec §4.6).
type activeEdgeTable struct {
	edges []Edge
	next  int // index of the next not-yet-introduced edge in the sorted list
	all   []Edge
}

func newActiveEdgeTable(all []Edge) *activeEdgeTable {
	return &activeEdgeTable{all: all}
}

// advance introduces edges that start before rowBot and drops edges
// that ended at or before rowTop.
func (t *activeEdgeTable) advance(rowTop, rowBot fixed.Fixed) {
	for t.next < len(t.all) && t.all[t.next].yTop < rowBot {
		t.edges = append(t.edges, t.all[t.next])
		t.next++
	}
	if len(t.edges) == 0 {
		return
	}
	j := 0
	for _, e := range t.edges {
		if e.yBot > rowTop {
			t.edges[j] = e
			j++
		}
	}
	t.edges = t.edges[:j]
}
