package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/fogleman/gg"
)

// PathSegment is one step of a piece outline. When Arc is false it is a
// straight line to (X, Y). When Arc is true it is a semicircular arc centered
// at (CX, CY) with radius R, swept from angle A1 to A2 (radians, y-down),
// landing at (X, Y).
type PathSegment struct {
	Arc    bool
	X, Y   float64
	CX, CY float64
	R      float64
	A1, A2 float64
}

// Path is a closed piece outline in the local 0..cellUnit coordinate space.
// Tabs protrude up to tabRadius beyond the square on any side, so callers
// must leave that much margin around each piece.
type Path struct {
	StartX   float64
	StartY   float64
	Segments []PathSegment
}

// End returns the landing point of the last segment.
func (p Path) End() (float64, float64) {
	if len(p.Segments) == 0 {
		return p.StartX, p.StartY
	}
	last := p.Segments[len(p.Segments)-1]
	return last.X, last.Y
}

// IsClosed reports whether the outline ends where it started.
func (p Path) IsClosed() bool {
	x, y := p.End()
	return math.Abs(x-p.StartX) < 1e-9 && math.Abs(y-p.StartY) < 1e-9
}

// SVG returns the outline as an SVG path "d" string. Arcs become A commands
// with the sweep flag chosen by sweep direction.
func (p Path) SVG() string {
	var d strings.Builder
	fmt.Fprintf(&d, "M %s %s", ftoa(p.StartX), ftoa(p.StartY))
	for _, seg := range p.Segments {
		if seg.Arc {
			sweep := 0
			if seg.A2 > seg.A1 {
				sweep = 1
			}
			fmt.Fprintf(&d, " A %s %s 0 0 %d %s %s", ftoa(seg.R), ftoa(seg.R), sweep, ftoa(seg.X), ftoa(seg.Y))
		} else {
			fmt.Fprintf(&d, " L %s %s", ftoa(seg.X), ftoa(seg.Y))
		}
	}
	d.WriteString(" Z")
	return d.String()
}

// Draw appends the outline to the context's current path. The context's
// transform decides where on screen the piece lands.
func (p Path) Draw(dc *gg.Context) {
	dc.MoveTo(p.StartX, p.StartY)
	for _, seg := range p.Segments {
		if seg.Arc {
			dc.DrawArc(seg.CX, seg.CY, seg.R, seg.A1, seg.A2)
		} else {
			dc.LineTo(seg.X, seg.Y)
		}
	}
	dc.ClosePath()
}

func ftoa(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// outlineEdge describes one side of the unit square in traversal order:
// where it ends, its direction, and its outward normal.
type outlineEdge struct {
	code   Edge
	endX   float64
	endY   float64
	dirX   float64
	dirY   float64
	normX  float64
	normY  float64
	startX float64
	startY float64
}

// BuildOutline produces the closed outline for a piece with the given edge
// codes. Traversal is clockwise from the top-left corner: top, right,
// bottom, left. A flat edge is a single straight segment. A notched edge
// runs straight to the near shoulder of the midpoint, sweeps a semicircle of
// radius tabRadius through the midpoint (outward for a tab, inward for a
// blank), then runs straight to the corner.
//
// tabRadius must stay safely below cellUnit/2 or adjacent arcs would
// overlap; that is a build-time constant, not a runtime condition.
func BuildOutline(edges EdgeSet) Path {
	const u = cellUnit
	sides := []outlineEdge{
		{code: edges.Top, startX: 0, startY: 0, endX: u, endY: 0, dirX: 1, dirY: 0, normX: 0, normY: -1},
		{code: edges.Right, startX: u, startY: 0, endX: u, endY: u, dirX: 0, dirY: 1, normX: 1, normY: 0},
		{code: edges.Bottom, startX: u, startY: u, endX: 0, endY: u, dirX: -1, dirY: 0, normX: 0, normY: 1},
		{code: edges.Left, startX: 0, startY: u, endX: 0, endY: 0, dirX: 0, dirY: -1, normX: -1, normY: 0},
	}

	path := Path{StartX: 0, StartY: 0}
	for _, side := range sides {
		if side.code == EdgeFlat {
			path.Segments = append(path.Segments, PathSegment{X: side.endX, Y: side.endY})
			continue
		}

		midX := (side.startX + side.endX) / 2
		midY := (side.startY + side.endY) / 2
		nearX := midX - tabRadius*side.dirX
		nearY := midY - tabRadius*side.dirY
		farX := midX + tabRadius*side.dirX
		farY := midY + tabRadius*side.dirY

		// The semicircle is centered on the edge midpoint and enters at the
		// near shoulder. Sweeping the angle upward bulges along the outward
		// normal (tab); sweeping downward carves into the piece (blank).
		a1 := math.Atan2(-side.dirY, -side.dirX)
		a2 := a1 + math.Pi
		if side.code == EdgeBlank {
			a2 = a1 - math.Pi
		}

		path.Segments = append(path.Segments,
			PathSegment{X: nearX, Y: nearY},
			PathSegment{Arc: true, X: farX, Y: farY, CX: midX, CY: midY, R: tabRadius, A1: a1, A2: a2},
			PathSegment{X: side.endX, Y: side.endY},
		)
	}
	return path
}
