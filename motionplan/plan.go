package motionplan

import (
	"fmt"
	"time"

	"github.com/golang/geo/r2"
	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gonum.org/v1/gonum/floats"

	"go.viam.com/rrtplan/spatialmath"
)

// Plan is the result of a successful planning query.
type Plan struct {
	ID uuid.UUID `json:"id"`
	// Waypoints from start to goal after smoothing.
	Waypoints []r2.Point `json:"waypoints"`
	// Waypoints from start to goal exactly as found in the tree.
	RawWaypoints []r2.Point `json:"raw_waypoints"`
	// Cost of the tree path to the goal.
	Cost       float64       `json:"cost"`
	Iterations int           `json:"iterations"`
	TreeSize   int           `json:"tree_size"`
	Smoothed   bool          `json:"smoothed"`
	Elapsed    time.Duration `json:"elapsed"`
}

func newPlan(raw, waypoints []r2.Point, cost float64, iterations, treeSize int, smoothed bool) *Plan {
	return &Plan{
		ID:           uuid.New(),
		Waypoints:    waypoints,
		RawWaypoints: raw,
		Cost:         cost,
		Iterations:   iterations,
		TreeSize:     treeSize,
		Smoothed:     smoothed,
	}
}

// Length returns the length of the polyline through the plan's waypoints.
func (p *Plan) Length() float64 {
	return PathLength(p.Waypoints)
}

// PathLength returns the summed segment lengths of the polyline through points.
func PathLength(points []r2.Point) float64 {
	if len(points) < 2 {
		return 0
	}
	segments := make([]float64, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		segments = append(segments, spatialmath.Distance(points[i-1], points[i]))
	}
	return floats.Sum(segments)
}

// String renders the plan ID followed by a table of its waypoints and cost.
func (p *Plan) String() string {
	t := table.NewWriter()
	t.Style().Format.Footer = text.FormatDefault
	t.AppendHeader(table.Row{"#", "X", "Y"})
	for i, wp := range p.Waypoints {
		t.AppendRow(table.Row{i, fmt.Sprintf("%.4f", wp.X), fmt.Sprintf("%.4f", wp.Y)})
	}
	t.AppendFooter(table.Row{"", "cost", fmt.Sprintf("%.4f", p.Cost)})
	// the ID stays out of the table title, which go-pretty wraps to the table width
	return fmt.Sprintf("plan %s\n%s", p.ID, t.Render())
}
