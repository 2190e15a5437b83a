package calendar

import (
	"math"
	"time"
)

type Unit string

const (
	UnitPixels  Unit = "px"
	UnitPercent Unit = "%"
)

type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

const (
	DefaultMinEventMinutes  = 15
	DefaultMinEventHeightPx = 38
	DefaultPixelsPerMinute  = 1.0
)

// GridConfig describes how minutes become boxes.
type GridConfig struct {
	Unit             Unit
	PixelsPerMinute  float64
	MinEventMinutes  float64
	MinEventHeightPx float64
	RTL              bool
}

// DefaultGrid is the pixel grid used by the day and week views.
var DefaultGrid = GridConfig{
	Unit:             UnitPixels,
	PixelsPerMinute:  DefaultPixelsPerMinute,
	MinEventMinutes:  DefaultMinEventMinutes,
	MinEventHeightPx: DefaultMinEventHeightPx,
}

// Percent returns a copy of the grid measuring vertical values in percent
// of the window instead of pixels.
func (g GridConfig) Percent() GridConfig {
	g.Unit = UnitPercent
	return g
}

// Geometry is the box of one event. Top and Height are in Unit; Offset and
// Width are always percentages of the day column, measured from Side.
type Geometry struct {
	Unit   Unit    `json:"unit"`
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
	Side   Side    `json:"side"`
	Offset float64 `json:"offset"`
	Width  float64 `json:"width"`
}

// MapToGeometry positions an event inside a time grid whose visible range
// starts at windowStart and lasts totalWindowMinutes. It always returns a
// drawable box inside the grid: events that end before the window collapse
// to a minimum box at the top, and events that start in the last
// MinEventMinutes of the window or after it are pinned to the bottom slot.
func MapToGeometry(
	ev Event,
	laneIndex int,
	laneCount int,
	windowStart time.Time,
	totalWindowMinutes float64,
	grid GridConfig,
) Geometry {
	grid = sanitizeGrid(grid)
	total := finiteOr(totalWindowMinutes, 0)
	if total < 0 {
		total = 0
	}

	fromStart := finiteOr(ev.Start.Sub(windowStart).Minutes(), 0)
	duration := finiteOr(ev.End.Sub(ev.Start).Minutes(), 0)
	if duration < grid.MinEventMinutes {
		duration = grid.MinEventMinutes
	}

	top := fromStart
	if top < 0 {
		duration += top
		top = 0
	}
	if last := total - grid.MinEventMinutes; top > last {
		top = math.Max(last, 0)
	}
	if remaining := total - top; duration > remaining {
		duration = remaining
	}
	if duration < grid.MinEventMinutes {
		duration = math.Min(grid.MinEventMinutes, total-top)
	}
	if duration < 0 {
		duration = 0
	}

	g := Geometry{Unit: grid.Unit}

	switch grid.Unit {
	case UnitPercent:
		if total > 0 {
			g.Top = top / total * 100
			g.Height = duration / total * 100
		}
	default:
		g.Top = top * grid.PixelsPerMinute
		g.Height = math.Max(duration*grid.PixelsPerMinute, grid.MinEventHeightPx)
	}

	if laneCount < 1 {
		laneCount = 1
	}
	if laneIndex < 0 {
		laneIndex = 0
	}
	if laneIndex >= laneCount {
		laneIndex = laneCount - 1
	}

	g.Width = 100 / float64(laneCount)
	g.Offset = g.Width * float64(laneIndex)
	g.Side = SideLeft
	if grid.RTL {
		g.Side = SideRight
	}

	return g
}

func sanitizeGrid(g GridConfig) GridConfig {
	if g.Unit != UnitPercent {
		g.Unit = UnitPixels
	}
	g.PixelsPerMinute = finiteOr(g.PixelsPerMinute, DefaultPixelsPerMinute)
	if g.PixelsPerMinute <= 0 {
		g.PixelsPerMinute = DefaultPixelsPerMinute
	}
	g.MinEventMinutes = finiteOr(g.MinEventMinutes, DefaultMinEventMinutes)
	if g.MinEventMinutes < 0 {
		g.MinEventMinutes = DefaultMinEventMinutes
	}
	g.MinEventHeightPx = finiteOr(g.MinEventHeightPx, DefaultMinEventHeightPx)
	if g.MinEventHeightPx < 0 {
		g.MinEventHeightPx = DefaultMinEventHeightPx
	}
	return g
}

func finiteOr(v, def float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}
