// Package canvas projects a day's activities onto a 24-hour vertical canvas
// and renders that canvas in the terminal. It never changes the schedule.
package canvas

import (
	"sort"

	"github.com/LovableCodezG/tplan/internal/conflict"
	"github.com/LovableCodezG/tplan/internal/model"
	"github.com/LovableCodezG/tplan/internal/timecalc"
)

// Layout holds the canvas geometry.
type Layout struct {
	PixelsPerMinute int
	TopPadding      int
	MinBlockHeight  int
}

// DefaultLayout is one pixel per minute with a 40px floor per block.
var DefaultLayout = Layout{PixelsPerMinute: 1, TopPadding: 16, MinBlockHeight: 40}

// Block is an activity positioned on the canvas.
type Block struct {
	Activity model.Activity
	conflict.Range
	Top    int
	Height int
}

// Bottom is the first pixel row below the block.
func (b Block) Bottom() int { return b.Top + b.Height }

func (l Layout) ppm() int {
	if l.PixelsPerMinute <= 0 {
		return 1
	}
	return l.PixelsPerMinute
}

// Height is the full canvas height in pixels.
func (l Layout) Height() int {
	return l.TopPadding + timecalc.MinutesPerDay*l.ppm()
}

// Y converts minutes from midnight to a pixel offset.
func (l Layout) Y(minutes int) int {
	return l.TopPadding + minutes*l.ppm()
}

// MinuteAt converts a pixel offset back to minutes from midnight, bounded to
// the day.
func (l Layout) MinuteAt(y int) int {
	return timecalc.Clamp((y-l.TopPadding)/l.ppm(), 0, timecalc.MinutesPerDay)
}

// Project positions every activity of the day. Activities whose start time
// cannot be parsed are left out. Durations running past midnight are not
// clamped. Blocks are returned in start order; ties keep input order.
func (l Layout) Project(acts []model.Activity) []Block {
	blocks := make([]Block, 0, len(acts))
	for _, a := range acts {
		occ, ok := conflict.Project(a)
		if !ok {
			continue
		}
		h := a.Duration * l.ppm()
		if h < l.MinBlockHeight {
			h = l.MinBlockHeight
		}
		blocks = append(blocks, Block{Activity: a, Range: occ.Range, Top: l.Y(occ.Start), Height: h})
	}
	sort.SliceStable(blocks, func(i, j int) bool { return blocks[i].Start < blocks[j].Start })
	return blocks
}

// HitTest returns the block drawn at pixel row y. When blocks overlap the one
// starting last wins, as it is painted on top.
func HitTest(blocks []Block, y int) (Block, bool) {
	for i := len(blocks) - 1; i >= 0; i-- {
		if y >= blocks[i].Top && y < blocks[i].Bottom() {
			return blocks[i], true
		}
	}
	return Block{}, false
}
