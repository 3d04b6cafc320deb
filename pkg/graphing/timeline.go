package graphing

import (
	"fmt"
	"strconv"

	"TracePlot/pkg/trace"
)

const (
	legendY       = 25
	legendSpacing = 110
	tickLength    = 8
)

// BuildTimeline renders one colored block per record, spanning the cycles
// until the next record. The last block spans a single cycle.
func BuildTimeline(tr *trace.Trace, p *Profile) []byte {
	l := p.Timeline
	r := Rect{Width: l.Width, Height: l.Height, Margin: l.Margin}
	axis := NewCycleAxis(tr.First().Cycle, tr.Last().Cycle, r)
	chartHeight := r.Height - 2*r.Margin

	return render(l.Width, l.Height, "Opcode Timeline", tr.ID(), func(c *canvas) {
		c.Rect(r.Margin, r.Margin, r.Width-2*r.Margin, chartHeight,
			`fill="`+l.PanelFill+`"`, `stroke="#cccccc"`)

		type block struct {
			x, width float64
			label    string
		}
		blocks := make([]block, tr.Len())

		c.Gid("blocks")
		for i := range blocks {
			rec := tr.At(i)
			cycles := 1.0
			if i+1 < tr.Len() {
				cycles = span(rec.Cycle, tr.At(i+1).Cycle)
			}
			b := block{
				x:     axis.X(rec.Cycle),
				width: max(1, cycles*axis.Scale()),
				label: trace.Mnemonic(rec.Opcode),
			}
			blocks[i] = b
			c.Rect(b.x, r.Margin, b.width, chartHeight,
				`fill="`+opcodeColor(rec.Opcode)+`"`, `opacity="0.4"`, `stroke="#444"`, `stroke-width="0.5"`)
		}
		c.Gend()

		mid := r.Margin + chartHeight/2
		for _, b := range blocks {
			c.Text(b.x+b.width/2, mid, b.label, `font-size="14"`, `text-anchor="middle"`, `fill="#111"`)
		}

		if l.Ticks {
			drawCycleTicks(c, tr, axis, r)
		}
		if l.Legend {
			drawOpcodeLegend(c, r.Margin)
		}

		titleY := r.Height - 10
		if l.TitleTop {
			titleY = r.Margin - 18
		}
		c.Text(r.Width/2, titleY, "Opcode Timeline",
			fmt.Sprintf(`font-size="%g"`, l.TitleSize), `text-anchor="middle"`)
	})
}

func drawCycleTicks(c *canvas, tr *trace.Trace, axis CycleAxis, r Rect) {
	base := r.Height - r.Margin
	c.Gid("ticks")
	for i := 0; i < tr.Len(); i++ {
		cycle := tr.At(i).Cycle
		x := axis.X(cycle)
		c.Line(x, base, x, base+tickLength, `stroke="#999"`)
		c.Text(x, r.Height-5, strconv.FormatInt(cycle, 10), `font-size="10"`, `text-anchor="middle"`)
	}
	c.Gend()
}

// drawOpcodeLegend lists every opcode that has a color, in opcode order.
func drawOpcodeLegend(c *canvas, left float64) {
	x := left
	c.Gid("legend")
	itr := opcodeColors.Iterator()
	for !itr.Done() {
		op, color, _ := itr.Next()
		c.Rect(x, legendY, 22, 12,
			`fill="`+color+`"`, `opacity="0.6"`, `stroke="#444"`, `stroke-width="0.5"`)
		c.Text(x+28, legendY+11, trace.Mnemonic(op), `font-size="12"`)
		x += legendSpacing
	}
	c.Gend()
}
