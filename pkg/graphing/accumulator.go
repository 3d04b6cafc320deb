package graphing

import (
	"fmt"

	"TracePlot/pkg/trace"
)

const (
	accumulatorColor = "#2ca02c"
	highlightRadius  = 6
)

// BuildAccumulator renders the accumulator value across all cycles.
func BuildAccumulator(tr *trace.Trace, p *Profile) []byte {
	l := p.Accumulator
	r := Rect{Width: l.Width, Height: l.Height, Margin: l.Margin}
	pts, _, _ := MapPoints(tr.Cycles(), tr.Samples(trace.SignalAcc), r)

	return render(l.Width, l.Height, "Accumulator Evolution", tr.ID(), func(c *canvas) {
		c.Rect(r.Margin, r.Margin, r.Width-2*r.Margin, r.Height-2*r.Margin,
			`fill="`+l.PanelFill+`"`, `stroke="#cccccc"`)
		c.series(pts, `fill="none"`, `stroke="`+accumulatorColor+`"`, fmt.Sprintf(`stroke-width="%g"`, l.StrokeWidth))

		type annotation struct {
			at    Point
			label string
		}
		var notes []annotation

		c.Gid("samples")
		for i, pt := range pts {
			rec := tr.At(i)
			if l.Highlight && rec.Opcode == trace.OpACC {
				c.Circle(pt.X, pt.Y, highlightRadius, `fill="`+accumulatorColor+`"`, `stroke="#ffffff"`, `stroke-width="2"`)
				notes = append(notes, annotation{pt, fmt.Sprintf("+=%d", rec.RS1)})
				continue
			}
			c.Circle(pt.X, pt.Y, l.MarkerRadius, `fill="`+l.MarkerFill+`"`)
		}
		c.Gend()

		for _, n := range notes {
			c.Text(n.at.X, n.at.Y-12, n.label, `font-size="12"`, `text-anchor="middle"`, `fill="#2e6b2e"`)
		}

		c.Text(r.Margin, l.TitleY, fmt.Sprintf("Accumulator Evolution (final %d)", tr.Last().Acc),
			fmt.Sprintf(`font-size="%g"`, l.TitleSize))
	})
}
