package graphing

import (
	"fmt"
	"strings"

	"TracePlot/pkg/trace"
)

type waveformSignal struct {
	signal trace.Signal
	color  string
}

var waveformSignals = []waveformSignal{
	{trace.SignalPC, "#1f77b4"},
	{trace.SignalALU, "#ff7f0e"},
	{trace.SignalAcc, "#2ca02c"},
}

// BuildWaveform renders one stacked panel per tracked signal.
func BuildWaveform(tr *trace.Trace, p *Profile) []byte {
	l := p.Waveform
	height := l.PanelHeight * float64(len(waveformSignals))
	cycles := tr.Cycles()

	return render(l.Width, height, "Simulation Waveforms", tr.ID(), func(c *canvas) {
		for i, ws := range waveformSignals {
			r := Rect{
				Width:   l.Width,
				Height:  l.PanelHeight,
				Margin:  l.Margin,
				OffsetY: float64(i) * l.PanelHeight,
			}
			pts, lo, hi := MapPoints(cycles, tr.Samples(ws.signal), r)
			inner := r.Height - 2*r.Margin

			c.Gid("panel-" + strings.ToLower(strings.ReplaceAll(ws.signal.String(), " ", "-")))
			c.Rect(r.Margin, r.OffsetY+r.Margin, r.Width-2*r.Margin, inner,
				`fill="`+l.PanelFill+`"`, `stroke="#cccccc"`, `stroke-width="1"`)

			for _, frac := range l.Gridlines {
				y := r.OffsetY + r.Margin + inner*frac
				c.Line(r.Margin, y, r.Width-r.Margin, y, `stroke="#e5e5e5"`, `stroke-dasharray="4 4"`)
			}

			if l.Features {
				drawFeatureMarkers(c, tr, NewCycleAxis(cycles[0], cycles[len(cycles)-1], r), r)
			}

			c.series(pts, `fill="none"`, `stroke="`+ws.color+`"`, fmt.Sprintf(`stroke-width="%g"`, l.StrokeWidth))
			c.Text(r.Margin, r.OffsetY+l.LabelOffset, fmt.Sprintf("%s (range %d..%d)", ws.signal, lo, hi),
				fmt.Sprintf(`font-size="%g"`, l.LabelSize), `fill="#333"`)
			c.Gend()
		}
	})
}

// drawFeatureMarkers tags every cycle executing a feature opcode with a
// vertical marker spanning the panel and a label above it.
func drawFeatureMarkers(c *canvas, tr *trace.Trace, axis CycleAxis, r Rect) {
	top := r.OffsetY + r.Margin
	bottom := r.OffsetY + r.Height - r.Margin
	for i := 0; i < tr.Len(); i++ {
		rec := tr.At(i)
		label, ok := featureEvents.Get(rec.Opcode)
		if !ok {
			continue
		}
		x := axis.X(rec.Cycle)
		c.Line(x, top, x, bottom, `stroke="#bbbbbb"`, `stroke-dasharray="3 4"`)
		c.Text(x, top-10, label, `font-size="12"`, `text-anchor="middle"`, `fill="#666"`)
	}
}

// WaveformSignals returns the signals drawn as waveform panels, top to bottom.
func WaveformSignals() []trace.Signal {
	out := make([]trace.Signal, len(waveformSignals))
	for i, ws := range waveformSignals {
		out[i] = ws.signal
	}
	return out
}
