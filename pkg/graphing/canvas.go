package graphing

import (
	"bytes"
	"io"

	svg "github.com/ajstarks/svgo/float"
	"github.com/google/uuid"
)

// canvas is an svgo document whose coordinates are written with two
// decimals.
type canvas struct {
	*svg.SVG
}

// newCanvas starts a document of the given pixel size. The trace ID is
// recorded in the document description.
func newCanvas(w io.Writer, width, height float64, title string, id uuid.UUID) *canvas {
	c := &canvas{SVG: svg.New(w)}
	c.Decimals = 2
	c.Startview(width, height, 0, 0, width, height)
	c.Title(title)
	c.Desc("trace " + id.String())
	return c
}

// render runs draw against a fresh canvas and returns the finished document.
func render(width, height float64, title string, id uuid.UUID, draw func(c *canvas)) []byte {
	var buf bytes.Buffer
	c := newCanvas(&buf, width, height, title, id)
	draw(c)
	c.End()
	return buf.Bytes()
}

// series draws pts as a single polyline.
func (c *canvas) series(pts []Point, s ...string) {
	xs, ys := Split(pts)
	c.Polyline(xs, ys, s...)
}
