package bpmn

import (
	"github.com/shopspring/decimal"
	"github.com/vine-io/bpmn/diagram"
)

// DiagramBounds keeps the coordinates exactly as written in the document.
type DiagramBounds struct {
	X      decimal.Decimal
	Y      decimal.Decimal
	Width  decimal.Decimal
	Height decimal.Decimal
}

func NewDiagramBounds(x, y, width, height int64) *DiagramBounds {
	return &DiagramBounds{
		X:      decimal.NewFromInt(x),
		Y:      decimal.NewFromInt(y),
		Width:  decimal.NewFromInt(width),
		Height: decimal.NewFromInt(height),
	}
}

// ToBounds converts the rectangle into canvas geometry.
func (b *DiagramBounds) ToBounds() diagram.Bounds {
	return diagram.NewBounds(
		b.X.InexactFloat64(),
		b.Y.InexactFloat64(),
		b.Width.InexactFloat64(),
		b.Height.InexactFloat64(),
	)
}

type DiagramWaypoint struct {
	X decimal.Decimal
	Y decimal.Decimal
}

func (w *DiagramWaypoint) ToPoint() diagram.Point {
	return diagram.Point{X: w.X.InexactFloat64(), Y: w.Y.InexactFloat64()}
}
