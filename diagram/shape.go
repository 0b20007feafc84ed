package diagram

// Point is a coordinate on the canvas.
type Point struct {
	X float64
	Y float64
}

// Bounds is the rectangle a shape occupies, given by its upper left and
// lower right corners.
type Bounds struct {
	UpperLeft  Point
	LowerRight Point
}

func NewBounds(x, y, width, height float64) Bounds {
	return Bounds{
		UpperLeft:  Point{X: x, Y: y},
		LowerRight: Point{X: x + width, Y: y + height},
	}
}

func (b Bounds) Width() float64 { return b.LowerRight.X - b.UpperLeft.X }

func (b Bounds) Height() float64 { return b.LowerRight.Y - b.UpperLeft.Y }

// Center returns the middle point of the rectangle.
func (b Bounds) Center() Point {
	return Point{
		X: b.UpperLeft.X + b.Width()/2,
		Y: b.UpperLeft.Y + b.Height()/2,
	}
}

// Shape is the renderable form of a model element. Outgoing shapes are
// references: only their ResourceID is meaningful.
type Shape struct {
	ResourceID  string
	Stencil     string
	Properties  map[string]string
	Bounds      Bounds
	Outgoings   []*Shape
	ChildShapes []*Shape
}

func NewShape(resourceID string) *Shape {
	return &Shape{
		ResourceID:  resourceID,
		Properties:  map[string]string{},
		Outgoings:   []*Shape{},
		ChildShapes: []*Shape{},
	}
}

func (s *Shape) SetProperty(key, value string) {
	if s.Properties == nil {
		s.Properties = map[string]string{}
	}
	s.Properties[key] = value
}

func (s *Shape) GetProperty(key string) string {
	return s.Properties[key]
}

// AddOutgoing appends a reference to the shape identified by resourceID.
func (s *Shape) AddOutgoing(resourceID string) {
	s.Outgoings = append(s.Outgoings, &Shape{ResourceID: resourceID})
}

// OutgoingIDs returns the resource ids of the outgoing references in order.
func (s *Shape) OutgoingIDs() []string {
	ids := make([]string, 0, len(s.Outgoings))
	for _, out := range s.Outgoings {
		ids = append(ids, out.ResourceID)
	}
	return ids
}

func (s *Shape) AddChild(child *Shape) {
	s.ChildShapes = append(s.ChildShapes, child)
}

// Child returns the direct child shape with the given resource id.
func (s *Shape) Child(resourceID string) (*Shape, bool) {
	for _, child := range s.ChildShapes {
		if child.ResourceID == resourceID {
			return child, true
		}
	}
	return nil, false
}
