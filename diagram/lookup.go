package diagram

//go:generate mockgen -destination=mock/lookup.go -package=mock github.com/vine-io/bpmn/diagram ShapeCoordinateLookup

// ShapeCoordinateLookup resolves the position and size of the shape that
// renders the element with the given id.
type ShapeCoordinateLookup interface {
	Bounds(resourceID string) (Bounds, error)
}

// LookupFunc adapts a function to ShapeCoordinateLookup.
type LookupFunc func(resourceID string) (Bounds, error)

func (f LookupFunc) Bounds(resourceID string) (Bounds, error) {
	return f(resourceID)
}
