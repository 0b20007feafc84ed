package diagram

import (
	json "github.com/json-iterator/go"
)

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type jsonBounds struct {
	UpperLeft  jsonPoint `json:"upperLeft"`
	LowerRight jsonPoint `json:"lowerRight"`
}

type jsonStencil struct {
	ID string `json:"id"`
}

type jsonRef struct {
	ResourceID string `json:"resourceId"`
}

type jsonShape struct {
	ResourceID  string            `json:"resourceId"`
	Stencil     jsonStencil       `json:"stencil"`
	Properties  map[string]string `json:"properties"`
	Bounds      jsonBounds        `json:"bounds"`
	Outgoing    []jsonRef         `json:"outgoing"`
	ChildShapes []*Shape          `json:"childShapes"`
}

// MarshalJSON writes the shape in the editor's canvas format.
func (s *Shape) MarshalJSON() ([]byte, error) {
	out := jsonShape{
		ResourceID: s.ResourceID,
		Stencil:    jsonStencil{ID: s.Stencil},
		Properties: s.Properties,
		Bounds: jsonBounds{
			UpperLeft:  jsonPoint{X: s.Bounds.UpperLeft.X, Y: s.Bounds.UpperLeft.Y},
			LowerRight: jsonPoint{X: s.Bounds.LowerRight.X, Y: s.Bounds.LowerRight.Y},
		},
		Outgoing:    make([]jsonRef, 0, len(s.Outgoings)),
		ChildShapes: s.ChildShapes,
	}
	if out.Properties == nil {
		out.Properties = map[string]string{}
	}
	if out.ChildShapes == nil {
		out.ChildShapes = []*Shape{}
	}
	for _, ref := range s.Outgoings {
		out.Outgoing = append(out.Outgoing, jsonRef{ResourceID: ref.ResourceID})
	}

	return json.Marshal(&out)
}

func (s *Shape) UnmarshalJSON(data []byte) error {
	in := jsonShape{}
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	s.ResourceID = in.ResourceID
	s.Stencil = in.Stencil.ID
	s.Properties = in.Properties
	if s.Properties == nil {
		s.Properties = map[string]string{}
	}
	s.Bounds = Bounds{
		UpperLeft:  Point{X: in.Bounds.UpperLeft.X, Y: in.Bounds.UpperLeft.Y},
		LowerRight: Point{X: in.Bounds.LowerRight.X, Y: in.Bounds.LowerRight.Y},
	}
	s.Outgoings = make([]*Shape, 0, len(in.Outgoing))
	for _, ref := range in.Outgoing {
		s.Outgoings = append(s.Outgoings, &Shape{ResourceID: ref.ResourceID})
	}
	s.ChildShapes = in.ChildShapes
	if s.ChildShapes == nil {
		s.ChildShapes = []*Shape{}
	}

	return nil
}

// Beautify returns the indented JSON form of the shape.
func (s *Shape) Beautify() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
