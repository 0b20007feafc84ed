package bpmn

import (
	"strconv"
	"strings"

	"github.com/vine-io/bpmn/diagram"
)

// BaseShape builds the shape of elem without outgoing references: id,
// stencil, bounds from lookup and the common properties. Lookup errors are
// returned as they are.
func BaseShape(elem Element, lookup diagram.ShapeCoordinateLookup) (*diagram.Shape, error) {
	bounds, err := lookup.Bounds(elem.GetID())
	if err != nil {
		return nil, err
	}

	shape := diagram.NewShape(elem.GetID())
	shape.Stencil = elem.GetKind().String()
	shape.Bounds = bounds
	if name := elem.GetName(); name != "" {
		shape.SetProperty("name", name)
	}
	if doc := elem.GetDocumentation(); doc != "" {
		shape.SetProperty("documentation", doc)
	}

	switch tt := elem.(type) {
	case EventInterface:
		triggers := make([]string, 0, len(tt.GetEvent().EventDefinitions))
		for _, def := range tt.GetEvent().EventDefinitions {
			if def == nil {
				continue
			}
			triggers = append(triggers, def.Kind.String())
		}
		if len(triggers) > 0 {
			shape.SetProperty("trigger", strings.Join(triggers, ","))
		}
		if boundary, ok := tt.(*BoundaryEvent); ok {
			shape.SetProperty("cancelActivity", strconv.FormatBool(boundary.CancelActivity))
		}
	case ActivityInterface:
		if tt.GetTask().IsForCompensation {
			shape.SetProperty("isForCompensation", "true")
		}
	case GatewayInterface:
		if def := tt.GetGateway().Default; def != "" {
			shape.SetProperty("default", def)
		}
	}

	return shape, nil
}

// ToShape converts node into its renderable shape. The shape references the
// target of every outgoing sequence flow, then the target of every outgoing
// compensation flow.
func ToShape(node FlowNodeInterface, lookup diagram.ShapeCoordinateLookup) (*diagram.Shape, error) {
	shape, err := BaseShape(node, lookup)
	if err != nil {
		return nil, err
	}

	node.Node().appendOutgoingShapes(shape)

	return shape, nil
}
