// MIT License
//
// Copyright (c) 2023 Lack
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package converter

import (
	"github.com/vine-io/bpmn/api"
	"github.com/vine-io/bpmn/bpmn"
	"github.com/vine-io/bpmn/diagram"
)

var _ diagram.ShapeCoordinateLookup = (*PlaneLookup)(nil)

// PlaneLookup resolves shape bounds from the BPMNDI section of a document.
type PlaneLookup struct {
	bounds map[string]diagram.Bounds
}

// NewPlaneLookup indexes every diagram shape of d by the element it renders.
// Shapes without bounds are left out.
func NewPlaneLookup(d *bpmn.Definitions) *PlaneLookup {
	l := &PlaneLookup{bounds: map[string]diagram.Bounds{}}
	if d == nil || d.Diagram == nil {
		return l
	}

	for _, plane := range d.Diagram.Planes {
		for _, shape := range plane.Shapes {
			if shape.Element == "" || shape.Bounds == nil {
				continue
			}
			l.bounds[shape.Element] = shape.Bounds.ToBounds()
		}
	}

	return l
}

func (l *PlaneLookup) Bounds(resourceID string) (diagram.Bounds, error) {
	bounds, ok := l.bounds[resourceID]
	if !ok {
		return diagram.Bounds{}, api.NotFound("no diagram shape for %s", resourceID)
	}
	return bounds, nil
}

// Len returns the number of indexed shapes.
func (l *PlaneLookup) Len() int {
	return len(l.bounds)
}
